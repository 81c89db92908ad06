package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/console"
	"github.com/ayoisaiah/pomo/internal/engine"
	"github.com/ayoisaiah/pomo/internal/history"
	"github.com/ayoisaiah/pomo/internal/hook"
	"github.com/ayoisaiah/pomo/internal/logging"
	"github.com/ayoisaiah/pomo/internal/pathutil"
	"github.com/ayoisaiah/pomo/internal/store"
	"github.com/ayoisaiah/pomo/internal/ui"
	"github.com/ayoisaiah/pomo/timer"
)

const (
	envUpdateNotifier = "POMO_UPDATE_NOTIFIER"
	envNoColor        = "NO_COLOR"
	envPomoNoColor    = "POMO_NO_COLOR"
)

// logCloser closes the log file opened in beforeAction.
var logCloser io.Closer

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// checkForUpdates alerts the user if there is
// an updated version of pomo from the one currently installed.
func checkForUpdates(app *cli.App) {
	spinner, _ := pterm.DefaultSpinner.Start("Checking for updates...")
	c := http.Client{Timeout: 10 * time.Second}

	resp, err := c.Get("https://github.com/ayoisaiah/pomo/releases/latest")
	if err != nil {
		pterm.Error.Println("HTTP Error: Failed to check for update")
		return
	}

	defer resp.Body.Close()

	var version string

	_, err = fmt.Sscanf(
		resp.Request.URL.String(),
		"https://github.com/ayoisaiah/pomo/releases/tag/%s",
		&version,
	)
	if err != nil {
		pterm.Error.Println("Failed to get latest version")
		return
	}

	if version == app.Version {
		text := pterm.Sprintf(
			"Congratulations, you are using the latest version of %s",
			app.Name,
		)
		spinner.Success(text)
	} else {
		pterm.Warning.Prefix = pterm.Prefix{
			Text:  "UPDATE AVAILABLE",
			Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
		}
		pterm.Warning.Printfln("A new release of pomo is available: %s at %s", version, resp.Request.URL.String())
	}
}

// recordsHelper opens the database and retrieves the records selected by
// --since and --until. The caller must close the returned DB.
func recordsHelper(ctx *cli.Context) ([]store.Record, store.DB, error) {
	filter, err := config.Filter(ctx)
	if err != nil {
		return nil, nil, err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return nil, nil, err
	}

	records, err := db.Records(filter.Since, filter.Until)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	return records, db, nil
}

// historyAction handles the history command which lists the stages recorded
// within a time period.
func historyAction(ctx *cli.Context) error {
	cfg, err := config.New(config.WithViperConfig(pathutil.ConfigFilePath()))
	if err != nil {
		return err
	}

	records, db, err := recordsHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	return writeHistory(
		config.Stdout,
		records,
		ctx.Bool("json"),
		ctx.Bool("yaml"),
		cfg.Display.TwentyFourHour,
	)
}

func writeHistory(
	w io.Writer,
	records []store.Record,
	asJSON, asYAML, twentyFour bool,
) error {
	switch {
	case asJSON:
		return history.Write(w, records, history.FormatJSON)
	case asYAML:
		return history.Write(w, records, history.FormatYAML)
	}

	return listRecords(w, records, twentyFour)
}

// deleteAction handles the delete command which deletes the stages recorded
// within a time period.
func deleteAction(ctx *cli.Context) error {
	records, db, err := recordsHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	return delRecords(db, records, config.Stdin, config.Stdout, ctx.Bool("yes"))
}

// editConfigAction handles the edit-config command which opens the pomo
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	configPath := pathutil.ConfigFilePath()

	// writes the defaults if the file does not exist yet
	if _, err := config.New(config.WithViperConfig(configPath)); err != nil {
		return err
	}

	cmd := exec.Command(editor, configPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// defaultAction starts a timer session, either in the interactive view or in
// headless mode.
func defaultAction(ctx *cli.Context) error {
	configPath := pathutil.ConfigFilePath()

	cfg, err := config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	runner, err := hook.New(cfg.Settings.Cmd, slog.Default())
	if err != nil {
		return err
	}

	recorder := history.NewRecorder(db)

	e := engine.New(
		engine.WithDefaults(cfg.Durations()),
		engine.WithLongBreakInterval(cfg.Settings.LongBreakInterval),
		engine.WithObserver(recorder.Observe),
		engine.WithObserver(runner.Observe),
	)

	slog.InfoContext(
		ctx.Context,
		"starting session",
		slog.String("run_id", recorder.RunID().String()),
		slog.Bool("headless", cfg.CLI.Headless),
		slog.Any("durations", cfg.Durations()),
	)

	if cfg.CLI.Headless {
		return runHeadless(ctx.Context, e, recorder)
	}

	return runInteractive(ctx, e, cfg, recorder)
}

func runHeadless(
	ctx context.Context,
	e *engine.Engine,
	recorder *history.Recorder,
) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := console.NewPrinter(config.Stdout, e)

	sess := console.NewSession(
		e,
		p,
		console.WithAutoStart(),
		console.OnStageEntered(recorder.Restart),
	)

	return sess.Run(ctx, config.Stdin)
}

func runInteractive(
	ctx *cli.Context,
	e *engine.Engine,
	cfg *config.Config,
	recorder *history.Recorder,
) error {
	t := timer.New(
		e,
		cfg,
		timer.WithDebug(logging.Level() == slog.LevelDebug),
		timer.OnStageEntered(recorder.Restart),
	)

	p := tea.NewProgram(t, tea.WithContext(ctx.Context))

	config.Watch(
		pathutil.ConfigFilePath(),
		func(c *config.Config, err error) {
			p.Send(timer.ConfigMsg{Config: c, Err: err})
		},
		config.WithCLIConfig(ctx),
	)

	_, err := p.Run()

	return err
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/pomo/releases/%s\n",
			c.App.Version,
		)

		if _, found := os.LookupEnv(envUpdateNotifier); found {
			checkForUpdates(c.App)
		}
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if POMO_NO_COLOR is set
	if _, exists := os.LookupEnv(envPomoNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	closer, err := logging.Setup(pathutil.LogFilePath(), logging.Level())
	if err != nil {
		return err
	}

	logCloser = closer

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting pomo")

	if logCloser != nil {
		return logCloser.Close()
	}

	return nil
}
