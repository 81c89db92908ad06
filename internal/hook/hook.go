// Package hook runs the user's session command after a stage ends
package hook

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/pomo/internal/apperr"
	"github.com/ayoisaiah/pomo/internal/engine"
)

const defaultTimeout = time.Minute

var errParseCmd = &apperr.Error{
	Message: "unable to parse session_cmd option",
}

// Runner executes a shell-quoted command line. The transition is exposed to
// the command through POMO_* environment variables.
type Runner struct {
	logger  *slog.Logger
	name    string
	args    []string
	timeout time.Duration
}

// New parses cmdLine. An empty command line yields a Runner that does
// nothing.
func New(cmdLine string, logger *slog.Logger) (*Runner, error) {
	cmdSlice, err := shellquote.Split(cmdLine)
	if err != nil {
		return nil, errParseCmd.Wrap(err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	r := &Runner{
		logger:  logger,
		timeout: defaultTimeout,
	}

	if len(cmdSlice) > 0 {
		r.name = cmdSlice[0]
		r.args = cmdSlice[1:]
	}

	return r, nil
}

// Enabled reports whether a command is configured.
func (r *Runner) Enabled() bool {
	return r.name != ""
}

// Run executes the command for tr and waits for it to exit.
func (r *Runner) Run(ctx context.Context, tr engine.Transition) error {
	if !r.Enabled() {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.name, r.args...)
	cmd.Env = append(os.Environ(), env(tr)...)

	return cmd.Run()
}

// Observe runs the command in the background so the timer is never held up,
// and logs a failure. It can be registered as an engine.Observer.
func (r *Runner) Observe(tr engine.Transition) {
	if !r.Enabled() {
		return
	}

	go func() {
		if err := r.Run(context.Background(), tr); err != nil {
			r.logger.Error(
				"session command failed",
				slog.String("cmd", r.name),
				slog.Any("error", err),
			)
		}
	}()
}

func env(tr engine.Transition) []string {
	return []string{
		"POMO_STAGE=" + string(tr.From),
		"POMO_NEXT_STAGE=" + string(tr.To),
		"POMO_REASON=" + string(tr.Reason),
		fmt.Sprintf("POMO_COMPLETED_FOCUS=%d", tr.CompletedFocusCount),
		fmt.Sprintf("POMO_ELAPSED_SECONDS=%d", tr.Elapsed),
	}
}
