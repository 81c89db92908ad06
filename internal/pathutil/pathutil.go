// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/pomo/internal/apperr"
)

const envVar = "POMO_ENV"

var errResolvePath = &apperr.Error{
	Message: "unable to resolve %s path",
}

// Paths holds all application path configurations.
type Paths struct {
	appDir         string
	configFileName string
	dbFileName     string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dbFilePath     string
	logFilePath    string
}

var (
	paths   *Paths
	once    sync.Once
	initErr error
)

// Initialize must be called once at program startup.
func Initialize() error {
	once.Do(func() {
		paths, initErr = newPaths(os.Getenv(envVar))
	})

	return initErr
}

func newPaths(env string) (*Paths, error) {
	p := &Paths{
		appDir:         "pomo",
		configFileName: "config.yml",
		dbFileName:     "pomo.db",
		logFileName:    "pomo.log",
	}

	p.applyEnvironmentOverrides(env)

	if err := p.computePaths(); err != nil {
		return nil, err
	}

	return p, nil
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides(env string) {
	env = strings.TrimSpace(env)
	if env == "" {
		return
	}

	p.configFileName = fmt.Sprintf("config_%s.yml", env)
	p.dbFileName = fmt.Sprintf("pomo_%s.db", env)
	p.logFileName = fmt.Sprintf("pomo_%s.log", env)
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.appDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return errResolvePath.Fmt("config").Wrap(err)
	}

	dataDir, err := xdg.DataFile(p.appDir)
	if err != nil {
		return errResolvePath.Fmt("data").Wrap(err)
	}

	p.dbFilePath = filepath.Join(dataDir, p.dbFileName)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}
