package config

import (
	"github.com/fsnotify/fsnotify"
)

// Watch rebuilds the configuration every time the file at configPath is
// written and hands the result to fn. opts are applied after the file, so
// command-line overrides survive a reload. fn runs on viper's watcher
// goroutine.
func Watch(configPath string, fn func(*Config, error), opts ...Option) {
	v := newViper(configPath)

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		options := append([]Option{WithViperConfig(configPath)}, opts...)

		fn(New(options...))
	})

	v.WatchConfig()
}
