package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"

	"assistant-bot/app"
	"assistant-bot/console"
	"assistant-bot/logging"
)

const maxBirthdayWindow = 366

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type Config struct {
	Prompt         string    `toml:"prompt"`
	Greeting       string    `toml:"greeting"`
	BirthdayWindow int       `toml:"birthday_window_days"`
	Log            LogConfig `toml:"log"`
}

// loadConfig reads path, falling back to defaults when the file does not exist.
func loadConfig(path string) (config *Config, err error) {
	config = &Config{}
	_, err = toml.DecodeFile(path, config)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if config.Prompt == "" {
		config.Prompt = console.DefaultPrompt
	}

	if config.Greeting == "" {
		config.Greeting = console.DefaultGreeting
	}

	if config.BirthdayWindow == 0 {
		config.BirthdayWindow = app.DefaultBirthdayWindow
	}
	if config.BirthdayWindow < 0 || config.BirthdayWindow > maxBirthdayWindow {
		return nil, fmt.Errorf("birthday_window_days must be between 1 and %d, got %d", maxBirthdayWindow, config.BirthdayWindow)
	}

	if config.Log.Level == "" {
		config.Log.Level = logging.DefaultLevel
	}

	return config, nil
}
