package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	hd "github.com/mitchellh/go-homedir"
	"go.uber.org/zap"
	"golang.org/x/term"

	"assistant-bot/app"
	"assistant-bot/console"
	"assistant-bot/logging"
)

type Args struct {
	ConfigFile string `short:"c" long:"config-file" description:"Assistant bot config file" default:"~/.assistant-bot.toml"`
	LogLevel   string `short:"l" long:"log-level" description:"Minimum log level (debug, info, warn, error)"`
	LogFile    string `long:"log-file" description:"Write logs to this file instead of stderr"`
	NoGreeting bool   `long:"no-greeting" description:"Do not print the welcome message"`
	Prompt     bool   `long:"prompt" description:"Show the prompt even when input is not a terminal"`

	config *Config
}

func (a *Args) validate() (err error) {
	if a.ConfigFile == "" {
		return errors.New("error: config-file is required")
	}
	cf, err := hd.Expand(a.ConfigFile)
	if err != nil {
		return fmt.Errorf("error: could not expand config-file path[%s]: %v", a.ConfigFile, err)
	}
	a.ConfigFile = cf
	a.config, err = loadConfig(a.ConfigFile)
	if err != nil {
		return fmt.Errorf("error: error occurred loading the config file[%s]: %v", a.ConfigFile, err)
	}

	if a.LogLevel == "" {
		a.LogLevel = a.config.Log.Level
	}
	if a.LogFile == "" {
		a.LogFile = a.config.Log.File
	}
	if a.LogFile != "" {
		lf, err := hd.Expand(a.LogFile)
		if err != nil {
			return fmt.Errorf("error: could not expand log-file path[%s]: %v", a.LogFile, err)
		}
		a.LogFile = lf
	}
	if a.NoGreeting {
		a.config.Greeting = ""
	}
	return nil
}

func (a *Args) sessionOptions(interactive bool) console.Options {
	return console.Options{
		Prompt:      a.config.Prompt,
		Greeting:    a.config.Greeting,
		Interactive: interactive || a.Prompt,
	}
}

func main() {
	var args Args
	parser := flags.NewParser(&args, flags.Default)
	_, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}
	err = args.validate()
	if err != nil {
		log.Fatalf("%v\n", err)
		return
	}

	logger, err := logging.New(logging.Options{Level: args.LogLevel, File: args.LogFile})
	if err != nil {
		log.Fatalf("error: %v\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	book := app.NewBook(args.config.BirthdayWindow)
	dispatcher := console.NewDispatcher(book, time.Now, logger)
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	session := console.NewSession(os.Stdin, os.Stdout, dispatcher, args.sessionOptions(interactive), logger)
	if err := session.Run(); err != nil {
		logger.Error("session aborted", zap.Stringer("session", session.ID()), zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
