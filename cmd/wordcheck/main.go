// Copyright 2025 The WordCheck Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the spell checking server and CLI [DBG] application.

WordCheck loads an ordered word list into a character trie and answers two
questions about a word: is it known, and if not, which known words are a
single small edit away. Suggestions come from seven edit strategies tried in
a fixed priority order, and every suggestion list ends with the "Manual Entry"
and "Ignore" entries so that a client can offer them as actions.

# Usage

Start the server with the word list from the config file:

	wordcheck

Use a specific word list and enable debug mode:

	wordcheck -dict /usr/share/dict/words -d

Load a JSON quoted word list in Latin-1 and run the interactive CLI:

	wordcheck -dict words_dictionary.json -encoding latin1 -c

Word lists are line oriented with comma separated tokens. The JSON dialect,
selected by the .json extension or -format json, takes each word from inside
its first quote pair. Entries ending in "-" and single letters other than
"a" and "i" are skipped.

# Configuration

Runtime configuration is managed through a TOML file:

	[dict]
	path = "data/words.txt"
	format = "auto"
	encoding = "utf-8"

	[suggest]
	cache_size = 1024

	[server]
	max_query_len = 48

	[cli]
	show_timing = true

The config file is created with defaults if it doesn't exist. Flags override
the file.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout, one response per
request, with microsecond timing in word responses:

	{"id": "req1", "a": "suggest", "w": "teh"}
	{"id": "req1", "w": "teh", "k": false, "s": ["the", "Manual Entry", "Ignore"], "c": 3, "t": 412}

See package server for the check, add and stats actions.

# Command Line Flags

	-dict string
	    Word list to load (default from config)
	-format string
	    Word list dialect: auto, text or json
	-encoding string
	    Word list charset: utf-8, latin1 or windows-1252
	-config string
	    Path to a config.toml
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bastiangx/wordcheck/internal/cli"
	"github.com/bastiangx/wordcheck/internal/logger"
	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/bastiangx/wordcheck/pkg/dictionary"
	"github.com/bastiangx/wordcheck/pkg/server"
	"github.com/bastiangx/wordcheck/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "wordcheck"
	gh      = "https://github.com/bastiangx/wordcheck"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main only manages the flow: config, word list, then CLI or server.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Word list to load (overrides [dict] path)")
	format := flag.String("format", "", "Word list dialect: auto, text or json")
	encoding := flag.String("encoding", "", "Word list charset: utf-8, latin1 or windows-1252")
	configPath := flag.String("config", "", "Path to config.toml")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.Setup(*debugMode)

	cfg, usedConfigPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config: %s", config.GetActiveConfigPath(usedConfigPath))

	if *dictPath != "" {
		cfg.Dict.Path = *dictPath
	}
	if *format != "" {
		cfg.Dict.Format = *format
	}
	if *encoding != "" {
		cfg.Dict.Encoding = *encoding
	}

	fileFormat, err := dictionary.ParseFormat(cfg.Dict.Format)
	if err != nil {
		log.Fatalf("Invalid word list format: %v", err)
	}
	if err := dictionary.ValidateEncoding(cfg.Dict.Encoding); err != nil {
		log.Fatalf("Invalid word list encoding: %v", err)
	}

	configDir := ""
	if usedConfigPath != "" {
		configDir = filepath.Dir(usedConfigPath)
	}
	resolvedPath, err := utils.NewPathResolver(configDir).ResolveFile(cfg.Dict.Path)
	if err != nil {
		log.Fatalf("Failed to resolve word list: %v", err)
	}

	t, stats, err := dictionary.LoadFile(resolvedPath, dictionary.Options{
		Format:   fileFormat,
		Encoding: cfg.Dict.Encoding,
	})
	if err != nil {
		log.Fatalf("Failed to load word list: %v", err)
	}
	checker := suggest.NewChecker(t, cfg.Suggest.CacheSize)

	// CLI is mainly used for testing and dbg purposes.
	if *cliMode {
		log.Debug("Input info:", "dict", resolvedPath, "words", stats.Words, "showTiming", cfg.CLI.ShowTiming)
		inputHandler := cli.NewInputHandler(checker, os.Stdin, os.Stdout, cfg.CLI.ShowTiming)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(checker, cfg, os.Stdin, os.Stdout)
	showStartupInfo(resolvedPath, stats)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ WordCheck ] Trie spell checking with edit suggestions")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(dictPath string, stats dictionary.Stats) {
	l := logger.NewWithConfig(AppName, log.InfoLevel, false, false, log.TextFormatter)

	l.Infof("Version: %s", Version)
	l.Infof("Process ID: [ %d ]", os.Getpid())
	l.Infof("word list: ( %s )", dictPath)
	l.Infof("words: %s, nodes: %s, skipped: %s, took %s",
		utils.FormatWithCommas(stats.Words),
		utils.FormatWithCommas(stats.Nodes),
		utils.FormatWithCommas(stats.Skipped),
		utils.FormatElapsed(stats.Elapsed))
	l.Info("status: ready")
}
