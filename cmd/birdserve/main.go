/*
Package main implements the species search server and CLI [DBG] application.

BirdServe provides tiered species-name lookup for interactive pickers:
prefix matches first, then substring matches, then edit-distance fuzzy
matches for misspelled queries. It can operate as a MessagePack IPC
server for integration with form widgets, or as a CLI application for
testing and debugging.

# Usage

Start the server with the builtin North American species list:

	birdserve

Use a custom vocabulary file and enable debug mode:

	birdserve -vocab /path/to/species.txt -d

Run in CLI mode for interactive testing:

	birdserve -c -limit 8

The vocabulary file holds one species name per line; '#' comments and
blank lines are ignored. Order in the file is the tie-break order
inside each match tier.

# Configuration

Runtime configuration is managed through a TOML file that supports
server parameters, matcher limits, and CLI defaults:

	[server]
	max_limit = 32
	min_query = 1
	max_query = 60
	cache_entries = 256
	enable_cache = true

	[matcher]
	max_results = 10
	fuzzy_cap = 5
	short_query_len = 6
	short_query_distance = 2
	long_query_distance = 3

The config file is automatically created with defaults if it doesn't
exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Search
requests are processed synchronously with microsecond timing included
in responses.

Send a search request:

	{"id": "req1", "q": "blue", "l": 10}

Receive tier-ranked suggestions:

	{"id": "req1", "s": [{"t": "Blue Grosbeak", "k": "prefix"}, {"t": "Blue Jay", "k": "prefix"}], "c": 2, "d": 87}

Management requests adjust matcher limits at runtime:

	{"id": "m1", "action": "get_info"}
	{"id": "m2", "action": "set_limits", "max_results": 8}

# CLI Mode

CLI mode reads queries from stdin and displays tier-badged suggestions.
Slash commands (/down, /up, /pick, /esc) drive the picker state machine
so keyboard selection flows can be exercised by hand. This mode is
primarily intended for development and testing new features before
deploying to server mode.

# Search Engine

The core matching lives in the search package: a pure function over an
immutable vocabulary, recomputed in full on every query. Empty results
are a normal outcome; the engine is advisory and callers stay free to
accept any typed text.

	searcher := search.NewSearcher(vocab.Builtin())
	suggestions := searcher.Search("nothern")
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/hmeline/birdserve/internal/cli"
	"github.com/hmeline/birdserve/internal/utils"
	"github.com/hmeline/birdserve/pkg/config"
	"github.com/hmeline/birdserve/pkg/search"
	"github.com/hmeline/birdserve/pkg/server"
	"github.com/hmeline/birdserve/pkg/vocab"
)

const (
	Version = "0.4.0"
	AppName = "birdserve"
	gh      = "https://github.com/hmeline/birdserve"
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

// main wires flags, config, vocabulary and the chosen front end
// together; the logic lives in the packages it calls.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	vocabPath := flag.String("vocab", "", "Vocabulary file (one species name per line); builtin list when empty")
	configPathFlag := flag.String("config", "", "Config file path (default: platform config dir)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of suggestions to return")
	noFilter := flag.Bool("no-filter", defaultConfig.CLI.DefaultNoFilter, "Disable input filtering (DBG only) - searches raw queries (numbers, symbols, etc)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	appConfig, configPath, err := loadConfig(pathResolver, *configPathFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *limit > 0 {
		appConfig.CLI.DefaultLimit = *limit
		if *limit < appConfig.Matcher.MaxResults {
			appConfig.Matcher.MaxResults = *limit
		}
	}

	vocabulary, err := loadVocabulary(pathResolver, *vocabPath)
	if err != nil {
		log.Fatalf("Failed to load vocabulary: %v", err)
	}
	log.Debugf("Vocabulary ready: %d terms", vocabulary.Len())

	searcher := search.NewSearcherWithLimits(vocabulary, appConfig.Matcher.Limits())

	// CLI is mainly used for testing and dbg purposes. Any new matcher
	// or picker behavior should be exercised here first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"minQuery", appConfig.Server.MinQuery,
			"maxQuery", appConfig.Server.MaxQuery,
			"limit", appConfig.CLI.DefaultLimit,
			"noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(searcher, appConfig.Server.MinQuery, appConfig.Server.MaxQuery, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(vocabulary, appConfig, configPath)

	showStartupInfo(vocabulary.Len())

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// loadConfig resolves the config path and loads or creates the file.
func loadConfig(pr *utils.PathResolver, customPath string) (*config.Config, string, error) {
	if customPath != "" {
		cfg, path, err := config.LoadConfigWithPriority(customPath)
		return cfg, path, err
	}
	configPath, err := pr.GetConfigPath("config.toml")
	if err != nil {
		return nil, "", err
	}
	log.Debugf("Using config file: (%s)", configPath)
	cfg, err := config.InitConfig(configPath)
	return cfg, configPath, err
}

// loadVocabulary picks the user file when given, builtin list otherwise.
func loadVocabulary(pr *utils.PathResolver, userPath string) (*vocab.Vocabulary, error) {
	if userPath == "" {
		return vocab.Builtin(), nil
	}
	resolved, err := pr.ResolveVocabPath(userPath)
	if err != nil {
		return nil, fmt.Errorf("vocabulary file %q not found: %w", userPath, err)
	}
	return vocab.FromFile(resolved)
}

// printVersion displays the version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ BirdServe ] Species-name search for interactive pickers")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(termCount int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, " BirdServe ")
	fmt.Fprintln(os.Stderr, "===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("vocabulary: [ %d ] terms", termCount)
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
