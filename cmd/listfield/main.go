/*
Package main implements the listfield debug CLI.

listfield is the multi-token editing engine behind list-style autocomplete
entry (semicolon separated values in one text field). The CLI wires the
engine to a Patricia-trie suggestion source and an in-memory span buffer so
token filtering, completion and validation can be exercised from a
terminal.

# Usage

Run with a dictionary and debug logging:

	listfield -data words.txt -d

Dictionaries are plain text ("word frequency" per line) or the binary
msgpack format (.bin). Typed input is inserted at the cursor; the active
token is filtered against the dictionary on every change, and :commit runs
the validation pass over every token.

# Configuration

Runtime configuration lives in a TOML file (created with defaults when
missing):

	[field]
	separator = ";"
	threshold = 1
	max_limit = 24

	[dict]
	path = ""
	min_frequency = 1
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

	"github.com/bastiangx/listfield/internal/cli"
	"github.com/bastiangx/listfield/internal/logger"
	"github.com/bastiangx/listfield/pkg/config"
	"github.com/bastiangx/listfield/pkg/dictionary"
	"github.com/bastiangx/listfield/pkg/field"
	"github.com/bastiangx/listfield/pkg/fuzzy"
	"github.com/bastiangx/listfield/pkg/span"
	"github.com/bastiangx/listfield/pkg/suggest"
	"github.com/bastiangx/listfield/pkg/token"
)

const (
	Version = "0.3.0"
	AppName = "listfield"
	gh      = "https://github.com/bastiangx/listfield"
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

// main only manages the flow; the packages do the work.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	configPath := flag.String("config", "", "Path to a config.toml")
	dataPath := flag.String("data", "", "Dictionary file (.txt or .bin)")
	limit := flag.Int("limit", defaults.Field.MaxLimit, "Number of suggestions to return")
	threshold := flag.Int("threshold", defaults.Field.Threshold, "Minimum token length before filtering")
	sep := flag.String("sep", defaults.Field.Separator, "Token separator character")
	flag.Parse()

	if *showVersion {
		banner := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)
		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true)
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true)
		banner.SetStyles(styles)
		banner.Print("[ listfield ] multi-token autocomplete editing engine")
		banner.Print("", "version", Version)
		banner.Print("Github Repo", "gh", gh)
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.InfoLevel)
		log.SetReportTimestamp(false)
	}

	cfg, cfgPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfgPath != "" {
		log.Debugf("Using config at: %s", cfgPath)
	}

	// flags win over config
	if *limit != defaults.Field.MaxLimit {
		cfg.Field.MaxLimit = *limit
	}
	if *threshold != defaults.Field.Threshold {
		cfg.Field.Threshold = *threshold
	}
	if *sep != defaults.Field.Separator {
		cfg.Field.Separator = *sep
	}
	if *dataPath != "" {
		cfg.Dict.Path = *dataPath
	}

	trie := suggest.NewTrie(cfg.Dict.MinFrequency, cfg.Field.MaxLimit)
	var validator field.Validator = cli.TrimValidator{}
	if cfg.Dict.Path != "" {
		entries, err := dictionary.Load(cfg.Dict.Path)
		if err != nil {
			log.Fatalf("Failed to load dictionary: %v", err)
		}
		entries = dictionary.Cap(entries, cfg.Dict.MaxWords)
		words := make(map[string]int, len(entries))
		for _, e := range entries {
			trie.AddWord(e.Word, e.Freq)
			words[e.Word] = e.Freq
		}
		// with a dictionary present, unknown tokens get fuzzy-corrected
		validator = fuzzy.NewValidator(words)
		log.Debugf("Dictionary ready: %d words from %s", len(entries), cfg.Dict.Path)
	} else {
		log.Warn("No dictionary given, running with empty suggestions...")
	}

	buf := span.NewBuffer("")
	fld := field.New(buf)
	fld.SetTokenizer(token.NewSingleCharSep(cfg.Separator()))
	fld.SetValidator(validator)
	fld.SetSource(trie)
	fld.SetThreshold(cfg.Field.Threshold)

	session := cli.NewSession(buf, fld)
	if err := session.Start(); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}
