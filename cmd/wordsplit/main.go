/*
Wordsplit segments the words of a corpus into morphemes using successor variety.

Every word of the corpus is inserted into a character trie. The number of distinct
continuations after each prefix is that prefix's successor count; peaks in the sequence
of counts along a word mark likely morpheme boundaries. With eager suffix matching
enabled, frequent word endings found at the last branching point of each word are
split off first.

Usage:

	wordsplit [flags]

Batch mode is the default and writes one line per distinct corpus word:

	wordsplit -corpus words.txt -out splits.txt
	wordsplit -corpus words.txt -format pieces -esm 3

The flags are:

	-version
		Show current version
	-config
		Path to a custom config file
	-corpus
		Corpus file, one or more words per line
	-out
		Output file for batch mode (default stdout)
	-enc
		Corpus and output encoding: utf8, windows1252, latin1
	-format
		Output format: positions or pieces
	-esm
		Minimum suffix length for eager suffix matching (0 disables it)
	-freq
		Rank suffixes by frequency instead of length
	-save
		Write the -esm and -freq values back to the config file
	-d
		Toggle debug mode
	-json
		Log as JSON
	-c
		Read words from stdin and print their segmentation
	-s
		Serve msgpack requests on stdin/stdout
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bastiangx/wordsplit/internal/cli"
	"github.com/bastiangx/wordsplit/internal/logger"
	"github.com/bastiangx/wordsplit/internal/utils"
	"github.com/bastiangx/wordsplit/pkg/config"
	"github.com/bastiangx/wordsplit/pkg/corpus"
	"github.com/bastiangx/wordsplit/pkg/segment"
	"github.com/bastiangx/wordsplit/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "wordsplit"
	gh      = "https://github.com/bastiangx/wordsplit"
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

// main parses flags, resolves config and hands over to the selected mode.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a custom config file")
	corpusPath := flag.String("corpus", "", "Corpus file, one or more words per line")
	outPath := flag.String("out", "", "Output file for batch mode (default stdout)")
	encName := flag.String("enc", defaultConfig.Corpus.Encoding, "Corpus and output encoding: utf8, windows1252, latin1")
	formatName := flag.String("format", defaultConfig.Corpus.OutputFormat, "Output format: positions or pieces")
	minSuffix := flag.Int("esm", defaultConfig.Segment.MinSuffixLen, "Minimum suffix length for eager suffix matching (0 disables it)")
	byFreq := flag.Bool("freq", defaultConfig.Segment.ByFrequency, "Rank suffixes by frequency instead of length")
	save := flag.Bool("save", false, "Write the -esm and -freq values back to the config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	jsonLogs := flag.Bool("json", false, "Log as JSON")
	cliMode := flag.Bool("c", false, "Read words from stdin and print their segmentation")
	serverMode := flag.Bool("s", false, "Serve msgpack requests on stdin/stdout")

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
	if *jsonLogs {
		log.SetFormatter(log.JSONFormatter)
	}

	cfg, usedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", usedPath)

	// explicit flags win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "enc":
			cfg.Corpus.Encoding = *encName
		case "format":
			cfg.Corpus.OutputFormat = *formatName
		case "esm":
			cfg.Segment.MinSuffixLen = *minSuffix
		case "freq":
			cfg.Segment.ByFrequency = *byFreq
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	if *save {
		if usedPath == "" {
			log.Fatal("No config file to save to")
		}
		if err := cfg.Update(usedPath, &cfg.Segment.MinSuffixLen, &cfg.Segment.ByFrequency); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}
		log.Infof("Saved segment settings to %s", usedPath)
	}

	if *corpusPath == "" {
		log.Error("No corpus given, use -corpus <file>")
		flag.Usage()
		os.Exit(2)
	}

	start := time.Now()
	words, err := corpus.LoadFile(*corpusPath, cfg.CorpusOptions())
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}
	engine, err := segment.NewEngine(words, cfg.Options())
	if err != nil {
		log.Fatalf("Failed to build engine: %v", err)
	}
	log.Debugf("Engine ready in %v: words=[%d], esm=[%v]", time.Since(start), len(engine.Words()), cfg.Options().ESM())

	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"maxWordLen", cfg.CLI.MaxWordLen,
			"showPieces", cfg.CLI.ShowPieces,
			"showDistribution", cfg.CLI.ShowDistribution)

		inputHandler := cli.NewInputHandler(engine, cfg.CLI)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	if *serverMode {
		log.Debug("spawning IPC")
		showStartupInfo(*corpusPath, engine)
		srv := server.NewServer(engine, cfg)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	if err := runBatch(engine, cfg, *outPath, *debugMode, *jsonLogs); err != nil {
		log.Fatalf("Batch run failed: %v", err)
	}
}

// runBatch segments every corpus word and writes the split file.
func runBatch(engine *segment.Engine, cfg *config.Config, outPath string, debug, jsonLogs bool) error {
	formatter := log.TextFormatter
	if jsonLogs {
		formatter = log.JSONFormatter
	}
	batchLog := logger.NewWithConfig("batch", log.GetLevel(), debug, debug, formatter)

	format, err := corpus.ParseFormat(cfg.Corpus.OutputFormat)
	if err != nil {
		return err
	}

	start := time.Now()
	splits := engine.Segment()
	words := engine.Words()

	dest := "stdout"
	if outPath == "" {
		if err := corpus.WriteSplits(os.Stdout, words, splits, format, cfg.Corpus.Encoding); err != nil {
			return err
		}
	} else {
		dest = utils.GetAbsolutePath(outPath)
		if err := writeSplitFile(outPath, words, splits, format, cfg.Corpus.Encoding); err != nil {
			return err
		}
	}
	batchLog.Info("Segmented corpus",
		"words", utils.FormatWithCommas(len(words)),
		"elapsed", time.Since(start),
		"out", dest)
	return nil
}

// writeSplitFile writes the split results to path. A failed close is reported,
// since buffered data may only reach the disk then.
func writeSplitFile(path string, words []string, splits map[string][]int, format corpus.OutputFormat, encName string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := corpus.WriteSplits(f, words, splits, format, encName); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}

// printVersion shows the version banner.
func printVersion() {
	banner := log.NewWithOptions(os.Stderr, log.Options{
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
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ wordsplit ] Morpheme boundaries from successor variety")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the loaded engine on stderr.
func showStartupInfo(corpusPath string, engine *segment.Engine) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	stats := engine.Stats()
	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, " wordsplit ")
	fmt.Fprintln(os.Stderr, "===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("corpus: ( %s )", utils.GetAbsolutePath(corpusPath))
	log.Infof("words: %s unique of %s", utils.FormatWithCommas(stats["uniqueWords"]), utils.FormatWithCommas(stats["totalWords"]))
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "===========")

	log.SetLevel(currentLevel)
}
