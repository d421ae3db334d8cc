package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/milden6/wordpool"
	"github.com/milden6/wordpool/internal/cache"
	"github.com/milden6/wordpool/internal/config"
	"github.com/milden6/wordpool/internal/dictionary"
	"github.com/milden6/wordpool/internal/metrics"
	"github.com/milden6/wordpool/internal/server"
	"github.com/milden6/wordpool/internal/store"
	"github.com/milden6/wordpool/pkg/logger"
)

type flags struct {
	configPath string
	wordList   string
	board      string
	db         string
	dict       string
	importOnly bool
	serve      string
	order      string
	parallel   int
	all        bool
	logLevel   string
	foldCase   bool
	skipBad    bool
}

func parseFlags(args []string, stderr io.Writer) (*flags, map[string]bool, error) {
	f := &flags{}
	fs := flag.NewFlagSet("wordpool", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&f.configPath, "config", "", "JSON config `file`; created with defaults if missing")
	fs.StringVar(&f.wordList, "word-list", "words_eng.txt", "newline separated list of valid words")
	fs.StringVar(&f.board, "board", "", "the available letters to play with, e.g. abcdefghi")
	fs.StringVar(&f.db, "db", "", "bbolt `file` holding imported dictionaries")
	fs.StringVar(&f.dict, "dict", "default", "dictionary `name` inside -db")
	fs.BoolVar(&f.importOnly, "import", false, "store -word-list in -db under -dict and exit")
	fs.StringVar(&f.serve, "serve", "", "serve the HTTP API on `addr` instead of solving one board")
	fs.StringVar(&f.order, "sort", "none", "output order: none, alpha or length")
	fs.IntVar(&f.parallel, "parallel", 0, "letter partitions to build concurrently (0 = config)")
	fs.BoolVar(&f.all, "all", false, "print every word in the dictionary")
	fs.StringVar(&f.logLevel, "log-level", "", "trace, debug, info, warn or error")
	fs.BoolVar(&f.foldCase, "fold-case", false, "lowercase words while loading")
	fs.BoolVar(&f.skipBad, "skip-invalid", false, "skip words with characters outside a-z instead of failing")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) {
		set[fl.Name] = true
	})
	return f, set, nil
}

func loadConfig(f *flags, set map[string]bool) (*config.Manager, error) {
	var manager *config.Manager
	if f.configPath != "" {
		var err error
		manager, err = config.New(f.configPath)
		if err != nil {
			return nil, err
		}
	} else {
		manager = config.NewDefault()
	}

	// command line wins over the file, without being written back
	cfg := *manager.Get()
	if set["word-list"] || f.configPath == "" {
		cfg.Dictionary.Path = f.wordList
	}
	if set["db"] {
		cfg.Dictionary.DB = f.db
	}
	if set["dict"] {
		cfg.Dictionary.Name = f.dict
	}
	if set["fold-case"] {
		cfg.Dictionary.FoldCase = f.foldCase
	}
	if set["skip-invalid"] {
		cfg.Dictionary.SkipInvalid = f.skipBad
	}
	if set["parallel"] && f.parallel > 0 {
		cfg.Build.Parallelism = f.parallel
	}
	if set["log-level"] {
		cfg.App.LogLevel = f.logLevel
	}
	if set["serve"] {
		cfg.Server.Addr = f.serve
	}

	overridden := config.NewDefault()
	if err := overridden.Update(func(c *config.Config) { *c = cfg }); err != nil {
		return nil, err
	}
	return overridden, nil
}

// loadWords reads the dictionary from the store when one is configured and
// the word list is not being imported, and from the word list otherwise.
func loadWords(cfg *config.Config, importing bool, log logger.Logger) ([]string, error) {
	if cfg.Dictionary.DB != "" && !importing {
		s, err := store.Open(cfg.Dictionary.DB)
		if err != nil {
			return nil, err
		}
		defer s.Close()

		words, err := s.Words(cfg.Dictionary.Name)
		if err != nil {
			return nil, err
		}
		log.Info("Loaded dictionary from store", "db", cfg.Dictionary.DB, "name", cfg.Dictionary.Name, "words", len(words))
		return words, nil
	}

	dictLog := logger.NewPrefixedLogger(log, "dictionary")
	words, report, err := dictionary.Load(cfg.Dictionary.Path, dictionary.Options{
		FoldCase:    cfg.Dictionary.FoldCase,
		SkipInvalid: cfg.Dictionary.SkipInvalid,
	}, dictLog)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.Dictionary.Path, err)
	}
	dictLog.Info("Loaded word list",
		"path", cfg.Dictionary.Path,
		"lines", report.Lines,
		"words", report.Words,
		"skipped", report.Skipped,
	)
	return words, nil
}

func buildTree(words []string, parallelism int, log logger.Logger) (*wordpool.WordTree, time.Duration, error) {
	start := time.Now()
	tree, err := wordpool.New(words,
		wordpool.WithParallelism(parallelism),
		wordpool.WithProgress(func(done, total int) {
			log.Trace("Build progress", "done", done, "total", total)
		}),
	)
	if err != nil {
		return nil, 0, err
	}
	took := time.Since(start)

	log.Info("Built word tree", "words", tree.NumWords(), "nodes", tree.NumNodes(), "took", took)
	return tree, took, nil
}

func printWords(w io.Writer, words []string) error {
	out := bufio.NewWriter(w)
	for _, word := range words {
		out.WriteString(word)
		out.WriteByte('\n')
	}
	return out.Flush()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	f, set, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	order, err := server.ParseOrder(f.order)
	if err != nil {
		return err
	}

	manager, err := loadConfig(f, set)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg := manager.Get()

	log := logger.New(logger.Options{
		Level:  cfg.App.LogLevel,
		File:   cfg.App.LogFile,
		Output: stderr,
	})
	defer log.Close()

	if f.importOnly && cfg.Dictionary.DB == "" {
		return errors.New("-import needs -db")
	}
	if f.serve == "" && !f.all && !f.importOnly && !set["board"] {
		return errors.New("one of -board, -all, -serve or -import is required")
	}

	words, err := loadWords(cfg, f.importOnly, log)
	if err != nil {
		return err
	}

	if f.importOnly {
		s, err := store.Open(cfg.Dictionary.DB)
		if err != nil {
			return err
		}
		defer s.Close()
		if err := s.Import(cfg.Dictionary.Name, words); err != nil {
			return err
		}
		log.Info("Imported dictionary", "db", cfg.Dictionary.DB, "name", cfg.Dictionary.Name, "words", len(words))
		return nil
	}

	tree, took, err := buildTree(words, cfg.Build.Parallelism, log)
	if err != nil {
		return err
	}

	switch {
	case f.serve != "":
		// collectors are only scraped while serving
		metrics.ObserveBuild(tree.NumWords(), tree.NumNodes(), took)

		var solver cache.Solver = tree
		if cfg.Cache.Size > 0 {
			solver = cache.New(tree, cfg.Cache.Size, cfg.Cache.TTL.Std())
		}
		srv := server.New(logger.NewPrefixedLogger(log, "http"), tree, solver, server.Options{
			Addr:       cfg.Server.Addr,
			GinMode:    cfg.Server.GinMode,
			Requests:   cfg.Server.Limiter.Requests,
			Per:        cfg.Server.Limiter.Per.Std(),
			MaxLetters: cfg.Server.MaxLetters,
		})
		return srv.Run(ctx)

	case f.all:
		found := tree.Words()
		server.SortWords(found, order)
		return printWords(stdout, found)

	default:
		board, err := wordpool.NewBoard(f.board, tree)
		if err != nil {
			return fmt.Errorf("board: %w", err)
		}
		start := time.Now()
		found := board.Solve()
		log.Debug("Solved board", "board", board.Letters(), "words", len(found), "took", time.Since(start))

		server.SortWords(found, order)
		return printWords(stdout, found)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "wordpool:", err)
		os.Exit(1)
	}
}
