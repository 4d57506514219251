package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/rivsy/rivsy/pkg/cache"
	"github.com/rivsy/rivsy/pkg/config"
	"github.com/rivsy/rivsy/pkg/content"
	"github.com/rivsy/rivsy/pkg/credits"
	"github.com/rivsy/rivsy/pkg/feed"
	"github.com/rivsy/rivsy/pkg/ingest"
	"github.com/rivsy/rivsy/pkg/llm"
	"github.com/rivsy/rivsy/pkg/repository"
	"github.com/rivsy/rivsy/pkg/scheduler"
	"github.com/rivsy/rivsy/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)

	log.Printf("[INFO] starting rivsy version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	log.Print("[INFO] shutdown complete")
}

// run wires all components together and blocks until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("load config %s: %w", opts.Config, err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer func() {
		if closeErr := repos.Close(); closeErr != nil {
			log.Printf("[WARN] failed to close storage: %v", closeErr)
		}
	}()

	// ingestion: fetcher with scraping fallback, dedup, pipeline
	scraper := content.NewScraper(cfg.Fetch.Timeout, cfg.Fetch.UserAgent)
	fetcher := feed.NewFetcher(cfg.Fetch.Timeout, cfg.Fetch.UserAgent, scraper)
	deduper := ingest.NewDeduplicator(repos.Article)
	pipeline := ingest.NewPipeline(repos.Feed, fetcher, deduper)

	// optional redis side channel for refresh markers
	refreshCache := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.TTL)
	defer func() {
		if closeErr := refreshCache.Close(); closeErr != nil {
			log.Printf("[WARN] failed to close cache: %v", closeErr)
		}
	}()

	schedParams := scheduler.Params{
		Feeds:         repos.Feed,
		Refresher:     pipeline,
		CheckInterval: cfg.Schedule.CheckInterval,
		MaxWorkers:    cfg.Schedule.MaxWorkers,
	}
	if refreshCache.Enabled() {
		schedParams.Recorder = refreshCache
	}
	sched := scheduler.NewScheduler(schedParams)
	sched.Start(ctx)
	defer sched.Stop()

	ledger := credits.NewLedger(repos.Credit)
	enricher := llm.NewEnricher(cfg.GetAIConfig())

	srv := server.New(server.Params{
		Config:        cfg,
		Feeds:         pipeline,
		Subscriptions: repos.Subscription,
		Articles:      repos.Article,
		Credits:       ledger,
		Enricher:      enricher,
		Version:       revision,
		Debug:         opts.Debug,
	})

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug)
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
