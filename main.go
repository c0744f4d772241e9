package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/lmittmann/tint"
	_ "go.uber.org/automaxprocs"

	"github.com/gardenappl/mitch-sub001/src/cache"
	"github.com/gardenappl/mitch-sub001/src/cli"
	"github.com/gardenappl/mitch-sub001/src/config"
	httpClient "github.com/gardenappl/mitch-sub001/src/http"
	"github.com/gardenappl/mitch-sub001/src/store"
)

var APP_VERSION = "unreleased"
var APP_LOC = "https://github.com/gardenappl/mitch-sub001"

func main() {
	// Parse command line flags
	flags, err := cli.ParseFlags(os.Args, APP_VERSION)
	if err != nil {
		slog.Error("failed to parse flags", "error", err)
		os.Exit(1)
	}

	// Setup logging
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: flags.LogLevel,
	})))

	// Load configuration (cookie, data dir, TTLs)
	cfg, err := config.Load(".", APP_VERSION)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup cache
	if err := os.MkdirAll(cfg.CacheDir, 0755); err != nil {
		slog.Error("failed to create cache directory", "error", err)
		os.Exit(1)
	}

	cacheConfig := cache.CacheConfig{
		Directory:        cfg.CacheDir,
		DefaultTTLHours:  cfg.CacheTTLHours,
		GamePageTTLHours: cfg.GamePageTTLHours,
	}

	// Setup HTTP client with caching
	cachingTransport := cache.NewFileCachingTransport(cacheConfig, http.DefaultTransport)
	client := httpClient.NewRealHTTPClient(cachingTransport, userAgent(cfg))

	// Open the installation/key database
	st, err := store.Open(cfg.DatabasePath, time.Duration(cfg.KeyTTLHours)*time.Hour)
	if err != nil {
		slog.Error("failed to open database", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}

	// Create command handler
	handler := cli.NewCommandHandler(st, cfg)
	ctx := context.Background()

	// Execute command
	switch flags.SubCommand {
	case cli.ScanSubCommand:
		scanConfig := flags.ScanConfig
		scanConfig.HTTPClient = client

		if err := handler.Scan(ctx, scanConfig); err != nil {
			slog.Error("scan command failed", "error", err)
			os.Exit(1)
		}

	case cli.CheckSubCommand:
		checkConfig := flags.CheckConfig
		checkConfig.HTTPClient = client

		if err := handler.Check(ctx, checkConfig); err != nil {
			slog.Error("check command failed", "error", err)
			os.Exit(1)
		}

	case cli.ExportSubCommand:
		if err := handler.Export(ctx, flags.ExportConfig); err != nil {
			slog.Error("export command failed", "error", err)
			os.Exit(1)
		}

	default:
		slog.Error("unknown subcommand", "subcommand", flags.SubCommand)
		os.Exit(1)
	}
}

func userAgent(cfg config.Config) string {
	if cfg.UserAgent != "" {
		return cfg.UserAgent
	}
	return "mitch-scraper/" + APP_VERSION + " (" + APP_LOC + ")"
}
