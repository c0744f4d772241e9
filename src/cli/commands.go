package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"github.com/gardenappl/mitch-sub001/src/config"
	"github.com/gardenappl/mitch-sub001/src/http"
	"github.com/gardenappl/mitch-sub001/src/itchio"
	"github.com/gardenappl/mitch-sub001/src/library"
	"github.com/gardenappl/mitch-sub001/src/retry"
	"github.com/gardenappl/mitch-sub001/src/store"
	"github.com/gardenappl/mitch-sub001/src/types"
	"github.com/gardenappl/mitch-sub001/src/update"
	"github.com/gardenappl/mitch-sub001/src/validation"
)

// ScanConfig holds configuration for scanning store pages
type ScanConfig struct {
	HTTPClient  http.HTTPClient
	URLs        []string
	OutputFiles []string
}

// CheckConfig holds configuration for bulk update checks
type CheckConfig struct {
	HTTPClient http.HTTPClient
	Workers    int
}

// ExportConfig holds configuration for writing library documents
type ExportConfig struct {
	OutputFiles []string
}

// CommandHandler handles CLI commands
type CommandHandler struct {
	store   *store.Store
	builder *library.Builder
	cfg     config.Config
}

// NewCommandHandler creates a new command handler
func NewCommandHandler(st *store.Store, cfg config.Config) *CommandHandler {
	return &CommandHandler{
		store:   st,
		builder: library.NewBuilder(),
		cfg:     cfg,
	}
}

// Scan fetches store pages, records the games they describe, and writes
// a library document.
func (h *CommandHandler) Scan(ctx context.Context, scanCfg ScanConfig) error {
	slog.Info("starting scan command", "urls", len(scanCfg.URLs))

	var games []types.Game
	for _, url := range scanCfg.URLs {
		game, err := h.scanStorePage(ctx, scanCfg.HTTPClient, url)
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", url, err)
		}
		if game == nil {
			continue
		}

		if err := h.store.UpsertGame(*game); err != nil {
			return fmt.Errorf("failed to record game %d: %w", game.GameID, err)
		}
		games = append(games, *game)
	}

	lib := h.builder.BuildLibrary(games)
	slog.Info("built library", "total", lib.Total)

	return h.writeLibrary(lib, scanCfg.OutputFiles)
}

// scanStorePage fetches and extracts one store page. A page that turns
// out not to be a usable store page is skipped with a warning, not an
// error: scans cover many URLs and one odd page should not abort them.
func (h *CommandHandler) scanStorePage(ctx context.Context, client http.HTTPClient, url string) (*types.Game, error) {
	resp, err := retry.Get(ctx, client, url, h.cfg.Cookies, retry.DefaultConfig())
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("non-200 status code %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(resp.Body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	kind := itchio.ClassifyPage(doc)
	if kind != types.PageKindStore {
		slog.Warn("not a store page, skipping", "url", url, "kind", kind.String())
		return nil, nil
	}

	game := itchio.ExtractGame(doc, url)
	if game == nil {
		slog.Warn("store page is missing required fields, skipping", "url", url)
		return nil, nil
	}

	slog.Debug("scanned store page",
		"game_id", game.GameID,
		"name", game.Name,
		"locale", itchio.PageLocale(doc),
		"android", itchio.HasAndroidBuild(doc),
		"desktop", itchio.HasDesktopBuild(doc),
		"donation", itchio.ExtractPaymentInfo(doc).Donation,
	)

	return game, nil
}

// Check runs update checks for every recorded installation, a bounded
// number at a time. Each check owns its own fetches and documents; the
// pool only limits how many are in flight.
func (h *CommandHandler) Check(ctx context.Context, checkCfg CheckConfig) error {
	installs, err := h.store.Installations()
	if err != nil {
		return fmt.Errorf("failed to list installations: %w", err)
	}
	if len(installs) == 0 {
		slog.Info("no installations recorded, nothing to check")
		return nil
	}

	workers := checkCfg.Workers
	if workers <= 0 {
		workers = h.cfg.Workers
	}
	// jobs is unbuffered: with zero workers the send below would block
	// forever
	if workers <= 0 {
		workers = 1
	}

	engine := &update.Engine{
		Client:   checkCfg.HTTPClient,
		Installs: h.store,
		Resolver: &itchio.Resolver{Client: checkCfg.HTTPClient, Keys: h.store},
		Retry:    retry.DefaultConfig(),
		Cookies:  h.cfg.Cookies,
	}

	slog.Info("checking installations for updates", "count", len(installs), "workers", workers)

	jobs := make(chan types.Installation)
	counts := make(map[update.Code]int)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for install := range jobs {
				result := engine.Check(ctx, install.GameID, install.UploadID)
				logCheckResult(install, result)

				mu.Lock()
				counts[result.Code]++
				mu.Unlock()
			}
		}()
	}

	for _, install := range installs {
		jobs <- install
	}
	close(jobs)
	wg.Wait()

	slog.Info("finished update checks",
		"up_to_date", counts[update.UpToDate],
		"update_needed", counts[update.UpdateNeeded],
		"access_denied", counts[update.AccessDenied],
		"empty", counts[update.Empty],
		"errors", counts[update.Error],
	)
	return nil
}

func logCheckResult(install types.Installation, result update.Result) {
	switch result.Code {
	case update.UpdateNeeded:
		slog.Info("update available",
			"game_id", install.GameID,
			"installed", install.Name,
			"new_upload", result.Upload.Name,
			"new_version", result.Upload.Version,
			"download_url", result.DownloadURL.URL,
		)
	case update.Error:
		slog.Error("update check failed", "game_id", install.GameID, "error", result.ErrorMessage)
	default:
		slog.Info("checked installation", "game_id", install.GameID, "result", result.Code.String())
	}
}

// Export writes a library document from the recorded games.
func (h *CommandHandler) Export(ctx context.Context, exportCfg ExportConfig) error {
	games, err := h.store.Games()
	if err != nil {
		return fmt.Errorf("failed to list games: %w", err)
	}

	lib := h.builder.BuildLibrary(games)
	slog.Info("built library", "total", lib.Total)

	return h.writeLibrary(lib, exportCfg.OutputFiles)
}

// writeLibrary validates and writes the library to the output files
func (h *CommandHandler) writeLibrary(lib library.Library, outputFiles []string) error {
	if err := validation.ValidateLibrary(&lib); err != nil {
		return err
	}

	jsonData, err := json.MarshalIndent(lib, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal library: %w", err)
	}

	if len(outputFiles) == 0 {
		// Write to stdout
		fmt.Println(string(jsonData))
		return nil
	}

	for _, outputFile := range outputFiles {
		if err := os.WriteFile(outputFile, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write library to %s: %w", outputFile, err)
		}
		slog.Info("wrote library", "file", outputFile, "games", lib.Total)
	}

	return nil
}
