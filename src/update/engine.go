package update

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gardenappl/mitch-sub001/src/http"
	"github.com/gardenappl/mitch-sub001/src/itchio"
	"github.com/gardenappl/mitch-sub001/src/retry"
	"github.com/gardenappl/mitch-sub001/src/types"
)

// Code is the terminal outcome of one update check. There are no
// further transitions from any of these.
type Code int

const (
	UpToDate Code = iota
	UpdateNeeded
	AccessDenied
	Empty
	Error
)

func (c Code) String() string {
	switch c {
	case UpToDate:
		return "up-to-date"
	case UpdateNeeded:
		return "update-needed"
	case AccessDenied:
		return "access-denied"
	case Empty:
		return "empty"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the structured outcome of an update check. Upload and
// DownloadURL are populated when a concrete candidate was compared, so
// an UpdateNeeded result carries everything needed to drive a
// download. Persisting the result is the caller's job.
type Result struct {
	Code         Code
	Upload       *types.Upload
	DownloadURL  *types.DownloadURL
	ErrorMessage string
	// Ambiguous marks checks where every comparison rule was skipped
	// for missing data. The result is still UpToDate; callers should
	// log it.
	Ambiguous bool
}

// InstallationLookup is the read-only boundary to the persistence
// layer: the engine compares against it but never writes it.
type InstallationLookup interface {
	Installation(gameID int64, uploadID *int64) (*types.Installation, error)
}

// Engine runs update checks: fetch the store page, resolve where the
// downloads live, extract the current candidates, compare with the
// installed record. Each check owns its documents and candidate list;
// the engine holds no state between invocations and callers may run
// many checks concurrently.
type Engine struct {
	Client   http.HTTPClient
	Installs InstallationLookup
	Resolver *itchio.Resolver
	Retry    retry.Config
	Cookies  string
}

// Check runs one update check for the given game/upload pair. Every
// fetch or parse failure becomes an Error result with a message; the
// engine never retries beyond the HTTP layer's own backoff — scheduling
// retries is the caller's concern.
func (e *Engine) Check(ctx context.Context, gameID int64, uploadID *int64) Result {
	installed, err := e.Installs.Installation(gameID, uploadID)
	if err != nil {
		return errorResult(err)
	}
	if installed == nil {
		return Result{Code: Empty}
	}

	storeDoc, err := e.fetchDocument(ctx, installed.StoreURL)
	if err != nil {
		return errorResult(err)
	}

	downloadURL, err := e.Resolver.Resolve(ctx, storeDoc, installed.StoreURL, e.Cookies)
	if err != nil {
		return errorResult(err)
	}
	if downloadURL == nil {
		return Result{Code: AccessDenied}
	}

	downloadDoc := storeDoc
	if !downloadURL.IsStorePage {
		downloadDoc, err = e.fetchDocument(ctx, downloadURL.URL)
		if err != nil {
			return errorResult(err)
		}
	}

	candidates := itchio.ExtractUploads(downloadDoc, gameID)
	candidate := matchCandidate(installed, candidates)
	if candidate == nil {
		return Result{Code: Empty, DownloadURL: downloadURL}
	}

	code, ambiguous := Compare(*installed, *candidate)
	if ambiguous {
		slog.Warn("update check was ambiguous, assuming up to date",
			"game_id", gameID, "upload", candidate.LocalKey())
	}

	return Result{
		Code:        code,
		Upload:      candidate,
		DownloadURL: downloadURL,
		Ambiguous:   ambiguous,
	}
}

func (e *Engine) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	resp, err := retry.Get(ctx, e.Client, url, e.Cookies, e.Retry)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("non-200 status code %d for %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(resp.Body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML from %s: %w", url, err)
	}
	return doc, nil
}

// matchCandidate finds the freshly scraped upload that corresponds to
// the installed one: by upload ID when the installed record has one,
// otherwise the first candidate (DOM order) supporting any of the
// installed platforms — records that predate upload-ID tracking have
// nothing better to go on.
func matchCandidate(installed *types.Installation, candidates []types.Upload) *types.Upload {
	if installed.UploadID != nil {
		for i := range candidates {
			if candidates[i].UploadID != nil && *candidates[i].UploadID == *installed.UploadID {
				return &candidates[i]
			}
		}
		return nil
	}

	for i := range candidates {
		if candidates[i].Platforms.Overlaps(installed.Platforms) {
			return &candidates[i]
		}
	}
	return nil
}

// Compare applies the update-decision precedence rules to one
// installed/candidate pair. Rules are evaluated in order and the first
// decisive one wins; a rule is skipped when either side is missing the
// field it compares.
//
// The second return value reports the ambiguous case: every rule
// skipped. The result is then UpToDate on purpose — a deliberate,
// conservative product policy (avoid spurious update nagging), not a
// fallback.
func Compare(installed types.Installation, candidate types.Upload) (Code, bool) {
	applied := false

	// Differing numeric upload IDs always mean a new build.
	if installed.UploadID != nil && candidate.UploadID != nil {
		applied = true
		if *installed.UploadID != *candidate.UploadID {
			return UpdateNeeded, false
		}
	}

	// Build-specific timestamps compare as opaque strings. Page-level
	// timestamps are excluded: they move on unrelated project edits and
	// are too weak a signal on their own.
	if installed.BuildTimestamp && installed.Timestamp != "" &&
		candidate.BuildTimestamp && candidate.Timestamp != "" {
		applied = true
		if installed.Timestamp != candidate.Timestamp {
			return UpdateNeeded, false
		}
	}

	if installed.Version != "" && candidate.Version != "" {
		applied = true
		if installed.Version != candidate.Version {
			return UpdateNeeded, false
		}
	}

	// File sizes are display strings, compared verbatim.
	if installed.FileSize != "" && candidate.FileSize != "" {
		applied = true
		if installed.FileSize != candidate.FileSize {
			return UpdateNeeded, false
		}
	}

	if !applied {
		return UpToDate, true
	}
	return UpToDate, false
}

func errorResult(err error) Result {
	return Result{Code: Error, ErrorMessage: err.Error()}
}
