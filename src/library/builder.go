package library

import (
	"sort"
	"time"

	"github.com/gosimple/slug"

	"github.com/gardenappl/mitch-sub001/src/types"
)

// Entry is one game in an exported library document.
// Note: keep fields alphabetised for deterministic JSON output
type Entry struct {
	Author        string `json:"author"`
	GameID        int64  `json:"game-id"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	StoreURL      string `json:"store-url"`
	ThumbnailURL  string `json:"thumbnail-url"`
	WebEntryPoint string `json:"web-entry-point,omitempty"`
}

// Library is the exported collection document.
type Library struct {
	Spec struct {
		Version int `json:"version"`
	} `json:"spec"`
	Datestamp string  `json:"datestamp"`
	Total     int     `json:"total"`
	GameList  []Entry `json:"game-list"`
}

// Builder turns scraped game records into library documents
type Builder struct{}

// NewBuilder creates a new library builder
func NewBuilder() *Builder {
	return &Builder{}
}

// MergeGames collapses multiple scrapes of the same game into one
// record: non-empty fields from later scrapes override earlier ones,
// matching the last-write-wins upsert semantics of the store.
func (b *Builder) MergeGames(scrapes []types.Game) *types.Game {
	if len(scrapes) == 0 {
		return nil
	}

	merged := types.Game{GameID: scrapes[0].GameID}
	for _, g := range scrapes {
		if g.Name != "" {
			merged.Name = g.Name
		}
		if g.Author != "" {
			merged.Author = g.Author
		}
		if g.StoreURL != "" {
			merged.StoreURL = g.StoreURL
		}
		if g.DownloadPageURL != "" {
			merged.DownloadPageURL = g.DownloadPageURL
		}
		if g.ThumbnailURL != "" {
			merged.ThumbnailURL = g.ThumbnailURL
		}
		if g.WebEntryPoint != "" {
			merged.WebEntryPoint = g.WebEntryPoint
		}
		if g.WebIframe != "" {
			merged.WebIframe = g.WebIframe
		}
		if g.FaviconURL != "" {
			merged.FaviconURL = g.FaviconURL
		}
	}

	// A record that never got its required identity fields is unusable
	if merged.Name == "" || merged.StoreURL == "" {
		return nil
	}

	return &merged
}

// BuildLibrary creates a library document from game records. Output is
// deterministic: one entry per game ID (last record wins), sorted by
// game ID, which is stable across re-scrapes unlike names.
func (b *Builder) BuildLibrary(games []types.Game) Library {
	byID := make(map[int64]types.Game)
	for _, g := range games {
		byID[g.GameID] = g
	}

	entries := make([]Entry, 0, len(byID))
	for _, g := range byID {
		entries = append(entries, Entry{
			Author:        g.Author,
			GameID:        g.GameID,
			Name:          g.Name,
			Slug:          slug.Make(g.Name),
			StoreURL:      g.StoreURL,
			ThumbnailURL:  g.ThumbnailURL,
			WebEntryPoint: g.WebEntryPoint,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].GameID < entries[j].GameID
	})

	lib := Library{
		Datestamp: time.Now().Format("2006-01-02"),
		Total:     len(entries),
		GameList:  entries,
	}
	lib.Spec.Version = 1
	return lib
}

// FilterLibrary keeps only the entries matching a predicate.
func (b *Builder) FilterLibrary(lib Library, predicate func(Entry) bool) Library {
	var kept []Entry
	for _, entry := range lib.GameList {
		if predicate(entry) {
			kept = append(kept, entry)
		}
	}

	return Library{
		Spec:      lib.Spec,
		Datestamp: lib.Datestamp,
		Total:     len(kept),
		GameList:  kept,
	}
}
