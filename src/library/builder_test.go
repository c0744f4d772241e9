package library

import (
	"regexp"
	"testing"

	"github.com/gardenappl/mitch-sub001/src/types"
)

func sampleGames() []types.Game {
	return []types.Game{
		{
			GameID:       243220,
			Name:         "A Tavern for Tea",
			Author:       "npckc",
			StoreURL:     "https://npckc.itch.io/a-tavern-for-tea",
			ThumbnailURL: "https://img.itch.zone/aW1hZ2U/thumb.png",
		},
		{
			GameID:        109466,
			Name:          "Mindustry",
			Author:        "Anuke",
			StoreURL:      "https://anuke.itch.io/mindustry",
			ThumbnailURL:  "https://img.itch.zone/aW1hZ2U/mindustry.png",
			WebEntryPoint: "https://v6p9d9t4.ssl.hwcdn.net/html/1/index.html",
		},
	}
}

func TestMergeGames(t *testing.T) {
	scrapes := []types.Game{
		{
			GameID:       243220,
			Name:         "A Tavern for Tea",
			Author:       "npckc",
			StoreURL:     "https://npckc.itch.io/a-tavern-for-tea",
			ThumbnailURL: "https://img.itch.zone/old.png",
		},
		{
			GameID:       243220,
			ThumbnailURL: "https://img.itch.zone/new.png",
			FaviconURL:   "https://npckc.itch.io/favicon.ico",
		},
	}

	builder := NewBuilder()
	merged := builder.MergeGames(scrapes)
	if merged == nil {
		t.Fatal("expected a merged record")
	}

	// later non-empty fields win, earlier ones survive gaps
	if merged.ThumbnailURL != "https://img.itch.zone/new.png" {
		t.Errorf("expected the later thumbnail, got '%s'", merged.ThumbnailURL)
	}
	if merged.Name != "A Tavern for Tea" {
		t.Errorf("expected the earlier name to survive, got '%s'", merged.Name)
	}
	if merged.FaviconURL != "https://npckc.itch.io/favicon.ico" {
		t.Errorf("expected the new favicon, got '%s'", merged.FaviconURL)
	}
}

func TestMergeGamesUnusable(t *testing.T) {
	builder := NewBuilder()

	if builder.MergeGames(nil) != nil {
		t.Error("expected nil for no scrapes")
	}

	incomplete := []types.Game{{GameID: 1, Author: "someone"}}
	if builder.MergeGames(incomplete) != nil {
		t.Error("expected nil for a record without name and store URL")
	}
}

func TestBuildLibrary(t *testing.T) {
	builder := NewBuilder()
	lib := builder.BuildLibrary(sampleGames())

	if lib.Total != 2 {
		t.Fatalf("expected 2 entries, got %d", lib.Total)
	}
	if lib.Spec.Version != 1 {
		t.Errorf("expected spec version 1, got %d", lib.Spec.Version)
	}
	if matched, _ := regexp.MatchString(`^\d{4}-\d{2}-\d{2}$`, lib.Datestamp); !matched {
		t.Errorf("expected a YYYY-MM-DD datestamp, got '%s'", lib.Datestamp)
	}

	// sorted by game ID
	if lib.GameList[0].GameID != 109466 || lib.GameList[1].GameID != 243220 {
		t.Errorf("expected entries sorted by game ID, got %d then %d",
			lib.GameList[0].GameID, lib.GameList[1].GameID)
	}

	if lib.GameList[1].Slug != "a-tavern-for-tea" {
		t.Errorf("unexpected slug '%s'", lib.GameList[1].Slug)
	}
	if lib.GameList[0].WebEntryPoint == "" {
		t.Error("expected the web entry point to be carried over")
	}
}

func TestBuildLibraryDeduplicates(t *testing.T) {
	games := sampleGames()
	games = append(games, types.Game{
		GameID:       243220,
		Name:         "A Tavern for Tea (updated)",
		Author:       "npckc",
		StoreURL:     "https://npckc.itch.io/a-tavern-for-tea",
		ThumbnailURL: "https://img.itch.zone/aW1hZ2U/thumb2.png",
	})

	lib := NewBuilder().BuildLibrary(games)
	if lib.Total != 2 {
		t.Fatalf("expected duplicates collapsed to 2 entries, got %d", lib.Total)
	}
	if lib.GameList[1].Name != "A Tavern for Tea (updated)" {
		t.Errorf("expected the last record to win, got '%s'", lib.GameList[1].Name)
	}
}

func TestFilterLibrary(t *testing.T) {
	builder := NewBuilder()
	lib := builder.BuildLibrary(sampleGames())

	filtered := builder.FilterLibrary(lib, func(e Entry) bool {
		return e.WebEntryPoint != ""
	})

	if filtered.Total != 1 {
		t.Fatalf("expected 1 entry after filtering, got %d", filtered.Total)
	}
	if filtered.GameList[0].Name != "Mindustry" {
		t.Errorf("unexpected entry '%s'", filtered.GameList[0].Name)
	}
	if filtered.Spec.Version != lib.Spec.Version || filtered.Datestamp != lib.Datestamp {
		t.Error("expected spec and datestamp preserved")
	}
}
