package validation

import (
	"strings"
	"testing"

	"github.com/gardenappl/mitch-sub001/src/library"
)

func validLibrary() library.Library {
	lib := library.Library{
		Datestamp: "2026-08-30",
		Total:     1,
		GameList: []library.Entry{
			{
				Author:       "npckc",
				GameID:       243220,
				Name:         "A Tavern for Tea",
				Slug:         "a-tavern-for-tea",
				StoreURL:     "https://npckc.itch.io/a-tavern-for-tea",
				ThumbnailURL: "https://img.itch.zone/aW1hZ2U/thumb.png",
			},
		},
	}
	lib.Spec.Version = 1
	return lib
}

func TestValidateLibrary(t *testing.T) {
	lib := validLibrary()
	if err := ValidateLibrary(&lib); err != nil {
		t.Errorf("expected a valid library, got: %v", err)
	}
}

func TestValidateLibraryBadDatestamp(t *testing.T) {
	lib := validLibrary()
	lib.Datestamp = "30/08/2026"

	err := ValidateLibrary(&lib)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !strings.Contains(err.Error(), "datestamp") {
		t.Errorf("expected a datestamp issue, got: %v", err)
	}
}

func TestValidateLibraryBadURL(t *testing.T) {
	lib := validLibrary()
	lib.GameList[0].StoreURL = "not-a-url"

	err := ValidateLibrary(&lib)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !strings.Contains(err.Error(), "store-url") {
		t.Errorf("expected a store-url issue, got: %v", err)
	}
}

func TestValidateLibraryTotalMismatch(t *testing.T) {
	lib := validLibrary()
	lib.Total = 5

	err := ValidateLibrary(&lib)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !strings.Contains(err.Error(), "total") {
		t.Errorf("expected a total mismatch issue, got: %v", err)
	}
}

func TestValidateLibraryJSON(t *testing.T) {
	data := []byte(`{
		"spec": {"version": 1},
		"datestamp": "2026-08-30",
		"total": 1,
		"game-list": [{
			"author": "npckc",
			"game-id": 243220,
			"name": "A Tavern for Tea",
			"slug": "a-tavern-for-tea",
			"store-url": "https://npckc.itch.io/a-tavern-for-tea",
			"thumbnail-url": "https://img.itch.zone/aW1hZ2U/thumb.png"
		}]
	}`)

	if err := ValidateLibraryJSON(data); err != nil {
		t.Errorf("expected valid JSON to pass, got: %v", err)
	}

	if err := ValidateLibraryJSON([]byte(`{not json`)); err == nil {
		t.Error("expected malformed JSON to fail")
	}
}
