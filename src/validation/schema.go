package validation

import (
	"net/url"

	"github.com/Oudwins/zog"

	"github.com/gardenappl/mitch-sub001/src/library"
)

// isValidURLPtr checks if a string pointer is a valid absolute URL
func isValidURLPtr(val *string, ctx zog.Ctx) bool {
	if val == nil || *val == "" {
		return false
	}
	u, err := url.Parse(*val)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// isValidDateStringPtr checks if a string pointer is a YYYY-MM-DD date
func isValidDateStringPtr(val *string, ctx zog.Ctx) bool {
	if val == nil {
		return false
	}
	return dateRegex.MatchString(*val)
}

// EntrySchema validates one library entry (PascalCase field names)
var EntrySchema = zog.Struct(zog.Schema{
	"Author":        zog.String().Required().Min(1, zog.Message("author must be a non-empty string")),
	"GameID":        zog.Int64().Required().GT(0, zog.Message("game-id must be a positive integer")),
	"Name":          zog.String().Required().Min(1, zog.Message("name must be a non-empty string")),
	"Slug":          zog.String().Required().Min(1, zog.Message("slug must be a non-empty string")),
	"StoreURL":      zog.String().Required().TestFunc(isValidURLPtr, zog.Message("store-url must be a valid URL")),
	"ThumbnailURL":  zog.String().Required().TestFunc(isValidURLPtr, zog.Message("thumbnail-url must be a valid URL")),
	"WebEntryPoint": zog.String().Optional(),
})

// totalMatchesEntryCount validates that total equals the entry count
func totalMatchesEntryCount(val any, ctx zog.Ctx) bool {
	lib, ok := val.(*library.Library)
	if !ok {
		return false
	}
	return lib.Total == len(lib.GameList)
}

// LibrarySchema validates an exported library document
var LibrarySchema = zog.Struct(zog.Schema{
	"Spec": zog.Struct(zog.Schema{
		"Version": zog.Int().Required().GTE(1, zog.Message("spec version must be >= 1")),
	}).Required(),
	"Datestamp": zog.String().Required().TestFunc(isValidDateStringPtr, zog.Message("datestamp must be a YYYY-MM-DD date")),
	"Total":     zog.Int().Required().GTE(0, zog.Message("total must be a non-negative integer")),
	"GameList":  zog.Slice(EntrySchema).Required(),
}).TestFunc(totalMatchesEntryCount, zog.Message("total must equal the number of entries in game-list"))
