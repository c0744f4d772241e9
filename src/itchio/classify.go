package itchio

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gardenappl/mitch-sub001/src/types"
)

// ClassifyPage determines what kind of itch.io page a document is.
// Classification reads the single data-page_name attribute rendered on
// the body; jam and forum pages collapse into one kind since neither
// carries game content.
func ClassifyPage(doc *goquery.Document) types.PageKind {
	pageName, exists := doc.Find("body").Attr("data-page_name")
	if !exists {
		return types.PageKindOther
	}

	switch pageName {
	case pageNameStore:
		return types.PageKindStore
	case pageNameDownload:
		return types.PageKindDownload
	case pageNamePurchase:
		return types.PageKindPurchase
	case pageNameUser:
		return types.PageKindUser
	case pageNameDevlog:
		return types.PageKindDevlog
	case pageNameDevlogPost:
		return types.PageKindDevlogPost
	case pageNameJam, pageNameForum:
		return types.PageKindJamOrForum
	default:
		return types.PageKindOther
	}
}

// IsGamePage reports whether the document is any page belonging to a
// single game: store, purchase, download, or devlog.
func IsGamePage(doc *goquery.Document) bool {
	switch ClassifyPage(doc) {
	case types.PageKindStore, types.PageKindPurchase, types.PageKindDownload,
		types.PageKindDevlog, types.PageKindDevlogPost:
		return true
	default:
		return false
	}
}

// HasDownloadLinks reports whether the page carries any inline download
// buttons. On free, unrestricted games the store page embeds them
// directly and no separate download page exists.
func HasDownloadLinks(doc *goquery.Document) bool {
	return doc.Find(selDownloadButton).Length() > 0
}

// ShouldApplyDayNightTheme reports whether a client may apply its own
// day/night theme. Pages that ship a page-specific theme container
// (game or user themes, jam styles) keep their own colors.
func ShouldApplyDayNightTheme(doc *goquery.Document) bool {
	return doc.Find(selThemeStyle).Length() == 0
}

var gamePathRegex = regexp.MustCompile(`games/(\d+)$`)

// GameID extracts the numeric game ID from the itch:path meta tag.
// Returns nil when the tag is absent or its content has no numeric
// suffix; most non-game pages legitimately lack it.
func GameID(doc *goquery.Document) *int64 {
	content, exists := doc.Find(selGamePathTag).Attr("content")
	if !exists {
		return nil
	}

	matches := gamePathRegex.FindStringSubmatch(content)
	if len(matches) < 2 {
		return nil
	}

	id, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

// LoggedInUsername returns the username shown in the page header, or ""
// when the visitor is logged out.
func LoggedInUsername(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find(selUserName).First().Text())
}

// IsDarkTheme reports whether the root layout carries the dark theme
// class.
func IsDarkTheme(doc *goquery.Document) bool {
	return doc.Find(selMainLayout).First().HasClass("dark_theme")
}

// PageLocale returns the page-level locale indicator. Absence yields
// the UnknownLocale sentinel, never "": downstream comparison logic
// treats "unknown" as its own category.
func PageLocale(doc *goquery.Document) string {
	lang, exists := doc.Find("html").Attr("lang")
	if !exists || strings.TrimSpace(lang) == "" {
		return types.UnknownLocale
	}
	return strings.TrimSpace(lang)
}

// Three ordered attempts at pulling an accent color out of embedded
// style blocks: game/jam theme button color, user theme link color,
// then the jam-specific link-color rule. First match wins.
var accentColorRegexes = []*regexp.Regexp{
	regexp.MustCompile(`--itchio_button_color:\s*(#[0-9a-fA-F]{3,8})`),
	regexp.MustCompile(`--itchio_link_color:\s*(#[0-9a-fA-F]{3,8})`),
	regexp.MustCompile(`\.jam_layout\s+a[^{]*\{[^}]*color:\s*(#[0-9a-fA-F]{3,8})`),
}

// AccentColor extracts the page's accent color from its embedded
// <style> blocks. Returns "" when no rule matches; callers fall back to
// the default theme.
func AccentColor(doc *goquery.Document) string {
	var styleText strings.Builder
	doc.Find("style").Each(func(i int, s *goquery.Selection) {
		styleText.WriteString(s.Text())
		styleText.WriteString("\n")
	})

	css := styleText.String()
	for _, re := range accentColorRegexes {
		if matches := re.FindStringSubmatch(css); len(matches) > 1 {
			return matches[1]
		}
	}
	return ""
}
