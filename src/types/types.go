package types

import "strconv"

// Platform is a bitmask of operating systems an upload supports.
// A single upload row can declare several platforms at once.
type Platform int

const (
	PlatformWindows Platform = 1 << iota
	PlatformMac
	PlatformLinux
	PlatformAndroid
)

// Has reports whether every platform bit in p2 is set in p.
func (p Platform) Has(p2 Platform) bool {
	return p&p2 == p2
}

// Overlaps reports whether p and p2 share at least one platform bit.
func (p Platform) Overlaps(p2 Platform) bool {
	return p&p2 != 0
}

// UnknownLocale is the sentinel returned when a page exposes no locale.
// It is a comparable category of its own, distinct from any real locale,
// so cross-page comparisons never have to deal with an empty string.
const UnknownLocale = "unknown"

// PageKind classifies an itch.io page from its server-rendered markup.
type PageKind int

const (
	PageKindOther PageKind = iota
	PageKindStore
	PageKindDownload
	PageKindPurchase
	PageKindUser
	PageKindDevlog
	PageKindDevlogPost
	PageKindJamOrForum
)

func (k PageKind) String() string {
	switch k {
	case PageKindStore:
		return "store"
	case PageKindDownload:
		return "download"
	case PageKindPurchase:
		return "purchase"
	case PageKindUser:
		return "user"
	case PageKindDevlog:
		return "devlog"
	case PageKindDevlogPost:
		return "devlog-post"
	case PageKindJamOrForum:
		return "jam-or-forum"
	default:
		return "other"
	}
}

// Game is the identity record for an itch.io project.
// Note: keep fields alphabetised for deterministic JSON output
type Game struct {
	Author          string `json:"author"`
	DownloadPageURL string `json:"download-page-url,omitempty"`
	FaviconURL      string `json:"favicon-url,omitempty"`
	GameID          int64  `json:"game-id"`
	Name            string `json:"name"`
	StoreURL        string `json:"store-url"`
	ThumbnailURL    string `json:"thumbnail-url"`
	WebEntryPoint   string `json:"web-entry-point,omitempty"`
	WebIframe       string `json:"web-iframe,omitempty"`
}

// WebEmbed describes a playable browser build hosted on the store page.
type WebEmbed struct {
	EntryPoint string `json:"entry-point"`
	Iframe     string `json:"iframe,omitempty"`
	FaviconURL string `json:"favicon-url,omitempty"`
}

// Purchase is one purchasable item row on a store page.
type Purchase struct {
	Name  string `json:"name"`
	Price string `json:"price"` // display string, "free" when no price shown
}

// PaymentInfo summarises how a project is monetised.
type PaymentInfo struct {
	Price    string `json:"price,omitempty"` // display string, currency included
	Donation bool   `json:"donation"`        // "pay what you want"
	Free     bool   `json:"free"`
}

// Upload is one candidate downloadable artifact scraped from a
// download or purchase page.
//
// UploadID is nil when the visitor lacks the access needed for the page
// to expose it. Version and FileSize are display strings kept verbatim;
// they are compared as opaque text, never parsed. Timestamp may be
// empty; BuildTimestamp records whether it came from the upload row
// itself (usable as an update signal) or only from the page header.
type Upload struct {
	GameID         int64    `json:"game-id"`
	Position       int      `json:"position"` // ordinal in DOM order
	UploadID       *int64   `json:"upload-id,omitempty"`
	Name           string   `json:"name"`
	Platforms      Platform `json:"platforms"`
	FileSize       string   `json:"file-size,omitempty"`
	Version        string   `json:"version,omitempty"`
	Timestamp      string   `json:"timestamp,omitempty"`
	BuildTimestamp bool     `json:"build-timestamp"`
}

// LocalKey disambiguates uploads that expose no numeric ID. Two
// ID-less uploads on the same page differ by ordinal position, so the
// derived key never collides locally.
func (u Upload) LocalKey() string {
	if u.UploadID != nil {
		return "upload/" + strconv.FormatInt(*u.UploadID, 10)
	}
	return "game/" + strconv.FormatInt(u.GameID, 10) + "/pos/" + strconv.Itoa(u.Position)
}

// DownloadURL is a resolved location for a game's downloads.
type DownloadURL struct {
	URL string `json:"url"`
	// IsPermanent marks URLs that can be reused later without being
	// re-derived. Session-scoped claim redirects are not permanent and
	// must never be cached.
	IsPermanent bool `json:"is-permanent"`
	// IsStorePage marks the case where the URL is the store page
	// itself: downloads are embedded inline and no separate fetch of a
	// download page is needed.
	IsStorePage bool `json:"is-store-page"`
}

// InstallStatus is the lifecycle state of a local installation record.
type InstallStatus string

const (
	StatusInstalled   InstallStatus = "installed"
	StatusDownloading InstallStatus = "downloading"
	StatusInstalling  InstallStatus = "installing"
	StatusWebCached   InstallStatus = "web-cached"
	StatusPending     InstallStatus = "pending"
)

// Installation is the locally known state of a downloaded upload,
// supplied by the persistence layer and consumed read-only by the
// update engine. Position carries the source upload's ordinal so that
// ID-less installations of the same game stay distinct when persisted.
type Installation struct {
	GameID         int64         `json:"game-id"`
	UploadID       *int64        `json:"upload-id,omitempty"`
	Position       int           `json:"position"`
	Name           string        `json:"name"`
	Version        string        `json:"version,omitempty"`
	FileSize       string        `json:"file-size,omitempty"`
	Timestamp      string        `json:"timestamp,omitempty"`
	BuildTimestamp bool          `json:"build-timestamp"`
	Platforms      Platform      `json:"platforms"`
	Status         InstallStatus `json:"status"`
	StoreURL       string        `json:"store-url"`
}
