package store

import (
	"time"

	"gorm.io/gorm"
)

// GameRecord is the persisted identity of an itch.io project. At most
// one live row per game ID; re-scrapes upsert last-write-wins.
type GameRecord struct {
	gorm.Model
	GameID          int64 `gorm:"uniqueIndex"`
	Name            string
	Author          string
	StoreURL        string
	DownloadPageURL string
	ThumbnailURL    string
	WebEntryPoint   string
	WebIframe       string
	FaviconURL      string
}

// InstallationRecord is the locally known state of one downloaded
// upload, tracked across lifecycle transitions.
type InstallationRecord struct {
	gorm.Model
	GameID   int64  `gorm:"index"`
	UploadID *int64 // absent for records predating upload-ID tracking
	Position int    // ordinal on the source page, part of the derived key
	// LocalKey keeps ID-less uploads on the same page apart
	LocalKey       string `gorm:"uniqueIndex"`
	Name           string
	Version        string
	FileSize       string
	Timestamp      string
	BuildTimestamp bool
	Platforms      int
	Status         string
	StoreURL       string
}

// DownloadKeyRecord caches a permanent download URL granted by a
// completed purchase or bundle claim, per game and username.
type DownloadKeyRecord struct {
	gorm.Model
	GameID    int64  `gorm:"index:idx_download_key_owner,unique"`
	Username  string `gorm:"index:idx_download_key_owner,unique"`
	URL       string
	ExpiresAt time.Time
}
