package store

import (
	"errors"
	"fmt"
	"time"

	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/gormlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gardenappl/mitch-sub001/src/types"
)

// Store is the SQLite-backed persistence layer for games,
// installations, and cached download keys. The scraping/decision core
// only ever sees it through narrow interfaces.
type Store struct {
	db     *gorm.DB
	keyTTL time.Duration
}

// Open opens (or creates) the database at path and migrates the schema.
func Open(path string, keyTTL time.Duration) (*Store, error) {
	db, err := gorm.Open(gormlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", path, err)
	}

	if err := db.AutoMigrate(&GameRecord{}, &InstallationRecord{}, &DownloadKeyRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}

	return &Store{db: db, keyTTL: keyTTL}, nil
}

// UpsertGame writes a game identity record, replacing any existing row
// for the same game ID. Game IDs are globally unique and stable across
// re-scrapes, so last write wins.
func (s *Store) UpsertGame(game types.Game) error {
	record := GameRecord{
		GameID:          game.GameID,
		Name:            game.Name,
		Author:          game.Author,
		StoreURL:        game.StoreURL,
		DownloadPageURL: game.DownloadPageURL,
		ThumbnailURL:    game.ThumbnailURL,
		WebEntryPoint:   game.WebEntryPoint,
		WebIframe:       game.WebIframe,
		FaviconURL:      game.FaviconURL,
	}

	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "game_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "author", "store_url", "download_page_url",
			"thumbnail_url", "web_entry_point", "web_iframe", "favicon_url",
			"updated_at",
		}),
	}).Create(&record).Error
}

// Games returns every stored game record.
func (s *Store) Games() ([]types.Game, error) {
	var records []GameRecord
	if err := s.db.Order("game_id").Find(&records).Error; err != nil {
		return nil, err
	}

	games := make([]types.Game, 0, len(records))
	for _, r := range records {
		games = append(games, gameFromRecord(r))
	}
	return games, nil
}

func gameFromRecord(r GameRecord) types.Game {
	return types.Game{
		GameID:          r.GameID,
		Name:            r.Name,
		Author:          r.Author,
		StoreURL:        r.StoreURL,
		DownloadPageURL: r.DownloadPageURL,
		ThumbnailURL:    r.ThumbnailURL,
		WebEntryPoint:   r.WebEntryPoint,
		WebIframe:       r.WebIframe,
		FaviconURL:      r.FaviconURL,
	}
}

// SaveInstallation records the state of one installed/pending upload,
// keyed by its local key.
func (s *Store) SaveInstallation(install types.Installation) error {
	upload := types.Upload{GameID: install.GameID, Position: install.Position, UploadID: install.UploadID}
	record := InstallationRecord{
		GameID:         install.GameID,
		UploadID:       install.UploadID,
		Position:       install.Position,
		LocalKey:       upload.LocalKey(),
		Name:           install.Name,
		Version:        install.Version,
		FileSize:       install.FileSize,
		Timestamp:      install.Timestamp,
		BuildTimestamp: install.BuildTimestamp,
		Platforms:      int(install.Platforms),
		Status:         string(install.Status),
		StoreURL:       install.StoreURL,
	}

	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "local_key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "version", "file_size", "timestamp", "build_timestamp",
			"platforms", "status", "store_url", "updated_at",
		}),
	}).Create(&record).Error
}

// Installation looks up the baseline record for an update check.
// Returns (nil, nil) when nothing is installed for the pair — an
// expected outcome, not an error.
func (s *Store) Installation(gameID int64, uploadID *int64) (*types.Installation, error) {
	query := s.db.Where("game_id = ?", gameID)
	if uploadID != nil {
		query = query.Where("upload_id = ?", *uploadID)
	}

	var record InstallationRecord
	err := query.Order("id").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	install := installationFromRecord(record)
	return &install, nil
}

// Installations returns every installation record, for bulk checks.
func (s *Store) Installations() ([]types.Installation, error) {
	var records []InstallationRecord
	if err := s.db.Order("game_id").Find(&records).Error; err != nil {
		return nil, err
	}

	installs := make([]types.Installation, 0, len(records))
	for _, r := range records {
		installs = append(installs, installationFromRecord(r))
	}
	return installs, nil
}

func installationFromRecord(r InstallationRecord) types.Installation {
	return types.Installation{
		GameID:         r.GameID,
		UploadID:       r.UploadID,
		Position:       r.Position,
		Name:           r.Name,
		Version:        r.Version,
		FileSize:       r.FileSize,
		Timestamp:      r.Timestamp,
		BuildTimestamp: r.BuildTimestamp,
		Platforms:      types.Platform(r.Platforms),
		Status:         types.InstallStatus(r.Status),
		StoreURL:       r.StoreURL,
	}
}

// Get returns a cached permanent download URL for the game/username
// pair. Expired rows read as absent and are deleted lazily.
func (s *Store) Get(gameID int64, username string) (string, bool) {
	var record DownloadKeyRecord
	err := s.db.Where("game_id = ? AND username = ?", gameID, username).First(&record).Error
	if err != nil {
		return "", false
	}

	if !record.ExpiresAt.IsZero() && time.Now().After(record.ExpiresAt) {
		s.db.Delete(&record)
		return "", false
	}

	return record.URL, true
}

// Put stores a permanent download URL for the game/username pair,
// replacing any prior entry and stamping the configured expiry.
func (s *Store) Put(gameID int64, username string, downloadURL string) error {
	record := DownloadKeyRecord{
		GameID:   gameID,
		Username: username,
		URL:      downloadURL,
	}
	if s.keyTTL > 0 {
		record.ExpiresAt = time.Now().Add(s.keyTTL)
	}

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "game_id"}, {Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"url", "expires_at", "updated_at"}),
	}).Create(&record).Error
}
