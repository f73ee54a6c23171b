// Package cache keeps a local copy of tracking lookups so `courier track
// --offline` works without the backend.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/courier-org/courier-cli/internal/api"
)

// ErrNoSnapshot is returned when nothing has been cached for a tracking number.
var ErrNoSnapshot = errors.New("cache: no snapshot for tracking number")

// Snapshot is one cached tracking lookup: the package status at fetch time
// plus the full event history, serialized as JSON.
type Snapshot struct {
	ID             string    `gorm:"primaryKey;type:varchar(26)"`
	TrackingNumber string    `gorm:"index;not null"`
	Status         string    `gorm:"not null"`
	Events         string    `gorm:"type:text"`
	FetchedAt      time.Time `gorm:"index"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

// BeforeCreate generates a ULID for the ID field if it's empty
func (s *Snapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = ulid.Make().String()
	}
	return nil
}

// Cache is the sqlite-backed snapshot store.
type Cache struct {
	db *gorm.DB
}

// Open opens (creating if necessary) the cache database at path.
func Open(path string) (*Cache, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate cache database: %w", err)
	}

	return &Cache{db: db}, nil
}

// Save stores a snapshot of a tracking lookup.
func (c *Cache) Save(pkg *api.Package, events []api.TrackingEvent) error {
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to marshal events: %w", err)
	}

	snapshot := Snapshot{
		TrackingNumber: pkg.TrackingNumber,
		Status:         pkg.Status,
		Events:         string(data),
		FetchedAt:      time.Now(),
	}
	if err := c.db.Create(&snapshot).Error; err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Latest returns the most recent snapshot for a tracking number along with
// its decoded event history.
func (c *Cache) Latest(trackingNumber string) (*Snapshot, []api.TrackingEvent, error) {
	var snapshot Snapshot
	err := c.db.
		Where("tracking_number = ?", trackingNumber).
		Order("fetched_at DESC").
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNoSnapshot
		}
		return nil, nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var events []api.TrackingEvent
	if snapshot.Events != "" {
		if err := json.Unmarshal([]byte(snapshot.Events), &events); err != nil {
			return nil, nil, fmt.Errorf("failed to decode cached events: %w", err)
		}
	}
	return &snapshot, events, nil
}

// Prune removes snapshots older than the retention window, keeping the cache
// from growing without bound.
func (c *Cache) Prune(retention time.Duration) error {
	cutoff := time.Now().Add(-retention)
	if err := c.db.Where("fetched_at < ?", cutoff).Delete(&Snapshot{}).Error; err != nil {
		return fmt.Errorf("failed to prune cache: %w", err)
	}
	return nil
}
