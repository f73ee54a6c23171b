package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courier-org/courier-cli/internal/api"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "tracking.sqlite"))
	require.NoError(t, err)
	return c
}

func TestSaveAndLatest(t *testing.T) {
	c := openTestCache(t)

	pkg := &api.Package{TrackingNumber: "CR100", Status: api.StatusInTransit}
	events := []api.TrackingEvent{
		{TrackingNumber: "CR100", Status: api.StatusCreated, Location: "Mumbai"},
		{TrackingNumber: "CR100", Status: api.StatusInTransit, Location: "Pune"},
	}
	require.NoError(t, c.Save(pkg, events))

	snapshot, got, err := c.Latest("CR100")
	require.NoError(t, err)
	assert.Equal(t, api.StatusInTransit, snapshot.Status)
	assert.NotEmpty(t, snapshot.ID, "expected a generated ULID")
	require.Len(t, got, 2)
	assert.Equal(t, "Pune", got[1].Location)
}

func TestLatest_ReturnsNewestSnapshot(t *testing.T) {
	c := openTestCache(t)

	pkg := &api.Package{TrackingNumber: "CR200", Status: api.StatusCreated}
	require.NoError(t, c.Save(pkg, nil))

	// Later fetch with an advanced status.
	pkg.Status = api.StatusDelivered
	require.NoError(t, c.db.Create(&Snapshot{
		TrackingNumber: "CR200",
		Status:         api.StatusDelivered,
		FetchedAt:      time.Now().Add(time.Minute),
	}).Error)

	snapshot, _, err := c.Latest("CR200")
	require.NoError(t, err)
	assert.Equal(t, api.StatusDelivered, snapshot.Status)
}

func TestLatest_MissingTrackingNumber(t *testing.T) {
	c := openTestCache(t)

	_, _, err := c.Latest("CR999")
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestPrune(t *testing.T) {
	c := openTestCache(t)

	require.NoError(t, c.db.Create(&Snapshot{
		TrackingNumber: "CR300",
		Status:         api.StatusCreated,
		FetchedAt:      time.Now().Add(-48 * time.Hour),
	}).Error)
	require.NoError(t, c.Save(&api.Package{TrackingNumber: "CR300", Status: api.StatusInTransit}, nil))

	require.NoError(t, c.Prune(24*time.Hour))

	snapshot, _, err := c.Latest("CR300")
	require.NoError(t, err)
	assert.Equal(t, api.StatusInTransit, snapshot.Status, "recent snapshot survives pruning")

	var count int64
	require.NoError(t, c.db.Model(&Snapshot{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
