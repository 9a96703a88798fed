package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"holipass/internal/domains/booking/model"
	"holipass/internal/domains/booking/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheStoreLoadMissingFile(t *testing.T) {
	cache := store.NewCacheStoreAt(filepath.Join(t.TempDir(), "bookings.json"))

	bookings, err := cache.Load()
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestCacheStoreSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	cache := store.NewCacheStoreAt(path)

	want := []model.Booking{
		{
			TicketID:      "AB12CD34",
			OrderID:       "AB12CD34",
			Name:          "Asha",
			Email:         "asha@example.com",
			Passes:        2,
			PassType:      "entry",
			Amount:        400,
			PaymentStatus: "Pending",
			EntryStatus:   "Not Used",
			BookingDate:   "2026-03-01 12:00:00",
		},
	}

	require.NoError(t, cache.Save(want))

	got, err := cache.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCacheStoreSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	cache := store.NewCacheStoreAt(filepath.Join(dir, "bookings.json"))

	require.NoError(t, cache.Save([]model.Booking{{TicketID: "AB12CD34"}}))
	require.NoError(t, cache.Save([]model.Booking{{TicketID: "EF56GH78"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "bookings.json", entries[0].Name())
}

func TestCacheStoreSaveNilWritesEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	cache := store.NewCacheStoreAt(path)

	require.NoError(t, cache.Save(nil))

	got, err := cache.Load()
	require.NoError(t, err)
	assert.Equal(t, []model.Booking{}, got)
}

func TestCacheStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := store.NewCacheStoreAt(path).Load()
	assert.Error(t, err)
}
