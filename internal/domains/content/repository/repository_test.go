package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"holipass/infras/otel/mocks"
	contentMocks "holipass/internal/domains/content/mocks"
	"holipass/internal/domains/content/model"
	"holipass/internal/domains/content/repository"
	"holipass/internal/domains/content/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const ttl = 60 * time.Second

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestGetContentServesCacheWithinTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocs := contentMocks.NewMockDocumentStore(ctrl)
	mockFile := contentMocks.NewMockFileStore(ctrl)
	clock := &fakeClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	repo := repository.NewWithClock(mockDocs, mockFile, ttl, mocks.NewOtel(), clock.Now)

	stored := model.EventContent{"venue": "Dighi Garden Mankundu"}

	// One backend hit serves every read inside the TTL window.
	mockDocs.EXPECT().Fetch(gomock.Any()).Return(store.Found(stored))

	assert.Equal(t, "Dighi Garden Mankundu", repo.GetContent(context.Background()).Venue())

	clock.Advance(59 * time.Second)
	assert.Equal(t, "Dighi Garden Mankundu", repo.GetContent(context.Background()).Venue())

	// Past the TTL the backend is consulted again.
	clock.Advance(2 * time.Second)
	mockDocs.EXPECT().Fetch(gomock.Any()).Return(store.Found(model.EventContent{"venue": "Amrakunja Park"}))

	assert.Equal(t, "Amrakunja Park", repo.GetContent(context.Background()).Venue())
}

func TestGetContentSeedsDefaultOnEmptyDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocs := contentMocks.NewMockDocumentStore(ctrl)
	mockFile := contentMocks.NewMockFileStore(ctrl)
	repo := repository.New(mockDocs, mockFile, ttl, mocks.NewOtel())

	mockDocs.EXPECT().Fetch(gomock.Any()).Return(store.NotFound())
	mockDocs.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(nil)

	content := repo.GetContent(context.Background())

	assert.Equal(t, "Amrakunja Park", content.Venue())
	assert.Equal(t, 200, content.UnitPrice("entry"))
}

func TestGetContentFallsBackToFileThenDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocs := contentMocks.NewMockDocumentStore(ctrl)
	file := store.NewFileStoreAt(filepath.Join(t.TempDir(), "event_content.json"))
	repo := repository.New(mockDocs, file, ttl, mocks.NewOtel())

	// DB down and no file yet: the default is served and persisted so the
	// next unavailable read finds it on disk.
	mockDocs.EXPECT().Fetch(gomock.Any()).Return(store.Unavailable())

	content := repo.GetContent(context.Background())
	assert.Equal(t, "Spectra Group", content.Organizer())

	loaded, ok := file.Load()
	require.True(t, ok)
	assert.Equal(t, "Spectra Group", loaded.Organizer())
}

func TestSaveContentMergesAndInvalidatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocs := contentMocks.NewMockDocumentStore(ctrl)
	mockFile := contentMocks.NewMockFileStore(ctrl)
	repo := repository.New(mockDocs, mockFile, ttl, mocks.NewOtel())

	existing := model.DefaultContent()

	mockDocs.EXPECT().Fetch(gomock.Any()).Return(store.Found(existing))
	mockDocs.EXPECT().
		Replace(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, merged model.EventContent) error {
			assert.Equal(t, "Kunjachaya, Bhadreswar", merged.Venue())
			assert.Equal(t, existing["gallery_images"], merged["gallery_images"],
				"a save touching one field must not blank the gallery")
			return nil
		})

	ok := repo.SaveContent(context.Background(), model.EventContent{
		"venue":          "Kunjachaya, Bhadreswar",
		"gallery_images": []any{},
	})
	require.True(t, ok)

	// The cache was invalidated, so the next read hits the backend again.
	mockDocs.EXPECT().Fetch(gomock.Any()).Return(store.Found(existing))
	repo.GetContent(context.Background())
}

func TestSaveContentWritesFileWhenDatabaseDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocs := contentMocks.NewMockDocumentStore(ctrl)
	file := store.NewFileStoreAt(filepath.Join(t.TempDir(), "event_content.json"))
	repo := repository.New(mockDocs, file, ttl, mocks.NewOtel())

	require.NoError(t, file.Save(model.DefaultContent()))

	mockDocs.EXPECT().Fetch(gomock.Any()).Return(store.Unavailable())
	mockDocs.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(errDown())

	ok := repo.SaveContent(context.Background(), model.EventContent{"offers": "5% off for students"})
	require.True(t, ok)

	loaded, found := file.Load()
	require.True(t, found)
	assert.Equal(t, "5% off for students", loaded["offers"])
	assert.Equal(t, "Amrakunja Park", loaded.Venue())
}

func errDown() error {
	return assert.AnError
}
