package repository_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"holipass/infras/otel/mocks"
	bookingMocks "holipass/internal/domains/booking/mocks"
	"holipass/internal/domains/booking/model"
	"holipass/internal/domains/booking/repository"
	"holipass/internal/domains/booking/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDown = errors.New("connection refused")

func newRepo(t *testing.T, documents *bookingMocks.MockDocumentStore, sheet *bookingMocks.MockSheetStore) (repository.Booking, store.CacheStore) {
	t.Helper()

	cache := store.NewCacheStoreAt(filepath.Join(t.TempDir(), "bookings.json"))

	return repository.New(documents, sheet, cache, mocks.NewOtel()), cache
}

func asha() model.Booking {
	return model.Booking{
		TicketID:      "AB12CD34",
		OrderID:       "AB12CD34",
		Name:          "Asha",
		Email:         "asha@example.com",
		Phone:         "9000000001",
		Passes:        2,
		PassType:      "entry",
		Amount:        400,
		PaymentStatus: "Pending",
		EntryStatus:   "Not Used",
		BookingDate:   "2026-03-01 12:00:00",
	}
}

func TestCreateWritesDurableStoreWhenReachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocs := bookingMocks.NewMockDocumentStore(ctrl)
	mockSheet := bookingMocks.NewMockSheetStore(ctrl)
	repo, cache := newRepo(t, mockDocs, mockSheet)

	mockDocs.EXPECT().
		Insert(gomock.Any(), asha()).
		Return(nil)

	repo.Create(context.Background(), asha())

	cached, err := cache.Load()
	require.NoError(t, err)
	assert.Empty(t, cached, "cache is untouched while the durable store is reachable")
}

func TestCreateFallsBackToCacheAndFindOneMatchesLooseCasing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocs := bookingMocks.NewMockDocumentStore(ctrl)
	mockSheet := bookingMocks.NewMockSheetStore(ctrl)
	repo, _ := newRepo(t, mockDocs, mockSheet)

	mockDocs.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(errDown)
	mockDocs.EXPECT().
		FindOne(gomock.Any(), gomock.Any()).
		Return(store.Unavailable())

	repo.Create(context.Background(), asha())

	got, found := repo.FindOne(context.Background(), store.Predicate{model.FieldTicketID: "ab12cd34 "})
	require.True(t, found, "identifiers are compared trimmed and case-insensitively")
	assert.Equal(t, 400, got.Amount)
	assert.Equal(t, 2, got.Passes)
	assert.Equal(t, "entry", got.PassType)
}

func TestFindOneNotFoundOnReachableStoreDoesNotScanCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocs := bookingMocks.NewMockDocumentStore(ctrl)
	mockSheet := bookingMocks.NewMockSheetStore(ctrl)
	repo, cache := newRepo(t, mockDocs, mockSheet)

	// A stale cache entry must not shadow an authoritative not-found.
	require.NoError(t, cache.Save([]model.Booking{asha()}))

	mockDocs.EXPECT().
		FindOne(gomock.Any(), gomock.Any()).
		Return(store.NotFound())

	_, found := repo.FindOne(context.Background(), store.Predicate{model.FieldTicketID: "AB12CD34"})
	assert.False(t, found)
}

func TestFindAllThreeTierFallback(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(docs *bookingMocks.MockDocumentStore, sheet *bookingMocks.MockSheetStore, cache store.CacheStore)
		want      int
	}{
		{
			name: "durable store reachable",
			setupMock: func(docs *bookingMocks.MockDocumentStore, _ *bookingMocks.MockSheetStore, _ store.CacheStore) {
				docs.EXPECT().FindAll(gomock.Any()).Return([]model.Booking{asha()}, nil)
			},
			want: 1,
		},
		{
			name: "cache serves while durable store is down",
			setupMock: func(docs *bookingMocks.MockDocumentStore, _ *bookingMocks.MockSheetStore, cache store.CacheStore) {
				docs.EXPECT().FindAll(gomock.Any()).Return(nil, errDown)
				require.NoError(t, cache.Save([]model.Booking{asha(), {TicketID: "EF56GH78"}}))
			},
			want: 2,
		},
		{
			name: "sheet serves when the cache is empty",
			setupMock: func(docs *bookingMocks.MockDocumentStore, sheet *bookingMocks.MockSheetStore, _ store.CacheStore) {
				docs.EXPECT().FindAll(gomock.Any()).Return(nil, errDown)
				sheet.EXPECT().ReadAllRows(gomock.Any()).Return([]model.Booking{asha()}, true)
			},
			want: 1,
		},
		{
			name: "every backend down yields an empty list",
			setupMock: func(docs *bookingMocks.MockDocumentStore, sheet *bookingMocks.MockSheetStore, _ store.CacheStore) {
				docs.EXPECT().FindAll(gomock.Any()).Return(nil, errDown)
				sheet.EXPECT().ReadAllRows(gomock.Any()).Return(nil, false)
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDocs := bookingMocks.NewMockDocumentStore(ctrl)
			mockSheet := bookingMocks.NewMockSheetStore(ctrl)
			repo, cache := newRepo(t, mockDocs, mockSheet)

			tt.setupMock(mockDocs, mockSheet, cache)

			got := repo.FindAll(context.Background())
			assert.Len(t, got, tt.want)
			assert.NotNil(t, got)
		})
	}
}

func TestUpdateOneOnCacheIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocs := bookingMocks.NewMockDocumentStore(ctrl)
	mockSheet := bookingMocks.NewMockSheetStore(ctrl)
	repo, cache := newRepo(t, mockDocs, mockSheet)

	require.NoError(t, cache.Save([]model.Booking{asha()}))

	mockDocs.EXPECT().
		UpdateOne(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, errDown).
		Times(2)
	mockDocs.EXPECT().
		FindOne(gomock.Any(), gomock.Any()).
		Return(store.Unavailable())

	predicate := store.Predicate{model.FieldTicketID: "ab12cd34"}
	changes := map[string]any{model.FieldPaymentStatus: "Paid"}

	assert.Equal(t, 1, repo.UpdateOne(context.Background(), predicate, changes))
	assert.Equal(t, 1, repo.UpdateOne(context.Background(), predicate, changes))

	got, found := repo.FindOne(context.Background(), predicate)
	require.True(t, found)
	assert.Equal(t, "Paid", got.PaymentStatus)
	assert.Equal(t, "Asha", got.Name, "unrelated fields are untouched")
	assert.Equal(t, 400, got.Amount)
}

func TestUpdateOneMissingRecordReturnsZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocs := bookingMocks.NewMockDocumentStore(ctrl)
	mockSheet := bookingMocks.NewMockSheetStore(ctrl)
	repo, _ := newRepo(t, mockDocs, mockSheet)

	mockDocs.EXPECT().
		UpdateOne(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, errDown)

	modified := repo.UpdateOne(context.Background(),
		store.Predicate{model.FieldTicketID: "ZZ99XX11"},
		map[string]any{model.FieldPaymentStatus: "Paid"})
	assert.Zero(t, modified)
}

func TestDeleteOneRemovesFromCacheAndSheet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocs := bookingMocks.NewMockDocumentStore(ctrl)
	mockSheet := bookingMocks.NewMockSheetStore(ctrl)
	repo, cache := newRepo(t, mockDocs, mockSheet)

	require.NoError(t, cache.Save([]model.Booking{asha()}))

	mockDocs.EXPECT().
		DeleteOne(gomock.Any(), gomock.Any()).
		Return(0, errDown)
	mockSheet.EXPECT().
		DeleteRow(gomock.Any(), "AB12CD34").
		Return(true)
	mockDocs.EXPECT().
		FindOne(gomock.Any(), gomock.Any()).
		Return(store.Unavailable())

	predicate := store.Predicate{model.FieldTicketID: "AB12CD34"}

	assert.True(t, repo.DeleteOne(context.Background(), predicate))

	_, found := repo.FindOne(context.Background(), predicate)
	assert.False(t, found)
}

func TestDeleteOneIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocs := bookingMocks.NewMockDocumentStore(ctrl)
	mockSheet := bookingMocks.NewMockSheetStore(ctrl)
	repo, _ := newRepo(t, mockDocs, mockSheet)

	mockDocs.EXPECT().
		DeleteOne(gomock.Any(), gomock.Any()).
		Return(0, nil)
	mockSheet.EXPECT().
		DeleteRow(gomock.Any(), "ZZ99XX11").
		Return(false)

	assert.True(t, repo.DeleteOne(context.Background(), store.Predicate{model.FieldTicketID: "ZZ99XX11"}),
		"a record absent from every store still reports success")
}

func TestTotalRevenue(t *testing.T) {
	repo, _ := newRepo(t, nil, nil)

	pricing := map[string]int{
		"entry":               200,
		"entry_starter":       350,
		"entry_starter_lunch": 499,
	}

	bookings := []model.Booking{
		{PaymentStatus: "Paid", Amount: 400, Passes: 2, PassType: "entry"},
		{PaymentStatus: "Pending", Amount: 350, Passes: 1, PassType: "entry_starter"},
		// Legacy sheet row without an amount, derived from the price table.
		{PaymentStatus: "Paid", Passes: 3, PassType: "entry_starter"},
		// No amount and no known pass type either.
		{PaymentStatus: "Paid", Passes: 1},
	}

	assert.Equal(t, 400+3*350+200, repo.TotalRevenue(bookings, pricing))
}
