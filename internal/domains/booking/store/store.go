package store

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=../mocks/store_mock.go -package=mocks

import (
	"context"

	"holipass/internal/domains/booking/model"
	"holipass/shared"
)

// Predicate is an exact-match set of field/value pairs, typically
// {ticket_id: X}. Ticket and order identifiers are compared trimmed and
// case-insensitively because call sites format them inconsistently.
type Predicate map[string]string

// Matches reports whether a booking satisfies every pair of the predicate.
// Unknown field names never match; lookups across stores must stay exact.
func (p Predicate) Matches(booking model.Booking) bool {
	for field, value := range p {
		switch field {
		case model.FieldTicketID:
			if shared.NormalizeTicketID(booking.TicketID) != shared.NormalizeTicketID(value) {
				return false
			}
		case model.FieldOrderID:
			if shared.NormalizeTicketID(booking.OrderID) != shared.NormalizeTicketID(value) {
				return false
			}
		case model.FieldEmail:
			if booking.Email != value {
				return false
			}
		case model.FieldPhone:
			if booking.Phone != value {
				return false
			}
		case model.FieldPaymentStatus:
			if booking.PaymentStatus != value {
				return false
			}
		case model.FieldEntryStatus:
			if booking.EntryStatus != value {
				return false
			}
		case model.FieldName:
			if booking.Name != value {
				return false
			}
		default:
			return false
		}
	}

	return true
}

// Status tags a single-record lookup outcome so callers branch on an enum
// instead of sniffing error types.
type Status int

const (
	StatusFound Status = iota + 1
	StatusNotFound
	StatusUnavailable
)

// Result is the tagged outcome of a single-record store lookup.
type Result struct {
	Status  Status
	Booking model.Booking
}

func Found(booking model.Booking) Result {
	return Result{Status: StatusFound, Booking: booking}
}

func NotFound() Result {
	return Result{Status: StatusNotFound}
}

func Unavailable() Result {
	return Result{Status: StatusUnavailable}
}

// DocumentStore is the durable database contract. Any returned error means
// the backend was unavailable for that operation; "no such record" is never
// an error.
type DocumentStore interface {
	Insert(ctx context.Context, booking model.Booking) error
	FindOne(ctx context.Context, predicate Predicate) Result
	FindAll(ctx context.Context) ([]model.Booking, error)
	UpdateOne(ctx context.Context, predicate Predicate, changes map[string]any) (modified int, err error)
	DeleteOne(ctx context.Context, predicate Predicate) (deleted int, err error)
}

// SheetStore mirrors bookings to the long-term archive spreadsheet. All
// operations are best-effort: failures are logged and reported as false,
// never raised.
type SheetStore interface {
	UpsertRow(ctx context.Context, booking model.Booking) bool
	DeleteRow(ctx context.Context, ticketID string) bool
	ReadAllRows(ctx context.Context) ([]model.Booking, bool)
}

// CacheStore is the on-disk JSON fallback used while the durable database
// is unreachable. Save must be atomic so a crash mid-write never corrupts
// what readers observe.
type CacheStore interface {
	Load() ([]model.Booking, error)
	Save(bookings []model.Booking) error
}
