package repository

import (
	"context"

	"holipass/infras/otel"
	"holipass/internal/domains/booking/model"
	"holipass/internal/domains/booking/store"
	"holipass/shared"
	"holipass/shared/constant"

	"github.com/rs/zerolog/log"
)

// fallbackUnitPrice covers records that predate server-side amounts and
// carry no usable pricing information at all.
const fallbackUnitPrice = 200

// Booking orchestrates the three booking backends. Nothing behind this
// interface ever raises a backend failure to the application layer: every
// operation returns a definite record, list, count, or boolean. Durable DB
// failures degrade to the local cache transparently; spreadsheet failures
// are logged and swallowed.
type Booking interface {
	Create(ctx context.Context, booking model.Booking)
	FindOne(ctx context.Context, predicate store.Predicate) (model.Booking, bool)
	FindAll(ctx context.Context) []model.Booking
	UpdateOne(ctx context.Context, predicate store.Predicate, changes map[string]any) int
	DeleteOne(ctx context.Context, predicate store.Predicate) bool
	MirrorToSheet(ctx context.Context, booking model.Booking) bool
	TotalRevenue(bookings []model.Booking, pricing map[string]int) int
}

type repositoryImpl struct {
	documents store.DocumentStore
	sheet     store.SheetStore
	cache     store.CacheStore
	otel      otel.Otel
}

func New(documents store.DocumentStore, sheet store.SheetStore, cache store.CacheStore, ot otel.Otel) Booking {
	return &repositoryImpl{
		documents: documents,
		sheet:     sheet,
		cache:     cache,
		otel:      ot,
	}
}

// Create writes the booking to the primary store the availability gate
// allows: the durable database when reachable, the local cache otherwise.
// Persistence is best-effort; a failure in both stores is logged, not
// raised, which is an accepted and documented risk of the deployment.
func (r *repositoryImpl) Create(ctx context.Context, booking model.Booking) {
	ctx, scope := r.otel.NewScope(ctx, otel.ScopeRepository, otel.ScopeRepository+".Create")
	defer scope.End()

	booking.TicketID = shared.NormalizeTicketID(booking.TicketID)

	if err := r.documents.Insert(ctx, booking); err == nil {
		return
	}

	log.Info().Str("ticketId", booking.TicketID).Msg("durable store unavailable, writing booking to local cache")

	bookings, err := r.cache.Load()
	if err != nil {
		log.Error().Err(err).Msg("local cache unreadable, starting a fresh list")

		bookings = []model.Booking{}
	}

	bookings = append(bookings, booking)

	if err := r.cache.Save(bookings); err != nil {
		log.Error().Err(err).Str("ticketId", booking.TicketID).Msg("booking could not be persisted to any store")
	}
}

// FindOne queries exactly one store: the durable database when reachable,
// otherwise the local cache. A missing record is a normal outcome, not an
// error.
func (r *repositoryImpl) FindOne(ctx context.Context, predicate store.Predicate) (model.Booking, bool) {
	ctx, scope := r.otel.NewScope(ctx, otel.ScopeRepository, otel.ScopeRepository+".FindOne")
	defer scope.End()

	result := r.documents.FindOne(ctx, predicate)

	switch result.Status {
	case store.StatusFound:
		return result.Booking, true
	case store.StatusNotFound:
		return model.Booking{}, false
	}

	bookings, err := r.cache.Load()
	if err != nil {
		log.Error().Err(err).Msg("local cache unreadable during find")

		return model.Booking{}, false
	}

	for _, booking := range bookings {
		if predicate.Matches(booking) {
			return booking, true
		}
	}

	return model.Booking{}, false
}

// FindAll returns the durable database's full list when reachable. Otherwise
// it serves the local cache, and when the cache is empty it falls back to
// the spreadsheet, the only backend that survives ephemeral-disk redeploys.
// The spreadsheet is consulted last because it is the slowest and least
// reliable for random access. Every failure path ends in an empty list.
func (r *repositoryImpl) FindAll(ctx context.Context) []model.Booking {
	ctx, scope := r.otel.NewScope(ctx, otel.ScopeRepository, otel.ScopeRepository+".FindAll")
	defer scope.End()

	if bookings, err := r.documents.FindAll(ctx); err == nil {
		return bookings
	}

	bookings, err := r.cache.Load()
	if err != nil {
		log.Error().Err(err).Msg("local cache unreadable during list")
	}

	if len(bookings) > 0 {
		return bookings
	}

	if rows, ok := r.sheet.ReadAllRows(ctx); ok {
		return rows
	}

	log.Warn().Msg("no booking backend reachable, serving an empty list")

	return []model.Booking{}
}

// UpdateOne applies the field changes as a last-write-wins overwrite in
// whichever store the predicate located the record. Returns the modified
// count, 0 or 1.
func (r *repositoryImpl) UpdateOne(ctx context.Context, predicate store.Predicate, changes map[string]any) int {
	ctx, scope := r.otel.NewScope(ctx, otel.ScopeRepository, otel.ScopeRepository+".UpdateOne")
	defer scope.End()

	if modified, err := r.documents.UpdateOne(ctx, predicate, changes); err == nil {
		return modified
	}

	bookings, err := r.cache.Load()
	if err != nil {
		log.Error().Err(err).Msg("local cache unreadable during update")

		return 0
	}

	for i := range bookings {
		if !predicate.Matches(bookings[i]) {
			continue
		}

		applyChanges(&bookings[i], changes)

		if err := r.cache.Save(bookings); err != nil {
			log.Error().Err(err).Msg("local cache write failed during update")

			return 0
		}

		return 1
	}

	return 0
}

// DeleteOne removes the record from the active primary store and, since the
// spreadsheet is the long-term archive, always attempts a best-effort sheet
// delete as well. Success means either delete succeeded; a record absent
// from every store also counts as success, so the operation is idempotent.
func (r *repositoryImpl) DeleteOne(ctx context.Context, predicate store.Predicate) bool {
	ctx, scope := r.otel.NewScope(ctx, otel.ScopeRepository, otel.ScopeRepository+".DeleteOne")
	defer scope.End()

	primaryOK := false

	if _, err := r.documents.DeleteOne(ctx, predicate); err == nil {
		primaryOK = true
	} else {
		bookings, loadErr := r.cache.Load()
		if loadErr != nil {
			log.Error().Err(loadErr).Msg("local cache unreadable during delete")
		} else {
			kept := bookings[:0]
			for _, booking := range bookings {
				if !predicate.Matches(booking) {
					kept = append(kept, booking)
				}
			}

			if len(kept) == len(bookings) {
				primaryOK = true // nothing to delete, idempotent
			} else if saveErr := r.cache.Save(kept); saveErr == nil {
				primaryOK = true
			} else {
				log.Error().Err(saveErr).Msg("local cache write failed during delete")
			}
		}
	}

	sheetOK := false
	if ticketID, ok := predicate[model.FieldTicketID]; ok {
		sheetOK = r.sheet.DeleteRow(ctx, ticketID)
	}

	return primaryOK || sheetOK
}

// MirrorToSheet upserts the booking row in the archive spreadsheet.
// Best-effort: a false return is logged by the store, never escalated.
func (r *repositoryImpl) MirrorToSheet(ctx context.Context, booking model.Booking) bool {
	ctx, scope := r.otel.NewScope(ctx, otel.ScopeRepository, otel.ScopeRepository+".MirrorToSheet")
	defer scope.End()

	return r.sheet.UpsertRow(ctx, booking)
}

// TotalRevenue sums the amount of paid bookings. Records that predate
// server-side amounts fall back to passes times the price-table unit price
// for their pass type.
func (r *repositoryImpl) TotalRevenue(bookings []model.Booking, pricing map[string]int) int {
	total := 0

	for _, booking := range bookings {
		if booking.PaymentStatus != constant.PaymentStatusPaid {
			continue
		}

		amount := booking.Amount
		if amount == 0 {
			unit := pricing[shared.FirstNonEmpty(booking.PassType, constant.PassTypeEntry)]
			if unit == 0 {
				unit = fallbackUnitPrice
			}

			amount = booking.Passes * unit
		}

		total += amount
	}

	return total
}

// applyChanges performs the field-level overwrite for cache-held records,
// mirroring the $set semantics the durable store applies.
func applyChanges(booking *model.Booking, changes map[string]any) {
	for field, value := range changes {
		switch field {
		case model.FieldName:
			booking.Name = asString(value)
		case model.FieldEmail:
			booking.Email = asString(value)
		case model.FieldPhone:
			booking.Phone = asString(value)
		case model.FieldAddress:
			booking.Address = asString(value)
		case model.FieldPasses:
			booking.Passes = asInt(value)
		case model.FieldPassType:
			booking.PassType = asString(value)
		case model.FieldAmount:
			booking.Amount = asInt(value)
		case model.FieldPaymentStatus:
			booking.PaymentStatus = asString(value)
		case model.FieldEntryStatus:
			booking.EntryStatus = asString(value)
		case model.FieldIsGroupBooking:
			booking.IsGroupBooking = asBool(value)
		case model.FieldIsCoupleBooking:
			booking.IsCoupleBooking = asBool(value)
		case model.FieldDiscountDescription:
			booking.DiscountDescription = asString(value)
		case model.FieldTransactionID:
			booking.TransactionID = asString(value)
		case model.FieldGatewayOrderID:
			booking.GatewayOrderID = asString(value)
		case model.FieldGatewayPaymentID:
			booking.GatewayPaymentID = asString(value)
		default:
			log.Warn().Str("field", field).Msg("ignoring change to unknown booking field")
		}
	}
}

func asString(value any) string {
	s, _ := value.(string)
	return s
}

func asInt(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}

	return 0
}

func asBool(value any) bool {
	b, _ := value.(bool)
	return b
}
