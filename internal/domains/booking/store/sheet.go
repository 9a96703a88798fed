package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"holipass/infras/otel"
	infra "holipass/infras/sheets"
	"holipass/internal/domains/booking/model"
	"holipass/shared"
	"holipass/shared/constant"

	"github.com/rs/zerolog/log"
	gsheets "google.golang.org/api/sheets/v4"
)

const (
	sheetDataRange   = "A:J"
	sheetHeaderRange = "1:1"
	valueInputRaw    = "RAW"
)

type sheetStore struct {
	client *infra.Client
	otel   otel.Otel
}

// NewSheetStore builds the spreadsheet mirror store. Every operation is
// best-effort: network and auth failures are logged and reported as a
// boolean failure, never an error the caller must handle.
func NewSheetStore(client *infra.Client, ot otel.Otel) SheetStore {
	return &sheetStore{
		client: client,
		otel:   ot,
	}
}

func (s *sheetStore) UpsertRow(ctx context.Context, booking model.Booking) bool {
	ctx, scope := s.otel.NewScope(ctx, otel.ScopeStore, otel.ScopeStore+".UpsertRow")
	defer scope.End()

	if !s.client.Configured() {
		log.Debug().Msg("sheet mirror not configured, skipping upsert")

		return false
	}

	ctx, cancel := context.WithTimeout(ctx, s.client.Timeout)
	defer cancel()

	if !s.ensureHeader(ctx) {
		return false
	}

	ticketID := shared.NormalizeTicketID(booking.TicketID)
	if ticketID == "" {
		return false
	}

	row := RowFromBooking(booking)

	rowNum, ok := s.findRow(ctx, ticketID)
	if !ok {
		return false
	}

	if rowNum > 1 {
		rangeRef := fmt.Sprintf("A%d:J%d", rowNum, rowNum)
		_, err := s.client.Service.Spreadsheets.Values.
			Update(s.client.SpreadsheetID, rangeRef, &gsheets.ValueRange{Values: [][]any{row}}).
			ValueInputOption(valueInputRaw).
			Context(ctx).
			Do()
		if err != nil {
			scope.TraceError(err)
			log.Warn().Err(err).Str("ticketId", ticketID).Msg("sheet row update failed")

			return false
		}

		return true
	}

	_, err := s.client.Service.Spreadsheets.Values.
		Append(s.client.SpreadsheetID, sheetDataRange, &gsheets.ValueRange{Values: [][]any{row}}).
		ValueInputOption(valueInputRaw).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("ticketId", ticketID).Msg("sheet row append failed")

		return false
	}

	return true
}

func (s *sheetStore) DeleteRow(ctx context.Context, ticketID string) bool {
	ctx, scope := s.otel.NewScope(ctx, otel.ScopeStore, otel.ScopeStore+".DeleteRow")
	defer scope.End()

	if !s.client.Configured() {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, s.client.Timeout)
	defer cancel()

	rowNum, ok := s.findRow(ctx, shared.NormalizeTicketID(ticketID))
	if !ok || rowNum <= 1 {
		return false
	}

	spreadsheet, err := s.client.Service.Spreadsheets.
		Get(s.client.SpreadsheetID).
		Context(ctx).
		Do()
	if err != nil || len(spreadsheet.Sheets) == 0 {
		scope.TraceIfError(err)
		log.Warn().Err(err).Msg("sheet metadata fetch failed")

		return false
	}

	request := &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			DeleteDimension: &gsheets.DeleteDimensionRequest{
				Range: &gsheets.DimensionRange{
					SheetId:    spreadsheet.Sheets[0].Properties.SheetId,
					Dimension:  "ROWS",
					StartIndex: int64(rowNum - 1),
					EndIndex:   int64(rowNum),
				},
			},
		}},
	}

	_, err = s.client.Service.Spreadsheets.
		BatchUpdate(s.client.SpreadsheetID, request).
		Context(ctx).
		Do()
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("ticketId", ticketID).Msg("sheet row delete failed")

		return false
	}

	log.Info().Str("ticketId", ticketID).Int("row", rowNum).Msg("deleted booking row from sheet")

	return true
}

func (s *sheetStore) ReadAllRows(ctx context.Context) ([]model.Booking, bool) {
	ctx, scope := s.otel.NewScope(ctx, otel.ScopeStore, otel.ScopeStore+".ReadAllRows")
	defer scope.End()

	if !s.client.Configured() {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(ctx, s.client.Timeout)
	defer cancel()

	resp, err := s.client.Service.Spreadsheets.Values.
		Get(s.client.SpreadsheetID, sheetDataRange).
		Context(ctx).
		Do()
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("sheet read failed")

		return nil, false
	}

	if len(resp.Values) < 2 {
		return []model.Booking{}, true
	}

	bookings := make([]model.Booking, 0, len(resp.Values)-1)

	for _, raw := range resp.Values[1:] {
		row := stringCells(raw)
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		bookings = append(bookings, BookingFromRow(row))
	}

	return bookings, true
}

// ensureHeader verifies the header row matches the fixed schema and repairs
// the single known evolution: a sheet created before the Pass Type column
// existed. Any other mismatch is a migration error that requires manual
// correction; the store refuses to guess and write over custom headers.
func (s *sheetStore) ensureHeader(ctx context.Context) bool {
	resp, err := s.client.Service.Spreadsheets.Values.
		Get(s.client.SpreadsheetID, sheetHeaderRange).
		Context(ctx).
		Do()
	if err != nil {
		log.Warn().Err(err).Msg("sheet header read failed")

		return false
	}

	var header []string
	if len(resp.Values) > 0 {
		header = stringCells(resp.Values[0])
	}

	switch HeaderPlan(header) {
	case HeaderWriteAll:
		row := make([]any, len(model.SheetHeader))
		for i, h := range model.SheetHeader {
			row[i] = h
		}

		_, err = s.client.Service.Spreadsheets.Values.
			Update(s.client.SpreadsheetID, "A1:J1", &gsheets.ValueRange{Values: [][]any{row}}).
			ValueInputOption(valueInputRaw).
			Context(ctx).
			Do()
		if err != nil {
			log.Warn().Err(err).Msg("sheet header write failed")

			return false
		}

		return true

	case HeaderCurrent:
		return true

	case HeaderAppendPassType:
		_, err = s.client.Service.Spreadsheets.Values.
			Update(s.client.SpreadsheetID, "J1", &gsheets.ValueRange{Values: [][]any{{model.SheetHeader[model.LegacySheetColumns]}}}).
			ValueInputOption(valueInputRaw).
			Context(ctx).
			Do()
		if err != nil {
			log.Warn().Err(err).Msg("sheet header repair failed")

			return false
		}

		return true

	default:
		log.Error().
			Strs("header", header).
			Strs("expected", model.SheetHeader).
			Msg("sheet header does not match the booking schema; manual correction required, refusing to write")

		return false
	}
}

// HeaderAction is the decision HeaderPlan reaches about a sheet header row.
type HeaderAction int

const (
	// HeaderWriteAll covers an empty sheet: write the full header row.
	HeaderWriteAll HeaderAction = iota
	// HeaderCurrent means the header already matches the schema.
	HeaderCurrent
	// HeaderAppendPassType is the one known evolution: a sheet created
	// before the Pass Type column existed gets the trailing header appended.
	HeaderAppendPassType
	// HeaderMismatch is any other layout, a migration error requiring
	// manual correction; the store refuses to write over custom headers.
	HeaderMismatch
)

// HeaderPlan classifies a header row against the fixed booking schema.
// Cells are compared whitespace-trimmed.
func HeaderPlan(header []string) HeaderAction {
	trimmed := make([]string, len(header))
	for i := range header {
		trimmed[i] = strings.TrimSpace(header[i])
	}

	switch {
	case len(trimmed) == 0:
		return HeaderWriteAll
	case headerEquals(trimmed, model.SheetHeader):
		return HeaderCurrent
	case len(trimmed) == model.LegacySheetColumns && headerEquals(trimmed, model.SheetHeader[:model.LegacySheetColumns]):
		return HeaderAppendPassType
	default:
		return HeaderMismatch
	}
}

// findRow scans the Ticket ID column for a normalized match. Returns the
// 1-based row number, 0 when absent; false only on a backend failure.
func (s *sheetStore) findRow(ctx context.Context, ticketID string) (int, bool) {
	resp, err := s.client.Service.Spreadsheets.Values.
		Get(s.client.SpreadsheetID, "D:D").
		Context(ctx).
		Do()
	if err != nil {
		log.Warn().Err(err).Msg("sheet ticket column read failed")

		return 0, false
	}

	for idx, raw := range resp.Values {
		rowNum := idx + 1
		if rowNum == 1 {
			continue
		}

		cells := stringCells(raw)
		if len(cells) > 0 && shared.NormalizeTicketID(cells[0]) == ticketID {
			return rowNum, true
		}
	}

	return 0, true
}

func headerEquals(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}

	for i := range expected {
		if header[i] != expected[i] {
			return false
		}
	}

	return true
}

// RowFromBooking maps a booking onto the fixed sheet column order.
func RowFromBooking(booking model.Booking) []any {
	return []any{
		booking.Name,
		booking.Email,
		booking.Phone,
		shared.NormalizeTicketID(booking.TicketID),
		booking.Passes,
		booking.Amount,
		booking.PaymentStatus,
		shared.FirstNonEmpty(booking.EntryStatus, constant.EntryStatusNotUsed),
		booking.BookingDate,
		shared.FirstNonEmpty(booking.PassType, constant.PassTypeEntry),
	}
}

// BookingFromRow parses a sheet row, padding short rows and defaulting the
// optional trailing columns that predate the current schema.
func BookingFromRow(row []string) model.Booking {
	padded := make([]string, len(model.SheetHeader))
	for i := range padded {
		if i < len(row) {
			padded[i] = strings.TrimSpace(row[i])
		}
	}

	passes, _ := strconv.Atoi(padded[4])
	amount, _ := strconv.Atoi(padded[5])

	return model.Booking{
		Name:          padded[0],
		Email:         padded[1],
		Phone:         padded[2],
		TicketID:      shared.NormalizeTicketID(padded[3]),
		Passes:        passes,
		Amount:        amount,
		PaymentStatus: shared.FirstNonEmpty(padded[6], constant.PaymentStatusPending),
		EntryStatus:   shared.FirstNonEmpty(padded[7], constant.EntryStatusNotUsed),
		BookingDate:   padded[8],
		PassType:      shared.FirstNonEmpty(padded[9], constant.PassTypeEntry),
	}
}

func stringCells(raw []any) []string {
	cells := make([]string, len(raw))
	for i, cell := range raw {
		cells[i] = fmt.Sprint(cell)
	}

	return cells
}
