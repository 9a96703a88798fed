package store_test

import (
	"testing"

	"holipass/internal/domains/booking/model"
	"holipass/internal/domains/booking/store"

	"github.com/stretchr/testify/assert"
)

func TestRowFromBookingColumnOrder(t *testing.T) {
	booking := model.Booking{
		TicketID:      "ab12cd34 ",
		Name:          "Asha",
		Email:         "asha@example.com",
		Phone:         "9000000001",
		Passes:        2,
		Amount:        400,
		PaymentStatus: "Paid",
		EntryStatus:   "Not Used",
		BookingDate:   "2026-03-01 12:00:00",
		PassType:      "entry_starter",
	}

	row := store.RowFromBooking(booking)

	assert.Equal(t, []any{
		"Asha",
		"asha@example.com",
		"9000000001",
		"AB12CD34",
		2,
		400,
		"Paid",
		"Not Used",
		"2026-03-01 12:00:00",
		"entry_starter",
	}, row)
}

func TestRowFromBookingDefaultsOptionalColumns(t *testing.T) {
	row := store.RowFromBooking(model.Booking{TicketID: "AB12CD34"})

	assert.Equal(t, "Not Used", row[7])
	assert.Equal(t, "entry", row[9])
}

func TestBookingFromRow(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want model.Booking
	}{
		{
			name: "full row",
			row: []string{
				"Asha", "asha@example.com", "9000000001", "ab12cd34",
				"2", "400", "Paid", "Used", "2026-03-01 12:00:00", "entry_starter_lunch",
			},
			want: model.Booking{
				Name:          "Asha",
				Email:         "asha@example.com",
				Phone:         "9000000001",
				TicketID:      "AB12CD34",
				Passes:        2,
				Amount:        400,
				PaymentStatus: "Paid",
				EntryStatus:   "Used",
				BookingDate:   "2026-03-01 12:00:00",
				PassType:      "entry_starter_lunch",
			},
		},
		{
			name: "legacy nine column row gets defaults",
			row: []string{
				"Ravi", "ravi@example.com", "9000000002", "EF56GH78",
				"5", "900", "", "", "2026-03-01 13:00:00",
			},
			want: model.Booking{
				Name:          "Ravi",
				Email:         "ravi@example.com",
				Phone:         "9000000002",
				TicketID:      "EF56GH78",
				Passes:        5,
				Amount:        900,
				PaymentStatus: "Pending",
				EntryStatus:   "Not Used",
				BookingDate:   "2026-03-01 13:00:00",
				PassType:      "entry",
			},
		},
		{
			name: "short row is padded",
			row:  []string{"Meera"},
			want: model.Booking{
				Name:          "Meera",
				PaymentStatus: "Pending",
				EntryStatus:   "Not Used",
				PassType:      "entry",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, store.BookingFromRow(tt.row))
		})
	}
}

func TestPredicateMatches(t *testing.T) {
	booking := model.Booking{
		TicketID:      "AB12CD34",
		OrderID:       "AB12CD34",
		Email:         "asha@example.com",
		PaymentStatus: "Pending",
	}

	assert.True(t, store.Predicate{model.FieldTicketID: "ab12cd34 "}.Matches(booking))
	assert.True(t, store.Predicate{
		model.FieldTicketID:      "AB12CD34",
		model.FieldPaymentStatus: "Pending",
	}.Matches(booking))
	assert.False(t, store.Predicate{model.FieldTicketID: "ZZ99XX11"}.Matches(booking))
	assert.False(t, store.Predicate{model.FieldEmail: "other@example.com"}.Matches(booking))
	assert.False(t, store.Predicate{"unknown_field": "x"}.Matches(booking), "unknown fields never match")
}

func TestHeaderPlan(t *testing.T) {
	legacy := model.SheetHeader[:model.LegacySheetColumns]

	custom := make([]string, len(model.SheetHeader))
	copy(custom, model.SheetHeader)
	custom[0] = "Full Name"

	tests := []struct {
		name   string
		header []string
		want   store.HeaderAction
	}{
		{
			name:   "empty sheet gets the full header",
			header: nil,
			want:   store.HeaderWriteAll,
		},
		{
			name:   "current schema needs nothing",
			header: model.SheetHeader,
			want:   store.HeaderCurrent,
		},
		{
			name:   "current schema with padded cells needs nothing",
			header: []string{" Name ", "Email", "Phone", "Ticket ID", "Passes", "Amount", "Payment Status", "Entry Status", "Booking Date", " Pass Type"},
			want:   store.HeaderCurrent,
		},
		{
			name:   "nine known headers get the trailing Pass Type appended",
			header: legacy,
			want:   store.HeaderAppendPassType,
		},
		{
			name:   "nine headers that are not the known nine are a mismatch",
			header: append(append([]string{}, legacy[:8]...), "Seat"),
			want:   store.HeaderMismatch,
		},
		{
			name:   "custom headers of full width are a mismatch",
			header: custom,
			want:   store.HeaderMismatch,
		},
		{
			name:   "truncated header shorter than the legacy layout is a mismatch",
			header: legacy[:5],
			want:   store.HeaderMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, store.HeaderPlan(tt.header))
		})
	}
}
