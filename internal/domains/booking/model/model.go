package model

const (
	CollectionName = "bookings"
	EntityName     = "booking"

	FieldTicketID            = "ticket_id"
	FieldOrderID             = "order_id"
	FieldName                = "name"
	FieldEmail               = "email"
	FieldPhone               = "phone"
	FieldAddress             = "address"
	FieldPasses              = "passes"
	FieldPassType            = "pass_type"
	FieldAmount              = "amount"
	FieldPaymentStatus       = "payment_status"
	FieldEntryStatus         = "entry_status"
	FieldIsGroupBooking      = "is_group_booking"
	FieldIsCoupleBooking     = "is_couple_booking"
	FieldDiscountDescription = "discount_description"
	FieldTransactionID       = "transaction_id"
	FieldGatewayOrderID      = "gateway_order_id"
	FieldGatewayPaymentID    = "gateway_payment_id"
	FieldBookingDate         = "booking_date"
)

// Booking is one purchase attempt. The same shape is persisted to every
// backend: a Mongo document, a JSON cache entry, and a spreadsheet row.
// TicketID is generated at creation, stored uppercase, and immutable.
type Booking struct {
	TicketID            string `bson:"ticket_id" json:"ticket_id"`
	OrderID             string `bson:"order_id" json:"order_id"`
	Name                string `bson:"name" json:"name"`
	Email               string `bson:"email" json:"email"`
	Phone               string `bson:"phone" json:"phone"`
	Address             string `bson:"address" json:"address"`
	Passes              int    `bson:"passes" json:"passes"`
	PassType            string `bson:"pass_type" json:"pass_type"`
	Amount              int    `bson:"amount" json:"amount"`
	PaymentStatus       string `bson:"payment_status" json:"payment_status"`
	EntryStatus         string `bson:"entry_status" json:"entry_status"`
	IsGroupBooking      bool   `bson:"is_group_booking" json:"is_group_booking"`
	IsCoupleBooking     bool   `bson:"is_couple_booking" json:"is_couple_booking"`
	DiscountDescription string `bson:"discount_description,omitempty" json:"discount_description,omitempty"`
	TransactionID       string `bson:"transaction_id,omitempty" json:"transaction_id,omitempty"`
	GatewayOrderID      string `bson:"gateway_order_id,omitempty" json:"gateway_order_id,omitempty"`
	GatewayPaymentID    string `bson:"gateway_payment_id,omitempty" json:"gateway_payment_id,omitempty"`
	BookingDate         string `bson:"booking_date" json:"booking_date"`
}

// SheetHeader is the fixed column order of the mirror spreadsheet. The order
// is part of the wire contract with the sheet and must not be reordered
// without a migration. "Pass Type" was added after initial deployment, so
// sheets with only the first nine headers are still accepted and repaired
// in place.
var SheetHeader = []string{
	"Name",
	"Email",
	"Phone",
	"Ticket ID",
	"Passes",
	"Amount",
	"Payment Status",
	"Entry Status",
	"Booking Date",
	"Pass Type",
}

const (
	// SheetTicketIDColumn is the 1-based index of the Ticket ID column (D).
	SheetTicketIDColumn = 4

	// LegacySheetColumns is the header length before Pass Type existed.
	LegacySheetColumns = 9
)
