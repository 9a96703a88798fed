package dto

import (
	"strings"

	"holipass/internal/domains/booking/model"
	"holipass/shared"
	"holipass/shared/constant"
	"holipass/shared/timezone"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	Name     string `json:"name"      validate:"required,max=100"`
	Email    string `json:"email"     validate:"required,email,max=100"`
	Phone    string `json:"phone"     validate:"required,max=20"`
	Address  string `json:"address"   validate:"omitempty,max=200"`
	Passes   int    `json:"passes"    validate:"required,min=1"`
	PassType string `json:"pass_type" validate:"omitempty,passtype"`
	IsCouple bool   `json:"is_couple"`
}

// ToModel builds the booking record. The amount is deliberately absent from
// the request and computed by the service; clients never price their own
// order.
func (c *CreateOrderRequest) ToModel() model.Booking {
	ticketID := strings.ToUpper(uuid.NewString()[:8])

	return model.Booking{
		TicketID:        ticketID,
		OrderID:         ticketID,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		Address:         c.Address,
		Passes:          c.Passes,
		PassType:        shared.FirstNonEmpty(c.PassType, constant.PassTypeEntry),
		PaymentStatus:   constant.PaymentStatusPending,
		EntryStatus:     constant.EntryStatusNotUsed,
		IsGroupBooking:  c.Passes >= constant.GroupDiscountMinPasses,
		IsCoupleBooking: c.IsCouple && c.Passes == constant.CouplePasses,
		BookingDate:     timezone.Now().Format(constant.BookingDateFormat),
	}
}

type CreateOrderResponse struct {
	TicketID            string `json:"ticket_id"`
	GatewayOrderID      string `json:"order_id"`
	Amount              int    `json:"amount"`
	Passes              int    `json:"passes"`
	PassType            string `json:"pass_type"`
	DiscountDescription string `json:"discount_description,omitempty"`
	Currency            string `json:"currency"`
	RazorpayKeyID       string `json:"razorpay_key_id"`
}

func (r *CreateOrderResponse) FromModel(booking model.Booking, razorpayKeyID string) {
	r.TicketID = booking.TicketID
	r.GatewayOrderID = booking.GatewayOrderID
	r.Amount = booking.Amount
	r.Passes = booking.Passes
	r.PassType = booking.PassType
	r.DiscountDescription = booking.DiscountDescription
	r.Currency = "INR"
	r.RazorpayKeyID = razorpayKeyID
}

type ConfirmPaymentRequest struct {
	TicketID string `json:"ticket_id" validate:"required"`
}

type PaymentSuccessRequest struct {
	TicketID          string `json:"ticket_id"            validate:"required"`
	RazorpayOrderID   string `json:"razorpay_order_id"    validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id"  validate:"required"`
	RazorpaySignature string `json:"razorpay_signature"   validate:"omitempty"`
}

type UpdateStatusRequest struct {
	TicketID string `json:"ticket_id" validate:"required"`
	Status   string `json:"status"    validate:"required,oneof=Pending 'Awaiting Verification' Paid"`
}

type BookingResponse struct {
	TicketID            string `json:"ticket_id"`
	OrderID             string `json:"order_id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Address             string `json:"address,omitempty"`
	Passes              int    `json:"passes"`
	PassType            string `json:"pass_type"`
	Amount              int    `json:"amount"`
	PaymentStatus       string `json:"payment_status"`
	EntryStatus         string `json:"entry_status"`
	IsGroupBooking      bool   `json:"is_group_booking"`
	IsCoupleBooking     bool   `json:"is_couple_booking"`
	DiscountDescription string `json:"discount_description,omitempty"`
	BookingDate         string `json:"booking_date"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.TicketID = booking.TicketID
	r.OrderID = booking.OrderID
	r.Name = booking.Name
	r.Email = booking.Email
	r.Phone = booking.Phone
	r.Address = booking.Address
	r.Passes = booking.Passes
	r.PassType = booking.PassType
	r.Amount = booking.Amount
	r.PaymentStatus = booking.PaymentStatus
	r.EntryStatus = booking.EntryStatus
	r.IsGroupBooking = booking.IsGroupBooking
	r.IsCoupleBooking = booking.IsCoupleBooking
	r.DiscountDescription = booking.DiscountDescription
	r.BookingDate = booking.BookingDate
}

type GetBookingsResponse struct {
	Bookings     []BookingResponse `json:"bookings"`
	TotalData    int               `json:"total_data"`
	TotalRevenue int               `json:"total_revenue"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalRevenue int) {
	r.TotalData = len(models)
	r.TotalRevenue = totalRevenue

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type ExportResponse struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
	Synced bool       `json:"synced"`
}
