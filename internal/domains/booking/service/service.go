package service

import (
	"context"
	"fmt"

	"holipass/config"
	"holipass/infras/mailer"
	"holipass/infras/otel"
	"holipass/infras/payment"
	"holipass/internal/domains/booking/model"
	"holipass/internal/domains/booking/model/dto"
	"holipass/internal/domains/booking/repository"
	"holipass/internal/domains/booking/store"
	contentRepo "holipass/internal/domains/content/repository"
	"holipass/internal/ticket"
	"holipass/shared/constant"
	"holipass/shared/failure"

	"github.com/rs/zerolog/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type Booking interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (dto.CreateOrderResponse, error)
	ConfirmPayment(ctx context.Context, ticketID string) bool
	PaymentSuccess(ctx context.Context, req dto.PaymentSuccessRequest) bool
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest) bool
	GetAll(ctx context.Context) dto.GetBookingsResponse
	Delete(ctx context.Context, ticketID string) bool
	Export(ctx context.Context) dto.ExportResponse
}

type serviceImpl struct {
	repo     repository.Booking
	content  contentRepo.Content
	gateway  payment.Gateway
	mailer   mailer.Mailer
	renderer ticket.Renderer
	cfg      *config.Config
	otel     otel.Otel
}

func New(
	repo repository.Booking,
	content contentRepo.Content,
	gateway payment.Gateway,
	mail mailer.Mailer,
	renderer ticket.Renderer,
	cfg *config.Config,
	ot otel.Otel,
) Booking {
	return &serviceImpl{
		repo:     repo,
		content:  content,
		gateway:  gateway,
		mailer:   mail,
		renderer: renderer,
		cfg:      cfg,
		otel:     ot,
	}
}

// CreateOrder prices and persists a new booking, then registers the amount
// with the payment gateway. The amount is always computed here from the
// configured price table; a client-supplied amount is never trusted.
func (s *serviceImpl) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (dto.CreateOrderResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, otel.ScopeService, otel.ScopeService+".CreateOrder")
	defer scope.End()

	if req.IsCouple && req.Passes != constant.CouplePasses {
		return dto.CreateOrderResponse{}, failure.BadRequestFromString(
			fmt.Sprintf("couple booking requires exactly %d passes", constant.CouplePasses)) // nolint:wrapcheck
	}

	booking := req.ToModel()

	unitPrice := s.content.GetContent(ctx).UnitPrice(booking.PassType)
	booking.Amount, booking.DiscountDescription = priceOrder(booking.Passes, unitPrice)

	s.repo.Create(ctx, booking)

	booking.GatewayOrderID = s.gateway.CreateOrder(ctx, booking.TicketID, booking.Amount)
	s.repo.UpdateOne(ctx,
		ticketPredicate(booking.TicketID),
		map[string]any{model.FieldGatewayOrderID: booking.GatewayOrderID})

	log.Info().
		Str("ticketId", booking.TicketID).
		Int("amount", booking.Amount).
		Int("passes", booking.Passes).
		Str("passType", booking.PassType).
		Msg("order created")

	var resp dto.CreateOrderResponse
	resp.FromModel(booking, s.gateway.KeyID())

	return resp, nil
}

// ConfirmPayment records the payer's claim of an out-of-band payment. The
// ticket is not issued yet; an administrator verifies first.
func (s *serviceImpl) ConfirmPayment(ctx context.Context, ticketID string) bool {
	ctx, scope := s.otel.NewScope(ctx, otel.ScopeService, otel.ScopeService+".ConfirmPayment")
	defer scope.End()

	if _, found := s.repo.FindOne(ctx, ticketPredicate(ticketID)); !found {
		return false
	}

	s.repo.UpdateOne(ctx,
		ticketPredicate(ticketID),
		map[string]any{model.FieldPaymentStatus: constant.PaymentStatusAwaitingVerification})

	return true
}

// PaymentSuccess handles the gateway callback: verify the signature, mark
// the booking paid, and issue the ticket. Ticket delivery and the sheet
// mirror are best-effort; the paid status is the source of truth.
func (s *serviceImpl) PaymentSuccess(ctx context.Context, req dto.PaymentSuccessRequest) bool {
	ctx, scope := s.otel.NewScope(ctx, otel.ScopeService, otel.ScopeService+".PaymentSuccess")
	defer scope.End()

	if !s.gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		log.Warn().Str("ticketId", req.TicketID).Msg("payment signature verification failed")

		return false
	}

	booking, found := s.repo.FindOne(ctx, ticketPredicate(req.TicketID))
	if !found {
		log.Warn().Str("ticketId", req.TicketID).Msg("payment callback for unknown booking")

		return false
	}

	s.repo.UpdateOne(ctx, ticketPredicate(req.TicketID), map[string]any{
		model.FieldPaymentStatus:    constant.PaymentStatusPaid,
		model.FieldGatewayPaymentID: req.RazorpayPaymentID,
	})

	booking.PaymentStatus = constant.PaymentStatusPaid
	booking.GatewayPaymentID = req.RazorpayPaymentID

	s.issueTicket(ctx, booking)

	return true
}

// UpdateStatus is the administrator override for the payment status. A
// transition into Paid issues the ticket exactly once; repeating the same
// Paid status does not resend it.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest) bool {
	ctx, scope := s.otel.NewScope(ctx, otel.ScopeService, otel.ScopeService+".UpdateStatus")
	defer scope.End()

	booking, found := s.repo.FindOne(ctx, ticketPredicate(req.TicketID))
	if !found {
		return false
	}

	previousStatus := booking.PaymentStatus

	s.repo.UpdateOne(ctx,
		ticketPredicate(req.TicketID),
		map[string]any{model.FieldPaymentStatus: req.Status})

	if req.Status == constant.PaymentStatusPaid && previousStatus != constant.PaymentStatusPaid {
		booking.PaymentStatus = constant.PaymentStatusPaid
		s.issueTicket(ctx, booking)
	}

	return true
}

func (s *serviceImpl) GetAll(ctx context.Context) dto.GetBookingsResponse {
	ctx, scope := s.otel.NewScope(ctx, otel.ScopeService, otel.ScopeService+".GetAll")
	defer scope.End()

	bookings := s.repo.FindAll(ctx)
	pricing := s.content.GetContent(ctx).Pricing()

	var resp dto.GetBookingsResponse
	resp.FromModels(bookings, s.repo.TotalRevenue(bookings, pricing))

	return resp
}

func (s *serviceImpl) Delete(ctx context.Context, ticketID string) bool {
	ctx, scope := s.otel.NewScope(ctx, otel.ScopeService, otel.ScopeService+".Delete")
	defer scope.End()

	return s.repo.DeleteOne(ctx, ticketPredicate(ticketID))
}

// Export returns every booking as sheet-shaped rows for download and
// re-mirrors them to the spreadsheet, the long-term archive.
func (s *serviceImpl) Export(ctx context.Context) dto.ExportResponse {
	ctx, scope := s.otel.NewScope(ctx, otel.ScopeService, otel.ScopeService+".Export")
	defer scope.End()

	bookings := s.repo.FindAll(ctx)

	rows := make([][]string, len(bookings))
	synced := true

	for i, booking := range bookings {
		cells := store.RowFromBooking(booking)

		rows[i] = make([]string, len(cells))
		for j, cell := range cells {
			rows[i][j] = fmt.Sprint(cell)
		}

		if !s.repo.MirrorToSheet(ctx, booking) {
			synced = false
		}
	}

	return dto.ExportResponse{
		Header: model.SheetHeader,
		Rows:   rows,
		Synced: synced,
	}
}

// issueTicket renders the PDF, emails it, and mirrors the paid booking to
// the spreadsheet. Every step is best-effort and logged.
func (s *serviceImpl) issueTicket(ctx context.Context, booking model.Booking) {
	content := s.content.GetContent(ctx)

	pdf, err := s.renderer.Render(ticket.Ticket{
		Name:          booking.Name,
		TicketID:      booking.TicketID,
		Amount:        booking.Amount,
		Passes:        booking.Passes,
		PassTypeLabel: ticket.PassTypeLabel(booking.PassType),
		EventDate:     content.EventDate(),
		EventTime:     content.EventTime(),
		Venue:         content.Venue(),
		Complimentary: content.Complimentary(),
	})
	if err != nil {
		log.Error().Err(err).Str("ticketId", booking.TicketID).Msg("ticket pdf rendering failed")
	}

	sent := s.mailer.Send(ctx, mailer.Message{
		To:             booking.Email,
		Subject:        "🎉 Spectra HoliParty 2026 - Your Entry Pass 🎉",
		HTMLBody:       ticketEmailBody(booking, content.EventDate(), content.EventTime(), content.Venue()),
		Attachment:     pdf,
		AttachmentName: "Spectra_HoliParty_Ticket.pdf",
	})
	if !sent {
		log.Warn().Str("ticketId", booking.TicketID).Msg("ticket email was not delivered")
	}

	s.repo.MirrorToSheet(ctx, booking)
}

func ticketEmailBody(booking model.Booking, eventDate, eventTime, venue string) string {
	return fmt.Sprintf(`<h2>Dear %s,</h2>
<p>Thank you for your payment! Your <strong>Spectra HoliParty 2026</strong> entry pass is confirmed.</p>
<p>Your ticket is attached with your <strong>Ticket ID: %s</strong> and <strong>Amount: ₹%d</strong>.</p>
<p>Show the QR code at the gate for entry. Event: %s | %s | %s</p>`,
		booking.Name, booking.TicketID, booking.Amount, eventDate, eventTime, venue)
}

// priceOrder computes the order amount and the applied discount. Group
// bookings earn 10% off at five passes and 15% off at eight.
func priceOrder(passes, unitPrice int) (amount int, description string) {
	gross := passes * unitPrice

	switch {
	case passes >= constant.LargeGroupDiscountMinPasses:
		return gross * (100 - constant.LargeGroupDiscountPercent) / 100,
			fmt.Sprintf("%d%% large group discount", constant.LargeGroupDiscountPercent)
	case passes >= constant.GroupDiscountMinPasses:
		return gross * (100 - constant.GroupDiscountPercent) / 100,
			fmt.Sprintf("%d%% group discount", constant.GroupDiscountPercent)
	default:
		return gross, ""
	}
}

func ticketPredicate(ticketID string) store.Predicate {
	return store.Predicate{model.FieldTicketID: ticketID}
}
