package booking

import (
	"net/http"

	"holipass/infras/otel"
	"holipass/internal/domains/booking/model/dto"
	"holipass/internal/domains/booking/service"
	"holipass/shared/constant"
	"holipass/shared/failure"
	"holipass/shared/validator"
	"holipass/transport/http/middleware"
	"holipass/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(svc service.Booking, ot otel.Otel) Handler {
	return Handler{
		service: svc,
		otel:    ot,
	}
}

// Router mounts the public order flow and, behind admin auth, the booking
// management surface.
func (handler *Handler) Router(router chi.Router, auth middleware.Auth, limiter func(http.Handler) http.Handler) {
	router.Route("/orders", func(routerGroup chi.Router) {
		routerGroup.With(limiter).Post("/", handler.CreateOrder)
		routerGroup.Post("/confirm", handler.ConfirmPayment)
		routerGroup.Post("/payment-success", handler.PaymentSuccess)
	})

	router.Route("/admin/bookings", func(routerGroup chi.Router) {
		routerGroup.Use(auth.AdminOnly)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Patch("/status", handler.UpdateStatus)
		routerGroup.Delete("/{ticketID}", handler.DeleteBooking)
		routerGroup.Get("/export", handler.ExportBookings)
	})
}

// CreateOrder prices the requested passes server-side, persists the
// booking, and returns what the payment page needs.
func (handler *Handler) CreateOrder(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), otel.ScopeHandler, otel.ScopeHandler+".CreateOrder")
	defer scope.End()

	req := dto.CreateOrderRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate order request")

		response.WithError(writer, err)

		return
	}

	resp, err := handler.service.CreateOrder(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create order")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("order created for ticket " + resp.TicketID)

	response.WithJSON(writer, http.StatusCreated, resp)
}

// ConfirmPayment records the payer's claim that an out-of-band payment was
// made; the booking awaits admin verification afterwards.
func (handler *Handler) ConfirmPayment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), otel.ScopeHandler, otel.ScopeHandler+".ConfirmPayment")
	defer scope.End()

	req := dto.ConfirmPaymentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if !handler.service.ConfirmPayment(ctx, req.TicketID) {
		response.WithError(writer, failure.BookingNotFound)

		return
	}

	response.WithMessage(writer, http.StatusOK, "payment confirmation recorded, awaiting verification")
}

// PaymentSuccess is the gateway success callback.
func (handler *Handler) PaymentSuccess(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), otel.ScopeHandler, otel.ScopeHandler+".PaymentSuccess")
	defer scope.End()

	req := dto.PaymentSuccessRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if !handler.service.PaymentSuccess(ctx, req) {
		response.WithError(writer, failure.BadRequestFromString("payment could not be verified"))

		return
	}

	response.WithMessage(writer, http.StatusOK, "payment verified, ticket issued")
}

// GetBookings lists every booking with the paid revenue total.
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), otel.ScopeHandler, otel.ScopeHandler+".GetBookings")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.GetAll(ctx))
}

// UpdateStatus is the admin override for a booking's payment status.
func (handler *Handler) UpdateStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), otel.ScopeHandler, otel.ScopeHandler+".UpdateStatus")
	defer scope.End()

	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if !handler.service.UpdateStatus(ctx, req) {
		response.WithError(writer, failure.BookingNotFound)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("booking status updated by " + admin)

	response.WithMessage(writer, http.StatusOK, "booking status updated")
}

// DeleteBooking removes a booking from every store that holds it.
func (handler *Handler) DeleteBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), otel.ScopeHandler, otel.ScopeHandler+".DeleteBooking")
	defer scope.End()

	ticketID := chi.URLParam(request, "ticketID")
	if ticketID == "" {
		response.WithError(writer, failure.BadRequestFromString("ticket id is required"))

		return
	}

	// Deletion is idempotent across all stores, so this cannot fail for an
	// unknown ticket.
	handler.service.Delete(ctx, ticketID)

	response.WithMessage(writer, http.StatusOK, "booking deleted")
}

// ExportBookings returns sheet-shaped rows for download and re-syncs the
// spreadsheet mirror.
func (handler *Handler) ExportBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), otel.ScopeHandler, otel.ScopeHandler+".ExportBookings")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.Export(ctx))
}
