package service_test

import (
	"context"
	"testing"

	"holipass/config"
	"holipass/infras/mailer"
	mailerMocks "holipass/infras/mailer/mocks"
	"holipass/infras/otel/mocks"
	paymentMocks "holipass/infras/payment/mocks"
	bookingMocks "holipass/internal/domains/booking/mocks"
	"holipass/internal/domains/booking/model"
	"holipass/internal/domains/booking/model/dto"
	"holipass/internal/domains/booking/service"
	contentMocks "holipass/internal/domains/content/mocks"
	contentModel "holipass/internal/domains/content/model"
	ticketMocks "holipass/internal/ticket/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	repo     *bookingMocks.MockBooking
	content  *contentMocks.MockContent
	gateway  *paymentMocks.MockGateway
	mailer   *mailerMocks.MockMailer
	renderer *ticketMocks.MockRenderer
}

func newService(t *testing.T) (service.Booking, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := serviceMocks{
		repo:     bookingMocks.NewMockBooking(ctrl),
		content:  contentMocks.NewMockContent(ctrl),
		gateway:  paymentMocks.NewMockGateway(ctrl),
		mailer:   mailerMocks.NewMockMailer(ctrl),
		renderer: ticketMocks.NewMockRenderer(ctrl),
	}

	svc := service.New(m.repo, m.content, m.gateway, m.mailer, m.renderer, &config.Config{}, mocks.NewOtel())

	return svc, m
}

func TestCreateOrderPricing(t *testing.T) {
	tests := []struct {
		name         string
		req          dto.CreateOrderRequest
		wantAmount   int
		wantDiscount string
		wantGroup    bool
		wantCouple   bool
	}{
		{
			// Two plain entry passes at the default price: no discount.
			name:       "asha books two entry passes",
			req:        dto.CreateOrderRequest{Name: "Asha", Email: "asha@example.com", Phone: "9000000001", Passes: 2, PassType: "entry"},
			wantAmount: 400,
		},
		{
			name:         "five passes earn the group discount",
			req:          dto.CreateOrderRequest{Name: "Ravi", Email: "ravi@example.com", Phone: "9000000002", Passes: 5, PassType: "entry"},
			wantAmount:   900,
			wantDiscount: "10% group discount",
			wantGroup:    true,
		},
		{
			name:         "eight passes earn the large group discount",
			req:          dto.CreateOrderRequest{Name: "Mina", Email: "mina@example.com", Phone: "9000000003", Passes: 8, PassType: "entry"},
			wantAmount:   1360,
			wantDiscount: "15% large group discount",
			wantGroup:    true,
		},
		{
			name:       "couple booking with exactly two passes",
			req:        dto.CreateOrderRequest{Name: "Dev", Email: "dev@example.com", Phone: "9000000004", Passes: 2, PassType: "entry_starter", IsCouple: true},
			wantAmount: 700,
			wantCouple: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)

			var created model.Booking

			m.content.EXPECT().GetContent(gomock.Any()).Return(contentModel.DefaultContent())
			m.repo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				Do(func(_ context.Context, booking model.Booking) { created = booking })
			m.gateway.EXPECT().
				CreateOrder(gomock.Any(), gomock.Any(), tt.wantAmount).
				DoAndReturn(func(_ context.Context, ticketID string, _ int) string {
					return "test_order_" + ticketID
				})
			m.repo.EXPECT().UpdateOne(gomock.Any(), gomock.Any(), gomock.Any()).Return(1)
			m.gateway.EXPECT().KeyID().Return("rzp_test_key")

			resp, err := svc.CreateOrder(context.Background(), tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantAmount, resp.Amount)
			assert.Equal(t, tt.wantAmount, created.Amount, "the stored amount is the server-side price")
			assert.Equal(t, tt.wantDiscount, created.DiscountDescription)
			assert.Equal(t, tt.wantGroup, created.IsGroupBooking)
			assert.Equal(t, tt.wantCouple, created.IsCoupleBooking)
			assert.Equal(t, "Pending", created.PaymentStatus)
			assert.Len(t, created.TicketID, 8)
			assert.Equal(t, created.TicketID, created.OrderID)
			assert.Equal(t, "test_order_"+created.TicketID, resp.GatewayOrderID)
			assert.Equal(t, "rzp_test_key", resp.RazorpayKeyID)
		})
	}
}

func TestCreateOrderRejectsCoupleWithWrongPassCount(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		Name: "Dev", Email: "dev@example.com", Phone: "9000000004", Passes: 3, IsCouple: true,
	})

	assert.Error(t, err)
}

func TestConfirmPaymentMovesToAwaitingVerification(t *testing.T) {
	svc, m := newService(t)

	m.repo.EXPECT().
		FindOne(gomock.Any(), gomock.Any()).
		Return(model.Booking{TicketID: "AB12CD34", PaymentStatus: "Pending"}, true)
	m.repo.EXPECT().
		UpdateOne(gomock.Any(), gomock.Any(), map[string]any{model.FieldPaymentStatus: "Awaiting Verification"}).
		Return(1)

	assert.True(t, svc.ConfirmPayment(context.Background(), "AB12CD34"))
}

func TestConfirmPaymentUnknownTicket(t *testing.T) {
	svc, m := newService(t)

	m.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(model.Booking{}, false)

	assert.False(t, svc.ConfirmPayment(context.Background(), "ZZ99XX11"))
}

func TestPaymentSuccessRejectsBadSignature(t *testing.T) {
	svc, m := newService(t)

	m.gateway.EXPECT().
		VerifySignature("order_x", "pay_x", "forged").
		Return(false)

	ok := svc.PaymentSuccess(context.Background(), dto.PaymentSuccessRequest{
		TicketID:          "AB12CD34",
		RazorpayOrderID:   "order_x",
		RazorpayPaymentID: "pay_x",
		RazorpaySignature: "forged",
	})

	assert.False(t, ok, "no status change and no ticket on a forged callback")
}

func TestPaymentSuccessIssuesTicket(t *testing.T) {
	svc, m := newService(t)

	booking := model.Booking{
		TicketID:      "AB12CD34",
		Name:          "Asha",
		Email:         "asha@example.com",
		Passes:        2,
		PassType:      "entry",
		Amount:        400,
		PaymentStatus: "Awaiting Verification",
	}

	m.gateway.EXPECT().VerifySignature("order_x", "pay_x", "sig").Return(true)
	m.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(booking, true)
	m.repo.EXPECT().
		UpdateOne(gomock.Any(), gomock.Any(), map[string]any{
			model.FieldPaymentStatus:    "Paid",
			model.FieldGatewayPaymentID: "pay_x",
		}).
		Return(1)
	m.content.EXPECT().GetContent(gomock.Any()).Return(contentModel.DefaultContent())
	m.renderer.EXPECT().Render(gomock.Any()).Return([]byte("%PDF"), nil)
	m.mailer.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg mailer.Message) bool {
			assert.Equal(t, "asha@example.com", msg.To)
			assert.NotEmpty(t, msg.Attachment)
			return true
		})
	m.repo.EXPECT().MirrorToSheet(gomock.Any(), gomock.Any()).Return(true)

	ok := svc.PaymentSuccess(context.Background(), dto.PaymentSuccessRequest{
		TicketID:          "AB12CD34",
		RazorpayOrderID:   "order_x",
		RazorpayPaymentID: "pay_x",
		RazorpaySignature: "sig",
	})

	assert.True(t, ok)
}

func TestUpdateStatusSendsTicketOnceOnTransitionToPaid(t *testing.T) {
	svc, m := newService(t)

	booking := model.Booking{
		TicketID:      "AB12CD34",
		Name:          "Asha",
		Email:         "asha@example.com",
		Passes:        2,
		Amount:        400,
		PaymentStatus: "Awaiting Verification",
	}

	m.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(booking, true)
	m.repo.EXPECT().
		UpdateOne(gomock.Any(), gomock.Any(), map[string]any{model.FieldPaymentStatus: "Paid"}).
		Return(1)
	m.content.EXPECT().GetContent(gomock.Any()).Return(contentModel.DefaultContent())
	m.renderer.EXPECT().Render(gomock.Any()).Return([]byte("%PDF"), nil)
	m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(true)
	m.repo.EXPECT().MirrorToSheet(gomock.Any(), gomock.Any()).Return(true)

	ok := svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{TicketID: "AB12CD34", Status: "Paid"})
	require.True(t, ok)

	// Repeating the same Paid status must not resend the ticket: no
	// renderer or mailer expectations are registered for this call.
	paid := booking
	paid.PaymentStatus = "Paid"

	m.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(paid, true)
	m.repo.EXPECT().
		UpdateOne(gomock.Any(), gomock.Any(), map[string]any{model.FieldPaymentStatus: "Paid"}).
		Return(0)

	assert.True(t, svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{TicketID: "AB12CD34", Status: "Paid"}))
}

func TestGetAllIncludesRevenue(t *testing.T) {
	svc, m := newService(t)

	bookings := []model.Booking{
		{TicketID: "AB12CD34", PaymentStatus: "Paid", Amount: 400},
		{TicketID: "EF56GH78", PaymentStatus: "Pending", Amount: 200},
	}

	m.repo.EXPECT().FindAll(gomock.Any()).Return(bookings)
	m.content.EXPECT().GetContent(gomock.Any()).Return(contentModel.DefaultContent())
	m.repo.EXPECT().TotalRevenue(bookings, gomock.Any()).Return(400)

	resp := svc.GetAll(context.Background())

	assert.Equal(t, 2, resp.TotalData)
	assert.Equal(t, 400, resp.TotalRevenue)
	assert.Len(t, resp.Bookings, 2)
}

func TestExportMirrorsEveryBooking(t *testing.T) {
	svc, m := newService(t)

	bookings := []model.Booking{
		{TicketID: "AB12CD34", Name: "Asha", Passes: 2, Amount: 400, PaymentStatus: "Paid"},
		{TicketID: "EF56GH78", Name: "Ravi", Passes: 1, Amount: 200, PaymentStatus: "Pending"},
	}

	m.repo.EXPECT().FindAll(gomock.Any()).Return(bookings)
	m.repo.EXPECT().MirrorToSheet(gomock.Any(), gomock.Any()).Return(true)
	m.repo.EXPECT().MirrorToSheet(gomock.Any(), gomock.Any()).Return(false)

	resp := svc.Export(context.Background())

	assert.Equal(t, model.SheetHeader, resp.Header)
	assert.Len(t, resp.Rows, 2)
	assert.False(t, resp.Synced, "one failed mirror marks the export unsynced")
	assert.Equal(t, "AB12CD34", resp.Rows[0][3])
}
