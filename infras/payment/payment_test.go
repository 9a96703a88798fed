package payment_test

import (
	"context"
	"testing"
	"time"

	"holipass/config"
	"holipass/infras/otel/mocks"
	"holipass/infras/payment"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/stretchr/testify/assert"
)

func TestNewAppliesConfiguredTimeout(t *testing.T) {
	cfg := &config.Config{}
	cfg.Payment.Razorpay.KeyID = "rzp_test_key"
	cfg.Payment.Razorpay.KeySecret = "secret"
	cfg.Payment.Razorpay.TimeoutSeconds = 3

	payment.New(cfg, mocks.NewOtel())

	assert.Equal(t, 3*time.Second, razorpay.Request.HTTPClient.Timeout,
		"gateway calls must carry the configured timeout, not the SDK default")
}

func TestCreateOrderFallsBackWithoutGateway(t *testing.T) {
	cfg := &config.Config{}

	gateway := payment.New(cfg, mocks.NewOtel())
	orderID := gateway.CreateOrder(context.Background(), "AB12CD34", 400)

	assert.Equal(t, "test_order_AB12CD34", orderID)
	assert.True(t, payment.IsTestOrder(orderID))
}

func TestVerifySignatureAcceptsTestOrders(t *testing.T) {
	cfg := &config.Config{}
	cfg.Payment.Razorpay.KeyID = "rzp_test_key"
	cfg.Payment.Razorpay.KeySecret = "secret"

	gateway := payment.New(cfg, mocks.NewOtel())

	assert.True(t, gateway.VerifySignature("test_order_AB12CD34", "pay_123", ""))
	assert.False(t, gateway.VerifySignature("order_real123", "pay_123", "bogus-signature"))
}
