package mailer_test

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"holipass/config"
	"holipass/infras/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smtpConfig(t *testing.T, host string, port int) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Email.Provider = "smtp"
	cfg.Email.From = "tickets@example.com"
	cfg.Email.TimeoutSeconds = 1
	cfg.Email.SMTP.Host = host
	cfg.Email.SMTP.Port = port
	cfg.Email.SMTP.Username = "user"
	cfg.Email.SMTP.Password = "pass"

	return cfg
}

// A server that accepts the connection but never sends the SMTP greeting
// must not hold the caller past the configured timeout; ticket issuance
// runs inside request handling and cannot afford an OS-level TCP stall.
func TestSMTPSendTimesOutAgainstStalledServer(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	go func() {
		for {
			conn, acceptErr := listener.Accept()
			if acceptErr != nil {
				return
			}
			defer conn.Close()
		}
	}()

	host, portStr, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)

	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	start := time.Now()
	sent := mailer.New(smtpConfig(t, host, port)).Send(context.Background(), mailer.Message{
		To:       "asha@example.com",
		Subject:  "Your Entry Pass",
		HTMLBody: "<p>see attachment</p>",
	})

	assert.False(t, sent)
	assert.Less(t, time.Since(start), 3*time.Second, "send must fail within the configured timeout, not the OS TCP timeout")
}

func TestSMTPSendFailsFastOnRefusedConnection(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	host, portStr, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)
	require.NoError(t, listener.Close())

	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	start := time.Now()
	sent := mailer.New(smtpConfig(t, host, port)).Send(context.Background(), mailer.Message{
		To:       "asha@example.com",
		Subject:  "Your Entry Pass",
		HTMLBody: "<p>see attachment</p>",
	})

	assert.False(t, sent)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestSMTPSendDropsWithoutCredentials(t *testing.T) {
	cfg := smtpConfig(t, "smtp.example.com", 587)
	cfg.Email.SMTP.Password = ""

	sent := mailer.New(cfg).Send(context.Background(), mailer.Message{To: "asha@example.com"})

	assert.False(t, sent)
}
