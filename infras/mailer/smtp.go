package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"github.com/rs/zerolog/log"
)

const mimeBoundary = "holipass-ticket-boundary"

// smtpMailer exists for self-hosted deployments; free-tier platforms block
// outbound SMTP ports, which is why the HTTPS providers are the default.
type smtpMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	timeout  time.Duration
}

func (m *smtpMailer) Send(ctx context.Context, msg Message) bool {
	if m.username == "" || m.password == "" || m.from == "" {
		log.Warn().Msg("smtp credentials or sender not configured, dropping email")

		return false
	}

	if err := ctx.Err(); err != nil {
		log.Error().Err(err).Msg("smtp send aborted before dialing")

		return false
	}

	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	conn, err := net.DialTimeout("tcp", addr, m.timeout)
	if err != nil {
		log.Error().Err(err).Str("to", msg.To).Msg("smtp dial failed")

		return false
	}

	// One deadline covers the whole SMTP conversation; a stalled server
	// fails this send instead of holding the request worker until the OS
	// TCP timeout.
	if err := conn.SetDeadline(time.Now().Add(m.timeout)); err != nil {
		conn.Close()
		log.Error().Err(err).Str("to", msg.To).Msg("smtp deadline could not be set")

		return false
	}

	if err := m.converse(conn, msg); err != nil {
		log.Error().Err(err).Str("to", msg.To).Msg("smtp send failed")

		return false
	}

	log.Info().Str("to", msg.To).Msg("email sent via smtp")

	return true
}

// converse drives the SMTP session by hand so the deadline on conn applies
// to every read and write; smtp.SendMail would dial its own undeadlined
// connection.
func (m *smtpMailer) converse(conn net.Conn, msg Message) error {
	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()

		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return err
		}
	}

	if err := client.Auth(smtp.PlainAuth("", m.username, m.password, m.host)); err != nil {
		return err
	}

	if err := client.Mail(m.from); err != nil {
		return err
	}

	if err := client.Rcpt(msg.To); err != nil {
		return err
	}

	writer, err := client.Data()
	if err != nil {
		return err
	}

	if _, err := writer.Write(m.buildMIME(msg)); err != nil {
		return err
	}

	if err := writer.Close(); err != nil {
		return err
	}

	return client.Quit()
}

func (m *smtpMailer) buildMIME(msg Message) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s\r\n", m.from)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", msg.Subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", mimeBoundary)

	fmt.Fprintf(&buf, "--%s\r\n", mimeBoundary)
	buf.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	buf.WriteString(msg.HTMLBody)
	buf.WriteString("\r\n")

	if len(msg.Attachment) > 0 {
		fmt.Fprintf(&buf, "--%s\r\n", mimeBoundary)
		buf.WriteString("Content-Type: application/pdf\r\n")
		buf.WriteString("Content-Transfer-Encoding: base64\r\n")
		fmt.Fprintf(&buf, "Content-Disposition: attachment; filename=%q\r\n\r\n", msg.AttachmentName)

		encoded := base64.StdEncoding.EncodeToString(msg.Attachment)
		for len(encoded) > 76 {
			buf.WriteString(encoded[:76])
			buf.WriteString("\r\n")
			encoded = encoded[76:]
		}
		buf.WriteString(encoded)
		buf.WriteString("\r\n")
	}

	fmt.Fprintf(&buf, "--%s--\r\n", mimeBoundary)

	return buf.Bytes()
}
