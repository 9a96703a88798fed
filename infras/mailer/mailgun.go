package mailer

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"

	"github.com/rs/zerolog/log"
)

type mailgunMailer struct {
	client *http.Client
	apiKey string
	domain string
	from   string
}

func (m *mailgunMailer) Send(ctx context.Context, msg Message) bool {
	if m.apiKey == "" || m.domain == "" || m.from == "" {
		log.Warn().Msg("mailgun key, domain, or sender not configured, dropping email")

		return false
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	fields := map[string]string{
		"from":    m.from,
		"to":      msg.To,
		"subject": msg.Subject,
		"html":    msg.HTMLBody,
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			log.Error().Err(err).Msg("failed to encode mailgun form")

			return false
		}
	}

	if len(msg.Attachment) > 0 {
		part, err := writer.CreateFormFile("attachment", msg.AttachmentName)
		if err != nil {
			log.Error().Err(err).Msg("failed to attach file to mailgun form")

			return false
		}

		if _, err = part.Write(msg.Attachment); err != nil {
			log.Error().Err(err).Msg("failed to write mailgun attachment")

			return false
		}
	}

	if err := writer.Close(); err != nil {
		log.Error().Err(err).Msg("failed to finalize mailgun form")

		return false
	}

	endpoint := "https://api.mailgun.net/v3/" + m.domain + "/messages"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		log.Error().Err(err).Msg("failed to build mailgun request")

		return false
	}

	req.SetBasicAuth("api", m.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := m.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("to", msg.To).Msg("mailgun request failed")

		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Int("status", resp.StatusCode).Str("to", msg.To).Msg("mailgun rejected the email")

		return false
	}

	log.Info().Str("to", msg.To).Msg("email sent via mailgun")

	return true
}
