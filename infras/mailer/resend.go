package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

const resendEndpoint = "https://api.resend.com/emails"

type resendMailer struct {
	client *http.Client
	apiKey string
	from   string
}

type resendAttachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type resendRequest struct {
	From        string             `json:"from"`
	To          []string           `json:"to"`
	Subject     string             `json:"subject"`
	HTML        string             `json:"html"`
	Attachments []resendAttachment `json:"attachments,omitempty"`
}

func (m *resendMailer) Send(ctx context.Context, msg Message) bool {
	if m.apiKey == "" || m.from == "" {
		log.Warn().Msg("resend api key or sender not configured, dropping email")

		return false
	}

	payload := resendRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTMLBody,
	}
	if len(msg.Attachment) > 0 {
		payload.Attachments = []resendAttachment{{
			Filename: msg.AttachmentName,
			Content:  base64.StdEncoding.EncodeToString(msg.Attachment),
		}}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode resend payload")

		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		log.Error().Err(err).Msg("failed to build resend request")

		return false
	}

	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("to", msg.To).Msg("resend request failed")

		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Int("status", resp.StatusCode).Str("to", msg.To).Msg("resend rejected the email")

		return false
	}

	log.Info().Str("to", msg.To).Msg("email sent via resend")

	return true
}
