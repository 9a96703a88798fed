package sheets

import (
	"context"
	"time"

	"holipass/config"

	"github.com/rs/zerolog/log"
	gsheets "google.golang.org/api/sheets/v4"
	"google.golang.org/api/option"
)

// Client wraps the Google Sheets service for the booking mirror spreadsheet.
// Missing credentials or spreadsheet id leave Service nil: the store is then
// permanently unavailable for the process lifetime and every operation
// reports a boolean failure instead of crashing.
type Client struct {
	Service       *gsheets.Service
	SpreadsheetID string
	Timeout       time.Duration
}

func New(cfg *config.Config) *Client {
	client := &Client{
		SpreadsheetID: cfg.Sheets.SpreadsheetID,
		Timeout:       time.Duration(cfg.Sheets.TimeoutSeconds) * time.Second,
	}

	if cfg.Sheets.SpreadsheetID == "" {
		log.Warn().Msg("No spreadsheet id configured, sheet mirror disabled for this process")

		return client
	}

	service, err := gsheets.NewService(context.Background(),
		option.WithCredentialsFile(cfg.Sheets.CredsPath),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		log.Warn().Err(err).
			Str("credsPath", cfg.Sheets.CredsPath).
			Msg("Google Sheets credentials unusable, sheet mirror disabled for this process")

		return client
	}

	client.Service = service

	log.Info().Str("spreadsheetId", client.SpreadsheetID).Msg("Google Sheets client initialized")

	return client
}

// Configured reports whether the sheet mirror can be used at all.
func (c *Client) Configured() bool {
	return c.Service != nil && c.SpreadsheetID != ""
}
