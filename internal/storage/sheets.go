package storage

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsLog appends rows to one range of one spreadsheet. Values are written
// RAW and positionally; the column order is the fixed schema the sheet was
// provisioned with, agreed out-of-band.
type SheetsLog struct {
	service     *sheets.Service
	sheetID     string
	appendRange string
}

// NewSheetsLog builds the Sheets client from already-validated credentials.
func NewSheetsLog(ctx context.Context, creds *google.Credentials, sheetID, appendRange string) (*SheetsLog, error) {
	service, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &SheetsLog{service: service, sheetID: sheetID, appendRange: appendRange}, nil
}

// Append performs one logical append of the row below the configured range.
func (s *SheetsLog) Append(ctx context.Context, row []string) error {
	cells := make([]interface{}, len(row))
	for i, cell := range row {
		cells[i] = cell
	}

	body := &sheets.ValueRange{Values: [][]interface{}{cells}}
	_, err := s.service.Spreadsheets.Values.Append(s.sheetID, s.appendRange, body).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row: %w", err)
	}
	return nil
}
