package storage

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"
)

// LoadCredentials reads and validates the service-account key file. The
// identity is scoped to exactly the two capabilities the collector needs:
// writing blobs into the shared Drive folder and appending rows to the sheet.
// Malformed key material fails here, at startup, not per request.
func LoadCredentials(ctx context.Context, path string) (*google.Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, drive.DriveScope, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("invalid service account key: %w", err)
	}
	return creds, nil
}
