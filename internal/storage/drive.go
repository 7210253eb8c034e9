package storage

import (
	"bytes"
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// DriveStore uploads blobs into a shared Google Drive folder. Every upload
// sets supportsAllDrives so the service account can write into a folder whose
// storage quota it does not own.
type DriveStore struct {
	service  *drive.Service
	folderID string
}

// NewDriveStore builds the Drive client from already-validated credentials.
func NewDriveStore(ctx context.Context, creds *google.Credentials, folderID string) (*DriveStore, error) {
	service, err := drive.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &DriveStore{service: service, folderID: folderID}, nil
}

// Upload creates the object and grants anyone-with-the-link read access, since
// the locator is embedded in a log row and must be viewable without caller
// authentication. A failed share surfaces as an upload failure; the orphaned
// object is not deleted.
func (s *DriveStore) Upload(ctx context.Context, name string, data []byte, contentType string) (BlobRef, error) {
	meta := &drive.File{
		Name:    name,
		Parents: []string{s.folderID},
	}

	file, err := s.service.Files.Create(meta).
		Media(bytes.NewReader(data), googleapi.ContentType(contentType)).
		SupportsAllDrives(true).
		Fields("id", "webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return BlobRef{}, fmt.Errorf("failed to upload %s: %w", name, err)
	}

	share := &drive.Permission{Type: "anyone", Role: "reader"}
	_, err = s.service.Permissions.Create(file.Id, share).
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return BlobRef{}, fmt.Errorf("failed to share %s: %w", name, err)
	}

	return BlobRef{ID: file.Id, Locator: file.WebViewLink}, nil
}
