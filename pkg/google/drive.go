package google

import (
	"bytes"
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Service uploads backup bundles to the connected Google Drive account.
type Service interface {
	Share(ctx context.Context, data []byte, name string) (string, error)
}

type ServiceImpl struct {
	auth *Auth
}

func NewService(auth *Auth) *ServiceImpl {
	return &ServiceImpl{auth: auth}
}

func (s *ServiceImpl) Share(ctx context.Context, data []byte, name string) (string, error) {
	client, err := s.auth.getClient(ctx)
	if err != nil {
		return "", err
	}

	driveService, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		err := fmt.Errorf("unable to create Google Drive client: %v", err)
		log.Error(err)
		return "", err
	}

	file := &drive.File{Name: name, MimeType: "application/json"}
	created, err := driveService.Files.Create(file).Media(bytes.NewReader(data)).Do()
	if err != nil {
		err := fmt.Errorf("unable to upload backup to Google Drive: %v", err)
		log.Error(err)
		return "", err
	}

	log.Infof("uploaded backup %s to Google Drive (file id %s)", name, created.Id)
	return created.Id, nil
}
