package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/compiler-aditya/PropTech/internal/shared/config"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

const cloudinaryScheme = "cloudinary"

// CloudinaryStore uploads images to Cloudinary. Handles look like
// "cloudinary:<public id>".
type CloudinaryStore struct {
	cld    *cld.Cloudinary
	folder string
	client *http.Client
	logger logger.Interface
}

func NewCloudinaryStore(cfg config.CloudinaryConfig, log logger.Interface) (*CloudinaryStore, error) {
	c, err := cld.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}
	c.Config.URL.Secure = true

	return &CloudinaryStore{
		cld:    c,
		folder: strings.Trim(cfg.Folder, "/"),
		client: &http.Client{Timeout: 30 * time.Second},
		logger: log,
	}, nil
}

// publicID drops the extension; Cloudinary keeps the format separately.
func (s *CloudinaryStore) publicID(blobPath string) string {
	id := strings.TrimSuffix(blobPath, path.Ext(blobPath))
	if s.folder != "" {
		id = s.folder + "/" + id
	}
	return id
}

func (s *CloudinaryStore) Put(ctx context.Context, blobPath string, data []byte, _ string) (string, error) {
	res, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:       s.publicID(blobPath),
		ResourceType:   "image",
		Overwrite:      api.Bool(false),
		UniqueFilename: api.Bool(false),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload blob: %w", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("failed to upload blob: %s", res.Error.Message)
	}

	return cloudinaryScheme + ":" + res.PublicID, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, url string) error {
	id, err := splitHandle(url, cloudinaryScheme)
	if err != nil {
		return err
	}

	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     id,
		ResourceType: "image",
		Invalidate:   api.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	if res.Result == "not found" {
		return fmt.Errorf("%w: %s", ErrBlobNotFound, url)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("failed to delete blob: %s", res.Error.Message)
	}
	return nil
}

// Open fetches the delivery URL of the asset.
func (s *CloudinaryStore) Open(ctx context.Context, url string) (io.ReadCloser, error) {
	id, err := splitHandle(url, cloudinaryScheme)
	if err != nil {
		return nil, err
	}

	img, err := s.cld.Image(id)
	if err != nil {
		return nil, fmt.Errorf("failed to build asset url: %w", err)
	}
	deliveryURL, err := img.String()
	if err != nil {
		return nil, fmt.Errorf("failed to build asset url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, deliveryURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build asset request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blob: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, url)
	case resp.StatusCode >= 300:
		_ = resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch blob: status %d", resp.StatusCode)
	}
	return resp.Body, nil
}
