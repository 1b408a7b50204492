package services

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/pankajvitaldeveloper/blog-backend/apperror"
	"github.com/pankajvitaldeveloper/blog-backend/config"
)

// UploadFolder is the fixed logical folder on the image host.
const UploadFolder = "blogapp"

// UploadResult is the stable reference pair returned by the image host.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// MediaService bridges staged local files to durable external references.
type MediaService interface {
	Upload(ctx context.Context, localPath string) (UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}

type CloudinaryService struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryService(cfg *config.Config) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to configure cloudinary: %w", err)
	}
	return &CloudinaryService{cld: cld, folder: UploadFolder}, nil
}

func (s *CloudinaryService) Upload(ctx context.Context, localPath string) (UploadResult, error) {
	res, err := s.cld.Upload.Upload(ctx, localPath, uploader.UploadParams{
		Folder:         s.folder,
		UseFilename:    api.Bool(true),
		UniqueFilename: api.Bool(true),
		Overwrite:      api.Bool(false),
	})
	if err != nil {
		return UploadResult{}, apperror.NewUpstreamError("Image upload failed", err)
	}
	return UploadResult{URL: res.SecureURL, PublicID: res.PublicID}, nil
}

func (s *CloudinaryService) Destroy(ctx context.Context, publicID string) error {
	if publicID == "" {
		return apperror.NewValidationError("Public ID is required")
	}
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return apperror.NewUpstreamError("Image deletion failed", err)
	}
	if res.Result != "ok" {
		return apperror.NewUpstreamError(fmt.Sprintf("Failed to delete image: %s", res.Result), nil)
	}
	return nil
}
