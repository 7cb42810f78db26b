package services

import (
	"bytes"
	"context"
	"log"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"lotus/internal/models/db_models"
	"lotus/internal/models/request_models"
	"lotus/internal/models/response_models"
	"lotus/internal/repositories"
	"lotus/pkg/utils"
)

type GalleryServiceInterface interface {
	ListImages(ctx context.Context) ([]response_models.ImageMeta, error)
	GetImage(ctx context.Context, id string) (*response_models.ImageMeta, error)
	GetImageData(ctx context.Context, id string) (string, []byte, error)
	GetThumbnail(ctx context.Context, id string, maxWidth, maxHeight int) ([]byte, error)
	UploadImages(ctx context.Context, files []request_models.FileUpload) (*response_models.UploadReport, error)
	UploadImage(ctx context.Context, file request_models.FileUpload) (*response_models.ImageMeta, error)
	UpdateImage(ctx context.Context, request request_models.UpdateImageRequest) (*response_models.ImageMeta, error)
	DeleteImage(ctx context.Context, id uuid.UUID) error
}

type GalleryService struct {
	galleryRepo repositories.GalleryRepository
}

func NewGalleryService(galleryRepo repositories.GalleryRepository) GalleryServiceInterface {
	return &GalleryService{
		galleryRepo: galleryRepo,
	}
}

func (g *GalleryService) ListImages(ctx context.Context) ([]response_models.ImageMeta, error) {
	images, err := g.galleryRepo.ListMeta(ctx)
	if err != nil {
		log.Printf("Error listing gallery images: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ImageMeta, 0, len(images))
	for _, image := range images {
		out = append(out, toImageMeta(image))
	}
	return out, nil
}

func (g *GalleryService) GetImage(ctx context.Context, id string) (*response_models.ImageMeta, error) {
	image, err := g.galleryRepo.GetMeta(ctx, id)
	if err != nil {
		log.Printf("Error fetching image %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if image == nil {
		return nil, utils.ErrImageNotFound
	}

	meta := toImageMeta(*image)
	return &meta, nil
}

func (g *GalleryService) GetImageData(ctx context.Context, id string) (string, []byte, error) {
	image, err := g.galleryRepo.GetWithData(ctx, id)
	if err != nil {
		log.Printf("Error fetching image data %s: %v", id, err)
		return "", nil, utils.ErrDatabaseError
	}
	if image == nil {
		return "", nil, utils.ErrImageNotFound
	}
	return image.MimeType, image.Data, nil
}

// GetThumbnail renders a fitted JPEG on the fly; the admin grid uses
// this instead of pulling full-size payloads.
func (g *GalleryService) GetThumbnail(ctx context.Context, id string, maxWidth, maxHeight int) ([]byte, error) {
	image, err := g.galleryRepo.GetWithData(ctx, id)
	if err != nil {
		log.Printf("Error fetching image data %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if image == nil {
		return nil, utils.ErrImageNotFound
	}

	decoded, err := imaging.Decode(bytes.NewReader(image.Data))
	if err != nil {
		log.Printf("Error decoding image %s: %v", id, err)
		return nil, utils.ErrNotAnImage
	}

	thumb := imaging.Fit(decoded, maxWidth, maxHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		log.Printf("Error encoding thumbnail %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	return buf.Bytes(), nil
}

// UploadImages processes a drag-and-drop batch one file at a time. A
// bad file is counted and skipped, it never aborts the rest.
func (g *GalleryService) UploadImages(ctx context.Context, files []request_models.FileUpload) (*response_models.UploadReport, error) {
	report := &response_models.UploadReport{
		Uploaded: make([]response_models.ImageMeta, 0, len(files)),
	}

	for _, file := range files {
		meta, err := g.uploadOne(ctx, file)
		if err != nil {
			log.Printf("Error uploading %s: %v", file.Filename, err)
			report.Failed++
			report.FailedFiles = append(report.FailedFiles, file.Filename)
			continue
		}
		report.Uploaded = append(report.Uploaded, *meta)
	}

	return report, nil
}

// UploadImage stores a single file. Unlike the batch path it surfaces
// why the file was rejected, so callers can tell a bad upload from a
// storage failure.
func (g *GalleryService) UploadImage(ctx context.Context, file request_models.FileUpload) (*response_models.ImageMeta, error) {
	meta, err := g.uploadOne(ctx, file)
	if err != nil {
		log.Printf("Error uploading %s: %v", file.Filename, err)
		return nil, err
	}
	return meta, nil
}

func (g *GalleryService) uploadOne(ctx context.Context, file request_models.FileUpload) (*response_models.ImageMeta, error) {
	if !strings.HasPrefix(file.MimeType, "image/") {
		return nil, utils.ErrNotAnImage
	}

	decoded, err := imaging.Decode(bytes.NewReader(file.Data))
	if err != nil {
		return nil, utils.ErrNotAnImage
	}
	bounds := decoded.Bounds()

	image := &db_models.GalleryImage{
		Title:    strings.TrimSuffix(file.Filename, pathExt(file.Filename)),
		AltText:  file.Filename,
		Size:     int64(len(file.Data)),
		MimeType: file.MimeType,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Data:     file.Data,
	}

	if _, err := g.galleryRepo.Create(ctx, image); err != nil {
		return nil, utils.ErrDatabaseError
	}

	meta := toImageMeta(*image)
	return &meta, nil
}

func (g *GalleryService) UpdateImage(ctx context.Context, request request_models.UpdateImageRequest) (*response_models.ImageMeta, error) {
	existing, err := g.galleryRepo.GetMeta(ctx, request.ID.String())
	if err != nil {
		log.Printf("Error fetching image %s: %v", request.ID, err)
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrImageNotFound
	}

	existing.Title = request.Title
	existing.Description = request.Description
	existing.AltText = request.AltText
	existing.Caption = request.Caption
	existing.Tags = request.Tags
	existing.IsProfilePhoto = request.IsProfilePhoto

	if request.IsProfilePhoto {
		// uniqueness of the profile flag is left to the admin; we only
		// log when a second image ends up flagged
		count, err := g.galleryRepo.CountProfilePhotos(ctx, existing.ID)
		if err == nil && count > 0 {
			log.Printf("Warning: %d other image(s) already flagged as profile photo", count)
		}
	}

	if err := g.galleryRepo.Update(ctx, existing); err != nil {
		log.Printf("Error updating image %s: %v", request.ID, err)
		return nil, utils.ErrDatabaseError
	}

	meta := toImageMeta(*existing)
	return &meta, nil
}

// DeleteImage removes the record. Deleting the flagged profile photo
// leaves no photo flagged; there is no re-election.
func (g *GalleryService) DeleteImage(ctx context.Context, id uuid.UUID) error {
	existing, err := g.galleryRepo.GetMeta(ctx, id.String())
	if err != nil {
		log.Printf("Error fetching image %s: %v", id, err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrImageNotFound
	}

	if err := g.galleryRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting image %s: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func pathExt(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		return filename[idx:]
	}
	return ""
}

func toImageMeta(image db_models.GalleryImage) response_models.ImageMeta {
	tags := []string(image.Tags)
	if tags == nil {
		tags = []string{}
	}
	return response_models.ImageMeta{
		ID:             image.ID.String(),
		Title:          image.Title,
		Description:    image.Description,
		AltText:        image.AltText,
		Caption:        image.Caption,
		Tags:           tags,
		Size:           image.Size,
		MimeType:       image.MimeType,
		Width:          image.Width,
		Height:         image.Height,
		IsProfilePhoto: image.IsProfilePhoto,
		CreatedAt:      image.CreatedAt,
	}
}
