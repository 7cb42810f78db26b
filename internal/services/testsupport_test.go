package services

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lotus/internal/models/db_models"
)

// testPNG encodes a small valid PNG so upload paths can exercise the
// real decoder.
func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 120, G: 160, B: 130, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}
	return buf.Bytes()
}

// openTestDB spins up a throwaway sqlite database and migrates the
// given models. Gallery images stay out of here: their postgres column
// types (text[], bytea) do not translate, so gallery tests run against
// an in-memory fake instead.
func openTestDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// fakeCache is a plain map standing in for the go-cache wrapper.
type fakeCache struct {
	data map[string]interface{}
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]interface{})}
}

func (f *fakeCache) Get(key string) (interface{}, bool) {
	v, ok := f.data[key]
	return v, ok
}

func (f *fakeCache) Set(key string, value interface{}) {
	f.data[key] = value
}

func (f *fakeCache) Invalidate(key string) {
	delete(f.data, key)
}

// fakeMail records outbound mail instead of sending it.
type fakeMail struct {
	confirmations []string
	resetTokens   []string
}

func (f *fakeMail) SendRegistrationConfirmation(to, name, retreatTitle, startDate, endDate string) error {
	f.confirmations = append(f.confirmations, to)
	return nil
}

func (f *fakeMail) SendMailToResetPassword(email, token string) error {
	f.resetTokens = append(f.resetTokens, token)
	return nil
}

// fakeGalleryRepo keeps images in a map, metadata and payload together.
// Setting createErr makes the next Create fail, for storage-error paths.
type fakeGalleryRepo struct {
	images    map[uuid.UUID]db_models.GalleryImage
	createErr error
}

func newFakeGalleryRepo() *fakeGalleryRepo {
	return &fakeGalleryRepo{images: make(map[uuid.UUID]db_models.GalleryImage)}
}

func (f *fakeGalleryRepo) Create(ctx context.Context, image *db_models.GalleryImage) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	f.images[image.ID] = *image
	return image.ID, nil
}

func (f *fakeGalleryRepo) Update(ctx context.Context, image *db_models.GalleryImage) error {
	f.images[image.ID] = *image
	return nil
}

func (f *fakeGalleryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.images, id)
	return nil
}

func (f *fakeGalleryRepo) ListMeta(ctx context.Context) ([]db_models.GalleryImage, error) {
	out := make([]db_models.GalleryImage, 0, len(f.images))
	for _, image := range f.images {
		image.Data = nil
		out = append(out, image)
	}
	return out, nil
}

func (f *fakeGalleryRepo) GetMeta(ctx context.Context, id string) (*db_models.GalleryImage, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	image, ok := f.images[parsed]
	if !ok {
		return nil, nil
	}
	image.Data = nil
	return &image, nil
}

func (f *fakeGalleryRepo) GetWithData(ctx context.Context, id string) (*db_models.GalleryImage, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	image, ok := f.images[parsed]
	if !ok {
		return nil, nil
	}
	return &image, nil
}

func (f *fakeGalleryRepo) CountProfilePhotos(ctx context.Context, excludeID uuid.UUID) (int64, error) {
	var n int64
	for id, image := range f.images {
		if id != excludeID && image.IsProfilePhoto {
			n++
		}
	}
	return n, nil
}
