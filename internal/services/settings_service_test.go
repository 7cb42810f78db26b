package services

import (
	"context"
	"errors"
	"testing"

	"lotus/internal/models/db_models"
	"lotus/internal/models/request_models"
	"lotus/internal/repositories"
	"lotus/pkg/utils"
)

func newSettingsService(t *testing.T) (SettingsServiceInterface, *fakeCache) {
	t.Helper()

	db := openTestDB(t, &db_models.Setting{})
	cache := newFakeCache()
	gallery := NewGalleryService(newFakeGalleryRepo())
	return NewSettingsService(repositories.NewSettingsRepository(db), gallery, cache), cache
}

func TestUpsertSettingStringRoundTrip(t *testing.T) {
	svc, _ := newSettingsService(t)
	ctx := context.Background()

	saved, err := svc.UpsertSetting(ctx, request_models.UpsertSettingRequest{
		Key:      "studio_name",
		Value:    "Lotus Yoga",
		Category: db_models.CategoryGeneral,
	})
	if err != nil {
		t.Fatalf("UpsertSetting: %v", err)
	}
	if saved.Value != "Lotus Yoga" {
		t.Errorf("value = %q, want %q", saved.Value, "Lotus Yoga")
	}
	if saved.ValueType != db_models.ValueTypeString {
		t.Errorf("value_type = %q, want default %q", saved.ValueType, db_models.ValueTypeString)
	}

	// second upsert with the same key overwrites, never duplicates
	if _, err := svc.UpsertSetting(ctx, request_models.UpsertSettingRequest{
		Key:      "studio_name",
		Value:    "Lotus Yoga Studio",
		Category: db_models.CategoryGeneral,
	}); err != nil {
		t.Fatalf("second UpsertSetting: %v", err)
	}

	grouped, err := svc.ListSettings(ctx)
	if err != nil {
		t.Fatalf("ListSettings: %v", err)
	}
	general := grouped[db_models.CategoryGeneral]
	if len(general) != 1 {
		t.Fatalf("expected 1 general setting, got %d", len(general))
	}
	if general[0].Value != "Lotus Yoga Studio" {
		t.Errorf("value = %q, want overwritten value", general[0].Value)
	}
}

func TestUpsertSettingJSONValue(t *testing.T) {
	svc, _ := newSettingsService(t)
	ctx := context.Background()

	saved, err := svc.UpsertSetting(ctx, request_models.UpsertSettingRequest{
		Key:       "opening_hours",
		Value:     `{ "mon": "6-20",   "sun": "8-14" }`,
		ValueType: db_models.ValueTypeJSON,
		Category:  db_models.CategoryContact,
	})
	if err != nil {
		t.Fatalf("UpsertSetting: %v", err)
	}
	// stored normalized, incoming whitespace gone
	if saved.Value != `{"mon":"6-20","sun":"8-14"}` {
		t.Errorf("normalized value = %q", saved.Value)
	}

	_, err = svc.UpsertSetting(ctx, request_models.UpsertSettingRequest{
		Key:       "opening_hours",
		Value:     `{"mon": `,
		ValueType: db_models.ValueTypeJSON,
		Category:  db_models.CategoryContact,
	})
	if err != utils.ErrInvalidJSONValue {
		t.Errorf("malformed JSON: got %v, want ErrInvalidJSONValue", err)
	}
}

func TestUpsertSettingRejectsUnknownCategory(t *testing.T) {
	svc, _ := newSettingsService(t)

	_, err := svc.UpsertSetting(context.Background(), request_models.UpsertSettingRequest{
		Key:      "x",
		Value:    "y",
		Category: "misc",
	})
	if err != utils.ErrInvalidCategory {
		t.Errorf("got %v, want ErrInvalidCategory", err)
	}
}

func TestSaveCategoryCountsSavedAndFailed(t *testing.T) {
	svc, _ := newSettingsService(t)
	ctx := context.Background()

	report, err := svc.SaveCategory(ctx, request_models.SaveCategoryRequest{
		Category: db_models.CategoryHomepage,
		Changes: []request_models.UpsertSettingRequest{
			{Key: "hero_title", Value: "Breathe", Category: db_models.CategoryHomepage},
			{Key: "hero_sub", Value: "Move", Category: db_models.CategoryHomepage},
			// stray key from another tab
			{Key: "phone", Value: "555", Category: db_models.CategoryContact},
			// broken JSON value fails its own save only
			{Key: "hero_cards", Value: "{bad", ValueType: db_models.ValueTypeJSON, Category: db_models.CategoryHomepage},
		},
	})
	if err != nil {
		t.Fatalf("SaveCategory: %v", err)
	}

	if report.Saved != 2 {
		t.Errorf("saved = %d, want 2", report.Saved)
	}
	if report.Failed != 2 {
		t.Errorf("failed = %d, want 2", report.Failed)
	}
	if len(report.FailedKeys) != 2 || report.FailedKeys[0] != "phone" || report.FailedKeys[1] != "hero_cards" {
		t.Errorf("failed keys = %v", report.FailedKeys)
	}

	// the successful keys stayed saved despite the failures
	grouped, err := svc.ListSettings(ctx)
	if err != nil {
		t.Fatalf("ListSettings: %v", err)
	}
	if len(grouped[db_models.CategoryHomepage]) != 2 {
		t.Errorf("homepage settings = %d, want 2", len(grouped[db_models.CategoryHomepage]))
	}
}

func TestPublicSettingsCaching(t *testing.T) {
	svc, cache := newSettingsService(t)
	ctx := context.Background()

	if _, err := svc.UpsertSetting(ctx, request_models.UpsertSettingRequest{
		Key:      "studio_name",
		Value:    "Lotus Yoga",
		Category: db_models.CategoryGeneral,
	}); err != nil {
		t.Fatalf("UpsertSetting: %v", err)
	}

	values, err := svc.PublicSettings(ctx)
	if err != nil {
		t.Fatalf("PublicSettings: %v", err)
	}
	if values["studio_name"] != "Lotus Yoga" {
		t.Errorf("studio_name = %q", values["studio_name"])
	}
	if _, ok := cache.Get(CacheKeyPublicSettings); !ok {
		t.Error("expected public settings to be cached after first read")
	}

	// a write invalidates the cached view
	if _, err := svc.UpsertSetting(ctx, request_models.UpsertSettingRequest{
		Key:      "studio_name",
		Value:    "Lotus",
		Category: db_models.CategoryGeneral,
	}); err != nil {
		t.Fatalf("UpsertSetting: %v", err)
	}
	if _, ok := cache.Get(CacheKeyPublicSettings); ok {
		t.Error("expected cache invalidation after upsert")
	}

	values, err = svc.PublicSettings(ctx)
	if err != nil {
		t.Fatalf("PublicSettings after write: %v", err)
	}
	if values["studio_name"] != "Lotus" {
		t.Errorf("studio_name after write = %q", values["studio_name"])
	}
}

func TestUploadSettingImage(t *testing.T) {
	svc, _ := newSettingsService(t)
	ctx := context.Background()

	// the key must already exist as an image-typed setting
	_, err := svc.UploadSettingImage(ctx, "hero_image", request_models.FileUpload{
		Filename: "hero.png", MimeType: "image/png", Data: testPNG(t, 4, 4),
	})
	if err != utils.ErrSettingNotFound {
		t.Fatalf("missing key: got %v, want ErrSettingNotFound", err)
	}

	if _, err := svc.UpsertSetting(ctx, request_models.UpsertSettingRequest{
		Key:       "hero_image",
		ValueType: db_models.ValueTypeImage,
		Category:  db_models.CategoryHomepage,
	}); err != nil {
		t.Fatalf("UpsertSetting: %v", err)
	}

	saved, err := svc.UploadSettingImage(ctx, "hero_image", request_models.FileUpload{
		Filename: "hero.png", MimeType: "image/png", Data: testPNG(t, 4, 4),
	})
	if err != nil {
		t.Fatalf("UploadSettingImage: %v", err)
	}
	if saved.Value == "" {
		t.Fatal("expected image reference written back as the setting value")
	}
	if saved.ValueType != db_models.ValueTypeImage {
		t.Errorf("value_type = %q", saved.ValueType)
	}
}

// A rejected file and a storage failure must come back as different
// errors, so the admin panel can show a 400 for one and a 500 for the
// other.
func TestUploadSettingImageErrorReasons(t *testing.T) {
	db := openTestDB(t, &db_models.Setting{})
	galleryRepo := newFakeGalleryRepo()
	svc := NewSettingsService(repositories.NewSettingsRepository(db), NewGalleryService(galleryRepo), newFakeCache())
	ctx := context.Background()

	if _, err := svc.UpsertSetting(ctx, request_models.UpsertSettingRequest{
		Key:       "hero_image",
		ValueType: db_models.ValueTypeImage,
		Category:  db_models.CategoryHomepage,
	}); err != nil {
		t.Fatalf("UpsertSetting: %v", err)
	}

	_, err := svc.UploadSettingImage(ctx, "hero_image", request_models.FileUpload{
		Filename: "notes.txt", MimeType: "text/plain", Data: []byte("not an image"),
	})
	if err != utils.ErrNotAnImage {
		t.Errorf("non-image upload: got %v, want ErrNotAnImage", err)
	}

	galleryRepo.createErr = errors.New("disk full")
	_, err = svc.UploadSettingImage(ctx, "hero_image", request_models.FileUpload{
		Filename: "hero.png", MimeType: "image/png", Data: testPNG(t, 4, 4),
	})
	if err != utils.ErrDatabaseError {
		t.Errorf("failed insert: got %v, want ErrDatabaseError", err)
	}
}
