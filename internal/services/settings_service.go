package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log"

	"lotus/internal/models/db_models"
	"lotus/internal/models/request_models"
	"lotus/internal/models/response_models"
	"lotus/internal/repositories"
	"lotus/pkg/utils"
)

type SettingsServiceInterface interface {
	ListSettings(ctx context.Context) (response_models.SettingsByCategory, error)
	UpsertSetting(ctx context.Context, request request_models.UpsertSettingRequest) (*response_models.Setting, error)
	SaveCategory(ctx context.Context, request request_models.SaveCategoryRequest) (*response_models.CategorySaveReport, error)
	PublicSettings(ctx context.Context) (map[string]string, error)
	UploadSettingImage(ctx context.Context, key string, file request_models.FileUpload) (*response_models.Setting, error)
}

type SettingsService struct {
	settingsRepo repositories.SettingsRepository
	gallery      GalleryServiceInterface
	cache        PublicCache
}

func NewSettingsService(settingsRepo repositories.SettingsRepository, gallery GalleryServiceInterface, cache PublicCache) SettingsServiceInterface {
	return &SettingsService{
		settingsRepo: settingsRepo,
		gallery:      gallery,
		cache:        cache,
	}
}

func (s *SettingsService) ListSettings(ctx context.Context) (response_models.SettingsByCategory, error) {
	settings, err := s.settingsRepo.List(ctx)
	if err != nil {
		log.Printf("Error listing settings: %v", err)
		return nil, utils.ErrDatabaseError
	}

	grouped := make(response_models.SettingsByCategory)
	for _, setting := range settings {
		grouped[setting.Category] = append(grouped[setting.Category], toSettingResponse(setting))
	}
	return grouped, nil
}

func (s *SettingsService) UpsertSetting(ctx context.Context, request request_models.UpsertSettingRequest) (*response_models.Setting, error) {
	if !db_models.ValidCategory(request.Category) {
		return nil, utils.ErrInvalidCategory
	}

	valueType := request.ValueType
	if valueType == "" {
		valueType = db_models.ValueTypeString
	}
	if !db_models.ValidValueType(valueType) {
		return nil, utils.ErrInvalidInput
	}

	value := request.Value
	if valueType == db_models.ValueTypeJSON {
		normalized, err := normalizeJSON(value)
		if err != nil {
			return nil, utils.ErrInvalidJSONValue
		}
		value = normalized
	}

	setting := &db_models.Setting{
		Key:         request.Key,
		Value:       value,
		ValueType:   valueType,
		Category:    request.Category,
		Description: request.Description,
	}

	if err := s.settingsRepo.Upsert(ctx, setting); err != nil {
		log.Printf("Error saving setting %s: %v", request.Key, err)
		return nil, utils.ErrDatabaseError
	}

	s.cache.Invalidate(CacheKeyPublicSettings)

	resp := toSettingResponse(*setting)
	return &resp, nil
}

// SaveCategory mirrors the admin panel's save loop: one independent
// write per modified key. A failure mid-loop leaves earlier keys saved;
// the report carries the "N saved, M failed" counts.
func (s *SettingsService) SaveCategory(ctx context.Context, request request_models.SaveCategoryRequest) (*response_models.CategorySaveReport, error) {
	if !db_models.ValidCategory(request.Category) {
		return nil, utils.ErrInvalidCategory
	}

	report := &response_models.CategorySaveReport{}
	for _, change := range request.Changes {
		if change.Category != request.Category {
			// a stray key from another tab is a failed item, not a
			// reason to abort the loop
			report.Failed++
			report.FailedKeys = append(report.FailedKeys, change.Key)
			continue
		}
		if _, err := s.UpsertSetting(ctx, change); err != nil {
			log.Printf("Error saving setting %s: %v", change.Key, err)
			report.Failed++
			report.FailedKeys = append(report.FailedKeys, change.Key)
			continue
		}
		report.Saved++
	}
	return report, nil
}

// PublicSettings is the read-only key/value view the marketing site
// consumes. Cached; any upsert invalidates it.
func (s *SettingsService) PublicSettings(ctx context.Context) (map[string]string, error) {
	if cached, ok := s.cache.Get(CacheKeyPublicSettings); ok {
		if values, ok := cached.(map[string]string); ok {
			return values, nil
		}
	}

	settings, err := s.settingsRepo.List(ctx)
	if err != nil {
		log.Printf("Error listing settings: %v", err)
		return nil, utils.ErrDatabaseError
	}

	values := make(map[string]string, len(settings))
	for _, setting := range settings {
		values[setting.Key] = setting.Value
	}

	s.cache.Set(CacheKeyPublicSettings, values)
	return values, nil
}

// UploadSettingImage is the one auto-save path: the bytes are stored
// through the gallery and the resulting image reference is written
// back as the setting's value in the same call.
func (s *SettingsService) UploadSettingImage(ctx context.Context, key string, file request_models.FileUpload) (*response_models.Setting, error) {
	existing, err := s.settingsRepo.GetByKey(ctx, key)
	if err != nil {
		log.Printf("Error fetching setting %s: %v", key, err)
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrSettingNotFound
	}
	if existing.ValueType != db_models.ValueTypeImage {
		return nil, utils.ErrInvalidInput
	}

	meta, err := s.gallery.UploadImage(ctx, file)
	if err != nil {
		return nil, err
	}

	return s.UpsertSetting(ctx, request_models.UpsertSettingRequest{
		Key:       key,
		Value:     "/gallery/images/" + meta.ID + "/data",
		ValueType: db_models.ValueTypeImage,
		Category:  existing.Category,
	})
}

// normalizeJSON round-trips a value through encoding/json so stored
// JSON settings compare equal regardless of incoming whitespace.
func normalizeJSON(value string) (string, error) {
	var decoded interface{}
	decoder := json.NewDecoder(bytes.NewReader([]byte(value)))
	decoder.UseNumber()
	if err := decoder.Decode(&decoded); err != nil {
		return "", err
	}
	out, err := json.Marshal(decoded)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func toSettingResponse(setting db_models.Setting) response_models.Setting {
	return response_models.Setting{
		ID:          setting.ID.String(),
		Key:         setting.Key,
		Value:       setting.Value,
		ValueType:   setting.ValueType,
		Category:    setting.Category,
		Description: setting.Description,
	}
}
