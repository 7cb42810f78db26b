package services

// Cache keys for the public, unauthenticated read endpoints.
const (
	CacheKeyPublicSettings = "public:settings"
	CacheKeyPublicSchedule = "public:schedule"
)

// PublicCache decouples services from the concrete cache; the fx
// wiring provides a go-cache backed implementation.
type PublicCache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
	Invalidate(key string)
}
