// Package constants contains string constants shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event bus providers accepted in the pubsub.provider setting.
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Cache drivers accepted in the cache.driver setting.
const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

// AllRestaurantsCacheScope is the cache scope used by the public, cross-tenant product listing.
const AllRestaurantsCacheScope = "all"
