package metrics

const Namespace = "sweet_booking"

const (
	CacheTypeRedis  = "redis"
	CacheTypeMemory = "memory"
)

const (
	LoginOutcomeSuccess       = "success"
	LoginOutcomeInvalidState  = "invalid_state"
	LoginOutcomeProviderError = "provider_error"
	LoginOutcomeExchangeError = "exchange_error"
	LoginOutcomeStorageError  = "storage_error"
)
