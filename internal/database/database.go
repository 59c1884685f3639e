package database

import (
	client "shiftwave/internal/database/client"
	fluentdRepo "shiftwave/internal/database/fluentd/repository"
	mongoRepo "shiftwave/internal/database/mongodb/repository"
	redisRepo "shiftwave/internal/database/redis/repository"

	"github.com/google/wire"
)

// ProviderSet 定義所有 DB Client 的依賴
var ProviderSet = wire.NewSet(
	client.NewMongoClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	mongoRepo.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)
