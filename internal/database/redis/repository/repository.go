package repository

import (
	"github.com/google/wire"
)

// 統一管理所有 Redis repository
type RedisRepository struct {
	runLockRepository *RunLockRepository
}

// 建立 Redis repository 物件
func NewRedisRepository(
	runLockRepository *RunLockRepository,
) *RedisRepository {
	return &RedisRepository{
		runLockRepository: runLockRepository,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewRunLockRepository,
	NewRedisRepository)
