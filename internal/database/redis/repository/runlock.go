package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shiftwave/internal/core"
	client "shiftwave/internal/database/client"
	"shiftwave/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

type RunLockRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewRunLockRepository(trace *telemetry.Trace, client *client.RedisClient) *RunLockRepository {
	return &RunLockRepository{trace: trace, client: client.Client()}
}

var ErrRunInProgress = errors.New("schedule run already in progress")

// Acquire 以 SETNX 取得場館週排班鎖，同一 (venue, week) 同時僅允許一次產程。
// 鎖帶 TTL，產程異常中斷時不需人工清鎖。
func (repository *RunLockRepository) Acquire(
	contextValue context.Context,
	venueIdentifier string,
	weekStartDate string,
	timeToLiveSeconds int64,
) (returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() {
		endSpan(returnedError)
	}()

	traceMetadata := core.TraceRunLockMeta{
		VenueID:   venueIdentifier,
		WeekStart: weekStartDate,
		TTLSec:    timeToLiveSeconds,
		Op:        "acquire",
	}

	redisKey := repository.buildKey(venueIdentifier, weekStartDate)
	expirationDuration := time.Duration(timeToLiveSeconds) * time.Second

	wasSet, setError := repository.client.SetNX(contextValue, redisKey, time.Now().UTC().Unix(), expirationDuration).Result()
	if setError != nil {
		returnedError = setError
		return returnedError
	}

	traceMetadata.Acquired = wasSet
	repository.trace.ApplyTraceAttributes(span, traceMetadata)

	if !wasSet {
		returnedError = ErrRunInProgress
		return returnedError
	}
	return nil
}

// Release 釋放週排班鎖；key 不存在時視為已釋放
func (repository *RunLockRepository) Release(
	contextValue context.Context,
	venueIdentifier string,
	weekStartDate string,
) (returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	traceMetadata := core.TraceRunLockMeta{
		VenueID:   venueIdentifier,
		WeekStart: weekStartDate,
		Op:        "release",
	}
	repository.trace.ApplyTraceAttributes(span, traceMetadata)

	redisKey := repository.buildKey(venueIdentifier, weekStartDate)
	returnedError = repository.client.Del(contextValue, redisKey).Err()
	return returnedError
}

// buildKey 建構週排班鎖的 Redis key
func (r *RunLockRepository) buildKey(venueIdentifier string, weekStartDate string) string {
	return fmt.Sprintf("%s:%s:%s:%s", core.RedisKeyServerName, core.RedisKeyScheduleRunLock, venueIdentifier, weekStartDate)
}
