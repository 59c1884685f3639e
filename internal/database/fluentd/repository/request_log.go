package repository

import (
	"context"
	"encoding/json"
	"time"

	"shiftwave/config"
	"shiftwave/internal/core"
	"shiftwave/internal/database/client"
	"shiftwave/internal/database/fluentd/model"
)

// LogRepository 統一負責發送 Request/ScheduleRun Log 到 Fluentd
type LogRepository struct {
	fluentdClient *client.FluentdClient
	version       string
}

func NewLogRepository(config *config.Configuration, client *client.FluentdClient) *LogRepository {
	version := "1.0.0"
	if config.App.Version != "" {
		version = config.App.Version
	}
	return &LogRepository{fluentdClient: client, version: version}
}

func (repository *LogRepository) LogRequest(ctx context.Context, req model.RequestLog) error {
	if req.LoggedAt == "" {
		req.LoggedAt = time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC")
	}
	if req.Version == "" {
		req.Version = repository.version
	}
	b, _ := json.Marshal(req)
	var fluentdMessage map[string]any
	_ = json.Unmarshal(b, &fluentdMessage)
	err := repository.fluentdClient.Post(ctx, string(core.FluentdRequest), fluentdMessage)
	return err
}

func (repository *LogRepository) LogScheduleRun(ctx context.Context, run model.ScheduleRunLog) error {
	if run.LoggedAt == "" {
		run.LoggedAt = time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC")
	}
	if run.Version == "" {
		run.Version = repository.version
	}
	b, _ := json.Marshal(run)
	var fluentdMessage map[string]any
	_ = json.Unmarshal(b, &fluentdMessage)
	err := repository.fluentdClient.Post(ctx, string(core.FluentdScheduleRun), fluentdMessage)
	return err
}
