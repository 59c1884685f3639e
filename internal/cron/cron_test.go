package cron

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextWeekStart(t *testing.T) {
	// 週三 → 下週一
	assert.Equal(t, "2026-01-05", nextWeekStart(time.Date(2025, 12, 31, 8, 0, 0, 0, time.UTC)))
	// 週一當天也取下一個週一，避免排到已經開跑的當週
	assert.Equal(t, "2026-01-12", nextWeekStart(time.Date(2026, 1, 5, 23, 0, 0, 0, time.UTC)))
	// 週日 → 隔天
	assert.Equal(t, "2026-01-05", nextWeekStart(time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)))
}
