package scheduler

import (
	"math"

	"shiftwave/config"
)

// WaveAllocation 單一波次模板分到的人數
type WaveAllocation struct {
	Template WaveTemplate
	Count    int
}

// distributeWaves 把尖峰人數 N 依固定比例政策拆到 1~3 個波次，
// N > 0 時各波人數總和恆等於 N（固定編制職位除外，每波固定一人）。
func distributeWaves(spec PositionSpec, headcount int, policy config.Scheduler) []WaveAllocation {
	if headcount <= 0 {
		return nil
	}

	if _, isFixed := spec.Model.(FixedModel); isFixed {
		allocations := make([]WaveAllocation, 0, len(spec.Waves))
		for _, wave := range spec.Waves {
			allocations = append(allocations, WaveAllocation{Template: wave, Count: 1})
		}
		return allocations
	}

	switch len(spec.Waves) {
	case 1:
		return []WaveAllocation{{Template: spec.Waves[0], Count: headcount}}

	case 2:
		earlyCount := int(math.Floor(float64(headcount) * policy.TwoWaveEarlyShare))
		if earlyCount < 1 {
			earlyCount = 1
		}
		lateCount := headcount - earlyCount
		allocations := []WaveAllocation{{Template: spec.Waves[0], Count: earlyCount}}
		if lateCount > 0 {
			allocations = append(allocations, WaveAllocation{Template: spec.Waves[1], Count: lateCount})
		}
		return allocations

	case 3:
		switch {
		case headcount == 1:
			return []WaveAllocation{{Template: spec.Waves[1], Count: 1}}
		case headcount == 2:
			// 兩人時刻意拆到開場與收場，寧可薄也要頭尾都有人
			return []WaveAllocation{
				{Template: spec.Waves[0], Count: 1},
				{Template: spec.Waves[2], Count: 1},
			}
		default:
			bookendCount := int(math.Floor(float64(headcount) * policy.ThreeWaveBookendShare))
			if bookendCount < 1 {
				bookendCount = 1
			}
			middleCount := headcount - 2*bookendCount
			return []WaveAllocation{
				{Template: spec.Waves[0], Count: bookendCount},
				{Template: spec.Waves[1], Count: middleCount},
				{Template: spec.Waves[2], Count: bookendCount},
			}
		}
	}

	return nil
}
