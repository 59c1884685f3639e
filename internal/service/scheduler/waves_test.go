package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoWaveSpec(model StaffModel) PositionSpec {
	return PositionSpec{
		Model: model,
		Waves: []WaveTemplate{
			{Label: "early", DurationHours: 6},
			{Label: "late", DurationHours: 4},
		},
	}
}

func threeWaveSpec() PositionSpec {
	return PositionSpec{
		Model: CPLHModel{CoversPerLaborHour: 18},
		Waves: []WaveTemplate{
			{Label: "early", DurationHours: 5},
			{Label: "main", DurationHours: 6},
			{Label: "close", DurationHours: 4},
		},
	}
}

func TestDistributeWavesZeroHeadcount(t *testing.T) {
	assert.Nil(t, distributeWaves(threeWaveSpec(), 0, testPolicy()))
}

func TestDistributeWavesFixedOnePerTemplate(t *testing.T) {
	// 固定編制不看 headcount，每個模板固定一人
	allocations := distributeWaves(twoWaveSpec(FixedModel{}), 1, testPolicy())
	require.Len(t, allocations, 2)
	assert.Equal(t, 1, allocations[0].Count)
	assert.Equal(t, 1, allocations[1].Count)
}

func TestDistributeWavesSingleTemplateTakesAll(t *testing.T) {
	spec := PositionSpec{
		Model: CPLHModel{CoversPerLaborHour: 50},
		Waves: []WaveTemplate{{Label: "prep", DurationHours: 7}},
	}
	allocations := distributeWaves(spec, 5, testPolicy())
	require.Len(t, allocations, 1)
	assert.Equal(t, 5, allocations[0].Count)
}

func TestDistributeWavesTwoTemplates(t *testing.T) {
	spec := twoWaveSpec(CPLHModel{CoversPerLaborHour: 35})

	// floor(5 * 0.4) = 2 前段，其餘 3 後段
	allocations := distributeWaves(spec, 5, testPolicy())
	require.Len(t, allocations, 2)
	assert.Equal(t, "early", allocations[0].Template.Label)
	assert.Equal(t, 2, allocations[0].Count)
	assert.Equal(t, "late", allocations[1].Template.Label)
	assert.Equal(t, 3, allocations[1].Count)

	// 單人時前段保底一人，空的後段不出現
	allocations = distributeWaves(spec, 1, testPolicy())
	require.Len(t, allocations, 1)
	assert.Equal(t, "early", allocations[0].Template.Label)
	assert.Equal(t, 1, allocations[0].Count)
}

func TestDistributeWavesThreeTemplatesSmallCounts(t *testing.T) {
	spec := threeWaveSpec()

	// 一人放中段
	allocations := distributeWaves(spec, 1, testPolicy())
	require.Len(t, allocations, 1)
	assert.Equal(t, "main", allocations[0].Template.Label)

	// 兩人拆頭尾，跳過中段
	allocations = distributeWaves(spec, 2, testPolicy())
	require.Len(t, allocations, 2)
	assert.Equal(t, "early", allocations[0].Template.Label)
	assert.Equal(t, "close", allocations[1].Template.Label)
}

func TestDistributeWavesThreeTemplates(t *testing.T) {
	// floor(9 * 0.25) = 2 頭尾各 2，中段 5
	allocations := distributeWaves(threeWaveSpec(), 9, testPolicy())
	require.Len(t, allocations, 3)
	assert.Equal(t, 2, allocations[0].Count)
	assert.Equal(t, 5, allocations[1].Count)
	assert.Equal(t, 2, allocations[2].Count)
}

func TestDistributeWavesSumInvariant(t *testing.T) {
	// 非固定編制下各波人數總和恆等於輸入 headcount
	policy := testPolicy()
	specs := []PositionSpec{
		twoWaveSpec(CPLHModel{CoversPerLaborHour: 18}),
		threeWaveSpec(),
		{Model: RatioModel{DailyCoversPerWorker: 60}, Waves: []WaveTemplate{{Label: "main", DurationHours: 6}}},
	}
	for _, spec := range specs {
		for headcount := 1; headcount <= 40; headcount++ {
			total := 0
			for _, allocation := range distributeWaves(spec, headcount, policy) {
				assert.Greater(t, allocation.Count, 0)
				total += allocation.Count
			}
			assert.Equal(t, headcount, total, "spec with %d waves, headcount %d", len(spec.Waves), headcount)
		}
	}
}
