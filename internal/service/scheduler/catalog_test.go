package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecForUnknownPositionFallsBack(t *testing.T) {
	spec := SpecFor("Cellar Steward")
	require.Len(t, spec.Waves, 1)
	model, ok := spec.Model.(CPLHModel)
	require.True(t, ok)
	assert.Equal(t, 10.0, model.CoversPerLaborHour)
}

func TestCatalogCPLH(t *testing.T) {
	assert.Equal(t, 18.0, CatalogCPLH("Server"))
	// 非 CPLH 模型回 0，校准不得為它產生混合值
	assert.Equal(t, 0.0, CatalogCPLH("Host"))
	assert.Equal(t, 0.0, CatalogCPLH("Bartender"))
	assert.Equal(t, 0.0, CatalogCPLH("General Manager"))
}

func TestBuiltinCatalogShape(t *testing.T) {
	for positionName, spec := range builtinCatalog {
		require.NotNil(t, spec.Model, positionName)
		require.NotEmpty(t, spec.Waves, positionName)
		assert.LessOrEqual(t, len(spec.Waves), 3, positionName)
		for _, wave := range spec.Waves {
			assert.Greater(t, wave.DurationHours, 0.0, "%s wave %s", positionName, wave.Label)
			start, end := shiftWindow("2026-01-06", wave)
			assert.InDelta(t, wave.DurationHours, end.Sub(start).Hours(), 1e-9, "%s wave %s window", positionName, wave.Label)
		}
	}
}
