package repository

import (
	"testing"

	"shiftwave/internal/database/mongodb/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeShifts(count int) []*model.ShiftAssignment {
	shifts := make([]*model.ShiftAssignment, 0, count)
	for i := 0; i < count; i++ {
		shifts = append(shifts, &model.ShiftAssignment{PositionName: "Server"})
	}
	return shifts
}

func TestShiftBatchesSplitsByCapacity(t *testing.T) {
	batches := shiftBatches(makeShifts(125), 50)

	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 50)
	assert.Len(t, batches[1], 50)
	assert.Len(t, batches[2], 25)
}

func TestShiftBatchesEmptyInput(t *testing.T) {
	assert.Empty(t, shiftBatches(nil, 50))
}

func TestShiftBatchesNonPositiveCapacityFallsBack(t *testing.T) {
	batches := shiftBatches(makeShifts(70), 0)

	require.Len(t, batches, 2)
	assert.Len(t, batches[0], 50)
	assert.Len(t, batches[1], 20)
}

func TestSetInsertBatchCapacity(t *testing.T) {
	repository := &ScheduleRepository{insertBatchCapacity: 50}

	repository.SetInsertBatchCapacity(10)
	assert.Equal(t, 10, repository.insertBatchCapacity)

	// 非正值不生效
	repository.SetInsertBatchCapacity(0)
	assert.Equal(t, 10, repository.insertBatchCapacity)
	repository.SetInsertBatchCapacity(-5)
	assert.Equal(t, 10, repository.insertBatchCapacity)
}
