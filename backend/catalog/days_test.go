package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogIsComplete(t *testing.T) {
	all := All()
	assert.Len(t, all, 21)

	for i, day := range all {
		assert.Equal(t, i+1, day.Day)
		assert.NotEmpty(t, day.Mission, "day %d mission", day.Day)
		assert.NotEmpty(t, day.Assumption, "day %d assumption", day.Day)
		assert.NotEmpty(t, day.SafetyBehavior, "day %d safety behavior", day.Day)
		assert.NotEmpty(t, day.InternalFocus, "day %d internal focus", day.Day)
		assert.NotEmpty(t, day.Script, "day %d script", day.Day)
		assert.NotEmpty(t, day.DefaultLearning, "day %d default learning", day.Day)
		assert.NotEmpty(t, day.Environments, "day %d environments", day.Day)
	}
}

func TestDayLookup(t *testing.T) {
	day, ok := Day(1)
	assert.True(t, ok)
	assert.Equal(t, 1, day.Day)

	day, ok = Day(21)
	assert.True(t, ok)
	assert.Equal(t, 21, day.Day)

	for _, n := range []int{0, -1, 22, 100} {
		_, ok := Day(n)
		assert.False(t, ok, "day %d should not exist", n)
	}
}

func TestCheckpointDays(t *testing.T) {
	assert.Equal(t, []int{8, 15, 21}, CheckpointDays)

	for day := 1; day <= 21; day++ {
		expected := day == 8 || day == 15 || day == 21
		assert.Equal(t, expected, IsCheckpointDay(day), "day %d", day)
	}
	assert.False(t, IsCheckpointDay(0))
	assert.False(t, IsCheckpointDay(22))
}
