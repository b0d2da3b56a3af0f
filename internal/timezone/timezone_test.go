package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("not/a-zone").String())
	assert.Equal(t, "Europe/Berlin", Location("Europe/Berlin").String())
}

func TestOnDate(t *testing.T) {
	loc := Location("")
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	at, err := OnDate(day, "14:30")
	require.NoError(t, err)
	assert.Equal(t, 14, at.Hour())
	assert.Equal(t, 30, at.Minute())
	assert.Equal(t, day.Year(), at.Year())
	assert.Equal(t, loc, at.Location())

	_, err = OnDate(day, "25:00")
	assert.Error(t, err)
}

func TestDateOnlyAndClock(t *testing.T) {
	loc := Location("")
	at := time.Date(2026, 3, 2, 14, 30, 45, 0, loc)

	midnight := DateOnly(at)
	assert.Equal(t, 0, midnight.Hour())
	assert.Equal(t, 0, midnight.Minute())
	assert.Equal(t, at.Day(), midnight.Day())

	assert.Equal(t, "14:30", Clock(at))
}
