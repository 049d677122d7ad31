package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/bakeplan-go/internal/adapters/catalog"
)

func TestParseClock(t *testing.T) {
	d, err := catalog.ParseClock("1:30:00")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	// Long proofing spans exceed a day
	d, err = catalog.ParseClock("36:00:00")
	require.NoError(t, err)
	assert.Equal(t, 36*time.Hour, d)

	d, err = catalog.ParseClock("0:00:45")
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, d)
}

func TestParseClock_Invalid(t *testing.T) {
	cases := []string{"", "1:30", "1:60:00", "1:00:60", "-1:00:00", "a:b:c"}
	for _, c := range cases {
		_, err := catalog.ParseClock(c)
		assert.Error(t, err, c)
	}
}

func TestParseTimeOfDay(t *testing.T) {
	d, err := catalog.ParseTimeOfDay("06:30")
	require.NoError(t, err)
	assert.Equal(t, 6*time.Hour+30*time.Minute, d)

	d, err = catalog.ParseTimeOfDay("00:00")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), d)
}

func TestParseTimeOfDay_Invalid(t *testing.T) {
	cases := []string{"", "24:00", "12:60", "12", "12:00:00"}
	for _, c := range cases {
		_, err := catalog.ParseTimeOfDay(c)
		assert.Error(t, err, c)
	}
}
