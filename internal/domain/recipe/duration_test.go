package recipe_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/bakeplan-go/internal/domain/recipe"
)

func TestDurationTable_DurationFor(t *testing.T) {
	table := recipe.DurationTable{
		{MinQuantity: 0, MaxQuantity: 100, Duration: 30 * time.Minute},
		{MinQuantity: 101, MaxQuantity: 500, Duration: time.Hour},
	}

	d, err := table.DurationFor(450)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, d)

	d, err = table.DurationFor(100)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, d)

	// Band bounds are inclusive on both sides
	d, err = table.DurationFor(101)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, d)
}

func TestDurationTable_NoBand(t *testing.T) {
	table := recipe.DurationTable{
		{MinQuantity: 0, MaxQuantity: 100, Duration: 30 * time.Minute},
		{MinQuantity: 101, MaxQuantity: 500, Duration: time.Hour},
	}

	_, err := table.DurationFor(600)

	var noBand *recipe.NoBandError
	require.ErrorAs(t, err, &noBand)
	assert.Equal(t, 600.0, noBand.Quantity)
}

func TestDurationTable_MalformedBand(t *testing.T) {
	table := recipe.DurationTable{
		{MinQuantity: 200, MaxQuantity: 100, Duration: time.Hour},
	}

	_, err := table.DurationFor(150)

	var malformed *recipe.MalformedBandError
	require.ErrorAs(t, err, &malformed)
}
