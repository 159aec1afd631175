package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseForm(t *testing.T) {
	got, err := ParseForm("17-08-2024 10:30:00")
	require.NoError(t, err)
	assert.Equal(t, "17-08-2024 | 10:30:00", FormatTable(got))
	assert.Equal(t, time.Date(2024, 8, 17, 3, 30, 0, 0, time.UTC), got.UTC())

	_, err = ParseForm("2024-08-17")
	assert.Error(t, err)

	now, err := ParseForm("  ")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), now, time.Minute)
}

func TestFormatForm(t *testing.T) {
	utc := time.Date(2024, 1, 31, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "01-02-2024 03:00:00", FormatForm(utc))
}
