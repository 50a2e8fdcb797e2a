package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-06-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-06-15", d.String())

	_, err = ParseDate("15/06/2026")
	assert.Error(t, err)
}

func TestDate_JSON(t *testing.T) {
	d, _ := ParseDate("2026-06-15")

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-06-15"`, string(b))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-12-31"`), &parsed))
	assert.Equal(t, "2026-12-31", parsed.String())

	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &parsed))
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-06-15", d.String())

	require.NoError(t, d.Scan([]byte("2026-01-02")))
	assert.Equal(t, "2026-01-02", d.String())

	assert.Error(t, d.Scan(42))
}
