package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOnlyJSONRoundTrip(t *testing.T) {
	d, err := ParseDateOnly("2024-07-15")
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-07-15"`, string(b))

	var parsed DateOnly
	require.NoError(t, json.Unmarshal(b, &parsed))
	assert.Equal(t, d.String(), parsed.String())
}

func TestDateOnlyRejectsNonISO(t *testing.T) {
	_, err := ParseDateOnly("15/07/2024")
	assert.Error(t, err)

	var d DateOnly
	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &d))
}

func TestDateOnlyScan(t *testing.T) {
	var d DateOnly

	require.NoError(t, d.Scan("2023-01-02"))
	assert.Equal(t, "2023-01-02", d.String())

	require.NoError(t, d.Scan(time.Date(2023, 3, 4, 10, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2023-03-04", d.String())

	require.NoError(t, d.Scan([]byte("2023-05-06")))
	assert.Equal(t, "2023-05-06", d.String())

	assert.Error(t, d.Scan(42))
}

func TestTimeOfDayJSONRoundTrip(t *testing.T) {
	tod, err := ParseTimeOfDay("18:30:00")
	require.NoError(t, err)

	b, err := json.Marshal(tod)
	require.NoError(t, err)
	assert.Equal(t, `"18:30:00"`, string(b))

	var parsed TimeOfDay
	require.NoError(t, json.Unmarshal(b, &parsed))
	assert.Equal(t, tod.String(), parsed.String())
}

func TestTimeOfDayRejectsNonISO(t *testing.T) {
	_, err := ParseTimeOfDay("6:30 PM")
	assert.Error(t, err)
}

func TestValuesAreISOText(t *testing.T) {
	d, _ := ParseDateOnly("2024-12-31")
	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31", v)

	tod, _ := ParseTimeOfDay("23:59:59")
	tv, err := tod.Value()
	require.NoError(t, err)
	assert.Equal(t, "23:59:59", tv)
}
