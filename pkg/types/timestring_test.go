package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 9, 5, 19, 30, 45, 0, time.UTC)
	assert.Equal(t, TimeString("19:30"), NewTimeString(moment))
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", ts.String())

	_, err = NewTimeStringFromString("")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("9:00pm")
	assert.Error(t, err)
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("10:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 600, m)

	m, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	m, err = TimeString("23:59").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 1439, m)

	_, err = TimeString("bad").Minutes()
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("10:00").AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:00"), ts)

	// Переход через полночь
	ts, err = TimeString("23:30").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:30"), ts)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("22:01").IsAfter("22:00"))
	assert.False(t, TimeString("22:00").IsAfter("22:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("18:45"))
	assert.Equal(t, TimeString("18:45"), ts)

	require.NoError(t, ts.Scan([]byte("07:15")))
	assert.Equal(t, TimeString("07:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 13, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("13:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
