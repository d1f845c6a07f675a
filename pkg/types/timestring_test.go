package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid time", input: "10:30", want: "10:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "normalizes single digit hour", input: "9:05", want: "09:05"},
		{name: "invalid hour", input: "25:00", wantErr: true},
		{name: "invalid minute", input: "10:60", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "adds within hour", start: "10:00", minutes: 30, want: "10:30"},
		{name: "crosses hour boundary", start: "10:45", minutes: 30, want: "11:15"},
		{name: "exact end of service window", start: "11:30", minutes: 30, want: "12:00"},
		{name: "long duration", start: "09:00", minutes: 240, want: "13:00"},
		{name: "crosses midnight", start: "23:45", minutes: 30, wantErr: true},
		{name: "negative past midnight", start: "00:10", minutes: -30, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrTimeOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_MinutesUntil(t *testing.T) {
	from := TimeString("10:00")

	forward, err := from.MinutesUntil("11:30")
	require.NoError(t, err)
	assert.Equal(t, 90, forward)

	backward, err := from.MinutesUntil("09:00")
	require.NoError(t, err)
	assert.Equal(t, -60, backward)

	same, err := from.MinutesUntil("10:00")
	require.NoError(t, err)
	assert.Equal(t, 0, same)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("10:00").IsBefore("10:30"))
	assert.False(t, TimeString("10:30").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))

	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:30"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var fromString TimeString
	require.NoError(t, fromString.Scan("10:30"))
	assert.Equal(t, TimeString("10:30"), fromString)

	// postgres TIME приходит как "HH:MM:SS"
	var fromTimeColumn TimeString
	require.NoError(t, fromTimeColumn.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), fromTimeColumn)

	var fromBytes TimeString
	require.NoError(t, fromBytes.Scan([]byte("09:15:00")))
	assert.Equal(t, TimeString("09:15"), fromBytes)

	var fromTime TimeString
	require.NoError(t, fromTime.Scan(time.Date(2026, 3, 15, 14, 45, 0, 0, time.Local)))
	assert.Equal(t, TimeString("14:45"), fromTime)

	var fromNil TimeString
	require.NoError(t, fromNil.Scan(nil))
	assert.True(t, fromNil.IsZero())

	var invalid TimeString
	assert.Error(t, invalid.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	value, err := TimeString("10:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:30", value)

	nilValue, err := TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, nilValue)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}
