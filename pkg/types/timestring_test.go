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
		wantErr error
	}{
		{name: "valid morning", input: "09:30", want: "09:30"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid end of day", input: "23:59", want: "23:59"},
		{name: "missing leading zero", input: "9:30", wantErr: ErrInvalidTimeString},
		{name: "with seconds", input: "09:30:00", wantErr: ErrInvalidTimeString},
		{name: "out of range hour", input: "25:00", wantErr: ErrInvalidTimeString},
		{name: "empty", input: "", wantErr: ErrInvalidTimeString},
		{name: "garbage", input: "abcde", wantErr: ErrInvalidTimeString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
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
		wantErr error
	}{
		{name: "add within hour", start: "10:00", minutes: 30, want: "10:30"},
		{name: "cross hour boundary", start: "10:45", minutes: 30, want: "11:15"},
		{name: "add zero", start: "10:00", minutes: 0, want: "10:00"},
		{name: "negative within day", start: "10:00", minutes: -30, want: "09:30"},
		{name: "overflow past midnight", start: "23:30", minutes: 45, wantErr: ErrTimeOutOfRange},
		{name: "underflow before midnight", start: "00:10", minutes: -20, wantErr: ErrTimeOutOfRange},
		{name: "invalid base", start: "not-a-time", minutes: 5, wantErr: ErrInvalidTimeString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_DiffMinutes(t *testing.T) {
	diff, err := TimeString("09:00").DiffMinutes("09:45")
	require.NoError(t, err)
	assert.Equal(t, 45, diff)

	diff, err = TimeString("10:30").DiffMinutes("10:00")
	require.NoError(t, err)
	assert.Equal(t, -30, diff)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("09:59").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:01").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:30:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// lib/pq отдаёт TIME как []byte "HH:MM:SS"
	require.NoError(t, ts.Scan([]byte("10:30:00")))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan("18:45:00.123"))
	assert.Equal(t, TimeString("18:45"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 10, 15, 9, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
