package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnixMilliRoundTrip(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 30, 0, 123_000_000, time.UTC)

	ms := ToUnixMilli(ts)
	assert.Equal(t, ts, FromUnixMilli(ms))

	assert.Equal(t, int64(0), ToUnixMilli(time.Time{}))
	assert.True(t, FromUnixMilli(0).IsZero())
}

func TestUnixMilliPtr(t *testing.T) {
	assert.Nil(t, ToUnixMilliPtr(nil))
	assert.Nil(t, FromUnixMilliPtr(nil))

	ts := time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)
	ms := ToUnixMilliPtr(&ts)
	require.NotNil(t, ms)
	back := FromUnixMilliPtr(ms)
	require.NotNil(t, back)
	assert.True(t, ts.Equal(*back))
}

func TestNowUTC(t *testing.T) {
	assert.Equal(t, time.UTC, NowUTC().Location())
}
