package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLightboxOpenBounds(t *testing.T) {
	tests := []struct {
		name   string
		length int
		index  int
		want   bool
	}{
		{name: "empty collection rejects", length: 0, index: 0, want: false},
		{name: "first index", length: 3, index: 0, want: true},
		{name: "last index", length: 3, index: 2, want: true},
		{name: "past the end rejects", length: 3, index: 3, want: false},
		{name: "negative rejects", length: 3, index: -1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLightbox()
			l.SetLength(tt.length)
			got := l.Open(tt.index)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, l.IsOpen())
		})
	}
}

func TestLightboxWraparound(t *testing.T) {
	const length = 5
	for start := 0; start < length; start++ {
		l := NewLightbox()
		l.SetLength(length)
		require.True(t, l.Open(start))

		// length steps forward returns to the starting index.
		for i := 0; i < length; i++ {
			l.Next()
		}
		assert.Equal(t, start, l.Index(), "next from %d", start)

		// Same going backwards.
		for i := 0; i < length; i++ {
			l.Prev()
		}
		assert.Equal(t, start, l.Index(), "prev from %d", start)
	}
}

func TestLightboxWrapsAtBoundaries(t *testing.T) {
	l := NewLightbox()
	l.SetLength(3)
	require.True(t, l.Open(2))

	l.Next()
	assert.Equal(t, 0, l.Index(), "next past the end wraps to the start")

	l.Prev()
	assert.Equal(t, 2, l.Index(), "prev past the start wraps to the end")
}

func TestLightboxSingleItem(t *testing.T) {
	l := NewLightbox()
	l.SetLength(1)
	require.True(t, l.Open(0))

	l.Next()
	assert.Equal(t, 0, l.Index())
	l.Prev()
	assert.Equal(t, 0, l.Index())
	assert.Equal(t, "1 / 1", l.Indicator())
}

func TestLightboxIndicator(t *testing.T) {
	l := NewLightbox()
	l.SetLength(12)
	require.True(t, l.Open(2))
	assert.Equal(t, "3 / 12", l.Indicator())

	l.Next()
	assert.Equal(t, "4 / 12", l.Indicator())
}

func TestLightboxCloseIdempotent(t *testing.T) {
	l := NewLightbox()
	l.SetLength(2)
	require.True(t, l.Open(1))

	l.Close()
	assert.False(t, l.IsOpen())
	l.Close()
	assert.False(t, l.IsOpen())

	// Navigation while closed is a no-op.
	l.Next()
	l.Prev()
	assert.False(t, l.IsOpen())
}

func TestLightboxResetOnReplace(t *testing.T) {
	l := NewLightbox()
	l.SetLength(5)
	require.True(t, l.Open(4))

	// A collection replacement closes rather than keeping a stale index.
	l.Reset(2)
	assert.False(t, l.IsOpen())

	require.True(t, l.Open(1))
	assert.Equal(t, "2 / 2", l.Indicator())
}

func TestLightboxGrowsOnAppend(t *testing.T) {
	l := NewLightbox()
	l.SetLength(3)
	require.True(t, l.Open(2))

	// An append keeps the lightbox open and extends the wrap range.
	l.SetLength(5)
	assert.True(t, l.IsOpen())
	assert.Equal(t, "3 / 5", l.Indicator())

	l.Next()
	assert.Equal(t, 3, l.Index())
}
