package cache

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayease-backend/models"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestListingCache_SetGetInvalidate(t *testing.T) {
	c := NewListingCache(Options{LocalTTL: time.Minute}, quietLogger())

	_, ok := c.Get()
	assert.False(t, ok, "empty cache should miss")

	require.True(t, c.Set(c.Generation(), []models.Property{{ID: 1, Title: "Loft"}, {ID: 2, Title: "Cabin"}}))
	got, ok := c.Get()
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "Cabin", got[1].Title)

	c.Invalidate()
	_, ok = c.Get()
	assert.False(t, ok, "invalidated cache should miss")
}

func TestListingCache_Expires(t *testing.T) {
	c := NewListingCache(Options{LocalTTL: time.Millisecond}, quietLogger())
	c.Set(c.Generation(), []models.Property{{ID: 1}})

	time.Sleep(5 * time.Millisecond)
	_, ok := c.Get()
	assert.False(t, ok)
}

func TestListingCache_DropsFillStartedBeforeInvalidate(t *testing.T) {
	c := NewListingCache(Options{LocalTTL: time.Minute}, quietLogger())

	generation := c.Generation()
	stale := []models.Property{{ID: 1, Title: "Deleted listing"}}
	c.Invalidate()

	assert.False(t, c.Set(generation, stale))
	_, ok := c.Get()
	assert.False(t, ok, "stale fill must not be cached")

	assert.True(t, c.Set(c.Generation(), []models.Property{}))
	got, ok := c.Get()
	require.True(t, ok)
	assert.Empty(t, got)
}
