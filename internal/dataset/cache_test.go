// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_ReusesWithinTTL(t *testing.T) {
	cfg := writeSources(t, sampleTable, "", "")
	c := NewCache(cfg)

	first, err := c.Get()
	require.NoError(t, err)

	// Break the source files: a cached Get must not touch them.
	require.NoError(t, os.Remove(cfg.DatasetPath))

	second, err := c.Get()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestCache_ReloadsWhenStale(t *testing.T) {
	cfg := writeSources(t, sampleTable, "", "")
	cfg.CacheTTL = time.Hour
	c := NewCache(cfg)

	clock := time.Now()
	c.now = func() time.Time { return clock }

	first, err := c.Get()
	require.NoError(t, err)

	clock = clock.Add(2 * time.Hour)

	second, err := c.Get()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestCache_FailedReloadSurfacesError(t *testing.T) {
	cfg := writeSources(t, sampleTable, "", "")
	cfg.CacheTTL = time.Hour
	c := NewCache(cfg)

	clock := time.Now()
	c.now = func() time.Time { return clock }

	_, err := c.Get()
	require.NoError(t, err)

	require.NoError(t, os.Remove(cfg.DatasetPath))
	clock = clock.Add(2 * time.Hour)

	_, err = c.Get()
	assert.Error(t, err)
}
