package s3bucket

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRegion_CachesByProfile(t *testing.T) {
	ClearRegionCache()
	defer ClearRegionCache()

	region1, err := ResolveRegion(context.Background(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, region1)

	region2, err := ResolveRegion(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, region1, region2, "second call with the same profile should hit the cache")
}

func TestResolveRegion_UnknownProfileWrapsErrRegionUnresolved(t *testing.T) {
	ClearRegionCache()
	defer ClearRegionCache()

	configFile := filepath.Join(t.TempDir(), "config")
	t.Setenv("AWS_CONFIG_FILE", configFile)
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", configFile)

	_, err := ResolveRegion(context.Background(), "no-such-profile")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRegionUnresolved), "expected error to wrap ErrRegionUnresolved, got %v", err)
}
