package s3bucket

import (
	"context"
	"os"
	"sync"

	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/pkg/errors"
)

// ProfileEnv is the environment variable consulted for the AWS profile
// to use when none is passed explicitly, mirroring the teacher's
// GO_AWS_PROFILE convention.
const ProfileEnv = "CONSTRUCTTREE_AWS_PROFILE"

const defaultRegion = "us-west-2"

// regionCache avoids repeated credential-chain resolution when many
// BucketConstructs in the same tree share a profile, the same role the
// teacher's internal/config cache plays for its S3 client.
var regionCache struct {
	mu       sync.RWMutex
	profile  string
	region   string
	resolved bool
}

// ResolveRegion determines the AWS region that would apply to a bucket
// built with profile, consulting (in order) an explicit profile
// argument, the ProfileEnv environment variable, and the default
// profile's resolved configuration. It performs no network calls: only
// local credential-chain and config-file resolution, via
// aws-sdk-go-v2/config.LoadDefaultConfig.
func ResolveRegion(ctx context.Context, profile string) (string, error) {
	if profile == "" {
		profile = os.Getenv(ProfileEnv)
	}

	regionCache.mu.RLock()
	if regionCache.resolved && regionCache.profile == profile {
		region := regionCache.region
		regionCache.mu.RUnlock()
		return region, nil
	}
	regionCache.mu.RUnlock()

	var opts []awscfg.LoadOptionsFunc
	if profile != "" {
		opts = append(opts, awscfg.WithSharedConfigProfile(profile))
	}
	cfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return "", errors.Wrap(ErrRegionUnresolved, err.Error())
	}

	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	regionCache.mu.Lock()
	regionCache.profile = profile
	regionCache.region = region
	regionCache.resolved = true
	regionCache.mu.Unlock()

	return region, nil
}

// ClearRegionCache discards the cached region resolution, forcing the
// next ResolveRegion call to resolve from scratch. Exposed for tests.
func ClearRegionCache() {
	regionCache.mu.Lock()
	regionCache.resolved = false
	regionCache.mu.Unlock()
}
