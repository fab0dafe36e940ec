package s3bucket

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/pkg/errors"

	"github.com/constructhub/constructtree/constructs"
)

// BucketProps configures a BucketConstruct. Profile selects the AWS
// named profile used to resolve the bucket's region; an empty profile
// resolves via ProfileEnv and then the default profile.
type BucketProps struct {
	BucketName string
	Profile    string
	Versioned  bool
}

// BucketConstruct is a Construct subclass modeling a single S3 bucket.
// It embeds *constructs.Construct to gain tree membership and calls
// Node().SetSelf on itself so legacy-hook detection and validation
// inspect BucketConstruct rather than the embedded base type.
type BucketConstruct struct {
	*constructs.Construct

	props BucketProps
}

// NewBucket attaches a new bucket construct under scope with the given
// id, registering a name validator and recording the resolved region
// (best-effort; failures are logged as metadata rather than rejected,
// since region resolution depends on local AWS configuration that may
// legitimately be absent in a unit test or CI run).
func NewBucket(scope constructs.Handle, id string, props BucketProps) (*BucketConstruct, error) {
	c, err := constructs.NewConstruct(scope, id)
	if err != nil {
		return nil, errors.Wrapf(err, "creating bucket construct %q", id)
	}

	b := &BucketConstruct{Construct: c, props: props}
	c.Node().SetSelf(b)

	c.Node().AddValidation(nameValidator{name: props.BucketName})

	region, regionErr := ResolveRegion(context.Background(), props.Profile)
	if regionErr != nil {
		c.Node().AddMetadata("Warning", regionErr.Error())
	} else {
		if err := c.Node().SetContext("region", region); err != nil {
			return nil, errors.Wrapf(err, "setting region context on bucket %q", id)
		}
		// us-east-1 is the one region CreateBucketConfiguration omits a
		// LocationConstraint for; every other region names itself.
		constraint := types.BucketLocationConstraint(region)
		if region == "us-east-1" {
			constraint = ""
		}
		c.Node().AddMetadata("aws:constructtree:arn", fmt.Sprintf("arn:aws:s3:::%s", props.BucketName))
		c.Node().AddMetadata("aws:constructtree:locationConstraint", string(constraint))
	}

	return b, nil
}

// BucketName returns the configured bucket name.
func (b *BucketConstruct) BucketName() string {
	return b.props.BucketName
}

// Versioned reports whether the bucket was configured with versioning.
func (b *BucketConstruct) Versioned() bool {
	return b.props.Versioned
}

// Region returns the region resolved at construction time, or false if
// resolution failed (recorded instead as a Warning metadata entry).
func (b *BucketConstruct) Region() (string, bool) {
	v, ok := b.Node().TryGetContext("region")
	if !ok {
		return "", false
	}
	region, ok := v.(string)
	return region, ok
}
