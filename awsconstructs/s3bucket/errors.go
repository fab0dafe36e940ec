// Package s3bucket provides a Construct subclass modeling a single S3
// bucket, grounded on the teacher's extensions/s3 submodule: the same
// aws-sdk-go-v2 config/caching idiom, rehomed from a filesystem-tree
// builder onto a construct-tree leaf.
package s3bucket

import "github.com/pkg/errors"

var (
	// ErrInvalidBucketName is returned when a bucket name fails the S3
	// naming rules checked by Validate.
	ErrInvalidBucketName = errors.New("invalid bucket name")

	// ErrRegionUnresolved is returned by ResolveRegion when the AWS
	// configuration cannot be loaded (for example, a named profile that
	// does not exist). A configuration that loads but names no region is
	// not an error: ResolveRegion then returns "us-west-2".
	ErrRegionUnresolved = errors.New("region unresolved")
)
