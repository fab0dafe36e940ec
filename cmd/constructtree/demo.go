package main

import (
	"github.com/constructhub/constructtree/awsconstructs/s3bucket"
	"github.com/constructhub/constructtree/constructs"
)

// buildDemoTree assembles a small, representative construct tree: an
// App root, two stacks, an S3 bucket construct under one of them, and
// a plain construct standing in for a compute resource under the
// other, wired together with a cross-stack dependency.
func buildDemoTree() (*constructs.Construct, error) {
	app := constructs.NewRoot()

	storage, err := constructs.NewConstruct(app, "StorageStack")
	if err != nil {
		return nil, err
	}
	bucket, err := s3bucket.NewBucket(storage, "Assets", s3bucket.BucketProps{
		BucketName: "constructtree-demo-assets",
		Versioned:  true,
	})
	if err != nil {
		return nil, err
	}

	compute, err := constructs.NewConstruct(app, "ComputeStack")
	if err != nil {
		return nil, err
	}
	worker, err := constructs.NewConstruct(compute, "Worker")
	if err != nil {
		return nil, err
	}
	worker.Node().AddMetadata("aws:cdk:info", "depends on StorageStack/Assets")

	if err := worker.Node().AddDependency(bucket); err != nil {
		return nil, err
	}

	return app, nil
}
