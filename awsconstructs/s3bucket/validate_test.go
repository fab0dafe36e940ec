package s3bucket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameValidator_AcceptsWellFormedNames(t *testing.T) {
	for _, name := range []string{"my-bucket", "my.bucket.example", "a1b2c3"} {
		v := nameValidator{name: name}
		assert.Empty(t, v.Validate(), "expected %q to pass naming validation", name)
	}
}

func TestNameValidator_RejectsBadNames(t *testing.T) {
	cases := map[string]string{
		"ab":               "too short",
		"My-Bucket":        "uppercase",
		"bucket..name":     "consecutive dots",
		"-bucket":          "leading hyphen",
		"bucket-":          "trailing hyphen",
		"192.168.1.1":      "looks like an IP address",
		"xn--bucket":       "reserved xn-- prefix",
		"my-bucket-s3alias": "reserved -s3alias suffix",
	}
	for name, why := range cases {
		v := nameValidator{name: name}
		problems := v.Validate()
		assert.NotEmpty(t, problems, "expected %q to fail validation (%s)", name, why)
		for _, p := range problems {
			assert.Contains(t, p, ErrInvalidBucketName.Error(), "expected %q's problems to be wrapped with ErrInvalidBucketName", name)
		}
	}
}
