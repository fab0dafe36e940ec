package s3bucket

import (
	"fmt"
	"net"
	"regexp"
	"strings"
)

var bucketNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9.-]{1,61}[a-z0-9]$`)

// nameValidator implements constructs.Validator, checking a bucket name
// against the subset of S3's naming rules that can be checked locally:
// length, character set, dotted-quad shape, and consecutive punctuation.
type nameValidator struct {
	name string
}

// Validate reports every naming rule the bucket violates, each message
// prefixed by ErrInvalidBucketName so callers can recognize and filter
// on it even though Validator.Validate returns plain strings rather
// than errors.
func (v nameValidator) Validate() []string {
	var problems []string
	name := v.name

	problem := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf("%s: %s", ErrInvalidBucketName, fmt.Sprintf(format, args...)))
	}

	if !bucketNamePattern.MatchString(name) {
		problem("bucket name %q must be 3-63 characters of lowercase letters, digits, dots, and hyphens, starting and ending with a letter or digit", name)
	}
	if strings.Contains(name, "..") {
		problem("bucket name %q must not contain consecutive dots", name)
	}
	if strings.HasPrefix(name, "-") || strings.HasPrefix(name, ".") {
		problem("bucket name %q must not start with a hyphen or dot", name)
	}
	if strings.HasSuffix(name, "-") || strings.HasSuffix(name, ".") {
		problem("bucket name %q must not end with a hyphen or dot", name)
	}
	if net.ParseIP(name) != nil {
		problem("bucket name %q must not be formatted as an IP address", name)
	}
	if strings.HasPrefix(name, "xn--") {
		problem("bucket name %q must not start with the reserved prefix \"xn--\"", name)
	}
	if strings.HasSuffix(name, "-s3alias") {
		problem("bucket name %q must not end with the reserved suffix \"-s3alias\"", name)
	}

	return problems
}
