package constructs

import (
	"crypto/sha1"
	"encoding/hex"
)

// addressScheme prefixes every computed address so downstream tools can
// recognize the hashing scheme without guessing. It must never change.
const addressScheme = "c8"

// defaultGroupID is the conventional child id used to wrap a singleton
// under an organizational node without perturbing the address of the
// wrapped node. See ComputeAddress.
const defaultGroupID = "Default"

// ComputeAddress derives the stable, path-independent address for a
// chain of ids running from the root to a node (root's id, normally the
// empty string, included first). Any component equal to "Default" is
// dropped before hashing so that wrapping a construct in a conventional
// "Default" grouping node never changes its address.
//
// The result is the two-character scheme marker "c8" followed by the
// lowercase hex SHA-1 digest of the remaining components, each fed to
// the hash individually terminated by a newline (the original
// construct library's hash.update(component); hash.update("\n") scheme,
// not a "/"-joined string), 42 characters total.
func ComputeAddress(ids []string) string {
	h := sha1.New()
	for _, id := range ids {
		if id == defaultGroupID {
			continue
		}
		h.Write([]byte(id))
		h.Write([]byte("\n"))
	}
	return addressScheme + hex.EncodeToString(h.Sum(nil))
}
