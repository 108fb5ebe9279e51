package pace

import (
	"fmt"
	"strings"
)

const delimiter = ":"

// KeyFunc projects a call argument onto a stable string key for
// [Memoize] and [OnceChanged]. Two arguments with the same key are
// treated as the same call.
type KeyFunc[A any] func(A) string

// TextKey derives a key from the argument's default textual form.
//
// It is the convenient choice for strings, integers, and other scalar
// arguments. Structurally different values that print identically collide
// silently, so for composite arguments supply a KeyFunc that spells out the
// identity you mean, e.g. with [JoinKey].
func TextKey[A any](a A) string {
	return fmt.Sprint(a)
}

// JoinKey joins key parts with a fixed delimiter, for arguments whose
// identity spans several fields.
func JoinKey(parts ...string) string {
	return strings.Join(parts, delimiter)
}
