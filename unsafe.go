package srcxml

import "unsafe"

// UnsafeString views buf as a string without copying it.
// https://github.com/golang/go/issues/25484 has more info on this pattern.
//
// buf is typically a borrowed slice handed to a Handler method: it is only
// valid until the next refill, so the returned string inherits that same
// lifetime restriction and must not be retained past the call it was built
// for (switch on it, build a map key and copy that, etc. -- don't stash the
// string itself).
func UnsafeString(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}
	return *(*string)(unsafe.Pointer(&buf))
}
