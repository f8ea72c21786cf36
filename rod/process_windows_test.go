//go:build integration && windows

package rod_test

import "testing"

// assertProcessGone is a no-op on Windows where signal probing is unavailable.
func assertProcessGone(t *testing.T, pid int) {
	t.Helper()
}
