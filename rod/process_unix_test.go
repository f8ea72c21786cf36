//go:build integration && !windows

package rod_test

import (
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// assertProcessGone verifies that pid no longer refers to a live process.
func assertProcessGone(t *testing.T, pid int) {
	t.Helper()

	// Signal 0 checks if process exists without affecting it
	assert.Eventually(t, func() bool {
		return syscall.Kill(pid, syscall.Signal(0)) != nil
	}, 2*time.Second, 50*time.Millisecond, "browser process %d should be terminated", pid)
}
