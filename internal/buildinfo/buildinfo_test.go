package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelease(t *testing.T) {
	origVersion, origCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = origVersion, origCommit })

	Version, Commit = "", ""
	assert.Equal(t, "dev", Release())

	Commit = "abc1234"
	assert.Equal(t, "abc1234", Release())

	Version = "v1.2.0"
	assert.Equal(t, "v1.2.0", Release())
}
