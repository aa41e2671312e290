package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesIdentical(t *testing.T) {
	in := []byte("network:\n  cluster: devnet\n")
	assert.Empty(t, Lines(in, in, "defaults", "effective"))
}

func TestLinesSingleChange(t *testing.T) {
	before := []byte("network:\n  cluster: devnet\nlog:\n  level: info\n")
	after := []byte("network:\n  cluster: testnet\nlog:\n  level: info\n")

	out := Lines(before, after, "defaults", "effective")

	require.NotEmpty(t, out)
	assert.Contains(t, out, "--- defaults\n+++ effective\n")
	assert.Contains(t, out, "-  cluster: devnet\n")
	assert.Contains(t, out, "+  cluster: testnet\n")
	assert.Contains(t, out, " network:\n")
	assert.Contains(t, out, "   level: info\n")
}

func TestLinesAddedLine(t *testing.T) {
	before := []byte("network:\n  cluster: devnet\n")
	after := []byte("network:\n  cluster: devnet\n  rpc_url: http://127.0.0.1:8899\n")

	out := Lines(before, after, "a", "b")

	assert.Contains(t, out, "+  rpc_url: http://127.0.0.1:8899\n")
	assert.NotContains(t, out, "-  cluster")
}

func TestChanged(t *testing.T) {
	before := []byte("a\nb\nc\n")
	after := []byte("a\nB\nc\nd\n")

	removed, added := Changed(before, after)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 2, added)

	removed, added = Changed(before, before)
	assert.Zero(t, removed)
	assert.Zero(t, added)
}
