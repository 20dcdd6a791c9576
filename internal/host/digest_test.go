package host_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/shade/internal/host"
)

func TestDigestCache(t *testing.T) {
	c := host.NewDigestCache()

	assert.False(t, c.Unchanged("/a.vert", "x"), "unknown paths are never unchanged")

	c.Record("/a.vert", "x")
	assert.True(t, c.Unchanged("/a.vert", "x"))
	assert.False(t, c.Unchanged("/a.vert", "y"))
	assert.Equal(t, 1, c.Len())

	c.Forget("/a.vert")
	assert.False(t, c.Unchanged("/a.vert", "x"))
	assert.Equal(t, 0, c.Len())
}
