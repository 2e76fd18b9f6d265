package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtendPathDoesNotAlias(t *testing.T) {
	parent := make([]string, 2, 8)
	parent[0], parent[1] = "a", "b"

	left := ExtendPath(parent, "left")
	right := ExtendPath(parent, "right")

	assert.Equal(t, []string{"a", "b", "left"}, left)
	assert.Equal(t, []string{"a", "b", "right"}, right)
	assert.Equal(t, []string{"a", "b"}, parent)
}

func TestExtendPathFromNil(t *testing.T) {
	assert.Equal(t, []int{7}, ExtendPath(nil, 7))
}
