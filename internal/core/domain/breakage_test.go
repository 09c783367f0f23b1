package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreakageAdd(t *testing.T) {
	var b Breakage
	assert.Equal(t, 0, b.Total)

	b.Add(12)
	b.Add(5)
	assert.Equal(t, 17, b.Total)
}
