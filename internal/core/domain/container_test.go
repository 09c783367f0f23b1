package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMillilitres_Metric(t *testing.T) {
	size := NewContainerSize(true, 355)
	assert.Equal(t, 355, size.Millilitres())
}

func TestMillilitres_ConvertsAndTruncates(t *testing.T) {
	// 12 fl oz = 354.882 ml, truncated toward zero.
	size := NewContainerSize(false, 12)
	assert.Equal(t, 354, size.Millilitres())

	// Reading the metric form leaves the stored value alone.
	assert.Equal(t, 12, size.Size)
	assert.False(t, size.Metric)
}

func TestString_Metric(t *testing.T) {
	size := NewContainerSize(true, 355)
	assert.Equal(t, "355 ml", size.String())
}

func TestString_AnnotatesConversion(t *testing.T) {
	size := NewContainerSize(false, 12)
	assert.Equal(t, "354 ml (converted from 12 fl oz)", size.String())
}

func TestSetSize_KeepsUnit(t *testing.T) {
	size := NewContainerSize(false, 12)
	size.SetSize(16, false)

	assert.Equal(t, 16, size.Size)
	assert.False(t, size.Metric)
}

func TestSetSize_ConvertsOnRequest(t *testing.T) {
	size := NewContainerSize(false, 12)
	size.SetSize(12, true)

	assert.Equal(t, 354, size.Size)
	assert.True(t, size.Metric)
}

func TestSetSize_ConvertIsNoOpWhenAlreadyMetric(t *testing.T) {
	size := NewContainerSize(true, 355)
	size.SetSize(500, true)

	assert.Equal(t, 500, size.Size)
	assert.True(t, size.Metric)
}
