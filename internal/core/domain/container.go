package domain

import "fmt"

// MlPerFlOz is the fixed fluid ounce to millilitre conversion factor.
const MlPerFlOz = 29.5735

// ContainerSize is the size of a single container, stored either in
// millilitres (Metric) or in fluid ounces.
type ContainerSize struct {
	Metric bool
	Size   int
}

func NewContainerSize(metric bool, size int) ContainerSize {
	return ContainerSize{Metric: metric, Size: size}
}

// Millilitres returns the metric magnitude, converting and truncating toward
// zero when the stored value is in fluid ounces. The stored value is not
// modified.
func (c ContainerSize) Millilitres() int {
	if c.Metric {
		return c.Size
	}
	return int(float64(c.Size) * MlPerFlOz)
}

// String renders the canonical metric form. Converted values keep the
// original fluid-ounce figure visible.
func (c ContainerSize) String() string {
	if c.Metric {
		return fmt.Sprintf("%d ml", c.Size)
	}
	return fmt.Sprintf("%d ml (converted from %d fl oz)", c.Millilitres(), c.Size)
}

// SetSize replaces the magnitude. When convert is true and the value is in
// fluid ounces, the new magnitude is rewritten in millilitres and the value
// becomes metric. Non-negative sizes are a caller precondition; nothing is
// validated here.
func (c *ContainerSize) SetSize(size int, convert bool) {
	c.Size = size
	if convert && !c.Metric {
		c.Size = int(float64(size) * MlPerFlOz)
		c.Metric = true
	}
}
