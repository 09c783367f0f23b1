package domain

import "time"

// Breakage is the running total of bottles recorded as broken.
type Breakage struct {
	Total int
}

// Add increments the running total.
func (b *Breakage) Add(amount int) {
	b.Total += amount
}

// BreakageEvent records one flagged addition. Name and Quantity mirror the
// addition that was taxed; ID and At identify the event itself.
type BreakageEvent struct {
	ID       string
	Name     string
	Quantity int
	At       time.Time
}
