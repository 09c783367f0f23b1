package domain

import "time"

// Beer is one stocked product. ID is assigned by the ledger and never
// changes; UpdatedAt is refreshed by every mutation that touches the record.
type Beer struct {
	ID             int
	Name           string
	Style          string
	AlcoholContent float64
	Size           ContainerSize
	Quantity       int
	Barcode        Barcode
	UpdatedAt      time.Time
}

// BeerUpdate carries the fields of an edit. Nil fields are left unchanged;
// non-nil fields overwrite unconditionally.
type BeerUpdate struct {
	Name           *string
	Style          *string
	AlcoholContent *float64
	Size           *int
	Metric         *bool
	Quantity       *int
	Barcode        *Barcode
}
