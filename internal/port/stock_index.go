package port

// TotalKey is the reserved counter aggregating stock across every name. It
// is created lazily by the first Increment against it.
const TotalKey = "Total"

// StockIndex is the per-name quantity counter the ledger treats as the
// source of truth for name uniqueness and fast totals.
type StockIndex interface {
	// Increment adds quantity to the named counter, creating it on first use.
	Increment(name string, quantity int)

	// Decrement subtracts quantity from the named counter. It returns false
	// and leaves the counter untouched when the counter is absent or cannot
	// satisfy the quantity.
	Decrement(name string, quantity int) bool

	// Deduct subtracts quantity from the named counter unconditionally.
	Deduct(name string, quantity int)

	// Has reports whether a counter exists for name.
	Has(name string) bool

	// Get returns the counter for name, false when absent.
	Get(name string) (int, bool)

	// Snapshot returns a copy of every counter, the grand total included.
	Snapshot() map[string]int
}
