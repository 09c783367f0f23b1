package domain

// BarcodeDigits is the digit count a scanned barcode must have.
const BarcodeDigits = 12

// Barcode is a numeric product code. The ledger stores whatever it is
// handed; shape validation happens at the prompt (see Valid).
type Barcode int

// Valid reports whether the code has exactly BarcodeDigits decimal digits.
func (b Barcode) Valid() bool {
	if b < 0 {
		return false
	}
	digits := 0
	for v := int(b); v > 0; v /= 10 {
		digits++
	}
	return digits == BarcodeDigits
}
