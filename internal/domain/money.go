package domain

import "github.com/shopspring/decimal"

// Money fields travel as JSON numbers, not strings. The package-level flag is
// the only switch shopspring/decimal offers for this; set it once where every
// marshaling package already imports from.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
