package model

// ColumnType is the semantic classification of a table column, used to
// select rendering and formatting rules.
type ColumnType int

const (
	// ColumnText is free text, the default classification.
	ColumnText ColumnType = iota

	// ColumnQuantity is a bare number with no currency marker, such as an
	// item count.
	ColumnQuantity

	// ColumnAmount is a monetary amount: grouped digits with an optional
	// kr or NOK marker.
	ColumnAmount
)

// String returns the lowercase name of the column type.
func (c ColumnType) String() string {
	switch c {
	case ColumnQuantity:
		return "quantity"
	case ColumnAmount:
		return "amount"
	default:
		return "text"
	}
}

// Numeric reports whether the column holds numeric values (quantities or
// amounts) and should be aligned accordingly.
func (c ColumnType) Numeric() bool {
	return c == ColumnQuantity || c == ColumnAmount
}
