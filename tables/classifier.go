package tables

import (
	"regexp"

	"github.com/fakturo/fakturo/model"
)

var (
	// amountPattern matches monetary amounts: digit groups separated by
	// space, comma, or dot ("1 234,56", "1.234,56", "1234.56"), with an
	// optional trailing currency marker. It is an unanchored search and
	// deliberately permissive.
	amountPattern = regexp.MustCompile(`\d+[\s.,]\d+(?:[\s.,]\d+)*(?:\s*(?:kr|NOK))?`)

	// quantityPattern matches a cell that is nothing but a bare number
	// with at most one decimal separator.
	quantityPattern = regexp.MustCompile(`^\d+(?:[,.]\d+)?$`)
)

// rule pairs a pattern with the column type it votes for.
type rule struct {
	pattern *regexp.Regexp
	result  model.ColumnType
}

// Classifier infers the semantic type of each table column by majority-vote
// pattern matching over the data rows.
//
// Rules are evaluated in fixed priority order: amount before quantity.
// The amount pattern is an unanchored superset match, so it intentionally
// shadows quantity for columns of decimal numbers; only columns of bare
// integers fall through to quantity.
type Classifier struct {
	rules []rule
}

// NewClassifier creates a classifier with the standard rule order.
func NewClassifier() *Classifier {
	return &Classifier{
		rules: []rule{
			{pattern: amountPattern, result: model.ColumnAmount},
			{pattern: quantityPattern, result: model.ColumnQuantity},
		},
	}
}

// Classify returns the inferred type for every column of the table. The
// header row is excluded from voting. A column is assigned the first rule
// type matched by a strict majority (more than half) of its values;
// columns with no majority, and columns with no data rows, default to text.
func (c *Classifier) Classify(t *model.Table) map[int]model.ColumnType {
	types := make(map[int]model.ColumnType)
	if t == nil || t.RowCount() == 0 {
		return types
	}

	for col := 0; col < t.ColCount(); col++ {
		types[col] = c.classifyColumn(t.Column(col))
	}
	return types
}

func (c *Classifier) classifyColumn(values []string) model.ColumnType {
	if len(values) == 0 {
		return model.ColumnText
	}

	for _, r := range c.rules {
		matches := 0
		for _, v := range values {
			if r.pattern.MatchString(v) {
				matches++
			}
		}
		if 2*matches > len(values) {
			return r.result
		}
	}
	return model.ColumnText
}
