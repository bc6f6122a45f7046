package filter

import (
	"fmt"
	"strings"

	"github.com/rebeliceyang/lazyfilter/internal/models"
)

// Describe renders a clause as chip text, e.g. "Age is less than 30".
// Multi-select values are shown by option label.
func Describe(clause models.Clause) string {
	return fmt.Sprintf("%s %s %s",
		clause.Column.Label(),
		OperatorLabel(clause.Column.Kind, clause.Operator),
		DisplayValue(clause.Column, clause.Value),
	)
}

// DescribeAll renders the clause list as one AND-chained sentence
func DescribeAll(clauses []models.Clause) string {
	parts := make([]string, 0, len(clauses))
	for _, c := range clauses {
		parts = append(parts, Describe(c))
	}
	return strings.Join(parts, " and ")
}

// DisplayValue returns the human readable form of a clause value for a column
func DisplayValue(column models.ColumnDef, value string) string {
	if column.Kind != models.KindMultiSelect {
		return value
	}

	values := SplitValues(value)
	labels := make([]string, 0, len(values))
	for _, v := range values {
		label := v
		for _, opt := range column.Options {
			if opt.Value == v {
				label = opt.Label
				break
			}
		}
		labels = append(labels, label)
	}
	return strings.Join(labels, ", ")
}
