package filter

import "github.com/rebeliceyang/lazyfilter/internal/models"

var (
	stringOperators = []models.OperatorOption{
		{Label: "equals", Value: models.OpEqual},
		{Label: "contains", Value: models.OpContains},
	}
	numberOperators = []models.OperatorOption{
		{Label: "equals", Value: models.OpEqual},
		{Label: "is less than", Value: models.OpLessThan},
		{Label: "is greater than", Value: models.OpGreaterThan},
	}
	booleanOperators = []models.OperatorOption{
		{Label: "is", Value: models.OpEqual},
		{Label: "is not", Value: models.OpNotEqual},
	}
	dateOperators = []models.OperatorOption{
		{Label: "is", Value: models.OpEqual},
		{Label: "is before", Value: models.OpLessThan},
		{Label: "is after", Value: models.OpGreaterThan},
	}
	multiSelectOperators = []models.OperatorOption{
		{Label: "has", Value: models.OpContains},
		{Label: "does not have", Value: models.OpDoesNotContain},
	}
)

// OperatorsFor returns the operators valid for a column kind, in display order.
// An unknown kind yields an empty list, meaning no value editor is available.
// The returned slice is a copy and may be modified by the caller.
func OperatorsFor(kind models.ColumnKind) []models.OperatorOption {
	var ops []models.OperatorOption

	switch kind {
	case models.KindString:
		ops = stringOperators
	case models.KindNumber:
		ops = numberOperators
	case models.KindBoolean:
		ops = booleanOperators
	case models.KindDate:
		ops = dateOperators
	case models.KindMultiSelect:
		ops = multiSelectOperators
	}

	return append([]models.OperatorOption{}, ops...)
}

// OperatorLabel returns the label of op for a column kind.
// Operators that do not belong to the kind render as their raw key.
func OperatorLabel(kind models.ColumnKind, op models.Operator) string {
	for _, o := range OperatorsFor(kind) {
		if o.Value == op {
			return o.Label
		}
	}
	return string(op)
}

// IsValidOperator reports whether op belongs to the operator set of kind
func IsValidOperator(kind models.ColumnKind, op models.Operator) bool {
	for _, o := range OperatorsFor(kind) {
		if o.Value == op {
			return true
		}
	}
	return false
}
