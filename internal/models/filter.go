package models

import "strings"

// ColumnKind identifies the value type of a filterable column
type ColumnKind string

const (
	KindString      ColumnKind = "string"
	KindNumber      ColumnKind = "number"
	KindDate        ColumnKind = "date"
	KindBoolean     ColumnKind = "boolean"
	KindMultiSelect ColumnKind = "multi-select"
)

// Kinds lists every column kind in display order
var Kinds = []ColumnKind{KindString, KindNumber, KindDate, KindBoolean, KindMultiSelect}

// Option is one choice offered by a multi-select column
type Option struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// ColumnDef describes one filterable field.
// Options is only meaningful when Kind is KindMultiSelect.
type ColumnDef struct {
	Field   string     `json:"field" yaml:"field"`
	Kind    ColumnKind `json:"type" yaml:"type"`
	Options []Option   `json:"options,omitempty" yaml:"options,omitempty"`
}

// StringColumn creates a free text column
func StringColumn(field string) ColumnDef {
	return ColumnDef{Field: field, Kind: KindString}
}

// NumberColumn creates a numeric column
func NumberColumn(field string) ColumnDef {
	return ColumnDef{Field: field, Kind: KindNumber}
}

// DateColumn creates a date column
func DateColumn(field string) ColumnDef {
	return ColumnDef{Field: field, Kind: KindDate}
}

// BooleanColumn creates a true/false column
func BooleanColumn(field string) ColumnDef {
	return ColumnDef{Field: field, Kind: KindBoolean}
}

// MultiSelectColumn creates a column whose values are picked from options
func MultiSelectColumn(field string, options ...Option) ColumnDef {
	return ColumnDef{Field: field, Kind: KindMultiSelect, Options: options}
}

// Label returns the human readable column name: "date_of_birth" -> "Date of birth"
func (c ColumnDef) Label() string {
	if c.Field == "" {
		return ""
	}
	words := strings.Join(strings.Split(c.Field, "_"), " ")
	return strings.ToUpper(words[:1]) + words[1:]
}

// Clone returns a copy that shares no slices with c
func (c ColumnDef) Clone() ColumnDef {
	if c.Options != nil {
		c.Options = append([]Option(nil), c.Options...)
	}
	return c
}

// Equal reports whether two column definitions are identical
func (c ColumnDef) Equal(other ColumnDef) bool {
	if c.Field != other.Field || c.Kind != other.Kind || len(c.Options) != len(other.Options) {
		return false
	}
	for i := range c.Options {
		if c.Options[i] != other.Options[i] {
			return false
		}
	}
	return true
}

// Operator is the stable key of a comparison verb
type Operator string

const (
	OpEqual          Operator = "EQUAL"
	OpNotEqual       Operator = "NOT_EQUAL"
	OpContains       Operator = "CONTAINS"
	OpDoesNotContain Operator = "DOES_NOT_CONTAIN"
	OpLessThan       Operator = "LESS_THAN"
	OpGreaterThan    Operator = "GREATER_THAN"
)

// OperatorOption pairs an operator with the label shown for a column kind
type OperatorOption struct {
	Label string   `json:"label"`
	Value Operator `json:"value"`
}

// Clause is one column/operator/value filter condition
type Clause struct {
	ID       string    `json:"id"`
	Column   ColumnDef `json:"column"`
	Operator Operator  `json:"operator"`
	Value    string    `json:"value"`
}

// Equal reports whether two clauses hold the same data
func (c Clause) Equal(other Clause) bool {
	return c.ID == other.ID &&
		c.Operator == other.Operator &&
		c.Value == other.Value &&
		c.Column.Equal(other.Column)
}

// EditID identifies the clause in edit mode.
// EditNone means nothing is edited, EditNew is the unsaved "new clause" slot,
// anything else is a Clause.ID.
type EditID string

const (
	EditNone EditID = ""
	EditNew  EditID = "new"
)

// FilterState is the ordered clause list plus the active edit marker
type FilterState struct {
	Clauses []Clause `json:"clauses"`
	EditID  EditID   `json:"editId,omitempty"`
}

// IndexOf returns the position of the clause with the given id, or -1
func (s FilterState) IndexOf(id string) int {
	for i, c := range s.Clauses {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// ActiveEdit returns the edit marker, treating an id that no longer exists as EditNone
func (s FilterState) ActiveEdit() EditID {
	switch s.EditID {
	case EditNone, EditNew:
		return s.EditID
	}
	if s.IndexOf(string(s.EditID)) < 0 {
		return EditNone
	}
	return s.EditID
}

// ActiveClause returns the clause in edit mode, if it is an existing clause
func (s FilterState) ActiveClause() (Clause, bool) {
	id := s.ActiveEdit()
	if id == EditNone || id == EditNew {
		return Clause{}, false
	}
	return s.Clauses[s.IndexOf(string(id))], true
}

// Equal reports whether two states hold the same clauses and edit marker
func (s FilterState) Equal(other FilterState) bool {
	if s.EditID != other.EditID || len(s.Clauses) != len(other.Clauses) {
		return false
	}
	for i := range s.Clauses {
		if !s.Clauses[i].Equal(other.Clauses[i]) {
			return false
		}
	}
	return true
}
