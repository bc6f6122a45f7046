package filter

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/rebeliceyang/lazyfilter/internal/models"
)

// DefaultDateLayout is the yyyy/MM/dd format used by date clause values
const DefaultDateLayout = "2006/01/02"

// ErrValidation is wrapped by every *ValidationError
var ErrValidation = errors.New("invalid clause")

// Field names one bound field of a clause edit session
type Field string

const (
	FieldColumn   Field = "columnField"
	FieldOperator Field = "operator"
	FieldValue    Field = "value"
)

// FieldErrors maps a field to its error message
type FieldErrors map[Field]string

// Merge copies messages from other for fields that have none yet
func (fe FieldErrors) Merge(other FieldErrors) {
	for f, msg := range other {
		if _, ok := fe[f]; !ok {
			fe[f] = msg
		}
	}
}

// ValidationError is returned when a commit is refused
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Fields[Field(f)]))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Values are the three fields bound by an edit session, all string encoded
type Values struct {
	ColumnField string
	Operator    string
	Value       string
}

// Trimmed returns the values with surrounding whitespace removed
func (v Values) Trimmed() Values {
	return Values{
		ColumnField: strings.TrimSpace(v.ColumnField),
		Operator:    strings.TrimSpace(v.Operator),
		Value:       strings.TrimSpace(v.Value),
	}
}

// Validator checks a bound value against its column's declared type.
// column is nil when the column field does not name a known column.
type Validator interface {
	Validate(column *models.ColumnDef, values Values) FieldErrors
}

// ValidatorFunc adapts a function to the Validator interface
type ValidatorFunc func(column *models.ColumnDef, values Values) FieldErrors

// Validate calls f
func (f ValidatorFunc) Validate(column *models.ColumnDef, values Values) FieldErrors {
	return f(column, values)
}

// RequireValues reports every field that is empty after trimming
func RequireValues(values Values) FieldErrors {
	errs := FieldErrors{}
	v := values.Trimmed()
	if v.ColumnField == "" {
		errs[FieldColumn] = "column is required"
	}
	if v.Operator == "" {
		errs[FieldOperator] = "operator is required"
	}
	if v.Value == "" {
		errs[FieldValue] = "value is required"
	}
	return errs
}

// TypeValidator checks operators against the column kind and parses values
// as numbers, booleans, dates or option members.
type TypeValidator struct {
	DateLayout string
}

// Validate implements Validator
func (tv TypeValidator) Validate(column *models.ColumnDef, values Values) FieldErrors {
	errs := FieldErrors{}
	if column == nil {
		errs[FieldColumn] = fmt.Sprintf("column '%s' not found", values.ColumnField)
		return errs
	}

	if values.Operator != "" && !IsValidOperator(column.Kind, models.Operator(values.Operator)) {
		errs[FieldOperator] = fmt.Sprintf("operator '%s' is not valid for %s columns", values.Operator, column.Kind)
	}

	if values.Value == "" {
		return errs
	}

	switch column.Kind {
	case models.KindString:
	case models.KindNumber:
		if _, err := cast.ToFloat64E(values.Value); err != nil {
			errs[FieldValue] = fmt.Sprintf("'%s' is not a number", values.Value)
		}
	case models.KindBoolean:
		if _, err := cast.ToBoolE(values.Value); err != nil {
			errs[FieldValue] = fmt.Sprintf("'%s' is not true or false", values.Value)
		}
	case models.KindDate:
		if _, err := ParseDate(values.Value, tv.DateLayout); err != nil {
			errs[FieldValue] = err.Error()
		}
	case models.KindMultiSelect:
		for _, v := range SplitValues(values.Value) {
			if !hasOption(*column, v) {
				errs[FieldValue] = fmt.Sprintf("'%s' is not an option of %s", v, column.Label())
				break
			}
		}
	}

	return errs
}

func hasOption(column models.ColumnDef, value string) bool {
	for _, opt := range column.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// ParseDate parses a date clause value. The layout defaults to DefaultDateLayout;
// month and day may be written without zero padding.
func ParseDate(value, layout string) (time.Time, error) {
	if layout == "" {
		layout = DefaultDateLayout
	}
	value = strings.TrimSpace(value)

	if t, err := time.Parse(layout, value); err == nil {
		return t, nil
	}
	if layout == DefaultDateLayout {
		if t, err := time.Parse("2006/1/2", value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("'%s' is not a date (%s)", value, humanLayout(layout))
}

// FormatDate renders t in layout, defaulting to DefaultDateLayout
func FormatDate(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultDateLayout
	}
	return t.Format(layout)
}

func humanLayout(layout string) string {
	r := strings.NewReplacer("2006", "yyyy", "01", "MM", "02", "dd")
	return r.Replace(layout)
}

// CoerceValue renders any value widget output as the clause string encoding
func CoerceValue(v any) string {
	switch val := v.(type) {
	case []string:
		return JoinValues(val)
	case time.Time:
		return FormatDate(val, "")
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}
