package filter

import (
	"go.uber.org/zap"

	"github.com/rebeliceyang/lazyfilter/internal/models"
)

// FilterContext is the handle shared by every widget of one filter input:
// the immutable column schema, the clause store and the validation collaborator.
// It is passed explicitly to each component that needs it.
type FilterContext struct {
	columns   []models.ColumnDef
	store     *Store
	validator Validator
	logger    *zap.Logger
}

// ContextOption configures a FilterContext
type ContextOption func(*FilterContext)

// WithValidator replaces the default TypeValidator. A nil validator disables
// everything beyond the required-field check.
func WithValidator(v Validator) ContextOption {
	return func(c *FilterContext) {
		c.validator = v
	}
}

// WithContextLogger sets the logger used for edit session events
func WithContextLogger(logger *zap.Logger) ContextOption {
	return func(c *FilterContext) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewFilterContext binds a schema to a store. The schema is copied and must
// not change for the lifetime of the context.
func NewFilterContext(columns []models.ColumnDef, store *Store, opts ...ContextOption) *FilterContext {
	cols := make([]models.ColumnDef, len(columns))
	for i, c := range columns {
		cols[i] = c.Clone()
	}

	c := &FilterContext{
		columns:   cols,
		store:     store,
		validator: TypeValidator{},
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Columns returns the schema
func (c *FilterContext) Columns() []models.ColumnDef {
	return c.columns
}

// Column looks up a column by field
func (c *FilterContext) Column(field string) (models.ColumnDef, bool) {
	for _, col := range c.columns {
		if col.Field == field {
			return col, true
		}
	}
	return models.ColumnDef{}, false
}

// Store returns the clause store
func (c *FilterContext) Store() *Store {
	return c.store
}

// State returns the current filter state
func (c *FilterContext) State() models.FilterState {
	return c.store.State()
}

// Clauses returns the current clause list
func (c *FilterContext) Clauses() []models.Clause {
	return c.store.Clauses()
}

// Dispatch forwards an action to the store
func (c *FilterContext) Dispatch(a Action) models.FilterState {
	return c.store.Dispatch(a)
}

// Editor is one clause edit session: either a new clause or an existing one.
// It binds the column field, operator and value, validates them and commits
// through the store.
type Editor struct {
	ctx    *FilterContext
	clause *models.Clause
	values Values
	errors FieldErrors
}

// NewEditor starts an edit session. clause is nil for a new clause.
func NewEditor(ctx *FilterContext, clause *models.Clause) *Editor {
	e := &Editor{ctx: ctx}
	if clause != nil {
		c := *clause
		e.clause = &c
	}
	e.Reset()
	return e
}

// Reset discards pending changes and errors
func (e *Editor) Reset() {
	e.errors = nil
	if e.clause == nil {
		e.values = Values{}
		return
	}
	e.values = Values{
		ColumnField: e.clause.Column.Field,
		Operator:    string(e.clause.Operator),
		Value:       e.clause.Value,
	}
}

// Clause returns the clause being edited, if any
func (e *Editor) Clause() (models.Clause, bool) {
	if e.clause == nil {
		return models.Clause{}, false
	}
	return *e.clause, true
}

// IsNew reports whether the session creates a new clause
func (e *Editor) IsNew() bool {
	return e.clause == nil
}

// EditID returns the edit marker this session corresponds to
func (e *Editor) EditID() models.EditID {
	if e.clause == nil {
		return models.EditNew
	}
	return models.EditID(e.clause.ID)
}

// Values returns the bound fields
func (e *Editor) Values() Values {
	return e.values
}

// Errors returns the messages of the last refused commit
func (e *Editor) Errors() FieldErrors {
	return e.errors
}

// Column returns the column named by the bound column field
func (e *Editor) Column() (models.ColumnDef, bool) {
	return e.ctx.Column(e.values.ColumnField)
}

// Operators returns the operators valid for the bound column.
// It is empty while no column is chosen.
func (e *Editor) Operators() []models.OperatorOption {
	col, ok := e.Column()
	if !ok {
		return nil
	}
	return OperatorsFor(col.Kind)
}

// SetColumnField binds a column. Choosing a different column clears the
// operator and value, which are unlikely to be valid for another column type.
func (e *Editor) SetColumnField(field string) {
	if field != e.values.ColumnField {
		e.values.Operator = ""
		e.values.Value = ""
	}
	e.values.ColumnField = field
	delete(e.errors, FieldColumn)
}

// SetOperator binds the operator
func (e *Editor) SetOperator(op models.Operator) {
	e.values.Operator = string(op)
	delete(e.errors, FieldOperator)
}

// SetValue binds the value, coerced to its string encoding
func (e *Editor) SetValue(v any) {
	e.values.Value = CoerceValue(v)
	delete(e.errors, FieldValue)
}

// Validate checks the bound fields without committing
func (e *Editor) Validate() FieldErrors {
	values := e.values.Trimmed()
	errs := RequireValues(values)

	col, ok := e.Column()
	if !ok && values.ColumnField != "" {
		if _, exists := errs[FieldColumn]; !exists {
			errs[FieldColumn] = "unknown column"
		}
	}

	if e.ctx.validator != nil {
		var colPtr *models.ColumnDef
		if ok {
			colPtr = &col
		}
		errs.Merge(e.ctx.validator.Validate(colPtr, values))
	}
	return errs
}

// Commit validates the session and writes it to the store. On success the next
// clause in the list becomes active, or edit mode ends after the last one.
// A refused commit returns a *ValidationError and leaves the store unchanged.
func (e *Editor) Commit() error {
	errs := e.Validate()
	if len(errs) > 0 {
		e.errors = errs
		e.ctx.logger.Debug("commit refused",
			zap.String("edit_id", string(e.EditID())),
			zap.Any("errors", errs),
		)
		return &ValidationError{Fields: errs}
	}
	e.errors = nil

	values := e.values.Trimmed()
	col, _ := e.Column()
	before := e.ctx.Clauses()

	index := len(before)
	if e.clause != nil {
		updated := models.Clause{
			ID:       e.clause.ID,
			Column:   col,
			Operator: models.Operator(values.Operator),
			Value:    values.Value,
		}
		index = e.ctx.State().IndexOf(e.clause.ID)
		e.ctx.Dispatch(UpdateClause{Clause: updated})
		e.clause = &updated
	} else {
		e.ctx.Dispatch(AddClause{
			Column:   col,
			Operator: models.Operator(values.Operator),
			Value:    values.Value,
		})
	}

	if index < 0 || index+1 >= len(before) {
		e.ctx.Dispatch(StopEditing())
	} else {
		e.ctx.Dispatch(EditClause(before[index+1]))
	}

	e.Reset()
	return nil
}

// Delete removes the clause being edited. When it was the active clause, edit
// mode moves to the clause that takes its place, then to the one before it.
// It reports false for a new clause session.
func (e *Editor) Delete() bool {
	if e.clause == nil {
		return false
	}

	before := e.ctx.State()
	index := before.IndexOf(e.clause.ID)
	wasActive := before.ActiveEdit() == models.EditID(e.clause.ID)

	after := e.ctx.Dispatch(DeleteClause{Clause: *e.clause})

	if wasActive {
		switch {
		case index >= 0 && index < len(after.Clauses):
			e.ctx.Dispatch(EditClause(after.Clauses[index]))
		case index > 0 && index-1 < len(after.Clauses):
			e.ctx.Dispatch(EditClause(after.Clauses[index-1]))
		default:
			e.ctx.Dispatch(StopEditing())
		}
	}
	return true
}

// StepBack moves edit mode to the clause before this one. The unsaved new
// clause counts as the position after the last clause.
// It reports false when there is nothing to move to.
func (e *Editor) StepBack() bool {
	clauses := e.ctx.Clauses()
	if len(clauses) == 0 {
		return false
	}

	index := len(clauses)
	if e.clause != nil {
		index = e.ctx.State().IndexOf(e.clause.ID)
	}
	if index < 0 {
		return false
	}

	e.ctx.Dispatch(EditClause(clauses[max(index-1, 0)]))
	return true
}
