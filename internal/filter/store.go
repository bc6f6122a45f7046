package filter

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rebeliceyang/lazyfilter/internal/models"
)

// Action is a state transition understood by Apply.
//
// This is a sealed interface: only the action types in this package implement it,
// so a type switch over AddClause, UpdateClause, DeleteClause and SetActiveEdit
// covers every case.
type Action interface {
	fmt.Stringer
	action()
}

// AddClause appends a new clause with a freshly generated id
type AddClause struct {
	Column   models.ColumnDef
	Operator models.Operator
	Value    string
}

// UpdateClause replaces the clause with the same id, in place
type UpdateClause struct {
	Clause models.Clause
}

// DeleteClause removes the clause with the same id
type DeleteClause struct {
	Clause models.Clause
}

// SetActiveEdit changes which clause is in edit mode
type SetActiveEdit struct {
	ID models.EditID
}

func (AddClause) action()     {}
func (UpdateClause) action()  {}
func (DeleteClause) action()  {}
func (SetActiveEdit) action() {}

// EditClause targets an existing clause for editing
func EditClause(c models.Clause) SetActiveEdit {
	return SetActiveEdit{ID: models.EditID(c.ID)}
}

// EditNewClause targets the unsaved "new clause" slot
func EditNewClause() SetActiveEdit {
	return SetActiveEdit{ID: models.EditNew}
}

// StopEditing leaves edit mode
func StopEditing() SetActiveEdit {
	return SetActiveEdit{ID: models.EditNone}
}

func (a AddClause) String() string {
	return fmt.Sprintf("add-clause(%s %s %q)", a.Column.Field, a.Operator, a.Value)
}

func (a UpdateClause) String() string {
	return fmt.Sprintf("update-clause(%s)", a.Clause.ID)
}

func (a DeleteClause) String() string {
	return fmt.Sprintf("delete-clause(%s)", a.Clause.ID)
}

func (a SetActiveEdit) String() string {
	if a.ID == models.EditNone {
		return "set-editable-clause(null)"
	}
	return fmt.Sprintf("set-editable-clause(%s)", a.ID)
}

// IDFunc generates clause ids
type IDFunc func() string

// Reducer applies actions to a FilterState. The zero value generates uuid ids.
type Reducer struct {
	NewID IDFunc
}

// Apply returns the state produced by action. The input state is never modified.
// Update and delete of an id that is not present are no-ops.
func (r Reducer) Apply(state models.FilterState, action Action) models.FilterState {
	switch a := action.(type) {
	case AddClause:
		next := cloneState(state)
		next.Clauses = append(next.Clauses, models.Clause{
			ID:       r.newID(),
			Column:   a.Column.Clone(),
			Operator: a.Operator,
			Value:    a.Value,
		})
		return next
	case UpdateClause:
		idx := state.IndexOf(a.Clause.ID)
		if idx < 0 {
			return state
		}
		next := cloneState(state)
		updated := a.Clause
		updated.Column = updated.Column.Clone()
		next.Clauses[idx] = updated
		return next
	case DeleteClause:
		idx := state.IndexOf(a.Clause.ID)
		if idx < 0 {
			return state
		}
		next := cloneState(state)
		next.Clauses = append(next.Clauses[:idx], next.Clauses[idx+1:]...)
		return next
	case SetActiveEdit:
		next := cloneState(state)
		next.EditID = a.ID
		return next
	}
	return state
}

func (r Reducer) newID() string {
	if r.NewID != nil {
		return r.NewID()
	}
	return uuid.NewString()
}

// Apply runs action through the default Reducer
func Apply(state models.FilterState, action Action) models.FilterState {
	return Reducer{}.Apply(state, action)
}

func cloneState(state models.FilterState) models.FilterState {
	next := models.FilterState{
		Clauses: make([]models.Clause, len(state.Clauses)),
		EditID:  state.EditID,
	}
	copy(next.Clauses, state.Clauses)
	return next
}

// Listener is notified with the new state after every change
type Listener func(models.FilterState)

// Store owns the FilterState and serializes every change through its Reducer.
// It is meant to be driven from a single event loop and is not safe for
// concurrent use.
type Store struct {
	reducer   Reducer
	state     models.FilterState
	listeners map[int]Listener
	nextSub   int
	logger    *zap.Logger
}

// StoreOption configures a Store
type StoreOption func(*Store)

// WithIDFunc overrides clause id generation
func WithIDFunc(fn IDFunc) StoreOption {
	return func(s *Store) {
		s.reducer.NewID = fn
	}
}

// WithLogger logs dispatched actions at debug level
func WithLogger(logger *zap.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithInitialState seeds the store, e.g. with clauses restored by the host
func WithInitialState(state models.FilterState) StoreOption {
	return func(s *Store) {
		s.state = cloneState(state)
	}
}

// NewStore creates an empty store
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		state:     models.FilterState{Clauses: []models.Clause{}},
		listeners: make(map[int]Listener),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state
func (s *Store) State() models.FilterState {
	return s.state
}

// Clauses returns the current clause list
func (s *Store) Clauses() []models.Clause {
	return s.state.Clauses
}

// Dispatch applies action and notifies listeners when the state changed
func (s *Store) Dispatch(action Action) models.FilterState {
	prev := s.state
	s.state = s.reducer.Apply(prev, action)

	changed := !prev.Equal(s.state)
	s.logger.Debug("dispatch",
		zap.Stringer("action", action),
		zap.Int("clauses", len(s.state.Clauses)),
		zap.String("edit_id", string(s.state.EditID)),
		zap.Bool("changed", changed),
	)

	if changed {
		for i := 0; i < s.nextSub; i++ {
			if l, ok := s.listeners[i]; ok {
				l(s.state)
			}
		}
	}
	return s.state
}

// Subscribe registers a listener and returns a function that removes it.
// Listeners run in subscription order.
func (s *Store) Subscribe(l Listener) func() {
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = l
	return func() {
		delete(s.listeners, id)
	}
}
