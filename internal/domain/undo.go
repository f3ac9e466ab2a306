package domain

type undoAction struct {
	do   func()
	undo func()
}

type undoStack struct {
	depth   int
	pending []undoAction
	done    [][]undoAction
	undone  [][]undoAction
}

// WithUndo runs fn inside an undo transaction on s.
//
// Every change recorded while the outermost transaction is open becomes a single
// undo step. Nested calls join the enclosing transaction. When fn returns an error
// or panics, the changes it recorded are reverted before the error or panic
// propagates, and the transaction is still closed.
func (s *Script) WithUndo(fn func() error) (err error) {
	u := &s.undo
	mark := len(u.pending)
	outer := u.depth == 0
	completed := false

	u.depth++

	defer func() {
		u.depth--

		if !completed {
			u.revert(mark)
		}

		if outer {
			u.commit()
		}
	}()

	err = fn()
	completed = err == nil

	return err
}

// Undo reverts the most recent undo step.
func (s *Script) Undo() error {
	u := &s.undo
	if u.depth > 0 {
		return ErrUndoScopeOpen
	}

	if len(u.done) == 0 {
		return ErrNothingToUndo
	}

	step := u.done[len(u.done)-1]
	u.done = u.done[:len(u.done)-1]

	for i := len(step) - 1; i >= 0; i-- {
		step[i].undo()
	}

	u.undone = append(u.undone, step)

	return nil
}

// Redo reapplies the most recently undone step.
func (s *Script) Redo() error {
	u := &s.undo
	if u.depth > 0 {
		return ErrUndoScopeOpen
	}

	if len(u.undone) == 0 {
		return ErrNothingToRedo
	}

	step := u.undone[len(u.undone)-1]
	u.undone = u.undone[:len(u.undone)-1]

	for _, action := range step {
		action.do()
	}

	u.done = append(u.done, step)

	return nil
}

// CanUndo reports whether an undo step is available.
func (s *Script) CanUndo() bool { return len(s.undo.done) > 0 }

// CanRedo reports whether a redo step is available.
func (s *Script) CanRedo() bool { return len(s.undo.undone) > 0 }

// UndoDepth returns the number of undo steps available.
func (s *Script) UndoDepth() int { return len(s.undo.done) }

// InUndoScope reports whether a transaction is open.
func (s *Script) InUndoScope() bool { return s.undo.depth > 0 }

// apply performs do and records the change when a transaction is open.
// Outside a transaction the change is applied but cannot be undone.
func (s *Script) apply(do, undo func()) {
	do()

	if s.undo.depth == 0 {
		return
	}

	s.undo.pending = append(s.undo.pending, undoAction{do: do, undo: undo})
}

func (u *undoStack) revert(mark int) {
	for i := len(u.pending) - 1; i >= mark; i-- {
		u.pending[i].undo()
	}

	u.pending = u.pending[:mark]
}

func (u *undoStack) commit() {
	if len(u.pending) > 0 {
		u.done = append(u.done, u.pending)
		u.undone = nil
	}

	u.pending = nil
}
