package editor

// OpKind tags an edit operation.
type OpKind int

const (
	OpInsert OpKind = iota
	OpDelete
)

// Op is one invertible mutation. Text holds the inserted bytes for OpInsert
// and the removed bytes for OpDelete, which is what makes it reversible.
type Op struct {
	Kind   OpKind
	Offset int
	Text   string
}

// historyCap bounds memory; the oldest entries are evicted past it.
const historyCap = 1000

// History is the edit operation log backing undo/redo: an ordered op
// sequence plus a cursor marking the next operation to redo. Pushing a new
// op truncates the redo tail, so branching history is never kept.
type History struct {
	ops []Op
	pos int
}

func (h *History) Push(op Op) {
	h.ops = append(h.ops[:h.pos], op)
	h.pos = len(h.ops)
	if len(h.ops) > historyCap {
		h.ops = append(h.ops[:0], h.ops[1:]...)
		h.pos--
	}
}

// Undo applies the inverse of the most recent operation to doc. It reports
// whether anything was undone and the offset the edit touched, so the caller
// can move its cursor there.
func (h *History) Undo(doc *Document) (int, bool) {
	if h.pos == 0 {
		return 0, false
	}
	h.pos--
	op := h.ops[h.pos]
	switch op.Kind {
	case OpInsert:
		doc.Delete(op.Offset, len(op.Text))
	case OpDelete:
		doc.Insert(op.Offset, op.Text)
	}
	return op.Offset, true
}

// Redo re-applies the next operation forward.
func (h *History) Redo(doc *Document) (int, bool) {
	if h.pos >= len(h.ops) {
		return 0, false
	}
	op := h.ops[h.pos]
	h.pos++
	switch op.Kind {
	case OpInsert:
		doc.Insert(op.Offset, op.Text)
	case OpDelete:
		doc.Delete(op.Offset, len(op.Text))
	}
	return op.Offset, true
}

// Clear drops the whole log. Called for mutations that are not invertible:
// replace-all and file switches.
func (h *History) Clear() {
	h.ops = h.ops[:0]
	h.pos = 0
}

func (h *History) CanUndo() bool { return h.pos > 0 }
func (h *History) CanRedo() bool { return h.pos < len(h.ops) }
func (h *History) Len() int      { return len(h.ops) }
