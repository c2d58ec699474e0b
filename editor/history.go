package editor

import "scene-viewer/scene"

// History manages undo/redo stacks
type History struct {
	undoStack []Command
	redoStack []Command
	maxDepth  int
}

// NewHistory creates a new history with the given max undo depth
func NewHistory(maxDepth int) *History {
	if maxDepth < 1 {
		maxDepth = 1
	}
	return &History{
		undoStack: make([]Command, 0, maxDepth),
		redoStack: make([]Command, 0, maxDepth),
		maxDepth:  maxDepth,
	}
}

// Do executes a command and pushes it to the undo stack. A failed command
// leaves the scene and both stacks untouched.
func (h *History) Do(s *scene.Scene, cmd Command) error {
	if err := cmd.Execute(s); err != nil {
		return err
	}
	h.redoStack = h.redoStack[:0]

	if n := len(h.undoStack); n > 0 {
		if m, ok := h.undoStack[n-1].(merger); ok && m.Merge(cmd) {
			return nil
		}
	}

	h.undoStack = append(h.undoStack, cmd)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[1:]
	}
	return nil
}

// Undo reverts the last action
func (h *History) Undo(s *scene.Scene) bool {
	if len(h.undoStack) == 0 {
		return false
	}
	cmd := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	cmd.Undo(s)
	h.redoStack = append(h.redoStack, cmd)
	return true
}

// Redo reapplies the last undone action
func (h *History) Redo(s *scene.Scene) bool {
	if len(h.redoStack) == 0 {
		return false
	}
	cmd := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	if err := cmd.Execute(s); err != nil {
		return false
	}
	h.undoStack = append(h.undoStack, cmd)
	return true
}

// CanUndo returns whether there are actions to undo
func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }

// CanRedo returns whether there are actions to redo
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// Len reports the undo depth.
func (h *History) Len() int { return len(h.undoStack) }

// UndoDescription names the action Undo would revert, or "".
func (h *History) UndoDescription() string {
	if len(h.undoStack) == 0 {
		return ""
	}
	return h.undoStack[len(h.undoStack)-1].Description()
}

// RedoDescription names the action Redo would reapply, or "".
func (h *History) RedoDescription() string {
	if len(h.redoStack) == 0 {
		return ""
	}
	return h.redoStack[len(h.redoStack)-1].Description()
}
