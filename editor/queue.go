package editor

import (
	"fmt"

	"scene-viewer/scene"
)

type queueOp int

const (
	opDo queueOp = iota
	opUndo
	opRedo
)

type queued struct {
	op  queueOp
	cmd Command
}

// Queue collects the changes requested during a frame. Nothing touches
// the scene until Flush.
type Queue struct {
	pending []queued
}

// Push appends a command.
func (q *Queue) Push(cmd Command) {
	q.pending = append(q.pending, queued{op: opDo, cmd: cmd})
}

// PushUndo requests one undo step at its position in the queue.
func (q *Queue) PushUndo() { q.pending = append(q.pending, queued{op: opUndo}) }

// PushRedo requests one redo step at its position in the queue.
func (q *Queue) PushRedo() { q.pending = append(q.pending, queued{op: opRedo}) }

// Len reports the number of pending entries.
func (q *Queue) Len() int { return len(q.pending) }

// FlushResult summarises one Flush.
type FlushResult struct {
	Applied int
	Errors  []error

	// Last is the description of the last applied entry.
	Last string
}

// Flush applies every pending entry in order through h and empties the
// queue. A failing command is skipped and reported.
func (q *Queue) Flush(s *scene.Scene, h *History) FlushResult {
	var res FlushResult
	for _, e := range q.pending {
		switch e.op {
		case opUndo:
			desc := h.UndoDescription()
			if h.Undo(s) {
				res.Applied++
				res.Last = "Undo: " + desc
			}
		case opRedo:
			desc := h.RedoDescription()
			if h.Redo(s) {
				res.Applied++
				res.Last = "Redo: " + desc
			}
		default:
			if err := h.Do(s, e.cmd); err != nil {
				res.Errors = append(res.Errors, fmt.Errorf("%s: %w", e.cmd.Description(), err))
				continue
			}
			res.Applied++
			res.Last = e.cmd.Description()
		}
	}
	q.pending = q.pending[:0]
	return res
}
