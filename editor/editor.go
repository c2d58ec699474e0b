package editor

import (
	"go.uber.org/zap"

	"scene-viewer/core"
	"scene-viewer/internal/logger"
	"scene-viewer/scene"
)

// Editor owns the interactive state around the scene: input, the pending
// change queue and the undo history.
type Editor struct {
	History *History
	Queue   *Queue
	Input   *InputManager
	Scene   *scene.Scene

	// LastMove is the movement channel applied by the latest Update.
	LastMove scene.MoveChannel

	StatusText string
}

// NewEditor initializes a new editor instance
func NewEditor(source InputSource, s *scene.Scene, historySize int) *Editor {
	return &Editor{
		History:    NewHistory(historySize),
		Queue:      &Queue{},
		Input:      NewInputManager(source),
		Scene:      s,
		StatusText: "Ready",
	}
}

// Update processes one frame of input: shortcuts are queued, the camera
// moves immediately.
func (e *Editor) Update(dt float32, c Capture) {
	e.Input.Update()

	if !c.Keyboard {
		e.handleShortcuts()
	}
	e.LastMove = e.Scene.Camera.Update(e.Input.CameraState(c), dt)

	e.Input.EndFrame()
}

func (e *Editor) handleShortcuts() {
	// Redo: Ctrl+Shift+Z
	if e.Input.IsShiftShortcut(core.KeyZ) {
		e.Queue.PushRedo()
		return
	}
	// Undo: Ctrl+Z
	if e.Input.IsShortcut(core.KeyZ) {
		e.Queue.PushUndo()
	}
}

// Flush applies everything queued since the last call. It runs once per
// frame after the panel has been built.
func (e *Editor) Flush() {
	res := e.Queue.Flush(e.Scene, e.History)
	for _, err := range res.Errors {
		logger.Log.Warn("panel change rejected", zap.Error(err))
	}
	if res.Applied > 0 {
		e.StatusText = res.Last
		logger.Log.Debug("applied panel changes",
			zap.Int("count", res.Applied),
			zap.String("last", res.Last),
			zap.Int("undo_depth", e.History.Len()))
	}
}
