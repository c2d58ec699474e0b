package editor

import (
	"github.com/go-gl/mathgl/mgl32"

	"scene-viewer/core"
	"scene-viewer/scene"
)

// InputSource is the part of the window the input manager polls.
type InputSource interface {
	IsKeyPressed(key int) bool
	IsMouseButtonPressed(button int) bool
	GetCursorPos() (float64, float64)
	AddScrollListener(cb core.ScrollCallback)
}

// Capture reports which devices the debug panel currently owns.
type Capture struct {
	Mouse    bool
	Keyboard bool
}

var polledKeys = []int{core.KeyW, core.KeyA, core.KeyS, core.KeyD, core.KeyZ, core.KeyEscape}

// InputManager tracks mouse and keyboard state for the editor
type InputManager struct {
	// Mouse state
	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	lastMouseX, lastMouseY   float64
	ScrollDelta              float64

	mouseButtons [3]bool

	keys     map[int]bool
	keysPrev map[int]bool

	// Modifiers
	ShiftDown bool
	CtrlDown  bool

	source     InputSource
	firstFrame bool
}

// NewInputManager creates a new input manager listening to scroll events
func NewInputManager(source InputSource) *InputManager {
	im := &InputManager{
		keys:       make(map[int]bool, len(polledKeys)),
		keysPrev:   make(map[int]bool, len(polledKeys)),
		source:     source,
		firstFrame: true,
	}

	source.AddScrollListener(func(xoff, yoff float64) {
		im.ScrollDelta += yoff
	})

	return im
}

// Update should be called once per frame to compute deltas and poll state
func (im *InputManager) Update() {
	x, y := im.source.GetCursorPos()
	if im.firstFrame {
		im.lastMouseX = x
		im.lastMouseY = y
		im.firstFrame = false
	}
	im.MouseDeltaX = x - im.lastMouseX
	im.MouseDeltaY = y - im.lastMouseY
	im.lastMouseX = x
	im.lastMouseY = y
	im.MouseX = x
	im.MouseY = y

	for k, v := range im.keys {
		im.keysPrev[k] = v
	}

	im.mouseButtons[core.MouseLeft] = im.source.IsMouseButtonPressed(core.MouseLeft)
	im.mouseButtons[core.MouseRight] = im.source.IsMouseButtonPressed(core.MouseRight)
	im.mouseButtons[core.MouseMiddle] = im.source.IsMouseButtonPressed(core.MouseMiddle)

	im.ShiftDown = im.source.IsKeyPressed(core.KeyLeftShift) || im.source.IsKeyPressed(core.KeyRightShift)
	im.CtrlDown = im.source.IsKeyPressed(core.KeyLeftControl) || im.source.IsKeyPressed(core.KeyRightControl)

	for _, k := range polledKeys {
		im.keys[k] = im.source.IsKeyPressed(k)
	}
}

// EndFrame clears per-frame state
func (im *InputManager) EndFrame() {
	im.ScrollDelta = 0
}

func (im *InputManager) IsMouseDown(button int) bool {
	if button < 0 || button >= len(im.mouseButtons) {
		return false
	}
	return im.mouseButtons[button]
}

func (im *InputManager) IsKeyDown(key int) bool {
	return im.keys[key]
}

func (im *InputManager) IsKeyPressed(key int) bool {
	return im.keys[key] && !im.keysPrev[key]
}

// IsShortcut checks for a Ctrl+key press
func (im *InputManager) IsShortcut(key int) bool {
	return im.CtrlDown && im.IsKeyPressed(key)
}

// IsShiftShortcut checks for Ctrl+Shift+key press
func (im *InputManager) IsShiftShortcut(key int) bool {
	return im.CtrlDown && im.ShiftDown && im.IsKeyPressed(key)
}

// CameraState converts the polled state into camera input. Devices owned
// by the panel contribute nothing. Movement keys are ignored while Ctrl is
// held so Ctrl+Z never moves the camera.
func (im *InputManager) CameraState(c Capture) scene.InputState {
	var in scene.InputState
	if !c.Keyboard && !im.CtrlDown {
		in.Forward = im.IsKeyDown(core.KeyW)
		in.Back = im.IsKeyDown(core.KeyS)
		in.Left = im.IsKeyDown(core.KeyA)
		in.Right = im.IsKeyDown(core.KeyD)
	}
	if !c.Mouse {
		in.Scroll = im.ScrollDelta
		in.Rotate = im.IsMouseDown(core.MouseRight)
		in.MouseDelta = mgl32.Vec2{float32(im.MouseDeltaX), float32(im.MouseDeltaY)}
	}
	return in
}
