// Package imguiback connects Dear ImGui to the GLFW window and to OpenGL.
package imguiback

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"

	"scene-viewer/core"
)

var mouseButtons = [3]glfw.MouseButton{glfw.MouseButtonLeft, glfw.MouseButtonRight, glfw.MouseButtonMiddle}

// GLFW feeds window input into the ImGui IO once per frame.
type GLFW struct {
	io     imgui.IO
	window *glfw.Window

	time             float64
	mouseJustPressed [3]bool
}

// NewGLFW installs the input callbacks on an existing window. Scroll
// events arrive through the window's listener list so the camera keeps
// receiving them too.
func NewGLFW(io imgui.IO, window *core.Window) *GLFW {
	p := &GLFW{io: io, window: window.Handle}
	p.setKeyMapping()

	p.window.SetMouseButtonCallback(p.mouseButtonChange)
	p.window.SetKeyCallback(p.keyChange)
	p.window.SetCharCallback(p.charChange)
	window.AddScrollListener(func(xoff, yoff float64) {
		p.io.AddMouseWheelDelta(float32(xoff), float32(yoff))
	})
	return p
}

// Dispose removes the callbacks installed by NewGLFW.
func (p *GLFW) Dispose() {
	p.window.SetMouseButtonCallback(nil)
	p.window.SetKeyCallback(nil)
	p.window.SetCharCallback(nil)
}

// DisplaySize returns the window size in screen coordinates.
func (p *GLFW) DisplaySize() [2]float32 {
	w, h := p.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

// FramebufferSize returns the window size in pixels.
func (p *GLFW) FramebufferSize() [2]float32 {
	w, h := p.window.GetFramebufferSize()
	return [2]float32{float32(w), float32(h)}
}

// NewFrame updates display size, time step and mouse state. Call before
// imgui.NewFrame.
func (p *GLFW) NewFrame() {
	size := p.DisplaySize()
	p.io.SetDisplaySize(imgui.Vec2{X: size[0], Y: size[1]})

	now := glfw.GetTime()
	if p.time > 0 && now > p.time {
		p.io.SetDeltaTime(float32(now - p.time))
	}
	p.time = now

	if p.window.GetAttrib(glfw.Focused) != 0 {
		x, y := p.window.GetCursorPos()
		p.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	} else {
		p.io.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
	}

	// A click shorter than one frame still registers.
	for i, b := range mouseButtons {
		down := p.mouseJustPressed[i] || p.window.GetMouseButton(b) == glfw.Press
		p.io.SetMouseButtonDown(i, down)
		p.mouseJustPressed[i] = false
	}
}

func (p *GLFW) setKeyMapping() {
	p.io.KeyMap(imgui.KeyTab, int(glfw.KeyTab))
	p.io.KeyMap(imgui.KeyLeftArrow, int(glfw.KeyLeft))
	p.io.KeyMap(imgui.KeyRightArrow, int(glfw.KeyRight))
	p.io.KeyMap(imgui.KeyUpArrow, int(glfw.KeyUp))
	p.io.KeyMap(imgui.KeyDownArrow, int(glfw.KeyDown))
	p.io.KeyMap(imgui.KeyPageUp, int(glfw.KeyPageUp))
	p.io.KeyMap(imgui.KeyPageDown, int(glfw.KeyPageDown))
	p.io.KeyMap(imgui.KeyHome, int(glfw.KeyHome))
	p.io.KeyMap(imgui.KeyEnd, int(glfw.KeyEnd))
	p.io.KeyMap(imgui.KeyInsert, int(glfw.KeyInsert))
	p.io.KeyMap(imgui.KeyDelete, int(glfw.KeyDelete))
	p.io.KeyMap(imgui.KeyBackspace, int(glfw.KeyBackspace))
	p.io.KeyMap(imgui.KeySpace, int(glfw.KeySpace))
	p.io.KeyMap(imgui.KeyEnter, int(glfw.KeyEnter))
	p.io.KeyMap(imgui.KeyEscape, int(glfw.KeyEscape))
	p.io.KeyMap(imgui.KeyA, int(glfw.KeyA))
	p.io.KeyMap(imgui.KeyC, int(glfw.KeyC))
	p.io.KeyMap(imgui.KeyV, int(glfw.KeyV))
	p.io.KeyMap(imgui.KeyX, int(glfw.KeyX))
	p.io.KeyMap(imgui.KeyY, int(glfw.KeyY))
	p.io.KeyMap(imgui.KeyZ, int(glfw.KeyZ))
}

func (p *GLFW) mouseButtonChange(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	for i, b := range mouseButtons {
		if b == button {
			p.mouseJustPressed[i] = true
		}
	}
}

func (p *GLFW) keyChange(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		p.io.KeyPress(int(key))
	case glfw.Release:
		p.io.KeyRelease(int(key))
	}

	p.io.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
	p.io.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
	p.io.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
	p.io.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))
}

func (p *GLFW) charChange(_ *glfw.Window, char rune) {
	p.io.AddInputCharacters(string(char))
}
