package editor

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"

	"scene-viewer/scene"
)

var slotLabels = [scene.BlendSlots]string{"Primary", "Secondary", "Tertiary"}

var presetLabels = map[string]string{
	scene.PresetEqual.Name:           "Blend Equal",
	scene.PresetPrimaryDominant.Name: "Primary Dominant",
}

var blendModes = []scene.BlendMode{scene.BlendFaithful, scene.BlendCorrected}

// Panel is the "Settings" debug window. It only reads the editor state;
// every edit is pushed onto the editor queue.
type Panel struct {
	Title    string
	Position imgui.Vec2

	drags dragTracker
}

// NewPanel creates the settings panel at its default position
func NewPanel() *Panel {
	return &Panel{Title: "Settings", Position: imgui.Vec2{X: 10, Y: 10}}
}

// dragTracker hands out one id per slider interaction. A slider keeps its
// id for as long as it stays active; releasing it ends the drag.
type dragTracker struct {
	next   int
	active map[string]int
}

// update is called every frame after the slider key was drawn and returns
// the drag id its edits belong to.
func (d *dragTracker) update(key string, active bool) int {
	if d.active == nil {
		d.active = make(map[string]int)
	}
	id, ok := d.active[key]
	if !ok {
		d.next++
		id = d.next
	}
	if active {
		d.active[key] = id
	} else {
		delete(d.active, key)
	}
	return id
}

func (p *Panel) slider(key, label string, value *float32, lo, hi float32) (drag int, changed bool) {
	changed = imgui.SliderFloat(label, value, lo, hi)
	drag = p.drags.update(key, imgui.IsItemActive())
	return drag, changed
}

// Build emits the widgets for one frame. Must be called between
// imgui.NewFrame and imgui.Render.
func (p *Panel) Build(e *Editor) {
	imgui.SetNextWindowPosV(p.Position, imgui.ConditionFirstUseEver, imgui.Vec2{})
	if imgui.BeginV(p.Title, nil, imgui.WindowFlagsAlwaysAutoResize) {
		objects := e.Scene.Snapshot()

		p.buildCamera(e)
		imgui.Separator()
		imgui.Text("Texture Settings:")
		for i := range objects {
			p.buildObject(e, i, objects[i])
		}

		imgui.Separator()
		imgui.Text("Multitexture Settings:")
		p.buildBlendMode(e)
		for i := 0; i < scene.BlendableObjects && i < len(objects); i++ {
			p.buildBlend(e, i, objects[i])
		}

		imgui.Separator()
		p.buildHistory(e)

		imgui.Separator()
		imgui.Text("Camera Controls:")
		bulletText("WASD - Move camera")
		bulletText("Right Click - Rotate camera")
		bulletText("Mouse Wheel - Zoom in/out")
		bulletText("Ctrl+Z / Ctrl+Shift+Z - Undo/Redo")
	}
	imgui.End()
}

func (p *Panel) buildCamera(e *Editor) {
	if imgui.Button("Reset View") {
		e.Queue.Push(&ResetViewCommand{})
	}
	sens := e.Scene.Camera.Sensitivity
	if drag, ok := p.slider("sensitivity", "Mouse Sensitivity", &sens, MinSensitivity, MaxSensitivity); ok {
		e.Queue.Push(&SensitivityCommand{Value: sens, Drag: drag})
	}
}

func (p *Panel) buildObject(e *Editor, i int, d scene.Descriptor) {
	imgui.PushID(fmt.Sprintf("object%d", i))
	defer imgui.PopID()

	if !imgui.CollapsingHeader(fmt.Sprintf("%d: %s", i, d.Name)) {
		return
	}
	use := d.UseTexture
	if imgui.Checkbox("Use Texture", &use) {
		e.Queue.Push(&UseTextureCommand{Object: i, Value: use})
	}
	if d.UseTexture {
		if tex, ok := textureCombo(e.Scene, "Texture", d.Texture); ok {
			e.Queue.Push(&TextureCommand{Object: i, Texture: tex})
		}
	}
}

func (p *Panel) buildBlendMode(e *Editor) {
	if !imgui.BeginCombo("Blend Mode", e.Scene.BlendMode.String()) {
		return
	}
	for _, m := range blendModes {
		selected := m == e.Scene.BlendMode
		if imgui.SelectableV(m.String(), selected, 0, imgui.Vec2{}) && !selected {
			e.Queue.Push(&BlendModeCommand{Mode: m})
		}
		if selected {
			imgui.SetItemDefaultFocus()
		}
	}
	imgui.EndCombo()
}

func (p *Panel) buildBlend(e *Editor, i int, d scene.Descriptor) {
	imgui.PushID(fmt.Sprintf("blend%d", i))
	defer imgui.PopID()

	enabled := d.Blend.Enabled
	if imgui.Checkbox(d.Name, &enabled) {
		e.Queue.Push(&BlendEnabledCommand{Object: i, Value: enabled})
	}
	if !d.Blend.Enabled {
		return
	}

	for slot, label := range slotLabels {
		if tex, ok := textureCombo(e.Scene, label+" Texture", d.Blend.Textures[slot]); ok {
			e.Queue.Push(&BlendTextureCommand{Object: i, Slot: slot, Texture: tex})
		}
	}
	for slot, label := range slotLabels {
		w := d.Blend.Weights[slot]
		key := fmt.Sprintf("weight/%d/%d", i, slot)
		if drag, ok := p.slider(key, label+" Mix", &w, 0, 1); ok {
			e.Queue.Push(&BlendWeightCommand{Object: i, Slot: slot, Weight: w, Drag: drag})
		}
	}
	for n, preset := range scene.Presets {
		if n > 0 {
			imgui.SameLine()
		}
		if imgui.Button(presetLabels[preset.Name]) {
			e.Queue.Push(&PresetCommand{Object: i, Preset: preset})
		}
	}
}

func (p *Panel) buildHistory(e *Editor) {
	if imgui.Button("Undo") && e.History.CanUndo() {
		e.Queue.PushUndo()
	}
	imgui.SameLine()
	if imgui.Button("Redo") && e.History.CanRedo() {
		e.Queue.PushRedo()
	}
	imgui.Text(e.StatusText)
}

// textureCombo draws a texture picker and reports a changed selection.
func textureCombo(s *scene.Scene, label string, current int) (int, bool) {
	picked, changed := current, false
	if imgui.BeginCombo(label, s.TextureName(current)) {
		for t, name := range s.TextureNames {
			selected := t == current
			if imgui.SelectableV(name, selected, 0, imgui.Vec2{}) && !selected {
				picked, changed = t, true
			}
			if selected {
				imgui.SetItemDefaultFocus()
			}
		}
		imgui.EndCombo()
	}
	return picked, changed
}

func bulletText(text string) {
	imgui.Bullet()
	imgui.SameLine()
	imgui.Text(text)
}
