package editor

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"scene-viewer/scene"
)

// Command is one change requested by the debug panel. Execute records
// whatever it needs to undo itself.
type Command interface {
	Execute(s *scene.Scene) error
	Undo(s *scene.Scene)
	Description() string
}

// merger is implemented by commands produced continuously by a widget
// (sliders). History folds the edits of one drag into one undo step.
type merger interface {
	Merge(next Command) bool
}

func blendObject(s *scene.Scene, i int) (*scene.Descriptor, error) {
	if i >= scene.BlendableObjects {
		return nil, fmt.Errorf("object %d has no blend controls", i)
	}
	return s.Object(i)
}

func checkTexture(s *scene.Scene, tex int) error {
	if !s.ValidTexture(tex) {
		return fmt.Errorf("texture index %d out of range [0, %d)", tex, len(s.TextureNames))
	}
	return nil
}

func checkSlot(slot int) error {
	if slot < 0 || slot >= scene.BlendSlots {
		return fmt.Errorf("blend slot %d out of range [0, %d)", slot, scene.BlendSlots)
	}
	return nil
}

func checkWeight(w float32) error {
	if math.IsNaN(float64(w)) || w < 0 || w > 1 {
		return fmt.Errorf("blend weight %v outside [0, 1]", w)
	}
	return nil
}

// --- Texture assignment ---

// UseTextureCommand toggles texturing for one object
type UseTextureCommand struct {
	Object int
	Value  bool
	old    bool
}

func (c *UseTextureCommand) Execute(s *scene.Scene) error {
	d, err := s.Object(c.Object)
	if err != nil {
		return err
	}
	c.old, d.UseTexture = d.UseTexture, c.Value
	return nil
}
func (c *UseTextureCommand) Undo(s *scene.Scene) { s.Objects[c.Object].UseTexture = c.old }
func (c *UseTextureCommand) Description() string {
	return fmt.Sprintf("Use texture on object %d: %v", c.Object, c.Value)
}

// TextureCommand picks the single texture of an object
type TextureCommand struct {
	Object  int
	Texture int
	old     int
}

func (c *TextureCommand) Execute(s *scene.Scene) error {
	d, err := s.Object(c.Object)
	if err != nil {
		return err
	}
	if err := checkTexture(s, c.Texture); err != nil {
		return err
	}
	c.old, d.Texture = d.Texture, c.Texture
	return nil
}
func (c *TextureCommand) Undo(s *scene.Scene) { s.Objects[c.Object].Texture = c.old }
func (c *TextureCommand) Description() string {
	return fmt.Sprintf("Texture of object %d -> %d", c.Object, c.Texture)
}

// --- Blend configuration ---

// BlendEnabledCommand toggles multi-texture mode
type BlendEnabledCommand struct {
	Object int
	Value  bool
	old    bool
}

func (c *BlendEnabledCommand) Execute(s *scene.Scene) error {
	d, err := blendObject(s, c.Object)
	if err != nil {
		return err
	}
	c.old, d.Blend.Enabled = d.Blend.Enabled, c.Value
	return nil
}
func (c *BlendEnabledCommand) Undo(s *scene.Scene) { s.Objects[c.Object].Blend.Enabled = c.old }
func (c *BlendEnabledCommand) Description() string {
	return fmt.Sprintf("Multi-texture on object %d: %v", c.Object, c.Value)
}

// BlendTextureCommand assigns the texture of one blend slot
type BlendTextureCommand struct {
	Object  int
	Slot    int
	Texture int
	old     int
}

func (c *BlendTextureCommand) Execute(s *scene.Scene) error {
	d, err := blendObject(s, c.Object)
	if err != nil {
		return err
	}
	if err := checkSlot(c.Slot); err != nil {
		return err
	}
	if err := checkTexture(s, c.Texture); err != nil {
		return err
	}
	c.old, d.Blend.Textures[c.Slot] = d.Blend.Textures[c.Slot], c.Texture
	return nil
}
func (c *BlendTextureCommand) Undo(s *scene.Scene) { s.Objects[c.Object].Blend.Textures[c.Slot] = c.old }
func (c *BlendTextureCommand) Description() string {
	return fmt.Sprintf("Blend slot %d of object %d -> texture %d", c.Slot, c.Object, c.Texture)
}

// BlendWeightCommand sets the mix weight of one blend slot
type BlendWeightCommand struct {
	Object int
	Slot   int
	Weight float32
	// Drag identifies the slider interaction; 0 never merges.
	Drag int
	old  float32
}

func (c *BlendWeightCommand) Execute(s *scene.Scene) error {
	d, err := blendObject(s, c.Object)
	if err != nil {
		return err
	}
	if err := checkSlot(c.Slot); err != nil {
		return err
	}
	if err := checkWeight(c.Weight); err != nil {
		return err
	}
	c.old, d.Blend.Weights[c.Slot] = d.Blend.Weights[c.Slot], c.Weight
	return nil
}
func (c *BlendWeightCommand) Undo(s *scene.Scene) { s.Objects[c.Object].Blend.Weights[c.Slot] = c.old }
func (c *BlendWeightCommand) Description() string {
	return fmt.Sprintf("Blend weight %d of object %d -> %.2f", c.Slot, c.Object, c.Weight)
}

// Merge keeps the first old value so a whole slider drag undoes at once.
func (c *BlendWeightCommand) Merge(next Command) bool {
	n, ok := next.(*BlendWeightCommand)
	if !ok || c.Drag == 0 || n.Drag != c.Drag || n.Object != c.Object || n.Slot != c.Slot {
		return false
	}
	c.Weight = n.Weight
	return true
}

// PresetCommand replaces all three weights with a named preset
type PresetCommand struct {
	Object int
	Preset scene.Preset
	old    [scene.BlendSlots]float32
}

func (c *PresetCommand) Execute(s *scene.Scene) error {
	d, err := blendObject(s, c.Object)
	if err != nil {
		return err
	}
	c.old, d.Blend.Weights = d.Blend.Weights, c.Preset.Weights
	return nil
}
func (c *PresetCommand) Undo(s *scene.Scene) { s.Objects[c.Object].Blend.Weights = c.old }
func (c *PresetCommand) Description() string {
	return fmt.Sprintf("Preset %s on object %d", c.Preset.Name, c.Object)
}

// --- Camera and global settings ---

// ResetViewCommand zeroes the camera rotation and pan
type ResetViewCommand struct {
	oldYaw, oldPitch float32
	oldPan           mgl32.Vec3
}

func (c *ResetViewCommand) Execute(s *scene.Scene) error {
	cam := s.Camera
	c.oldYaw, c.oldPitch, c.oldPan = cam.Yaw, cam.Pitch, cam.Pan
	cam.Reset()
	return nil
}
func (c *ResetViewCommand) Undo(s *scene.Scene) {
	s.Camera.Yaw, s.Camera.Pitch, s.Camera.Pan = c.oldYaw, c.oldPitch, c.oldPan
}
func (c *ResetViewCommand) Description() string { return "Reset view" }

// Sensitivity limits offered by the panel slider.
const (
	MinSensitivity = 0.1
	MaxSensitivity = 2.0
)

// SensitivityCommand sets the mouse rotation sensitivity
type SensitivityCommand struct {
	Value float32
	// Drag identifies the slider interaction; 0 never merges.
	Drag int
	old  float32
}

func (c *SensitivityCommand) Execute(s *scene.Scene) error {
	if math.IsNaN(float64(c.Value)) || c.Value < MinSensitivity || c.Value > MaxSensitivity {
		return fmt.Errorf("sensitivity %v outside [%v, %v]", c.Value, MinSensitivity, MaxSensitivity)
	}
	c.old, s.Camera.Sensitivity = s.Camera.Sensitivity, c.Value
	return nil
}
func (c *SensitivityCommand) Undo(s *scene.Scene) { s.Camera.Sensitivity = c.old }
func (c *SensitivityCommand) Description() string {
	return fmt.Sprintf("Mouse sensitivity -> %.2f", c.Value)
}

func (c *SensitivityCommand) Merge(next Command) bool {
	n, ok := next.(*SensitivityCommand)
	if !ok || c.Drag == 0 || n.Drag != c.Drag {
		return false
	}
	c.Value = n.Value
	return true
}

// BlendModeCommand switches the weight normalisation for every object
type BlendModeCommand struct {
	Mode scene.BlendMode
	old  scene.BlendMode
}

func (c *BlendModeCommand) Execute(s *scene.Scene) error {
	c.old, s.BlendMode = s.BlendMode, c.Mode
	return nil
}
func (c *BlendModeCommand) Undo(s *scene.Scene)  { s.BlendMode = c.old }
func (c *BlendModeCommand) Description() string { return "Blend mode -> " + c.Mode.String() }
