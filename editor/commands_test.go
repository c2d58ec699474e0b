package editor

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"scene-viewer/scene"
)

var testTextureNames = []string{"Wood", "Metal", "Concrete", "Grass", "Stone"}

func newTestScene() *scene.Scene {
	return scene.NewScene(testTextureNames)
}

func TestCommandsExecuteAndUndo(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Command
		changed func(s *scene.Scene) bool
	}{
		{"use texture", &UseTextureCommand{Object: 4, Value: false},
			func(s *scene.Scene) bool { return !s.Objects[4].UseTexture }},
		{"texture", &TextureCommand{Object: 7, Texture: 4},
			func(s *scene.Scene) bool { return s.Objects[7].Texture == 4 }},
		{"blend enabled", &BlendEnabledCommand{Object: 1, Value: false},
			func(s *scene.Scene) bool { return !s.Objects[1].Blend.Enabled }},
		{"blend texture", &BlendTextureCommand{Object: 2, Slot: 1, Texture: 0},
			func(s *scene.Scene) bool { return s.Objects[2].Blend.Textures[1] == 0 }},
		{"blend weight", &BlendWeightCommand{Object: 0, Slot: 2, Weight: 0.25},
			func(s *scene.Scene) bool { return s.Objects[0].Blend.Weights[2] == 0.25 }},
		{"preset", &PresetCommand{Object: 0, Preset: scene.PresetPrimaryDominant},
			func(s *scene.Scene) bool { return s.Objects[0].Blend.Weights == scene.PresetPrimaryDominant.Weights }},
		{"sensitivity", &SensitivityCommand{Value: 1.5},
			func(s *scene.Scene) bool { return s.Camera.Sensitivity == 1.5 }},
		{"blend mode", &BlendModeCommand{Mode: scene.BlendCorrected},
			func(s *scene.Scene) bool { return s.BlendMode == scene.BlendCorrected }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScene()
			before := s.Snapshot()
			beforeCam := *s.Camera
			beforeMode := s.BlendMode

			if err := tt.cmd.Execute(s); err != nil {
				t.Fatalf("execute: %v", err)
			}
			if !tt.changed(s) {
				t.Fatalf("execute did not apply %q", tt.cmd.Description())
			}

			tt.cmd.Undo(s)
			if tt.changed(s) {
				t.Errorf("undo did not revert %q", tt.cmd.Description())
			}
			after := s.Snapshot()
			for i := range before {
				if before[i] != after[i] {
					t.Errorf("object %d differs after undo", i)
				}
			}
			if *s.Camera != beforeCam || s.BlendMode != beforeMode {
				t.Error("camera or blend mode differs after undo")
			}
		})
	}
}

func TestCommandsRejectInvalid(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
	}{
		{"object out of range", &UseTextureCommand{Object: scene.ObjectCount}},
		{"negative object", &TextureCommand{Object: -1}},
		{"texture out of range", &TextureCommand{Object: 0, Texture: 5}},
		{"blend on non-blendable object", &BlendEnabledCommand{Object: scene.BlendableObjects, Value: true}},
		{"slot out of range", &BlendTextureCommand{Object: 0, Slot: 3}},
		{"blend texture out of range", &BlendTextureCommand{Object: 0, Slot: 0, Texture: -1}},
		{"weight above one", &BlendWeightCommand{Object: 0, Slot: 0, Weight: 1.5}},
		{"negative weight", &BlendWeightCommand{Object: 0, Slot: 0, Weight: -0.1}},
		{"preset on non-blendable object", &PresetCommand{Object: 5, Preset: scene.PresetEqual}},
		{"sensitivity too low", &SensitivityCommand{Value: 0.01}},
		{"sensitivity too high", &SensitivityCommand{Value: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScene()
			before := s.Snapshot()
			if err := tt.cmd.Execute(s); err == nil {
				t.Fatal("expected an error")
			}
			after := s.Snapshot()
			for i := range before {
				if before[i] != after[i] {
					t.Errorf("object %d changed by a rejected command", i)
				}
			}
		})
	}
}

func TestResetViewCommand(t *testing.T) {
	s := newTestScene()
	s.Camera.Yaw, s.Camera.Pitch = 0.5, -1
	s.Camera.Pan = mgl32.Vec3{1, 2, 3}

	cmd := &ResetViewCommand{}
	if err := cmd.Execute(s); err != nil {
		t.Fatal(err)
	}
	if s.Camera.Yaw != 0 || s.Camera.Pitch != 0 || s.Camera.Pan != (mgl32.Vec3{}) {
		t.Errorf("camera not reset: %+v", *s.Camera)
	}

	cmd.Undo(s)
	if s.Camera.Yaw != 0.5 || s.Camera.Pitch != -1 || s.Camera.Pan != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("undo did not restore the pose: %+v", *s.Camera)
	}
}

func TestHistoryUndoRedo(t *testing.T) {
	s := newTestScene()
	h := NewHistory(10)

	if err := h.Do(s, &TextureCommand{Object: 3, Texture: 0}); err != nil {
		t.Fatal(err)
	}
	if err := h.Do(s, &UseTextureCommand{Object: 3, Value: false}); err != nil {
		t.Fatal(err)
	}
	if !h.CanUndo() || h.CanRedo() {
		t.Fatal("unexpected stack state after Do")
	}

	if !h.Undo(s) || !s.Objects[3].UseTexture {
		t.Fatal("first undo should restore UseTexture")
	}
	if !h.Undo(s) || s.Objects[3].Texture != 3 {
		t.Fatalf("second undo should restore texture 3, got %d", s.Objects[3].Texture)
	}
	if h.Undo(s) {
		t.Error("undo on empty history should report false")
	}

	if !h.Redo(s) || s.Objects[3].Texture != 0 {
		t.Error("redo should reapply the texture change")
	}
	if h.RedoDescription() == "" {
		t.Error("one redo step should remain")
	}

	// A new action drops the redo stack.
	if err := h.Do(s, &SensitivityCommand{Value: 1}); err != nil {
		t.Fatal(err)
	}
	if h.CanRedo() {
		t.Error("Do should clear the redo stack")
	}
}

func TestHistoryRejectedCommandIsNotRecorded(t *testing.T) {
	s := newTestScene()
	h := NewHistory(10)
	if err := h.Do(s, &TextureCommand{Object: 0, Texture: 99}); err == nil {
		t.Fatal("expected an error")
	}
	if h.CanUndo() {
		t.Error("rejected command should not be recorded")
	}
}

func TestHistoryMaxDepth(t *testing.T) {
	s := newTestScene()
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		if err := h.Do(s, &TextureCommand{Object: i, Texture: 0}); err != nil {
			t.Fatal(err)
		}
	}
	if h.Len() != 3 {
		t.Fatalf("expected depth 3, got %d", h.Len())
	}
	for h.Undo(s) {
	}
	// The two oldest changes fell off and stay applied.
	if s.Objects[1].Texture != 0 || s.Objects[2].Texture != 2 {
		t.Errorf("unexpected textures after undoing all: %d %d", s.Objects[1].Texture, s.Objects[2].Texture)
	}
}

func TestHistoryMergesSliderDrags(t *testing.T) {
	s := newTestScene()
	h := NewHistory(10)
	for _, w := range []float32{0.1, 0.2, 0.3} {
		if err := h.Do(s, &BlendWeightCommand{Object: 0, Slot: 1, Weight: w, Drag: 1}); err != nil {
			t.Fatal(err)
		}
	}
	if h.Len() != 1 {
		t.Fatalf("slider drag should be one undo step, got %d", h.Len())
	}
	if s.Objects[0].Blend.Weights[1] != 0.3 {
		t.Errorf("expected weight 0.3, got %v", s.Objects[0].Blend.Weights[1])
	}
	h.Undo(s)
	if s.Objects[0].Blend.Weights[1] != 0 {
		t.Errorf("undo should restore the pre-drag weight, got %v", s.Objects[0].Blend.Weights[1])
	}

	// A different slot starts a new step.
	_ = h.Do(s, &BlendWeightCommand{Object: 0, Slot: 1, Weight: 0.5, Drag: 2})
	_ = h.Do(s, &BlendWeightCommand{Object: 0, Slot: 2, Weight: 0.5, Drag: 2})
	if h.Len() != 2 {
		t.Errorf("expected 2 steps, got %d", h.Len())
	}
}

func TestHistorySeparateDragsStaySeparate(t *testing.T) {
	s := newTestScene()
	h := NewHistory(10)

	// Two drags of the same slider with a release in between.
	_ = h.Do(s, &BlendWeightCommand{Object: 0, Slot: 1, Weight: 0.2, Drag: 1})
	_ = h.Do(s, &BlendWeightCommand{Object: 0, Slot: 1, Weight: 0.4, Drag: 1})
	_ = h.Do(s, &BlendWeightCommand{Object: 0, Slot: 1, Weight: 0.8, Drag: 2})
	if h.Len() != 2 {
		t.Fatalf("expected one step per drag, got %d", h.Len())
	}
	h.Undo(s)
	if got := s.Objects[0].Blend.Weights[1]; got != 0.4 {
		t.Errorf("undo should land on the first drag's end value 0.4, got %v", got)
	}

	_ = h.Do(s, &SensitivityCommand{Value: 1, Drag: 3})
	_ = h.Do(s, &SensitivityCommand{Value: 1.5, Drag: 4})
	if h.Len() != 3 {
		t.Errorf("sensitivity drags should not merge across releases, got %d steps", h.Len())
	}

	// Edits without a drag id never merge.
	_ = h.Do(s, &SensitivityCommand{Value: 0.7})
	_ = h.Do(s, &SensitivityCommand{Value: 0.8})
	if h.Len() != 5 {
		t.Errorf("expected 5 steps, got %d", h.Len())
	}
}

func TestDragTracker(t *testing.T) {
	var d dragTracker

	first := d.update("mix", true)
	if d.update("mix", true) != first {
		t.Error("an active slider keeps its drag id")
	}
	if d.update("mix", false) != first {
		t.Error("the release frame still belongs to the drag")
	}
	second := d.update("mix", true)
	if second == first {
		t.Error("a new press starts a new drag")
	}
	if other := d.update("sens", true); other == second {
		t.Error("different sliders get different ids")
	}
	if len(d.active) != 2 {
		t.Errorf("expected 2 active sliders, got %d", len(d.active))
	}
	d.update("mix", false)
	d.update("sens", false)
	if len(d.active) != 0 {
		t.Errorf("released sliders should be forgotten, %d left", len(d.active))
	}
}

func TestQueueDefersUntilFlush(t *testing.T) {
	s := newTestScene()
	h := NewHistory(10)
	var q Queue

	q.Push(&PresetCommand{Object: 0, Preset: scene.PresetEqual})
	q.Push(&TextureCommand{Object: 0, Texture: 42})
	q.Push(&BlendModeCommand{Mode: scene.BlendCorrected})

	if s.Objects[0].Blend.Weights != [scene.BlendSlots]float32{1, 0, 0} || s.BlendMode != scene.BlendFaithful {
		t.Fatal("queued commands must not touch the scene before Flush")
	}

	res := q.Flush(s, h)
	if res.Applied != 2 || len(res.Errors) != 1 {
		t.Fatalf("expected 2 applied and 1 error, got %d and %v", res.Applied, res.Errors)
	}
	if s.Objects[0].Blend.Weights != scene.PresetEqual.Weights || s.BlendMode != scene.BlendCorrected {
		t.Error("flush did not apply the valid commands")
	}
	if q.Len() != 0 {
		t.Error("flush should empty the queue")
	}
	if res.Last != (&BlendModeCommand{Mode: scene.BlendCorrected}).Description() {
		t.Errorf("unexpected last description %q", res.Last)
	}
}

func TestQueueUndoRedoOrder(t *testing.T) {
	s := newTestScene()
	h := NewHistory(10)
	var q Queue

	q.Push(&UseTextureCommand{Object: 6, Value: false})
	q.PushUndo()
	q.Flush(s, h)
	if !s.Objects[6].UseTexture {
		t.Fatal("undo queued after the command should revert it")
	}

	q.PushRedo()
	q.Flush(s, h)
	if s.Objects[6].UseTexture {
		t.Error("redo should reapply the command")
	}
}

func TestFlushErrorWrapsCause(t *testing.T) {
	s := newTestScene()
	var q Queue
	q.Push(&SensitivityCommand{Value: 10})
	res := q.Flush(s, NewHistory(1))
	if len(res.Errors) != 1 {
		t.Fatalf("expected one error, got %v", res.Errors)
	}
	if errors.Unwrap(res.Errors[0]) == nil {
		t.Error("flush error should wrap the command error")
	}
}
