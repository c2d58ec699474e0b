package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var testTextureNames = []string{"Wood", "Metal", "Concrete", "Grass", "Stone"}

func TestDrawList(t *testing.T) {
	s := NewScene(testTextureNames)
	calls := s.DrawList(0, 4.0/3.0)
	if len(calls) != ObjectCount {
		t.Fatalf("expected %d draw calls, got %d", ObjectCount, len(calls))
	}

	proj := Projection(45, 4.0/3.0, 0.1, 100)
	for i, c := range calls {
		if c.Index != i {
			t.Errorf("call %d: index %d", i, c.Index)
		}
		want := MVP(proj, s.Camera.ViewMatrix(), s.Objects[i].LocalMatrix())
		if !c.Transform.ApproxEqualThreshold(want, tolerance) {
			t.Errorf("call %d: unexpected transform", i)
		}
	}
	if calls[0].Shading.Mode != ShadeBlend || calls[3].Shading.Mode != ShadeSingle {
		t.Errorf("unexpected starting modes: %v %v", calls[0].Shading.Mode, calls[3].Shading.Mode)
	}
}

func TestDrawListRereadsDescriptors(t *testing.T) {
	s := NewScene(testTextureNames)
	_ = s.DrawList(1, 1)

	s.Objects[0].UseTexture = false
	s.Objects[5].Position = mgl32.Vec3{}

	calls := s.DrawList(1, 1)
	if calls[0].Shading.Mode != ShadeFlat {
		t.Errorf("expected flat after disabling texture, got %v", calls[0].Shading.Mode)
	}
	want := MVP(s.Camera.ProjectionMatrix(1), s.Camera.ViewMatrix(), ModelMatrix(s.Objects[5], SpinMatrix(1, s.SpinRate)))
	if !calls[5].Transform.ApproxEqualThreshold(want, tolerance) {
		t.Error("expected transform to follow the moved descriptor")
	}
}

func TestDrawListAspectFallback(t *testing.T) {
	s := NewScene(testTextureNames)
	got := s.DrawList(0, 0)[0].Transform
	want := s.DrawList(0, DefaultAspect)[0].Transform
	if !got.ApproxEqualThreshold(want, tolerance) {
		t.Error("non-positive aspect should fall back to DefaultAspect")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewScene(testTextureNames)
	snap := s.Snapshot()
	snap[0].Texture = 4
	if s.Objects[0].Texture == 4 {
		t.Error("mutating the snapshot must not change the scene")
	}
}

func TestObjectAndTextureLookups(t *testing.T) {
	s := NewScene(testTextureNames)
	if _, err := s.Object(ObjectCount); err == nil {
		t.Error("expected out of range error")
	}
	d, err := s.Object(2)
	if err != nil || d != &s.Objects[2] {
		t.Errorf("Object(2): expected pointer into the table, got %p (%v)", d, err)
	}
	if s.TextureName(3) != "Grass" || s.TextureName(9) != "?" {
		t.Errorf("unexpected texture names %q %q", s.TextureName(3), s.TextureName(9))
	}
	if s.ValidTexture(-1) || !s.ValidTexture(0) {
		t.Error("ValidTexture bounds are wrong")
	}
}

func BenchmarkDrawList(b *testing.B) {
	s := NewScene(testTextureNames)
	for i := 0; i < b.N; i++ {
		_ = s.DrawList(float64(i)*0.016, 16.0/9.0)
	}
}
