package main

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
	"go.uber.org/zap"

	"scene-viewer/config"
	"scene-viewer/core"
	"scene-viewer/editor"
	"scene-viewer/internal/imguiback"
	"scene-viewer/internal/logger"
	"scene-viewer/internal/opengl"
	"scene-viewer/scene"
)

// viewer owns every resource of the running program.
type viewer struct {
	cfg   config.Config
	clear core.Color

	window   *core.Window
	renderer *opengl.Renderer

	imguiCtx   *imgui.Context
	io         imgui.IO
	platform   *imguiback.GLFW
	uiRenderer *imguiback.OpenGL3

	editor *editor.Editor
	panel  *editor.Panel
	stats  frameStats
}

// buildScene creates the scene and applies the configured rates.
func buildScene(cfg config.Config) (*scene.Scene, error) {
	mode, err := scene.ParseBlendMode(cfg.BlendMode)
	if err != nil {
		return nil, err
	}

	s := scene.NewScene(cfg.TextureNames())
	cam := s.Camera
	cam.MoveSpeed = cfg.Camera.MoveSpeed
	cam.ZoomSpeed = cfg.Camera.ZoomSpeed
	cam.Sensitivity = cfg.Camera.MouseSensitivity
	cam.Distance = cfg.Camera.Distance
	cam.FOV = cfg.Camera.FOV
	cam.Near = cfg.Camera.Near
	cam.Far = cfg.Camera.Far

	s.SpinRate = cfg.SpinRate
	s.BlendMode = mode
	return s, nil
}

func newViewer(cfg config.Config) (v *viewer, err error) {
	v = &viewer{cfg: cfg, clear: core.ColorFromArray(cfg.ClearColor)}
	defer func() {
		if err != nil {
			v.Close()
			v = nil
		}
	}()

	s, err := buildScene(cfg)
	if err != nil {
		return v, fmt.Errorf("scene: %w", err)
	}

	v.window, err = core.NewWindow(core.WindowConfig{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		Resizable: true,
		VSync:     cfg.Window.VSync,
	})
	if err != nil {
		return v, fmt.Errorf("window: %w", err)
	}

	v.renderer, err = opengl.NewRenderer()
	if err != nil {
		return v, fmt.Errorf("renderer: %w", err)
	}

	textures, failures := scene.LoadTextureSet(cfg.TextureNames(), cfg.TexturePaths())
	for _, f := range failures {
		logger.Log.Error("failed to load texture",
			zap.Int("index", f.Index), zap.String("name", f.Name), zap.Error(f.Err))
	}
	v.renderer.SetTextures(textures)
	logger.Log.Info("textures loaded",
		zap.Int("requested", len(textures)), zap.Int("failed", len(failures)))

	v.imguiCtx = imgui.CreateContext(nil)
	v.io = imgui.CurrentIO()
	imgui.StyleColorsDark()

	v.platform = imguiback.NewGLFW(v.io, v.window)
	v.uiRenderer, err = imguiback.NewOpenGL3(v.io)
	if err != nil {
		return v, fmt.Errorf("ui renderer: %w", err)
	}

	v.editor = editor.NewEditor(v.window, s, cfg.HistorySize)
	v.panel = editor.NewPanel()
	return v, nil
}

// Run drives the frame loop until the window closes or Escape is pressed.
func (v *viewer) Run() {
	last := v.window.Time()
	for !v.window.ShouldClose() {
		v.window.PollEvents()

		now := v.window.Time()
		dt := float32(now - last)
		last = now

		if !v.io.WantCaptureKeyboard() && v.window.IsKeyPressed(core.KeyEscape) {
			break
		}

		v.platform.NewFrame()
		imgui.NewFrame()

		capture := editor.Capture{Mouse: v.io.WantCaptureMouse(), Keyboard: v.io.WantCaptureKeyboard()}
		v.editor.Update(dt, capture)

		v.drawScene(now)

		// Panel edits land in the scene for the next frame's draw.
		v.panel.Build(v.editor)
		v.editor.Flush()

		imgui.Render()
		v.uiRenderer.Render(v.platform.DisplaySize(), v.platform.FramebufferSize(), imgui.RenderedDrawData())

		v.window.SwapBuffers()

		if v.stats.Tick(dt) {
			v.window.SetTitle(v.stats.Title(v.cfg.Window.Title, v.editor.Scene.Camera))
		}
	}
}

func (v *viewer) drawScene(t float64) {
	fbW, fbH := v.window.GetFramebufferSize()
	var aspect float32
	if fbH > 0 {
		aspect = float32(fbW) / float32(fbH)
	}

	s := v.editor.Scene
	v.renderer.SetViewport(fbW, fbH)
	v.renderer.BeginFrame(v.clear)
	for _, call := range s.DrawList(t, aspect) {
		v.renderer.Draw(call, s.BlendMode)
	}
	v.renderer.EndFrame()
}

// Close releases GPU buffers, program and textures, then the UI, then the
// window. Safe on a partially built viewer.
func (v *viewer) Close() {
	if v.renderer != nil {
		v.renderer.Destroy()
		v.renderer = nil
	}
	if v.uiRenderer != nil {
		v.uiRenderer.Dispose()
		v.uiRenderer = nil
	}
	if v.platform != nil {
		v.platform.Dispose()
		v.platform = nil
	}
	if v.imguiCtx != nil {
		v.imguiCtx.Destroy()
		v.imguiCtx = nil
	}
	if v.window != nil {
		v.window.Destroy()
		v.window = nil
	}
}
