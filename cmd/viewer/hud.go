package main

import (
	"fmt"

	"scene-viewer/scene"
)

// frameStats counts frames and reports once per second.
type frameStats struct {
	frames  int
	elapsed float32
	FPS     int
}

// Tick records one frame of dt seconds and reports whether a full second
// has passed since the last report.
func (fs *frameStats) Tick(dt float32) bool {
	fs.frames++
	fs.elapsed += dt
	if fs.elapsed < 1 {
		return false
	}
	fs.FPS = fs.frames
	fs.frames = 0
	fs.elapsed = 0
	return true
}

// Title formats the window title with the latest rate and camera pose.
func (fs *frameStats) Title(base string, cam *scene.Camera) string {
	return fmt.Sprintf("%s | FPS: %d | Pan: %.1f %.1f %.1f | Yaw: %.2f Pitch: %.2f",
		base, fs.FPS, cam.Pan.X(), cam.Pan.Y(), cam.Pan.Z(), cam.Yaw, cam.Pitch)
}
