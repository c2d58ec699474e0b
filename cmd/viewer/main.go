package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"scene-viewer/config"
	"scene-viewer/internal/logger"
)

func main() {
	cfg, err := config.FromFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	fmt.Println("Starting scene viewer...")

	v, err := newViewer(cfg)
	if err != nil {
		logger.Log.Fatal("initialization failed", zap.Error(err))
	}

	printControls()
	v.Run()
	v.Close()
	logger.Log.Info("shutdown complete")
}

func printControls() {
	fmt.Println("===========================================")
	fmt.Println("  Scene Viewer")
	fmt.Println("===========================================")
	fmt.Println("")
	fmt.Println("CAMERA CONTROLS:")
	fmt.Println("  W / S             - Move up / down")
	fmt.Println("  A / D             - Move left / right")
	fmt.Println("  Mouse Wheel       - Zoom in / out")
	fmt.Println("  Right Mouse Drag  - Rotate camera")
	fmt.Println("")
	fmt.Println("EDITING:")
	fmt.Println("  Settings panel    - Textures, blending, sensitivity")
	fmt.Println("  Ctrl+Z            - Undo")
	fmt.Println("  Ctrl+Shift+Z      - Redo")
	fmt.Println("  Escape            - Quit")
	fmt.Println("===========================================")
}
