package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/gorustyt/gobezier/common/logger"
	"github.com/gorustyt/gobezier/config"
	"github.com/gorustyt/gobezier/demo/gui"
	"github.com/gorustyt/gobezier/scene"
	"go.uber.org/zap"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("bezier editor stopped", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	sc, err := scene.New(cfg, log)
	if err != nil {
		return err
	}
	app, err := gui.NewApp(cfg, sc, log)
	if err != nil {
		return err
	}
	defer app.Close()
	log.Info("bezier editor started",
		zap.Int("rows", sc.Grid().Rows),
		zap.Int("cols", sc.Grid().Cols))
	app.Run()
	return nil
}
