// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Example of RegisterFS: serves HTML/CSS/JS from embed.FS (no files on disk).
package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"image"
	"os"
	"time"

	cefui "github.com/YindSoft/cef-ebitengine-port"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

//go:embed ui
var uiFiles embed.FS

const (
	screenWidth  = 800
	screenHeight = 600
)

type Game struct {
	rt      *cefui.Runtime
	router  *cefui.InputRouter
	view    cefui.Handle
	closing bool
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() && !g.closing {
		g.closing = true
		g.rt.RemoveBrowser(g.view)
	}
	g.router.Poll()
	g.rt.Update()
	if g.closing && g.rt.Pending() == 0 {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if tex, ok := g.rt.TextureOf(g.view); ok {
		if et, ok := tex.(*cefui.EbitenTexture); ok && et.Image() != nil {
			screen.DrawImage(et.Image(), nil)
		}
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  %s", ebiten.ActualFPS(), cefui.ResourceURL("ui/index.html")))
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func run(configPath string) error {
	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)
	cefui.SetLogger(log)

	opts, err := cefui.LoadOptions(configPath)
	if err != nil {
		return err
	}
	opts.Debug = true
	opts.ViewWidth, opts.ViewHeight = screenWidth, screenHeight

	engine, err := cefui.NewBridgeEngine(opts.BaseDir)
	if err != nil {
		return cefui.WithExitCodeIfNone(err, cefui.ExitEngineInit)
	}
	rt, err := cefui.NewRuntime(engine, cefui.NewEbitenGraphics(), opts)
	if err != nil {
		return err
	}
	code, exited, err := rt.SetUp(os.Args)
	if err != nil {
		return err
	}
	if exited {
		os.Exit(code)
	}

	if err := rt.RegisterFS(uiFiles); err != nil {
		return err
	}
	view, err := rt.CreateBrowser(cefui.ResourceURL("ui/index.html"))
	if err != nil {
		return cefui.WithExitCodeIfNone(err, cefui.ExitBrowser)
	}

	g := &Game{rt: rt, router: cefui.NewInputRouter(rt), view: view}
	g.router.Attach(view, image.Rect(0, 0, screenWidth, screenHeight))
	g.router.SetFocus(view)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("cefui - embed.FS example")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return cefui.WithExitCodeIfNone(err, cefui.ExitGraphicsInit)
	}

	rt.CloseAll()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := rt.Drain(ctx, 0); err != nil {
		return err
	}
	return rt.ShutDown()
}

func main() {
	if !cefui.IsMainProcess(os.Args) {
		// Same entry point as the main process: SetUp runs the worker and
		// reports its exit status.
		if err := run(""); err != nil {
			os.Exit(cefui.ExitCodeOf(err))
		}
		return
	}

	var configPath string
	cmd := &cobra.Command{
		Use:                "example_embed",
		Short:              "Render an embedded page into an Ebiten window",
		SilenceUsage:       true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(*cobra.Command, []string) error {
			return run(configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file")

	if err := cmd.Execute(); err != nil {
		os.Exit(cefui.ExitCodeOf(err))
	}
}
