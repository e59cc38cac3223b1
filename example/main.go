// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Two web pages rendered side by side into one Ebiten window.
package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"net/http"
	"os"
	"time"

	cefui "github.com/YindSoft/cef-ebitengine-port"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

type flags struct {
	config      string
	urls        []string
	logLevel    string
	metricsAddr string
	headless    time.Duration
}

func main() {
	// Engine workers re-execute this binary with their own switches. Hand them
	// over before cobra parses anything.
	if !cefui.IsMainProcess(os.Args) {
		os.Exit(runWorker())
	}

	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("exiting")
		os.Exit(cefui.ExitCodeOf(err))
	}
}

func runWorker() int {
	opts, err := cefui.LoadOptions("")
	if err != nil {
		return cefui.ExitCodeOf(err)
	}
	engine, err := cefui.NewBridgeEngine(opts.BaseDir)
	if err != nil {
		return int(cefui.ExitEngineInit)
	}
	rt, err := cefui.NewRuntime(engine, cefui.MemoryGraphics{}, opts)
	if err != nil {
		return 1
	}
	code, _, err := rt.SetUp(os.Args)
	if err != nil {
		return cefui.ExitCodeOf(err)
	}
	return code
}

func newRootCommand() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:           "example",
		Short:         "Render web pages into Ebiten textures",
		SilenceUsage:  true,
		SilenceErrors: true,
		// The engine may append its own switches to the main process too.
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "config file (default ./cefui.{yaml,toml,json})")
	fl.StringSliceVar(&f.urls, "url", []string{"https://www.google.com", "https://ebitengine.org"}, "pages to open, left to right")
	fl.StringVar(&f.logLevel, "log-level", "info", "log level")
	fl.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	fl.DurationVar(&f.headless, "headless", 0, "pump the engine for this long without a window, then exit")
	return cmd
}

func run(ctx context.Context, f *flags) (err error) {
	log := logrus.New()
	level, err := logrus.ParseLevel(f.logLevel)
	if err != nil {
		return cefui.WithExitCodeIfNone(err, cefui.ExitConfig)
	}
	log.SetLevel(level)
	cefui.SetLogger(log)

	opts, err := cefui.LoadOptions(f.config)
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	opts.Registerer = reg

	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)
	if f.metricsAddr != "" {
		g.Go(func() error { return serveMetrics(gctx, log, f.metricsAddr, reg) })
	}
	defer func() {
		cancel()
		if werr := g.Wait(); err == nil {
			err = werr
		}
	}()

	engine, err := cefui.NewBridgeEngine(opts.BaseDir)
	if err != nil {
		return cefui.WithExitCodeIfNone(err, cefui.ExitEngineInit)
	}
	var gfx cefui.Graphics = cefui.NewEbitenGraphics()
	if f.headless > 0 {
		gfx = cefui.MemoryGraphics{}
	}
	rt, err := cefui.NewRuntime(engine, gfx, opts)
	if err != nil {
		return err
	}
	if code, exited, err := rt.SetUp(os.Args); err != nil {
		return err
	} else if exited {
		os.Exit(code)
	}

	if f.headless > 0 {
		return runHeadless(gctx, rt, f)
	}
	return runWindow(rt, f.urls)
}

func serveMetrics(ctx context.Context, log logrus.FieldLogger, addr string, reg *prometheus.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.WithField("addr", addr).Info("serving metrics")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}

func runHeadless(ctx context.Context, rt *cefui.Runtime, f *flags) error {
	for _, u := range f.urls {
		if _, err := rt.CreateBrowser(u); err != nil {
			return cefui.WithExitCodeIfNone(err, cefui.ExitBrowser)
		}
	}

	runCtx, cancel := context.WithTimeout(ctx, f.headless)
	defer cancel()
	if err := rt.Run(runCtx, 0); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	rt.CloseAll()
	drainCtx, cancelDrain := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelDrain()
	if err := rt.Drain(drainCtx, 0); err != nil {
		return err
	}
	return rt.ShutDown()
}

func runWindow(rt *cefui.Runtime, urls []string) error {
	g := &game{rt: rt, router: cefui.NewInputRouter(rt)}
	for _, u := range urls {
		h, err := rt.CreateBrowser(u)
		if err != nil {
			rt.CloseAll()
			g.drain()
			return cefui.WithExitCodeIfNone(err, cefui.ExitBrowser)
		}
		g.views = append(g.views, h)
	}
	if len(g.views) > 0 {
		g.router.SetFocus(g.views[0])
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("cefui - Ebiten + CEF demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return cefui.WithExitCodeIfNone(err, cefui.ExitGraphicsInit)
	}
	g.drain()
	return rt.ShutDown()
}

type game struct {
	rt     *cefui.Runtime
	router *cefui.InputRouter
	views  []cefui.Handle

	width, height int
	quitting      bool
}

// drain finishes pending closes once the window is gone.
func (g *game) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := g.rt.Drain(ctx, 0); err != nil {
		logrus.WithError(err).Warn("browsers did not close in time")
	}
}

func (g *game) Update() error {
	if ebiten.IsWindowBeingClosed() && !g.quitting {
		g.quitting = true
		g.rt.CloseAll()
	}
	if g.quitting {
		g.rt.Update()
		if g.rt.Pending() == 0 {
			return ebiten.Termination
		}
		return nil
	}

	g.router.Poll()
	g.rt.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 40, 255})
	for i, h := range g.views {
		tex, ok := g.rt.TextureOf(h)
		if !ok {
			continue
		}
		et, ok := tex.(*cefui.EbitenTexture)
		if !ok || et.Image() == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(g.viewBounds(i).Min.X), 0)
		screen.DrawImage(et.Image(), op)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  TPS: %.1f  browsers: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), g.rt.Len()))
}

// Layout splits the window into equal columns and reshapes every view to its
// column.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		for i, h := range g.views {
			b := g.viewBounds(i)
			g.rt.Reshape(h, b.Dx(), b.Dy())
			g.router.Attach(h, b)
		}
	}
	return outsideWidth, outsideHeight
}

func (g *game) viewBounds(i int) image.Rectangle {
	if len(g.views) == 0 {
		return image.Rectangle{}
	}
	w := g.width / len(g.views)
	return image.Rect(i*w, 0, (i+1)*w, g.height)
}
