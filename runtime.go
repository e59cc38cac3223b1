// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package cefui

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// State is the lifecycle stage of a Runtime. It only moves forward.
type State int

const (
	StateUninitialized State = iota
	StateInitialized
	StateShuttingDown
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateShuttingDown:
		return "shutting down"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Runtime owns engine start-up and shutdown, the registry of live browsers
// and the message loop. It is an explicit context object: create one per
// process and pass it to whatever needs to create or address browsers.
//
// A Runtime is not safe for concurrent use. All calls, and the engine
// callbacks they trigger, must happen on the graphics thread.
type Runtime struct {
	engine Engine
	gfx    Graphics
	opts   Options

	state    State
	browsers *registry
	closing  []*WebCore

	metrics *metrics
	log     logrus.FieldLogger
}

// NewRuntime returns an uninitialized Runtime. Call SetUp before anything else.
func NewRuntime(engine Engine, gfx Graphics, opts Options) (*Runtime, error) {
	opts = opts.withDefaults()
	m, err := newMetrics(opts.Registerer)
	if err != nil {
		return nil, fmt.Errorf("registering metrics: %w", err)
	}
	return &Runtime{
		engine:   engine,
		gfx:      gfx,
		opts:     opts,
		browsers: newRegistry(),
		metrics:  m,
		log:      opts.Logger,
	}, nil
}

// State returns the lifecycle stage.
func (r *Runtime) State() State {
	return r.state
}

// SetUp runs the engine's process entry point and, in the main process,
// initializes the engine.
//
// When args describe a worker invocation, SetUp returns exited == true and
// the status the process must exit with; that is the normal path for
// workers and the host must do nothing else. A non-nil error is fatal and
// carries an exit code (see ExitCodeOf).
func (r *Runtime) SetUp(args []string) (code int, exited bool, err error) {
	if r.state != StateUninitialized {
		return 0, false, fmt.Errorf("set up in state %s: %w", r.state, ErrInvalidState)
	}

	if code := r.engine.ExecuteProcess(args); code >= 0 {
		r.state = StateTerminated
		return code, true, nil
	}

	if err := r.engine.Initialize(r.opts.Settings); err != nil {
		r.state = StateTerminated
		return 0, false, WithExitCodeIfNone(fmt.Errorf("initializing engine: %w", err), ExitEngineInit)
	}
	r.state = StateInitialized
	r.log.Info("engine initialized")
	return 0, false, nil
}

// BrowserOption configures CreateBrowser.
type BrowserOption func(*browserConfig)

type browserConfig struct {
	width, height int
}

// WithViewSize sets the initial view size of a browser.
func WithViewSize(width, height int) BrowserOption {
	return func(c *browserConfig) {
		if width > 0 && height > 0 {
			c.width, c.height = width, height
		}
	}
}

// CreateBrowser creates a browser for url and returns a weak handle to it.
// It returns once the instance exists; the page loads and paints during
// later Update calls.
func (r *Runtime) CreateBrowser(url string, opts ...BrowserOption) (Handle, error) {
	if r.state != StateInitialized {
		return Handle{}, ErrNotInitialized
	}
	cfg := browserConfig{width: r.opts.ViewWidth, height: r.opts.ViewHeight}
	for _, o := range opts {
		o(&cfg)
	}

	wc, err := newWebCore(r.engine, r.gfx, url, cfg.width, cfg.height, r.log.WithField("url", url))
	if err != nil {
		return Handle{}, err
	}
	wc.renderer.onPaint = r.metrics.observePaint

	h := r.browsers.insert(wc)
	r.metrics.browsersCreated.Inc()
	r.metrics.browsersLive.Set(float64(r.browsers.len()))
	wc.log.WithFields(logrus.Fields{
		"handle": h.String(),
		"width":  cfg.width,
		"height": cfg.height,
	}).Debug("browser created")
	return h, nil
}

// Update pumps the engine's message loop once and finishes pending closes.
// Call it every frame; without it no paint or close ever completes.
func (r *Runtime) Update() {
	if r.state != StateInitialized {
		return
	}
	r.engine.DoMessageLoopWork()
	r.metrics.pumps.Inc()

	if len(r.closing) == 0 {
		return
	}
	pending := r.closing[:0]
	for _, wc := range r.closing {
		if wc.closed() {
			wc.release()
			continue
		}
		pending = append(pending, wc)
	}
	for i := len(pending); i < len(r.closing); i++ {
		r.closing[i] = nil
	}
	r.closing = pending
	r.metrics.browsersClosing.Set(float64(len(r.closing)))
}

// RemoveBrowser starts closing the browser behind h. The handle stops
// resolving immediately; the browser is torn down during later Update calls.
// It returns false if h did not resolve.
func (r *Runtime) RemoveBrowser(h Handle) bool {
	wc, ok := r.browsers.remove(h)
	if !ok {
		return false
	}
	wc.close()
	r.closing = append(r.closing, wc)
	r.metrics.browsersLive.Set(float64(r.browsers.len()))
	r.metrics.browsersClosing.Set(float64(len(r.closing)))
	return true
}

// CloseAll removes every registered browser.
func (r *Runtime) CloseAll() {
	for _, h := range r.browsers.handles() {
		r.RemoveBrowser(h)
	}
}

// Pending returns how many removed browsers are still closing.
func (r *Runtime) Pending() int {
	return len(r.closing)
}

// Len returns how many browsers are registered.
func (r *Runtime) Len() int {
	return r.browsers.len()
}

// Handles returns the handles of all registered browsers.
func (r *Runtime) Handles() []Handle {
	return r.browsers.handles()
}

// Drain pumps the message loop every interval until all removed browsers are
// closed or ctx is done. interval <= 0 uses Options.PumpInterval.
func (r *Runtime) Drain(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = r.opts.PumpInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		r.Update()
		if r.Pending() == 0 || r.state != StateInitialized {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for %d browsers to close: %w", r.Pending(), ctx.Err())
		case <-ticker.C:
		}
	}
}

// Run pumps the message loop every interval until ctx is done. Hosts that
// have no graphics loop use it instead of calling Update per frame.
func (r *Runtime) Run(ctx context.Context, interval time.Duration) error {
	if r.state != StateInitialized {
		return ErrNotInitialized
	}
	if interval <= 0 {
		interval = r.opts.PumpInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.Update()
		}
	}
}

// ShutDown stops the engine. Every browser must have been removed and fully
// closed first, otherwise ErrBrowsersOpen is returned and nothing changes.
func (r *Runtime) ShutDown() error {
	if r.state != StateInitialized {
		return fmt.Errorf("shut down in state %s: %w", r.state, ErrInvalidState)
	}
	if n := r.browsers.len() + len(r.closing); n > 0 {
		return fmt.Errorf("%d browsers: %w", n, ErrBrowsersOpen)
	}
	r.state = StateShuttingDown
	r.engine.Shutdown()
	r.state = StateTerminated
	r.log.Info("engine shut down")
	return nil
}

// Lookup resolves h. Callers must not keep the WebCore beyond the current
// frame; keep the Handle instead.
func (r *Runtime) Lookup(h Handle) (*WebCore, bool) {
	return r.browsers.lookup(h)
}

// Reshape declares a new view size for the browser behind h.
func (r *Runtime) Reshape(h Handle, width, height int) bool {
	wc, ok := r.Lookup(h)
	if !ok {
		return false
	}
	wc.Reshape(width, height)
	return true
}

// Input delivers ev to the browser behind h. It returns false, doing nothing,
// if h no longer resolves.
func (r *Runtime) Input(h Handle, ev InputEvent) bool {
	wc, ok := r.Lookup(h)
	if !ok {
		r.metrics.inputDropped.Inc()
		return false
	}
	ev.dispatch(wc)
	return true
}

// TextureOf returns the texture of the browser behind h.
func (r *Runtime) TextureOf(h Handle) (Texture, bool) {
	wc, ok := r.Lookup(h)
	if !ok {
		return nil, false
	}
	return wc.renderer.Texture(), true
}
