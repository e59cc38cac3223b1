// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package cefui renders web pages offscreen with the Chromium Embedded
// Framework (CEF) and exposes every frame as an Ebiten texture.
//
// CEF is multi-process: the host binary is re-executed as renderer, GPU and
// utility workers. The same program must therefore check its role first and
// hand worker invocations to the engine before doing anything else:
//
//	engine, err := cefui.NewBridgeEngine("")
//	if err != nil { ... }
//	rt, err := cefui.NewRuntime(engine, cefui.NewEbitenGraphics(), opts)
//	if err != nil { ... }
//	code, exited, err := rt.SetUp(os.Args)
//	if err != nil { os.Exit(cefui.ExitCodeOf(err)) }
//	if exited { os.Exit(code) } // this process was a worker
//
// IsMainProcess tells the roles apart without loading the engine, which lets
// a CLI skip flag parsing for workers.
//
// Browsers are addressed by Handle. A Handle is weak: once the browser is
// removed every call through it does nothing and reports false, and a new
// browser never reuses an old Handle.
//
//	h, err := rt.CreateBrowser("https://example.com", cefui.WithViewSize(800, 600))
//
//	// In Ebiten Update():
//	router.Poll() // optional, see InputRouter
//	rt.Update()   // pumps the engine; paints land in the textures here
//
//	// In Ebiten Draw():
//	tex, _ := rt.TextureOf(h)
//	screen.DrawImage(tex.(*cefui.EbitenTexture).Image(), nil)
//
//	// In Ebiten Layout(), when the view size changes:
//	rt.Reshape(h, w, ht)
//
// Closing is asynchronous. RemoveBrowser invalidates the Handle at once and
// the engine tears the browser down over the next Update calls; ShutDown
// refuses to run until Pending reports zero:
//
//	rt.CloseAll()
//	_ = rt.Drain(ctx, 0)
//	err = rt.ShutDown()
//
// Embedded assets: RegisterFS serves an fs.FS under ResourceOrigin so pages
// can be loaded from an embed.FS without touching the disk:
//
//	//go:embed ui
//	var uiFiles embed.FS
//	err = rt.RegisterFS(uiFiles)
//	h, err := rt.CreateBrowser(cefui.ResourceURL("ui/index.html"))
//
// Every Runtime method, and every engine callback, runs on the thread that
// called SetUp. The package locks the main goroutine to the main OS thread at
// init, so calling from Ebiten's Update and Draw is correct.
//
// Requirements: the bridge shared library (cef_bridge.dll on Windows,
// libcef_bridge.so on Linux, libcef_bridge.dylib on macOS) and the CEF binary
// distribution must be present next to the executable or in the directory
// given by Options.BaseDir.
package cefui
