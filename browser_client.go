// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package cefui

// BrowserClient is the Client handed to the engine for one browser. It only
// handles offscreen rendering; every other capability is left to the engine.
type BrowserClient struct {
	renderer *RenderHandler
}

func newBrowserClient(renderer *RenderHandler) *BrowserClient {
	return &BrowserClient{renderer: renderer}
}

func (c *BrowserClient) RenderHandler() ViewRenderer {
	if c.renderer == nil {
		return nil
	}
	return c.renderer
}

func (c *BrowserClient) DisplayHandler() DisplayHandler { return nil }

func (c *BrowserClient) LoadHandler() LoadHandler { return nil }

var _ Client = (*BrowserClient)(nil)
