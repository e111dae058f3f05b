// Package ebitenhost runs an inkwell editor in an Ebitengine window: it
// turns mouse, wheel and keyboard input into editor events, advances the
// editor's clock once per tick, and draws the grid, scene, and live text
// entry through the editor's viewport.
package ebitenhost

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/inkwell"
)

// RunConfig holds window and host options for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowOverlay draws the debug summary and frame rates in the corner.
	ShowOverlay bool
	// ConfigPath, if set, is watched and re-applied to the editor on change.
	ConfigPath string
	// Font renders and measures text. Nil uses Go Regular at 20px.
	Font *TTFFont
	// Script, if set, drives the editor until it finishes. Live input is
	// ignored while it runs.
	Script *inkwell.Runner
	// ExitAfterScript closes the window once Script is done.
	ExitAfterScript bool
	// ScreenshotDir receives PNGs from Screenshot. Defaults to "screenshots".
	ScreenshotDir string
}

// DefaultRunConfig returns a 1280x720 window titled "inkwell".
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "inkwell",
		Width:         1280,
		Height:        720,
		ScreenshotDir: "screenshots",
	}
}

// Host implements ebiten.Game for an inkwell editor.
type Host struct {
	editor *inkwell.Editor
	font   *TTFFont

	input  inputReader
	events []inkwell.Event

	width, height int
	cursor        inkwell.Cursor

	showOverlay bool
	overlay     overlay

	watcher *configWatcher

	script     *inkwell.Runner
	exitScript bool

	shots   []string
	shotDir string
}

// NewHost prepares a host for e. The editor's scene is switched to measure
// text with the host font so hit boxes match what is drawn.
func NewHost(e *inkwell.Editor, cfg RunConfig) (*Host, error) {
	font := cfg.Font
	if font == nil {
		var err error
		if font, err = DefaultFont(); err != nil {
			return nil, err
		}
	}
	e.Scene().SetFont(font)

	h := &Host{
		editor:      e,
		font:        font,
		showOverlay: cfg.ShowOverlay,
		script:      cfg.Script,
		exitScript:  cfg.ExitAfterScript,
		shotDir:     cfg.ScreenshotDir,
		cursor:      inkwell.CursorDefault,
	}
	if h.shotDir == "" {
		h.shotDir = "screenshots"
	}
	if h.script != nil && h.script.OnScreenshot == nil {
		h.script.OnScreenshot = h.Screenshot
	}
	if cfg.ConfigPath != "" {
		w, err := watchConfig(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		h.watcher = w
	}
	return h, nil
}

// Editor returns the hosted editor.
func (h *Host) Editor() *inkwell.Editor {
	return h.editor
}

// Close stops the config watcher, if any.
func (h *Host) Close() error {
	if h.watcher == nil {
		return nil
	}
	return h.watcher.Close()
}

// Update feeds one tick of input (or script) to the editor and advances its
// clock.
func (h *Host) Update() error {
	h.applyConfigUpdates()

	if h.script != nil && !h.script.Done() {
		h.script.Step(h.editor)
	} else {
		if h.script != nil && h.exitScript {
			return ebiten.Termination
		}
		h.events = h.input.events(h.input.poll(h.width, h.height), h.events[:0])
		for _, ev := range h.events {
			h.editor.Dispatch(ev)
		}
	}

	dt := tickDuration()
	h.editor.Tick(dt)
	if h.showOverlay {
		h.overlay.update(dt.Seconds(), h.editor)
	}

	if c := h.editor.Cursor(); c != h.cursor {
		h.cursor = c
		ebiten.SetCursorShape(cursorShape(c))
	}
	return nil
}

// applyConfigUpdates applies the latest reloaded config. Invalid files are
// reported and the running config is kept.
func (h *Host) applyConfigUpdates() {
	if h.watcher == nil {
		return
	}
	u, ok := h.watcher.poll()
	if !ok {
		return
	}
	if u.err == nil {
		u.err = h.editor.ApplyConfig(u.cfg)
	}
	if u.err != nil {
		logf("config reload: %v", u.err)
		return
	}
	logf("config reloaded from %s", h.watcher.path)
}

// Draw renders the grid, scene, text entry, and overlay.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	h.drawGrid(screen)
	h.drawScene(screen)
	h.drawEntry(screen)
	if h.showOverlay {
		h.overlay.draw(screen)
	}
	h.flushScreenshots(screen)
}

// Layout uses the window size as the logical screen and reports size
// changes to the editor.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.width || outsideHeight != h.height {
		h.width, h.height = outsideWidth, outsideHeight
		h.editor.Dispatch(inkwell.ResizeEvent{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and runs e until the window is closed.
func Run(e *inkwell.Editor, cfg RunConfig) error {
	h, err := NewHost(e, cfg)
	if err != nil {
		return err
	}
	defer h.Close()

	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func tickDuration() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[inkwell] "+format+"\n", args...)
}
