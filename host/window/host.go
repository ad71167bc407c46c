// Package window hosts the attract loop in an ebiten window for touch kiosks
package window

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/goldenmunch/attract/engine"
	"github.com/goldenmunch/attract/idle"
	"github.com/goldenmunch/attract/render/ebitensurface"
)

// Options configures the window
type Options struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	Clock      engine.TimeProvider
	Logger     *zap.Logger
}

// Host implements ebiten.Game and engine.FrameHost
// Frames requested by the scheduler fire inside Draw, once per display refresh
type Host struct {
	opts    Options
	surface *ebitensurface.Surface
	sim     *idle.Simulation
	clock   *engine.FrameClock
	log     *zap.Logger

	next     engine.FrameHandle
	pending  engine.FrameHandle
	callback engine.FrameCallback

	width, height int
	touches       []ebiten.TouchID
	keys          []ebiten.Key
}

// New creates a window host
func New(opts Options) *Host {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1280, 800
	}
	if opts.Clock == nil {
		opts.Clock = engine.NewMonotonicTimeProvider()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Host{
		opts:    opts,
		surface: ebitensurface.New(opts.Width, opts.Height),
		clock:   engine.NewFrameClock(opts.Clock),
		log:     opts.Logger,
	}
}

// Surface returns the ebiten surface the simulation should draw on
func (h *Host) Surface() *ebitensurface.Surface {
	return h.surface
}

// Attach binds the simulation this host drives
func (h *Host) Attach(sim *idle.Simulation) {
	h.sim = sim
}

// RequestFrame replaces any pending request
func (h *Host) RequestFrame(cb engine.FrameCallback) engine.FrameHandle {
	h.next++
	h.pending = h.next
	h.callback = cb
	return h.pending
}

// CancelFrame drops the request if it is still pending
func (h *Host) CancelFrame(handle engine.FrameHandle) {
	if handle == h.pending {
		h.pending = 0
		h.callback = nil
	}
}

// Run opens the window and blocks until activation or close
func (h *Host) Run() error {
	if h.sim == nil {
		return fmt.Errorf("window: no simulation attached")
	}
	ebiten.SetWindowSize(h.opts.Width, h.opts.Height)
	ebiten.SetWindowTitle(h.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(h.opts.Fullscreen)

	h.sim.Start()
	defer h.sim.Teardown()

	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Update polls input; any press, touch or key activates
func (h *Host) Update() error {
	if h.sim.Activated() {
		return ebiten.Termination
	}

	h.touches = inpututil.AppendJustPressedTouchIDs(h.touches[:0])
	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) ||
		len(h.touches) > 0 || len(h.keys) > 0

	if pressed {
		h.log.Debug("input activation", zap.Int("touches", len(h.touches)), zap.Int("keys", len(h.keys)))
		h.sim.Activate()
		return ebiten.Termination
	}
	return nil
}

// Draw fires the pending frame onto screen
func (h *Host) Draw(screen *ebiten.Image) {
	h.surface.SetTarget(screen)
	h.fire(h.clock.Timestamp())
	h.surface.SetTarget(nil)
}

// Layout keeps one logical pixel per device-independent pixel and resizes the arena to match
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.width || outsideHeight != h.height {
		h.width, h.height = outsideWidth, outsideHeight
		h.surface.Resize(outsideWidth, outsideHeight)
		if h.sim != nil {
			h.sim.Resize(float64(outsideWidth), float64(outsideHeight))
		}
		h.log.Debug("window resized", zap.Int("width", outsideWidth), zap.Int("height", outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func (h *Host) fire(ts time.Duration) {
	cb := h.callback
	if cb == nil {
		return
	}
	h.pending = 0
	h.callback = nil
	cb(ts)
}

var (
	_ engine.FrameHost = (*Host)(nil)
	_ ebiten.Game      = (*Host)(nil)
)
