// Package term hosts the attract loop in a terminal through tcell
package term

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/goldenmunch/attract/engine"
	"github.com/goldenmunch/attract/idle"
	"github.com/goldenmunch/attract/render/cellsurface"
)

// Options configures the terminal host
type Options struct {
	FrameRate  int
	StatusLine bool
	Mouse      bool
	Locale     string
	Clock      engine.TimeProvider
	Logger     *zap.Logger

	// OnCrash runs when the input goroutine panics; the host loop goroutine is covered by the caller
	OnCrash func(r any)
}

// Host is an engine.FrameHost that fires frames from a ticker on the loop goroutine
type Host struct {
	screen  tcell.Screen
	surface *cellsurface.Surface
	sim     *idle.Simulation
	clock   *engine.FrameClock
	printer *message.Printer
	log     *zap.Logger

	interval   time.Duration
	statusLine bool
	mouse      bool
	onCrash    func(any)

	next     engine.FrameHandle
	pending  engine.FrameHandle
	callback engine.FrameCallback

	cols, rows int

	// input tracks the PollEvent goroutine
	input sync.WaitGroup
}

var statusStyle = tcell.StyleDefault.
	Background(tcell.NewRGBColor(0x0B, 0x14, 0x26)).
	Foreground(tcell.NewRGBColor(0xF9, 0xA0, 0x3F))

// New creates a host over an initialised screen
func New(screen tcell.Screen, opts Options) *Host {
	if opts.FrameRate <= 0 {
		opts.FrameRate = 60
	}
	if opts.Clock == nil {
		opts.Clock = engine.NewMonotonicTimeProvider()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	tag, err := language.Parse(opts.Locale)
	if err != nil {
		tag = language.English
	}

	surface := cellsurface.New(screen, 0, 0)
	surface.SetAutoShow(false)

	return &Host{
		screen:     screen,
		surface:    surface,
		clock:      engine.NewFrameClock(opts.Clock),
		printer:    message.NewPrinter(tag),
		log:        opts.Logger,
		interval:   time.Second / time.Duration(opts.FrameRate),
		statusLine: opts.StatusLine,
		mouse:      opts.Mouse,
		onCrash:    opts.OnCrash,
	}
}

// Surface returns the cell surface the simulation should draw on
func (h *Host) Surface() *cellsurface.Surface {
	return h.surface
}

// Attach binds the simulation whose input and sizing this host drives
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

// Run polls input and fires frames until activation, ctx cancellation or terminal closure
func (h *Host) Run(ctx context.Context) error {
	if h.sim == nil {
		return fmt.Errorf("term: no simulation attached")
	}
	if h.mouse {
		h.screen.EnableMouse()
	}

	h.HandleEvent(tcell.NewEventResize(h.screen.Size()))
	h.sim.Start()
	defer h.sim.Teardown()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	h.input.Add(1)
	go func() {
		defer h.input.Done()
		defer func() {
			if r := recover(); r != nil && h.onCrash != nil {
				h.onCrash(r)
			}
		}()
		for {
			ev := h.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !h.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			h.Frame()
			if h.sim.Activated() {
				return nil
			}
		}
	}
}

// HandleEvent applies one terminal event; false means the loop should exit
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		h.resize(cols, rows)
		h.screen.Sync()

	case *tcell.EventMouse:
		if ev.Buttons()&(tcell.Button1|tcell.Button2|tcell.Button3) != 0 {
			h.sim.Activate()
			return false
		}

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			h.log.Info("interrupted")
			return false
		}
		h.sim.Activate()
		return false
	}
	return true
}

// Frame fires the pending frame with the host clock and draws the status line
func (h *Host) Frame() {
	h.fire(h.clock.Timestamp())
}

func (h *Host) fire(ts time.Duration) {
	cb := h.callback
	if cb == nil {
		return
	}
	h.pending = 0
	h.callback = nil
	cb(ts)

	if h.statusLine {
		h.drawStatus(h.sim.Snapshot())
	}
	h.screen.Show()
}

func (h *Host) resize(cols, rows int) {
	h.cols, h.rows = cols, rows
	arenaRows := rows
	if h.statusLine && arenaRows > 0 {
		arenaRows--
	}
	h.surface.SetArea(0, 0, cols, arenaRows)
	w, hgt := h.surface.Bounds()
	h.sim.Resize(w, hgt)
	h.log.Debug("terminal resized", zap.Int("cols", cols), zap.Int("rows", rows))
}

// drawStatus writes the snapshot readout on the bottom row
func (h *Host) drawStatus(snap engine.Snapshot) {
	if h.rows <= 0 {
		return
	}
	row := h.rows - 1
	for col := 0; col < h.cols; col++ {
		h.screen.SetContent(col, row, ' ', nil, statusStyle)
	}
	text := StatusText(h.printer, snap)
	col := 1
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > h.cols {
			break
		}
		h.screen.SetContent(col, row, r, nil, statusStyle)
		col += w
	}
}

// StatusText formats the observable snapshot for the status line
func StatusText(p *message.Printer, snap engine.Snapshot) string {
	return p.Sprintf("Score: %d  🍰 %d  %ds  · any key to order", snap.Score, snap.Collectibles, int(snap.Elapsed/time.Second))
}

var _ engine.FrameHost = (*Host)(nil)
