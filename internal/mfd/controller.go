package mfd

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"mfd/internal/settings"
	"mfd/internal/ui"
)

// OptionsFeed publishes options changed outside the UI, e.g. by editing the
// settings file. The version increases with every change.
type OptionsFeed interface {
	Current() (settings.Options, uint64)
}

// Saver persists options without blocking.
type Saver interface {
	Queue(o settings.Options)
}

// Option configures a Controller.
type Option func(*Controller)

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

func WithTracer(t trace.Tracer) Option {
	return func(c *Controller) { c.tracer = t }
}

// WithClock replaces time.Now for page refresh and clock displays.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func WithOptions(o settings.Options) Option {
	return func(c *Controller) { c.options = o.Normalize() }
}

func WithOptionsFeed(f OptionsFeed) Option {
	return func(c *Controller) { c.feed = f }
}

func WithSaver(s Saver) Option {
	return func(c *Controller) { c.saver = s }
}

// Controller is the top of the navigation state machine: the active
// application and, through it, the active page.
type Controller struct {
	Display *ui.Display

	apps   []Application
	active int

	options     settings.Options
	feed        OptionsFeed
	feedVersion uint64
	saver       Saver

	logger *slog.Logger
	tracer trace.Tracer
	now    func() time.Time

	overlays OverlayStack
	exit     bool
	frames   uint64
	fps      float64
	lastTick time.Time
}

// NewController creates a controller drawing on d. Applications are added
// afterwards with SetApps because their pages need the controller.
func NewController(d *ui.Display, opts ...Option) *Controller {
	c := &Controller{
		Display: d,
		active:  -1,
		options: settings.Defaults(),
		logger:  slog.Default(),
		tracer:  noop.NewTracerProvider().Tracer("mfd"),
		now:     time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	if c.feed != nil {
		c.options, c.feedVersion = c.feed.Current()
		c.options = c.options.Normalize()
	}
	d.SetScheme(c.options.Scheme())
	c.overlays.Push(&FPSOverlay{})
	c.overlays.Push(&InterlaceOverlay{})
	c.overlays.Push(&ScanlineOverlay{})
	return c
}

// SetApps fills the top-row slots in order. Nil entries and Placeholders
// keep their slot but cannot be selected.
func (c *Controller) SetApps(apps ...Application) {
	c.apps = append([]Application(nil), apps...)
}

func (c *Controller) Apps() []Application { return c.apps }

// ActiveApp returns the selected application, or nil before Start.
func (c *Controller) ActiveApp() Application {
	if c.active < 0 || c.active >= len(c.apps) {
		return nil
	}
	return c.apps[c.active]
}

// ActivePage returns the active application's active page, or nil.
func (c *Controller) ActivePage() Page {
	if a := c.ActiveApp(); a != nil {
		return a.ActivePage()
	}
	return nil
}

func (c *Controller) Logger() *slog.Logger { return c.logger }

// Now is the controller's clock.
func (c *Controller) Now() time.Time { return c.now() }

// Start selects the first selectable application. Run calls it when needed.
func (c *Controller) Start() {
	if c.active >= 0 {
		return
	}
	for i, a := range c.apps {
		if selectable(a) {
			c.SelectApp(i)
			return
		}
	}
}

// SelectApp activates the application in slot index. Selecting the active
// application again is a reselect; empty and placeholder slots are ignored.
func (c *Controller) SelectApp(index int) {
	if index < 0 || index >= len(c.apps) || !selectable(c.apps[index]) {
		return
	}
	next := c.apps[index]
	if index == c.active {
		next.HandleReselected()
		return
	}
	if prev := c.ActiveApp(); prev != nil {
		prev.HandleUnselected()
	}
	c.active = index
	c.logger.Debug("application selected", "app", next.ButtonText())
	next.HandleSelected()
}

// HandleButton routes a physical button press: the top row selects
// applications, the bottom row selects pages of the active application.
func (c *Controller) HandleButton(index int, top bool) {
	if top {
		c.SelectApp(index)
		return
	}
	if a := c.ActiveApp(); a != nil {
		a.SelectPage(index)
	}
}

// RequestExit stops Run before its next frame.
func (c *Controller) RequestExit() {
	if !c.exit {
		c.logger.Info("exit requested")
	}
	c.exit = true
}

func (c *Controller) ExitRequested() bool { return c.exit }

// Options returns the options in effect for the current frame.
func (c *Controller) Options() settings.Options { return c.options }

// UpdateOptions applies fn to the options, switches the color scheme if it
// changed and queues a save.
func (c *Controller) UpdateOptions(fn func(o *settings.Options)) {
	o := c.options
	fn(&o)
	c.applyOptions(o.Normalize())
	if c.saver != nil {
		c.saver.Queue(c.options)
	}
}

func (c *Controller) applyOptions(o settings.Options) {
	c.options = o
	if s := o.Scheme(); s != c.Display.Scheme() {
		c.Display.SetScheme(s)
	}
}

// pullOptions adopts options published by the feed since the last frame.
func (c *Controller) pullOptions() {
	if c.feed == nil {
		return
	}
	o, v := c.feed.Current()
	if v == c.feedVersion {
		return
	}
	c.feedVersion = v
	c.applyOptions(o.Normalize())
}

// FPS is the smoothed frame rate measured by Frame.
func (c *Controller) FPS() float64 { return c.fps }

// Frames is the number of frames run so far.
func (c *Controller) Frames() uint64 { return c.frames }

func (c *Controller) tick(now time.Time) {
	if !c.lastTick.IsZero() {
		if dt := now.Sub(c.lastTick).Seconds(); dt > 0 {
			inst := 1 / dt
			if c.fps == 0 {
				c.fps = inst
			} else {
				c.fps = 0.9*c.fps + 0.1*inst
			}
		}
	}
	c.lastTick = now
}

// Frame runs one iteration: options, layout, drawing, then input. A panic
// in drawing or in input handling is logged and the frame carries on.
func (c *Controller) Frame(ctx context.Context, events []Event) {
	c.Start()
	c.tick(time.Now())
	_, span := c.tracer.Start(ctx, "mfd.frame", trace.WithAttributes(
		attribute.Int64("mfd.frame", int64(c.frames)),
		attribute.Int("mfd.events", len(events)),
	))
	defer span.End()

	c.pullOptions()
	c.guard(span, "render", c.render)
	c.guard(span, "dispatch", func() { c.dispatch(events) })
	c.frames++
}

func (c *Controller) guard(span trace.Span, phase string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%s panic: %v", phase, r)
			c.logger.Error("frame phase panicked", "phase", phase, "panic", r, "stack", string(debug.Stack()))
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()
	fn()
}

func (c *Controller) render() {
	d := c.Display
	d.Surface.Fill(d.Scheme().Background)

	top, bottom := c.TopButtons(), c.BottomButtons()
	page := c.ActivePage()
	if page != nil {
		page.Arrange()
	}
	c.renderButtons(top, true)
	c.renderButtons(bottom, false)
	if page != nil {
		page.Render()
	}
	c.overlays.Render(c)
}

func (c *Controller) dispatch(events []Event) {
	for _, ev := range events {
		if c.exit {
			return
		}
		c.HandleEvent(ev)
	}
}

// HandleEvent applies one input event.
func (c *Controller) HandleEvent(ev Event) {
	switch ev.Kind {
	case EventQuit:
		c.RequestExit()
	case EventResize:
		if r, ok := c.Display.Surface.(Resizer); ok {
			r.Resize(ev.Width, ev.Height)
		}
	case EventButton:
		c.HandleButton(ev.Button, ev.Top)
	case EventKey:
		c.HandleKey(ev.Key)
	}
}

// HandleKey routes a key: Escape exits, F1-F10 press buttons, anything
// else goes to the focused widget and then the page.
func (c *Controller) HandleKey(k ui.Key) {
	if k == ui.KeyEscape {
		c.RequestExit()
		return
	}
	if idx, top, ok := buttonForKey(k); ok {
		c.HandleButton(idx, top)
		return
	}
	if p := c.ActivePage(); p != nil {
		if !dispatchKey(p, k) {
			c.logger.Debug("key dropped", "key", string(k))
		}
	}
}

// Run renders frames at the configured rate until exit is requested or ctx
// is cancelled. Input is polled once per frame.
func (c *Controller) Run(ctx context.Context, src EventSource, out Presenter) error {
	c.Start()
	for {
		if c.exit {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		frameStart := time.Now()

		c.Frame(ctx, src.Poll())
		if out != nil {
			out.Present()
		}

		elapsed := time.Since(frameStart)
		if budget := c.frameBudget(); elapsed < budget {
			t := time.NewTimer(budget - elapsed)
			select {
			case <-t.C:
			case <-ctx.Done():
				t.Stop()
				return nil
			}
		}
	}
}

func (c *Controller) frameBudget() time.Duration {
	fps := c.options.FPS
	if fps <= 0 {
		fps = settings.DefaultFPS
	}
	return time.Second / time.Duration(fps)
}
