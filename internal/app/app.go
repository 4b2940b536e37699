package app

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gizak/termui/v3"
	log "github.com/sirupsen/logrus"

	"wifi-check-termui/internal/config"
	"wifi-check-termui/internal/monitor"
	"wifi-check-termui/internal/probe"
	"wifi-check-termui/internal/state"
	"wifi-check-termui/internal/ui"
	"wifi-check-termui/internal/wifi"
)

// New creates and returns new application.
func New(querier wifi.Querier, cfg config.Config, logger *log.Logger) *Application {
	app := &Application{
		state:   state.New(),
		monitor: monitor.New(querier, logger),
		cfg:     cfg,
		logger:  logger,

		mainScreen:    ui.NewMainScreen(),
		monitorScreen: ui.NewMonitorScreen(),
		errorScreen:   ui.NewErrorScreen(),
	}

	if cfg.Probe.Enabled {
		app.probe = probe.New(cfg.Probe.URL, logger)
	}

	return app
}

// Application wires the two concurrent tasks, the input handler and the
// sampling/render loop, around one shared state instance.
type Application struct {
	state   *state.State
	monitor *monitor.Monitor
	probe   *probe.Probe
	cfg     config.Config
	logger  *log.Logger

	mainScreen    *ui.MainScreen
	monitorScreen *ui.MonitorScreen
	errorScreen   *ui.ErrorScreen

	// set by the input task, consumed by the render loop; the input
	// task never touches the screen objects itself
	resizePending atomic.Bool
}

// Run drives the dashboard until the user quits. Returns the process
// exit code.
func (app *Application) Run() (code int) {

	defer func() {
		if err := recover(); err != nil {
			app.logger.Error(fmt.Sprintf("panic recover: %s", err))
			code = 1
		}
	}()

	app.logger.Debug("Running application")

	if err := termui.Init(); err != nil {
		app.logger.Error(fmt.Sprintf("failed to initialize termui: %v", err))
		return 1
	}
	defer termui.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app.resizeAll()

	go app.handleEvents(termui.PollEvents())

	// nil stream when the probe is disabled; a nil channel is never
	// ready so the drain below just falls through
	var probeStream <-chan probe.Result
	if app.probe != nil {
		probeStream = app.startPollingProbe(ctx, app.cfg.ProbeInterval())
	}

	var lastProbe probe.Result
	tick := time.Tick(app.cfg.SamplingInterval())

	// first render happens right away, not a full interval in
	if ctl := app.renderTick(probeStream, &lastProbe); ctl != nil {
		termui.Render(ctl)
	}

	for app.state.Snapshot().Running {
		<-tick

		if ctl := app.renderTick(probeStream, &lastProbe); ctl != nil {
			termui.Render(ctl)
		}
	}

	app.logger.Debug("Stopping application")
	return 0
}

// renderTick prepares the screen for the current state snapshot and
// returns the controller to draw, or nil when this tick must not
// render (a failed sample shows its error view on the next tick).
func (app *Application) renderTick(probeStream <-chan probe.Result, lastProbe *probe.Result) ui.Controller {
	if app.resizePending.CompareAndSwap(true, false) {
		app.resizeAll()
	}

	select {
	case r, ok := <-probeStream:
		if ok {
			*lastProbe = r
		}
	default:
	}

	snap := app.state.Snapshot()

	switch snap.View.Kind {
	case state.Error:
		app.errorScreen.Update(snap.View.Header, snap.View.Detail)
		return app.errorScreen
	case state.Monitoring:
		rows, ok := app.sampleOnce(snap)
		if !ok {
			return nil
		}
		app.monitorScreen.Update(rows, snap.HideSensitive)
		app.monitorScreen.UpdateProbe(*lastProbe)
		return app.monitorScreen
	default:
		return app.mainScreen
	}
}

// sampleOnce runs one sampling pass with the snapshot's hide flag. On
// failure it transitions state to the error view and reports false.
func (app *Application) sampleOnce(snap state.Snapshot) ([]monitor.Row, bool) {
	rows, sig := app.monitor.Sample(snap.HideSensitive)
	if sig != nil {
		v := state.ErrorView(sig.Header, sig.Detail)
		app.logger.Info("changing state to ", v)
		app.state.ChangeView(v)
		return nil, false
	}
	return rows, true
}

// handleEvents is the input task: it blocks on the next key event and
// applies the mapped command under the state lock.
func (app *Application) handleEvents(ev <-chan termui.Event) {
	for app.state.Snapshot().Running {
		e := <-ev

		switch e.Type {
		case termui.KeyboardEvent:
			app.handleKey(e.ID)
		case termui.ResizeEvent:
			// the render loop owns the screen objects; only flag it
			app.resizePending.Store(true)
		}
	}
}

func (app *Application) handleKey(id string) {
	app.logger.Info(id)

	switch id {
	case "<Escape>", "q":
		app.logger.Info("exiting..")
		app.state.ToggleRunning()
	case "m":
		v := state.View{Kind: state.Monitoring}
		app.logger.Info("changing state to ", v)
		app.state.ChangeView(v)
	case "u":
		v := state.View{Kind: state.Monitoring}
		app.logger.Info("updating screen, changing state to ", v)
		app.state.ChangeView(v)
	case "h":
		app.logger.Info("changed hide boolean")
		app.state.ToggleHideSensitive()
	}
}

func (app *Application) resizeAll() {
	for _, ctl := range []ui.Controller{app.mainScreen, app.monitorScreen, app.errorScreen} {
		ctl.Resize()
	}
}

func (app *Application) startPollingProbe(ctx context.Context, interval time.Duration) <-chan probe.Result {
	stream := make(chan probe.Result, 1)

	go func() {

		defer func() {
			close(stream)

			if err := recover(); err != nil {
				app.logger.Error(fmt.Sprintf("panic recover: %s", err))
			}
		}()

		stream <- app.probe.Check(ctx)

		tick := time.Tick(interval)

		for {
			select {
			case <-ctx.Done():
				return
			case <-tick:
				app.logger.Debug("Checking internet reachability")
				result := app.probe.Check(ctx)
				// latest result wins, never block on a busy consumer
				select {
				case stream <- result:
				default:
				}
			}
		}
	}()

	return stream
}
