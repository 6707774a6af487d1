// Package bigpicture is the fullscreen cover browser: it loads the Lutris
// catalog in the background, draws one pane of covers at a time and
// launches the selected game.
package bigpicture

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	ebitenuiInput "github.com/ebitenui/ebitenui/input"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/redmie/lutrisview/catalog"
	"github.com/redmie/lutrisview/locale"
	"github.com/redmie/lutrisview/power"
	"github.com/redmie/lutrisview/screens"
	"github.com/redmie/lutrisview/storage"
	"github.com/redmie/lutrisview/style"
	"github.com/redmie/lutrisview/workers"
)

// App is the application state. It is created once by Run, driven by
// ebiten's Update and Draw on a single goroutine, and torn down when the
// loop ends.
type App struct {
	config *storage.Config
	loc    *locale.Localizer

	view      *View
	router    *Router
	input     InputSource
	refresher *Refresher
	assets    *AssetCache
	launcher  *Launcher

	notification *Notification
	chime        []byte

	splash   *splashScreen
	library  *libraryScreen
	exitMenu *screens.ExitMenuScreen
	ui       *ebitenui.UI

	defaultExit power.Action
	exitAction  power.Action
	quitting    bool

	currentDPIScale float64
}

// Run opens the window, runs the browser until the user leaves and then
// performs the chosen exit action.
func Run(cfg *storage.Config, loc *locale.Localizer) error {
	ebiten.SetWindowTitle(loc.Get(locale.MsgTitle))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(640, 480, -1, -1)
	ebiten.SetTPS(style.TPS)

	app, err := newApp(cfg, loc, time.Now())
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if cfg.Window.Fullscreen {
		ebiten.SetFullscreen(true)
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	err = ebiten.RunGame(app)

	// A load in flight is abandoned; it holds nothing that needs cleanup
	app.refresher.Stop()
	app.notification.Close()

	if err != nil {
		return fmt.Errorf("failed to run game loop: %w", err)
	}

	app.performExit()
	return nil
}

func newApp(cfg *storage.Config, loc *locale.Localizer, now time.Time) (*App, error) {
	coverDir, err := storage.ResolveCoverDir(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cover directory: %w", err)
	}

	defaultExit, err := power.ParseAction(cfg.Exit.DefaultAction)
	if err != nil {
		return nil, err
	}

	a := &App{
		config:          cfg,
		loc:             loc,
		view:            NewView(now, style.SplashDwell),
		router:          NewRouter(),
		input:           NewEbitenInput(),
		assets:          NewAssetCache(coverDir),
		launcher:        NewLauncher(cfg.Lutris.Command, cfg.Lutris.LaunchArgs, nil),
		notification:    NewNotification(),
		splash:          newSplashScreen(loc),
		library:         newLibraryScreen(loc),
		defaultExit:     defaultExit,
		currentDPIScale: 1.0,
	}

	loader := catalog.NewLoader(cfg.Lutris.Command, cfg.Lutris.ListArgs)
	a.refresher = NewRefresher(workers.New[*catalog.Catalog](), loader.Load, a.assets.Prune)

	if cfg.Audio.Chime {
		a.chime = generateLaunchChime(cfg.Audio.Volume)
		sharedAudio()
	}

	a.exitMenu = screens.NewExitMenuScreen(a, loc, defaultExit)
	log.Printf("Reading covers from %s", coverDir)
	return a, nil
}

// Update advances one frame
func (a *App) Update() error {
	if a.quitting {
		return ebiten.Termination
	}

	now := time.Now()
	a.refresher.Update()
	if a.launcher.TakeFinished() {
		// Playtime and last-played changed
		a.refresher.RequestReload()
	}

	cat := a.refresher.Catalog()
	events := a.input.Poll()

	switch a.view.Mode() {
	case ModeSplash:
		syncUIInput()
		a.assets.EnsureLoaded(cat)
		a.handleSplashIntents(a.router.Update(now, events))
		if a.view.Advance(now, cat != nil, a.assets.FullyLoaded(cat)) {
			log.Printf("Showing library")
		}
	case ModeLibrary:
		syncUIInput()
		a.assets.EnsureLoaded(cat)
		a.handleLibraryIntents(now, cat, a.router.Update(now, events))
	case ModeExitMenu:
		a.handleMenuEvents(events)
		if a.ui != nil {
			a.ui.Update()
		}
	}

	if a.quitting {
		return ebiten.Termination
	}
	return nil
}

// syncUIInput keeps ebitenui's input handler current while the UI is not
// updated, so stale mouse state does not register as a click when the
// menu opens
func syncUIInput() {
	ebitenuiInput.Update()
	ebitenuiInput.AfterUpdate()
}

func (a *App) handleSplashIntents(intents []Intent) {
	for _, intent := range intents {
		switch intent {
		case IntentLaunch:
			if a.refresher.Failed() {
				a.refresher.RequestReload()
			}
		case IntentExitConfirmed:
			a.quit(a.defaultExit)
		}
	}
}

func (a *App) handleLibraryIntents(now time.Time, cat *catalog.Catalog, intents []Intent) {
	for _, intent := range intents {
		switch intent {
		case IntentMoveNext:
			a.view.Move(1)
		case IntentMovePrev:
			a.view.Move(-1)
		case IntentPaneForward:
			a.view.RotateForward()
		case IntentPaneBackward:
			a.view.RotateBackward()
		case IntentLaunch:
			a.launchSelected(now, cat)
		case IntentOpenMenu:
			a.openMenu()
		case IntentExitConfirmed:
			a.quit(a.defaultExit)
		}
	}
}

func (a *App) launchSelected(now time.Time, cat *catalog.Catalog) {
	g, ok := a.view.Selected(cat)
	if !ok {
		return
	}
	if !a.launcher.Launch(g) {
		log.Printf("Launch of %q ignored, a game is already running", g.Name)
		return
	}
	a.router.MarkLaunched(now)
	a.notification.ShowDefault(a.loc.Format(locale.MsgLaunching, map[string]any{"Name": g.Name}))
	if a.chime != nil {
		a.notification.PlaySound(a.chime)
	}
}

// handleMenuEvents maps controller input onto the menu's focus.
// ebitenui handles the keyboard's Enter and Space and the mouse itself,
// so only gamepad presses activate the focused button here.
func (a *App) handleMenuEvents(events []Event) {
	if a.ui == nil {
		return
	}
	a.restorePendingFocus(a.exitMenu)

	for _, ev := range events {
		if ev.Kind != EventControlDown {
			continue
		}
		switch ev.Control {
		case ControlLeft, ControlPaneBackward:
			a.ui.ChangeFocus(widget.FOCUS_PREVIOUS)
		case ControlRight, ControlPaneForward:
			a.ui.ChangeFocus(widget.FOCUS_NEXT)
		case ControlLaunch:
			if ev.Device != DeviceGamepad {
				continue
			}
			if btn, ok := a.ui.GetFocusedWidget().(*widget.Button); ok {
				btn.Click()
			}
		case ControlBack, ControlMenu:
			a.CancelExit()
		}
	}
}

func (a *App) restorePendingFocus(screen screens.FocusRestorer) {
	btn := screen.GetPendingFocusButton()
	if btn != nil {
		btn.Focus(true)
		screen.ClearPendingFocus()
	}
}

func (a *App) openMenu() {
	a.router.Reset()
	a.ui = &ebitenui.UI{Container: a.exitMenu.Build()}
	a.view.OpenMenu()
}

// ChooseExit ends the session with action
func (a *App) ChooseExit(action power.Action) {
	a.quit(action)
}

// CancelExit closes the exit menu
func (a *App) CancelExit() {
	a.view.CloseMenu()
	a.router.Reset()
	a.ui = nil
}

func (a *App) quit(action power.Action) {
	if a.quitting {
		return
	}
	log.Printf("Exiting to %s", action)
	a.exitAction = action
	a.quitting = true
}

// performExit runs the chosen session action. Failures are logged; the
// process exits either way.
func (a *App) performExit() {
	if err := power.Perform(context.Background(), a.exitAction, a.config.Exit.PrivilegeCommand, nil); err != nil {
		log.Printf("Failed to perform exit action: %v", err)
	}
}

// Draw renders the current mode
func (a *App) Draw(screen *ebiten.Image) {
	now := time.Now()
	cat := a.refresher.Catalog()

	switch a.view.Mode() {
	case ModeSplash:
		loaded, total := a.assets.Progress(cat)
		a.splash.Draw(screen, splashState{
			loaded:  loaded,
			total:   total,
			dwell:   a.view.DwellProgress(now),
			failure: loadFailure(a.refresher),
			now:     now,
		})
	case ModeLibrary:
		a.library.Draw(screen, libraryState{
			view:         a.view,
			catalog:      cat,
			assets:       a.assets,
			exitProgress: exitHoldProgress(a.router, now),
			now:          now,
		})
	case ModeExitMenu:
		if a.ui != nil {
			a.ui.Draw(screen)
		}
	}

	a.notification.Draw(screen)
}

// Layout returns physical pixel dimensions so covers render at full
// resolution on HiDPI screens
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := 1.0
	if m := ebiten.Monitor(); m != nil {
		s = m.DeviceScaleFactor()
	}
	if s != a.currentDPIScale {
		a.currentDPIScale = s
		style.SetDPIScale(s)
		// Covers and labels were rendered for the old scale
		a.assets = NewAssetCache(a.assets.dir)
		a.refresher.onCatalog = a.assets.Prune
		if a.view.Mode() == ModeExitMenu {
			a.ui = &ebitenui.UI{Container: a.exitMenu.Build()}
		}
	}

	return int(float64(outsideWidth) * s), int(float64(outsideHeight) * s)
}
