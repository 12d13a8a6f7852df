package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	tui "github.com/grindlemire/go-tui-retained"
	"golang.org/x/term"
)

// runDemo implements the demo subcommand.
func runDemo(args []string) error {
	var opts []tui.AppOption
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if i+1 >= len(args) {
			return fmt.Errorf("unknown or incomplete option: %s", arg)
		}
		value := args[i+1]
		i++
		switch arg {
		case "--theme", "-theme":
			opts = append(opts, tui.WithThemeFile(value))
		case "--log", "-log":
			opts = append(opts, tui.WithDebugLog(value))
		case "--fps", "-fps":
			fps, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid frame rate %q: %w", value, err)
			}
			opts = append(opts, tui.WithFrameRate(fps))
		default:
			return fmt.Errorf("unknown option: %s", arg)
		}
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("demo needs a terminal on stdout")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	input := tui.NewTcellInput(screen)
	clock := tui.NewLabel("")
	var app *tui.Application
	opts = append(opts,
		tui.WithKeyMap(tui.KeyMap{
			tui.OnCtrlStop('q', func(tui.KeyInput) { app.Stop() }),
		}),
		tui.WithWatchers(tui.OnTimer(time.Second, func(now time.Time) {
			if clock.IsEnabled() {
				clock.SetText(now.Format("15:04:05"))
			}
		})),
	)
	app, err = tui.NewApplication(tui.NewTcellSurface(screen), input, opts...)
	if err != nil {
		return err
	}
	if err := buildDemo(app, clock); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// demo holds the views the demo updates after construction.
type demo struct {
	app    *tui.Application
	clock  *tui.Label
	status *tui.Label
	clicks int
}

// buildDemo lays out a framed window with a few widgets and a dialog.
func buildDemo(app *tui.Application, clock *tui.Label) error {
	d := &demo{app: app, clock: clock}

	window := tui.NewWindow("go-tui-retained")
	if err := window.SetLayout(tui.At(2), tui.At(1), tui.Fill().Minus(2), tui.Fill().Minus(1)); err != nil {
		return err
	}
	if err := app.Root().AddChild(window.View); err != nil {
		return err
	}

	intro := tui.NewLabel("Tab moves focus. Enter, Space, and the mouse activate. Ctrl+Q quits.")
	d.status = tui.NewLabel("")
	showClock := tui.NewCheckBox("Show the clock", true)
	count := tui.NewButton("Count")
	dialog := tui.NewButton("Dialog")
	quit := tui.NewButton("Quit")

	layout := []struct {
		view *tui.View
		x    tui.Position
		y    tui.Position
		w    tui.Dimension
	}{
		{view: intro.View, x: tui.At(1), y: tui.At(1), w: tui.Fill().Minus(1)},
		{view: showClock.View, x: tui.At(1), y: tui.At(3), w: showClock.Width()},
		{view: count.View, x: tui.At(1), y: tui.At(5), w: count.Width()},
		{view: dialog.View, x: tui.RightOf(count.View).Plus(2), y: tui.At(5), w: dialog.Width()},
		{view: quit.View, x: tui.RightOf(dialog.View).Plus(2), y: tui.At(5), w: quit.Width()},
		{view: d.status.View, x: tui.At(1), y: tui.At(7), w: tui.Fill().Minus(1)},
		{view: d.clock.View, x: tui.FromEnd(9), y: tui.FromEnd(1), w: tui.Sized(8)},
	}
	for _, l := range layout {
		if err := window.AddChild(l.view); err != nil {
			return err
		}
	}
	// Sibling expressions are set once every view is in place.
	for _, l := range layout {
		if err := l.view.SetLayout(l.x, l.y, l.w, tui.Sized(1)); err != nil {
			return err
		}
	}

	count.Clicked().On(func(tui.ViewEvent) {
		d.clicks++
		d.status.SetText(fmt.Sprintf("Count pressed %d times", d.clicks))
	})
	showClock.Changed().On(func(ev tui.ValueChangedEvent[bool]) {
		if !ev.NewValue {
			d.clock.SetText("")
		}
		d.clock.SetEnabled(ev.NewValue)
	})
	dialog.Clicked().On(func(tui.ViewEvent) { d.showDialog() })
	quit.Clicked().On(func(tui.ViewEvent) { app.Stop() })
	return nil
}

func (d *demo) showDialog() {
	modal := tui.NewModalView("Dialog", 36, 7)
	message := tui.NewLabel("Escape or OK closes this dialog.")
	ok := tui.NewButton("OK")
	for _, v := range []*tui.View{message.View, ok.View} {
		if err := modal.AddChild(v); err != nil {
			d.status.SetText(err.Error())
			return
		}
	}
	_ = message.SetLayout(tui.At(1), tui.At(1), message.Width(), message.Height())
	_ = ok.SetLayout(tui.Center(), tui.At(3), ok.Width(), ok.Height())
	ok.Clicked().On(func(tui.ViewEvent) { _ = modal.Dismiss() })
	if err := modal.Show(d.app); err != nil {
		d.status.SetText(err.Error())
	}
}
