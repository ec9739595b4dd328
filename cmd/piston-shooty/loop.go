package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/GamesFromRust/piston-shooty/game"
	"github.com/GamesFromRust/piston-shooty/input"
	"github.com/GamesFromRust/piston-shooty/parameter"
	"github.com/GamesFromRust/piston-shooty/render"
)

// errQuit ends the frame loop on Escape or Ctrl-C
var errQuit = errors.New("quit")

// finiOnce makes screen teardown safe to call from both the loop and main
func finiOnce(screen tcell.Screen) func() {
	var once sync.Once
	return func() { once.Do(screen.Fini) }
}

// recoverCrash restores the terminal before printing a panic and its stack
func recoverCrash(fini func(), what string) {
	if r := recover(); r != nil {
		fini()
		// \r\n for raw mode compatibility
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", what, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}

// runLoop polls input on one goroutine and simulates and renders on another
// All game state is touched only by the frame goroutine
func runLoop(screen tcell.Screen, fini func(), machine *game.Machine) error {
	g, ctx := errgroup.WithContext(context.Background())
	events := make(chan tcell.Event, 256)

	g.Go(func() error {
		defer recoverCrash(fini, "EVENT POLLER")
		for {
			// nil once the screen is finalized
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer recoverCrash(fini, "GAME")
		// Unblocks the poller
		defer fini()
		return frameLoop(ctx, screen, events, machine)
	})

	return g.Wait()
}

func frameLoop(ctx context.Context, screen tcell.Screen, events <-chan tcell.Event, machine *game.Machine) error {
	tracker := input.NewTracker()
	canvas := render.NewScreen(screen)

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				canvas.Resize()
				continue
			}
			input.FromTcell(ev, tracker, canvas.CellToWorld)

		case now := <-ticker.C:
			dt := min(now.Sub(last), parameter.MaxFrameDelta)
			last = now

			snap := tracker.Snapshot()
			if snap.KeyPressed(input.KeyEscape) || snap.KeyPressed(input.KeyQuit) {
				return errQuit
			}

			if err := machine.Update(snap, dt.Seconds()); err != nil {
				return err
			}

			canvas.Clear()
			machine.Render(canvas)
			canvas.Show(now)

			tracker.EndFrame()
		}
	}
}
