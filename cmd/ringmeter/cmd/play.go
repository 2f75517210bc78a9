package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/ringmeter/pkg/animation"
	"github.com/go-drift/ringmeter/pkg/errors"
	"github.com/go-drift/ringmeter/pkg/ringgraph"
	"github.com/go-drift/ringmeter/pkg/term"
)

func init() {
	RegisterCommand(&Command{
		Name:  "play",
		Short: "Animate the ring graph in the terminal",
		Long: `Animate the ring graph in the terminal at the configured frame rate.

Keys:
  a, space     Animate again (restarts a running animation)
  q, Esc       Quit

Flags:
  --config FILE   Graph description (default: ./ringmeter.yaml if present)
  --preset NAME   Overlay preset: none, central or meters`,
		Usage: "ringmeter play [--config FILE] [--preset NAME]",
		Run:   runPlay,
	})
}

func runPlay(args []string) error {
	opts, err := parseGraphOptions(args)
	if err != nil {
		return err
	}
	if len(opts.rest) > 0 {
		return fmt.Errorf("unknown flag: %s", opts.rest[0])
	}
	cfg, err := opts.resolve()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.New("tcell.NewScreen", errors.KindInit, err)
	}
	if err := screen.Init(); err != nil {
		return errors.New("tcell.Init", errors.KindInit, err)
	}
	defer screen.Fini()

	painter := term.NewPainter(cfg.Graph, screen)
	painter.Background = cfg.Background
	return playLoop(screen, painter, cfg.Graph, cfg.Preset, cfg.Duration, cfg.FrameInterval())
}

// playLoop runs until the user quits. Input is polled on its own goroutine
// and handed to the frame loop, so every surface call happens on the
// goroutine that steps frames.
func playLoop(screen tcell.Screen, painter *term.Painter, graph *ringgraph.RingGraph, preset ringgraph.DescriptionPreset, duration, interval time.Duration) (err error) {
	defer errors.RecoverWithCallback("play.Loop", func(r any) {
		err = fmt.Errorf("play loop panicked: %v", r)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scheduler := animation.NewFrameScheduler()
	newSurface := func() *ringgraph.Surface {
		return ringgraph.NewSurface(ringgraph.SurfaceConfig{
			Frame:    painter.Rect(),
			Graph:    graph,
			Preset:   preset,
			Painter:  painter,
			Frames:   scheduler,
			Duration: duration,
		})
	}
	surface := newSurface()
	defer func() { surface.Dispose() }()

	present := func() {
		painter.DrawOverlays(surface.Overlays())
		screen.Show()
	}

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	surface.Animate()

	err = scheduler.Run(ctx, interval, func() {
		for {
			select {
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
						cancel()
						return
					}
					if ev.Rune() == 'a' || ev.Rune() == ' ' {
						surface.Animate()
					}
				case *tcell.EventResize:
					// Overlay frames come from the layout at construction.
					screen.Sync()
					wasAnimating := surface.IsAnimating()
					surface.Dispose()
					surface = newSurface()
					if wasAnimating {
						surface.Animate()
					} else {
						surface.Draw(painter.Rect())
					}
				}
			default:
				if surface.IsAnimating() || surface.DrawCount() > 0 {
					present()
				}
				return
			}
		}
	})
	if err == context.Canceled {
		return nil
	}
	return err
}
