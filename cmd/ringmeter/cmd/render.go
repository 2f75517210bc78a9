package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-drift/ringmeter/pkg/animation"
	"github.com/go-drift/ringmeter/pkg/errors"
	"github.com/go-drift/ringmeter/pkg/raster"
	"github.com/go-drift/ringmeter/pkg/ringgraph"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render an animation to PNG frames",
		Long: `Render one fill animation to PNG files, one per display frame.

Frames are stepped at the configured frame rate without waiting for real
time, so the output is deterministic. The first file shows the resting
graph, the rest show the animation until it completes.

Flags:
  --config FILE   Graph description (default: ./ringmeter.yaml if present)
  --preset NAME   Overlay preset: none, central or meters
  --out DIR       Output directory (default: frames)`,
		Usage: "ringmeter render [--config FILE] [--preset NAME] [--out DIR]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	opts, err := parseGraphOptions(args)
	if err != nil {
		return err
	}
	outDir := "frames"
	for i := 0; i < len(opts.rest); i++ {
		switch opts.rest[i] {
		case "--out":
			if i+1 >= len(opts.rest) {
				return fmt.Errorf("--out requires a directory path")
			}
			outDir = opts.rest[i+1]
			i++
		default:
			return fmt.Errorf("unknown flag: %s", opts.rest[i])
		}
	}

	cfg, err := opts.resolve()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", outDir, err)
	}

	painter := raster.NewPainter(cfg.Graph, cfg.Width, cfg.Height)
	painter.Background = cfg.Background
	scheduler := animation.NewFrameScheduler()
	surface := ringgraph.NewSurface(ringgraph.SurfaceConfig{
		Frame:    painter.Bounds(),
		Graph:    cfg.Graph,
		Preset:   cfg.Preset,
		Painter:  painter,
		Frames:   scheduler,
		Duration: cfg.Duration,
	})
	defer surface.Dispose()

	frame := 0
	write := func() error {
		painter.DrawOverlays(surface.Overlays())
		path := filepath.Join(outDir, fmt.Sprintf("frame_%04d.png", frame))
		if err := writePNG(painter, path); err != nil {
			e := &errors.Error{Op: "raster.WritePNG", Kind: errors.KindRender, Err: err, Frame: uint64(frame)}
			errors.Report(e)
			return e
		}
		frame++
		return nil
	}

	surface.Draw(surface.Frame())
	if err := write(); err != nil {
		return err
	}

	surface.Animate()
	interval := cfg.FrameInterval()
	for surface.IsAnimating() {
		scheduler.StepFrame(interval)
		if err := write(); err != nil {
			return err
		}
	}

	fmt.Printf("Wrote %d frames to %s (%s, %d fps)\n", frame, outDir, cfg.Duration, cfg.FPS)
	return nil
}

func writePNG(painter *raster.Painter, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return painter.WritePNG(f)
}
