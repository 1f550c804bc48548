// Command rtt runs the render to texture demo on the hardware model, in a
// window or headless.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/AntonioND/nds-rtt-example/drivers/console"
	"github.com/AntonioND/nds-rtt-example/drivers/controller"
	"github.com/AntonioND/nds-rtt-example/drivers/display"
	"github.com/AntonioND/nds-rtt-example/hw"
	"github.com/AntonioND/nds-rtt-example/machine"
	"github.com/AntonioND/nds-rtt-example/rtt"
)

const usageString = `Render to texture demo for the Nintendo DS hardware model.

Usage: %s [flags]

Keys: arrows rotate the small cube, X/Z scale it.  F1 toggles the FPS
counter.

`

var (
	configFile  = flag.String("config", "", "YAML configuration `file`")
	scale       = flag.Int("scale", 1, "window scale")
	tps         = flag.Int("tps", 60, "frames per second")
	showFPS     = flag.Bool("fps", false, "show the FPS counter")
	headless    = flag.Bool("headless", false, "run without a window")
	frames      = flag.Uint64("frames", 0, "stop after `n` frames, 0 runs forever")
	hold        = flag.String("hold", "", "keys held in headless mode, e.g. A,LEFT")
	screenshot  = flag.String("screenshot", "", "write both screens as PNG to `file` on exit")
	displayMode = flag.String("display", "3d", "main screen mode: 3d | framebuffer")
	texFormat   = flag.String("texture", "RGB5A1", "texture format: RGB5A1 | PAL256")
	verbose     = flag.Bool("v", false, "log per frame events")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(1)
	}

	fc, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalln(err)
	}
	applyConfig(fc)

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	hw.SetLogger(logger)

	var cfg rtt.Config
	if cfg.DisplayMode, err = rtt.ParseDisplayMode(*displayMode); err != nil {
		log.Fatalln(err)
	}
	if cfg.TextureFormat, err = rtt.ParseTextureFormat(*texFormat); err != nil {
		log.Fatalln(err)
	}

	m := machine.New()
	con := console.New(m.Sub)
	var debugPort machine.DebugWriter
	defer debugPort.Flush()

	loop, err := rtt.New(rtt.Hardware{
		Renderer: m.GX,
		Capture:  m,
		Display:  m.Main,
		Input:    controller.New(&m.Keypad),
		VBlank:   m,
		Console:  io.MultiWriter(con, &debugPort),
	}, cfg)
	if err != nil {
		slog.Error("setup failed, halting", "err", err)
	}

	scr := &display.Screens{Main: m.MainScreen(), Console: con}
	step := func() error {
		loop.Frame()
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *headless {
		keys, err := parseKeys(*hold)
		if err != nil {
			log.Fatalln(err)
		}
		err = display.RunHeadless(ctx, display.HeadlessConfig{
			Hz:     *tps,
			Frames: *frames,
			Hold:   keys,
		}, &m.Keypad, step)
		if err != nil && ctx.Err() == nil {
			log.Fatalln(err)
		}
	} else {
		bindings := display.DefaultBindings()
		if len(fc.Keys) > 0 {
			if bindings, err = display.ParseBindings(fc.Keys); err != nil {
				log.Fatalln(err)
			}
		}
		err = display.RunWindow(display.WindowConfig{
			Title:   "RTT Demo",
			Scale:   *scale,
			TPS:     *tps,
			ShowFPS: *showFPS,
			Keys:    bindings,
		}, scr, &m.Keypad, step)
		if err != nil {
			log.Fatalln(err)
		}
	}
	slog.Info("stopped", "frames", m.Frame(), "captures", m.Capture.Captures())

	if *screenshot != "" {
		if err := writePNG(*screenshot, scr); err != nil {
			log.Fatalln(err)
		}
	}
}

// applyConfig copies values from the configuration file into the flags
// not given on the command line.
func applyConfig(fc *fileConfig) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["scale"] && fc.Scale > 0 {
		*scale = fc.Scale
	}
	if !set["tps"] && fc.TPS > 0 {
		*tps = fc.TPS
	}
	if !set["fps"] && fc.FPS {
		*showFPS = true
	}
	if !set["display"] && fc.DisplayMode != "" {
		*displayMode = fc.DisplayMode
	}
	if !set["texture"] && fc.TextureFormat != "" {
		*texFormat = fc.TextureFormat
	}
	h := fc.Headless
	if !set["headless"] && h.Enabled {
		*headless = true
	}
	if !set["frames"] && h.Frames > 0 {
		*frames = h.Frames
	}
	if !set["hold"] && len(h.Hold) > 0 {
		*hold = strings.Join(h.Hold, ",")
	}
	if !set["screenshot"] && h.Screenshot != "" {
		*screenshot = h.Screenshot
	}
}

func writePNG(name string, scr *display.Screens) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, scr.Snapshot()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
