package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/familiar/audio"
	"github.com/lixenwraith/familiar/avatar"
	"github.com/lixenwraith/familiar/config"
	"github.com/lixenwraith/familiar/parameter"
	"github.com/lixenwraith/familiar/render"
	"github.com/lixenwraith/familiar/render/renderer"
	"github.com/lixenwraith/familiar/terminal"
)

var (
	colorModeFlag = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides config)")
	faceFlag      = flag.String("face", "", "Starting face: orb, figure (overrides config)")
	logFlag       = flag.String("log", "", "Write diagnostics to this file")
	demoFlag      = flag.Bool("demo", false, "Cycle through activity phases automatically")
)

func main() {
	// Panic recovery: restore the terminal to a sane state before the
	// error and stack trace hit stderr
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mFAMILIAR CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	log.SetOutput(io.Discard)
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfgPath, err := config.DefaultPath()
	if err != nil {
		log.Printf("config path unavailable: %v", err)
	}
	cfg := config.Default()
	if cfgPath != "" {
		if cfg, err = config.Load(cfgPath); err != nil {
			log.Printf("config load failed, using defaults: %v", err)
		}
	}

	// Flags override persisted preferences
	colorPref := cfg.ColorMode
	if *colorModeFlag != "" {
		colorPref = *colorModeFlag
	}
	colorMode, detect, err := config.ParseColorMode(colorPref)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if detect {
		colorMode = terminal.DetectColorMode()
	}

	facePref := cfg.Face
	if *faceFlag != "" {
		facePref = *faceFlag
	}

	term := terminal.New(colorMode)
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer term.Fini()

	// Audio is optional: a headless or deviceless host still animates
	var chime *audio.Engine
	if cfg.Chime {
		if chime, err = audio.NewEngine(); err != nil {
			log.Printf("audio unavailable, continuing silent: %v", err)
		}
		defer chime.Close()
	}

	store := avatar.NewStore()
	host := render.NewHost(store, renderer.NewOrbPainter(), renderer.NewFigurePainter())
	if err := host.SetFace(render.ParseFace(facePref)); err != nil {
		log.Printf("backend selection: %v", err)
	}
	defer host.Teardown()

	d := newDrivers(store, chime, host, cfgPath, cfg)
	d.start(*demoFlag)
	defer d.stop()

	width, height := term.Size()
	frame := render.NewFrame(width, height)

	eventChan := make(chan terminal.Event, 256)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				terminal.EmergencyReset(os.Stdout)
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := term.PollEvent()
			if ev.Type == terminal.EventClosed || ev.Type == terminal.EventError {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(parameter.FrameInterval)
	defer frameTicker.Stop()

	renderCtx := render.Context{
		Width:  width,
		Height: height,
		Delta:  parameter.FrameDelta,
	}

	for {
		select {
		case ev := <-eventChan:
			if !d.handleEvent(ev) {
				return
			}
			if ev.Type == terminal.EventResize {
				width, height = ev.Width, ev.Height
				frame.Resize(width, height)
				renderCtx.Width = width
				renderCtx.Height = height
				term.Sync()
			}

		case <-frameTicker.C:
			host.Tick(renderCtx, frame)
			if d.statusVisible() {
				d.drawStatus(frame, host.Current())
			}
			term.Flush(frame.Cells(), width, height)
		}
	}
}
