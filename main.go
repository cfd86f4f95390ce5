package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configFile := flag.String("config", "", "Path to config file (default: ~/.config/audioscope/config.yaml)")
	fps := flag.Int("fps", 0, "Target frames per second (default: 30)")
	rate := flag.Int("rate", 0, "Capture sample rate in Hz (default: 44100)")
	block := flag.Int("block", 0, "Samples per block (default: 1024)")
	demo := flag.Bool("demo", false, "Demo mode with synthetic audio (no audio input needed)")
	flag.Parse()

	cfg := DefaultConfig()
	cfg.TryLoadDefault()

	if *configFile != "" {
		if err := cfg.LoadFromFile(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	if *fps > 0 {
		cfg.FPS = *fps
	}
	if *rate > 0 {
		cfg.Audio.SampleRate = *rate
	}
	if *block > 0 {
		cfg.Audio.BlockSize = *block
	}
	cfg.DemoMode = *demo

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Foreground(tcell.ColorWhite))
	screen.Clear()

	var source Source
	audioErr := ""

	if cfg.DemoMode {
		source = NewDemoSource(cfg.Audio.SampleRate, cfg.Audio.BlockSize)
	} else {
		pc, err := NewPulseCapture(cfg.Audio.SampleRate, cfg.Audio.BlockSize)
		if err != nil {
			audioErr = err.Error()
			source = NewDemoSource(cfg.Audio.SampleRate, cfg.Audio.BlockSize)
			cfg.DemoMode = true
		} else {
			source = pc
		}
	}
	defer source.Close()

	comp := NewCompositor(cfg)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	eventCh := make(chan tcell.Event, 32)
	quitEventLoop := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventCh <- ev:
			case <-quitEventLoop:
				return
			}
		}
	}()

	showAudioErr := audioErr != ""
	audioErrTimeout := time.Now().Add(5 * time.Second)
	running := true

	for running {
		select {
		case <-sigCh:
			running = false

		case ev := <-eventCh:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					running = false
				case tcell.KeyRune:
					if ev.Rune() == 'q' || ev.Rune() == 'Q' {
						running = false
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			blockSamples := source.Read()

			w, h := screen.Size()
			if w < 2 || h < 2 {
				continue
			}

			grid := NewGrid(w, h-1)
			comp.Render(grid, blockSamples)

			screen.Clear()
			grid.Flush(screen)
			drawStatusBar(screen, w, h, cfg)

			if showAudioErr && time.Now().Before(audioErrTimeout) {
				drawNotification(screen, w, "Audio: "+audioErr+" (using demo mode)", tcell.ColorYellow)
			} else {
				showAudioErr = false
			}

			screen.Show()
		}
	}

	close(quitEventLoop)
}

func drawStatusBar(screen tcell.Screen, w, h int, cfg *Config) {
	y := h - 1

	mode := "♪ LIVE"
	if cfg.DemoMode {
		mode = "♪ DEMO"
	}

	status := fmt.Sprintf(" %s │ %d Hz │ block %d │ %d fps │ q:quit ",
		mode, cfg.Audio.SampleRate, cfg.Audio.BlockSize, cfg.FPS)

	barStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 120, 140))
	accentStyle := barStyle.Foreground(tcell.NewRGBColor(100, 200, 255))
	dimStyle := barStyle.Foreground(tcell.NewRGBColor(80, 80, 100))

	x := 0
	for _, ch := range status {
		if x >= w {
			break
		}
		s := barStyle
		if ch == '│' {
			s = dimStyle
		} else if ch == '♪' {
			s = accentStyle
		}
		screen.SetContent(x, y, ch, nil, s)
		x++
	}
}

func drawNotification(screen tcell.Screen, w int, msg string, color tcell.Color) {
	y := 1
	x := (w - len(msg) - 4) / 2
	if x < 0 {
		x = 0
	}

	style := tcell.StyleDefault.Foreground(color)

	text := "  " + msg + "  "
	for i, ch := range text {
		if x+i < w {
			screen.SetContent(x+i, y, ch, nil, style)
		}
	}
}
