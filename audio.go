package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// Source delivers the most recent block of mono samples. Read never blocks;
// it returns the latest block the capture side has filled, so a slow render
// loop simply skips intermediate blocks (drop-and-replace).
type Source interface {
	Read() []float64
	Close()
}

// stallTimeout is how long the capture slot may go without a refill before
// Read reports silence instead of replaying a stale block.
const stallTimeout = time.Second

type PulseCapture struct {
	cmd       *exec.Cmd
	reader    io.ReadCloser
	blockSize int

	mu       sync.Mutex
	block    []float64
	lastFill time.Time
	running  bool
}

func monitorSource() (string, error) {
	out, err := exec.Command("pactl", "get-default-sink").Output()
	if err != nil {
		return "", fmt.Errorf("cannot get default sink: %w", err)
	}
	sink := strings.TrimSpace(string(out))
	if sink == "" {
		return "", fmt.Errorf("no default sink found")
	}
	return sink + ".monitor", nil
}

func NewPulseCapture(sampleRate, blockSize int) (*PulseCapture, error) {
	monitor, err := monitorSource()
	if err != nil {
		return nil, fmt.Errorf("failed to find monitor source: %w", err)
	}

	cmd := exec.Command("parec",
		"--format=float32le",
		fmt.Sprintf("--rate=%d", sampleRate),
		"--channels=1",
		fmt.Sprintf("--device=%s", monitor),
		"--latency-msec=25",
	)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start parec (is pulseaudio/pipewire-pulse installed?): %w", err)
	}

	pc := &PulseCapture{
		cmd:       cmd,
		reader:    stdout,
		blockSize: blockSize,
		block:     make([]float64, blockSize),
		running:   true,
	}

	go pc.readLoop()
	return pc, nil
}

func (pc *PulseCapture) readLoop() {
	buf := make([]byte, pc.blockSize*4)
	for pc.running {
		n, err := io.ReadFull(pc.reader, buf)
		if err != nil {
			if pc.running {
				time.Sleep(10 * time.Millisecond)
			}
			continue
		}

		count := n / 4
		block := make([]float64, count)
		for i := 0; i < count; i++ {
			bits := binary.LittleEndian.Uint32(buf[i*4 : i*4+4])
			block[i] = float64(math.Float32frombits(bits))
		}

		pc.mu.Lock()
		pc.block = block
		pc.lastFill = time.Now()
		pc.mu.Unlock()
	}
}

func (pc *PulseCapture) Read() []float64 {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if time.Since(pc.lastFill) > stallTimeout {
		return make([]float64, pc.blockSize)
	}
	out := make([]float64, len(pc.block))
	copy(out, pc.block)
	return out
}

func (pc *PulseCapture) Close() {
	pc.running = false
	if pc.cmd != nil && pc.cmd.Process != nil {
		_ = pc.cmd.Process.Kill()
		_ = pc.cmd.Wait()
	}
}

// DemoSource synthesizes a busy multi-tone signal so the scope has something
// to show when no capture backend is available.
type DemoSource struct {
	sampleRate float64
	blockSize  int
	time       float64
	tones      []demoTone
}

type demoTone struct {
	freq    float64
	amp     float64
	ampMod  float64
	ampModF float64
}

func NewDemoSource(sampleRate, blockSize int) *DemoSource {
	return &DemoSource{
		sampleRate: float64(sampleRate),
		blockSize:  blockSize,
		tones: []demoTone{
			{freq: 55, amp: 0.8, ampMod: 0.9, ampModF: 2.1},
			{freq: 110, amp: 0.5, ampMod: 0.8, ampModF: 1.05},
			{freq: 220, amp: 0.35, ampMod: 0.6, ampModF: 1.7},
			{freq: 440, amp: 0.3, ampMod: 0.8, ampModF: 0.8},
			{freq: 880, amp: 0.2, ampMod: 0.6, ampModF: 1.5},
			{freq: 1800, amp: 0.1, ampMod: 0.6, ampModF: 3.0},
			{freq: 3600, amp: 0.06, ampMod: 0.4, ampModF: 2.2},
			{freq: 8000, amp: 0.03, ampMod: 0.4, ampModF: 5.5},
		},
	}
}

func (ds *DemoSource) Read() []float64 {
	block := make([]float64, ds.blockSize)
	dt := 1.0 / ds.sampleRate

	for i := range block {
		t := ds.time + float64(i)*dt
		sample := 0.0
		for _, tone := range ds.tones {
			amp := tone.amp * (1 - tone.ampMod + tone.ampMod*math.Abs(math.Sin(2*math.Pi*tone.ampModF*t)))
			sample += amp * math.Sin(2*math.Pi*tone.freq*t)
		}
		sample += (rand.Float64()*2 - 1) * 0.01
		block[i] = sample * 0.3
	}

	ds.time += float64(ds.blockSize) * dt
	return block
}

func (ds *DemoSource) Close() {}
