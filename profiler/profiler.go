// Package profiler captures CPU profiles and execution traces when simulation ticks run over budget.
package profiler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"skyraid/observability"
)

var (
	// ErrCooldown is returned when a capture was taken too recently
	ErrCooldown = errors.New("capture on cooldown")
	// ErrBusy is returned while another capture is running
	ErrBusy = errors.New("already profiling")
)

// Profiler watches tick durations and captures a profile when one exceeds the budget
type Profiler struct {
	mu              sync.Mutex
	wg              sync.WaitGroup
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	budget          time.Duration
	profilesDir     string
	captures        int
	log             observability.Logger
	now             func() time.Time
}

// Option configures a Profiler
type Option func(*Profiler)

// WithBudget sets the tick duration above which a capture starts
func WithBudget(d time.Duration) Option {
	return func(p *Profiler) { p.budget = d }
}

// WithCooldown sets the minimum gap between captures
func WithCooldown(d time.Duration) Option {
	return func(p *Profiler) { p.captureCooldown = d }
}

// WithCaptureDuration sets how long each capture records
func WithCaptureDuration(d time.Duration) Option {
	return func(p *Profiler) { p.captureDuration = d }
}

// WithLogger sets the logger
func WithLogger(l observability.Logger) Option {
	return func(p *Profiler) { p.log = l }
}

// New creates a profiler writing into dir.
// The default budget is two frames at 60 FPS.
func New(dir string, opts ...Option) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profiles dir: %w", err)
	}
	p := &Profiler{
		captureCooldown: 10 * time.Second,
		captureDuration: 5 * time.Second,
		budget:          time.Second / 30,
		profilesDir:     dir,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Observe records one tick duration and starts a background capture when it is over budget.
// It reports whether a capture was started.
func (p *Profiler) Observe(tick time.Duration) bool {
	if tick <= p.budget {
		return false
	}
	err := p.CaptureProfile("slow-tick")
	if err != nil {
		if !errors.Is(err, ErrCooldown) && !errors.Is(err, ErrBusy) {
			p.log.Warnf("profile capture: %v", err)
		}
		return false
	}
	p.log.Infof("tick took %v (budget %v), capturing profile", tick, p.budget)
	return true
}

// CaptureProfile starts a CPU profile and trace in the background
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.lastCaptureTime.IsZero() && p.now().Sub(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("%w (last capture was %v ago)", ErrCooldown, p.now().Sub(p.lastCaptureTime))
	}
	if p.isProfiling {
		return ErrBusy
	}
	p.isProfiling = true
	p.lastCaptureTime = p.now()
	baseName := p.baseName(reason)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()
		if err := p.capture(baseName, p.captureDuration); err != nil {
			p.log.Errorf("capture %s: %v", baseName, err)
		}
	}()
	return nil
}

// CaptureProfileSync captures synchronously, ignoring the cooldown.
func (p *Profiler) CaptureProfileSync(reason string, duration time.Duration) error {
	p.mu.Lock()
	if p.isProfiling {
		p.mu.Unlock()
		return ErrBusy
	}
	p.isProfiling = true
	p.lastCaptureTime = p.now()
	baseName := p.baseName(reason)
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.isProfiling = false
		p.mu.Unlock()
	}()
	return p.capture(baseName, duration)
}

func (p *Profiler) baseName(reason string) string {
	p.captures++
	return fmt.Sprintf("%s-%s-%d", reason, p.now().Format("20060102-150405"), p.captures)
}

// capture records the CPU profile and the trace in parallel
func (p *Profiler) capture(baseName string, duration time.Duration) error {
	var wg sync.WaitGroup
	var cpuErr, traceErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		cpuErr = p.captureCPUProfile(baseName, duration)
	}()
	go func() {
		defer wg.Done()
		traceErr = p.captureTrace(baseName, duration)
	}()
	wg.Wait()

	p.summarize(baseName)
	return errors.Join(cpuErr, traceErr)
}

func (p *Profiler) captureCPUProfile(baseName string, duration time.Duration) error {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("start CPU profile: %w", err)
	}
	time.Sleep(duration)
	pprof.StopCPUProfile()
	return nil
}

func (p *Profiler) captureTrace(baseName string, duration time.Duration) error {
	path := filepath.Join(p.profilesDir, baseName+".trace")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("start trace: %w", err)
	}
	time.Sleep(duration)
	trace.Stop()
	return nil
}

// summarize logs where the capture went plus a memory snapshot
func (p *Profiler) summarize(baseName string) {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	info, err := os.Stat(path)
	if err != nil {
		p.log.Warnf("could not stat profile: %v", err)
		return
	}
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.log.Infof("profile %s (%.2f KB), view with: go tool pprof -http=:8080 %s; alloc=%dKB sys=%dKB gc=%d heapObjects=%d",
		baseName, float64(info.Size())/1024, path, m.Alloc/1024, m.Sys/1024, m.NumGC, m.HeapObjects)
}

// IsProfiling reports whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

// Wait blocks until any background capture finishes
func (p *Profiler) Wait() {
	p.wg.Wait()
}
