package game

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

// Profiler records a CPU profile and an execution trace for a whole run
type Profiler struct {
	cpuFile   *os.File
	traceFile *os.File
	basePath  string
	logger    *slog.Logger
}

// StartProfiler begins writing basePath.cpu.prof and basePath.trace
func StartProfiler(basePath string, logger *slog.Logger) (*Profiler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if dir := filepath.Dir(basePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create profile directory: %w", err)
		}
	}

	p := &Profiler{basePath: basePath, logger: logger}

	cpuFile, err := os.Create(basePath + ".cpu.prof")
	if err != nil {
		return nil, fmt.Errorf("failed to create profile file: %w", err)
	}
	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		cpuFile.Close()
		return nil, fmt.Errorf("failed to start CPU profile: %w", err)
	}
	p.cpuFile = cpuFile

	traceFile, err := os.Create(basePath + ".trace")
	if err != nil {
		p.Stop()
		return nil, fmt.Errorf("failed to create trace file: %w", err)
	}
	if err := trace.Start(traceFile); err != nil {
		traceFile.Close()
		p.Stop()
		return nil, fmt.Errorf("failed to start trace: %w", err)
	}
	p.traceFile = traceFile

	return p, nil
}

// Stop flushes both captures and logs where they were written
func (p *Profiler) Stop() error {
	var errs []error
	if p.traceFile != nil {
		trace.Stop()
		errs = append(errs, p.traceFile.Close())
		p.traceFile = nil
	}
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		errs = append(errs, p.cpuFile.Close())
		p.cpuFile = nil
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.logger.Info("profile saved",
		"cpu", p.basePath+".cpu.prof",
		"trace", p.basePath+".trace",
		"num_gc", m.NumGC,
		"heap_alloc_kb", m.HeapAlloc/1024)

	return errors.Join(errs...)
}
