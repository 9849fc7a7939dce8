package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"
)

// MemorySampleRate is how often memory is dumped, in Hz. Values below 1 keep
// the number of dump files manageable.
var MemorySampleRate = 0.5

var (
	cpuProfileFile *os.File
	memProfiler    *memoryProfiler
)

type memoryProfiler struct {
	dumpDir   string
	heapDumps [][]byte
	stop      chan struct{}
}

// startProfiling enables the requested profilers for the lifetime of one
// command run. Empty paths disable the corresponding profiler.
func startProfiling(cpuProfilePath, memProfileDir string) error {
	if cpuProfilePath != "" {
		f, err := os.Create(cpuProfilePath)
		if err != nil {
			return fmt.Errorf("creating CPU profile output: %w", err)
		}
		if err = pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return fmt.Errorf("starting CPU profiler: %w", err)
		}
		cpuProfileFile = f
	}

	if memProfileDir != "" && MemorySampleRate > 0 {
		memProfiler = &memoryProfiler{dumpDir: memProfileDir, stop: make(chan struct{})}
		go memProfiler.run()
	}
	return nil
}

func stopProfiling() {
	if cpuProfileFile != nil {
		pprof.StopCPUProfile()
		cpuProfileFile.Close()
		cpuProfileFile = nil
	}
	if memProfiler != nil {
		close(memProfiler.stop)
		memProfiler.dump()
		memProfiler.writeDumps()
		memProfiler = nil
	}
}

func (p *memoryProfiler) run() {
	ticker := time.NewTicker(time.Duration((1/MemorySampleRate)*1000) * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			p.dump()
		}
	}
}

func (p *memoryProfiler) dump() {
	w := bytes.NewBuffer(nil)
	if err := pprof.WriteHeapProfile(w); err == nil {
		p.heapDumps = append(p.heapDumps, w.Bytes())
	}
}

func (p *memoryProfiler) writeDumps() {
	_ = os.MkdirAll(p.dumpDir, os.ModePerm)
	for dumpIdx, heapDump := range p.heapDumps {
		path := filepath.Join(p.dumpDir, fmt.Sprintf("mem-%d.mprof", dumpIdx))
		if err := os.WriteFile(path, heapDump, 0664); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing memory profile to disk: %v\n", err)
		}
	}
}
