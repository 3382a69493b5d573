/*
Copyright 2024 The stdf2atdf Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package stdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// maxWorkers is the hard ceiling on pool size regardless of CPU/memory
// headroom.
const maxWorkers = 8

// bytesPerWorker is the memory budget (2 x 500 MiB) allotted per worker.
const bytesPerWorker = 2 * 500 * 1024 * 1024

// DriverOptions configures a Driver.
type DriverOptions struct {
	// WorkerCap lowers (never raises) the computed pool size when > 0.
	WorkerCap int
	// Mask restricts which record types are decoded; nil means all.
	Mask RecordTypeMask
	// Hook is applied to every derived AtdfRecord; nil means no-op.
	Hook Hook
	// WriteATDF emits "<input-without-stdf-ext>.atdf" next to each input.
	WriteATDF bool
	// WriteDatabase emits "<input-without-stdf-ext>.db" via NewLoader.
	WriteDatabase bool
	// NewLoader opens a Loader writing to dbPath. Required if WriteDatabase
	// is set; the core package does not know how to construct one (it has
	// no SQL dependency — see store.SQLiteLoader).
	NewLoader func(dbPath string) (Loader, error)
}

// FileOutcome reports the result of converting one file.
type FileOutcome struct {
	Path         string
	ATDFPath     string
	DatabasePath string
	RecordCount  int
	Err          error
}

// Driver is the parallel file driver: it sizes a worker pool from CPU
// count, available memory, file count, and a user cap, then converts many
// files concurrently, one goroutine per in-flight file.
type Driver struct {
	opts DriverOptions
}

// NewDriver constructs a Driver from opts.
func NewDriver(opts DriverOptions) *Driver {
	return &Driver{opts: opts}
}

// Run converts every path in paths, returning one FileOutcome per input in
// completion order. A file that fails does
// not stop the others. Without cancellation Run returns len(paths) outcomes.
// Cancelling ctx stops dispatching new files, so files never dispatched get
// no outcome; in-flight files stop at their next frame boundary and report
// the context's error.
func (d *Driver) Run(ctx context.Context, paths []string) []FileOutcome {
	n := sizeWorkerPool(len(paths), d.opts.WorkerCap)

	jobs := make(chan string)
	results := make(chan FileOutcome, len(paths))

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				WorkersBusy.Inc()
				results <- d.runOne(ctx, path)
				WorkersBusy.Dec()
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, p := range paths {
			select {
			case <-ctx.Done():
				return
			case jobs <- p:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]FileOutcome, 0, len(paths))
	for r := range results {
		out = append(out, r)
	}
	return out
}

// runOne converts a single file, recovering a panic into a WorkerError
// so one crashing worker never takes down the driver.
func (d *Driver) runOne(ctx context.Context, path string) (outcome FileOutcome) {
	outcome.Path = path
	defer func() {
		if r := recover(); r != nil {
			outcome.Err = WorkerError(path, fmt.Errorf("panic: %v", r))
			FilesProcessed.WithLabelValues("error").Inc()
		}
	}()

	start := time.Now()
	defer func() { FileDurationSeconds.Observe(time.Since(start).Seconds()) }()

	fr, err := Open(path)
	if err != nil {
		outcome.Err = err
		FilesProcessed.WithLabelValues("error").Inc()
		return outcome
	}
	defer fr.Close()

	copts := ConvertOptions{Path: path, Mask: d.opts.Mask, Hook: d.opts.Hook}

	if d.opts.WriteATDF {
		atdfPath := replaceStdfExt(path, ".atdf")
		f, err := os.Create(atdfPath)
		if err != nil {
			outcome.Err = WriteError(atdfPath, err)
			FilesProcessed.WithLabelValues("error").Inc()
			return outcome
		}
		defer f.Close()
		copts.ATDFWriter = f
		outcome.ATDFPath = atdfPath
	}

	if d.opts.WriteDatabase {
		if d.opts.NewLoader == nil {
			outcome.Err = fmt.Errorf("driver: database output requested but NewLoader is nil")
			FilesProcessed.WithLabelValues("error").Inc()
			return outcome
		}
		dbPath := replaceStdfExt(path, ".db")
		loader, err := d.opts.NewLoader(dbPath)
		if err != nil {
			outcome.Err = LoadError(dbPath, err)
			FilesProcessed.WithLabelValues("error").Inc()
			return outcome
		}
		if c, ok := loader.(io.Closer); ok {
			defer c.Close()
		}
		copts.Loader = loader
		outcome.DatabasePath = dbPath
	}

	result, err := ConvertFile(ctx, fr, copts)
	outcome.RecordCount = result.RecordCount
	if err != nil {
		outcome.Err = err
		FilesProcessed.WithLabelValues("error").Inc()
		return outcome
	}

	FilesProcessed.WithLabelValues("ok").Inc()
	return outcome
}

// replaceStdfExt swaps a ".stdf" or ".stdf.gz" (any case) suffix, or
// whatever extension the path has, for newExt.
func replaceStdfExt(path, newExt string) string {
	trimmed := path
	if ext := filepath.Ext(trimmed); strings.EqualFold(ext, ".gz") {
		trimmed = strings.TrimSuffix(trimmed, ext)
	}
	if ext := filepath.Ext(trimmed); ext != "" {
		trimmed = strings.TrimSuffix(trimmed, ext)
	}
	return trimmed + newExt
}

// sizeWorkerPool computes the pool size as
//
//	max(1, min(fileCount, cpus - max(1, cpus/4), availableMemory/(2*500MiB), 8))
//
// userCap, when positive, lowers but never raises the result.
func sizeWorkerPool(fileCount, userCap int) int {
	if fileCount < 1 {
		fileCount = 1
	}

	cpus := runtime.NumCPU()
	cpuBudget := cpus - max(1, cpus/4)
	if cpuBudget < 1 {
		cpuBudget = 1
	}

	memBudget := int(availableMemoryBytes() / bytesPerWorker)
	if memBudget < 1 {
		memBudget = 1
	}

	n := min(fileCount, cpuBudget, memBudget, maxWorkers)
	if n < 1 {
		n = 1
	}
	if userCap > 0 && userCap < n {
		n = userCap
	}
	return n
}
