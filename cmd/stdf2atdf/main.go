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

// stdf2atdf converts binary STDF test data files into their ATDF textual
// counterpart and/or a SQLite database, processing many files in parallel.
//
// Usage:
//
//	stdf2atdf [options] input
//
// where input is an STDF file or a directory searched recursively for
// *.stdf and *.stdf.gz files.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	stdf "github.com/jervinkhoo/stdf2atdf"
	"github.com/jervinkhoo/stdf2atdf/preprocess"
	"github.com/jervinkhoo/stdf2atdf/store"
)

// recordList collects -r/--records values; the flag may be repeated, and
// each occurrence may carry a comma- or space-separated list of tags.
type recordList []string

func (r *recordList) String() string { return strings.Join(*r, ",") }

func (r *recordList) Set(s string) error {
	for _, tok := range strings.FieldsFunc(s, func(c rune) bool { return c == ',' || c == ' ' }) {
		*r = append(*r, tok)
	}
	return nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("stdf2atdf", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		output       bool
		database     bool
		records      recordList
		workers      int
		preprocessor string
		configPath   string
		metricsAddr  string
		verbosity    int
	)
	fs.BoolVar(&output, "o", false, "generate ATDF output files (input filename with .atdf extension)")
	fs.BoolVar(&output, "output", false, "alias for -o")
	fs.BoolVar(&database, "d", false, "generate SQLite database files (input filename with .db extension)")
	fs.BoolVar(&database, "database", false, "alias for -d")
	fs.Var(&records, "r", "record types to process (repeatable, comma-separated; default all)")
	fs.Var(&records, "records", "alias for -r")
	fs.IntVar(&workers, "w", 0, "cap on parallel workers (default sized from system resources)")
	fs.IntVar(&workers, "workers", 0, "alias for -w")
	fs.StringVar(&preprocessor, "p", "", "vendor preprocessor: advantest, teradyne or eagle")
	fs.StringVar(&preprocessor, "preprocessor", "", "alias for -p")
	fs.StringVar(&configPath, "c", "", "YAML file supplying defaults for the flags above")
	fs.StringVar(&configPath, "config", "", "alias for -c")
	fs.StringVar(&metricsAddr, "metrics", "", "address to serve Prometheus metrics on while converting (e.g. :9090)")
	fs.IntVar(&verbosity, "v", 0, "log verbosity")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stdf2atdf [options] input\n\n")
		fmt.Fprintf(os.Stderr, "input is an STDF file or a directory searched recursively for *.stdf files.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one input file or directory is required")
		fs.Usage()
		return 2
	}
	input := fs.Arg(0)

	log := funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintln(os.Stderr, prefix, args)
			return
		}
		fmt.Fprintln(os.Stderr, args)
	}, funcr.Options{Verbosity: verbosity})
	stdf.SetLogger(log)

	if configPath != "" {
		set := explicitFlags(fs)
		if err := applyConfig(configPath, set, &output, &database, &records, &workers, &preprocessor); err != nil {
			log.Error(err, "reading config file", "path", configPath)
			return 1
		}
	}

	mask, err := stdf.NewRecordTypeMask(records)
	if err != nil {
		log.Error(err, "invalid -r/--records value")
		return 2
	}

	hook, err := preprocess.Lookup(preprocessor)
	if err != nil {
		log.Error(err, "invalid -p/--preprocessor value")
		return 2
	}

	inputs, err := discoverInputs(input)
	if err != nil {
		log.Error(err, "resolving inputs", "input", input)
		return 1
	}
	log.Info("found STDF files to process", "count", len(inputs))

	if metricsAddr != "" {
		serveMetrics(log, metricsAddr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = stdf.IntoContext(ctx, log)

	driver := stdf.NewDriver(stdf.DriverOptions{
		WorkerCap:     workers,
		Mask:          mask,
		Hook:          hook,
		WriteATDF:     output,
		WriteDatabase: database,
		NewLoader: func(dbPath string) (stdf.Loader, error) {
			return store.NewSQLiteLoader(dbPath)
		},
	})

	outcomes := driver.Run(ctx, inputs)

	failed := 0
	for _, oc := range outcomes {
		if oc.Err != nil {
			failed++
			log.Error(oc.Err, "conversion failed", "path", oc.Path)
			continue
		}
		log.Info("converted", "path", oc.Path, "records", oc.RecordCount,
			"atdf", oc.ATDFPath, "database", oc.DatabasePath)
	}

	if failed > 0 {
		log.Info("conversion finished with failures", "failed", failed, "total", len(outcomes))
		return 1
	}
	if err := ctx.Err(); err != nil {
		log.Info("conversion interrupted")
		return 1
	}
	log.Info("conversion completed successfully", "total", len(outcomes))
	return 0
}

// explicitFlags returns the set of flag names the user passed on the command
// line, so config-file values never override them.
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyConfig fills any option the user did not pass explicitly from the
// YAML config file at path.
func applyConfig(path string, set map[string]bool, output, database *bool, records *recordList, workers *int, preprocessor *string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cfg, err := stdf.ReadConfig(f)
	if err != nil {
		return err
	}

	if cfg.Output != nil && !set["o"] && !set["output"] {
		*output = *cfg.Output
	}
	if cfg.Database != nil && !set["d"] && !set["database"] {
		*database = *cfg.Database
	}
	if len(cfg.Records) > 0 && !set["r"] && !set["records"] {
		*records = cfg.Records
	}
	if cfg.Workers != nil && !set["w"] && !set["workers"] {
		*workers = *cfg.Workers
	}
	if cfg.Preprocessor != nil && !set["p"] && !set["preprocessor"] {
		*preprocessor = *cfg.Preprocessor
	}
	return nil
}

// serveMetrics registers the package collectors on a fresh registry and
// serves them over HTTP in the background for the lifetime of the process.
func serveMetrics(log logr.Logger, addr string) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		stdf.FramesDecoded,
		stdf.FramesSkipped,
		stdf.RecordsEmitted,
		stdf.FilesProcessed,
		stdf.FileDurationSeconds,
		stdf.WorkersBusy,
	)
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(err, "metrics listener failed", "addr", addr)
		}
	}()
}
