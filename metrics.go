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

import "github.com/prometheus/client_golang/prometheus"

// Metric collectors for the frame/record/file pipeline. These are
// constructed, not registered: a host application registers whichever of
// them it wants scraped; cmd/stdf2atdf registers them on its own
// prometheus.NewRegistry when metrics are enabled.
var (
	FramesDecoded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stdf2atdf",
		Name:      "frames_decoded_total",
		Help:      "Total number of STDF frames decoded, by record type.",
	}, []string{"record_type"})

	FramesSkipped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stdf2atdf",
		Name:      "frames_skipped_total",
		Help:      "Total number of STDF frames skipped, by reason.",
	}, []string{"reason"})

	RecordsEmitted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stdf2atdf",
		Name:      "records_emitted_total",
		Help:      "Total number of ATDF records emitted, by record type.",
	}, []string{"record_type"})

	FilesProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stdf2atdf",
		Name:      "files_processed_total",
		Help:      "Total number of input files processed, by outcome.",
	}, []string{"outcome"})

	FileDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "stdf2atdf",
		Name:      "file_duration_seconds",
		Help:      "Wall-clock time to convert one input file.",
		Buckets:   prometheus.DefBuckets,
	})

	WorkersBusy = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "stdf2atdf",
		Name:      "workers_busy",
		Help:      "Number of driver workers currently processing a file.",
	})
)
