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
	"io"
)

// Loader is the collaborator a file's decoded RecordCollection is handed to
// at end of file. The shipped implementation,
// store.SQLiteLoader, lives outside this package so the core codec carries
// no SQL dependency; callers may substitute their own.
type Loader interface {
	Load(ctx context.Context, path string, coll *RecordCollection) error
}

// Hook is the vendor post-processing contract: a pure function from a
// just-derived AtdfRecord to a (possibly modified) AtdfRecord, applied
// after the ATDF transforms and before collection append. The preprocess
// package resolves a vendor name to a Hook; the zero value of Hook is not
// callable, so ConvertFile substitutes a no-op when none is configured.
type Hook func(RecordType, AtdfRecord) AtdfRecord

// ConvertOptions configures one file's conversion.
type ConvertOptions struct {
	// Path identifies the file being converted. It appears in log values
	// and in WriteError/LoadError messages, and is passed to Loader.Load.
	Path string
	// Mask restricts which record types are decoded; nil means every
	// known RecordType.
	Mask RecordTypeMask
	// ATDFWriter, if non-nil, receives one ATDF line per decoded record.
	ATDFWriter io.Writer
	// Loader, if non-nil, receives the completed RecordCollection.
	Loader Loader
	// Hook, if non-nil, is applied to every derived AtdfRecord before it
	// is appended to the collection or written to ATDF.
	Hook Hook
}

// FileResult summarizes one file's conversion.
type FileResult struct {
	RecordCount int
	Collection  *RecordCollection
}

// ConvertFile drives fr's frames through decoding, ATDF derivation,
// cross-reference attachment, the vendor hook, and optionally the ATDF
// writer and relational loader. Per-frame errors are logged and do not
// abort the file; a failure writing ATDF output or loading the database is
// fatal for this file and is returned, wrapped as WriteError/LoadError.
func ConvertFile(ctx context.Context, fr *FrameReader, opts ConvertOptions) (FileResult, error) {
	mask := opts.Mask
	if mask == nil {
		mask = AllRecordTypes()
	}
	hook := opts.Hook
	if hook == nil {
		hook = func(_ RecordType, rec AtdfRecord) AtdfRecord { return rec }
	}

	fc := NewFileContext(mask)
	coll := NewRecordCollection()

	var writer *AtdfWriter
	if opts.ATDFWriter != nil {
		writer = NewAtdfWriter(opts.ATDFWriter)
	}

	log := FromContext(ctx).WithValues("path", opts.Path)
	count := 0

	for {
		select {
		case <-ctx.Done():
			return FileResult{RecordCount: count, Collection: coll}, ctx.Err()
		default:
		}

		frame, err := fr.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			FramesSkipped.WithLabelValues("short_payload").Inc()
			log.Error(err, "skipping frame: short payload")
			continue
		}

		rt, ok := RecordTypeFor(frame.RecTyp, frame.RecSub)
		if !ok {
			FramesSkipped.WithLabelValues("unknown_record").Inc()
			log.Error(UnknownRecord(frame.RecTyp, frame.RecSub), "skipping frame")
			continue
		}
		if !mask.Enabled(rt) {
			continue
		}

		stdfRec, err := DecodeRecord(rt, frame.Payload, fr.Order())
		if err != nil {
			// DecodeOverrun: the record is terminated at the field
			// that ran out of buffer, but every field decoded up to that
			// point is still usable — stdfRec is never nil here.
			FramesSkipped.WithLabelValues("decode_overrun").Inc()
			log.Error(err, "record truncated mid-field", "record_type", rt)
		}

		atdfRec := Derive(stdfRec)
		fc.AttachCrossReference(coll, &atdfRec)
		atdfRec = hook(rt, atdfRec)
		coll.Append(atdfRec)
		FramesDecoded.WithLabelValues(string(rt)).Inc()
		RecordsEmitted.WithLabelValues(string(rt)).Inc()
		count++

		if writer != nil {
			if err := writer.WriteRecord(atdfRec); err != nil {
				return FileResult{RecordCount: count, Collection: coll}, WriteError(opts.Path, err)
			}
		}
	}

	if writer != nil {
		if err := writer.Flush(); err != nil {
			return FileResult{RecordCount: count, Collection: coll}, WriteError(opts.Path, err)
		}
	}

	if opts.Loader != nil {
		if err := opts.Loader.Load(ctx, opts.Path, coll); err != nil {
			return FileResult{RecordCount: count, Collection: coll}, LoadError(opts.Path, err)
		}
	}

	return FileResult{RecordCount: count, Collection: coll}, nil
}
