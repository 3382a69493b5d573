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

// Package stdf decodes semiconductor Automated Test Equipment data files in
// the binary STDF (Standard Test Data Format) wire format and renders them
// into ASCII Test Data Format (ATDF) text, optionally handing the decoded
// records to a relational loader.
//
// The package is organized around the data flow of one input file:
//
//	bytes -> FrameReader -> StdfRecord (DecodeRecord) -> AtdfRecord (Derive)
//	      -> preprocess.Hook -> {atdf writer, store.Loader}
//
// A minimal conversion of a single file looks like:
//
//	f, err := stdf.Open("lot42.stdf")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer f.Close()
//
//	result, err := stdf.ConvertFile(context.Background(), f, stdf.ConvertOptions{
//		ATDFWriter: atdfOut,
//	})
//
// Processing many files concurrently is handled by Driver, which sizes a
// worker pool from the host's CPU and memory budget (see NewDriver).
package stdf
