// SPDX-License-Identifier: MIT
// Package: lvplot/study
//
// codec.go — YAML study documents.
//
// Document layout (keys mirror Tables):
//
//	algorithms: [FireFly 30%, ACOR 15%]
//	benchmarks: [Benchmark 1, Benchmark 2]
//	recovery: [[6, 2], [4, 2]]
//	best:     [[4.3268, 0.00002], [4.3221, 0.000003]]
//	initial:  [[8.0, 0.1], [7.5, 0.08]]
//	y_limits: {Benchmark 1: [3, 10]}
//
// Unknown keys are rejected so that typos do not silently drop a table.

package study

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML study document and validates it through New.
func Parse(data []byte) (*Study, error) {
	var t Tables
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, studyErrorf(methodParse, ErrEmptyStudy, "empty document")
		}
		return nil, studyErrorf(methodParse, errors.Join(ErrParse, err), "decode")
	}

	return New(t)
}

// Load reads and parses the study document at path.
func Load(path string) (*Study, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, studyErrorf(methodLoad, err, "%s", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, studyErrorf(methodLoad, err, "%s", path)
	}

	return s, nil
}

// Marshal encodes s as a YAML document accepted by Parse.
func Marshal(s *Study) ([]byte, error) {
	if s == nil {
		return nil, studyErrorf(methodMarshal, ErrNilStudy, "encode")
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s.Tables()); err != nil {
		return nil, studyErrorf(methodMarshal, err, "encode")
	}
	if err := enc.Close(); err != nil {
		return nil, studyErrorf(methodMarshal, err, "flush")
	}

	return buf.Bytes(), nil
}
