// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package property parses the key=value configuration strings used by
// display settings, viewing surfaces and report options.
//
// The accepted syntax is a sequence of assignments separated by
// whitespace or semicolons:
//
//	style=2 tile=1; focus=0,0,5 zoom=0.8
//
// A value may hold several comma-separated fields, read positionally.
package property

import (
	"errors"
	"strconv"
	"strings"
)

// ErrTooFewValues is returned by Set.Get when a destination is given for
// a field index the value does not have.
var ErrTooFewValues = errors.New("property: too few values")

// SyntaxError indicates a token that is not a key=value assignment.
type SyntaxError struct {
	Token string
}

func (e *SyntaxError) Error() string {
	return "property: not a key=value assignment: `" + e.Token + "'"
}

// ValueError indicates a value that could not be converted to the
// requested destination type.
type ValueError struct {
	Key   string
	Value string
	Kind  string
}

func (e *ValueError) Error() string {
	return "property: key `" + e.Key + "' value `" + e.Value + "' is not a valid " + e.Kind
}

// Set holds parsed assignments in source order.
// Later assignments to the same key replace earlier ones.
type Set struct {
	keys   []string
	values map[string][]string
}

// Parse reads assignments from text.
// An empty or all-whitespace text yields an empty, usable Set.
func Parse(text string) (*Set, error) {
	s := &Set{values: make(map[string][]string)}
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ';'
	})
	for _, tok := range fields {
		eq := strings.IndexByte(tok, '=')
		if eq <= 0 {
			return nil, &SyntaxError{Token: tok}
		}
		key := tok[:eq]
		vals := strings.Split(tok[eq+1:], ",")
		if _, seen := s.values[key]; !seen {
			s.keys = append(s.keys, key)
		}
		s.values[key] = vals
	}
	return s, nil
}

// Len returns the number of distinct keys.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Keys returns the distinct keys in source order.
func (s *Set) Keys() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Has reports whether key was assigned.
func (s *Set) Has(key string) bool {
	if s == nil {
		return false
	}
	_, ok := s.values[key]
	return ok
}

// Raw returns the fields assigned to key, or nil.
func (s *Set) Raw(key string) []string {
	if s == nil {
		return nil
	}
	return s.values[key]
}

// Get assigns the fields of key to the destinations in order and returns
// how many were assigned. A missing key assigns nothing and returns 0.
// Destinations must be pointers to string, bool, int, int64, float32 or
// float64. Asking for more fields than the value carries is an error.
func (s *Set) Get(key string, dst ...any) (int, error) {
	if s == nil {
		return 0, nil
	}
	vals, ok := s.values[key]
	if !ok {
		return 0, nil
	}
	for i, d := range dst {
		if i >= len(vals) {
			return i, ErrTooFewValues
		}
		if err := convert(key, vals[i], d); err != nil {
			return i, err
		}
	}
	return len(dst), nil
}

func convert(key, val string, dst any) error {
	switch p := dst.(type) {
	case *string:
		*p = val
	case *bool:
		b, err := parseBool(val)
		if err != nil {
			return &ValueError{Key: key, Value: val, Kind: "boolean"}
		}
		*p = b
	case *int:
		n, err := strconv.Atoi(val)
		if err != nil {
			return &ValueError{Key: key, Value: val, Kind: "integer"}
		}
		*p = n
	case *int64:
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return &ValueError{Key: key, Value: val, Kind: "integer"}
		}
		*p = n
	case *float32:
		f, err := strconv.ParseFloat(val, 32)
		if err != nil {
			return &ValueError{Key: key, Value: val, Kind: "number"}
		}
		*p = float32(f)
	case *float64:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return &ValueError{Key: key, Value: val, Kind: "number"}
		}
		*p = f
	default:
		return errors.New("property: unsupported destination type")
	}
	return nil
}

// parseBool accepts the 0/1 forms used in configuration strings in
// addition to the usual spellings.
func parseBool(val string) (bool, error) {
	switch val {
	case "1", "true", "on", "yes":
		return true, nil
	case "0", "false", "off", "no":
		return false, nil
	}
	return false, errors.New("bad boolean")
}
