// typed_param.go — optional, type-safe accessors for Params.
//
// Copyright (c) 2025.
// SPDX-License-Identifier: MIT
//
// Overview
//   TypedParam gives dispatchers and callers typed reads of well-known keys
//   (request ids, tenant, owning team) without giving up the plain
//   map[string]any representation. It complements ParamsKV and Params.Merge.
//
// Usage
//   var (
//       PTeam      = errtree.ParamOf[string]("team")
//       PRequestID = errtree.ParamOf[string]("request_id")
//   )
//
//   feature := ctx.Feature("Upload", PTeam.Set(nil, "storage"))
//   ...
//   func dispatch(err *errtree.Error, p errtree.Params) error {
//       team, _ := PTeam.Get(p)
//       ...
//   }
//
// Caveats
//   • The stored dynamic type must be exactly T; no conversions are made.
//   • Set never mutates its input; it returns a merged copy.
package errtree

import "fmt"

// TypedParam is a typed view over one Params key.
type TypedParam[T any] struct {
	key string
}

// ParamOf constructs a TypedParam[T] for key.
func ParamOf[T any](key string) TypedParam[T] {
	return TypedParam[T]{key: key}
}

// Key returns the underlying string key.
func (f TypedParam[T]) Key() string { return f.key }

// Set returns a NEW Params equal to p with key = val. p may be nil.
func (f TypedParam[T]) Set(p Params, val T) Params {
	return p.Merge(Params{f.key: val})
}

// Get returns the typed value, or (zero, false) when the key is absent or
// holds another dynamic type.
func (f TypedParam[T]) Get(p Params) (T, bool) {
	var zero T
	v, ok := p[f.key]
	if !ok {
		return zero, false
	}
	tv, ok := v.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}

// MustGet is Get that panics on a missing key or a type mismatch.
// Intended for tests and invariants, not request paths.
func (f TypedParam[T]) MustGet(p Params) T {
	var zero T
	v, ok := p[f.key]
	if !ok {
		panic(fmt.Errorf("errtree.TypedParam[%T](%q): param missing", zero, f.key))
	}
	tv, ok := v.(T)
	if !ok {
		panic(fmt.Errorf("errtree.TypedParam[%T](%q): wrong dynamic type (%T)", zero, f.key, v))
	}
	return tv
}
