// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff computes key-level comparisons between two JSON documents.
package diff

import (
	"testing"

	"github.com/jeranaias/jdiff-tui/internal/jsonval"
)

// mustParse parses a JSON literal or fails the test.
func mustParse(t *testing.T, src string) jsonval.Value {
	t.Helper()
	v, err := jsonval.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	return v
}

func TestCompare_EqualObjects(t *testing.T) {
	left := mustParse(t, `{"a": 1, "b": "two"}`)
	right := mustParse(t, `{"a": 1, "b": "two"}`)

	res := Compare(left, right, Options{})

	if len(res.Left) != 2 || len(res.Right) != 2 {
		t.Fatalf("Expected 2 line pairs, got %d/%d", len(res.Left), len(res.Right))
	}

	for i := range res.Left {
		if res.Left[i].Style != StyleUnchanged {
			t.Errorf("Left line %d: expected unchanged, got %s", i, res.Left[i].Style)
		}
		if res.Right[i].Style != StyleUnchanged {
			t.Errorf("Right line %d: expected unchanged, got %s", i, res.Right[i].Style)
		}
		if res.Left[i].Text != res.Right[i].Text {
			t.Errorf("Line %d: sides differ: %q vs %q", i, res.Left[i].Text, res.Right[i].Text)
		}
	}

	if res.Stats.Changed != 0 {
		t.Errorf("Expected 0 changed, got %d", res.Stats.Changed)
	}
}

func TestCompare_KeyOrder(t *testing.T) {
	left := mustParse(t, `{"b": 1, "a": 2, "c": 3}`)
	right := mustParse(t, `{"a": 2}`)

	res := Compare(left, right, Options{})

	want := []string{"a: 2", "b: 1", "c: 3"}
	if len(res.Left) != len(want) {
		t.Fatalf("Expected %d lines, got %d", len(want), len(res.Left))
	}
	for i, w := range want {
		if res.Left[i].Text != w {
			t.Errorf("Left line %d: expected %q, got %q", i, w, res.Left[i].Text)
		}
	}
}

func TestCompare_MissingKeyIsNull(t *testing.T) {
	left := mustParse(t, `{"x": null}`)
	rightAbsent := mustParse(t, `{}`)
	rightNull := mustParse(t, `{"x": null}`)

	absent := Compare(left, rightAbsent, Options{})
	explicit := Compare(left, rightNull, Options{})

	if len(absent.Left) != len(explicit.Left) {
		t.Fatalf("Line counts differ: %d vs %d", len(absent.Left), len(explicit.Left))
	}
	for i := range absent.Left {
		if absent.Left[i] != explicit.Left[i] {
			t.Errorf("Left line %d differs: %+v vs %+v", i, absent.Left[i], explicit.Left[i])
		}
		if absent.Right[i] != explicit.Right[i] {
			t.Errorf("Right line %d differs: %+v vs %+v", i, absent.Right[i], explicit.Right[i])
		}
	}
	if absent.Right[0].Text != "x: null" {
		t.Errorf("Expected 'x: null', got %q", absent.Right[0].Text)
	}
	if absent.Right[0].Style != StyleUnchanged {
		t.Errorf("null vs absent must compare equal, got %s", absent.Right[0].Style)
	}
}

func TestCompare_Symmetry(t *testing.T) {
	a := mustParse(t, `{"a": 1, "b": [1, 2], "c": {"d": true}}`)
	b := mustParse(t, `{"a": 1, "b": [1, 3], "e": "x"}`)

	ab := Compare(a, b, Options{})
	ba := Compare(b, a, Options{})

	if len(ab.Left) != len(ba.Left) {
		t.Fatalf("Line counts differ: %d vs %d", len(ab.Left), len(ba.Left))
	}

	for i := range ab.Left {
		// Text mirrors: left(A,B) == right(B,A) and vice versa.
		if ab.Left[i].Text != ba.Right[i].Text {
			t.Errorf("Line %d text not mirrored: %q vs %q", i, ab.Left[i].Text, ba.Right[i].Text)
		}
		if ab.Right[i].Text != ba.Left[i].Text {
			t.Errorf("Line %d text not mirrored: %q vs %q", i, ab.Right[i].Text, ba.Left[i].Text)
		}
		// Change state mirrors: a pair differs in one direction iff it
		// differs in the other.
		abChanged := ab.Right[i].Style == StyleChanged
		baChanged := ba.Right[i].Style == StyleChanged
		if abChanged != baChanged {
			t.Errorf("Line %d change state not mirrored", i)
		}
	}

	if ab.Stats != ba.Stats {
		t.Errorf("Stats not mirrored: %+v vs %+v", ab.Stats, ba.Stats)
	}
}

func TestCompare_NonObjectFallback(t *testing.T) {
	left := mustParse(t, `[1, 2, 3]`)
	right := mustParse(t, `[1, 2, 4]`)

	res := Compare(left, right, Options{})

	if len(res.Left) != 1 || len(res.Right) != 1 {
		t.Fatalf("Expected exactly one line pair, got %d/%d", len(res.Left), len(res.Right))
	}
	if res.Left[0].Text != "[1,2,3]" {
		t.Errorf("Expected '[1,2,3]', got %q", res.Left[0].Text)
	}
	if res.Right[0].Text != "[1,2,4]" {
		t.Errorf("Expected '[1,2,4]', got %q", res.Right[0].Text)
	}
	if res.Left[0].Style != StyleNeutral {
		t.Errorf("Expected neutral left, got %s", res.Left[0].Style)
	}
	if res.Right[0].Style != StyleChanged {
		t.Errorf("Expected changed right, got %s", res.Right[0].Style)
	}
}

func TestCompare_MixedTopLevel(t *testing.T) {
	// One object, one scalar: still the whole-value fallback.
	left := mustParse(t, `{"a": 1}`)
	right := mustParse(t, `42`)

	res := Compare(left, right, Options{})

	if len(res.Left) != 1 {
		t.Fatalf("Expected one line pair, got %d", len(res.Left))
	}
	if res.Left[0].Text != `{"a":1}` {
		t.Errorf("Expected compact object form, got %q", res.Left[0].Text)
	}
	if res.Right[0].Text != "42" {
		t.Errorf("Expected '42', got %q", res.Right[0].Text)
	}
}

func TestCompare_EmptyObjects(t *testing.T) {
	res := Compare(mustParse(t, `{}`), mustParse(t, `{}`), Options{})

	if len(res.Left) != 0 || len(res.Right) != 0 {
		t.Errorf("Expected empty result, got %d/%d lines", len(res.Left), len(res.Right))
	}
	if res.Summary() != "empty" {
		t.Errorf("Expected 'empty' summary, got %q", res.Summary())
	}
}

func TestCompare_ConcreteScenario(t *testing.T) {
	left := mustParse(t, `{"a": 1, "b": 2}`)
	right := mustParse(t, `{"a": 1, "b": 3, "c": 4}`)

	res := Compare(left, right, Options{})

	type pair struct {
		left, right   string
		leftS, rightS LineStyle
	}
	want := []pair{
		{"a: 1", "a: 1", StyleUnchanged, StyleUnchanged},
		{"b: 2", "b: 3", StyleNeutral, StyleChanged},
		{"c: null", "c: 4", StyleNeutral, StyleChanged},
	}

	if len(res.Left) != len(want) {
		t.Fatalf("Expected %d line pairs, got %d", len(want), len(res.Left))
	}
	for i, w := range want {
		if res.Left[i].Text != w.left || res.Left[i].Style != w.leftS {
			t.Errorf("Left line %d: expected %q/%s, got %q/%s",
				i, w.left, w.leftS, res.Left[i].Text, res.Left[i].Style)
		}
		if res.Right[i].Text != w.right || res.Right[i].Style != w.rightS {
			t.Errorf("Right line %d: expected %q/%s, got %q/%s",
				i, w.right, w.rightS, res.Right[i].Text, res.Right[i].Style)
		}
	}

	if res.Stats.Keys != 3 || res.Stats.Changed != 2 {
		t.Errorf("Expected 3 keys / 2 changed, got %+v", res.Stats)
	}
}

func TestCompare_AsymmetricHighlight(t *testing.T) {
	left := mustParse(t, `{"a": 1}`)
	right := mustParse(t, `{"a": 2}`)

	res := Compare(left, right, Options{Asymmetric: true})

	if res.Left[0].Style != StyleUnchanged {
		t.Errorf("Asymmetric mode: expected unchanged left, got %s", res.Left[0].Style)
	}
	if res.Right[0].Style != StyleChanged {
		t.Errorf("Asymmetric mode: expected changed right, got %s", res.Right[0].Style)
	}
}

func TestCompare_EqualLengthInvariant(t *testing.T) {
	cases := []struct {
		name        string
		left, right string
	}{
		{"objects", `{"a": 1, "b": 2}`, `{"c": 3}`},
		{"empty vs keys", `{}`, `{"a": 1}`},
		{"arrays", `[1]`, `[2, 3]`},
		{"scalar vs object", `"x"`, `{"a": 1}`},
		{"nulls", `null`, `null`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Compare(mustParse(t, tc.left), mustParse(t, tc.right), Options{})
			if len(res.Left) != len(res.Right) {
				t.Errorf("Sides have different lengths: %d vs %d", len(res.Left), len(res.Right))
			}
		})
	}
}

func TestCompare_NestedValuesNotRecursed(t *testing.T) {
	left := mustParse(t, `{"cfg": {"a": 1, "b": 2}}`)
	right := mustParse(t, `{"cfg": {"a": 1, "b": 3}}`)

	res := Compare(left, right, Options{})

	// One pair for the key, nested object rendered compact, not expanded.
	if len(res.Left) != 1 {
		t.Fatalf("Expected one line pair, got %d", len(res.Left))
	}
	if res.Left[0].Text != `cfg: {"a":1,"b":2}` {
		t.Errorf("Expected compact nested form, got %q", res.Left[0].Text)
	}
	if res.Right[0].Style != StyleChanged {
		t.Errorf("Expected changed right, got %s", res.Right[0].Style)
	}
}

func TestCompare_DeepEqualIgnoresNestedKeyOrder(t *testing.T) {
	left := mustParse(t, `{"cfg": {"a": 1, "b": 2}}`)
	right := mustParse(t, `{"cfg": {"b": 2, "a": 1}}`)

	res := Compare(left, right, Options{})

	if res.Stats.Changed != 0 {
		t.Errorf("Nested key order must not affect equality, got %d changed", res.Stats.Changed)
	}
}

func TestLineStyle_String(t *testing.T) {
	cases := map[LineStyle]string{
		StyleUnchanged: "unchanged",
		StyleNeutral:   "neutral",
		StyleChanged:   "changed",
		LineStyle(99):  "unknown",
	}
	for style, want := range cases {
		if got := style.String(); got != want {
			t.Errorf("LineStyle(%d).String() = %q, want %q", style, got, want)
		}
	}
}

func TestResult_Summary(t *testing.T) {
	res := Result{Stats: Stats{Keys: 3, Changed: 1}}
	if got := res.Summary(); got != "3 keys, 1 changed" {
		t.Errorf("Summary() = %q", got)
	}
	one := Result{Stats: Stats{Keys: 1, Changed: 0}}
	if got := one.Summary(); got != "1 key, 0 changed" {
		t.Errorf("Summary() = %q", got)
	}
}
