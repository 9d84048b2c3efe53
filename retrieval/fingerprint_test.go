package retrieval

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/careguide/core"
)

func TestFingerprint_Variants(t *testing.T) {
	assert.Equal(t, "", Fingerprint(core.NoEvidence()))
	assert.Equal(t, "", Fingerprint(core.EvidencePayload{}))
	assert.Equal(t, "raw evidence {b:1}", Fingerprint(core.TextEvidence("raw evidence {b:1}")))
	assert.Equal(t, "{}", Fingerprint(core.MappingEvidence(nil)))
}

func TestFingerprint_RuleEvidence(t *testing.T) {
	ev := core.RuleEvidence{
		GateOK:         true,
		GateMatched:    []string{"가슴"},
		SupportMatched: []string{"식은땀"},
		SupportMissing: []string{"통증", "쥐어짜", "압박", "호흡곤란", "방사"},
		SupportRatio:   0.17,
		Weight:         0.95,
	}
	got := Fingerprint(core.EvidenceFromRule(ev))
	want := `{"gate_matched":["가슴"],"gate_ok":true,"support_matched":["식은땀"],` +
		`"support_missing":["통증","쥐어짜","압박","호흡곤란","방사"],"support_ratio":0.17,"weight":0.95}`
	assert.Equal(t, want, got)

	reason := Fingerprint(core.EvidenceFromRule(core.RuleEvidence{Reason: "no_rule_matched"}))
	assert.Equal(t, `{"reason":"no_rule_matched"}`, reason)
}

func TestFingerprint_KeyOrderIndependent(t *testing.T) {
	a := core.MappingEvidence(map[string]any{"b": 1, "a": []any{"x", 2.5}, "c": nil})
	b := core.MappingEvidence(map[string]any{"c": nil, "a": []any{"x", 2.5}, "b": 1})
	assert.Equal(t, Fingerprint(a), Fingerprint(b))
	assert.Equal(t, `{"a":["x",2.5],"b":1,"c":null}`, Fingerprint(a))
}

func TestCanonicalJSON_Floats(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1, "1.0"},
		{0.95, "0.95"},
		{-2.5, "-2.5"},
		{123456789.5, "123456789.5"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1.5e-7, "1.5e-07"},
		{1e16, "1e+16"},
		{1e15, "1000000000000000.0"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := CanonicalJSON(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalJSON_Strings(t *testing.T) {
	got, err := CanonicalJSON("a\"b\\c\n\t\r\b\f\x01\x1f/<>&é한")
	require.NoError(t, err)
	assert.Equal(t, `"a\"b\\c\n\t\r\b\f\u0001\u001f/<>&é한"`, got)
}

func TestCanonicalJSON_Values(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "null"},
		{"bools", []bool{true, false}, "[true,false]"},
		{"ints", []int{-1, 0, 42}, "[-1,0,42]"},
		{"uint", uint64(18446744073709551615), "18446744073709551615"},
		{"json number", json.Number("3.14"), "3.14"},
		{"nil slice", []string(nil), "null"},
		{"empty slice", []string{}, "[]"},
		{"array", [2]string{"a", "b"}, `["a","b"]`},
		{"nested", map[string]any{"z": map[string]int{"b": 2, "a": 1}, "가": "나"}, `{"z":{"a":1,"b":2},"가":"나"}`},
		{"pointer", func() *int { v := 7; return &v }(), "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CanonicalJSON(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalJSON_Unsupported(t *testing.T) {
	_, err := CanonicalJSON(map[string]any{"x": struct{ A int }{1}})
	assert.ErrorIs(t, err, ErrUnsupportedValue)

	_, err = CanonicalJSON(map[int]string{1: "a"})
	assert.ErrorIs(t, err, ErrUnsupportedValue)

	_, err = CanonicalJSON(make(chan int))
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestFingerprint_UnsupportedFallsBack(t *testing.T) {
	ev := core.MappingEvidence(map[string]any{"x": struct{ A int }{1}})
	assert.Equal(t, "map[x:{1}]", Fingerprint(ev))
}
