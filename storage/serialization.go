// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"

	"github.com/poiesic/careguide/core"
)

// Stored records carry an ordinal so that listing can restore insertion
// order regardless of key order.

// MarshalRule serializes a Rule and its ordinal to bytes.
func MarshalRule(ordinal uint64, rule *core.Rule) []byte {
	buf := make([]byte, sizeRule(ordinal, rule))
	n := varint.Uint64.Marshal(ordinal, buf)
	n += ord.String.Marshal(rule.ID, buf[n:])
	n += ord.String.Marshal(rule.ConditionKey, buf[n:])
	n += ord.String.Marshal(rule.DisplayLabel, buf[n:])
	n += marshalStrings(rule.GateKeywords, buf[n:])
	n += marshalStrings(rule.SupportKeywords, buf[n:])
	n += marshalStrings(rule.Departments, buf[n:])
	n += ord.Bool.Marshal(rule.Emergency, buf[n:])
	n += ord.String.Marshal(string(rule.Urgency), buf[n:])
	n += raw.Float64.Marshal(rule.Weight, buf[n:])
	n += ord.String.Marshal(rule.ActionReason, buf[n:])
	marshalStrings(rule.NextActions, buf[n:])
	return buf
}

// UnmarshalRule deserializes a Rule and its ordinal from bytes.
func UnmarshalRule(data []byte) (uint64, *core.Rule, error) {
	r := reader{data: data}
	ordinal := readValue(&r, varint.Uint64.Unmarshal)
	rule := &core.Rule{}
	rule.ID = readValue(&r, ord.String.Unmarshal)
	rule.ConditionKey = readValue(&r, ord.String.Unmarshal)
	rule.DisplayLabel = readValue(&r, ord.String.Unmarshal)
	rule.GateKeywords = readValue(&r, unmarshalStrings)
	rule.SupportKeywords = readValue(&r, unmarshalStrings)
	rule.Departments = readValue(&r, unmarshalStrings)
	rule.Emergency = readValue(&r, ord.Bool.Unmarshal)
	rule.Urgency = core.UrgencyLevel(readValue(&r, ord.String.Unmarshal))
	rule.Weight = readValue(&r, raw.Float64.Unmarshal)
	rule.ActionReason = readValue(&r, ord.String.Unmarshal)
	rule.NextActions = readValue(&r, unmarshalStrings)
	if r.err != nil {
		return 0, nil, fmt.Errorf("%w: rule: %w", ErrSerializationFailed, r.err)
	}
	return ordinal, rule, nil
}

func sizeRule(ordinal uint64, rule *core.Rule) int {
	return varint.Uint64.Size(ordinal) +
		ord.String.Size(rule.ID) +
		ord.String.Size(rule.ConditionKey) +
		ord.String.Size(rule.DisplayLabel) +
		sizeStrings(rule.GateKeywords) +
		sizeStrings(rule.SupportKeywords) +
		sizeStrings(rule.Departments) +
		ord.Bool.Size(rule.Emergency) +
		ord.String.Size(string(rule.Urgency)) +
		raw.Float64.Size(rule.Weight) +
		ord.String.Size(rule.ActionReason) +
		sizeStrings(rule.NextActions)
}

// MarshalDocument serializes an EvidenceDoc and its ordinal to bytes.
func MarshalDocument(ordinal uint64, doc *core.EvidenceDoc) []byte {
	buf := make([]byte, sizeDocument(ordinal, doc))
	n := varint.Uint64.Marshal(ordinal, buf)
	n += ord.String.Marshal(doc.ID, buf[n:])
	n += ord.String.Marshal(doc.Title, buf[n:])
	n += ord.String.Marshal(doc.Source, buf[n:])
	n += ord.String.Marshal(string(doc.Type), buf[n:])
	n += varint.Int.Marshal(doc.Year, buf[n:])
	n += ord.String.Marshal(doc.Organization, buf[n:])
	n += ord.String.Marshal(doc.Abstract, buf[n:])
	n += marshalStrings(doc.Conditions, buf[n:])
	n += marshalStrings(doc.Keywords, buf[n:])
	n += ord.String.Marshal(doc.SearchQuery, buf[n:])
	ord.String.Marshal(doc.URL, buf[n:])
	return buf
}

// UnmarshalDocument deserializes an EvidenceDoc and its ordinal from bytes.
func UnmarshalDocument(data []byte) (uint64, *core.EvidenceDoc, error) {
	r := reader{data: data}
	ordinal := readValue(&r, varint.Uint64.Unmarshal)
	doc := &core.EvidenceDoc{}
	doc.ID = readValue(&r, ord.String.Unmarshal)
	doc.Title = readValue(&r, ord.String.Unmarshal)
	doc.Source = readValue(&r, ord.String.Unmarshal)
	doc.Type = core.DocType(readValue(&r, ord.String.Unmarshal))
	doc.Year = readValue(&r, varint.Int.Unmarshal)
	doc.Organization = readValue(&r, ord.String.Unmarshal)
	doc.Abstract = readValue(&r, ord.String.Unmarshal)
	doc.Conditions = readValue(&r, unmarshalStrings)
	doc.Keywords = readValue(&r, unmarshalStrings)
	doc.SearchQuery = readValue(&r, ord.String.Unmarshal)
	doc.URL = readValue(&r, ord.String.Unmarshal)
	if r.err != nil {
		return 0, nil, fmt.Errorf("%w: document: %w", ErrSerializationFailed, r.err)
	}
	return ordinal, doc, nil
}

func sizeDocument(ordinal uint64, doc *core.EvidenceDoc) int {
	return varint.Uint64.Size(ordinal) +
		ord.String.Size(doc.ID) +
		ord.String.Size(doc.Title) +
		ord.String.Size(doc.Source) +
		ord.String.Size(string(doc.Type)) +
		varint.Int.Size(doc.Year) +
		ord.String.Size(doc.Organization) +
		ord.String.Size(doc.Abstract) +
		sizeStrings(doc.Conditions) +
		sizeStrings(doc.Keywords) +
		ord.String.Size(doc.SearchQuery) +
		ord.String.Size(doc.URL)
}

// String lists are encoded as a varint length followed by the elements.
// Empty lists decode as nil.

func sizeStrings(v []string) int {
	size := varint.Int.Size(len(v))
	for _, s := range v {
		size += ord.String.Size(s)
	}
	return size
}

func marshalStrings(v []string, bs []byte) int {
	n := varint.Int.Marshal(len(v), bs)
	for _, s := range v {
		n += ord.String.Marshal(s, bs[n:])
	}
	return n
}

func unmarshalStrings(bs []byte) ([]string, int, error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if length < 0 || length > len(bs) {
		return nil, n, ErrTruncatedData
	}
	if length == 0 {
		return nil, n, nil
	}
	out := make([]string, 0, length)
	for range length {
		if n >= len(bs) {
			return nil, n, ErrTruncatedData
		}
		s, m, err := ord.String.Unmarshal(bs[n:])
		n += m
		if err != nil {
			return nil, n, err
		}
		out = append(out, s)
	}
	return out, n, nil
}

// reader walks a byte slice, remembering the first decoding error so that
// field-by-field decoding reads linearly.
type reader struct {
	data []byte
	pos  int
	err  error
}

func readValue[T any](r *reader, fn func([]byte) (T, int, error)) T {
	var zero T
	if r.err != nil {
		return zero
	}
	if r.pos > len(r.data) {
		r.err = ErrTruncatedData
		return zero
	}
	v, n, err := fn(r.data[r.pos:])
	if err != nil {
		r.err = err
		return zero
	}
	r.pos += n
	return v
}
