// Package textnorm normalizes symptom and document text and extracts
// search terms from it.
//
// Rule keyword matching works on the output of Normalize with substring
// containment, so multi-word keyword phrases match regardless of token
// boundaries. Query and document term overlap works on the output of Tokens.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MinTokenLength is the minimum rune length of an extracted token.
const MinTokenLength = 2

// Normalize applies NFKC normalization, lowercases, and collapses all
// whitespace runs to a single space.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(norm.NFKC.String(s))
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, " ")
}

// Tokens splits normalized text into word tokens. Any rune that is not a
// letter, digit, or combining mark is a boundary. Tokens shorter than
// MinTokenLength runes are dropped and duplicates are removed, keeping
// first-seen order.
func Tokens(s string) []string {
	normed := Normalize(s)
	if normed == "" {
		return nil
	}
	words := strings.FieldsFunc(normed, isBoundary)
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if utf8.RuneCountInString(w) < MinTokenLength {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// TokenSet returns the tokens of s as a set.
func TokenSet(s string) map[string]struct{} {
	toks := Tokens(s)
	set := make(map[string]struct{}, len(toks))
	for _, t := range toks {
		set[t] = struct{}{}
	}
	return set
}

// Dedupe removes duplicates from terms, keeping first-seen order.
func Dedupe(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func isBoundary(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsMark(r)
}
