package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"collapses whitespace", "  오른쪽   아랫배\t통증 ", "오른쪽 아랫배 통증"},
		{"lowercases", "Sore THROAT", "sore throat"},
		{"full width folds to ascii", "ＣＯＶＩＤ", "covid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestTokens(t *testing.T) {
	t.Run("splits on punctuation and drops short tokens", func(t *testing.T) {
		got := Tokens("목이 아파요, 열이 나요! a b cd")
		assert.Equal(t, []string{"목이", "아파요", "열이", "나요", "cd"}, got)
	})

	t.Run("deduplicates preserving first occurrence", func(t *testing.T) {
		got := Tokens("기침 기침 Cough cough 기침")
		assert.Equal(t, []string{"기침", "cough"}, got)
	})

	t.Run("single rune korean words are dropped", func(t *testing.T) {
		got := Tokens("배 목 가슴")
		assert.Equal(t, []string{"가슴"}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Tokens("   "))
	})

	t.Run("digits are word characters", func(t *testing.T) {
		assert.Equal(t, []string{"38도", "2일째"}, Tokens("38도 / 2일째"))
	})
}

func TestTokenSet(t *testing.T) {
	set := TokenSet("Acute pharyngitis in adults")
	assert.Len(t, set, 4)
	assert.Contains(t, set, "pharyngitis")
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Dedupe([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, Dedupe(nil))
}
