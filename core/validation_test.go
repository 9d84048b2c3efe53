package core

import (
	"errors"
	"testing"
)

func validRule() *Rule {
	return &Rule{
		ID:              "acute_pharyngitis_pattern",
		ConditionKey:    "급성 인두염",
		GateKeywords:    []string{"목", "인후"},
		SupportKeywords: []string{"아프"},
		Urgency:         UrgencyRoutine,
		Weight:          0.65,
	}
}

func TestValidateRule(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Rule)
		wantErr error
	}{
		{
			name:    "valid rule",
			mutate:  func(r *Rule) {},
			wantErr: nil,
		},
		{
			name:    "valid rule without support keywords",
			mutate:  func(r *Rule) { r.SupportKeywords = nil },
			wantErr: nil,
		},
		{
			name:    "empty id",
			mutate:  func(r *Rule) { r.ID = " " },
			wantErr: ErrEmptyRuleID,
		},
		{
			name:    "empty condition key",
			mutate:  func(r *Rule) { r.ConditionKey = "" },
			wantErr: ErrEmptyConditionKey,
		},
		{
			name:    "blank gate keywords",
			mutate:  func(r *Rule) { r.GateKeywords = []string{"", "  "} },
			wantErr: ErrNoGateKeywords,
		},
		{
			name:    "weight above one",
			mutate:  func(r *Rule) { r.Weight = 1.2 },
			wantErr: ErrInvalidWeight,
		},
		{
			name:    "negative weight",
			mutate:  func(r *Rule) { r.Weight = -0.1 },
			wantErr: ErrInvalidWeight,
		},
		{
			name:    "unknown urgency",
			mutate:  func(r *Rule) { r.Urgency = "soon" },
			wantErr: ErrInvalidUrgency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRule()
			tt.mutate(r)
			err := ValidateRule(r)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateRule() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidRule) {
				t.Errorf("ValidateRule() error should wrap ErrInvalidRule, got %v", err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateRule() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("nil rule", func(t *testing.T) {
		if err := ValidateRule(nil); !errors.Is(err, ErrInvalidRule) {
			t.Errorf("ValidateRule(nil) = %v", err)
		}
	})
}

func TestValidateEvidenceDoc(t *testing.T) {
	tests := []struct {
		name    string
		doc     *EvidenceDoc
		wantErr error
	}{
		{
			name:    "valid document",
			doc:     &EvidenceDoc{ID: "d1", Title: "Acute pharyngitis", Type: DocTypeReview},
			wantErr: nil,
		},
		{
			name:    "empty id",
			doc:     &EvidenceDoc{Title: "t", Type: DocTypeReview},
			wantErr: ErrEmptyDocumentID,
		},
		{
			name:    "empty title",
			doc:     &EvidenceDoc{ID: "d1", Type: DocTypeReview},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "unknown type",
			doc:     &EvidenceDoc{ID: "d1", Title: "t", Type: "preprint"},
			wantErr: ErrInvalidDocType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEvidenceDoc(tt.doc)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateEvidenceDoc() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidDocument) || !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateEvidenceDoc() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLabelForConfidence(t *testing.T) {
	tests := []struct {
		confidence float64
		want       ConfidenceLabel
	}{
		{0.0, ConfidenceLow},
		{0.44, ConfidenceLow},
		{0.49, ConfidenceLow},
		{0.50, ConfidenceMedium},
		{0.74, ConfidenceMedium},
		{0.75, ConfidenceHigh},
		{1.0, ConfidenceHigh},
	}

	for _, tt := range tests {
		if got := LabelForConfidence(tt.confidence, 0.50, 0.75); got != tt.want {
			t.Errorf("LabelForConfidence(%v) = %q, want %q", tt.confidence, got, tt.want)
		}
	}
}

func TestValidateUrgency(t *testing.T) {
	for _, level := range []UrgencyLevel{UrgencyEmergency, UrgencyUrgent, UrgencyRoutine, UrgencyObserve} {
		if err := ValidateUrgency(level); err != nil {
			t.Errorf("ValidateUrgency(%q) = %v, want nil", level, err)
		}
	}
	if err := ValidateUrgency("later"); !errors.Is(err, ErrInvalidUrgency) {
		t.Errorf("ValidateUrgency(later) = %v, want ErrInvalidUrgency", err)
	}
}
