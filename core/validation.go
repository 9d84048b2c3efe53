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

package core

import (
	"fmt"
	"strings"
)

// ValidateRule validates a Rule according to domain rules.
//
// Validation rules:
//   - ID and ConditionKey must not be empty
//   - At least one non-blank gate keyword
//   - Weight must be within [0,1]
//   - Urgency must be a known level
//
// NOT validated:
//   - SupportKeywords (may be empty)
//   - Departments and guidance texts
func ValidateRule(rule *Rule) error {
	if rule == nil {
		return fmt.Errorf("%w: rule is nil", ErrInvalidRule)
	}

	if strings.TrimSpace(rule.ID) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRule, ErrEmptyRuleID)
	}

	if strings.TrimSpace(rule.ConditionKey) == "" {
		return fmt.Errorf("%w: %s: %w", ErrInvalidRule, rule.ID, ErrEmptyConditionKey)
	}

	hasGate := false
	for _, kw := range rule.GateKeywords {
		if strings.TrimSpace(kw) != "" {
			hasGate = true
			break
		}
	}
	if !hasGate {
		return fmt.Errorf("%w: %s: %w", ErrInvalidRule, rule.ID, ErrNoGateKeywords)
	}

	if rule.Weight < 0 || rule.Weight > 1 {
		return fmt.Errorf("%w: %s: %w (got %v)", ErrInvalidRule, rule.ID, ErrInvalidWeight, rule.Weight)
	}

	if err := ValidateUrgency(rule.Urgency); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidRule, rule.ID, err)
	}

	return nil
}

// ValidateUrgency validates that an UrgencyLevel has a known value.
func ValidateUrgency(level UrgencyLevel) error {
	switch level {
	case UrgencyEmergency, UrgencyUrgent, UrgencyRoutine, UrgencyObserve:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidUrgency, level)
}

// ValidateEvidenceDoc validates an EvidenceDoc.
//
// Validation rules:
//   - ID and Title must not be empty
//   - Type must be a known DocType
func ValidateEvidenceDoc(doc *EvidenceDoc) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if strings.TrimSpace(doc.ID) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyDocumentID)
	}

	if strings.TrimSpace(doc.Title) == "" {
		return fmt.Errorf("%w: %s: %w", ErrInvalidDocument, doc.ID, ErrEmptyTitle)
	}

	if !IsKnownDocType(doc.Type) {
		return fmt.Errorf("%w: %s: %w: %q", ErrInvalidDocument, doc.ID, ErrInvalidDocType, doc.Type)
	}

	return nil
}

// IsKnownDocType reports whether t is one of the recognized document types.
func IsKnownDocType(t DocType) bool {
	switch t {
	case DocTypeGuideline, DocTypeSystematic, DocTypeReview, DocTypeClinical, DocTypeEmergency:
		return true
	}
	return false
}

// LabelForConfidence maps a confidence score to its label using the given
// medium and high thresholds (inclusive lower bounds).
func LabelForConfidence(confidence, medium, high float64) ConfidenceLabel {
	if confidence >= high {
		return ConfidenceHigh
	}
	if confidence >= medium {
		return ConfidenceMedium
	}
	return ConfidenceLow
}
