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

import "errors"

// Domain validation errors
var (
	// ErrInvalidRule indicates a Rule failed validation.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrInvalidDocument indicates an EvidenceDoc failed validation.
	ErrInvalidDocument = errors.New("invalid evidence document")

	// ErrEmptyRuleID indicates the rule ID field is empty.
	ErrEmptyRuleID = errors.New("rule id cannot be empty")

	// ErrEmptyConditionKey indicates the condition key field is empty.
	ErrEmptyConditionKey = errors.New("condition key cannot be empty")

	// ErrNoGateKeywords indicates a rule without any gate keyword.
	ErrNoGateKeywords = errors.New("rule needs at least one gate keyword")

	// ErrInvalidWeight indicates a rule weight outside [0,1].
	ErrInvalidWeight = errors.New("rule weight must be between 0 and 1")

	// ErrInvalidUrgency indicates an unknown UrgencyLevel value.
	ErrInvalidUrgency = errors.New("invalid urgency level")

	// ErrEmptyDocumentID indicates the document ID field is empty.
	ErrEmptyDocumentID = errors.New("document id cannot be empty")

	// ErrEmptyTitle indicates the document Title field is empty.
	ErrEmptyTitle = errors.New("document title cannot be empty")

	// ErrInvalidDocType indicates an unknown DocType value.
	ErrInvalidDocType = errors.New("invalid document type")
)
