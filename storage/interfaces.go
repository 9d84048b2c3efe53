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
	"context"

	"github.com/poiesic/careguide/core"
)

// Repository is the base interface shared by all repositories.
type Repository interface {
	// Close releases resources held by the repository.
	// It does not close the underlying backend.
	Close() error
}

// RuleRepository persists the triage rule table.
type RuleRepository interface {
	Repository
	// PutRules inserts or replaces rules by ID.
	// New rules are appended after existing ones; replaced rules keep
	// their original position.
	PutRules(ctx context.Context, rules ...core.Rule) error

	// GetRule retrieves a single rule by ID.
	// Returns ErrNotFound if the rule doesn't exist.
	GetRule(ctx context.Context, id string) (*core.Rule, error)

	// ListRules returns all rules in insertion order.
	ListRules(ctx context.Context) ([]core.Rule, error)

	// DeleteRules removes rules by ID.
	// Returns ErrNotFound if any rule doesn't exist.
	DeleteRules(ctx context.Context, ids ...string) error
}

// DocumentRepository persists the evidence corpus.
type DocumentRepository interface {
	Repository
	// PutDocuments inserts or replaces documents by ID and maintains the
	// condition index. Replaced documents keep their original position.
	PutDocuments(ctx context.Context, docs ...core.EvidenceDoc) error

	// GetDocument retrieves a single document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id string) (*core.EvidenceDoc, error)

	// ListDocuments returns all documents in insertion order.
	ListDocuments(ctx context.Context) ([]core.EvidenceDoc, error)

	// GetDocumentsByCondition returns the documents associated with a
	// condition key, in insertion order.
	GetDocumentsByCondition(ctx context.Context, conditionKey string) ([]core.EvidenceDoc, error)

	// DeleteDocuments removes documents by ID, including index entries.
	// Returns ErrNotFound if any document doesn't exist.
	DeleteDocuments(ctx context.Context, ids ...string) error
}
