package catalog

import (
	"context"
	"fmt"

	"github.com/poiesic/careguide/storage"
)

// Load builds a Catalog from persisted rules and documents. The vocabulary
// is not persisted; the built-in tables are used.
func Load(ctx context.Context, rules storage.RuleRepository, docs storage.DocumentRepository) (*Catalog, error) {
	if rules == nil || docs == nil {
		return nil, ErrRepositoryRequired
	}

	storedRules, err := rules.ListRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}
	storedDocs, err := docs.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return New(storedRules, storedDocs, defaultVocabulary)
}

// Seed makes the repositories hold exactly the rules and documents of c,
// in catalog order. Records that c no longer contains are removed.
func Seed(ctx context.Context, c *Catalog, rules storage.RuleRepository, docs storage.DocumentRepository) error {
	if rules == nil || docs == nil {
		return ErrRepositoryRequired
	}

	existingRules, err := rules.ListRules(ctx)
	if err != nil {
		return fmt.Errorf("list rules: %w", err)
	}
	keepRules := make(map[string]struct{}, len(c.rules))
	for _, r := range c.rules {
		keepRules[r.ID] = struct{}{}
	}
	var staleRules []string
	for _, r := range existingRules {
		if _, ok := keepRules[r.ID]; !ok {
			staleRules = append(staleRules, r.ID)
		}
	}
	if len(staleRules) > 0 {
		if err := rules.DeleteRules(ctx, staleRules...); err != nil {
			return fmt.Errorf("delete stale rules: %w", err)
		}
	}
	if err := rules.PutRules(ctx, c.Rules()...); err != nil {
		return fmt.Errorf("put rules: %w", err)
	}

	existingDocs, err := docs.ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("list documents: %w", err)
	}
	keepDocs := make(map[string]struct{}, len(c.docs))
	for _, d := range c.docs {
		keepDocs[d.ID] = struct{}{}
	}
	var staleDocs []string
	for _, d := range existingDocs {
		if _, ok := keepDocs[d.ID]; !ok {
			staleDocs = append(staleDocs, d.ID)
		}
	}
	if len(staleDocs) > 0 {
		if err := docs.DeleteDocuments(ctx, staleDocs...); err != nil {
			return fmt.Errorf("delete stale documents: %w", err)
		}
	}
	if err := docs.PutDocuments(ctx, c.Documents()...); err != nil {
		return fmt.Errorf("put documents: %w", err)
	}
	return nil
}
