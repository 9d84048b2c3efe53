package badger

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/careguide/core"
	"github.com/poiesic/careguide/storage"
)

// RuleRepository implements storage.RuleRepository for BadgerDB.
type RuleRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.RuleRepository = (*RuleRepository)(nil)

// NewRuleRepository creates a new RuleRepository.
func NewRuleRepository(backend *Backend) (*RuleRepository, error) {
	idSeq, err := backend.GetSequence(ruleIDSeq)
	if err != nil {
		return nil, err
	}

	return &RuleRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ordinal sequence.
func (r *RuleRepository) Close() error {
	return r.idSeq.Release()
}

// PutRules inserts or replaces rules by ID.
func (r *RuleRepository) PutRules(ctx context.Context, rules ...core.Rule) error {
	for i := range rules {
		if err := core.ValidateRule(&rules[i]); err != nil {
			return err
		}
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		for i := range rules {
			if err := ctx.Err(); err != nil {
				return err
			}
			rule := &rules[i]
			key := makeRuleKey(rule.ID)

			ordinal, found, err := readRuleOrdinal(tx, key)
			if err != nil {
				return err
			}
			if !found {
				ordinal, err = nextOrdinal(r.idSeq)
				if err != nil {
					return err
				}
			}

			if err := tx.Set(key, storage.MarshalRule(ordinal, rule)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetRule retrieves a single rule by ID.
func (r *RuleRepository) GetRule(ctx context.Context, id string) (*core.Rule, error) {
	var rule *core.Rule
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeRuleKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("rule %q: %w", id, storage.ErrNotFound)
			}
			return err
		}
		return item.Value(func(val []byte) error {
			_, rule, err = storage.UnmarshalRule(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return rule, nil
}

// ListRules returns all rules in insertion order.
func (r *RuleRepository) ListRules(ctx context.Context) ([]core.Rule, error) {
	type entry struct {
		ordinal uint64
		rule    *core.Rule
	}
	var entries []entry

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		return scanPrefix(tx, []byte(rulePrefix+":"), func(_, val []byte) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ordinal, rule, err := storage.UnmarshalRule(val)
			if err != nil {
				return err
			}
			entries = append(entries, entry{ordinal: ordinal, rule: rule})
			return nil
		})
	}, false)
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ordinal < entries[j].ordinal
	})
	rules := make([]core.Rule, len(entries))
	for i, e := range entries {
		rules[i] = *e.rule
	}
	return rules, nil
}

// DeleteRules removes rules by ID.
func (r *RuleRepository) DeleteRules(ctx context.Context, ids ...string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeRuleKey(id)
			if _, err := tx.Get(key); err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					return fmt.Errorf("rule %q: %w", id, storage.ErrNotFound)
				}
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

func readRuleOrdinal(tx *badger.Txn, key []byte) (uint64, bool, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	var ordinal uint64
	err = item.Value(func(val []byte) error {
		ordinal, _, err = storage.UnmarshalRule(val)
		return err
	})
	return ordinal, err == nil, err
}

// nextOrdinal draws the next value from seq.
// BadgerDB sequences can return 0 on first call, so we skip it.
func nextOrdinal(seq *badger.Sequence) (uint64, error) {
	next, err := seq.Next()
	if err != nil {
		return 0, err
	}
	if next == 0 {
		return seq.Next()
	}
	return next, nil
}
