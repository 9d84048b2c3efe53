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

// DocumentRepository implements storage.DocumentRepository for BadgerDB.
type DocumentRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(backend *Backend) (*DocumentRepository, error) {
	idSeq, err := backend.GetSequence(documentIDSeq)
	if err != nil {
		return nil, err
	}

	return &DocumentRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ordinal sequence.
func (r *DocumentRepository) Close() error {
	return r.idSeq.Release()
}

// PutDocuments inserts or replaces documents by ID.
func (r *DocumentRepository) PutDocuments(ctx context.Context, docs ...core.EvidenceDoc) error {
	for i := range docs {
		if err := core.ValidateEvidenceDoc(&docs[i]); err != nil {
			return err
		}
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		for i := range docs {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc := &docs[i]
			key := makeDocumentKey(doc.ID)

			var ordinal uint64
			old, oldOrdinal, err := readDocument(tx, key)
			switch {
			case err == nil:
				ordinal = oldOrdinal
				if err := deleteConditionIndex(tx, old); err != nil {
					return err
				}
			case errors.Is(err, storage.ErrNotFound):
				ordinal, err = nextOrdinal(r.idSeq)
				if err != nil {
					return err
				}
			default:
				return err
			}

			if err := tx.Set(key, storage.MarshalDocument(ordinal, doc)); err != nil {
				return err
			}
			for _, cond := range doc.Conditions {
				if err := tx.Set(makeDocumentConditionKey(cond, doc.ID), []byte(doc.ID)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)
}

// GetDocument retrieves a single document by ID.
func (r *DocumentRepository) GetDocument(ctx context.Context, id string) (*core.EvidenceDoc, error) {
	var doc *core.EvidenceDoc
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		doc, _, err = readDocument(tx, makeDocumentKey(id))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ListDocuments returns all documents in insertion order.
func (r *DocumentRepository) ListDocuments(ctx context.Context) ([]core.EvidenceDoc, error) {
	var entries []orderedDoc
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		return scanPrefix(tx, []byte(documentPrefix+":"), func(_, val []byte) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ordinal, doc, err := storage.UnmarshalDocument(val)
			if err != nil {
				return err
			}
			entries = append(entries, orderedDoc{ordinal: ordinal, doc: doc})
			return nil
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return sortDocs(entries), nil
}

// GetDocumentsByCondition returns the documents indexed under conditionKey.
func (r *DocumentRepository) GetDocumentsByCondition(ctx context.Context, conditionKey string) ([]core.EvidenceDoc, error) {
	var entries []orderedDoc
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var ids []string
		err := scanPrefix(tx, makePartialDocumentConditionKey(conditionKey), func(_, val []byte) error {
			ids = append(ids, string(val))
			return nil
		})
		if err != nil {
			return err
		}
		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return err
			}
			key := makeDocumentKey(id)
			item, err := tx.Get(key)
			if err != nil {
				return err
			}
			if err := item.Value(func(val []byte) error {
				ordinal, doc, err := storage.UnmarshalDocument(val)
				if err != nil {
					return err
				}
				entries = append(entries, orderedDoc{ordinal: ordinal, doc: doc})
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return sortDocs(entries), nil
}

// DeleteDocuments removes documents by ID, including index entries.
func (r *DocumentRepository) DeleteDocuments(ctx context.Context, ids ...string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeDocumentKey(id)
			doc, _, err := readDocument(tx, key)
			if err != nil {
				return err
			}
			if err := deleteConditionIndex(tx, doc); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

type orderedDoc struct {
	ordinal uint64
	doc     *core.EvidenceDoc
}

func sortDocs(entries []orderedDoc) []core.EvidenceDoc {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ordinal < entries[j].ordinal
	})
	docs := make([]core.EvidenceDoc, len(entries))
	for i, e := range entries {
		docs[i] = *e.doc
	}
	return docs
}

func readDocument(tx *badger.Txn, key []byte) (*core.EvidenceDoc, uint64, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, 0, fmt.Errorf("document %q: %w", key[len(documentPrefix)+1:], storage.ErrNotFound)
		}
		return nil, 0, err
	}
	var (
		doc     *core.EvidenceDoc
		ordinal uint64
	)
	err = item.Value(func(val []byte) error {
		ordinal, doc, err = storage.UnmarshalDocument(val)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return doc, ordinal, nil
}

func deleteConditionIndex(tx *badger.Txn, doc *core.EvidenceDoc) error {
	for _, cond := range doc.Conditions {
		if err := tx.Delete(makeDocumentConditionKey(cond, doc.ID)); err != nil {
			return err
		}
	}
	return nil
}
