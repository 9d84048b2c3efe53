package careguide

import (
	"context"
	"errors"

	"github.com/poiesic/careguide/catalog"
	"github.com/poiesic/careguide/storage/badger"
)

// LoadCatalogDB reads a catalog previously written by SeedCatalogDB.
// The vocabulary is not persisted; the built-in one is used.
func LoadCatalogDB(ctx context.Context, path string) (c *catalog.Catalog, err error) {
	err = withCatalogDB(path, func(repos catalogRepos) error {
		var loadErr error
		c, loadErr = catalog.Load(ctx, repos.rules, repos.docs)
		return loadErr
	})
	return c, err
}

// SeedCatalogDB writes c into the badger directory at path, replacing any
// rules and documents already stored there.
func SeedCatalogDB(ctx context.Context, path string, c *catalog.Catalog) error {
	return withCatalogDB(path, func(repos catalogRepos) error {
		return catalog.Seed(ctx, c, repos.rules, repos.docs)
	})
}

type catalogRepos struct {
	rules *badger.RuleRepository
	docs  *badger.DocumentRepository
}

func withCatalogDB(path string, fn func(catalogRepos) error) (err error) {
	backend, err := badger.OpenBackend(path, false)
	if err != nil {
		return err
	}

	ruleRepo, err := badger.NewRuleRepository(backend)
	if err != nil {
		return errors.Join(err, backend.Close())
	}

	docRepo, err := badger.NewDocumentRepository(backend)
	if err != nil {
		return errors.Join(err, ruleRepo.Close(), backend.Close())
	}

	defer func() {
		err = errors.Join(err, docRepo.Close(), ruleRepo.Close(), backend.Close())
	}()

	return fn(catalogRepos{rules: ruleRepo, docs: docRepo})
}
