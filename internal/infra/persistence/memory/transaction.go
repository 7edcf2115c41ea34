package memory

import (
	"context"

	"roost/internal/domain/repository"
)

// TransactionManager runs the callback directly against the store. The
// in-memory adapter has no transactions; the mutex inside each operation is
// the only guard, mirroring the documented last-write-wins semantics.
type TransactionManager struct {
	store *Store
}

// NewTransactionManager creates a transaction manager over the given store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &TransactionManager{store: store}
}

var _ repository.TransactionManager = (*TransactionManager)(nil)

// Execute invokes fn with a factory bound to the store.
func (tm *TransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(&factory{store: tm.store})
}

type factory struct {
	store *Store
}

func (f *factory) UserRepo() repository.UserRepository {
	return f.store
}

func (f *factory) ApartmentRepo() repository.ApartmentRepository {
	return f.store.Apartments()
}
