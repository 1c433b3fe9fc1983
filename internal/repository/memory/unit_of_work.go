package memory

import (
	"context"

	"cornell-notepad-be/internal/repository/contract"
	"cornell-notepad-be/internal/repository/unitofwork"
)

// UnitOfWork wraps the in-memory repositories. Begin/Commit/Rollback are
// no-ops: the double offers per-call atomicity only, like the real store
// offers per-document atomicity.
type UnitOfWork struct {
	users *UserRepository
	notes *NoteRepository
}

func (u *UnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *UnitOfWork) Commit() error                   { return nil }
func (u *UnitOfWork) Rollback() error                 { return nil }

func (u *UnitOfWork) UserRepository() contract.UserRepository {
	return u.users
}

func (u *UnitOfWork) NoteRepository() contract.NoteRepository {
	return u.notes
}

type RepositoryFactory struct {
	users *UserRepository
	notes *NoteRepository
}

func NewRepositoryFactory() *RepositoryFactory {
	return &RepositoryFactory{
		users: NewUserRepository(),
		notes: NewNoteRepository(),
	}
}

var _ unitofwork.RepositoryFactory = (*RepositoryFactory)(nil)

func (f *RepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &UnitOfWork{users: f.users, notes: f.notes}
}

// Users exposes the backing repository for test seeding.
func (f *RepositoryFactory) Users() *UserRepository { return f.users }

// Notes exposes the backing repository for test seeding.
func (f *RepositoryFactory) Notes() *NoteRepository { return f.notes }
