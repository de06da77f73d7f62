package repositories

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	NoteRepository NoteRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool, queryTimeout time.Duration) *Repositories {
	return &Repositories{
		NoteRepository: NewPostgresNoteRepository(db, queryTimeout),
	}
}
