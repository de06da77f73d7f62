package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teczka-budowlanca/backend/internal/app/models"
	"github.com/teczka-budowlanca/backend/internal/pkg/apperrors"
	"github.com/teczka-budowlanca/backend/internal/pkg/dberrors"
	"github.com/teczka-budowlanca/backend/internal/pkg/logger"
)

// statusCheckConstraint guards the status column; the service validates status
// values first, this is the backstop.
const statusCheckConstraint = "notes_status_check"

// noteColumns is the canonical column order used by every select and RETURNING clause.
var noteColumns = []string{
	"id", "user_id", "project_id", "section_id", "content", "status",
	"images", "audio", "tags", "contractor_name",
	"created_at", "updated_at", "deleted_at", "version_number",
}

var noteColumnList = strings.Join(noteColumns, ", ")

// NotePatch carries the mutable note fields of a partial update. A nil field
// is left untouched in the stored row.
type NotePatch struct {
	Content *string
	Tags    *[]string
	Status  *models.NoteStatus
}

// IsEmpty reports whether the patch would change nothing.
func (p NotePatch) IsEmpty() bool {
	return p.Content == nil && p.Tags == nil && p.Status == nil
}

// NoteRepository is the data-access contract for notes. Every operation is
// scoped by the owning user's identifier; cross-user access is structurally
// impossible at this layer.
type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	GetByID(ctx context.Context, userID, noteID string) (*models.Note, error)
	ListBySection(ctx context.Context, userID, projectID, sectionID string, limit, offset int) ([]*models.Note, int64, error)
	Update(ctx context.Context, userID, noteID string, patch NotePatch) (*models.Note, error)
	SoftDelete(ctx context.Context, userID, noteID string, deletedAt time.Time) error
	HardDelete(ctx context.Context, userID, noteID string) error
}

// PostgresNoteRepository implements NoteRepository on top of a pgx pool.
type PostgresNoteRepository struct {
	DB           *pgxpool.Pool
	queryTimeout time.Duration
}

// NewPostgresNoteRepository creates a new PostgresNoteRepository. queryTimeout
// bounds every round trip; zero disables the bound.
func NewPostgresNoteRepository(db *pgxpool.Pool, queryTimeout time.Duration) *PostgresNoteRepository {
	return &PostgresNoteRepository{DB: db, queryTimeout: queryTimeout}
}

var _ NoteRepository = (*PostgresNoteRepository)(nil)

// withTimeout bounds the context unless the caller already set a deadline.
func (r *PostgresNoteRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || r.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

// selectNotesQuery is the base select over the canonical column order.
func selectNotesQuery() squirrel.SelectBuilder {
	return squirrel.Select(noteColumns...).
		From("notes").
		PlaceholderFormat(squirrel.Dollar)
}

// scopeLive narrows a select to one user's live (not soft-deleted) rows.
func scopeLive(b squirrel.SelectBuilder, userID string) squirrel.SelectBuilder {
	return b.
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"deleted_at": nil})
}

// scanNote reads one row in the canonical column order and maps it to the
// domain entity. Stored images/tags that are not JSON string arrays collapse
// to empty lists, and a missing version_number defaults to 1.
func scanNote(row pgx.Row) (*models.Note, error) {
	var (
		note      models.Note
		imagesRaw []byte
		tagsRaw   []byte
		version   *int32
	)
	err := row.Scan(
		&note.ID, &note.UserID, &note.ProjectID, &note.SectionID, &note.Content, &note.Status,
		&imagesRaw, &note.Audio, &tagsRaw, &note.ContractorName,
		&note.CreatedAt, &note.UpdatedAt, &note.DeletedAt, &version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, err
	}
	note.Images = stringList(imagesRaw)
	note.Tags = stringList(tagsRaw)
	note.VersionNumber = 1
	if version != nil && *version > 0 {
		note.VersionNumber = int(*version)
	}
	return &note, nil
}

// stringList coerces a stored jsonb value into a list of strings. Anything
// that is not a JSON string array becomes an empty list.
func stringList(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

// Create inserts a new note and returns the stored row, including the
// server-assigned id and timestamps.
func (r *PostgresNoteRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	sqlStr, args, err := squirrel.Insert("notes").
		Columns("user_id", "project_id", "section_id", "content", "status",
			"images", "audio", "tags", "contractor_name").
		Values(note.UserID, note.ProjectID, note.SectionID, note.Content, note.Status,
			note.Images, note.Audio, note.Tags, note.ContractorName).
		Suffix("RETURNING " + noteColumnList).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building insert note SQL")
		return nil, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	stored, err := scanNote(r.DB.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if dberrors.IsCheckConstraintError(err, statusCheckConstraint) {
			return nil, apperrors.NewValidationError("invalid note status")
		}
		logger.Error().Err(err).Msg("Error executing insert note query")
		return nil, err
	}
	return stored, nil
}

// GetByID retrieves a single live note owned by the given user. A note that
// does not exist, belongs to another user, or was soft-deleted is reported
// identically as not found.
func (r *PostgresNoteRepository) GetByID(ctx context.Context, userID, noteID string) (*models.Note, error) {
	sqlStr, args, err := scopeLive(selectNotesQuery(), userID).
		Where(squirrel.Eq{"id": noteID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get note by ID SQL")
		return nil, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return scanNote(r.DB.QueryRow(ctx, sqlStr, args...))
}

// scopeSection narrows a select to one user's live rows in a project section.
func scopeSection(b squirrel.SelectBuilder, userID, projectID, sectionID string) squirrel.SelectBuilder {
	return scopeLive(b, userID).
		Where(squirrel.Eq{"project_id": projectID}).
		Where(squirrel.Eq{"section_id": sectionID})
}

// buildCountNotesSQL counts a user's live notes in a section, independent of
// any page window.
func buildCountNotesSQL(userID, projectID, sectionID string) (string, []interface{}, error) {
	return scopeSection(
		squirrel.Select("count(*)").From("notes").PlaceholderFormat(squirrel.Dollar),
		userID, projectID, sectionID,
	).ToSql()
}

// buildListNotesSQL selects one page of a user's live notes in a section,
// newest first; created_at ties are broken by id so pages stay disjoint.
func buildListNotesSQL(userID, projectID, sectionID string, limit, offset int) (string, []interface{}, error) {
	return scopeSection(selectNotesQuery(), userID, projectID, sectionID).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
}

// ListBySection returns one page of a user's live notes in a section, newest
// first, plus the total match count independent of the page window.
func (r *PostgresNoteRepository) ListBySection(ctx context.Context, userID, projectID, sectionID string, limit, offset int) ([]*models.Note, int64, error) {
	countSQL, countArgs, err := buildCountNotesSQL(userID, projectID, sectionID)
	if err != nil {
		logger.Error().Err(err).Msg("Error building count notes SQL")
		return nil, 0, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	if err := r.DB.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing count notes query")
		return nil, 0, err
	}

	notes := make([]*models.Note, 0)
	if total == 0 {
		return notes, 0, nil
	}

	listSQL, listArgs, err := buildListNotesSQL(userID, projectID, sectionID, limit, offset)
	if err != nil {
		logger.Error().Err(err).Msg("Error building list notes SQL")
		return nil, 0, err
	}

	rows, err := r.DB.Query(ctx, listSQL, listArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list notes query")
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, 0, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating note rows")
		return nil, 0, fmt.Errorf("database iteration error: %w", err)
	}

	return notes, total, nil
}

// buildUpdateNoteSQL assembles the partial update statement: only patch
// fields that are present produce a SET clause, and the WHERE predicate is
// identical to the one GetByID uses.
func buildUpdateNoteSQL(userID, noteID string, patch NotePatch) (string, []interface{}, error) {
	builder := squirrel.Update("notes").PlaceholderFormat(squirrel.Dollar)
	if patch.Content != nil {
		builder = builder.Set("content", *patch.Content)
	}
	if patch.Tags != nil {
		builder = builder.Set("tags", *patch.Tags)
	}
	if patch.Status != nil {
		builder = builder.Set("status", *patch.Status)
	}

	return builder.
		Where(squirrel.Eq{"id": noteID}).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"deleted_at": nil}).
		Suffix("RETURNING " + noteColumnList).
		ToSql()
}

// Update applies the patch to the scoped row and returns the stored result.
// updated_at is refreshed by the table trigger, never set here.
func (r *PostgresNoteRepository) Update(ctx context.Context, userID, noteID string, patch NotePatch) (*models.Note, error) {
	sqlStr, args, err := buildUpdateNoteSQL(userID, noteID, patch)
	if err != nil {
		logger.Error().Err(err).Msg("Error building update note SQL")
		return nil, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	stored, err := scanNote(r.DB.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if dberrors.IsCheckConstraintError(err, statusCheckConstraint) {
			return nil, apperrors.NewValidationError("invalid note status")
		}
		return nil, err
	}
	return stored, nil
}

// SoftDelete stamps deleted_at on the scoped row. Zero affected rows is not
// an error: deleting an already-deleted or unknown note reports success.
func (r *PostgresNoteRepository) SoftDelete(ctx context.Context, userID, noteID string, deletedAt time.Time) error {
	sqlStr, args, err := squirrel.Update("notes").
		Set("deleted_at", deletedAt).
		Where(squirrel.Eq{"id": noteID}).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building soft delete note SQL")
		return err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.DB.Exec(ctx, sqlStr, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing soft delete note query")
		return err
	}
	return nil
}

// HardDelete permanently removes the scoped row. Callers are expected to have
// checked privilege; this layer only enforces ownership.
func (r *PostgresNoteRepository) HardDelete(ctx context.Context, userID, noteID string) error {
	sqlStr, args, err := squirrel.Delete("notes").
		Where(squirrel.Eq{"id": noteID}).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building hard delete note SQL")
		return err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.DB.Exec(ctx, sqlStr, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing hard delete note query")
		return err
	}
	return nil
}
