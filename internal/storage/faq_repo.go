package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_faq_store.go -package=mocks clinic-faq/internal/storage FAQStore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// FAQStore defines the interface for FAQ storage operations.
type FAQStore interface {
	// Create inserts a new FAQ and sets its ID and timestamps.
	Create(ctx context.Context, faq *FAQRecord) error
	// List returns FAQs ordered by ascending ID. An empty lang returns every language.
	List(ctx context.Context, lang string) ([]FAQRecord, error)
	// GetByID gets a FAQ by its ID. Returns ErrNotFound if not found.
	GetByID(ctx context.Context, id int64) (*FAQRecord, error)
	// Update overwrites the content of an existing FAQ. Returns ErrNotFound if not found.
	Update(ctx context.Context, faq *FAQRecord) error
	// Delete removes a FAQ. Returns ErrNotFound if not found.
	Delete(ctx context.Context, id int64) error
	// DeleteAll removes every FAQ.
	DeleteAll(ctx context.Context) error
	// Generation returns a counter that every successful write increments.
	Generation(ctx context.Context) (int64, error)
	// Ping verifies the backing database is reachable.
	Ping(ctx context.Context) error
}

// FAQRepo provides methods for FAQ operations.
// It implements the FAQStore interface.
type FAQRepo struct {
	db *DB
}

// NewFAQRepo creates a new FAQRepo.
func NewFAQRepo(db *DB) *FAQRepo {
	return &FAQRepo{db: db}
}

const faqColumns = "id, question, answer, tags, lang, created_at, updated_at"

// Create inserts a new FAQ. The ID is assigned by the database.
func (r *FAQRepo) Create(ctx context.Context, faq *FAQRecord) error {
	tags, err := encodeTags(faq.Tags)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	var id int64
	err = r.write(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			r.db.Rebind("INSERT INTO faqs (question, answer, tags, lang, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?) RETURNING id"),
			faq.Question, faq.Answer, tags, faq.Lang, now, now,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to insert faq: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	faq.ID = id

	faq.CreatedAt = now
	faq.UpdatedAt = now
	return nil
}

// List returns FAQs for lang ordered by ascending ID.
// Returns an empty slice if no FAQs exist (not an error).
func (r *FAQRepo) List(ctx context.Context, lang string) ([]FAQRecord, error) {
	query := "SELECT " + faqColumns + " FROM faqs"
	var args []any
	if lang != "" {
		query += " WHERE lang = ?"
		args = append(args, lang)
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query faqs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	faqs := []FAQRecord{}
	for rows.Next() {
		faq, err := scanFAQ(rows)
		if err != nil {
			return nil, err
		}
		faqs = append(faqs, *faq)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return faqs, nil
}

// GetByID gets a FAQ by its ID. Returns ErrNotFound if not found.
func (r *FAQRepo) GetByID(ctx context.Context, id int64) (*FAQRecord, error) {
	row := r.db.QueryRowContext(ctx,
		r.db.Rebind("SELECT "+faqColumns+" FROM faqs WHERE id = ?"),
		id,
	)
	faq, err := scanFAQ(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return faq, nil
}

// Update overwrites question, answer, tags and lang of an existing FAQ and
// bumps updated_at. Returns ErrNotFound if no row has faq.ID.
func (r *FAQRepo) Update(ctx context.Context, faq *FAQRecord) error {
	tags, err := encodeTags(faq.Tags)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	err = r.write(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			r.db.Rebind("UPDATE faqs SET question = ?, answer = ?, tags = ?, lang = ?, updated_at = ? WHERE id = ?"),
			faq.Question, faq.Answer, tags, faq.Lang, now, faq.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update faq: %w", err)
		}
		return requireAffected(result)
	})
	if err != nil {
		return err
	}

	faq.UpdatedAt = now
	return nil
}

// Delete removes a FAQ by ID. Returns ErrNotFound if no row has id.
func (r *FAQRepo) Delete(ctx context.Context, id int64) error {
	return r.write(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, r.db.Rebind("DELETE FROM faqs WHERE id = ?"), id)
		if err != nil {
			return fmt.Errorf("failed to delete faq: %w", err)
		}
		return requireAffected(result)
	})
}

// DeleteAll removes every FAQ. Used by the seeder before inserting fresh data.
func (r *FAQRepo) DeleteAll(ctx context.Context) error {
	return r.write(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM faqs"); err != nil {
			return fmt.Errorf("failed to delete faqs: %w", err)
		}
		return nil
	})
}

// Generation returns the write counter. It starts at 0 after Migrate.
func (r *FAQRepo) Generation(ctx context.Context) (int64, error) {
	var gen int64
	err := r.db.QueryRowContext(ctx, "SELECT value FROM faq_generation WHERE id = 1").Scan(&gen)
	if err != nil {
		return 0, fmt.Errorf("failed to read faq generation: %w", err)
	}
	return gen, nil
}

// Ping verifies the database connection.
func (r *FAQRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// write runs fn in a transaction and bumps the generation in the same
// transaction, so readers never see new rows with an old generation.
func (r *FAQRepo) write(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "UPDATE faq_generation SET value = value + 1 WHERE id = 1"); err != nil {
		return fmt.Errorf("failed to bump faq generation: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFAQ(row rowScanner) (*FAQRecord, error) {
	var faq FAQRecord
	var tags string
	err := row.Scan(&faq.ID, &faq.Question, &faq.Answer, &tags, &faq.Lang, &faq.CreatedAt, &faq.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan faq: %w", err)
	}

	if err := json.Unmarshal([]byte(tags), &faq.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags for faq %d: %w", faq.ID, err)
	}
	if faq.Tags == nil {
		faq.Tags = []string{}
	}
	return &faq, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}
	return string(data), nil
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
