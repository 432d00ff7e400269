package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/quietharbor/haven/internal/db"
	"github.com/quietharbor/haven/internal/domain"
)

// SQLiteOutcomeRepo implements OutcomeRepo using a SQLite database.
type SQLiteOutcomeRepo struct {
	db db.DBTX
}

// NewSQLiteOutcomeRepo creates a new SQLiteOutcomeRepo.
func NewSQLiteOutcomeRepo(conn db.DBTX) *SQLiteOutcomeRepo {
	return &SQLiteOutcomeRepo{db: conn}
}

func (r *SQLiteOutcomeRepo) Create(ctx context.Context, o *domain.InterventionOutcome) error {
	query := `INSERT INTO intervention_outcomes (id, turn_id, type, rating, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		o.ID,
		o.TurnID,
		string(o.Type),
		string(o.Rating),
		o.Note,
		o.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting intervention outcome: %w", err)
	}
	return nil
}

func (r *SQLiteOutcomeRepo) ListByTurn(ctx context.Context, turnID string) ([]*domain.InterventionOutcome, error) {
	query := `SELECT id, turn_id, type, rating, note, created_at
		FROM intervention_outcomes WHERE turn_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, turnID)
	if err != nil {
		return nil, fmt.Errorf("listing outcomes by turn: %w", err)
	}
	defer rows.Close()

	var outcomes []*domain.InterventionOutcome
	for rows.Next() {
		var o domain.InterventionOutcome
		var typ, rating, createdAt string
		if err := rows.Scan(&o.ID, &o.TurnID, &typ, &rating, &o.Note, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning outcome: %w", err)
		}
		o.Type = domain.InterventionType(typ)
		o.Rating = domain.OutcomeRating(rating)
		o.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		outcomes = append(outcomes, &o)
	}
	return outcomes, rows.Err()
}

func (r *SQLiteOutcomeRepo) RecentTally(ctx context.Context, limit int) (OutcomeTally, error) {
	query := `SELECT rating FROM (
		SELECT rating, created_at FROM intervention_outcomes
		ORDER BY created_at DESC, id DESC LIMIT ?
	)`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return OutcomeTally{}, fmt.Errorf("tallying recent outcomes: %w", err)
	}
	defer rows.Close()

	var tally OutcomeTally
	for rows.Next() {
		var rating string
		if err := rows.Scan(&rating); err != nil {
			return OutcomeTally{}, fmt.Errorf("scanning outcome rating: %w", err)
		}
		tally.Total++
		if domain.OutcomeRating(rating) == domain.OutcomeNotHelped {
			tally.NotHelped++
		}
	}
	return tally, rows.Err()
}
