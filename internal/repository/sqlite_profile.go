package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quietharbor/haven/internal/db"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*SessionProfile, error) {
	query := `SELECT id, progress_score, coping_skill_count, trauma_triggers
		FROM session_profile WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var p SessionProfile
	var triggers string
	err := row.Scan(&p.ID, &p.ProgressScore, &p.CopingSkillCount, &triggers)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session profile: %w", err)
	}
	p.TraumaTriggers = splitTags(triggers)
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *SessionProfile) error {
	query := `INSERT OR REPLACE INTO session_profile
		(id, progress_score, coping_skill_count, trauma_triggers)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.ProgressScore,
		p.CopingSkillCount,
		joinTags(p.TraumaTriggers),
	)
	if err != nil {
		return fmt.Errorf("upserting session profile: %w", err)
	}
	return nil
}
