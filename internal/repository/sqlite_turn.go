package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/quietharbor/haven/internal/db"
	"github.com/quietharbor/haven/internal/domain"
)

// SQLiteTurnRepo implements TurnRepo using a SQLite database.
type SQLiteTurnRepo struct {
	db db.DBTX
}

// NewSQLiteTurnRepo creates a new SQLiteTurnRepo.
func NewSQLiteTurnRepo(conn db.DBTX) *SQLiteTurnRepo {
	return &SQLiteTurnRepo{db: conn}
}

func (r *SQLiteTurnRepo) Create(ctx context.Context, turn *domain.CheckinTurn) error {
	query := `INSERT INTO checkin_turns (id, text, emotion, intensity, tier, safety_level,
		crisis_override, interventions, exposure_offered, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		turn.ID,
		turn.Text,
		string(turn.Emotion),
		turn.Intensity,
		string(turn.Tier),
		string(turn.SafetyLevel),
		boolToInt(turn.CrisisOverride),
		joinTypes(turn.Interventions),
		boolToInt(turn.ExposureOffered),
		turn.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting checkin turn: %w", err)
	}
	return nil
}

func (r *SQLiteTurnRepo) GetByID(ctx context.Context, id string) (*domain.CheckinTurn, error) {
	query := `SELECT id, text, emotion, intensity, tier, safety_level,
		crisis_override, interventions, exposure_offered, created_at
		FROM checkin_turns WHERE id = ?`
	turn, err := r.scanTurn(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("checkin turn %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading checkin turn: %w", err)
	}
	return turn, nil
}

func (r *SQLiteTurnRepo) ListRecent(ctx context.Context, limit int) ([]*domain.CheckinTurn, error) {
	query := `SELECT id, text, emotion, intensity, tier, safety_level,
		crisis_override, interventions, exposure_offered, created_at
		FROM checkin_turns ORDER BY created_at DESC, id DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent turns: %w", err)
	}
	defer rows.Close()

	var turns []*domain.CheckinTurn
	for rows.Next() {
		turn, err := r.scanTurn(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning checkin turn: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, rows.Err()
}

func (r *SQLiteTurnRepo) CountByTier(ctx context.Context) (map[domain.CrisisTier]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT tier, COUNT(*) FROM checkin_turns GROUP BY tier`)
	if err != nil {
		return nil, fmt.Errorf("counting turns by tier: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.CrisisTier]int)
	for rows.Next() {
		var tier string
		var n int
		if err := rows.Scan(&tier, &n); err != nil {
			return nil, fmt.Errorf("scanning tier count: %w", err)
		}
		counts[domain.CrisisTier(tier)] = n
	}
	return counts, rows.Err()
}

func (r *SQLiteTurnRepo) CountServed(ctx context.Context) (map[domain.InterventionType]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT interventions FROM checkin_turns WHERE interventions != ''`)
	if err != nil {
		return nil, fmt.Errorf("counting served interventions: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.InterventionType]int)
	for rows.Next() {
		var joined string
		if err := rows.Scan(&joined); err != nil {
			return nil, fmt.Errorf("scanning interventions: %w", err)
		}
		for _, it := range splitTypes(joined) {
			counts[it]++
		}
	}
	return counts, rows.Err()
}

// scanner abstracts *sql.Row and *sql.Rows for shared scanning.
type scanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteTurnRepo) scanTurn(s scanner) (*domain.CheckinTurn, error) {
	var turn domain.CheckinTurn
	var emotion, tier, level, interventions, createdAt string
	var crisisOverride, exposureOffered int

	err := s.Scan(
		&turn.ID,
		&turn.Text,
		&emotion,
		&turn.Intensity,
		&tier,
		&level,
		&crisisOverride,
		&interventions,
		&exposureOffered,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	turn.Emotion = domain.EmotionType(emotion)
	turn.Tier = domain.CrisisTier(tier)
	turn.SafetyLevel = domain.SafetyLevel(level)
	turn.CrisisOverride = intToBool(crisisOverride)
	turn.Interventions = splitTypes(interventions)
	turn.ExposureOffered = intToBool(exposureOffered)
	turn.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &turn, nil
}
