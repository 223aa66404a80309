package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-analytics-go/internal/domain/session"
	"github.com/cmlabs-hris/attendance-analytics-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type sessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) session.SessionRepository {
	return &sessionRepository{db: db}
}

// ListAll implements session.SessionRepository.
func (r *sessionRepository) ListAll(ctx context.Context) ([]session.Session, error) {
	query := `
		SELECT id, employee, date, login_time, logout_time, created_at
		FROM user_sessions
		ORDER BY date DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// ListFiltered implements session.SessionRepository. The SQL predicate must
// stay equivalent to the in-memory filter the aggregation engine applies to
// the same parameters.
func (r *sessionRepository) ListFiltered(ctx context.Context, year *int, months []time.Month) ([]session.Session, error) {
	query := `
		SELECT id, employee, date, login_time, logout_time, created_at
		FROM user_sessions
		WHERE ($1::int IS NULL OR EXTRACT(YEAR FROM date) = $1)
		  AND ($2::int[] IS NULL OR EXTRACT(MONTH FROM date) = ANY($2))
		ORDER BY date DESC
	`

	var monthInts []int
	if len(months) > 0 {
		monthInts = make([]int, 0, len(months))
		for _, m := range months {
			monthInts = append(monthInts, int(m))
		}
	}

	rows, err := r.db.Query(ctx, query, year, monthInts)
	if err != nil {
		return nil, fmt.Errorf("failed to list filtered sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// ReplaceAll implements session.SessionRepository. Delete and bulk insert run
// in one transaction, so concurrent readers never observe the empty window.
func (r *sessionRepository) ReplaceAll(ctx context.Context, sessions []session.Session) (int64, error) {
	var inserted int64
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM user_sessions`); err != nil {
			return fmt.Errorf("failed to clear sessions: %w", err)
		}

		if len(sessions) == 0 {
			return nil
		}

		copied, err := tx.CopyFrom(ctx,
			pgx.Identifier{"user_sessions"},
			[]string{"employee", "date", "login_time", "logout_time"},
			pgx.CopyFromSlice(len(sessions), func(i int) ([]interface{}, error) {
				s := sessions[i]
				return []interface{}{s.Employee, s.Date, s.LoginTime, s.LogoutTime}, nil
			}),
		)
		if err != nil {
			return fmt.Errorf("failed to insert sessions: %w", err)
		}
		inserted = copied
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// DeleteAll implements session.SessionRepository.
func (r *sessionRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM user_sessions`); err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}
	return nil
}

func scanSessions(rows pgx.Rows) ([]session.Session, error) {
	sessions := make([]session.Session, 0)
	for rows.Next() {
		var s session.Session
		if err := rows.Scan(&s.ID, &s.Employee, &s.Date, &s.LoginTime, &s.LogoutTime, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sessions: %w", err)
	}
	return sessions, nil
}
