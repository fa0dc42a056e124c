// README: Trip store backed by PostgreSQL; header and day rows commit together.
package trip

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Save writes one trip header row and its day rows in a single transaction,
// so a trip without its days is never visible to readers. Returns the
// assigned trip id.
func (s *Store) Save(ctx context.Context, p *Plan, req Request) (int64, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO trips (
			user_id, origin, destination, days, budget_level, travelers,
			travel_month, overview, tips, estimated_total_budget,
			estimated_per_person, lat, lng, weather_summary, budget_breakdown
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12, $13, $14, $15
		) RETURNING id`,
		req.UserID,
		nullStr(req.Origin),
		p.Destination,
		p.Days,
		p.BudgetLevel,
		req.Travelers,
		nullStr(req.TravelMonth),
		p.Overview,
		encodeList(p.Tips),
		p.EstimatedTotalBudget,
		p.EstimatedPerPerson,
		p.Lat,
		p.Lng,
		p.WeatherSummary,
		nullStr(encodeBreakdown(p.BudgetBreakdown)),
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	for _, d := range p.DailyPlan {
		_, err = tx.Exec(ctx, `
			INSERT INTO trip_days (trip_id, day_number, title, summary, places)
			VALUES ($1, $2, $3, $4, $5)`,
			id, d.Day, d.Title, d.Summary, encodeList(d.Places),
		)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

// Load reconstructs a Plan from its header row and ordered day rows, and
// reports the owning user id. Ownership enforcement is the caller's job.
// Enrichment lists are not persisted and come back empty.
func (s *Store) Load(ctx context.Context, id int64) (*Plan, string, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, destination, days, budget_level, overview, tips,
		       estimated_total_budget, estimated_per_person, lat, lng,
		       weather_summary, budget_breakdown
		FROM trips
		WHERE id = $1`, id,
	)

	var p Plan
	var tripID int64
	var userID string
	var tips string
	var weather sql.NullString
	var breakdown sql.NullString

	err := row.Scan(
		&tripID, &userID, &p.Destination, &p.Days, &p.BudgetLevel, &p.Overview, &tips,
		&p.EstimatedTotalBudget, &p.EstimatedPerPerson, &p.Lat, &p.Lng,
		&weather, &breakdown,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}

	p.ID = &tripID
	p.Tips = decodeList(tips)
	if weather.Valid {
		p.WeatherSummary = &weather.String
	}
	if breakdown.Valid {
		p.BudgetBreakdown = decodeBreakdown(breakdown.String)
	}

	rows, err := s.db.Query(ctx, `
		SELECT day_number, title, summary, places
		FROM trip_days
		WHERE trip_id = $1
		ORDER BY day_number`, id,
	)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	p.DailyPlan = []DayPlan{}
	for rows.Next() {
		var d DayPlan
		var places string
		if err := rows.Scan(&d.Day, &d.Title, &d.Summary, &places); err != nil {
			return nil, "", err
		}
		d.Places = decodeList(places)
		p.DailyPlan = append(p.DailyPlan, d)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	return &p, userID, nil
}

// ListByUser returns the summaries of a user's trips, newest first.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]Summary, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, destination, days, budget_level, travelers, overview
		FROM trips
		WHERE user_id = $1
		ORDER BY id DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []Summary{}
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.ID, &sum.Destination, &sum.Days, &sum.BudgetLevel, &sum.Travelers, &sum.Overview); err != nil {
			return nil, err
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// Delete removes the day rows and then the trip row in one transaction.
func (s *Store) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM trip_days WHERE trip_id = $1`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}

func nullStr(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
