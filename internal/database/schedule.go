package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dvconsultores/rhino-bot/entity"
)

const scheduleColumns = `s.id, s.location_id, COALESCE(l.location, ''), s.days, s.time_init, s.time_end, s.creation_date
	FROM schedules s LEFT JOIN locations l ON l.id = s.location_id`

func scanSchedule(row interface{ Scan(...any) error }) (*entity.Schedule, error) {
	var sc entity.Schedule
	var created int64
	err := row.Scan(&sc.ID, &sc.LocationId, &sc.LocationName, &sc.Days, &sc.TimeInit, &sc.TimeEnd, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan schedule: %w", err)
	}
	sc.CreationDate = time.Unix(created, 0)
	return &sc, nil
}

func (s *SQLite) ListSchedules(ctx context.Context) ([]entity.Schedule, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+scheduleColumns+" ORDER BY s.id")
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()

	var schedules []entity.Schedule
	for rows.Next() {
		sc, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, *sc)
	}
	return schedules, rows.Err()
}

func (s *SQLite) GetSchedule(ctx context.Context, id int64) (*entity.Schedule, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+scheduleColumns+" WHERE s.id = ?", id)
	return scanSchedule(row)
}

func (s *SQLite) CreateSchedule(ctx context.Context, sc *entity.Schedule) error {
	if sc.CreationDate.IsZero() {
		sc.CreationDate = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO schedules (location_id, days, time_init, time_end, creation_date) VALUES (?, ?, ?, ?, ?)",
		sc.LocationId, sc.Days, sc.TimeInit, sc.TimeEnd, sc.CreationDate.Unix(),
	)
	if err != nil {
		return fmt.Errorf("create schedule: %w", err)
	}
	sc.ID, err = res.LastInsertId()
	return err
}

func (s *SQLite) UpdateSchedule(ctx context.Context, id int64, sc *entity.Schedule) (*entity.Schedule, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE schedules SET location_id = ?, days = ?, time_init = ?, time_end = ? WHERE id = ?",
		sc.LocationId, sc.Days, sc.TimeInit, sc.TimeEnd, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update schedule: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return s.GetSchedule(ctx, id)
}

func (s *SQLite) DeleteSchedule(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM schedules WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete schedule: %w", err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
