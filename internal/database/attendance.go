package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dvconsultores/rhino-bot/entity"
)

const attendanceColumns = `a.id, a.coach_id, COALESCE(c.names, ''), a.location_id, COALESCE(l.location, ''),
	a.user_id, COALESCE(u.name, ''), a.date, a.creation_date
	FROM attendances a
	LEFT JOIN coaches c ON c.id = a.coach_id
	LEFT JOIN locations l ON l.id = a.location_id
	LEFT JOIN users u ON u.id = a.user_id`

func scanAttendance(row interface{ Scan(...any) error }) (*entity.Attendance, error) {
	var a entity.Attendance
	var date, created int64
	err := row.Scan(&a.ID, &a.CoachId, &a.CoachName, &a.LocationId, &a.LocationName,
		&a.UserId, &a.UserName, &date, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan attendance: %w", err)
	}
	a.Date = time.Unix(date, 0)
	a.CreationDate = time.Unix(created, 0)
	return &a, nil
}

func (s *SQLite) ListAttendances(ctx context.Context) ([]entity.Attendance, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+attendanceColumns+" ORDER BY a.id")
	if err != nil {
		return nil, fmt.Errorf("list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []entity.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		attendances = append(attendances, *a)
	}
	return attendances, rows.Err()
}

func (s *SQLite) GetAttendance(ctx context.Context, id int64) (*entity.Attendance, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+attendanceColumns+" WHERE a.id = ?", id)
	return scanAttendance(row)
}

func (s *SQLite) CreateAttendance(ctx context.Context, a *entity.Attendance) error {
	now := time.Now()
	if a.Date.IsZero() {
		a.Date = now
	}
	if a.CreationDate.IsZero() {
		a.CreationDate = now
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO attendances (coach_id, location_id, user_id, date, creation_date) VALUES (?, ?, ?, ?, ?)",
		a.CoachId, a.LocationId, a.UserId, a.Date.Unix(), a.CreationDate.Unix(),
	)
	if err != nil {
		return fmt.Errorf("create attendance: %w", err)
	}
	a.ID, err = res.LastInsertId()
	return err
}

func (s *SQLite) UpdateAttendance(ctx context.Context, id int64, a *entity.Attendance) (*entity.Attendance, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE attendances SET coach_id = ?, location_id = ?, user_id = ?, date = ? WHERE id = ?",
		a.CoachId, a.LocationId, a.UserId, a.Date.Unix(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("update attendance: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return s.GetAttendance(ctx, id)
}

func (s *SQLite) DeleteAttendance(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM attendances WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete attendance: %w", err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
