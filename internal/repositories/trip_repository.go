package repositories

import (
	"database/sql"

	intconfig "tripmate/internal/config"
	intdb "tripmate/internal/db"
	"tripmate/internal/domain"
	"tripmate/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListRecent returns the newest trips up to limit. A missing trips table
// (fresh deploy, migration not run yet) yields an empty slice, not an error.
func (r TripRepository) ListRecent(limit int) ([]models.Trip, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "trips") {
		return []models.Trip{}, nil
	}

	rows, err := db.Query(`
		SELECT id,
		       COALESCE(title,''),
		       COALESCE(from_city,''),
		       COALESCE(to_city,''),
		       travel_date,
		       COALESCE(travel_time,''),
		       COALESCE(creator_name,''),
		       COALESCE(status,'active'),
		       COALESCE(current_participants,0),
		       COALESCE(max_participants,0),
		       created_at
		FROM trips
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list trips", Err: err}
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		var t models.Trip
		var travelDate sql.NullTime
		if err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.FromCity,
			&t.ToCity,
			&travelDate,
			&t.TravelTime,
			&t.CreatorName,
			&t.Status,
			&t.CurrentParticipants,
			&t.MaxParticipants,
			&t.CreatedAt,
		); err != nil {
			return nil, domain.InternalError{Msg: "failed to scan trip", Err: err}
		}
		if travelDate.Valid {
			t.TravelDate = travelDate.Time
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "failed to read trips", Err: err}
	}
	return out, nil
}

// GetByID loads a single trip for the detail page.
func (r TripRepository) GetByID(id int64) (models.Trip, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "trips") {
		return models.Trip{}, domain.NotFoundError{Resource: "trip"}
	}

	var t models.Trip
	var travelDate sql.NullTime
	err := db.QueryRow(`
		SELECT id,
		       COALESCE(title,''),
		       COALESCE(from_city,''),
		       COALESCE(to_city,''),
		       travel_date,
		       COALESCE(travel_time,''),
		       COALESCE(creator_name,''),
		       COALESCE(status,'active'),
		       COALESCE(current_participants,0),
		       COALESCE(max_participants,0),
		       created_at
		FROM trips
		WHERE id = ?
	`, id).Scan(
		&t.ID,
		&t.Title,
		&t.FromCity,
		&t.ToCity,
		&travelDate,
		&t.TravelTime,
		&t.CreatorName,
		&t.Status,
		&t.CurrentParticipants,
		&t.MaxParticipants,
		&t.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Trip{}, domain.NotFoundError{Resource: "trip"}
	}
	if err != nil {
		return models.Trip{}, domain.InternalError{Msg: "failed to load trip", Err: err}
	}
	if travelDate.Valid {
		t.TravelDate = travelDate.Time
	}
	return t, nil
}
