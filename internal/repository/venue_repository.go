package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/okalik/bandstand/internal/model"
)

// venueColumns is the column list shared by every venue SELECT, in struct
// field order.
const venueColumns = `id, name, city, state, address, phone, genres,
	image_link, facebook_link, website_link, seeking_talent, seeking_description`

// VenueSummary is the row shape used by the venues index and venue search:
// just enough to render a line in a list, plus the derived show count the
// pages report as num_upcoming_shows.
type VenueSummary struct {
	ID        int64
	Name      string
	City      string
	State     string
	ShowCount int
}

// VenueRepo encapsulates all database queries related to venues.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// Create inserts a new venue inside a transaction. On success the venue's ID
// field is populated with the generated value; on any failure the transaction
// is rolled back and nothing is written.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const q = `INSERT INTO venues
		(name, city, state, address, phone, genres, image_link, facebook_link,
		 website_link, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err = tx.QueryRowContext(ctx, q,
		v.Name, v.City, v.State, v.Address, v.Phone, model.JoinGenres(v.Genres),
		v.ImageLink, v.FacebookLink, v.WebsiteLink, v.SeekingTalent, v.SeekingDescription,
	).Scan(&v.ID)
	if err != nil {
		return err
	}
	err = tx.Commit()
	return err
}

// GetByID fetches a venue by its id. It returns ErrVenueNotFound when no row
// matches.
func (r *VenueRepo) GetByID(ctx context.Context, id int64) (*model.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`
	var v model.Venue
	var genres string
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &genres,
		&v.ImageLink, &v.FacebookLink, &v.WebsiteLink, &v.SeekingTalent, &v.SeekingDescription,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	v.Genres = model.SplitGenres(genres)
	return &v, nil
}

// ListAll returns a summary row for every venue in storage order (by id),
// each carrying its total show count.
func (r *VenueRepo) ListAll(ctx context.Context) ([]VenueSummary, error) {
	const q = `SELECT v.id, v.name, v.city, v.state, COUNT(s.id)
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		GROUP BY v.id, v.name, v.city, v.state
		ORDER BY v.id`
	return r.querySummaries(ctx, q)
}

// SearchByName returns summaries for venues whose name contains the term,
// case-insensitively. An empty term matches every venue.
func (r *VenueRepo) SearchByName(ctx context.Context, term string) ([]VenueSummary, error) {
	const q = `SELECT v.id, v.name, v.city, v.state, COUNT(s.id)
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		WHERE LOWER(v.name) LIKE $1
		GROUP BY v.id, v.name, v.city, v.state
		ORDER BY v.id`
	return r.querySummaries(ctx, q, "%"+strings.ToLower(term)+"%")
}

func (r *VenueRepo) querySummaries(ctx context.Context, q string, args ...interface{}) ([]VenueSummary, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []VenueSummary
	for rows.Next() {
		var s VenueSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.City, &s.State, &s.ShowCount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites every mutable field of the venue row in a transaction.
// There is no partial update. ErrVenueNotFound is returned when the id does
// not exist.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const q = `UPDATE venues SET
		name = $1, city = $2, state = $3, address = $4, phone = $5, genres = $6,
		image_link = $7, facebook_link = $8, website_link = $9,
		seeking_talent = $10, seeking_description = $11
		WHERE id = $12`
	res, err := tx.ExecContext(ctx, q,
		v.Name, v.City, v.State, v.Address, v.Phone, model.JoinGenres(v.Genres),
		v.ImageLink, v.FacebookLink, v.WebsiteLink, v.SeekingTalent, v.SeekingDescription,
		v.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrVenueNotFound
		return err
	}
	err = tx.Commit()
	return err
}

// Delete removes a venue and cascades to its shows inside one transaction.
// It returns ErrVenueNotFound when the venue does not exist; in that case no
// rows are touched.
func (r *VenueRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var exists int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM venues WHERE id = $1`, id).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrVenueNotFound
		}
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = $1`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id); err != nil {
		return err
	}
	err = tx.Commit()
	return err
}
