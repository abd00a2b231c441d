package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/okalik/bandstand/internal/model"
)

const artistColumns = `id, name, city, state, phone, genres,
	image_link, facebook_link, website_link, seeking_venue, seeking_description`

// ArtistSummary is the row shape used by the artists index and artist search.
// UpcomingCount is only populated by SearchByName; the index page lists names
// alone.
type ArtistSummary struct {
	ID            int64
	Name          string
	UpcomingCount int
}

// ArtistRepo encapsulates all database queries related to artists. Artists
// have no delete operation.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the provided DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// Create inserts a new artist inside a transaction and populates its ID.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const q = `INSERT INTO artists
		(name, city, state, phone, genres, image_link, facebook_link,
		 website_link, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err = tx.QueryRowContext(ctx, q,
		a.Name, a.City, a.State, a.Phone, model.JoinGenres(a.Genres),
		a.ImageLink, a.FacebookLink, a.WebsiteLink, a.SeekingVenue, a.SeekingDescription,
	).Scan(&a.ID)
	if err != nil {
		return err
	}
	err = tx.Commit()
	return err
}

// GetByID fetches an artist by its id. It returns ErrArtistNotFound when no
// row matches.
func (r *ArtistRepo) GetByID(ctx context.Context, id int64) (*model.Artist, error) {
	const q = `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`
	var a model.Artist
	var genres string
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &genres,
		&a.ImageLink, &a.FacebookLink, &a.WebsiteLink, &a.SeekingVenue, &a.SeekingDescription,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	a.Genres = model.SplitGenres(genres)
	return &a, nil
}

// ListAll returns id and name for every artist in storage order.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]ArtistSummary, error) {
	const q = `SELECT id, name FROM artists ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ArtistSummary
	for rows.Next() {
		var s ArtistSummary
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByName returns summaries for artists whose name contains the term,
// case-insensitively, each with a count of shows starting strictly after now.
// An empty term matches every artist.
func (r *ArtistRepo) SearchByName(ctx context.Context, term string, now time.Time) ([]ArtistSummary, error) {
	const q = `SELECT a.id, a.name, COUNT(s.id) FILTER (WHERE s.start_time > $2)
		FROM artists a
		LEFT JOIN shows s ON s.artist_id = a.id
		WHERE LOWER(a.name) LIKE $1
		GROUP BY a.id, a.name
		ORDER BY a.id`
	rows, err := r.db.QueryContext(ctx, q, "%"+strings.ToLower(term)+"%", now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ArtistSummary
	for rows.Next() {
		var s ArtistSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.UpcomingCount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites every mutable field of the artist row in a transaction.
// ErrArtistNotFound is returned when the id does not exist.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const q = `UPDATE artists SET
		name = $1, city = $2, state = $3, phone = $4, genres = $5,
		image_link = $6, facebook_link = $7, website_link = $8,
		seeking_venue = $9, seeking_description = $10
		WHERE id = $11`
	res, err := tx.ExecContext(ctx, q,
		a.Name, a.City, a.State, a.Phone, model.JoinGenres(a.Genres),
		a.ImageLink, a.FacebookLink, a.WebsiteLink, a.SeekingVenue, a.SeekingDescription,
		a.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrArtistNotFound
		return err
	}
	err = tx.Commit()
	return err
}
