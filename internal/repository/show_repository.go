package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/okalik/bandstand/internal/model"
)

// ShowListing is a show joined with the names the shows index renders.
type ShowListing struct {
	VenueID         int64
	VenueName       string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ArtistAppearance is one show on a venue's detail page: the performing
// artist plus the start time.
type ArtistAppearance struct {
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// VenueAppearance is one show on an artist's detail page: the hosting venue
// plus the start time.
type VenueAppearance struct {
	VenueID        int64
	VenueName      string
	VenueImageLink string
	StartTime      time.Time
}

// ShowRepo encapsulates all database queries related to shows. Shows are
// created and listed but never updated or deleted on their own; a venue
// delete removes its shows in the venue repository's transaction.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the provided DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show inside a transaction and populates its ID.
// Referential integrity against venues and artists is delegated to the
// database's foreign keys; a violation surfaces as a plain error and rolls
// the transaction back.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const q = `INSERT INTO shows (venue_id, artist_id, start_time)
		VALUES ($1, $2, $3) RETURNING id`
	err = tx.QueryRowContext(ctx, q, s.VenueID, s.ArtistID, s.StartTime).Scan(&s.ID)
	if err != nil {
		return err
	}
	err = tx.Commit()
	return err
}

// ListAll returns every show joined with its venue and artist, in storage
// order.
func (r *ShowRepo) ListAll(ctx context.Context) ([]ShowListing, error) {
	const q = `SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		JOIN artists a ON a.id = s.artist_id
		ORDER BY s.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ShowListing
	for rows.Next() {
		var l ShowListing
		if err := rows.Scan(&l.VenueID, &l.VenueName, &l.ArtistID, &l.ArtistName,
			&l.ArtistImageLink, &l.StartTime); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByVenue returns every show hosted by the venue, joined with the
// performing artist, in storage order.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID int64) ([]ArtistAppearance, error) {
	const q = `SELECT s.artist_id, a.name, a.image_link, s.start_time
		FROM shows s
		JOIN artists a ON a.id = s.artist_id
		WHERE s.venue_id = $1
		ORDER BY s.id`
	rows, err := r.db.QueryContext(ctx, q, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ArtistAppearance
	for rows.Next() {
		var ap ArtistAppearance
		if err := rows.Scan(&ap.ArtistID, &ap.ArtistName, &ap.ArtistImageLink, &ap.StartTime); err != nil {
			return nil, err
		}
		out = append(out, ap)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByArtist returns every show performed by the artist, joined with the
// hosting venue, in storage order.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID int64) ([]VenueAppearance, error) {
	const q = `SELECT s.venue_id, v.name, v.image_link, s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		WHERE s.artist_id = $1
		ORDER BY s.id`
	rows, err := r.db.QueryContext(ctx, q, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []VenueAppearance
	for rows.Next() {
		var ap VenueAppearance
		if err := rows.Scan(&ap.VenueID, &ap.VenueName, &ap.VenueImageLink, &ap.StartTime); err != nil {
			return nil, err
		}
		out = append(out, ap)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
