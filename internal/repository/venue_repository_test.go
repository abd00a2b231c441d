package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/okalik/bandstand/internal/model"
)

var venueCols = []string{
	"id", "name", "city", "state", "address", "phone", "genres",
	"image_link", "facebook_link", "website_link", "seeking_talent", "seeking_description",
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestVenueRepoCreate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO venues").
		WithArgs("The Fillmore", "SF", "CA", "123 Main", "", "Jazz", "", "", "", false, "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	v := &model.Venue{
		Name:    "The Fillmore",
		City:    "SF",
		State:   "CA",
		Address: "123 Main",
		Genres:  model.Genres{"Jazz"},
	}
	err := repo.Create(context.Background(), v)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), v.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueRepoCreateRollsBackOnFailure(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO venues").
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &model.Venue{Name: "X"})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueRepoGetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepo(db)

	mock.ExpectQuery("FROM venues WHERE id =").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(venueCols).AddRow(
			1, "The Fillmore", "SF", "CA", "123 Main", "", "Jazz,Soul",
			"", "", "", false, "",
		))

	v, err := repo.GetByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "The Fillmore", v.Name)
	assert.Equal(t, model.Genres{"Jazz", "Soul"}, v.Genres)
	assert.False(t, v.SeekingTalent)
}

func TestVenueRepoGetByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepo(db)

	mock.ExpectQuery("FROM venues WHERE id =").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestVenueRepoListAll(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepo(db)

	mock.ExpectQuery("FROM venues v").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "state", "count"}).
			AddRow(1, "The Musical Hop", "San Francisco", "CA", 2).
			AddRow(2, "The Dueling Pianos Bar", "New York", "NY", 0))

	out, err := repo.ListAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, 2, out[0].ShowCount)
}

func TestVenueRepoSearchByNameLowersTerm(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepo(db)

	mock.ExpectQuery("LIKE").
		WithArgs("%ell%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "state", "count"}).
			AddRow(7, "Bellevue Lounge", "Seattle", "WA", 0))

	out, err := repo.SearchByName(context.Background(), "Ell")
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "Bellevue Lounge", out[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueRepoSearchByNameEmptyTermMatchesAll(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepo(db)

	mock.ExpectQuery("LIKE").
		WithArgs("%%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "state", "count"}).
			AddRow(1, "A", "SF", "CA", 0).
			AddRow(2, "B", "NY", "NY", 0))

	out, err := repo.SearchByName(context.Background(), "")
	assert.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestVenueRepoUpdateNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE venues SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), &model.Venue{ID: 42, Name: "Ghost"})
	assert.ErrorIs(t, err, ErrVenueNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueRepoUpdate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE venues SET").
		WithArgs("The Fillmore", "SF", "CA", "123 Main", "", "Jazz", "", "", "", true, "horn sections welcome", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), &model.Venue{
		ID:                 1,
		Name:               "The Fillmore",
		City:               "SF",
		State:              "CA",
		Address:            "123 Main",
		Genres:             model.Genres{"Jazz"},
		SeekingTalent:      true,
		SeekingDescription: "horn sections welcome",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueRepoDeleteCascadesShows(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM venues WHERE id =").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec("DELETE FROM shows WHERE venue_id =").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM venues WHERE id =").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueRepoDeleteNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM venues WHERE id =").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrVenueNotFound)
	// nothing else was touched
	assert.NoError(t, mock.ExpectationsWereMet())
}
