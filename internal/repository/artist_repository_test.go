package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/okalik/bandstand/internal/model"
)

func TestArtistRepoCreate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArtistRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO artists").
		WithArgs("Guns N Petals", "San Francisco", "CA", "", "Rock n Roll", "", "", "", true, "seeking stages").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectCommit()

	a := &model.Artist{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Genres:             model.Genres{"Rock n Roll"},
		SeekingVenue:       true,
		SeekingDescription: "seeking stages",
	}
	err := repo.Create(context.Background(), a)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), a.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArtistRepoGetByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArtistRepo(db)

	mock.ExpectQuery("FROM artists WHERE id =").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestArtistRepoListAll(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArtistRepo(db)

	mock.ExpectQuery("SELECT id, name FROM artists").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(4, "Guns N Petals").
			AddRow(5, "Matt Quevedo"))

	out, err := repo.ListAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "Matt Quevedo", out[1].Name)
}

func TestArtistRepoSearchByName(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArtistRepo(db)

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM artists a").
		WithArgs("%band%", now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "count"}).
			AddRow(6, "The Wild Sax Band", 3))

	out, err := repo.SearchByName(context.Background(), "Band", now)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, 3, out[0].UpcomingCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArtistRepoUpdateNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArtistRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE artists SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), &model.Artist{ID: 42})
	assert.ErrorIs(t, err, ErrArtistNotFound)
}
