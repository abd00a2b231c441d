package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/okalik/bandstand/internal/view"
)

var venueCols = []string{
	"id", "name", "city", "state", "address", "phone", "genres",
	"image_link", "facebook_link", "website_link", "seeking_talent", "seeking_description",
}

func newTestHandler(t *testing.T) (*DirectoryHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewDirectoryHandler(db, false), mock
}

func formRequest(t *testing.T, target string, data url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(data.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func getRequest(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestGetVenueNotFound(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("FROM venues WHERE id =").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	c, rec := getRequest(t, "/venues/99")
	c.SetPath("/venues/:id")
	c.SetParamNames("id")
	c.SetParamValues("99")

	assert.NoError(t, h.GetVenue(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetVenueNonNumericID(t *testing.T) {
	h, mock := newTestHandler(t)

	c, rec := getRequest(t, "/venues/abc")
	c.SetPath("/venues/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	assert.NoError(t, h.GetVenue(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetVenueSplitsShows(t *testing.T) {
	h, mock := newTestHandler(t)

	past := time.Now().UTC().Add(-24 * time.Hour)
	mock.ExpectQuery("FROM venues WHERE id =").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(venueCols).AddRow(
			1, "The Fillmore", "SF", "CA", "123 Main", "", "Jazz",
			"", "", "", false, "",
		))
	mock.ExpectQuery("WHERE s.venue_id =").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"artist_id", "name", "image_link", "start_time"}).
			AddRow(4, "Guns N Petals", "", past))

	c, rec := getRequest(t, "/venues/1")
	c.SetPath("/venues/:id")
	c.SetParamNames("id")
	c.SetParamValues("1")

	assert.NoError(t, h.GetVenue(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var page view.VenuePage
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, "The Fillmore", page.Name)
	assert.Equal(t, 1, page.PastShowsCount)
	assert.Equal(t, 0, page.UpcomingShowsCount)
	assert.Equal(t, "Guns N Petals", page.PastShows[0].ArtistName)
}

func TestCreateVenue(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO venues").
		WithArgs("The Fillmore", "SF", "CA", "123 Main", "", "Jazz", "", "", "", false, "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	c, rec := formRequest(t, "/venues/create", url.Values{
		"name":    {"The Fillmore"},
		"city":    {"SF"},
		"state":   {"CA"},
		"address": {"123 Main"},
		"genres":  {"Jazz"},
	})

	assert.NoError(t, h.CreateVenue(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Venue The Fillmore was successfully listed!")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateVenueInvalidStateRejectedBeforePersistence(t *testing.T) {
	h, mock := newTestHandler(t)

	c, rec := formRequest(t, "/venues/create", url.Values{
		"name":    {"The Fillmore"},
		"city":    {"SF"},
		"state":   {"ZZ"},
		"address": {"123 Main"},
		"genres":  {"Jazz"},
	})

	assert.NoError(t, h.CreateVenue(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "An error occurred. Venue could not be listed.")
	// no insert was attempted
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateVenuePersistenceFailure(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO venues").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	c, rec := formRequest(t, "/venues/create", url.Values{
		"name":    {"The Fillmore"},
		"city":    {"SF"},
		"state":   {"CA"},
		"address": {"123 Main"},
		"genres":  {"Jazz"},
	})

	assert.NoError(t, h.CreateVenue(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "An error occurred. Venue could not be listed.")
}

func TestDeleteVenueNotFound(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM venues WHERE id =").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	req := httptest.NewRequest(http.MethodDelete, "/venues/42", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetPath("/venues/:id")
	c.SetParamNames("id")
	c.SetParamValues("42")

	assert.NoError(t, h.DeleteVenue(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListVenuesGroupsByLocation(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("FROM venues v").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "state", "count"}).
			AddRow(1, "The Musical Hop", "San Francisco", "CA", 1).
			AddRow(2, "The Dueling Pianos Bar", "New York", "NY", 0).
			AddRow(3, "Park Square Live Music & Coffee", "San Francisco", "CA", 1))

	c, rec := getRequest(t, "/venues")
	assert.NoError(t, h.ListVenues(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Areas []view.VenueArea `json:"areas"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Areas, 2)
	assert.Equal(t, "San Francisco", body.Areas[0].City)
	assert.Len(t, body.Areas[0].Venues, 2)
}

func TestSearchVenues(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("LIKE").
		WithArgs("%ell%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "state", "count"}).
			AddRow(7, "Bellevue Lounge", "Seattle", "WA", 0))

	c, rec := formRequest(t, "/venues/search", url.Values{"search_term": {"ell"}})
	assert.NoError(t, h.SearchVenues(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Results    view.VenueSearchResults `json:"results"`
		SearchTerm string                  `json:"search_term"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Results.Count)
	assert.Equal(t, "Bellevue Lounge", body.Results.Data[0].Name)
	assert.Equal(t, "ell", body.SearchTerm)
}
