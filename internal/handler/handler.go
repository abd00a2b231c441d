// Package handler wires HTTP requests to forms, repositories and views. Every
// handler follows the same shape: parse input, validate, hit the repository,
// respond with presentation data or a generic failure message.
package handler

import (
	"database/sql"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/okalik/bandstand/internal/model"
	"github.com/okalik/bandstand/internal/repository"
)

// DirectoryHandler carries the per-entity repositories behind the directory
// endpoints. PublishEvents controls whether successful writes emit broker
// events; tests leave it off.
type DirectoryHandler struct {
	Venues        *repository.VenueRepo
	Artists       *repository.ArtistRepo
	Shows         *repository.ShowRepo
	PublishEvents bool
}

// NewDirectoryHandler constructs the handler set over one DB handle.
func NewDirectoryHandler(db *sql.DB, publishEvents bool) *DirectoryHandler {
	return &DirectoryHandler{
		Venues:        repository.NewVenueRepo(db),
		Artists:       repository.NewArtistRepo(db),
		Shows:         repository.NewShowRepo(db),
		PublishEvents: publishEvents,
	}
}

// formChoices is the descriptor returned by the GET create/edit endpoints so
// a client can render the select fields.
type formChoices struct {
	States []string `json:"states"`
	Genres []string `json:"genres"`
}

func choices() formChoices {
	return formChoices{States: model.StateCodes, Genres: model.GenreTags}
}

// pathID parses the numeric id path parameter. A non-numeric id is treated
// the same as an unknown one, so callers map the error to not-found.
func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// postedForm returns the submitted form body values.
func postedForm(c echo.Context) (url.Values, error) {
	return c.FormParams()
}
