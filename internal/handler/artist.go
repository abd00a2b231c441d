package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/okalik/bandstand/internal/form"
	"github.com/okalik/bandstand/internal/queue"
	"github.com/okalik/bandstand/internal/repository"
	"github.com/okalik/bandstand/internal/service"
	"github.com/okalik/bandstand/internal/view"
)

const (
	msgArtistCreateFailed = "An error occurred. Artist could not be listed."
	msgArtistUpdateFailed = "An error occurred. Artist could not be updated."
)

// ListArtists handles GET /artists.
func (h *DirectoryHandler) ListArtists(c echo.Context) error {
	artists, err := h.Artists.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"artists": view.ListArtists(artists)})
}

// SearchArtists handles POST /artists/search. Result rows carry the count of
// the artist's shows that start after the moment of the search.
func (h *DirectoryHandler) SearchArtists(c echo.Context) error {
	values, err := postedForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	f := form.ParseSearchForm(values)

	artists, err := h.Artists.SearchByName(c.Request().Context(), f.Term, time.Now().UTC())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"results":     view.SearchArtists(artists),
		"search_term": f.Term,
	})
}

// GetArtist handles GET /artists/:id and returns the artist detail page data
// with the artist's shows split into past and upcoming.
func (h *DirectoryHandler) GetArtist(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
	}
	ctx := c.Request().Context()

	artist, err := h.Artists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	shows, err := h.Shows.ListByArtist(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, view.ArtistDetail(artist, shows, time.Now().UTC()))
}

// NewArtistForm handles GET /artists/create and returns the form choices.
func (h *DirectoryHandler) NewArtistForm(c echo.Context) error {
	return c.JSON(http.StatusOK, choices())
}

// CreateArtist handles POST /artists/create.
func (h *DirectoryHandler) CreateArtist(c echo.Context) error {
	values, err := postedForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msgArtistCreateFailed})
	}
	artist, verrs := form.ParseArtistForm(values).Validate()
	if verrs != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msgArtistCreateFailed})
	}

	if err := h.Artists.Create(c.Request().Context(), &artist); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": msgArtistCreateFailed})
	}
	if h.PublishEvents {
		_ = service.PublishListingCreated(c.Request().Context(), queue.ListingCreatedEvent{
			Kind:  "artist",
			ID:    artist.ID,
			Name:  artist.Name,
			City:  artist.City,
			State: artist.State,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":      artist.ID,
		"message": "Artist " + artist.Name + " was successfully listed!",
	})
}

// EditArtistForm handles GET /artists/:id/edit and returns the form choices
// prefilled with the artist's current values.
func (h *DirectoryHandler) EditArtistForm(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
	}
	artist, err := h.Artists.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"choices": choices(),
		"artist": echo.Map{
			"name":                artist.Name,
			"city":                artist.City,
			"state":               artist.State,
			"phone":               artist.Phone,
			"genres":              artist.Genres,
			"image_link":          artist.ImageLink,
			"facebook_link":       artist.FacebookLink,
			"website_link":        artist.WebsiteLink,
			"seeking_venue":       artist.SeekingVenue,
			"seeking_description": artist.SeekingDescription,
		},
	})
}

// UpdateArtist handles POST /artists/:id/edit with a full-field overwrite.
func (h *DirectoryHandler) UpdateArtist(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
	}
	ctx := c.Request().Context()

	if _, err := h.Artists.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	values, err := postedForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msgArtistUpdateFailed})
	}
	artist, verrs := form.ParseArtistForm(values).Validate()
	if verrs != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msgArtistUpdateFailed})
	}
	artist.ID = id

	if err := h.Artists.Update(ctx, &artist); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": msgArtistUpdateFailed})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Artist " + artist.Name + " was successfully updated!",
	})
}
