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
	msgVenueCreateFailed = "An error occurred. Venue could not be listed."
	msgVenueUpdateFailed = "An error occurred. Venue could not be updated."
)

// ListVenues handles GET /venues and returns venues grouped by location.
func (h *DirectoryHandler) ListVenues(c echo.Context) error {
	venues, err := h.Venues.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"areas": view.GroupVenuesByLocation(venues)})
}

// SearchVenues handles POST /venues/search. The term matches venue names
// case-insensitively anywhere in the name; an empty term matches everything.
func (h *DirectoryHandler) SearchVenues(c echo.Context) error {
	values, err := postedForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	f := form.ParseSearchForm(values)

	venues, err := h.Venues.SearchByName(c.Request().Context(), f.Term)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"results":     view.SearchVenues(venues),
		"search_term": f.Term,
	})
}

// GetVenue handles GET /venues/:id and returns the venue detail page data
// with the venue's shows split into past and upcoming.
func (h *DirectoryHandler) GetVenue(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
	}
	ctx := c.Request().Context()

	venue, err := h.Venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	shows, err := h.Shows.ListByVenue(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, view.VenueDetail(venue, shows, time.Now().UTC()))
}

// NewVenueForm handles GET /venues/create and returns the form choices.
func (h *DirectoryHandler) NewVenueForm(c echo.Context) error {
	return c.JSON(http.StatusOK, choices())
}

// CreateVenue handles POST /venues/create. Any validation failure rejects the
// whole submission; nothing is persisted and the generic message is returned.
func (h *DirectoryHandler) CreateVenue(c echo.Context) error {
	values, err := postedForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msgVenueCreateFailed})
	}
	venue, verrs := form.ParseVenueForm(values).Validate()
	if verrs != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msgVenueCreateFailed})
	}

	if err := h.Venues.Create(c.Request().Context(), &venue); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": msgVenueCreateFailed})
	}
	if h.PublishEvents {
		_ = service.PublishListingCreated(c.Request().Context(), queue.ListingCreatedEvent{
			Kind:  "venue",
			ID:    venue.ID,
			Name:  venue.Name,
			City:  venue.City,
			State: venue.State,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":      venue.ID,
		"message": "Venue " + venue.Name + " was successfully listed!",
	})
}

// EditVenueForm handles GET /venues/:id/edit and returns the form choices
// prefilled with the venue's current values.
func (h *DirectoryHandler) EditVenueForm(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
	}
	venue, err := h.Venues.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"choices": choices(),
		"venue": echo.Map{
			"name":                venue.Name,
			"city":                venue.City,
			"state":               venue.State,
			"address":             venue.Address,
			"phone":               venue.Phone,
			"genres":              venue.Genres,
			"image_link":          venue.ImageLink,
			"facebook_link":       venue.FacebookLink,
			"website_link":        venue.WebsiteLink,
			"seeking_talent":      venue.SeekingTalent,
			"seeking_description": venue.SeekingDescription,
		},
	})
}

// UpdateVenue handles POST /venues/:id/edit. The submission overwrites every
// mutable field at once; there is no partial update.
func (h *DirectoryHandler) UpdateVenue(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
	}
	ctx := c.Request().Context()

	if _, err := h.Venues.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	values, err := postedForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msgVenueUpdateFailed})
	}
	venue, verrs := form.ParseVenueForm(values).Validate()
	if verrs != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msgVenueUpdateFailed})
	}
	venue.ID = id

	if err := h.Venues.Update(ctx, &venue); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": msgVenueUpdateFailed})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Venue " + venue.Name + " was successfully updated!",
	})
}

// DeleteVenue handles DELETE /venues/:id. The venue's shows are removed with
// it; deleting an unknown venue is a not-found with no side effects.
func (h *DirectoryHandler) DeleteVenue(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
	}
	if err := h.Venues.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete venue"})
	}
	return c.NoContent(http.StatusNoContent)
}
