package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/okalik/bandstand/internal/form"
	"github.com/okalik/bandstand/internal/queue"
	"github.com/okalik/bandstand/internal/service"
	"github.com/okalik/bandstand/internal/view"
)

const msgShowCreateFailed = "An error occurred. Show could not be listed."

// ListShows handles GET /shows and returns every show with its venue and
// artist names.
func (h *DirectoryHandler) ListShows(c echo.Context) error {
	shows, err := h.Shows.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"shows": view.ListShows(shows)})
}

// NewShowForm handles GET /shows/create.
func (h *DirectoryHandler) NewShowForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"fields": []string{"artist_id", "venue_id", "start_time"},
	})
}

// CreateShow handles POST /shows/create. The referenced venue and artist must
// exist; a foreign key violation rolls the insert back and surfaces as the
// generic failure message.
func (h *DirectoryHandler) CreateShow(c echo.Context) error {
	values, err := postedForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msgShowCreateFailed})
	}
	show, verrs := form.ParseShowForm(values).Validate()
	if verrs != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msgShowCreateFailed})
	}

	if err := h.Shows.Create(c.Request().Context(), &show); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": msgShowCreateFailed})
	}
	if h.PublishEvents {
		_ = service.PublishShowScheduled(c.Request().Context(), queue.ShowScheduledEvent{
			ShowID:    show.ID,
			VenueID:   show.VenueID,
			ArtistID:  show.ArtistID,
			StartTime: view.Stamp(show.StartTime),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":      show.ID,
		"message": "Show was successfully listed!",
	})
}
