// Package router defines how HTTP routes are registered for the directory.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/okalik/bandstand/internal/handler"
)

// RegisterRoutes maps every directory endpoint onto the provided Echo
// instance. Write endpoints additionally run the supplied middleware (the
// rate limiter); read endpoints are left unthrottled.
func RegisterRoutes(e *echo.Echo, h *handler.DirectoryHandler, write ...echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	// Venues
	e.GET("/venues", h.ListVenues)
	e.POST("/venues/search", h.SearchVenues)
	e.GET("/venues/create", h.NewVenueForm)
	e.POST("/venues/create", h.CreateVenue, write...)
	e.GET("/venues/:id", h.GetVenue)
	e.GET("/venues/:id/edit", h.EditVenueForm)
	e.POST("/venues/:id/edit", h.UpdateVenue, write...)
	e.DELETE("/venues/:id", h.DeleteVenue, write...)

	// Artists
	e.GET("/artists", h.ListArtists)
	e.POST("/artists/search", h.SearchArtists)
	e.GET("/artists/create", h.NewArtistForm)
	e.POST("/artists/create", h.CreateArtist, write...)
	e.GET("/artists/:id", h.GetArtist)
	e.GET("/artists/:id/edit", h.EditArtistForm)
	e.POST("/artists/:id/edit", h.UpdateArtist, write...)

	// Shows
	e.GET("/shows", h.ListShows)
	e.GET("/shows/create", h.NewShowForm)
	e.POST("/shows/create", h.CreateShow, write...)
}
