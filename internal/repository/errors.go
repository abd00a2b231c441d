// Package repository contains the data access layer. Each entity gets its own
// repository over a shared *sql.DB; writes run inside a transaction and reads
// map sql.ErrNoRows to the sentinel errors below so handlers can translate
// them into not-found responses.
package repository

import "errors"

// ErrVenueNotFound is returned when no venue row matches the requested id.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when no artist row matches the requested id.
var ErrArtistNotFound = errors.New("artist not found")

// ErrShowNotFound is returned when no show row matches the requested id.
var ErrShowNotFound = errors.New("show not found")
