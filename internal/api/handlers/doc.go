// Package handlers implements the HTTP handlers for the hela-notan API.
package handlers

import (
	"context"

	"github.com/donaldgifford/hela-notan/internal/modelstore"
)

// ModelSource supplies the current regression snapshot.
type ModelSource interface {
	Snapshot(ctx context.Context) *modelstore.Snapshot
}

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
