// Package site serves the embedded shot plotter UI shell.
//
// The page is pure glue: it resolves targets, forwards canvas clicks to the
// API, and draws whatever the render description says. All scoring happens
// server-side.
package site

import (
	"context"
	"errors"
	"net/http"
)

// Error constants
var (
	ErrServe = errors.New("site serve failed")
)

// Register attaches the embedded UI routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	// Serve the embedded UI at root /
	files := http.FileServer(FS())
	mux.Handle("/", files)
}
