package domain

import "errors"

var (
	// ErrInvalidCategory is returned when an item's category is not one of
	// top, bottom, or shoes.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrInsufficientItems is returned when a user has fewer than the three
	// items an outfit requires.
	ErrInsufficientItems = errors.New("not enough items")
	// ErrMissingAssets is returned when too few item images can be read from
	// storage to attach to the stylist request.
	ErrMissingAssets = errors.New("item images missing")
	// ErrMalformedAIResponse is returned when the stylist model's output is
	// not parseable JSON or references an id outside the candidate set.
	ErrMalformedAIResponse = errors.New("malformed AI response")
	// ErrExternalService is returned when the stylist model cannot be reached
	// or reports a failure.
	ErrExternalService = errors.New("AI service failed")
)
