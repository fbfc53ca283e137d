// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the HTTP layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserInContext is returned when a protected handler runs without
	// the user ID the auth middleware stores in the request context.
	ErrNoUserInContext = errors.New("user is not authenticated")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidMultipartForm is returned when an upload is not a readable
	// multipart/form-data body.
	ErrInvalidMultipartForm = errors.New("invalid multipart form")

	// ErrMissingFile is returned when an upload has no "file" part.
	ErrMissingFile = errors.New("no file was provided")

	// ErrRequestBodyTooLarge is returned when a JSON body exceeds
	// maxJSONBodySize after decompression.
	ErrRequestBodyTooLarge = errors.New("request body is too large")
)
