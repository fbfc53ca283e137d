// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-secure-profile/internal/utils"
	"github.com/MKhiriev/go-secure-profile/internal/validators"
	"github.com/MKhiriev/go-secure-profile/models"
	"github.com/go-chi/chi/v5"
)

const (
	// multipartOverhead is the room left for form boundaries and the
	// description field on top of the largest accepted file.
	multipartOverhead = 1 << 20

	maxUploadBodySize = validators.MaxFileSize + multipartOverhead
)

// uploadFile accepts a multipart/form-data body with a "file" part and an
// optional "description" field.
func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.UserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext, "no user ID in context")
		return
	}

	if r.ContentLength > maxUploadBodySize {
		writeError(w, r, validators.ErrFileTooLarge, "upload body is too large")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBodySize)
	if err := r.ParseMultipartForm(maxUploadBodySize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, validators.ErrFileTooLarge, "upload body is too large")
			return
		}
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err), "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrMissingFile, err), "no file in upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err), "reading uploaded file failed")
		return
	}

	info, err := h.services.FileService.Upload(ctx, models.FileUpload{
		UserID:      userID,
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Description: r.FormValue("description"),
		Data:        data,
	})
	if err != nil {
		writeError(w, r, err, "file upload failed")
		return
	}

	utils.WriteJSON(w, info, http.StatusCreated)
}

func (h *Handler) listFiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.UserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext, "no user ID in context")
		return
	}

	files, err := h.services.FileService.List(ctx, userID)
	if err != nil {
		writeError(w, r, err, "listing files failed")
		return
	}

	utils.WriteJSON(w, files, http.StatusOK)
}

// downloadFile streams the decrypted file back with its stored content type.
func (h *Handler) downloadFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.UserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext, "no user ID in context")
		return
	}

	file, err := h.services.FileService.Download(ctx, userID, chi.URLParam(r, "fileID"))
	if err != nil {
		writeError(w, r, err, "file download failed")
		return
	}

	w.Header().Set("Content-Type", file.Info.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": file.Info.Name}))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(file.Data)
}
