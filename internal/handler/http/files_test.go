package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/MKhiriev/go-secure-profile/internal/service"
	"github.com/MKhiriev/go-secure-profile/internal/store"
	"github.com/MKhiriev/go-secure-profile/internal/validators"
	"github.com/MKhiriev/go-secure-profile/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testFileID = "01964d1e-8f3a-7c2b-9d4e-5f6a7b8c9d0e"

// newUploadRequest builds a multipart upload with one file part.
func newUploadRequest(t *testing.T, fileName, contentType string, data []byte, description string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if fileName != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	if description != "" {
		require.NoError(t, writer.WriteField("description", description))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/files", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// withFileID sets the chi URL parameter the download route extracts.
func withFileID(r *http.Request, fileID string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("fileID", fileID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

// ─────────────────────────────────────────────
// uploadFile
// ─────────────────────────────────────────────

func TestUploadFile_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	data := []byte("\xff\xd8\xff fake jpeg")
	uploadedAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	mocks.files.EXPECT().Upload(gomock.Any(), models.FileUpload{
		UserID:      7,
		Name:        "photo.jpg",
		ContentType: "image/jpeg",
		Description: "holiday",
		Data:        data,
	}).Return(models.FileInfo{
		FileID:      testFileID,
		Name:        "photo.jpg",
		Size:        int64(len(data)),
		ContentType: "image/jpeg",
		Description: "holiday",
		UploadedAt:  uploadedAt,
	}, nil)

	req := withUser(newUploadRequest(t, "photo.jpg", "image/jpeg", data, "holiday"), 7)
	rec := httptest.NewRecorder()
	h.uploadFile(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var info models.FileInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, testFileID, info.FileID)
	assert.Equal(t, int64(len(data)), info.Size)
	assert.NotContains(t, rec.Body.String(), "fake jpeg")
}

func TestUploadFile_MissingFilePart(t *testing.T) {
	h, _ := newTestHandler(t)

	req := withUser(newUploadRequest(t, "", "", nil, "only a description"), 7)
	rec := httptest.NewRecorder()
	h.uploadFile(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrMissingFile.Error(), decodeError(t, rec).Error)
}

func TestUploadFile_NotMultipart(t *testing.T) {
	h, _ := newTestHandler(t)

	req := withUser(httptest.NewRequest(http.MethodPost, "/api/files", bytes.NewReader([]byte("raw"))), 7)
	req.Header.Set("Content-Type", "application/octet-stream")
	rec := httptest.NewRecorder()
	h.uploadFile(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrInvalidMultipartForm.Error(), decodeError(t, rec).Error)
}

func TestUploadFile_BodyOverLimit(t *testing.T) {
	h, _ := newTestHandler(t)

	data := make([]byte, maxUploadBodySize+1)
	req := withUser(newUploadRequest(t, "big.png", "image/png", data, ""), 7)
	rec := httptest.NewRecorder()
	h.uploadFile(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestUploadFile_ValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unsupported type", err: validators.ErrUnsupportedContentType, wantStatus: http.StatusUnsupportedMediaType},
		{name: "too large", err: validators.ErrFileTooLarge, wantStatus: http.StatusRequestEntityTooLarge},
		{name: "empty", err: validators.ErrEmptyFile, wantStatus: http.StatusBadRequest},
		{name: "encryption failed", err: service.ErrCannotProtectData, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			mocks.files.EXPECT().Upload(gomock.Any(), gomock.Any()).
				Return(models.FileInfo{}, fmt.Errorf("error during file validation before saving: %w", tt.err))

			req := withUser(newUploadRequest(t, "doc.pdf", "application/pdf", []byte("%PDF"), ""), 7)
			rec := httptest.NewRecorder()
			h.uploadFile(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.err.Error(), decodeError(t, rec).Error)
		})
	}
}

// ─────────────────────────────────────────────
// listFiles
// ─────────────────────────────────────────────

func TestListFiles(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.files.EXPECT().List(gomock.Any(), int64(7)).Return([]models.FileInfo{
		{FileID: testFileID, Name: "a.png"},
	}, nil)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/files", nil), 7)
	rec := httptest.NewRecorder()
	h.listFiles(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var infos []models.FileInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "a.png", infos[0].Name)
}

func TestListFiles_Empty(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.files.EXPECT().List(gomock.Any(), int64(7)).Return([]models.FileInfo{}, nil)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/files", nil), 7)
	rec := httptest.NewRecorder()
	h.listFiles(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

// ─────────────────────────────────────────────
// downloadFile
// ─────────────────────────────────────────────

func TestDownloadFile_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.files.EXPECT().Download(gomock.Any(), int64(7), testFileID).Return(models.File{
		Info: models.FileInfo{FileID: testFileID, Name: "song.mp3", ContentType: "audio/mpeg"},
		Data: []byte("ID3 music"),
	}, nil)

	req := withFileID(withUser(httptest.NewRequest(http.MethodGet, "/api/files/"+testFileID, nil), 7), testFileID)
	rec := httptest.NewRecorder()
	h.downloadFile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "audio/mpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, `inline; filename=song.mp3`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "9", rec.Header().Get("Content-Length"))
	assert.Equal(t, []byte("ID3 music"), rec.Body.Bytes())
}

func TestDownloadFile_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "not found", err: store.ErrFileNotFound, wantStatus: http.StatusNotFound, wantError: store.ErrFileNotFound.Error()},
		{name: "tampered", err: service.ErrCannotReadData, wantStatus: http.StatusInternalServerError, wantError: "cannot read data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			mocks.files.EXPECT().Download(gomock.Any(), int64(7), testFileID).Return(models.File{}, tt.err)

			req := withFileID(withUser(httptest.NewRequest(http.MethodGet, "/api/files/"+testFileID, nil), 7), testFileID)
			rec := httptest.NewRecorder()
			h.downloadFile(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
		})
	}
}
