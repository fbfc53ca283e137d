package adapter

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-secure-profile/internal/config"
	"github.com/MKhiriev/go-secure-profile/internal/logger"
	"github.com/MKhiriev/go-secure-profile/internal/utils"
	"github.com/MKhiriev/go-secure-profile/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter returns a [ServerAdapter] talking to cfg.ServerURL.
// A token from cfg is used for authenticated calls until Register or Login
// replaces it.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	a := &httpServerAdapter{client: client, logger: logger}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/user/register", req)
}

func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/user/login", credentials)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var authResp models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&authResp).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	token := authResp.Token
	if header := resp.Header().Get("Authorization"); header != "" {
		if token, err = utils.ParseBearerToken(header); err != nil {
			return models.AuthResponse{}, fmt.Errorf("parse bearer token: %w", err)
		}
	}
	if token == "" {
		return models.AuthResponse{}, ErrMissingToken
	}

	h.SetToken(token)
	authResp.Token = token
	h.logger.Debug().Int64("user_id", authResp.User.UserID).Str("path", path).Msg("authenticated")

	return authResp, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Profile{}, err
	}

	resp, err := req.SetResult(&profile).Get("/api/user/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

func (h *httpServerAdapter) UploadFile(ctx context.Context, upload FileUpload) (models.FileInfo, error) {
	var info models.FileInfo

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.FileInfo{}, err
	}

	req.SetMultipartField("file", upload.Name, upload.ContentType, upload.Content)
	if upload.Description != "" {
		req.SetMultipartFormData(map[string]string{"description": upload.Description})
	}

	resp, err := req.SetResult(&info).Post("/api/files")
	if err != nil {
		return models.FileInfo{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FileInfo{}, err
	}

	h.logger.Debug().Str("file_id", info.FileID).Int64("size", info.Size).Msg("file uploaded")
	return info, nil
}

func (h *httpServerAdapter) ListFiles(ctx context.Context) ([]models.FileInfo, error) {
	var files []models.FileInfo

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.SetResult(&files).Get("/api/files")
	if err != nil {
		return nil, fmt.Errorf("list files request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return files, nil
}

func (h *httpServerAdapter) DownloadFile(ctx context.Context, fileID string) (models.File, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.File{}, err
	}

	resp, err := req.
		SetHeader("Accept", "*/*").
		SetPathParam("fileID", fileID).
		Get("/api/files/{fileID}")
	if err != nil {
		return models.File{}, fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.File{}, err
	}

	data := resp.Body()
	file := models.File{
		Info: models.FileInfo{
			FileID:      fileID,
			Size:        int64(len(data)),
			ContentType: resp.Header().Get("Content-Type"),
		},
		Data: data,
	}

	if _, params, err := mime.ParseMediaType(resp.Header().Get("Content-Disposition")); err == nil {
		file.Info.Name = params["filename"]
	}
	if length := resp.Header().Get("Content-Length"); length != "" {
		if n, err := strconv.ParseInt(length, 10, 64); err == nil && n != file.Info.Size {
			return models.File{}, fmt.Errorf("download %s: got %d of %d bytes", fileID, file.Info.Size, n)
		}
	}

	return file, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return version.Version, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}
