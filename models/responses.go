package models

// AuthResponse is returned by the register and login endpoints. The same
// token is also sent in the Authorization header.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// ErrorResponse carries a generic error message, or a list of
// user-facing validation failures.
type ErrorResponse struct {
	Error  string   `json:"error,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
}
