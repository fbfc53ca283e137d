package models

import "time"

// Attribute keys of the encrypted profile bundle stored in
// users.encrypted_data.
const (
	AttributeEmail     = "email"
	AttributeFirstName = "first_name"
	AttributeLastName  = "last_name"
)

// User represents an account entity used for authentication and authorization.
// Profile attributes never appear here in plaintext: they live only inside
// EncryptedData.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// PasswordHash is the bcrypt hash of the account password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// EncryptedData is the Fernet token holding the profile attribute bundle
	// (email, first name, last name). It is never exposed via JSON.
	EncryptedData []byte `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile is the decrypted, in-memory view of a user returned to its owner.
type Profile struct {
	UserID    int64     `json:"id"`
	Login     string    `json:"login"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterRequest is the payload of POST /api/user/register.
type RegisterRequest struct {
	Login     string `json:"login"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Credentials is the payload of POST /api/user/login.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
