package domain

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrStoreUnavailable   = errors.New("database not configured")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrUserNotFound       = errors.New("user not found")
)

// User is the sole stored entity. Optional descriptive fields are pointers so
// an absent value round-trips as null, matching what older clients expect.
// PasswordHash is bson-only; it must never appear in a response body.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        *string            `bson:"phone" json:"phone,omitempty"`
	City         *string            `bson:"city" json:"city"`
	BloodGroup   *string            `bson:"blood_group" json:"blood_group"`
	Role         string             `bson:"role" json:"role"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
}

// NormalizeEmail lowercases an address. Emails are stored lowercase and every
// lookup must normalize before querying.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// UserRepository is the data-access boundary. Implementations return
// ErrUserNotFound for missing emails and ErrEmailTaken on a unique-index
// conflict during Insert.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Insert(ctx context.Context, u *User) (primitive.ObjectID, error)

	// Diagnostics only, not part of the user domain.
	CollectionNames(ctx context.Context, limit int) ([]string, error)
	Ping(ctx context.Context) error
}

// PasswordHasher turns plaintext passwords into storable hashes and verifies
// plaintexts against stored hashes. Verify treats a malformed or empty hash
// as a mismatch, never as an error.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
