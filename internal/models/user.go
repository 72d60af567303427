package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID           uuid.UUID `bson:"_id" json:"id"`
	Username     string    `bson:"username" json:"username" validate:"required,min=1,max=64"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	IsAdmin      bool      `bson:"is_admin" json:"is_admin"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// UserView is the outward serialization of a User. It has no field for
// the password hash, so no response path can leak it.
type UserView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	IsAdmin  bool      `json:"is_admin"`
}

// SetPassword hashes the plaintext with bcrypt and stores only the hash.
// The plaintext is never retained or logged.
func (u *User) SetPassword(plaintext string) error {
	if plaintext == "" {
		return ErrValidation
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether plaintext matches the stored hash.
// bcrypt's comparison is constant-time; any error means no match.
func (u *User) CheckPassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plaintext)) == nil
}

func (u *User) Sanitize() UserView {
	return UserView{
		ID:       u.ID,
		Username: u.Username,
		IsAdmin:  u.IsAdmin,
	}
}
