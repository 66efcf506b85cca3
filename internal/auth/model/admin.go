// Package model defines domain models for the auth module.
package model

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost trades hash time for resistance to offline cracking.
const bcryptCost = 12

// ErrInvalidCredentials is returned when the username or password is wrong.
// Login never reveals which of the two failed.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Admin represents an administrator account.
type Admin struct {
	AdminID      int    `gorm:"column:admin_id;primaryKey;autoIncrement" json:"admin_id"`
	Username     string `gorm:"column:username;type:varchar(100);uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(200);not null" json:"-"`
}

// TableName returns the table name for the Admin model.
func (Admin) TableName() string {
	return "admins"
}

// SetPassword hashes and stores the given plaintext password.
func (a *Admin) SetPassword(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func (a *Admin) CheckPassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(plaintext)) == nil
}

// LoginRequest is the /admin/login request body.
type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// LoginResponse is the /admin/login response envelope.
type LoginResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
