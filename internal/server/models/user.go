// Package models holds the database-backed entities of the board backend.
package models

import "time"

// User is an account row. Password holds the bcrypt hash; the service layer
// clears it before a user leaves the boundary.
type User struct {
	ID       int64     `json:"userId"`
	Email    string    `json:"email"`
	Password string    `json:"-"`
	Name     string    `json:"name"`
	RegDate  time.Time `json:"regdate"`
}
