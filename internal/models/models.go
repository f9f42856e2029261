package models

import "time"

// User is a user record held by the write store. The ID is assigned by the
// database; CreatedAt is set once at creation and never changes.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
