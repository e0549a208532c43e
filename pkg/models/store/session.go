package store

import "time"

// Keys of the two entries persisted per session.
const (
	KeyUserRole = "userRole"
	KeyUserName = "userName"
)

type SessionRecord struct {
	ID        string
	UserRole  string
	UserName  string
	CreatedAt time.Time
}
