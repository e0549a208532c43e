package domain

import "time"

// Session is the authenticated demo identity. It is resolved once per request
// and handed to whatever composes the response.
type Session struct {
	ID        string
	Role      Role
	Username  string
	CreatedAt time.Time
}
