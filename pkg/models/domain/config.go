package domain

import "fmt"

// AccountProfile is a demo account section read from the accounts file.
type AccountProfile struct {
	Name        string
	Role        RoleID
	Credentials Credentials
}

func (a AccountProfile) String() string {
	return fmt.Sprintf("%s:%s", a.Role, a.Credentials.Username)
}
