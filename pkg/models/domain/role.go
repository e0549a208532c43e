package domain

type RoleID string

const (
	RoleEmployee RoleID = "user"
	RoleManager  RoleID = "manager"
	RoleAdmin    RoleID = "admin"
)

// Capability is a permission tag held by a role.
type Capability string

const (
	CapViewResources     Capability = "view_resources"
	CapCreateRequests    Capability = "create_requests"
	CapApproveRequests   Capability = "approve_requests"
	CapManageTeam        Capability = "manage_team"
	CapManageUsers       Capability = "manage_users"
	CapConfigurePolicies Capability = "configure_policies"
	CapFullAccess        Capability = "full_access"
)

// Capabilities is the fixed vocabulary permission tags are drawn from.
var Capabilities = []Capability{
	CapViewResources,
	CapCreateRequests,
	CapApproveRequests,
	CapManageTeam,
	CapManageUsers,
	CapConfigurePolicies,
	CapFullAccess,
}

func (c Capability) Valid() bool {
	for _, known := range Capabilities {
		if c == known {
			return true
		}
	}
	return false
}

// RoleIDs lists every role a dataset must define.
var RoleIDs = []RoleID{RoleEmployee, RoleManager, RoleAdmin}

func (id RoleID) Valid() bool {
	for _, known := range RoleIDs {
		if id == known {
			return true
		}
	}
	return false
}

// Credentials is the demo username/password pair shown on the login page.
type Credentials struct {
	Username string
	Password string
}

type Role struct {
	ID          RoleID
	Name        string // Employee
	Description string
	Permissions []Capability
	Features    []string // dashboard feature labels
	Credentials Credentials
}
