package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access to every resource
	RoleHR       Role = "hr"       // Employee, payroll and attendance administration
	RoleManager  Role = "manager"  // Can file performance reviews
	RoleEmployee Role = "employee" // Regular employee, self-service only
)

// ValidRoles lists every role a user may hold.
var ValidRoles = []Role{RoleAdmin, RoleHR, RoleManager, RoleEmployee}

func IsValidRole(role Role) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
