package entity

import (
	"time"
)

// Role is the immutable account type chosen at signup.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// Profile is the role-specific part of a User. Exactly one implementation
// matches each role: SellerProfile for sellers, BuyerProfile for buyers and
// none for admins.
type Profile interface {
	role() Role
}

type SellerProfile struct {
	ArtStyle string
}

func (SellerProfile) role() Role { return RoleSeller }

type BuyerProfile struct {
	Age int
}

func (BuyerProfile) role() Role { return RoleBuyer }

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in PasswordHash.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	Phone        string
	Address      string
	Role         Role
	Profile      Profile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProfileMatchesRole reports whether the attached profile fits the role tag.
func (u *User) ProfileMatchesRole() bool {
	if u.Profile == nil {
		return u.Role == RoleAdmin
	}
	return u.Profile.role() == u.Role
}

// ArtStyle returns the seller art style, or "" for other roles.
func (u *User) ArtStyle() string {
	if p, ok := u.Profile.(SellerProfile); ok {
		return p.ArtStyle
	}
	return ""
}

// Age returns the buyer age, or 0 for other roles.
func (u *User) Age() int {
	if p, ok := u.Profile.(BuyerProfile); ok {
		return p.Age
	}
	return 0
}
