package models

import (
	"time"
)

type Role string

const (
	RoleClient   Role = "client"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

type User struct {
	UserID            string                 `json:"user_id" bson:"user_id"`
	Email             string                 `json:"email" bson:"email"`
	Name              string                 `json:"name" bson:"name"`
	Role              Role                   `json:"role" bson:"role"`
	PreferredLanguage string                 `json:"preferred_language,omitempty" bson:"preferred_language,omitempty"`
	Picture           string                 `json:"picture,omitempty" bson:"picture,omitempty"`
	Location          map[string]interface{} `json:"location,omitempty" bson:"location,omitempty"`
	PostalCode        string                 `json:"postal_code,omitempty" bson:"postal_code,omitempty"`
	CreatedAt         time.Time              `json:"created_at" bson:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u *User) IsProvider() bool {
	return u != nil && u.Role == RoleProvider
}
