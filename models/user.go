// models/user.go
package models

import "time"

// Role is a user's ensemble role.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleBallet Role = "ballet"
	RoleChoir  Role = "choir"
)

// User represents an app user.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	PhoneNumber  string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Role         Role      `bson:"role" json:"role"`
	PushToken    string    `bson:"pushToken,omitempty" json:"pushToken,omitempty"` // Expo push token (e.g. "ExponentPushToken[xxx]")
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
