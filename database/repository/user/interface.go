package userRepo

import (
	"chorus/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address, or nil when absent.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// GetByRoles retrieves all users whose role is in the given set.
	GetByRoles(roles ...models.Role) ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// SetPushToken stores the device push token on a user record.
	SetPushToken(id, token string) error
}
