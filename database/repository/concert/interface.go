package concertRepo

import (
	"chorus/models"
)

// ConcertRepository defines methods for concert data access.
type ConcertRepository interface {
	// GetByID retrieves a concert by its unique ID.
	GetByID(id string) (*models.Concert, error)
	// GetAll retrieves all concert records.
	GetAll() ([]models.Concert, error)
	// Create inserts a new concert record.
	Create(concert *models.Concert) error
	// Update modifies an existing concert record.
	Update(concert *models.Concert) error
	// Delete removes a concert record by its ID.
	Delete(id string) error
}
