package concert

import (
	"fmt"

	concertRepo "chorus/database/repository/concert"
	"chorus/models"

	"github.com/google/uuid"
)

// ConcertService exposes the concert list and the browser pipeline.
type ConcertService interface {
	// List returns the raw concert list.
	List() ([]models.Concert, error)
	// Browse loads the concert list and runs the filter/search/sort/group
	// pipeline over it.
	Browse(opts BrowseOptions) ([]MonthGroup, error)
	// Get retrieves a single concert.
	Get(id string) (*models.Concert, error)
	// Create inserts a new concert record.
	Create(concert *models.Concert) error
	// Update modifies an existing concert record.
	Update(concert *models.Concert) error
	// Delete removes a concert record.
	Delete(id string) error
}

// DefaultConcertService is the production implementation.
type DefaultConcertService struct {
	Repo concertRepo.ConcertRepository
}

// List returns the raw concert list.
func (s *DefaultConcertService) List() ([]models.Concert, error) {
	return s.Repo.GetAll()
}

// Browse recomputes the whole pipeline from the stored list.
func (s *DefaultConcertService) Browse(opts BrowseOptions) ([]MonthGroup, error) {
	concerts, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load concerts: %w", err)
	}
	return BrowsePipeline(concerts, opts), nil
}

// Get retrieves a single concert.
func (s *DefaultConcertService) Get(id string) (*models.Concert, error) {
	return s.Repo.GetByID(id)
}

// Create inserts a new concert record, assigning an id when absent.
func (s *DefaultConcertService) Create(concert *models.Concert) error {
	if concert.ID == "" {
		concert.ID = uuid.NewString()
	}
	return s.Repo.Create(concert)
}

// Update modifies an existing concert record.
func (s *DefaultConcertService) Update(concert *models.Concert) error {
	return s.Repo.Update(concert)
}

// Delete removes a concert record.
func (s *DefaultConcertService) Delete(id string) error {
	return s.Repo.Delete(id)
}
