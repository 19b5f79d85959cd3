package service

import (
	"context"

	apperrors "dealerreview/internal/errors"
	"dealerreview/internal/logger"
	"dealerreview/internal/model"
	"dealerreview/internal/repository"
)

// CatalogModel is the projection of a CarModel exposed in the catalog.
type CatalogModel struct {
	ID       uint          `json:"id"`
	Name     string        `json:"name"`
	CarType  model.CarType `json:"car_type"`
	Year     int           `json:"year"`
	DealerID int           `json:"dealer_id"`
}

// CatalogEntry is a make with its models.
type CatalogEntry struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Models      []CatalogModel `json:"models"`
}

// CatalogService reads the local car catalog.
type CatalogService interface {
	ListCatalog(ctx context.Context) ([]CatalogEntry, error)
}

type catalogService struct {
	repo repository.CatalogRepository
	log  logger.ILogger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.CatalogRepository, log logger.ILogger) CatalogService {
	return &catalogService{repo: repo, log: log}
}

// ListCatalog returns one entry per make, each holding exactly that make's models.
func (s *catalogService) ListCatalog(ctx context.Context) ([]CatalogEntry, error) {
	makes, err := s.repo.ListMakesWithModels(ctx)
	if err != nil {
		s.log.Error("Error fetching car data", logger.Error(err))
		return nil, &apperrors.StorageError{Err: err}
	}

	entries := make([]CatalogEntry, 0, len(makes))
	for _, carMake := range makes {
		models := make([]CatalogModel, 0, len(carMake.Models))
		for _, m := range carMake.Models {
			models = append(models, CatalogModel{
				ID:       m.ID,
				Name:     m.Name,
				CarType:  m.CarType,
				Year:     m.Year,
				DealerID: m.DealerID,
			})
		}
		entries = append(entries, CatalogEntry{
			ID:          carMake.ID,
			Name:        carMake.Name,
			Description: carMake.Description,
			Models:      models,
		})
	}
	return entries, nil
}
