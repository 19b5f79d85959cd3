package repository

import (
	"context"

	"gorm.io/gorm"

	"dealerreview/internal/model"
)

// CatalogRepository defines car make/model persistence operations.
type CatalogRepository interface {
	ListMakesWithModels(ctx context.Context) ([]model.CarMake, error)
	FindMakeByName(ctx context.Context, name string) (*model.CarMake, error)
	CreateMake(ctx context.Context, carMake *model.CarMake) error
	CreateModel(ctx context.Context, carModel *model.CarModel) error
	DeleteMake(ctx context.Context, id uint) error
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo CatalogRepository) error) error
}

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// ListMakesWithModels returns every make with its models, both in insertion order.
func (r *catalogRepository) ListMakesWithModels(ctx context.Context) ([]model.CarMake, error) {
	var makes []model.CarMake
	err := r.db.WithContext(ctx).
		Preload("Models", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Order("id").
		Find(&makes).Error
	if err != nil {
		return nil, err
	}
	return makes, nil
}

// FindMakeByName finds a make by its exact name.
func (r *catalogRepository) FindMakeByName(ctx context.Context, name string) (*model.CarMake, error) {
	var carMake model.CarMake
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&carMake).Error; err != nil {
		return nil, err
	}
	return &carMake, nil
}

// CreateMake creates a make. Models attached to it are created too.
func (r *catalogRepository) CreateMake(ctx context.Context, carMake *model.CarMake) error {
	return r.db.WithContext(ctx).Create(carMake).Error
}

// CreateModel creates a model; the BeforeSave hook rejects invalid years and types.
func (r *catalogRepository) CreateModel(ctx context.Context, carModel *model.CarModel) error {
	return r.db.WithContext(ctx).Create(carModel).Error
}

// DeleteMake deletes a make and all of its models.
func (r *catalogRepository) DeleteMake(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("make_id = ?", id).Delete(&model.CarModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.CarMake{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// WithTransaction executes a function within a database transaction.
func (r *catalogRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo CatalogRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &catalogRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
