package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gorm.io/gorm"

	"dealerreview/internal/model"
	"dealerreview/internal/repository"
)

// SeedMake is a make and its models as read from a catalog file.
type SeedMake struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Models      []SeedModel `json:"models"`
}

// SeedModel is one model entry of a SeedMake.
type SeedModel struct {
	Name     string        `json:"name"`
	CarType  model.CarType `json:"car_type"`
	Year     int           `json:"year"`
	DealerID int           `json:"dealer_id"`
}

// SeedStats summarizes a seeding run.
type SeedStats struct {
	MakesCreated  int
	MakesSkipped  int
	ModelsCreated int
}

var defaultCatalog = []SeedMake{
	{
		Name:        "NISSAN",
		Description: "Great cars. Japanese technology",
		Models: []SeedModel{
			{Name: "Pathfinder", CarType: model.CarTypeSUV, Year: 2023, DealerID: 1},
			{Name: "Qashqai", CarType: model.CarTypeSUV, Year: 2023, DealerID: 2},
			{Name: "XTRAIL", CarType: model.CarTypeSUV, Year: 2023, DealerID: 3},
		},
	},
	{
		Name:        "Mercedes",
		Description: "Great cars. German technology",
		Models: []SeedModel{
			{Name: "A-Class", CarType: model.CarTypeSUV, Year: 2023, DealerID: 4},
			{Name: "C-Class", CarType: model.CarTypeSUV, Year: 2023, DealerID: 5},
			{Name: "E-Class", CarType: model.CarTypeSUV, Year: 2023, DealerID: 6},
		},
	},
	{
		Name:        "Audi",
		Description: "Great cars. German technology",
		Models: []SeedModel{
			{Name: "A4", CarType: model.CarTypeSUV, Year: 2023, DealerID: 7},
			{Name: "A5", CarType: model.CarTypeSUV, Year: 2023, DealerID: 8},
			{Name: "A6", CarType: model.CarTypeSUV, Year: 2023, DealerID: 9},
		},
	},
	{
		Name:        "Kia",
		Description: "Great cars. Korean technology",
		Models: []SeedModel{
			{Name: "Sorrento", CarType: model.CarTypeSUV, Year: 2023, DealerID: 10},
			{Name: "Carnival", CarType: model.CarTypeSUV, Year: 2023, DealerID: 11},
			{Name: "Cerato", CarType: model.CarTypeSedan, Year: 2023, DealerID: 12},
		},
	},
	{
		Name:        "Toyota",
		Description: "Great cars. Japanese technology",
		Models: []SeedModel{
			{Name: "Corolla", CarType: model.CarTypeSedan, Year: 2023, DealerID: 13},
			{Name: "Camry", CarType: model.CarTypeSedan, Year: 2023, DealerID: 14},
			{Name: "Kluger", CarType: model.CarTypeSUV, Year: 2023, DealerID: 15},
		},
	},
}

func loadCatalog(path string) ([]SeedMake, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var catalog []SeedMake
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return catalog, nil
}

// resetCatalog deletes every make; models go with them.
func resetCatalog(ctx context.Context, repo repository.CatalogRepository) (int, error) {
	makes, err := repo.ListMakesWithModels(ctx)
	if err != nil {
		return 0, err
	}
	for _, carMake := range makes {
		if err := repo.DeleteMake(ctx, carMake.ID); err != nil {
			return 0, fmt.Errorf("delete make %q: %w", carMake.Name, err)
		}
	}
	return len(makes), nil
}

// seedCatalog creates every make that does not exist yet, each with its
// models in one transaction. Existing makes are left untouched.
func seedCatalog(ctx context.Context, repo repository.CatalogRepository, catalog []SeedMake) (SeedStats, error) {
	var stats SeedStats
	for _, entry := range catalog {
		_, err := repo.FindMakeByName(ctx, entry.Name)
		if err == nil {
			stats.MakesSkipped++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return stats, fmt.Errorf("look up make %q: %w", entry.Name, err)
		}

		err = repo.WithTransaction(ctx, func(ctx context.Context, tx repository.CatalogRepository) error {
			carMake := &model.CarMake{Name: entry.Name, Description: entry.Description}
			if err := tx.CreateMake(ctx, carMake); err != nil {
				return err
			}
			for _, m := range entry.Models {
				carModel := &model.CarModel{
					MakeID:   carMake.ID,
					Name:     m.Name,
					CarType:  m.CarType,
					Year:     m.Year,
					DealerID: m.DealerID,
				}
				if err := tx.CreateModel(ctx, carModel); err != nil {
					return fmt.Errorf("model %q: %w", m.Name, err)
				}
			}
			return nil
		})
		if err != nil {
			return stats, fmt.Errorf("seed make %q: %w", entry.Name, err)
		}
		stats.MakesCreated++
		stats.ModelsCreated += len(entry.Models)
	}
	return stats, nil
}
