package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dealerreview/internal/model"
	"dealerreview/internal/repository"
)

type memoryCatalog struct {
	makes  []model.CarMake
	nextID uint
}

func (m *memoryCatalog) ListMakesWithModels(ctx context.Context) ([]model.CarMake, error) {
	return append([]model.CarMake(nil), m.makes...), nil
}

func (m *memoryCatalog) FindMakeByName(ctx context.Context, name string) (*model.CarMake, error) {
	for i := range m.makes {
		if m.makes[i].Name == name {
			return &m.makes[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryCatalog) CreateMake(ctx context.Context, carMake *model.CarMake) error {
	m.nextID++
	carMake.ID = m.nextID
	m.makes = append(m.makes, *carMake)
	return nil
}

func (m *memoryCatalog) CreateModel(ctx context.Context, carModel *model.CarModel) error {
	if err := carModel.Validate(); err != nil {
		return err
	}
	for i := range m.makes {
		if m.makes[i].ID == carModel.MakeID {
			m.nextID++
			carModel.ID = m.nextID
			m.makes[i].Models = append(m.makes[i].Models, *carModel)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *memoryCatalog) DeleteMake(ctx context.Context, id uint) error {
	for i := range m.makes {
		if m.makes[i].ID == id {
			m.makes = append(m.makes[:i], m.makes[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *memoryCatalog) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.CatalogRepository) error) error {
	return fn(ctx, m)
}

func TestSeedCatalog_DefaultCatalogIsValid(t *testing.T) {
	repo := &memoryCatalog{}

	stats, err := seedCatalog(context.Background(), repo, defaultCatalog)
	require.NoError(t, err)

	assert.Equal(t, len(defaultCatalog), stats.MakesCreated)
	assert.Equal(t, 15, stats.ModelsCreated)
	assert.Len(t, repo.makes, len(defaultCatalog))
}

func TestSeedCatalog_SkipsExistingMakes(t *testing.T) {
	repo := &memoryCatalog{}
	ctx := context.Background()

	_, err := seedCatalog(ctx, repo, defaultCatalog)
	require.NoError(t, err)

	stats, err := seedCatalog(ctx, repo, defaultCatalog)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.MakesCreated)
	assert.Equal(t, len(defaultCatalog), stats.MakesSkipped)
	assert.Len(t, repo.makes, len(defaultCatalog))
}

func TestSeedCatalog_RejectsOutOfRangeYear(t *testing.T) {
	repo := &memoryCatalog{}
	catalog := []SeedMake{{
		Name:   "Ford",
		Models: []SeedModel{{Name: "Model T", CarType: model.CarTypeSedan, Year: 1908}},
	}}

	_, err := seedCatalog(context.Background(), repo, catalog)

	assert.ErrorIs(t, err, model.ErrInvalidYear)
}

func TestResetCatalog(t *testing.T) {
	repo := &memoryCatalog{}
	ctx := context.Background()
	_, err := seedCatalog(ctx, repo, defaultCatalog)
	require.NoError(t, err)

	removed, err := resetCatalog(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, len(defaultCatalog), removed)
	assert.Empty(t, repo.makes)
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name":"Toyota","description":"Japanese","models":[
			{"name":"Corolla","car_type":"Sedan","year":2020,"dealer_id":3}
		]}
	]`), 0o600))

	catalog, err := loadCatalog(path)
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "Toyota", catalog[0].Name)
	assert.Equal(t, SeedModel{Name: "Corolla", CarType: model.CarTypeSedan, Year: 2020, DealerID: 3}, catalog[0].Models[0])

	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))
	_, err = loadCatalog(path)
	assert.Error(t, err)
}
