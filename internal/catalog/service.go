package catalog

import (
	"context"
	"strings"

	"github.com/florawhisper/storefront-gateway/pkg/errors"
	"github.com/florawhisper/storefront-gateway/pkg/flora"
)

type upstream interface {
	ListPlants(ctx context.Context, token string) ([]flora.Plant, error)
	PlantsByCategory(ctx context.Context, token string, categoryID int64) ([]flora.Plant, error)
	SearchPlants(ctx context.Context, token string, categoryID int64, color, name string) ([]flora.Plant, error)
	GetPlant(ctx context.Context, token string, plantID int64) (*flora.Plant, error)
	CreatePlant(ctx context.Context, token string, fields []flora.FormField, img *flora.FormFile) (string, error)
	UpdatePlant(ctx context.Context, token string, plantID int64, fields []flora.FormField, img *flora.FormFile) (string, error)
	DeletePlant(ctx context.Context, token string, plantID int64) (string, error)
	ListCategories(ctx context.Context, token string) ([]flora.Category, error)
	ListFlowerMeanings(ctx context.Context, token string) ([]flora.FlowerMeaning, error)
	GetFlowerMeaning(ctx context.Context, token string, id int64) (*flora.FlowerMeaning, error)
	CreateFlowerMeaning(ctx context.Context, token string, meaning flora.FlowerMeaning) (*flora.FlowerMeaning, error)
	UpdateFlowerMeaning(ctx context.Context, token string, id int64, meaning flora.FlowerMeaning) (*flora.FlowerMeaning, error)
	DeleteFlowerMeaning(ctx context.Context, token string, id int64) (string, error)
}

// Service fronts the upstream catalog: plants, categories, and flower
// meanings.
type Service struct {
	upstream upstream
}

func NewService(upstream upstream) *Service {
	return &Service{upstream: upstream}
}

func (s *Service) ListPlants(ctx context.Context, token string) ([]flora.Plant, error) {
	return s.upstream.ListPlants(ctx, token)
}

func (s *Service) PlantsByCategory(ctx context.Context, token string, categoryID int64) ([]flora.Plant, error) {
	return s.upstream.PlantsByCategory(ctx, token, categoryID)
}

// SearchPlants filters a category by optional color and name terms.
// Blank terms are dropped, a search with neither falls back to the
// plain category listing.
func (s *Service) SearchPlants(ctx context.Context, token string, categoryID int64, color, name string) ([]flora.Plant, error) {
	color = strings.TrimSpace(color)
	name = strings.TrimSpace(name)
	if color == "" && name == "" {
		return s.upstream.PlantsByCategory(ctx, token, categoryID)
	}
	return s.upstream.SearchPlants(ctx, token, categoryID, color, name)
}

func (s *Service) GetPlant(ctx context.Context, token string, plantID int64) (*flora.Plant, error) {
	return s.upstream.GetPlant(ctx, token, plantID)
}

func (s *Service) CreatePlant(ctx context.Context, token string, fields []flora.FormField, img *flora.FormFile) (string, error) {
	return s.upstream.CreatePlant(ctx, token, fields, img)
}

func (s *Service) UpdatePlant(ctx context.Context, token string, plantID int64, fields []flora.FormField, img *flora.FormFile) (string, error) {
	return s.upstream.UpdatePlant(ctx, token, plantID, fields, img)
}

func (s *Service) DeletePlant(ctx context.Context, token string, plantID int64) (string, error) {
	return s.upstream.DeletePlant(ctx, token, plantID)
}

func (s *Service) ListCategories(ctx context.Context, token string) ([]flora.Category, error) {
	return s.upstream.ListCategories(ctx, token)
}

func (s *Service) ListFlowerMeanings(ctx context.Context, token string) ([]flora.FlowerMeaning, error) {
	return s.upstream.ListFlowerMeanings(ctx, token)
}

func (s *Service) GetFlowerMeaning(ctx context.Context, token string, id int64) (*flora.FlowerMeaning, error) {
	return s.upstream.GetFlowerMeaning(ctx, token, id)
}

func (s *Service) CreateFlowerMeaning(ctx context.Context, token string, meaning flora.FlowerMeaning) (*flora.FlowerMeaning, error) {
	if strings.TrimSpace(meaning.Name) == "" {
		return nil, errors.New(errors.CodeValidation, "flower name is required")
	}
	return s.upstream.CreateFlowerMeaning(ctx, token, meaning)
}

func (s *Service) UpdateFlowerMeaning(ctx context.Context, token string, id int64, meaning flora.FlowerMeaning) (*flora.FlowerMeaning, error) {
	return s.upstream.UpdateFlowerMeaning(ctx, token, id, meaning)
}

func (s *Service) DeleteFlowerMeaning(ctx context.Context, token string, id int64) (string, error) {
	return s.upstream.DeleteFlowerMeaning(ctx, token, id)
}
