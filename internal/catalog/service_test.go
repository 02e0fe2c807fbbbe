package catalog

import (
	"context"
	"testing"

	"github.com/florawhisper/storefront-gateway/pkg/errors"
	"github.com/florawhisper/storefront-gateway/pkg/flora"
)

type stubUpstream struct {
	upstream

	byCategoryCalls int
	searchCalls     int
	searchColor     string
	searchName      string
	created         *flora.FlowerMeaning
}

func (s *stubUpstream) PlantsByCategory(ctx context.Context, token string, categoryID int64) ([]flora.Plant, error) {
	s.byCategoryCalls++
	return []flora.Plant{{ID: 1}}, nil
}

func (s *stubUpstream) SearchPlants(ctx context.Context, token string, categoryID int64, color, name string) ([]flora.Plant, error) {
	s.searchCalls++
	s.searchColor = color
	s.searchName = name
	return []flora.Plant{{ID: 2}}, nil
}

func (s *stubUpstream) CreateFlowerMeaning(ctx context.Context, token string, meaning flora.FlowerMeaning) (*flora.FlowerMeaning, error) {
	s.created = &meaning
	return &meaning, nil
}

func TestSearchPlantsFallsBackOnBlankTerms(t *testing.T) {
	stub := &stubUpstream{}
	svc := NewService(stub)

	plants, err := svc.SearchPlants(context.Background(), "tok", 3, "  ", "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if stub.byCategoryCalls != 1 || stub.searchCalls != 0 {
		t.Fatalf("expected category fallback, got byCategory=%d search=%d", stub.byCategoryCalls, stub.searchCalls)
	}
	if len(plants) != 1 || plants[0].ID != 1 {
		t.Fatalf("unexpected plants %+v", plants)
	}
}

func TestSearchPlantsTrimsTerms(t *testing.T) {
	stub := &stubUpstream{}
	svc := NewService(stub)

	if _, err := svc.SearchPlants(context.Background(), "tok", 3, " red ", " rose "); err != nil {
		t.Fatalf("search: %v", err)
	}
	if stub.searchCalls != 1 {
		t.Fatalf("expected search call, got %d", stub.searchCalls)
	}
	if stub.searchColor != "red" || stub.searchName != "rose" {
		t.Fatalf("terms not trimmed: color=%q name=%q", stub.searchColor, stub.searchName)
	}
}

func TestCreateFlowerMeaningRequiresName(t *testing.T) {
	stub := &stubUpstream{}
	svc := NewService(stub)

	_, err := svc.CreateFlowerMeaning(context.Background(), "tok", flora.FlowerMeaning{Name: "   "})
	if errors.CodeOf(err) != errors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if stub.created != nil {
		t.Fatal("upstream should not have been called")
	}

	meaning, err := svc.CreateFlowerMeaning(context.Background(), "tok", flora.FlowerMeaning{Name: "Rose"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if meaning.Name != "Rose" || stub.created == nil {
		t.Fatalf("unexpected result %+v", meaning)
	}
}
