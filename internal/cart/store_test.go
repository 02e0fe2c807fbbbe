package cart

import (
	"testing"

	"github.com/florawhisper/storefront-gateway/pkg/flora"
	"github.com/florawhisper/storefront-gateway/pkg/types"
)

func money(t *testing.T, s string) types.Money {
	t.Helper()
	m, err := types.MoneyFromString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return m
}

func plant(id int64, price string) flora.Plant {
	m, _ := types.MoneyFromString(price)
	return flora.Plant{
		ID:    id,
		Name:  "plant",
		Price: m,
	}
}

func salePlant(id int64, price, sale string) flora.Plant {
	p := plant(id, price)
	p.UpdatePrice, _ = types.MoneyFromString(sale)
	return p
}

func TestAddAccumulatesQuantity(t *testing.T) {
	s := NewStore()
	s.Add(plant(1, "10.00"), 1)
	s.Add(plant(1, "10.00"), 2)

	lines := s.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected a single line, got %d", len(lines))
	}
	if lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", lines[0].Quantity)
	}
}

func TestAddDefaultsToOne(t *testing.T) {
	s := NewStore()
	s.Add(plant(1, "10.00"), 0)
	s.Add(plant(2, "5.00"), -4)

	for _, l := range s.Lines() {
		if l.Quantity != 1 {
			t.Fatalf("plant %d: expected quantity 1, got %d", l.Plant.ID, l.Quantity)
		}
	}
}

func TestRemoveMissingPlantIsNoop(t *testing.T) {
	s := NewStore()
	s.Add(plant(1, "10.00"), 2)
	s.Remove(99)

	if got := s.TotalItems(); got != 2 {
		t.Fatalf("expected 2 items, got %d", got)
	}
}

func TestSetQuantityReplaces(t *testing.T) {
	s := NewStore()
	s.Add(plant(1, "10.00"), 2)
	s.SetQuantity(1, 5)

	if got := s.TotalItems(); got != 5 {
		t.Fatalf("expected 5 items, got %d", got)
	}
}

func TestSetQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -1} {
		s := NewStore()
		s.Add(plant(1, "10.00"), 2)
		s.SetQuantity(1, qty)

		if got := len(s.Lines()); got != 0 {
			t.Fatalf("qty %d: expected empty cart, got %d lines", qty, got)
		}
	}
}

func TestSetQuantityMissingPlantIsNoop(t *testing.T) {
	s := NewStore()
	s.Add(plant(1, "10.00"), 2)
	s.SetQuantity(99, 7)

	if got := s.TotalItems(); got != 2 {
		t.Fatalf("expected 2 items, got %d", got)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	s := NewStore()
	s.Add(plant(1, "10.00"), 2)
	s.Add(plant(2, "3.00"), 1)
	s.Clear()

	if got := len(s.Lines()); got != 0 {
		t.Fatalf("expected empty cart, got %d lines", got)
	}
	if got := s.TotalCost(); !got.IsZero() {
		t.Fatalf("expected zero cost, got %s", got)
	}
}

func TestTotalsOnEmptyCart(t *testing.T) {
	s := NewStore()
	if got := s.TotalItems(); got != 0 {
		t.Fatalf("expected 0 items, got %d", got)
	}
	if got := s.TotalCost(); got.String() != "0.00" {
		t.Fatalf("expected 0.00, got %s", got)
	}
}

func TestTotalCostUsesSalePriceWhenSet(t *testing.T) {
	s := NewStore()
	s.Add(salePlant(1, "20.00", "15.00"), 2)
	s.Add(plant(2, "10.00"), 1)

	if got := s.TotalCost(); got.String() != "40.00" {
		t.Fatalf("expected 40.00, got %s", got)
	}
}

func TestPlantQuantities(t *testing.T) {
	s := NewStore()
	s.Add(plant(1, "10.00"), 2)
	s.Add(plant(2, "5.00"), 3)
	s.Remove(1)

	got := s.PlantQuantities()
	if len(got) != 1 {
		t.Fatalf("expected one entry, got %d", len(got))
	}
	if got[2] != 3 {
		t.Fatalf("expected quantity 3 for plant 2, got %d", got[2])
	}
}

func TestLinesKeepInsertionOrder(t *testing.T) {
	s := NewStore()
	s.Add(plant(3, "1.00"), 1)
	s.Add(plant(1, "1.00"), 1)
	s.Add(plant(2, "1.00"), 1)
	s.Add(plant(3, "1.00"), 1)

	want := []int64{3, 1, 2}
	lines := s.Lines()
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i, id := range want {
		if lines[i].Plant.ID != id {
			t.Fatalf("line %d: expected plant %d, got %d", i, id, lines[i].Plant.ID)
		}
	}
}

func TestObserverSeesEachMutation(t *testing.T) {
	s := NewStore()
	var seen []Summary
	s.Subscribe(func(sum Summary) { seen = append(seen, sum) })

	s.Add(plant(1, "10.00"), 2)
	s.SetQuantity(1, 4)
	s.Clear()

	if len(seen) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(seen))
	}
	if seen[1].TotalItems != 4 {
		t.Fatalf("expected 4 items after update, got %d", seen[1].TotalItems)
	}
	if seen[2].LineCount != 0 {
		t.Fatalf("expected empty cart after clear, got %d lines", seen[2].LineCount)
	}
}

func TestOrderTotalZeroSubtotal(t *testing.T) {
	got := OrderTotal(money(t, "0"))
	if got.Shipping.String() != "5.99" {
		t.Fatalf("expected shipping 5.99, got %s", got.Shipping)
	}
	if got.Tax.String() != "0.00" {
		t.Fatalf("expected tax 0.00, got %s", got.Tax)
	}
	if got.Total.String() != "5.99" {
		t.Fatalf("expected total 5.99, got %s", got.Total)
	}
}

func TestOrderTotalHundredSubtotal(t *testing.T) {
	got := OrderTotal(money(t, "100"))
	if got.Tax.String() != "8.00" {
		t.Fatalf("expected tax 8.00, got %s", got.Tax)
	}
	if got.Total.String() != "113.99" {
		t.Fatalf("expected total 113.99, got %s", got.Total)
	}
}
