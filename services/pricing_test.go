package services

import (
	"testing"

	"github.com/google/uuid"

	"salonbook-backend/models"
)

func testCatalog() (Catalog, models.Product, models.ProductVariant, models.Service) {
	variant := models.ProductVariant{
		ID: uuid.New(),
		Combination: models.VariantPairList{
			{VariationType: "Size", VariationValue: "M"},
		},
		Price: 250,
		Stock: 10,
	}
	withVariants := models.Product{
		ID:            uuid.New(),
		ProductName:   "Argan Oil Shampoo",
		HasVariations: true,
		Variants:      []models.ProductVariant{variant},
	}
	plain := models.Product{
		ID:          uuid.New(),
		ProductName: "Comb",
		Price:       40,
	}
	service := models.Service{
		ID:           uuid.New(),
		Name:         "Haircut",
		RegularPrice: 500,
	}
	catalog := NewCatalog([]models.Service{service}, []models.Product{withVariants, plain})
	return catalog, withVariants, variant, service
}

func TestUnitPrice(t *testing.T) {
	_, product, variant, _ := testCatalog()

	if got := UnitPrice(product, &variant.ID); got != 250 {
		t.Errorf("expected variant price 250, got %f", got)
	}

	// Variation product without a selected variant never falls back to a base price
	if got := UnitPrice(product, nil); got != 0 {
		t.Errorf("expected 0 for missing variant selection, got %f", got)
	}

	unknown := uuid.New()
	if got := UnitPrice(product, &unknown); got != 0 {
		t.Errorf("expected 0 for unresolvable variant, got %f", got)
	}

	plain := models.Product{Price: 40}
	if got := UnitPrice(plain, nil); got != 40 {
		t.Errorf("expected base price 40, got %f", got)
	}
}

func TestLineTotal(t *testing.T) {
	catalog, product, variant, _ := testCatalog()

	item := ProductLineItem{ProductID: product.ID, VariantID: &variant.ID, Quantity: 3}
	if got := LineTotal(item, catalog); got != 750 {
		t.Errorf("expected 750, got %f", got)
	}

	// No variant selected: 0 regardless of quantity
	for _, qty := range []int{1, 5, 100} {
		item := ProductLineItem{ProductID: product.ID, Quantity: qty}
		if got := LineTotal(item, catalog); got != 0 {
			t.Errorf("quantity %d: expected 0 without a variant, got %f", qty, got)
		}
	}

	// Negative quantity counts as zero
	item = ProductLineItem{ProductID: product.ID, VariantID: &variant.ID, Quantity: -2}
	if got := LineTotal(item, catalog); got != 0 {
		t.Errorf("expected 0 for negative quantity, got %f", got)
	}

	// Unresolvable product contributes 0, not an error
	item = ProductLineItem{ProductID: uuid.New(), Quantity: 2}
	if got := LineTotal(item, catalog); got != 0 {
		t.Errorf("expected 0 for unknown product, got %f", got)
	}
}

func TestCartSubtotal(t *testing.T) {
	catalog, product, variant, _ := testCatalog()

	selections := []ServiceSelection{
		{Price: 500},
		{Price: 300},
	}
	items := []ProductLineItem{
		{ProductID: product.ID, VariantID: &variant.ID, Quantity: 2}, // 500
	}

	if got := CartSubtotal(selections, items, catalog); got != 1300 {
		t.Fatalf("expected subtotal 1300, got %f", got)
	}

	// Order independence
	reversed := []ServiceSelection{selections[1], selections[0]}
	if got := CartSubtotal(reversed, items, catalog); got != 1300 {
		t.Errorf("expected subtotal unchanged after reorder, got %f", got)
	}

	if got := CartSubtotal(nil, nil, catalog); got != 0 {
		t.Errorf("expected 0 for an empty cart, got %f", got)
	}
}

func TestSelectService(t *testing.T) {
	catalog, _, _, service := testCatalog()
	staffID := uuid.New()

	sel := SelectService(ServiceSelection{StaffID: staffID}, service.ID, catalog)
	if sel.Price != 500 {
		t.Errorf("expected snapshot of 500, got %f", sel.Price)
	}
	if sel.StaffID != staffID {
		t.Error("expected staff assignment preserved")
	}

	// Switching to an unknown service overwrites the snapshot, no history kept
	sel = SelectService(sel, uuid.New(), catalog)
	if sel.Price != 0 {
		t.Errorf("expected snapshot overwritten to 0, got %f", sel.Price)
	}
}

func TestRefResolve(t *testing.T) {
	service := models.Service{ID: uuid.New(), Name: "Facial", RegularPrice: 900}

	// Populated reference wins without a lookup
	ref := Ref[models.Service]{ID: service.ID, Value: &service}
	got, ok := ref.Resolve(nil)
	if !ok || got.Name != "Facial" {
		t.Errorf("expected populated reference resolved, got %+v (ok=%v)", got, ok)
	}

	// Bare id goes through the lookup
	ref = Ref[models.Service]{ID: service.ID}
	got, ok = ref.Resolve(func(id uuid.UUID) (*models.Service, bool) {
		if id == service.ID {
			return &service, true
		}
		return nil, false
	})
	if !ok || got.RegularPrice != 900 {
		t.Errorf("expected lookup resolution, got %+v (ok=%v)", got, ok)
	}

	// Bare id with no lookup cannot resolve
	if _, ok := (Ref[models.Service]{ID: uuid.New()}).Resolve(nil); ok {
		t.Error("expected unresolved reference")
	}
}
