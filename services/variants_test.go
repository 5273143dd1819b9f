package services

import (
	"testing"

	"salonbook-backend/models"
)

func TestCombineVariants_TwoAxes(t *testing.T) {
	axes := []AttributeAxis{
		{Type: "Color", Values: []string{"Red", "Blue"}},
		{Type: "Size", Values: []string{"S", "M"}},
	}

	combos := CombineVariants(axes, nil)
	if len(combos) != 4 {
		t.Fatalf("expected 4 combinations, got %d", len(combos))
	}

	// Axis-declaration order inside each combination, product order overall
	want := []models.VariantPairList{
		{{VariationType: "Color", VariationValue: "Red"}, {VariationType: "Size", VariationValue: "S"}},
		{{VariationType: "Color", VariationValue: "Red"}, {VariationType: "Size", VariationValue: "M"}},
		{{VariationType: "Color", VariationValue: "Blue"}, {VariationType: "Size", VariationValue: "S"}},
		{{VariationType: "Color", VariationValue: "Blue"}, {VariationType: "Size", VariationValue: "M"}},
	}
	for i, combo := range combos {
		if len(combo.Combination) != 2 {
			t.Fatalf("combination %d: expected 2 pairs, got %d", i, len(combo.Combination))
		}
		for j, pair := range combo.Combination {
			if pair != want[i][j] {
				t.Errorf("combination %d pair %d: expected %+v, got %+v", i, j, want[i][j], pair)
			}
		}
		if combo.Price != 0 || combo.Stock != 0 || combo.SKU != "" || combo.Code != "" {
			t.Errorf("combination %d: expected zero defaults, got %+v", i, combo)
		}
	}
}

func TestCombineVariants_SizeIsProductOfAxes(t *testing.T) {
	axes := []AttributeAxis{
		{Type: "Color", Values: []string{"Red", "Blue", "Green"}},
		{Type: "Size", Values: []string{"S", "M"}},
		{Type: "Scent", Values: []string{"Rose", "Citrus", "Mint", "Plain"}},
	}
	combos := CombineVariants(axes, nil)
	if len(combos) != 3*2*4 {
		t.Errorf("expected %d combinations, got %d", 3*2*4, len(combos))
	}
}

func TestCombineVariants_SingleAxis(t *testing.T) {
	combos := CombineVariants([]AttributeAxis{{Type: "Size", Values: []string{"S", "M", "L"}}}, nil)
	if len(combos) != 3 {
		t.Fatalf("expected 3 combinations, got %d", len(combos))
	}
	for _, combo := range combos {
		if len(combo.Combination) != 1 {
			t.Errorf("expected single-pair combination, got %d pairs", len(combo.Combination))
		}
	}
}

func TestCombineVariants_IncompleteAxisClearsAll(t *testing.T) {
	axes := []AttributeAxis{
		{Type: "Color", Values: []string{"Red"}},
		{Type: "Size", Values: nil}, // axis selected, no values chosen yet
	}
	if combos := CombineVariants(axes, nil); combos != nil {
		t.Errorf("expected no combinations for an incomplete axis, got %d", len(combos))
	}
	if combos := CombineVariants(nil, nil); combos != nil {
		t.Errorf("expected no combinations for zero axes, got %d", len(combos))
	}
}

func TestCombineVariants_MergePreservesEntries(t *testing.T) {
	axes := []AttributeAxis{
		{Type: "Color", Values: []string{"Red", "Blue"}},
		{Type: "Size", Values: []string{"S", "M"}},
	}
	previous := []models.ProductVariant{
		{
			Combination: models.VariantPairList{
				{VariationType: "Color", VariationValue: "Red"},
				{VariationType: "Size", VariationValue: "M"},
			},
			Price: 199.0,
			Stock: 12,
			SKU:   "RED-M",
			Code:  "RM01",
		},
	}

	combos := CombineVariants(axes, previous)
	var found bool
	for _, combo := range combos {
		if combo.SKU == "RED-M" {
			found = true
			if combo.Price != 199.0 || combo.Stock != 12 || combo.Code != "RM01" {
				t.Errorf("expected prior entry carried over, got %+v", combo)
			}
		}
	}
	if !found {
		t.Fatal("expected the Red/M entry to survive regeneration")
	}
}

func TestCombineVariants_MergeSurvivesAxisReorder(t *testing.T) {
	previous := []models.ProductVariant{
		{
			Combination: models.VariantPairList{
				{VariationType: "Color", VariationValue: "Blue"},
				{VariationType: "Size", VariationValue: "S"},
			},
			Price: 149.0,
			Stock: 5,
			SKU:   "BLU-S",
		},
	}

	// Same axes, declared in the opposite order
	reordered := []AttributeAxis{
		{Type: "Size", Values: []string{"S", "M"}},
		{Type: "Color", Values: []string{"Blue", "Red"}},
	}

	combos := CombineVariants(reordered, previous)
	var match *models.ProductVariant
	for i := range combos {
		if combos[i].SKU == "BLU-S" {
			match = &combos[i]
		}
	}
	if match == nil {
		t.Fatal("expected the Blue/S entry to match after axis reorder")
	}
	if match.Price != 149.0 || match.Stock != 5 {
		t.Errorf("expected price/stock preserved, got %+v", match)
	}
	// Combination follows the new axis order
	if match.Combination[0].VariationType != "Size" || match.Combination[1].VariationType != "Color" {
		t.Errorf("expected combination in new axis order, got %+v", match.Combination)
	}
}

func TestCombineVariants_AxisRemovalRemerges(t *testing.T) {
	previous := []models.ProductVariant{
		{
			Combination: models.VariantPairList{{VariationType: "Size", VariationValue: "M"}},
			Price:       99.0,
			SKU:         "M-ONLY",
		},
		{
			Combination: models.VariantPairList{
				{VariationType: "Color", VariationValue: "Red"},
				{VariationType: "Size", VariationValue: "M"},
			},
			Price: 199.0,
		},
	}

	// Color axis removed; only the single-pair entry still matches
	combos := CombineVariants([]AttributeAxis{{Type: "Size", Values: []string{"S", "M"}}}, previous)
	if len(combos) != 2 {
		t.Fatalf("expected 2 combinations, got %d", len(combos))
	}
	for _, combo := range combos {
		switch combo.Combination[0].VariationValue {
		case "M":
			if combo.Price != 99.0 || combo.SKU != "M-ONLY" {
				t.Errorf("expected the Size-only entry preserved, got %+v", combo)
			}
		case "S":
			if combo.Price != 0 || combo.SKU != "" {
				t.Errorf("expected a fresh entry for S, got %+v", combo)
			}
		}
	}
}
