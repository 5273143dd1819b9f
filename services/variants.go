// services/variants.go
package services

import (
	"sort"
	"strings"

	"salonbook-backend/models"
)

// AttributeAxis is one independent axis of product variation together with
// the values chosen for it, e.g. "Color" with Red and Blue
type AttributeAxis struct {
	Type   string   `json:"type" binding:"required"`
	Values []string `json:"values"`
}

// CombineVariants expands the axes into the full Cartesian product of
// combinations, one value per axis, in axis-declaration order.
//
// Previously entered price/stock/sku/code survive regeneration: each new
// combination is matched against previous by the set of its (type, value)
// pairs, so reordering or removing and re-adding an axis does not lose data
// for combinations that still exist. Unmatched combinations start at zero.
//
// An axis with no chosen values makes the whole selection incomplete and
// clears the result entirely rather than generating a partial product.
func CombineVariants(axes []AttributeAxis, previous []models.ProductVariant) []models.ProductVariant {
	if len(axes) == 0 {
		return nil
	}
	for _, axis := range axes {
		if len(axis.Values) == 0 {
			return nil
		}
	}

	prior := make(map[string]models.ProductVariant, len(previous))
	for _, v := range previous {
		prior[combinationKey(v.Combination)] = v
	}

	combos := []models.VariantPairList{{}}
	for _, axis := range axes {
		next := make([]models.VariantPairList, 0, len(combos)*len(axis.Values))
		for _, combo := range combos {
			for _, value := range axis.Values {
				extended := make(models.VariantPairList, len(combo), len(combo)+1)
				copy(extended, combo)
				extended = append(extended, models.VariantPair{
					VariationType:  axis.Type,
					VariationValue: value,
				})
				next = append(next, extended)
			}
		}
		combos = next
	}

	out := make([]models.ProductVariant, 0, len(combos))
	for _, combo := range combos {
		if prev, ok := prior[combinationKey(combo)]; ok {
			prev.Combination = combo // keep the current axis order
			out = append(out, prev)
			continue
		}
		out = append(out, models.ProductVariant{Combination: combo})
	}
	return out
}

// combinationKey canonicalises a pair list by sorting its pairs, so two
// combinations compare equal regardless of axis order
func combinationKey(pairs models.VariantPairList) string {
	keys := make([]string, len(pairs))
	for i, p := range pairs {
		keys[i] = p.VariationType + "=" + p.VariationValue
	}
	sort.Strings(keys)
	return strings.Join(keys, "|")
}
