// services/pricing.go
package services

import (
	"github.com/google/uuid"

	"salonbook-backend/models"
)

// Catalog is a read-only snapshot of reference data that pricing resolves
// against. It may be partially loaded; lookups that miss contribute a zero
// price instead of failing, so older appointments stay viewable after
// catalog changes.
type Catalog struct {
	Services map[uuid.UUID]models.Service
	Products map[uuid.UUID]models.Product
}

func NewCatalog(services []models.Service, products []models.Product) Catalog {
	c := Catalog{
		Services: make(map[uuid.UUID]models.Service, len(services)),
		Products: make(map[uuid.UUID]models.Product, len(products)),
	}
	for _, s := range services {
		c.Services[s.ID] = s
	}
	for _, p := range products {
		c.Products[p.ID] = p
	}
	return c
}

// ServiceSelection is one booked service with the staff performing it.
// Price is a snapshot of the service's regular price taken at selection
// time, not live-bound to the catalog.
type ServiceSelection struct {
	ServiceID uuid.UUID `json:"service_id"`
	StaffID   uuid.UUID `json:"staff_id"`
	Price     float64   `json:"price"`
}

// ProductLineItem is one product line in the cart. Price is the extended
// line total, recomputed on every change to product, variant or quantity.
type ProductLineItem struct {
	ProductID uuid.UUID  `json:"product_id"`
	VariantID *uuid.UUID `json:"variant_id,omitempty"`
	Quantity  int        `json:"quantity"`
	Price     float64    `json:"price"`
}

// SelectService overwrites the selection with the newly chosen service and
// snapshots its current regular price. Switching services replaces the
// snapshot outright; there is no proration or history.
func SelectService(sel ServiceSelection, serviceID uuid.UUID, catalog Catalog) ServiceSelection {
	sel.ServiceID = serviceID
	sel.Price = 0
	if service, ok := catalog.Services[serviceID]; ok {
		sel.Price = service.RegularPrice
	}
	return sel
}

// UnitPrice resolves the unit price of a product. A variation product
// prices by its selected variant only: no variant selected, or a variant
// id that does not resolve, prices at 0 rather than falling back to the
// base price. A plain product prices by its own price.
func UnitPrice(product models.Product, variantID *uuid.UUID) float64 {
	if product.HasVariations {
		if variantID == nil {
			return 0
		}
		for _, v := range product.Variants {
			if v.ID == *variantID {
				return v.Price
			}
		}
		return 0
	}
	return product.Price
}

// LineTotal computes unit price x quantity for one product line. Negative
// quantities count as zero; an unresolvable product contributes 0.
func LineTotal(item ProductLineItem, catalog Catalog) float64 {
	product, ok := catalog.Products[item.ProductID]
	if !ok {
		return 0
	}
	qty := item.Quantity
	if qty < 0 {
		qty = 0
	}
	return UnitPrice(product, item.VariantID) * float64(qty)
}

// CartSubtotal sums the service price snapshots and the product line
// totals. Order of either list does not affect the result.
func CartSubtotal(selections []ServiceSelection, items []ProductLineItem, catalog Catalog) float64 {
	var subtotal float64
	for _, sel := range selections {
		subtotal += sel.Price
	}
	for _, item := range items {
		subtotal += LineTotal(item, catalog)
	}
	return subtotal
}
