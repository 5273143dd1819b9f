// services/settlement.go
package services

import (
	"strings"
	"time"

	"salonbook-backend/models"
)

const (
	DiscountPercentage = "percentage"
	DiscountFlat       = "flat"

	TaxPercent = "percent"
	TaxFlat    = "flat"
)

// DiscountRule is a percent-or-flat reduction. Coupons, memberships and
// manual discounts all evaluate through the same rule so rounding never
// diverges between sources.
type DiscountRule struct {
	Kind  string  `json:"kind"`
	Value float64 `json:"value"`
}

// AmountOf evaluates the rule against a base amount. Unknown kinds
// evaluate to 0.
func (r DiscountRule) AmountOf(base float64) float64 {
	switch r.Kind {
	case DiscountPercentage:
		return base * r.Value / 100
	case DiscountFlat:
		return r.Value
	}
	return 0
}

type TaxRule struct {
	Type  string  `json:"type"` // percent, flat
	Value float64 `json:"value"`
}

type SettlementInput struct {
	BaseAmount         float64
	Tax                *TaxRule
	Tips               float64
	Coupon             *DiscountRule
	ManualDiscount     *DiscountRule
	MembershipDiscount *DiscountRule
}

// Settlement is the priced breakdown of an appointment
type Settlement struct {
	BaseAmount         float64 `json:"base_amount"`
	TaxAmount          float64 `json:"tax_amount"`
	Tips               float64 `json:"tips"`
	CouponDiscount     float64 `json:"coupon_discount"`
	ManualDiscount     float64 `json:"manual_discount"`
	MembershipDiscount float64 `json:"membership_discount"`
	GrandTotal         float64 `json:"grand_total"`
}

// ComputeSettlement stacks tax, tips and the three discounts in a fixed
// order. Every discount resolves against the original base amount, never a
// progressively discounted running total, and the grand total is clamped
// at zero when discounts exceed base + tax + tips.
func ComputeSettlement(in SettlementInput) Settlement {
	s := Settlement{BaseAmount: in.BaseAmount, Tips: in.Tips}

	if in.Tax != nil {
		if in.Tax.Type == TaxPercent {
			s.TaxAmount = in.BaseAmount * in.Tax.Value / 100
		} else {
			s.TaxAmount = in.Tax.Value
		}
	}
	if in.Coupon != nil {
		s.CouponDiscount = in.Coupon.AmountOf(in.BaseAmount)
	}
	if in.ManualDiscount != nil {
		s.ManualDiscount = in.ManualDiscount.AmountOf(in.BaseAmount)
	}
	if in.MembershipDiscount != nil {
		s.MembershipDiscount = in.MembershipDiscount.AmountOf(in.BaseAmount)
	}

	total := in.BaseAmount + s.TaxAmount + in.Tips -
		s.CouponDiscount - s.ManualDiscount - s.MembershipDiscount
	if total < 0 {
		total = 0
	}
	s.GrandTotal = total
	return s
}

// ComputeGrandTotal is the settlement total without the breakdown
func ComputeGrandTotal(in SettlementInput) float64 {
	return ComputeSettlement(in).GrandTotal
}

// LookupCoupon finds an active coupon by code, case-insensitively. A
// coupon applies only while its status is active and now falls within
// [StartDate, EndDate] inclusive; anything else yields no discount.
func LookupCoupon(code string, now time.Time, coupons []models.Coupon) (*models.Coupon, *DiscountRule) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}
	for i := range coupons {
		c := &coupons[i]
		if !strings.EqualFold(c.CouponCode, code) {
			continue
		}
		if c.Status != "active" {
			continue
		}
		if now.Before(c.StartDate) || now.After(c.EndDate) {
			continue
		}
		return c, &DiscountRule{Kind: c.DiscountType, Value: c.DiscountAmount}
	}
	return nil, nil
}

// MembershipRule returns the customer's standing discount rule, or nil
// when no active membership exists
func MembershipRule(customer models.Customer) *DiscountRule {
	if !customer.MembershipActive {
		return nil
	}
	return &DiscountRule{Kind: customer.MembershipDiscountType, Value: customer.MembershipDiscount}
}
