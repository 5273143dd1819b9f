package services

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"salonbook-backend/models"
)

func TestDiscountRuleAmountOf(t *testing.T) {
	tests := []struct {
		name string
		rule DiscountRule
		base float64
		want float64
	}{
		{"percentage", DiscountRule{Kind: DiscountPercentage, Value: 10}, 1000, 100},
		{"flat", DiscountRule{Kind: DiscountFlat, Value: 75}, 1000, 75},
		{"flat ignores base", DiscountRule{Kind: DiscountFlat, Value: 75}, 10, 75},
		{"unknown kind", DiscountRule{Kind: "bogus", Value: 50}, 1000, 0},
	}
	for _, tt := range tests {
		if got := tt.rule.AmountOf(tt.base); got != tt.want {
			t.Errorf("%s: expected %f, got %f", tt.name, tt.want, got)
		}
	}
}

func TestComputeSettlement_Scenario(t *testing.T) {
	// base 1000, 18% tax, 50 tips, flat 100 coupon, 10% membership
	in := SettlementInput{
		BaseAmount:         1000,
		Tax:                &TaxRule{Type: TaxPercent, Value: 18},
		Tips:               50,
		Coupon:             &DiscountRule{Kind: DiscountFlat, Value: 100},
		MembershipDiscount: &DiscountRule{Kind: DiscountPercentage, Value: 10},
	}

	s := ComputeSettlement(in)
	if s.TaxAmount != 180 {
		t.Errorf("expected tax 180, got %f", s.TaxAmount)
	}
	if s.CouponDiscount != 100 {
		t.Errorf("expected coupon discount 100, got %f", s.CouponDiscount)
	}
	if s.MembershipDiscount != 100 {
		t.Errorf("expected membership discount 100, got %f", s.MembershipDiscount)
	}
	if s.ManualDiscount != 0 {
		t.Errorf("expected no manual discount, got %f", s.ManualDiscount)
	}
	if s.GrandTotal != 1030 {
		t.Errorf("expected grand total 1030, got %f", s.GrandTotal)
	}
}

func TestComputeSettlement_DiscountsStackOffOriginalBase(t *testing.T) {
	// Two 10% discounts must each take 100 off a 1000 base, never 10% of
	// an already discounted running total
	in := SettlementInput{
		BaseAmount:         1000,
		Coupon:             &DiscountRule{Kind: DiscountPercentage, Value: 10},
		MembershipDiscount: &DiscountRule{Kind: DiscountPercentage, Value: 10},
	}
	s := ComputeSettlement(in)
	if s.CouponDiscount != 100 || s.MembershipDiscount != 100 {
		t.Errorf("expected both discounts resolved against the base, got %f and %f",
			s.CouponDiscount, s.MembershipDiscount)
	}
	if s.GrandTotal != 800 {
		t.Errorf("expected 800, got %f", s.GrandTotal)
	}
}

func TestComputeGrandTotal_ClampedAtZero(t *testing.T) {
	in := SettlementInput{
		BaseAmount:     100,
		Tips:           10,
		Coupon:         &DiscountRule{Kind: DiscountFlat, Value: 500},
		ManualDiscount: &DiscountRule{Kind: DiscountFlat, Value: 500},
	}
	if got := ComputeGrandTotal(in); got != 0 {
		t.Errorf("expected 0 when discounts exceed the payable amount, got %f", got)
	}
}

func TestComputeGrandTotal_Monotonicity(t *testing.T) {
	base := SettlementInput{
		BaseAmount: 1000,
		Tax:        &TaxRule{Type: TaxPercent, Value: 18},
	}

	// Non-decreasing in tips
	prev := -1.0
	for _, tips := range []float64{0, 10, 50, 200} {
		in := base
		in.Tips = tips
		got := ComputeGrandTotal(in)
		if got < prev {
			t.Errorf("tips %f: total %f decreased from %f", tips, got, prev)
		}
		prev = got
	}

	// Non-increasing in each discount value
	prev = ComputeGrandTotal(base) + 1
	for _, value := range []float64{0, 100, 500, 5000} {
		in := base
		in.Coupon = &DiscountRule{Kind: DiscountFlat, Value: value}
		got := ComputeGrandTotal(in)
		if got > prev {
			t.Errorf("coupon %f: total %f increased from %f", value, got, prev)
		}
		if got < 0 {
			t.Errorf("coupon %f: total %f below zero", value, got)
		}
		prev = got
	}
}

func TestComputeSettlement_FlatTax(t *testing.T) {
	in := SettlementInput{
		BaseAmount: 1000,
		Tax:        &TaxRule{Type: TaxFlat, Value: 60},
	}
	if got := ComputeGrandTotal(in); got != 1060 {
		t.Errorf("expected 1060 with a flat tax, got %f", got)
	}
}

func activeCoupon(code string) models.Coupon {
	return models.Coupon{
		ID:             uuid.New(),
		CouponCode:     code,
		Status:         "active",
		StartDate:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		DiscountType:   DiscountFlat,
		DiscountAmount: 100,
	}
}

func TestLookupCoupon(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	coupons := []models.Coupon{activeCoupon("SUMMER20")}

	// Case-insensitive match
	coupon, rule := LookupCoupon("summer20", now, coupons)
	if coupon == nil || rule == nil {
		t.Fatal("expected a case-insensitive match")
	}
	if rule.Kind != DiscountFlat || rule.Value != 100 {
		t.Errorf("expected flat 100 rule, got %+v", rule)
	}

	// Unmatched code
	if coupon, _ := LookupCoupon("NOPE", now, coupons); coupon != nil {
		t.Error("expected no match for an unknown code")
	}

	// Inactive status
	inactive := activeCoupon("OLD10")
	inactive.Status = "inactive"
	if coupon, _ := LookupCoupon("OLD10", now, []models.Coupon{inactive}); coupon != nil {
		t.Error("expected no match for an inactive coupon")
	}

	// Outside the window
	if coupon, _ := LookupCoupon("SUMMER20", time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), coupons); coupon != nil {
		t.Error("expected no match after the end date")
	}

	// Window bounds are inclusive
	edge := coupons[0]
	if coupon, _ := LookupCoupon("SUMMER20", edge.StartDate, coupons); coupon == nil {
		t.Error("expected a match exactly on the start date")
	}
	if coupon, _ := LookupCoupon("SUMMER20", edge.EndDate, coupons); coupon == nil {
		t.Error("expected a match exactly on the end date")
	}
}

func TestMembershipRule(t *testing.T) {
	customer := models.Customer{
		MembershipActive:       true,
		MembershipDiscountType: DiscountPercentage,
		MembershipDiscount:     10,
	}
	rule := MembershipRule(customer)
	if rule == nil || rule.Kind != DiscountPercentage || rule.Value != 10 {
		t.Errorf("expected percentage 10 rule, got %+v", rule)
	}

	customer.MembershipActive = false
	if MembershipRule(customer) != nil {
		t.Error("expected no rule without an active membership")
	}
}
