package service

import (
	"testing"

	"realestate_api_backend/internal/analysis/transport"
)

func fp(v float64) *float64 { return &v }

func baseDocument(purchasePrice, arv float64) *transport.RealEstateDocument {
	return &transport.RealEstateDocument{
		Property: &transport.PropertyRecord{
			ID: "prop-1",
			Address: &transport.Address{
				Street: "123 Main St",
				City:   "Austin",
				State:  "TX",
				Zip:    "78701",
			},
			PurchasePrice: fp(purchasePrice),
			ARV:           fp(arv),
			MarketStatus:  "lead",
		},
		Buyer: &transport.BuyerRecord{
			ID:    "buyer-1",
			Name:  "Jane Investor",
			Email: "jane@example.com",
		},
		Lead: &transport.LeadRecord{
			Source:      "website",
			DateCreated: "2024-03-01T10:00:00Z",
		},
		Contractor: &transport.ContractorRecord{
			ID:   "contractor-1",
			Name: "Acme Renovations",
		},
	}
}

func TestCalculateInvestmentMetrics_NoFinancials(t *testing.T) {
	doc := baseDocument(100000, 150000)

	m := CalculateInvestmentMetrics(doc)

	if m.PotentialProfit != 50000 {
		t.Fatalf("expected potential profit 50000, got %g", m.PotentialProfit)
	}
	if m.ROI != "50.00" {
		t.Fatalf("expected roi %q, got %q", "50.00", m.ROI)
	}
	if m.TotalInvestment != 100000 {
		t.Fatalf("expected total investment 100000, got %g", m.TotalInvestment)
	}
	if m.AdjustedProfit != 50000 {
		t.Fatalf("expected adjusted profit 50000, got %g", m.AdjustedProfit)
	}
	if m.AdjustedROI != "50.00" {
		t.Fatalf("expected adjusted roi %q, got %q", "50.00", m.AdjustedROI)
	}
	if m.SeventyRuleMaxOffer != 105000 {
		t.Fatalf("expected seventy rule max offer 105000, got %g", m.SeventyRuleMaxOffer)
	}
	if m.RehabCosts != 0 || m.HoldingCosts != 0 {
		t.Fatalf("expected zero rehab/holding costs, got %g/%g", m.RehabCosts, m.HoldingCosts)
	}
}

func TestCalculateInvestmentMetrics_WithRehabAndClosing(t *testing.T) {
	doc := baseDocument(100000, 150000)
	doc.Financials = &transport.FinancialsRecord{
		PurchaseCosts: &transport.PurchaseCosts{
			PurchasePrice: fp(100000),
			ClosingCosts:  fp(3000),
		},
		RehabilitationCosts: &transport.RehabilitationCosts{
			TotalRehabBudget: fp(20000),
		},
	}

	m := CalculateInvestmentMetrics(doc)

	if m.TotalInvestment != 123000 {
		t.Fatalf("expected total investment 123000, got %g", m.TotalInvestment)
	}
	if m.RehabCosts != 20000 {
		t.Fatalf("expected rehab costs 20000, got %g", m.RehabCosts)
	}
	if m.AdjustedProfit != 27000 {
		t.Fatalf("expected adjusted profit 27000, got %g", m.AdjustedProfit)
	}
	if m.AdjustedROI != "21.95" {
		t.Fatalf("expected adjusted roi %q, got %q", "21.95", m.AdjustedROI)
	}
	if m.SeventyRuleMaxOffer != 85000 {
		t.Fatalf("expected seventy rule max offer 85000, got %g", m.SeventyRuleMaxOffer)
	}
	// Unadjusted figures ignore the cost groups entirely.
	if m.PotentialProfit != 50000 || m.ROI != "50.00" {
		t.Fatalf("expected unadjusted 50000/50.00, got %g/%q", m.PotentialProfit, m.ROI)
	}
}

func TestCalculateInvestmentMetrics_HoldingCosts(t *testing.T) {
	doc := baseDocument(100000, 150000)
	doc.Financials = &transport.FinancialsRecord{
		HoldingCosts: &transport.HoldingCosts{
			MonthlyTaxes:                 fp(200),
			EstimatedHoldingPeriodMonths: fp(6),
		},
	}

	m := CalculateInvestmentMetrics(doc)

	if m.HoldingCosts != 1200 {
		t.Fatalf("expected holding costs 1200, got %g", m.HoldingCosts)
	}
	if m.TotalInvestment != 101200 {
		t.Fatalf("expected total investment 101200, got %g", m.TotalInvestment)
	}
	if m.AdjustedProfit != 48800 {
		t.Fatalf("expected adjusted profit 48800, got %g", m.AdjustedProfit)
	}
}

func TestCalculateInvestmentMetrics_HoldingPeriodWithoutMonthlies(t *testing.T) {
	doc := baseDocument(100000, 150000)
	doc.Financials = &transport.FinancialsRecord{
		HoldingCosts: &transport.HoldingCosts{
			EstimatedHoldingPeriodMonths: fp(12),
		},
	}

	m := CalculateInvestmentMetrics(doc)

	if m.HoldingCosts != 0 {
		t.Fatalf("expected zero holding costs, got %g", m.HoldingCosts)
	}
	if m.TotalInvestment != 100000 {
		t.Fatalf("expected total investment 100000, got %g", m.TotalInvestment)
	}
}

func TestCalculateInvestmentMetrics_RenovationBudgetIgnoredBySeventyRule(t *testing.T) {
	doc := baseDocument(100000, 200000)
	doc.Property.RenovationBudget = fp(50000)

	m := CalculateInvestmentMetrics(doc)

	// The rule reads financials.rehabilitation_costs, not the property field.
	if m.SeventyRuleMaxOffer != 140000 {
		t.Fatalf("expected seventy rule max offer 140000, got %g", m.SeventyRuleMaxOffer)
	}
}

func TestCalculateInvestmentMetrics_ZeroPurchasePrice(t *testing.T) {
	doc := baseDocument(0, 150000)

	m := CalculateInvestmentMetrics(doc)

	if m.ROI != "+Inf" {
		t.Fatalf("expected roi %q, got %q", "+Inf", m.ROI)
	}
	// With no financials, total_investment is also zero, so the adjusted
	// figure divides by zero the same way.
	if m.AdjustedROI != "+Inf" {
		t.Fatalf("expected adjusted roi %q, got %q", "+Inf", m.AdjustedROI)
	}
	if m.PotentialProfit != 150000 {
		t.Fatalf("expected potential profit 150000, got %g", m.PotentialProfit)
	}
}

func TestCalculateInvestmentMetrics_ZeroPurchasePriceAndARV(t *testing.T) {
	doc := baseDocument(0, 0)

	m := CalculateInvestmentMetrics(doc)

	// 0/0 renders as NaN and ships verbatim.
	if m.ROI != "NaN" {
		t.Fatalf("expected roi %q, got %q", "NaN", m.ROI)
	}
	if m.AdjustedROI != "NaN" {
		t.Fatalf("expected adjusted roi %q, got %q", "NaN", m.AdjustedROI)
	}
	if m.PotentialProfit != 0 || m.SeventyRuleMaxOffer != 0 {
		t.Fatalf("expected zero profit and offer, got %g/%g", m.PotentialProfit, m.SeventyRuleMaxOffer)
	}
}

func TestCalculateInvestmentMetrics_NegativeProfit(t *testing.T) {
	doc := baseDocument(200000, 150000)

	m := CalculateInvestmentMetrics(doc)

	if m.PotentialProfit != -50000 {
		t.Fatalf("expected potential profit -50000, got %g", m.PotentialProfit)
	}
	if m.ROI != "-25.00" {
		t.Fatalf("expected roi %q, got %q", "-25.00", m.ROI)
	}
}
