package service

import (
	"fmt"

	"realestate_api_backend/internal/analysis/transport"
)

// CalculateInvestmentMetrics derives the profitability figures for a
// validated document. Cost groups contribute only when present; an absent
// group contributes exactly zero. The caller may assume purchase_price and
// arv are set (the validator guarantees it); a zero purchase price or total
// investment yields a non-finite ROI rather than an error.
func CalculateInvestmentMetrics(doc *transport.RealEstateDocument) transport.InvestmentMetrics {
	purchasePrice := deref(doc.Property.PurchasePrice)
	arv := deref(doc.Property.ARV)

	potentialProfit := arv - purchasePrice
	roi := potentialProfit / purchasePrice * 100

	totalInvestment := purchasePrice
	var rehabCosts, holdingCosts float64

	if fin := doc.Financials; fin != nil {
		if fin.PurchaseCosts != nil && fin.PurchaseCosts.ClosingCosts != nil {
			totalInvestment += *fin.PurchaseCosts.ClosingCosts
		}

		if fin.RehabilitationCosts != nil && fin.RehabilitationCosts.TotalRehabBudget != nil {
			rehabCosts = *fin.RehabilitationCosts.TotalRehabBudget
			totalInvestment += rehabCosts
		}

		if hc := fin.HoldingCosts; hc != nil {
			monthly := deref(hc.MonthlyInsurance) + deref(hc.MonthlyTaxes) + deref(hc.MonthlyUtilities) + deref(hc.MonthlyOther)
			holdingCosts = monthly * deref(hc.EstimatedHoldingPeriodMonths)
			totalInvestment += holdingCosts
		}
	}

	adjustedProfit := arv - totalInvestment
	adjustedROI := adjustedProfit / totalInvestment * 100

	// The 70% rule deliberately uses the financials rehab budget, not the
	// property's renovation_budget field.
	seventyRuleMaxOffer := 0.7*arv - rehabCosts

	return transport.InvestmentMetrics{
		PurchasePrice:       purchasePrice,
		ARV:                 arv,
		PotentialProfit:     potentialProfit,
		ROI:                 formatPercent(roi),
		TotalInvestment:     totalInvestment,
		RehabCosts:          rehabCosts,
		HoldingCosts:        holdingCosts,
		AdjustedProfit:      adjustedProfit,
		AdjustedROI:         formatPercent(adjustedROI),
		SeventyRuleMaxOffer: seventyRuleMaxOffer,
	}
}

// formatPercent renders a percentage with exactly two decimal places.
// Non-finite inputs format as "+Inf"/"NaN"; clients display the figure
// verbatim.
func formatPercent(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
