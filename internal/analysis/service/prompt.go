package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"realestate_api_backend/internal/analysis/transport"
	"realestate_api_backend/internal/places"
)

// BuildAnalysisPrompt assembles the text block sent to the generation model.
// Optional property fields appear as labeled lines only when present; the
// enrichment section is included only when the lookup succeeded (enrichment
// non-nil). Market-analysis sub-fields use the opposite policy: each one
// individually falls back to a literal "N/A".
func BuildAnalysisPrompt(doc *transport.RealEstateDocument, enrichment *places.Details) string {
	property := doc.Property

	var b strings.Builder
	b.WriteString("Please analyze this real estate investment opportunity:\n\n")
	fmt.Fprintf(&b, "Property: %s, %s, %s %s\n", property.Address.Street, property.Address.City, property.Address.State, property.Address.Zip)
	fmt.Fprintf(&b, "Purchase Price: $%s\n", formatNumber(deref(property.PurchasePrice)))
	fmt.Fprintf(&b, "After Repair Value: $%s\n", formatNumber(deref(property.ARV)))
	fmt.Fprintf(&b, "Status: %s\n", property.MarketStatus)

	if property.Bedrooms != nil {
		fmt.Fprintf(&b, "Bedrooms: %s\n", formatNumber(*property.Bedrooms))
	}
	if property.Bathrooms != nil {
		fmt.Fprintf(&b, "Bathrooms: %s\n", formatNumber(*property.Bathrooms))
	}
	if property.SquareFootage != nil {
		fmt.Fprintf(&b, "Square Footage: %s\n", formatNumber(*property.SquareFootage))
	}
	if property.YearBuilt != nil {
		fmt.Fprintf(&b, "Year Built: %s\n", formatNumber(*property.YearBuilt))
	}

	if enrichment != nil {
		if encoded, err := json.MarshalIndent(enrichment, "", "  "); err == nil {
			fmt.Fprintf(&b, "\nNeighborhood Information: %s\n", encoded)
		}
	}

	if ma := doc.MarketAnalysis; ma != nil {
		b.WriteString("\nMarket Analysis:\n")
		fmt.Fprintf(&b, "Average Days on Market: %s\n", numericOrNA(ma.AverageDaysOnMarket))
		fmt.Fprintf(&b, "Median Sale Price: %s\n", numericOrNA(ma.MedianSalePrice))
		fmt.Fprintf(&b, "Price per SqFt: %s\n", numericOrNA(ma.PricePerSqft))
		fmt.Fprintf(&b, "Year over Year Appreciation: %s\n", numericOrNA(ma.YearOverYearAppreciation))
		fmt.Fprintf(&b, "Rental Demand: %s\n", stringOrNA(ma.RentalDemand))
	}

	b.WriteString(`
Please provide:
1. An investment analysis of this property
2. Key risks and opportunities
3. Recommendations for negotiation strategy
4. Potential exit strategies
5. Suggestions for maximizing ROI
`)

	return b.String()
}

// formatNumber renders a figure in plain decimal notation, never scientific;
// prices above $1M must print as "1500000", not "1.5e+06".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func numericOrNA(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return formatNumber(*v)
}

func stringOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
