package service

import (
	"strings"
	"testing"

	"realestate_api_backend/internal/analysis/transport"
	"realestate_api_backend/internal/places"
)

func TestBuildAnalysisPrompt_RequiredLines(t *testing.T) {
	doc := baseDocument(100000, 150000)

	prompt := BuildAnalysisPrompt(doc, nil)

	for _, want := range []string{
		"Property: 123 Main St, Austin, TX 78701",
		"Purchase Price: $100000",
		"After Repair Value: $150000",
		"Status: lead",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("expected prompt to contain %q, got:\n%s", want, prompt)
		}
	}
}

func TestBuildAnalysisPrompt_MillionDollarFiguresStayDecimal(t *testing.T) {
	doc := baseDocument(1500000, 2450000)
	doc.MarketAnalysis = &transport.MarketAnalysis{
		MedianSalePrice: fp(1000000),
	}

	prompt := BuildAnalysisPrompt(doc, nil)

	if !strings.Contains(prompt, "Purchase Price: $1500000\n") {
		t.Fatalf("expected plain decimal purchase price, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "After Repair Value: $2450000\n") {
		t.Fatalf("expected plain decimal arv, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Median Sale Price: 1000000\n") {
		t.Fatalf("expected plain decimal median sale price, got:\n%s", prompt)
	}
	if strings.Contains(prompt, "e+") {
		t.Fatalf("expected no scientific notation anywhere, got:\n%s", prompt)
	}
}

func TestBuildAnalysisPrompt_FractionalFiguresKeepPrecision(t *testing.T) {
	doc := baseDocument(99999.5, 150000)
	doc.Property.Bathrooms = fp(2.5)

	prompt := BuildAnalysisPrompt(doc, nil)

	if !strings.Contains(prompt, "Purchase Price: $99999.5\n") {
		t.Fatalf("expected fractional price preserved, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Bathrooms: 2.5\n") {
		t.Fatalf("expected fractional bathrooms preserved, got:\n%s", prompt)
	}
}

func TestBuildAnalysisPrompt_OptionalFieldsOmittedWhenAbsent(t *testing.T) {
	doc := baseDocument(100000, 150000)

	prompt := BuildAnalysisPrompt(doc, nil)

	for _, label := range []string{"Bedrooms:", "Bathrooms:", "Square Footage:", "Year Built:"} {
		if strings.Contains(prompt, label) {
			t.Fatalf("expected prompt to omit %q when the field is absent", label)
		}
	}
}

func TestBuildAnalysisPrompt_OptionalFieldsIncludedWhenPresent(t *testing.T) {
	doc := baseDocument(100000, 150000)
	doc.Property.Bedrooms = fp(3)
	doc.Property.SquareFootage = fp(1850)

	prompt := BuildAnalysisPrompt(doc, nil)

	if !strings.Contains(prompt, "Bedrooms: 3\n") {
		t.Fatalf("expected bedrooms line, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Square Footage: 1850\n") {
		t.Fatalf("expected square footage line, got:\n%s", prompt)
	}
	if strings.Contains(prompt, "Bathrooms:") {
		t.Fatalf("expected bathrooms line to stay omitted")
	}
}

func TestBuildAnalysisPrompt_EnrichmentSectionOmittedWhenNil(t *testing.T) {
	doc := baseDocument(100000, 150000)

	prompt := BuildAnalysisPrompt(doc, nil)

	if strings.Contains(prompt, "Neighborhood Information:") {
		t.Fatalf("expected no neighborhood section without enrichment data")
	}
}

func TestBuildAnalysisPrompt_EnrichmentSectionIncluded(t *testing.T) {
	doc := baseDocument(100000, 150000)
	details := &places.Details{
		Address: "123 Main St, Austin, TX 78701, USA",
		PlaceID: "place-abc",
		Neighborhoods: []places.Neighborhood{
			{Name: "Downtown", Vicinity: "Austin"},
		},
	}

	prompt := BuildAnalysisPrompt(doc, details)

	if !strings.Contains(prompt, "Neighborhood Information:") {
		t.Fatalf("expected neighborhood section, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Downtown") {
		t.Fatalf("expected neighborhood name in prompt, got:\n%s", prompt)
	}
}

func TestBuildAnalysisPrompt_MarketAnalysisDefaults(t *testing.T) {
	doc := baseDocument(100000, 150000)
	doc.MarketAnalysis = &transport.MarketAnalysis{
		MedianSalePrice: fp(250000),
	}

	prompt := BuildAnalysisPrompt(doc, nil)

	if !strings.Contains(prompt, "Median Sale Price: 250000\n") {
		t.Fatalf("expected median sale price line, got:\n%s", prompt)
	}
	for _, want := range []string{
		"Average Days on Market: N/A",
		"Price per SqFt: N/A",
		"Year over Year Appreciation: N/A",
		"Rental Demand: N/A",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("expected prompt to contain %q, got:\n%s", want, prompt)
		}
	}
}

func TestBuildAnalysisPrompt_MarketAnalysisBlockOmittedWhenAbsent(t *testing.T) {
	doc := baseDocument(100000, 150000)

	prompt := BuildAnalysisPrompt(doc, nil)

	if strings.Contains(prompt, "Market Analysis:") {
		t.Fatalf("expected no market analysis block without market data")
	}
}

func TestBuildAnalysisPrompt_Deliverables(t *testing.T) {
	doc := baseDocument(100000, 150000)

	prompt := BuildAnalysisPrompt(doc, nil)

	for _, want := range []string{
		"1. An investment analysis of this property",
		"2. Key risks and opportunities",
		"3. Recommendations for negotiation strategy",
		"4. Potential exit strategies",
		"5. Suggestions for maximizing ROI",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("expected prompt to contain %q", want)
		}
	}
}
