// Package transport defines the wire-level request and response types for the
// property analysis module. The validate tags on RealEstateDocument are the
// schema: a declarative description consumed by the shared validator, not
// hand-written field checks.
package transport

import (
	"realestate_api_backend/platform/validator"
)

// RealEstateDocument is the full submission body for property analysis.
// The four top-level groups are all mandatory; financials and market_analysis
// are optional context.
type RealEstateDocument struct {
	Property       *PropertyRecord   `json:"property" validate:"required"`
	Buyer          *BuyerRecord      `json:"buyer" validate:"required"`
	Lead           *LeadRecord       `json:"lead" validate:"required"`
	Contractor     *ContractorRecord `json:"contractor" validate:"required"`
	Financials     *FinancialsRecord `json:"financials,omitempty"`
	MarketAnalysis *MarketAnalysis   `json:"market_analysis,omitempty"`
}

// Address is a street address. All four parts are required.
type Address struct {
	Street string `json:"street" validate:"required"`
	City   string `json:"city" validate:"required"`
	State  string `json:"state" validate:"required"`
	Zip    string `json:"zip" validate:"required"`
}

// ComparableSale is one entry of a property's comparable-sale list.
type ComparableSale struct {
	Address       string   `json:"address" validate:"required"`
	SalePrice     *float64 `json:"sale_price" validate:"required"`
	SaleDate      string   `json:"sale_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Bedrooms      *float64 `json:"bedrooms,omitempty"`
	Bathrooms     *float64 `json:"bathrooms,omitempty"`
	SquareFootage *float64 `json:"square_footage,omitempty"`
	DistanceMiles *float64 `json:"distance_miles,omitempty"`
}

// PropertyRecord is the subject property. Numeric fields are pointers so a
// present zero is distinguishable from an absent field; purchase_price and
// arv are required but may legitimately be zero.
type PropertyRecord struct {
	ID                     string           `json:"id" validate:"required"`
	Address                *Address         `json:"address" validate:"required"`
	PurchasePrice          *float64         `json:"purchase_price" validate:"required"`
	ARV                    *float64         `json:"arv" validate:"required"`
	MarketStatus           string           `json:"market_status" validate:"required,oneof=lead under_contract pending sold archived"`
	PropertyType           string           `json:"property_type,omitempty" validate:"omitempty,oneof=single_family multi_family commercial land other"`
	Bedrooms               *float64         `json:"bedrooms,omitempty"`
	Bathrooms              *float64         `json:"bathrooms,omitempty"`
	SquareFootage          *float64         `json:"square_footage,omitempty"`
	YearBuilt              *float64         `json:"year_built,omitempty"`
	LotSize                *float64         `json:"lot_size,omitempty"`
	RenovationBudget       *float64         `json:"renovation_budget,omitempty"`
	EstimatedRehabTimeDays *float64         `json:"estimated_rehab_time_days,omitempty"`
	ComparableProperties   []ComparableSale `json:"comparable_properties,omitempty" validate:"omitempty,dive"`
}

// InvestmentCriteria captures what a buyer is shopping for.
type InvestmentCriteria struct {
	PropertyTypes      []string `json:"property_types,omitempty" validate:"omitempty,dive,oneof=single_family multi_family commercial land other"`
	MinBeds            *float64 `json:"min_beds,omitempty"`
	MinBaths           *float64 `json:"min_baths,omitempty"`
	MinSquareFootage   *float64 `json:"min_square_footage,omitempty"`
	PreferredLocations []string `json:"preferred_locations,omitempty"`
	MaxBudget          *float64 `json:"max_budget,omitempty"`
	MinCapRate         *float64 `json:"min_cap_rate,omitempty"`
	CashBuyer          *bool    `json:"cash_buyer,omitempty"`
}

// PastPurchase is one entry of a buyer's purchase history.
type PastPurchase struct {
	PropertyID   string `json:"property_id" validate:"required"`
	PurchaseDate string `json:"purchase_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// BuyerRecord identifies the prospective buyer attached to the submission.
type BuyerRecord struct {
	ID                 string              `json:"id" validate:"required"`
	Name               string              `json:"name" validate:"required"`
	Email              string              `json:"email" validate:"required,email"`
	Phone              string              `json:"phone,omitempty"`
	InvestmentCriteria *InvestmentCriteria `json:"investment_criteria,omitempty"`
	PastPurchases      []PastPurchase      `json:"past_purchases,omitempty" validate:"omitempty,dive"`
}

// LeadRecord carries the acquisition-funnel context for the submission.
type LeadRecord struct {
	Source                string   `json:"source" validate:"required"`
	DateCreated           string   `json:"date_created" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Status                string   `json:"status,omitempty"`
	FollowupDate          string   `json:"followup_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes                 string   `json:"notes,omitempty"`
	InitialContactMethod  string   `json:"initial_contact_method,omitempty" validate:"omitempty,oneof=phone email website social_media referral other"`
	LeadScore             *float64 `json:"lead_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	LeadOwner             string   `json:"lead_owner,omitempty"`
	LastActivityDate      string   `json:"last_activity_date,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	ConversionProbability *float64 `json:"conversion_probability,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// ProjectHistoryEntry is one entry of a contractor's project history.
type ProjectHistoryEntry struct {
	PropertyID  string   `json:"property_id" validate:"required"`
	StartDate   string   `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string   `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ProjectCost *float64 `json:"project_cost,omitempty"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
}

// ContractorRecord identifies the contractor attached to the submission.
type ContractorRecord struct {
	ID                string                `json:"id" validate:"required"`
	Name              string                `json:"name" validate:"required"`
	CompanyName       string                `json:"company_name,omitempty"`
	Email             string                `json:"email,omitempty" validate:"omitempty,email"`
	Phone             string                `json:"phone,omitempty"`
	LicenseNumber     string                `json:"license_number,omitempty"`
	InsuranceVerified *bool                 `json:"insurance_verified,omitempty"`
	Specialties       []string              `json:"specialties,omitempty"`
	HourlyRate        *float64              `json:"hourly_rate,omitempty"`
	ProjectHistory    []ProjectHistoryEntry `json:"project_history,omitempty" validate:"omitempty,dive"`
}

// PurchaseCosts groups acquisition-side costs.
type PurchaseCosts struct {
	PurchasePrice         *float64 `json:"purchase_price" validate:"required"`
	ClosingCosts          *float64 `json:"closing_costs,omitempty"`
	InspectionCosts       *float64 `json:"inspection_costs,omitempty"`
	OtherAcquisitionCosts *float64 `json:"other_acquisition_costs,omitempty"`
}

// RehabilitationCosts groups renovation-side costs.
type RehabilitationCosts struct {
	TotalRehabBudget      *float64 `json:"total_rehab_budget" validate:"required"`
	ContingencyPercentage *float64 `json:"contingency_percentage,omitempty"`
	LaborCosts            *float64 `json:"labor_costs,omitempty"`
	MaterialCosts         *float64 `json:"material_costs,omitempty"`
	ContractorProfit      *float64 `json:"contractor_profit,omitempty"`
	PermitsAndFees        *float64 `json:"permits_and_fees,omitempty"`
}

// HoldingCosts groups recurring monthly carrying costs. Every field defaults
// to zero when absent.
type HoldingCosts struct {
	MonthlyInsurance             *float64 `json:"monthly_insurance,omitempty"`
	MonthlyTaxes                 *float64 `json:"monthly_taxes,omitempty"`
	MonthlyUtilities             *float64 `json:"monthly_utilities,omitempty"`
	MonthlyOther                 *float64 `json:"monthly_other,omitempty"`
	EstimatedHoldingPeriodMonths *float64 `json:"estimated_holding_period_months,omitempty"`
}

// ExitCosts groups sale-side costs.
type ExitCosts struct {
	SellingAgentCommissionPercentage *float64 `json:"selling_agent_commission_percentage,omitempty"`
	BuyingAgentCommissionPercentage  *float64 `json:"buying_agent_commission_percentage,omitempty"`
	EstimatedClosingCosts            *float64 `json:"estimated_closing_costs,omitempty"`
	TransferTaxes                    *float64 `json:"transfer_taxes,omitempty"`
}

// Financing groups loan terms.
type Financing struct {
	LoanAmount          *float64 `json:"loan_amount,omitempty"`
	InterestRate        *float64 `json:"interest_rate,omitempty"`
	TermMonths          *float64 `json:"term_months,omitempty"`
	LoanPoints          *float64 `json:"loan_points,omitempty"`
	OtherFinancingCosts *float64 `json:"other_financing_costs,omitempty"`
}

// FinancialsRecord is the optional financial breakdown for a submission.
type FinancialsRecord struct {
	PurchaseCosts       *PurchaseCosts       `json:"purchase_costs,omitempty"`
	RehabilitationCosts *RehabilitationCosts `json:"rehabilitation_costs,omitempty"`
	HoldingCosts        *HoldingCosts        `json:"holding_costs,omitempty"`
	ExitCosts           *ExitCosts           `json:"exit_costs,omitempty"`
	Financing           *Financing           `json:"financing,omitempty"`
}

// MarketAnalysis is optional local-market context.
type MarketAnalysis struct {
	AverageDaysOnMarket      *float64 `json:"average_days_on_market,omitempty"`
	MedianSalePrice          *float64 `json:"median_sale_price,omitempty"`
	PricePerSqft             *float64 `json:"price_per_sqft,omitempty"`
	YearOverYearAppreciation *float64 `json:"year_over_year_appreciation,omitempty"`
	RentalDemand             string   `json:"rental_demand,omitempty" validate:"omitempty,oneof=very_low low moderate high very_high"`
	OccupancyRate            *float64 `json:"occupancy_rate,omitempty"`
	PriceToRentRatio         *float64 `json:"price_to_rent_ratio,omitempty"`
}

// InvestmentMetrics is the derived profitability value object. It carries no
// identity and is recomputed per request, never persisted. The two ROI
// figures are string-typed on the wire, formatted to exactly two decimal
// places.
type InvestmentMetrics struct {
	PurchasePrice       float64 `json:"purchase_price"`
	ARV                 float64 `json:"arv"`
	PotentialProfit     float64 `json:"potential_profit"`
	ROI                 string  `json:"roi"`
	TotalInvestment     float64 `json:"total_investment"`
	RehabCosts          float64 `json:"rehab_costs"`
	HoldingCosts        float64 `json:"holding_costs"`
	AdjustedProfit      float64 `json:"adjusted_profit"`
	AdjustedROI         string  `json:"adjusted_roi"`
	SeventyRuleMaxOffer float64 `json:"seventy_rule_max_offer"`
}

// DegradedSection is the inline placeholder substituted for a response
// section whose external dependency failed. The request as a whole still
// succeeds.
type DegradedSection struct {
	Error string `json:"error"`
}

// AnalysisResponse is the assembled result of a successful analysis request.
// EnrichmentData and Narrative hold either their real payload or a
// DegradedSection.
type AnalysisResponse struct {
	Message           string            `json:"message"`
	Property          *PropertyRecord   `json:"property"`
	EnrichmentData    interface{}       `json:"enrichmentData"`
	InvestmentMetrics InvestmentMetrics `json:"investmentMetrics"`
	Narrative         interface{}       `json:"narrative"`
}

// ValidationRejection is the 400 response body for an invalid document.
// Errors enumerates every violated field, not just the first.
type ValidationRejection struct {
	Errors  []validator.FieldError `json:"errors"`
	Message string                 `json:"message"`
}

// DescriptionRequest is the body for the listing-description endpoint.
type DescriptionRequest struct {
	Property *PropertyRecord `json:"property" validate:"required"`
}

// DescriptionResponse carries a generated listing description.
type DescriptionResponse struct {
	Description string `json:"description"`
}
