package advisor

// The structures below document the JSON shapes each pipeline stage is
// prompted to emit. Stage outputs are passed along as raw text and are
// never unmarshalled or validated here; the model is instructed, not
// policed, and presentation layers parse defensively.

type RequirementSpec struct {
	BudgetMin         float64 `json:"budget_min,omitempty"`
	BudgetMax         float64 `json:"budget_max,omitempty"`
	FuelPreference    string  `json:"fuel_preference,omitempty"`
	Usage             string  `json:"usage,omitempty"`
	Transmission      string  `json:"transmission,omitempty"`
	Seats             int     `json:"seats,omitempty"`
	CarType           string  `json:"car_type,omitempty"`
	BrandPreference   string  `json:"brand_preference,omitempty"`
	ExtraRequirements string  `json:"extra_requirements,omitempty"`
}

type Candidate struct {
	Model        string `json:"model"`
	PriceRange   string `json:"price_range_in_inr"`
	Mileage      string `json:"mileage"`
	FuelType     string `json:"fuel_type"`
	Transmission string `json:"transmission"`
	Seating      int    `json:"seating"`
	ReasonShort  string `json:"reason_short"`
}

type RankedCar struct {
	Model string   `json:"model"`
	Pros  []string `json:"pros"`
	Cons  []string `json:"cons"`
	Score float64  `json:"score"`
}

type FinalRecommendation struct {
	Model      string `json:"model"`
	Reason     string `json:"reason"`
	BuyingTips string `json:"buying_tips"`
}
