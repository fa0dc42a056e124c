// README: Trip aggregate, plan request, and budget-level definitions.
package trip

import "encoding/json"

// Budget tiers accepted from callers. Anything else normalizes to medium.
const (
	BudgetLow    = "low"
	BudgetMedium = "medium"
	BudgetHigh   = "high"
)

// NormalizeBudget maps an arbitrary tier string onto a known tier.
func NormalizeBudget(level string) string {
	switch level {
	case BudgetLow, BudgetHigh:
		return level
	default:
		return BudgetMedium
	}
}

// Request carries the parameters a plan is generated from. UserID is assigned
// by the caller context (the authenticated UID), never by the end user.
type Request struct {
	Origin      string   `json:"origin,omitempty"`
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	BudgetLevel string   `json:"budget_level,omitempty"`
	Travelers   int      `json:"travelers,omitempty"`
	TravelMonth string   `json:"travel_month,omitempty"`
	Preferences []string `json:"preferences,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	UserID      string   `json:"-"`
}

// DayPlan is one day of an itinerary. Day is 1-based.
type DayPlan struct {
	Day     int      `json:"day"`
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Places  []string `json:"places"`
}

// Breakdown maps budget category names to amounts. Generative output emits
// amounts either as numbers or as numeric strings, so it decodes both.
type Breakdown map[string]float64

func (b *Breakdown) UnmarshalJSON(data []byte) error {
	var loose map[string]any
	if err := json.Unmarshal(data, &loose); err != nil {
		return err
	}
	out := Breakdown{}
	for k, v := range loose {
		switch n := v.(type) {
		case float64:
			out[k] = n
		case string:
			if f, err := json.Number(n).Float64(); err == nil {
				out[k] = f
			}
		}
	}
	*b = out
	return nil
}

// Plan is the fully assembled itinerary. ID is nil until persisted. The
// events/hotels/restaurants lists are enrichment-only: they are never stored
// and come back empty on reload.
type Plan struct {
	ID                   *int64           `json:"id,omitempty"`
	Destination          string           `json:"destination"`
	Days                 int              `json:"days"`
	BudgetLevel          string           `json:"budget_level"`
	Overview             string           `json:"overview"`
	DailyPlan            []DayPlan        `json:"daily_plan"`
	Tips                 []string         `json:"tips"`
	EstimatedTotalBudget *float64         `json:"estimated_total_budget,omitempty"`
	EstimatedPerPerson   *float64         `json:"estimated_per_person,omitempty"`
	BudgetBreakdown      Breakdown        `json:"budget_breakdown,omitempty"`
	Lat                  *float64         `json:"lat,omitempty"`
	Lng                  *float64         `json:"lng,omitempty"`
	WeatherSummary       *string          `json:"weather_summary,omitempty"`
	Events               []map[string]any `json:"events,omitempty"`
	Hotels               []map[string]any `json:"hotels,omitempty"`
	Restaurants          []map[string]any `json:"restaurants,omitempty"`
}

// Summary is the list-view projection of a persisted trip.
type Summary struct {
	ID          int64  `json:"id"`
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	BudgetLevel string `json:"budget_level"`
	Travelers   int    `json:"travelers"`
	Overview    string `json:"overview"`
}
