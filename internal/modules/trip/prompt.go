// README: Prompt construction for the itinerary-drafting model call.
package trip

import (
	"fmt"
	"strings"
)

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// buildItineraryPrompt instructs the model to return a single JSON object in
// the Plan wire shape, personalized to the request.
func buildItineraryPrompt(req Request) string {
	prefs := "general sightseeing"
	if len(req.Preferences) > 0 {
		prefs = strings.Join(req.Preferences, ", ")
	}
	origin := orDefault(req.Origin, "Not specified")

	return fmt.Sprintf(`You are an expert travel planner.
Create a highly personalized, day-wise trip itinerary in JSON only (no extra text).

User details:
- Origin: %s
- Destination: %s
- Days: %d
- Budget level: %s
- Number of travelers: %d
- Travel month/season: %s
- Preferences: %s
- Extra notes: %s

Return JSON with this exact structure:
{
  "destination": "...",
  "days": %d,
  "budget_level": "%s",
  "overview": "High-level summary of the trip tailored to the user.",
  "daily_plan": [
    {
      "day": 1,
      "title": "Short title",
      "summary": "1-2 sentence summary of the day.",
      "places": ["Place 1", "Place 2", "Place 3"]
    }
  ],
  "budget_breakdown": {
      "accommodation": "Numerical value (INR)",
      "transport": "Numerical value (INR) (Include travel from %s to %s)",
      "food": "Numerical value (INR)",
      "activities": "Numerical value (INR)",
      "total": "Sum of above"
  },
  "tips": [
    "Travel / packing / safety / budget optimization tips tailored to this trip"
  ]
}
Ensure there are exactly %d entries in "daily_plan".`,
		origin,
		req.Destination,
		req.Days,
		req.BudgetLevel,
		req.Travelers,
		orDefault(req.TravelMonth, "Not specified"),
		prefs,
		orDefault(req.Notes, "None"),
		req.Days,
		req.BudgetLevel,
		orDefault(req.Origin, "Origin"),
		req.Destination,
		req.Days,
	)
}
