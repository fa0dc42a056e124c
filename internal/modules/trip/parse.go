// README: Parser for generative itinerary output (decode then validate).
package trip

import (
	"errors"
	"fmt"

	"atlas/internal/ai"
)

// ErrMalformedPlan reports generative output that could not be recovered as a
// plan even after fence stripping and brace bounding.
var ErrMalformedPlan = errors.New("generative output is not a recoverable plan")

// ParsePlan extracts a Plan from raw generative text. The text is untrusted:
// it may be fenced, wrapped in prose, or not JSON at all. A daily plan whose
// length differs from the declared day count is NOT rejected here; the
// orchestrator normalizes it (see normalizeDays).
func ParsePlan(raw string) (*Plan, error) {
	var p Plan
	if err := ai.DecodeObject(raw, &p); err != nil {
		return nil, ErrMalformedPlan
	}
	if p.Destination == "" {
		return nil, fmt.Errorf("%w: missing destination", ErrMalformedPlan)
	}
	if len(p.DailyPlan) == 0 {
		return nil, fmt.Errorf("%w: missing daily plan", ErrMalformedPlan)
	}
	if p.Days <= 0 {
		p.Days = len(p.DailyPlan)
	}
	if p.Tips == nil {
		p.Tips = []string{}
	}
	for i := range p.DailyPlan {
		if p.DailyPlan[i].Day == 0 {
			p.DailyPlan[i].Day = i + 1
		}
		if p.DailyPlan[i].Places == nil {
			p.DailyPlan[i].Places = []string{}
		}
	}
	return &p, nil
}
