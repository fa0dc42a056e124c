// README: Trip service orchestrates generation, enrichment, and persistence.
package trip

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"atlas/internal/modules/budget"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("trip not found")
)

// Generator drafts itinerary text from a prompt. A nil Generator means no
// generative credential is configured and the deterministic placeholder plan
// is used.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Geocoder resolves a destination to coordinates; nil results mean no match.
type Geocoder interface {
	Geocode(ctx context.Context, destination string) (lat, lng *float64)
}

// WeatherSource reports current conditions for coordinates, or nil.
type WeatherSource interface {
	Current(ctx context.Context, lat, lng *float64) *string
}

// LocalSearch supplies the auxiliary venue lists. Empty slices mean the
// provider was unavailable or unconfigured.
type LocalSearch interface {
	Events(ctx context.Context, destination string) []map[string]any
	Hotels(ctx context.Context, destination string) []map[string]any
	Restaurants(ctx context.Context, destination string) []map[string]any
}

// Storage is the persistence contract for assembled plans.
type Storage interface {
	Save(ctx context.Context, p *Plan, req Request) (int64, error)
	Load(ctx context.Context, id int64) (*Plan, string, error)
	ListByUser(ctx context.Context, userID string) ([]Summary, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	store   Storage
	cache   *SummaryCache
	gen     Generator
	geo     Geocoder
	weather WeatherSource
	search  LocalSearch
}

func NewService(store Storage, cache *SummaryCache, gen Generator, geo Geocoder, weather WeatherSource, search LocalSearch) *Service {
	return &Service{
		store:   store,
		cache:   cache,
		gen:     gen,
		geo:     geo,
		weather: weather,
		search:  search,
	}
}

// PlanTrip produces a fully assembled plan and persists it. Every provider
// failure upstream of the terminal write degrades: a missing or failing
// generative provider yields the placeholder plan, and failing enrichment
// adapters yield empty fields. Only the persistence write can fail the
// operation. includeLocal controls the events/hotels/restaurants fan-out;
// the conversational path runs without it.
func (s *Service) PlanTrip(ctx context.Context, req Request, includeLocal bool) (*Plan, error) {
	if req.Destination == "" || req.Days < 1 {
		return nil, ErrBadRequest
	}
	if req.Travelers < 1 {
		req.Travelers = 1
	}
	req.BudgetLevel = NormalizeBudget(req.BudgetLevel)

	plan := s.generate(ctx, req)
	normalizeDays(plan, req.Days)
	s.enrich(ctx, plan, req, includeLocal)

	id, err := s.store.Save(ctx, plan, req)
	if err != nil {
		return nil, fmt.Errorf("persist trip: %w", err)
	}
	plan.ID = &id
	s.cache.Invalidate(ctx, req.UserID)
	return plan, nil
}

// generate drafts the itinerary, falling back to the placeholder plan when
// no generator is configured or its output is unusable.
func (s *Service) generate(ctx context.Context, req Request) *Plan {
	if s.gen == nil {
		return placeholderPlan(req)
	}

	raw, err := s.gen.GenerateText(ctx, buildItineraryPrompt(req))
	if err != nil {
		log.Printf("Generation Error: %v", err)
		return placeholderPlan(req)
	}
	plan, err := ParsePlan(raw)
	if err != nil {
		log.Printf("Generation Parse Error: %v", err)
		return placeholderPlan(req)
	}
	if plan.BudgetLevel == "" {
		plan.BudgetLevel = req.BudgetLevel
	}
	return plan
}

// enrich merges budget, coordinates, weather, and optionally the venue lists
// into the plan, overwriting anything the model may have guessed for those
// fields. Adapters run concurrently; a slow or failed adapter never blocks
// or fails the others.
func (s *Service) enrich(ctx context.Context, plan *Plan, req Request, includeLocal bool) {
	total, perPerson := budget.Estimate(req.Days, req.Travelers, req.BudgetLevel)
	plan.EstimatedTotalBudget = &total
	plan.EstimatedPerPerson = &perPerson

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		// Weather needs coordinates, so it chains after geocoding.
		plan.Lat, plan.Lng = s.geo.Geocode(ctx, req.Destination)
		plan.WeatherSummary = s.weather.Current(ctx, plan.Lat, plan.Lng)
	}()

	if includeLocal {
		wg.Add(3)
		go func() {
			defer wg.Done()
			plan.Events = s.search.Events(ctx, req.Destination)
		}()
		go func() {
			defer wg.Done()
			plan.Hotels = s.search.Hotels(ctx, req.Destination)
		}()
		go func() {
			defer wg.Done()
			plan.Restaurants = s.search.Restaurants(ctx, req.Destination)
		}()
	}

	wg.Wait()
}

// normalizeDays forces len(plan.DailyPlan) == days: extra days are truncated
// and missing days are padded with placeholder entries, so persisted trips
// always carry exactly the requested day count.
func normalizeDays(plan *Plan, days int) {
	plan.Days = days
	if len(plan.DailyPlan) > days {
		plan.DailyPlan = plan.DailyPlan[:days]
	}
	for i := len(plan.DailyPlan); i < days; i++ {
		plan.DailyPlan = append(plan.DailyPlan, DayPlan{
			Day:     i + 1,
			Title:   fmt.Sprintf("Day %d in %s", i+1, plan.Destination),
			Summary: "Free day to explore at your own pace.",
			Places:  []string{},
		})
	}
	for i := range plan.DailyPlan {
		plan.DailyPlan[i].Day = i + 1
	}
}

// placeholderPlan is the deterministic fallback itinerary used when
// generation is unconfigured or fails. It is still budgeted, geocoded, and
// weathered by enrich, and persisted like any other plan.
func placeholderPlan(req Request) *Plan {
	days := make([]DayPlan, req.Days)
	for i := range days {
		days[i] = DayPlan{
			Day:     i + 1,
			Title:   fmt.Sprintf("Day %d in %s", i+1, req.Destination),
			Summary: "Sample summary. Configure GEMINI_API_KEY for real AI planning.",
			Places:  []string{"Sample place 1", "Sample place 2", "Sample place 3"},
		}
	}
	return &Plan{
		Destination: req.Destination,
		Days:        req.Days,
		BudgetLevel: req.BudgetLevel,
		Overview: "Demo itinerary because the AI trip planner is not fully configured. " +
			"Set GEMINI_API_KEY / GEMINI_MODEL for real AI planning.",
		DailyPlan: days,
		Tips: []string{
			"Set GEMINI_API_KEY in your backend environment.",
			"Optionally set GEMINI_MODEL (e.g. gemini-2.0-flash).",
			"Restart the server after setting the vars.",
		},
	}
}

// Get loads a persisted trip. A trip owned by someone else is reported as
// not found rather than forbidden.
func (s *Service) Get(ctx context.Context, id int64, callerUID string) (*Plan, error) {
	plan, ownerID, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if ownerID != callerUID {
		return nil, ErrNotFound
	}
	return plan, nil
}

// List returns the caller's trip summaries, consulting the cache first.
func (s *Service) List(ctx context.Context, userID string) ([]Summary, error) {
	if summaries, ok := s.cache.Get(ctx, userID); ok {
		return summaries, nil
	}
	summaries, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, userID, summaries)
	return summaries, nil
}

// Delete removes a trip and its day rows after an ownership check.
func (s *Service) Delete(ctx context.Context, id int64, callerUID string) error {
	_, ownerID, err := s.store.Load(ctx, id)
	if err != nil {
		return err
	}
	if ownerID != callerUID {
		return ErrNotFound
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, callerUID)
	return nil
}
