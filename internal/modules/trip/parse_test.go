package trip

import (
	"errors"
	"reflect"
	"testing"
)

const samplePlanJSON = `{
  "destination": "Paris",
  "days": 2,
  "budget_level": "medium",
  "overview": "Two days of classics.",
  "daily_plan": [
    {"day": 1, "title": "Left Bank", "summary": "Museums and cafes.", "places": ["Louvre", "Notre-Dame"]},
    {"day": 2, "title": "Right Bank", "summary": "Shopping and views.", "places": ["Champs-Elysees"]}
  ],
  "budget_breakdown": {"accommodation": "12000", "food": 4500},
  "tips": ["Buy a carnet", "Book the Louvre ahead"]
}`

func TestParsePlan_Clean(t *testing.T) {
	p, err := ParsePlan(samplePlanJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Destination != "Paris" || p.Days != 2 || len(p.DailyPlan) != 2 {
		t.Errorf("got %+v", p)
	}
	if len(p.Tips) != 2 {
		t.Errorf("expected 2 tips, got %d", len(p.Tips))
	}
}

func TestParsePlan_FencedEqualsPlain(t *testing.T) {
	plain, err := ParsePlan(samplePlanJSON)
	if err != nil {
		t.Fatalf("plain parse failed: %v", err)
	}
	fenced, err := ParsePlan("```json\n" + samplePlanJSON + "\n```")
	if err != nil {
		t.Fatalf("fenced parse failed: %v", err)
	}
	if !reflect.DeepEqual(plain, fenced) {
		t.Errorf("fenced parse differs from plain parse")
	}
}

func TestParsePlan_BreakdownAcceptsStringsAndNumbers(t *testing.T) {
	p, err := ParsePlan(samplePlanJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Breakdown{"accommodation": 12000, "food": 4500}
	if !reflect.DeepEqual(p.BudgetBreakdown, want) {
		t.Errorf("breakdown = %v, want %v", p.BudgetBreakdown, want)
	}
}

func TestParsePlan_ProseWrapped(t *testing.T) {
	raw := "Here you go!\n" + samplePlanJSON + "\nHave fun."
	if _, err := ParsePlan(raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParsePlan_NotJSON(t *testing.T) {
	_, err := ParsePlan("I cannot plan this trip.")
	if !errors.Is(err, ErrMalformedPlan) {
		t.Errorf("expected ErrMalformedPlan, got %v", err)
	}
}

func TestParsePlan_MissingDestination(t *testing.T) {
	_, err := ParsePlan(`{"days": 2, "daily_plan": [{"day":1,"title":"a","summary":"b","places":[]}]}`)
	if !errors.Is(err, ErrMalformedPlan) {
		t.Errorf("expected ErrMalformedPlan, got %v", err)
	}
}

func TestParsePlan_MissingDailyPlan(t *testing.T) {
	_, err := ParsePlan(`{"destination": "Paris", "days": 2}`)
	if !errors.Is(err, ErrMalformedPlan) {
		t.Errorf("expected ErrMalformedPlan, got %v", err)
	}
}

func TestParsePlan_DayCountMismatchIsNotRejected(t *testing.T) {
	// Mismatch is a data-quality condition handled by the orchestrator.
	p, err := ParsePlan(`{
	  "destination": "Rome",
	  "days": 3,
	  "daily_plan": [{"day":1,"title":"Forum","summary":"Old stones.","places":["Forum"]}]
	}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Days != 3 || len(p.DailyPlan) != 1 {
		t.Errorf("parser should not truncate or pad: %+v", p)
	}
}

func TestParsePlan_FillsDayNumbersAndPlaces(t *testing.T) {
	p, err := ParsePlan(`{
	  "destination": "Rome",
	  "daily_plan": [{"title":"Forum","summary":"Old stones."}, {"title":"Vatican","summary":"Art."}]
	}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Days != 2 {
		t.Errorf("expected days inferred from daily plan, got %d", p.Days)
	}
	if p.DailyPlan[1].Day != 2 {
		t.Errorf("expected day numbers filled, got %d", p.DailyPlan[1].Day)
	}
	if p.DailyPlan[0].Places == nil {
		t.Error("expected places normalized to empty slice")
	}
}
