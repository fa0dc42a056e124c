package budget

import "testing"

func TestEstimate(t *testing.T) {
	tests := []struct {
		name          string
		days          int
		travelers     int
		level         string
		wantTotal     float64
		wantPerPerson float64
	}{
		{
			name: "Low tier single traveler",
			days: 5, travelers: 1, level: "low",
			wantTotal: 200, wantPerPerson: 200,
		},
		{
			name: "Medium tier couple",
			days: 3, travelers: 2, level: "medium",
			wantTotal: 480, wantPerPerson: 240,
		},
		{
			name: "High tier family",
			days: 7, travelers: 4, level: "high",
			wantTotal: 4200, wantPerPerson: 1050,
		},
		{
			name: "Unknown tier falls back to medium",
			days: 3, travelers: 2, level: "luxury",
			wantTotal: 480, wantPerPerson: 240,
		},
		{
			name: "Empty tier falls back to medium",
			days: 1, travelers: 1, level: "",
			wantTotal: 80, wantPerPerson: 80,
		},
		{
			name: "Zero travelers clamps to one",
			days: 2, travelers: 0, level: "low",
			wantTotal: 80, wantPerPerson: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, perPerson := Estimate(tt.days, tt.travelers, tt.level)
			if total != tt.wantTotal {
				t.Errorf("Estimate() total = %v, want %v", total, tt.wantTotal)
			}
			if perPerson != tt.wantPerPerson {
				t.Errorf("Estimate() perPerson = %v, want %v", perPerson, tt.wantPerPerson)
			}
		})
	}
}

func TestEstimate_TotalIsRateTimesDaysTimesTravelers(t *testing.T) {
	for _, level := range []string{"low", "medium", "high"} {
		for days := 1; days <= 10; days++ {
			for travelers := 1; travelers <= 6; travelers++ {
				total, perPerson := Estimate(days, travelers, level)
				want := Rate(level) * float64(days) * float64(travelers)
				if total != want {
					t.Fatalf("Estimate(%d, %d, %s) total = %v, want %v", days, travelers, level, total, want)
				}
				if perPerson != total/float64(travelers) {
					t.Fatalf("Estimate(%d, %d, %s) perPerson = %v, want %v", days, travelers, level, perPerson, total/float64(travelers))
				}
			}
		}
	}
}
