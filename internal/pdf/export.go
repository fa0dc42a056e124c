// README: PDF rendering of a persisted trip itinerary.
package pdf

import (
	"fmt"
	"io"
	"strings"

	"github.com/phpdave11/gofpdf"

	"atlas/internal/modules/trip"
)

// ExportItinerary renders a trip plan as a printable PDF document.
func ExportItinerary(w io.Writer, p *trip.Plan, travelers int) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(fmt.Sprintf("Trip to %s", p.Destination), false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.Cell(0, 10, fmt.Sprintf("Trip to %s", p.Destination))
	doc.Ln(12)

	doc.SetFont("Helvetica", "", 12)
	doc.Cell(0, 7, fmt.Sprintf("Duration : %d days", p.Days))
	doc.Ln(7)
	doc.Cell(0, 7, fmt.Sprintf("Budget   : %s", p.BudgetLevel))
	doc.Ln(7)
	doc.Cell(0, 7, fmt.Sprintf("Travelers: %d", travelers))
	doc.Ln(7)
	if p.EstimatedTotalBudget != nil {
		doc.Cell(0, 7, fmt.Sprintf("Estimated total budget: %.0f", *p.EstimatedTotalBudget))
		doc.Ln(7)
	}
	if p.WeatherSummary != nil {
		doc.Cell(0, 7, *p.WeatherSummary)
		doc.Ln(7)
	}
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 7, "Overview")
	doc.Ln(8)
	doc.SetFont("Helvetica", "", 11)
	doc.MultiCell(0, 6, p.Overview, "", "", false)
	doc.Ln(4)

	for _, day := range p.DailyPlan {
		doc.SetFont("Helvetica", "B", 12)
		doc.Cell(0, 7, fmt.Sprintf("Day %d: %s", day.Day, day.Title))
		doc.Ln(8)
		doc.SetFont("Helvetica", "", 11)
		doc.MultiCell(0, 6, day.Summary, "", "", false)
		if len(day.Places) > 0 {
			doc.MultiCell(0, 6, "Places: "+strings.Join(day.Places, ", "), "", "", false)
		}
		doc.Ln(2)
	}

	if len(p.Tips) > 0 {
		doc.Ln(2)
		doc.SetFont("Helvetica", "B", 12)
		doc.Cell(0, 7, "Tips")
		doc.Ln(8)
		doc.SetFont("Helvetica", "", 11)
		for _, tip := range p.Tips {
			doc.MultiCell(0, 6, "- "+tip, "", "", false)
		}
	}

	return doc.Output(w)
}
