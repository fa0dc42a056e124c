// README: Trip handlers for plan/list/get/delete/pdf.
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"atlas/internal/http/middleware"
	"atlas/internal/modules/trip"
	"atlas/internal/pdf"
)

type TripHandler struct {
	trips *trip.Service
}

func NewTripHandler(svc *trip.Service) *TripHandler {
	return &TripHandler{trips: svc}
}

type planTripReq struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	BudgetLevel string   `json:"budget_level"`
	Travelers   int      `json:"travelers"`
	TravelMonth string   `json:"travel_month"`
	Preferences []string `json:"preferences"`
	Notes       string   `json:"notes"`
}

// Plan handles POST /api/plan-trip.
func (h *TripHandler) Plan(c *gin.Context) {
	var req planTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Destination == "" || req.Days < 1 {
		writeError(c, http.StatusBadRequest, "destination and days are required")
		return
	}

	plan, err := h.trips.PlanTrip(c.Request.Context(), trip.Request{
		Origin:      req.Origin,
		Destination: req.Destination,
		Days:        req.Days,
		BudgetLevel: req.BudgetLevel,
		Travelers:   req.Travelers,
		TravelMonth: req.TravelMonth,
		Preferences: req.Preferences,
		Notes:       req.Notes,
		UserID:      middleware.CallerUID(c),
	}, true)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, plan)
}

// List handles GET /api/trips.
func (h *TripHandler) List(c *gin.Context) {
	summaries, err := h.trips.List(c.Request.Context(), middleware.CallerUID(c))
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, summaries)
}

// Get handles GET /api/trips/:id.
func (h *TripHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid trip id")
		return
	}
	plan, err := h.trips.Get(c.Request.Context(), id, middleware.CallerUID(c))
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, plan)
}

// Delete handles DELETE /api/trips/:id.
func (h *TripHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid trip id")
		return
	}
	if err := h.trips.Delete(c.Request.Context(), id, middleware.CallerUID(c)); err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "deleted", "trip_id": id})
}

// PDF handles GET /api/trips/:id/pdf.
func (h *TripHandler) PDF(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid trip id")
		return
	}
	plan, err := h.trips.Get(c.Request.Context(), id, middleware.CallerUID(c))
	if err != nil {
		writeTripError(c, err)
		return
	}

	// Travelers are not part of the plan payload; reuse the summary row.
	travelers := 1
	if summaries, err := h.trips.List(c.Request.Context(), middleware.CallerUID(c)); err == nil {
		for _, s := range summaries {
			if s.ID == id {
				travelers = s.Travelers
				break
			}
		}
	}

	filename := strings.ReplaceAll(fmt.Sprintf("Trip_to_%s_%dDays.pdf", plan.Destination, plan.Days), " ", "_")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/pdf")
	c.Status(http.StatusOK)
	if err := pdf.ExportItinerary(c.Writer, plan, travelers); err != nil {
		writeError(c, http.StatusInternalServerError, "pdf rendering failed")
	}
}
