// README: Conversational planning handler.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"atlas/internal/http/middleware"
	"atlas/internal/modules/chat"
	"atlas/internal/modules/trip"
)

type ChatHandler struct {
	resolver *chat.Service
	trips    *trip.Service
}

func NewChatHandler(resolver *chat.Service, trips *trip.Service) *ChatHandler {
	return &ChatHandler{resolver: resolver, trips: trips}
}

type chatReq struct {
	Message string      `json:"message"`
	History []chat.Turn `json:"history"`
}

type chatResp struct {
	Action   string     `json:"action"`
	Response string     `json:"response"`
	Plan     *trip.Plan `json:"plan,omitempty"`
}

// Chat handles POST /api/chat. A turn either continues the slot-gathering
// conversation or, once all slots are known, generates and persists the plan
// in the same request.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}

	res := h.resolver.Resolve(c.Request.Context(), req.Message, req.History)
	if res.Action != chat.ActionPlanReady {
		writeJSON(c, http.StatusOK, chatResp{Action: chat.ActionContinue, Response: res.Response})
		return
	}

	plan, err := h.trips.PlanTrip(c.Request.Context(), trip.Request{
		Origin:      res.Params.Origin,
		Destination: res.Params.Destination,
		Days:        res.Params.Days,
		BudgetLevel: res.Params.BudgetLevel,
		Travelers:   res.Params.Travelers,
		UserID:      middleware.CallerUID(c),
	}, false)
	if err == trip.ErrBadRequest {
		writeJSON(c, http.StatusOK, chatResp{
			Action:   chat.ActionContinue,
			Response: "I couldn't detect a destination. Where would you like to go?",
		})
		return
	}
	if err != nil {
		writeTripError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, chatResp{
		Action:   chat.ActionPlanReady,
		Response: fmt.Sprintf("I've planned a %d-day trip to %s for you!", plan.Days, plan.Destination),
		Plan:     plan,
	})
}
