// README: Conversational intent resolver (gathering vs. ready-to-plan).
package chat

import (
	"context"
	"fmt"
	"log"
	"strings"

	"atlas/internal/ai"
)

// historyWindow bounds how many prior turns are shown to the understanding
// provider alongside the new message.
const historyWindow = 5

const fallbackPrompt = "I'm having trouble understanding. Could you please clarify where you want to go?"

// Service resolves, turn by turn, whether a conversation holds enough
// information to plan a trip. It is stateless between calls; all state lives
// in the caller-supplied history.
type Service struct {
	gen ai.TextGenerator
}

func NewService(gen ai.TextGenerator) *Service {
	return &Service{gen: gen}
}

// intentWire is the structured result requested from the understanding
// provider. Output is untrusted and decoded tolerantly.
type intentWire struct {
	Action   string  `json:"action"`
	Response string  `json:"response"`
	Params   *Params `json:"params"`
}

// Resolve analyzes the new message against the recent history and returns a
// tagged result: continue with a follow-up question, or plan-ready with the
// five extracted slots. Any provider or parse failure degrades to a generic
// clarifying prompt; a resolver turn never fails.
func (s *Service) Resolve(ctx context.Context, message string, history []Turn) Result {
	if s.gen == nil {
		return Result{Action: ActionContinue, Response: "The travel assistant is not configured yet. Set GEMINI_API_KEY to enable chat planning."}
	}

	raw, err := s.gen.GenerateText(ctx, buildIntentPrompt(message, history))
	if err != nil {
		log.Printf("Chat Analysis Error: %v", err)
		return Result{Action: ActionContinue, Response: fallbackPrompt}
	}

	var wire intentWire
	if err := ai.DecodeObject(raw, &wire); err != nil {
		log.Printf("Chat Analysis Parse Error: %v", err)
		return Result{Action: ActionContinue, Response: fallbackPrompt}
	}

	switch wire.Action {
	case ActionPlanReady:
		params := wire.Params
		// Origin, travelers, and budget level must come from the user; a
		// plan-ready verdict without them is treated as a bad extraction.
		if params == nil || params.Destination == "" || params.Origin == "" ||
			params.Travelers < 1 || params.BudgetLevel == "" {
			return Result{Action: ActionContinue, Response: fallbackPrompt}
		}
		// Days alone may default once everything else is known.
		if params.Days < 1 {
			params.Days = 3
		}
		return Result{Action: ActionPlanReady, Params: params}
	case ActionContinue:
		resp := wire.Response
		if resp == "" {
			resp = "Can you tell me more?"
		}
		return Result{Action: ActionContinue, Response: resp}
	default:
		return Result{Action: ActionContinue, Response: fallbackPrompt}
	}
}

// buildIntentPrompt renders the bounded conversation window plus slot-filling
// instructions for the understanding provider.
func buildIntentPrompt(message string, history []Turn) string {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	var convo strings.Builder
	for _, turn := range history {
		role := "Assistant"
		if turn.Role == "user" {
			role = "User"
		}
		fmt.Fprintf(&convo, "%s: %s\n", role, turn.Content)
	}
	fmt.Fprintf(&convo, "User: %s\n", message)

	return fmt.Sprintf(`You are a helpful AI travel assistant. Analyze the conversation below.
Your goal is to gather these 5 pieces of information to plan a perfect trip:
1. Origin (Where are they traveling from?)
2. Destination (Where do they want to go?)
3. Number of Days
4. Number of Travelers
5. Budget Level (low, medium, high)

Conversation:
%s
Instructions:
- You must gather ALL 5 pieces of information.
- Do NOT assume defaults for Origin, Travelers, or Budget. You must ask the user for these.
- Defaults: You MAY assume "3 days" if the user doesn't specify duration but gives everything else.
- If any information is missing, ask a natural, friendly follow-up question to get it. Group questions if multiple things are missing.
- JSON Output Format:
  - If you need more info: { "action": "continue", "response": "Your natural language response asking for the missing details." }
  - If you have enough info to plan: { "action": "plan_ready", "params": { "origin": "...", "destination": "...", "days": N, "travelers": N, "budget_level": "..." } }

Return ONLY VALID JSON.`, convo.String())
}
