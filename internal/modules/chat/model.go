// README: Conversation turns and tagged resolver results.
package chat

// Turn is one message in a caller-supplied conversation history. The history
// lives entirely with the caller; this core never persists it.
type Turn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Actions a resolver turn can end in. The state machine has exactly two
// states: Gathering (ActionContinue) and Ready (ActionPlanReady, terminal).
const (
	ActionContinue  = "continue"
	ActionPlanReady = "plan_ready"
)

// Params is the fully populated slot set handed to the planner once the
// resolver declares readiness.
type Params struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	Travelers   int    `json:"travelers"`
	BudgetLevel string `json:"budget_level"`
}

// Result is the tagged outcome of one resolver turn: either a follow-up
// question (Response set) or a ready-to-plan parameter set (Params set).
type Result struct {
	Action   string
	Response string
	Params   *Params
}
