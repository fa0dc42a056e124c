// README: Provider contract for generative text models.
package ai

import "context"

// TextGenerator is the contract for generative text providers. The trip
// planner uses it to draft itineraries and the chat resolver uses it to
// extract structured intent; both treat the returned text as untrusted.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
