package judge

import "context"

// Judge scores ōgiri answers and invents new topics. Every call has a fixed
// fallback value, so callers never need a failure branch: an unreachable
// judge degrades the game, it never blocks it.
type Judge interface {
	// EvaluateAnswer rates an answer against its topic, 0 to 10.
	EvaluateAnswer(ctx context.Context, topicContent, answerContent string) int

	// GenerateReviewComment writes a short review for a scored answer.
	GenerateReviewComment(ctx context.Context, topicContent, answerContent string, score int) string

	// GenerateTopic invents a fresh topic prompt.
	GenerateTopic(ctx context.Context) string
}
