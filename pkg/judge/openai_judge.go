package judge

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ogiri-game-be/internal/constant"
	"ogiri-game-be/internal/pkg/logger"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

type OpenAIJudge struct {
	client  openai.Client
	model   string
	timeout time.Duration
	logger  logger.ILogger
}

func NewOpenAIJudge(apiKey, baseURL, model string, timeoutSeconds int, log logger.ILogger) *OpenAIJudge {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIJudge{
		client:  openai.NewClient(opts...),
		model:   model,
		timeout: time.Duration(timeoutSeconds) * time.Second,
		logger:  log,
	}
}

func (j *OpenAIJudge) EvaluateAnswer(ctx context.Context, topicContent, answerContent string) int {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(j.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(constant.EvaluateAnswerSystemPrompt),
			openai.UserMessage(fmt.Sprintf("お題: %s\n回答: %s", topicContent, answerContent)),
		},
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(5),
	}

	completion, err := j.client.Chat.Completions.New(ctx, params)
	if err != nil || len(completion.Choices) == 0 {
		j.logger.Warn("Judge", "Answer evaluation failed, using fallback score", map[string]interface{}{
			"error": errString(err),
		})
		return constant.FallbackScore
	}

	scoreText := strings.TrimSpace(completion.Choices[0].Message.Content)
	score, err := strconv.Atoi(scoreText)
	if err != nil {
		j.logger.Warn("Judge", "Non-numeric evaluation reply, using fallback score", map[string]interface{}{
			"reply": scoreText,
		})
		return constant.FallbackScore
	}

	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}
	return score
}

func (j *OpenAIJudge) GenerateReviewComment(ctx context.Context, topicContent, answerContent string, score int) string {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(j.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(fmt.Sprintf(constant.ReviewCommentSystemPromptFormat, score)),
			openai.UserMessage(fmt.Sprintf(constant.ReviewCommentUserPromptFormat, topicContent, answerContent)),
		},
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(100),
	}

	completion, err := j.client.Chat.Completions.New(ctx, params)
	if err != nil || len(completion.Choices) == 0 {
		j.logger.Warn("Judge", "Review comment generation failed, using fallback", map[string]interface{}{
			"error": errString(err),
		})
		return constant.FallbackReviewComment
	}

	comment := strings.TrimSpace(completion.Choices[0].Message.Content)
	if comment == "" {
		return constant.FallbackReviewComment
	}
	return comment
}

func (j *OpenAIJudge) GenerateTopic(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(j.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(constant.GenerateTopicSystemPrompt),
			openai.UserMessage(constant.GenerateTopicUserPrompt),
		},
		Temperature: openai.Float(0.9),
		MaxTokens:   openai.Int(100),
	}

	completion, err := j.client.Chat.Completions.New(ctx, params)
	if err != nil || len(completion.Choices) == 0 {
		j.logger.Warn("Judge", "Topic generation failed, using fallback topic", map[string]interface{}{
			"error": errString(err),
		})
		return constant.FallbackTopic
	}

	topic := strings.TrimSpace(completion.Choices[0].Message.Content)
	if topic == "" {
		return constant.FallbackTopic
	}
	return topic
}

func errString(err error) string {
	if err == nil {
		return "empty completion"
	}
	return err.Error()
}
