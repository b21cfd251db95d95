package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"ogiri-game-be/internal/dto"
	"ogiri-game-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// envelope mirrors the response shape with raw data so each test decodes
// into whatever payload it expects.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestApp(register func(r fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(nil))
	register(app.Group("/api"))
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp.StatusCode, env
}

type stubTopicService struct {
	getAllFn       func(ctx context.Context) ([]*dto.TopicResponse, error)
	getActiveFn    func(ctx context.Context) ([]*dto.TopicResponse, error)
	showFn         func(ctx context.Context, id uuid.UUID) (*dto.TopicDetailResponse, error)
	createFn       func(ctx context.Context, req *dto.CreateTopicRequest) (*dto.TopicResponse, error)
	createAutoFn   func(ctx context.Context) (*dto.TopicResponse, error)
	updateStatusFn func(ctx context.Context, id uuid.UUID, isActive bool) (*dto.TopicResponse, error)
	deleteFn       func(ctx context.Context, id uuid.UUID) error
}

func (s *stubTopicService) GetAll(ctx context.Context) ([]*dto.TopicResponse, error) {
	return s.getAllFn(ctx)
}

func (s *stubTopicService) GetActive(ctx context.Context) ([]*dto.TopicResponse, error) {
	return s.getActiveFn(ctx)
}

func (s *stubTopicService) Show(ctx context.Context, id uuid.UUID) (*dto.TopicDetailResponse, error) {
	return s.showFn(ctx, id)
}

func (s *stubTopicService) Create(ctx context.Context, req *dto.CreateTopicRequest) (*dto.TopicResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubTopicService) CreateAutoGenerated(ctx context.Context) (*dto.TopicResponse, error) {
	return s.createAutoFn(ctx)
}

func (s *stubTopicService) UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*dto.TopicResponse, error) {
	return s.updateStatusFn(ctx, id, isActive)
}

func (s *stubTopicService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

type stubAnswerService struct {
	getByTopicIdFn func(ctx context.Context, topicId uuid.UUID) ([]*dto.AnswerResponse, error)
	createFn       func(ctx context.Context, req *dto.CreateAnswerRequest) (*dto.AnswerResponse, error)
	selectBestFn   func(ctx context.Context, answerId uuid.UUID) (*dto.AnswerResponse, error)
	deleteFn       func(ctx context.Context, id uuid.UUID) error
}

func (s *stubAnswerService) GetByTopicId(ctx context.Context, topicId uuid.UUID) ([]*dto.AnswerResponse, error) {
	return s.getByTopicIdFn(ctx, topicId)
}

func (s *stubAnswerService) Create(ctx context.Context, req *dto.CreateAnswerRequest) (*dto.AnswerResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubAnswerService) SelectBest(ctx context.Context, answerId uuid.UUID) (*dto.AnswerResponse, error) {
	return s.selectBestFn(ctx, answerId)
}

func (s *stubAnswerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}
