package controller

import (
	"context"
	"testing"

	"ogiri-game-be/internal/constant"
	"ogiri-game-be/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCronControllerGenerateTopic(t *testing.T) {
	called := false
	svc := &stubTopicService{
		createAutoFn: func(ctx context.Context) (*dto.TopicResponse, error) {
			called = true
			return &dto.TopicResponse{Id: uuid.New(), Content: "自動生成されたお題", IsActive: true, IsAutoGenerated: true}, nil
		},
	}
	app := newTestApp(NewCronController(svc, "s3cret").RegisterRoutes)

	status, env := doRequest(t, app, fiber.MethodGet, "/api/cron/generate-topic?key=s3cret", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Success)
	assert.True(t, called)
}

func TestCronControllerRejectsBadKey(t *testing.T) {
	svc := &stubTopicService{}
	app := newTestApp(NewCronController(svc, "s3cret").RegisterRoutes)

	for _, target := range []string{
		"/api/cron/generate-topic?key=wrong",
		"/api/cron/generate-topic",
	} {
		status, env := doRequest(t, app, fiber.MethodGet, target, "")
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, constant.ErrMsgUnauthorized, env.Error)
	}
}

func TestCronControllerRejectsWhenNoSecretConfigured(t *testing.T) {
	svc := &stubTopicService{}
	app := newTestApp(NewCronController(svc, "").RegisterRoutes)

	// An unset secret locks the endpoint instead of opening it.
	status, env := doRequest(t, app, fiber.MethodGet, "/api/cron/generate-topic?key=", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, constant.ErrMsgUnauthorized, env.Error)
}
