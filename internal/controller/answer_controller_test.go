package controller

import (
	"context"
	"encoding/json"
	"testing"

	"ogiri-game-be/internal/constant"
	"ogiri-game-be/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerControllerGetByTopic(t *testing.T) {
	topicId := uuid.New()
	svc := &stubAnswerService{
		getByTopicIdFn: func(ctx context.Context, id uuid.UUID) ([]*dto.AnswerResponse, error) {
			assert.Equal(t, topicId, id)
			return []*dto.AnswerResponse{{Id: uuid.New(), TopicId: id, Content: "回答"}}, nil
		},
	}
	app := newTestApp(NewAnswerController(svc).RegisterRoutes)

	status, env := doRequest(t, app, fiber.MethodGet, "/api/answers?topicId="+topicId.String(), "")
	require.Equal(t, fiber.StatusOK, status)
	require.True(t, env.Success)

	var res []*dto.AnswerResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Len(t, res, 1)
}

func TestAnswerControllerGetByTopicMissingQuery(t *testing.T) {
	svc := &stubAnswerService{}
	app := newTestApp(NewAnswerController(svc).RegisterRoutes)

	status, env := doRequest(t, app, fiber.MethodGet, "/api/answers", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, constant.ErrMsgTopicIdQueryReq, env.Error)
}

func TestAnswerControllerGetByTopicUnparseableId(t *testing.T) {
	called := false
	svc := &stubAnswerService{
		getByTopicIdFn: func(ctx context.Context, id uuid.UUID) ([]*dto.AnswerResponse, error) {
			called = true
			return nil, nil
		},
	}
	app := newTestApp(NewAnswerController(svc).RegisterRoutes)

	status, env := doRequest(t, app, fiber.MethodGet, "/api/answers?topicId=garbage", "")
	require.Equal(t, fiber.StatusOK, status)
	require.True(t, env.Success)
	assert.False(t, called)

	var res []*dto.AnswerResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Empty(t, res)
}

func TestAnswerControllerCreate(t *testing.T) {
	svc := &stubAnswerService{
		createFn: func(ctx context.Context, req *dto.CreateAnswerRequest) (*dto.AnswerResponse, error) {
			topicId, _ := uuid.Parse(req.TopicId)
			return &dto.AnswerResponse{Id: uuid.New(), TopicId: topicId, Content: req.Content, Score: 8}, nil
		},
	}
	app := newTestApp(NewAnswerController(svc).RegisterRoutes)

	body := `{"content":"おつかれさまでした","topicId":"` + uuid.NewString() + `"}`
	status, env := doRequest(t, app, fiber.MethodPost, "/api/answers", body)
	require.Equal(t, fiber.StatusCreated, status)
	require.True(t, env.Success)

	var res dto.AnswerResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, 8, res.Score)
}

func TestAnswerControllerCreateValidation(t *testing.T) {
	svc := &stubAnswerService{}
	app := newTestApp(NewAnswerController(svc).RegisterRoutes)

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "missing content", body: `{"topicId":"` + uuid.NewString() + `"}`, wantMsg: constant.ErrMsgAnswerContentReq},
		{name: "missing topicId", body: `{"content":"回答"}`, wantMsg: constant.ErrMsgTopicIdReq},
		{name: "malformed json", body: `{`, wantMsg: constant.ErrMsgAnswerContentReq},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := doRequest(t, app, fiber.MethodPost, "/api/answers", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, tt.wantMsg, env.Error)
		})
	}
}

func TestAnswerControllerSelect(t *testing.T) {
	answerId := uuid.New()
	svc := &stubAnswerService{
		selectBestFn: func(ctx context.Context, id uuid.UUID) (*dto.AnswerResponse, error) {
			assert.Equal(t, answerId, id)
			return &dto.AnswerResponse{Id: id, IsSelected: true}, nil
		},
	}
	app := newTestApp(NewAnswerController(svc).RegisterRoutes)

	status, env := doRequest(t, app, fiber.MethodPatch, "/api/answers/"+answerId.String(), `{"action":"select"}`)
	require.Equal(t, fiber.StatusOK, status)
	require.True(t, env.Success)

	var res dto.AnswerResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.True(t, res.IsSelected)
}

func TestAnswerControllerSelectUnsupportedAction(t *testing.T) {
	svc := &stubAnswerService{}
	app := newTestApp(NewAnswerController(svc).RegisterRoutes)

	for _, body := range []string{`{"action":"unselect"}`, `{}`} {
		status, env := doRequest(t, app, fiber.MethodPatch, "/api/answers/"+uuid.NewString(), body)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, constant.ErrMsgUnsupportedAct, env.Error)
	}
}

func TestAnswerControllerSelectBadId(t *testing.T) {
	svc := &stubAnswerService{}
	app := newTestApp(NewAnswerController(svc).RegisterRoutes)

	status, env := doRequest(t, app, fiber.MethodPatch, "/api/answers/not-a-uuid", `{"action":"select"}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, constant.ErrMsgAnswerNotFound, env.Error)
}

func TestAnswerControllerDelete(t *testing.T) {
	var deleted uuid.UUID
	svc := &stubAnswerService{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			deleted = id
			return nil
		},
	}
	app := newTestApp(NewAnswerController(svc).RegisterRoutes)

	id := uuid.New()
	status, env := doRequest(t, app, fiber.MethodDelete, "/api/answers/"+id.String(), "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Success)
	assert.Equal(t, id, deleted)
}
