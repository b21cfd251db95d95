package controller

import (
	"ogiri-game-be/internal/constant"
	"ogiri-game-be/internal/dto"
	"ogiri-game-be/internal/pkg/serverutils"
	"ogiri-game-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAnswerController interface {
	RegisterRoutes(r fiber.Router)
	GetByTopic(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Select(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type answerController struct {
	service service.IAnswerService
}

func NewAnswerController(service service.IAnswerService) IAnswerController {
	return &answerController{service: service}
}

func (c *answerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/answers")
	h.Get("", c.GetByTopic)
	h.Post("", c.Create)
	h.Patch(":id", c.Select)
	h.Delete(":id", c.Delete)
}

func (c *answerController) GetByTopic(ctx *fiber.Ctx) error {
	topicIdParam := ctx.Query("topicId")
	if topicIdParam == "" {
		return serverutils.NewValidationError(constant.ErrMsgTopicIdQueryReq)
	}

	topicId, err := uuid.Parse(topicIdParam)
	if err != nil {
		// An unknown id is indistinguishable from a topic with no answers.
		return ctx.JSON(serverutils.SuccessResponse([]*dto.AnswerResponse{}))
	}

	res, err := c.service.GetByTopicId(ctx.Context(), topicId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *answerController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError(constant.ErrMsgAnswerContentReq)
	}

	if req.Content == "" {
		return serverutils.NewValidationError(constant.ErrMsgAnswerContentReq)
	}
	if req.TopicId == "" {
		return serverutils.NewValidationError(constant.ErrMsgTopicIdReq)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse(res))
}

func (c *answerController) Select(ctx *fiber.Ctx) error {
	var req dto.SelectAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError(constant.ErrMsgUnsupportedAct)
	}
	if req.Action != "select" {
		return serverutils.NewValidationError(constant.ErrMsgUnsupportedAct)
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewNotFoundError(constant.ErrMsgAnswerNotFound)
	}

	res, err := c.service.SelectBest(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *answerController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewNotFoundError(constant.ErrMsgAnswerNotFound)
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any](nil))
}
