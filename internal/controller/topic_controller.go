package controller

import (
	"ogiri-game-be/internal/constant"
	"ogiri-game-be/internal/dto"
	"ogiri-game-be/internal/pkg/serverutils"
	"ogiri-game-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITopicController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type topicController struct {
	service service.ITopicService
}

func NewTopicController(service service.ITopicService) ITopicController {
	return &topicController{service: service}
}

func (c *topicController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/topics")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Patch(":id", c.UpdateStatus)
	h.Delete(":id", c.Delete)
}

func (c *topicController) GetAll(ctx *fiber.Ctx) error {
	var (
		res []*dto.TopicResponse
		err error
	)

	if ctx.Query("active") == "true" {
		res, err = c.service.GetActive(ctx.Context())
	} else {
		res, err = c.service.GetAll(ctx.Context())
	}
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *topicController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateTopicRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError(constant.ErrMsgTopicContentReq)
	}

	if req.Content == "" {
		return serverutils.NewValidationError(constant.ErrMsgTopicContentReq)
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

func (c *topicController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewNotFoundError(constant.ErrMsgTopicNotFound)
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *topicController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewNotFoundError(constant.ErrMsgTopicNotFound)
	}

	var req dto.UpdateTopicStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError(constant.ErrMsgIsActiveReq)
	}
	if req.IsActive == nil {
		return serverutils.NewValidationError(constant.ErrMsgIsActiveReq)
	}

	res, err := c.service.UpdateStatus(ctx.Context(), id, *req.IsActive)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *topicController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewNotFoundError(constant.ErrMsgTopicNotFound)
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any](nil))
}
