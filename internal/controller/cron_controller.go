package controller

import (
	"ogiri-game-be/internal/constant"
	"ogiri-game-be/internal/pkg/serverutils"
	"ogiri-game-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// cronController serves the scheduler-triggered endpoints. Callers prove
// themselves with a shared secret in the query string; there is no user auth.
type ICronController interface {
	RegisterRoutes(r fiber.Router)
	GenerateTopic(ctx *fiber.Ctx) error
}

type cronController struct {
	topicService service.ITopicService
	secretKey    string
}

func NewCronController(topicService service.ITopicService, secretKey string) ICronController {
	return &cronController{
		topicService: topicService,
		secretKey:    secretKey,
	}
}

func (c *cronController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/cron")
	h.Get("/generate-topic", c.GenerateTopic)
}

func (c *cronController) GenerateTopic(ctx *fiber.Ctx) error {
	key := ctx.Query("key")
	if c.secretKey == "" || key != c.secretKey {
		return serverutils.NewUnauthorizedError(constant.ErrMsgUnauthorized)
	}

	res, err := c.topicService.CreateAutoGenerated(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}
