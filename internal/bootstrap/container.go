package bootstrap

import (
	"context"
	"log"
	"time"

	"ogiri-game-be/internal/config"
	"ogiri-game-be/internal/controller"
	"ogiri-game-be/internal/pkg/logger"
	"ogiri-game-be/internal/repository/unitofwork"
	"ogiri-game-be/internal/service"
	"ogiri-game-be/pkg/judge"
	pktNats "ogiri-game-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	TopicController  controller.ITopicController
	AnswerController controller.IAnswerController
	CronController   controller.ICronController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Shared infrastructure handed back for lifecycle management
	Logger  logger.ILogger
	NatsPub *pktNats.Publisher
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Judge (external evaluation collaborator)
	judgeClient := judge.NewOpenAIJudge(
		cfg.Keys.OpenAI,
		cfg.Ai.BaseURL,
		cfg.Ai.Model,
		cfg.Ai.TimeoutSeconds,
		sysLogger,
	)

	// 4. Change-feed infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	publisherService := service.NewPublisherService(cfg.Keys.ChangeFeedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.ChangeFeedTopic,
		natsPub,
		rdb,
		sysLogger,
	)

	// 5. Read cache for the live game board
	activeTopicsCache := gocache.New(30*time.Second, time.Minute)

	// 6. Services
	topicService := service.NewTopicService(uowFactory, judgeClient, publisherService, activeTopicsCache, sysLogger)
	answerService := service.NewAnswerService(uowFactory, judgeClient, publisherService, sysLogger)

	// 7. Controllers
	return &Container{
		TopicController:  controller.NewTopicController(topicService),
		AnswerController: controller.NewAnswerController(answerService),
		CronController:   controller.NewCronController(topicService, cfg.Keys.CronSecret),

		ConsumerService: consumerService,

		Logger:  sysLogger,
		NatsPub: natsPub,
	}
}
