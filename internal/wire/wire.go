package wire

import (
	"FutureMe/internal/api"
	"FutureMe/internal/api/config"
	"FutureMe/internal/api/handler"
	"FutureMe/internal/pkg/client"
	"FutureMe/internal/repository"
	"FutureMe/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Assistant 语言模型能力集合，由 llm.Client 实现
type Assistant interface {
	service.SentimentClassifier
	service.ReflectionGenerator
	service.LetterWriter
}

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func BuildApplication(db *gorm.DB, cfg *config.Config, assistant Assistant) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	entryRepo := repository.NewEntryRepo(db)
	replyRepo := repository.NewReplyRepo(db)
	statsRepo := repository.NewUserStatsRepo(db)
	promptRepo := repository.NewPromptRepo(db)

	if err := seedPrompts(promptRepo, cfg.Journal.SeedPrompts); err != nil {
		return nil, err
	}

	// 写日记时的分类可以走自身的 /api/sentiment
	var entryClassifier service.SentimentClassifier = assistant
	if cfg.Journal.SentimentViaHTTP && cfg.App.BaseURL != "" {
		entryClassifier = client.NewSentimentClient(cfg.App.BaseURL, time.Duration(cfg.LLM.Timeout)*time.Second)
	}

	userService := service.NewUserService(userRepo)
	entryService := service.NewEntryService(entryRepo, replyRepo, statsRepo, userRepo, entryClassifier, cfg.Journal)
	sentimentService := service.NewSentimentService(assistant)
	trendService := service.NewTrendService(entryRepo, cfg.Journal)
	promptService := service.NewPromptService(promptRepo)
	reflectionService := service.NewReflectionService(entryRepo, replyRepo, assistant)
	letterService := service.NewLetterService(entryRepo, userRepo, assistant)

	handlers := &api.HandlersGroup{
		UserHandler:      handler.NewUserHandler(userService),
		EntryHandler:     handler.NewEntryHandler(entryService),
		ReflectHandler:   handler.NewReflectHandler(reflectionService, letterService),
		SentimentHandler: handler.NewSentimentHandler(sentimentService, trendService),
		PromptHandler:    handler.NewPromptHandler(promptService),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}

func seedPrompts(repo repository.PromptRepo, texts []string) error {
	if len(texts) == 0 {
		return nil
	}
	ctx := context.Background()
	active, err := repo.ListActive(ctx)
	if err != nil {
		return err
	}
	if len(active) > 0 {
		return nil
	}
	log.Info("Seeding prompt library", "count", len(texts))
	return repo.CreatePrompts(ctx, texts)
}
