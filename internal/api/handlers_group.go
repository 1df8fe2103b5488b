package api

import "FutureMe/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler      *handler.UserHandler
	EntryHandler     *handler.EntryHandler
	ReflectHandler   *handler.ReflectHandler
	SentimentHandler *handler.SentimentHandler
	PromptHandler    *handler.PromptHandler
}
