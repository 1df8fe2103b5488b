package llm

import (
	"golang.org/x/sync/semaphore"
)

// 同时在途的模型请求上限
var (
	TextWeight = int64(8)
	TextSem    = semaphore.NewWeighted(TextWeight)
)
