package llm

import (
	"FutureMe/internal/api/dto"
	"FutureMe/internal/model"

	"github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
)

var (
	sentimentSchema = generateSchema[model.Sentiment]()
	letterSchema    = generateSchema[dto.ReflectionLetterDTO]()
)

// generateSchema 生成写入 system prompt 的 JSON Schema
func generateSchema[T any]() string {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(&v)
	schema.Version = ""
	b, err := json.Marshal(schema)
	if err != nil {
		panic(err)
	}
	return string(b)
}
