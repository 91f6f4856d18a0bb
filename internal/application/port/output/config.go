package output

import "orbit-assistant/internal/domain/entity"

type ConfigPort interface {
	Get(key string) string
	GetWithDefault(key string, defaultValue string) string
	ChatConfig() entity.Config
}
