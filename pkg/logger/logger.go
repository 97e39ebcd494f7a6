package logger

import (
	"go.uber.org/zap"
)

// New builds the process logger. Namespace tags every line so multiple
// services sharing an output stream stay distinguishable.
func New(namespace string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.InitialFields = map[string]interface{}{
		"namespace": namespace,
	}

	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return l
}
