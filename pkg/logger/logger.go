package logger

import (
	"go.uber.org/zap"
)

// New builds the process-wide zap logger. Development mode uses the console
// encoder so local runs stay readable.
func New(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
