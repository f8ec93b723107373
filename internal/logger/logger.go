package logger

import (
	"go.uber.org/zap"

	"talentboard/internal/config"
)

// New builds the process logger. Production uses JSON output at info level,
// everything else the console encoder at debug level.
func New(cfg config.Config) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if cfg.IsProduction() {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	return log.With(zap.String("app", cfg.App.AppName)), nil
}
