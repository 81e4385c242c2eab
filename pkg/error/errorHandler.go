package error

import (
	"movie_watchlist/configs"
	"movie_watchlist/pkg/logger"

	"github.com/getsentry/sentry-go"
)

func SaveError(message string, err error) {
	if configs.GetConfigs().PrintErrors {
		logger.Error().Err(err).Msg(message)
	} else {
		logger.Debug().Err(err).Msg(message)
	}

	if err == nil {
		sentry.CaptureMessage(message)
	} else {
		sentry.CaptureException(err)
	}
}
