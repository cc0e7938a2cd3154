package logging

import (
	"go.uber.org/zap"
)

// New returns a JSON production logger, or a console logger at debug level.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
