// Package logger builds the process-wide zap logger.
package logger

import "go.uber.org/zap"

// NewNamed creates a named logger for the given environment. Development
// gets the console encoder with debug level; everything else gets
// production JSON output.
func NewNamed(env, name string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if env == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return log.Named(name), nil
}
