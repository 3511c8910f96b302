package logging

import "go.uber.org/zap"

// New создаёт регистратор zap: development в режиме дебага, production иначе.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
