package logging

import "go.uber.org/zap"

// New builds the logger of a binary: human readable with debug output if
// debug is set, JSON at info level otherwise.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
