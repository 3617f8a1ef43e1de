package output

import "github.com/Bluscream/rgb-status-led/logging"

// noopChannel implements Channel as a no-op for systems without LED support.
type noopChannel struct {
	logger logging.Logger
	name   string
}

// NewNoop creates a channel that logs writes at debug level and succeeds.
func NewNoop(logger logging.Logger, name string) Channel {
	return &noopChannel{logger: logger, name: name}
}

// SetLevel logs the request but performs no actual LED control.
func (n *noopChannel) SetLevel(level float64) error {
	if n.logger != nil {
		n.logger.Debug("LED output not available (no-op)",
			"channel", n.name,
			"level", level)
	}
	return nil
}
