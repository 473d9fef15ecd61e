package console

import (
	"context"
	"fmt"
)

// withRecovery runs handler and turns a panic into a logged error so the
// menu loop keeps going.
func (c *Console) withRecovery(ctx context.Context, command string, handler func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			c.metrics.IncHandlerError()
			c.logger.Error().Interface("panic", r).Str("command", command).Msg("Recovered from panic in command handler")
			c.println("\n" + messageFor(fmt.Errorf("panic: %v", r)) + "\n")
			err = nil
		}
	}()
	return handler(ctx)
}
