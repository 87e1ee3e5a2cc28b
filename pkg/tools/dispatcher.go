package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Ingenimax/tandoor-mcp/pkg/logging"
	"github.com/Ingenimax/tandoor-mcp/pkg/tandoor"
)

// Dispatcher routes tool calls to registered handlers and normalizes every
// failure into a *ToolError so callers can rely on the kind taxonomy.
type Dispatcher struct {
	registry *Registry
	logger   logging.Logger
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *Registry, logger logging.Logger) *Dispatcher {
	return &Dispatcher{registry: registry, logger: logger}
}

// Dispatch executes the named tool with the given argument bag. The returned
// error, when non-nil, is always a *ToolError.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]interface{}) (result string, err error) {
	callID := uuid.New().String()
	start := time.Now()

	d.logger.Debug(ctx, "dispatching tool call", map[string]interface{}{
		"tool":    name,
		"call_id": callID,
	})

	handler, ok := d.registry.Get(name)
	if !ok {
		return "", &ToolError{
			Kind:    ErrInvalidArgument,
			Message: fmt.Sprintf("unknown tool: %s", name),
			Err:     ErrUnknownTool,
		}
	}

	if args == nil {
		args = map[string]interface{}{}
	}

	defer func() {
		if r := recover(); r != nil {
			err = NewInternal("tool %s panicked: %v", name, r)
		}
		d.logger.Debug(ctx, "tool call finished", map[string]interface{}{
			"tool":        name,
			"call_id":     callID,
			"duration_ms": time.Since(start).Milliseconds(),
			"error":       err != nil,
		})
	}()

	result, err = handler(ctx, args)
	if err != nil {
		err = normalizeError(name, err)
		d.logger.Warn(ctx, "tool call failed", map[string]interface{}{
			"tool":    name,
			"call_id": callID,
			"error":   err.Error(),
		})
		return "", err
	}
	return result, nil
}

// normalizeError converts handler failures into the uniform *ToolError shape.
// Remote failures keep the status code and raw response body for diagnostics.
func normalizeError(tool string, err error) error {
	if toolErr, ok := AsToolError(err); ok {
		return toolErr
	}

	var apiErr *tandoor.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == 0 {
			return &ToolError{
				Kind:    ErrInternal,
				Message: fmt.Sprintf("remote call failed: network error: %v", apiErr.Err),
				Err:     err,
			}
		}
		return &ToolError{
			Kind:    ErrInternal,
			Message: fmt.Sprintf("remote call failed with status %d: %s", apiErr.StatusCode, apiErr.Body),
			Err:     err,
		}
	}

	return &ToolError{
		Kind:    ErrInternal,
		Message: fmt.Sprintf("tool %s failed: %v", tool, err),
		Err:     err,
	}
}
