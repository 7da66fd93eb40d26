// Package capabilities runs the side-effecting tools an agent may call
// mid-conversation: calendar booking, messaging, payment links and catalog
// ordering.
package capabilities

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"voice-bridge/internal/clients/openai"
	"voice-bridge/internal/observability"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	oairealtime "github.com/openai/openai-go/v3/realtime"
)

// DefaultTimeout bounds a single tool call while the caller waits on the line
const DefaultTimeout = 9 * time.Second

var (
	ErrDuplicateTool    = errors.New("tool already registered")
	ErrUnknownTool      = errors.New("unknown tool")
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrToolTimeout      = errors.New("tool call timed out")
	ErrToolPanic        = errors.New("tool call panicked")
)

// CallContext identifies the call and agent a tool runs on behalf of
type CallContext struct {
	AccountID    uuid.UUID
	AgentID      uuid.UUID
	AgentName    string
	CallSid      string
	DialedNumber string
	CallerNumber string
	CalendarID   string
	Timezone     string
	NotifyEmail  string
}

// Handler executes one tool call. The returned value is marshalled to JSON
// and handed back to the model.
type Handler func(ctx context.Context, call CallContext, args json.RawMessage) (any, error)

// Tool is a named capability with the JSON schema the model sees
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
	Handler     Handler
}

// Result is the outcome of a dispatch. Output is always valid JSON; Err is
// set when Output carries an error result.
type Result struct {
	Output   string
	Err      error
	Duration time.Duration
}

type Dispatcher struct {
	mu      sync.RWMutex
	tools   map[string]Tool
	timeout time.Duration
	logger  *observability.Logger
}

func NewDispatcher(timeout time.Duration, logger *observability.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Dispatcher{
		tools:   make(map[string]Tool),
		timeout: timeout,
		logger:  logger,
	}
}

// Register adds tools to the registry. Names must be unique.
func (d *Dispatcher) Register(tools ...Tool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, tool := range tools {
		if tool.Name == "" || tool.Handler == nil {
			return fmt.Errorf("tool %q needs a name and a handler", tool.Name)
		}
		if _, exists := d.tools[tool.Name]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateTool, tool.Name)
		}
		d.tools[tool.Name] = tool
	}
	return nil
}

// Names lists registered tool names in sorted order
func (d *Dispatcher) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.tools))
	for name := range d.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns the session tool definitions for the requested names,
// in request order. Names that are not registered are skipped.
func (d *Dispatcher) Definitions(names []string) oairealtime.RealtimeToolsConfigParam {
	d.mu.RLock()
	defer d.mu.RUnlock()

	defs := make(oairealtime.RealtimeToolsConfigParam, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		tool, ok := d.tools[name]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		defs = append(defs, openai.FunctionTool(tool.Name, tool.Description, tool.Parameters))
	}
	return defs
}

// Dispatch runs the named tool with a bounded timeout. It never returns
// without a result: failures become structured error outputs so the model
// can tell the caller what went wrong.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, arguments string, call CallContext) Result {
	start := time.Now()
	ctx = observability.WithFields(ctx, observability.Field{Key: "tool_name", Value: name})

	d.mu.RLock()
	tool, ok := d.tools[name]
	d.mu.RUnlock()
	if !ok {
		d.logger.Warn(ctx, "model requested unknown tool")
		return errorResult(start, ErrUnknownTool, map[string]any{"error": "unknown_tool", "tool": name})
	}

	args := json.RawMessage(arguments)
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if !json.Valid(args) {
		return errorResult(start, ErrInvalidArguments, map[string]any{"error": "invalid_arguments", "detail": "arguments are not valid JSON"})
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	type outcome struct {
		value any
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("%w: %v", ErrToolPanic, r)}
			}
		}()
		value, err := tool.Handler(ctx, call, args)
		done <- outcome{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		d.logger.Warn(ctx, fmt.Sprintf("tool call exceeded %s", d.timeout))
		return errorResult(start, ErrToolTimeout, map[string]any{"error": "timeout"})

	case out := <-done:
		if out.err != nil {
			d.logger.Error(ctx, "tool call failed", out.err)
			if errors.Is(out.err, ErrInvalidArguments) {
				return errorResult(start, out.err, map[string]any{"error": "invalid_arguments", "detail": out.err.Error()})
			}
			return errorResult(start, out.err, map[string]any{"error": out.err.Error()})
		}

		encoded, err := json.Marshal(out.value)
		if err != nil {
			d.logger.Error(ctx, "failed to encode tool result", err)
			return errorResult(start, err, map[string]any{"error": "unencodable_result"})
		}
		d.logger.Metrics(ctx, observability.MetricField{Key: "tool_duration_ms", Value: time.Since(start).Milliseconds()})
		return Result{Output: string(encoded), Duration: time.Since(start)}
	}
}

func errorResult(start time.Time, err error, body map[string]any) Result {
	encoded, _ := json.Marshal(body)
	return Result{Output: string(encoded), Err: err, Duration: time.Since(start)}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeArgs unmarshals and validates tool arguments into T
func decodeArgs[T any](args json.RawMessage) (T, error) {
	var v T
	if err := json.Unmarshal(args, &v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	if err := validate.Struct(v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	return v, nil
}
