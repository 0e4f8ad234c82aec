package tools

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"retail_assistant/internal/domain/entities"
	"retail_assistant/internal/usecase"

	"github.com/go-viper/mapstructure/v2"
)

var ErrUnknownTool = errors.New("unknown tool")

// Handler runs one tool invocation against the caller's session. It returns a
// JSON-serializable result.
type Handler func(ctx context.Context, session *entities.Session, args map[string]any) (any, error)

// Tool is an operation the conversational runtime may invoke by name.
type Tool struct {
	// Name is the identifier the runtime calls (e.g. "place_order").
	Name string `json:"name"`

	// Description tells the model when to use the tool.
	Description string `json:"description"`

	// Parameters is the JSON schema of the arguments.
	Parameters map[string]any `json:"parameters"`

	Handler Handler `json:"-"`
}

// Registry dispatches named tool calls. Calls for one session are serialized
// through the session registry.
type Registry struct {
	sessions *usecase.SessionRegistry
	tools    map[string]Tool
}

func NewRegistry(sessions *usecase.SessionRegistry, tools ...Tool) *Registry {
	r := &Registry{sessions: sessions, tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		r.tools[t.Name] = t
	}
	return r
}

// List returns the tools sorted by name.
func (r *Registry) List() []Tool {
	out := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *Registry) Call(ctx context.Context, sessionID, name string, args map[string]any) (any, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	if args == nil {
		args = map[string]any{}
	}

	log.Printf("[tools][adapter] call start session_id=%s tool=%s", sessionID, name)
	var result any
	err := r.sessions.With(sessionID, func(s *entities.Session) error {
		var err error
		result, err = t.Handler(ctx, s, args)
		return err
	})
	if err != nil {
		log.Printf("[tools][adapter] call failed session_id=%s tool=%s err=%v", sessionID, name, err)
		return nil, err
	}
	log.Printf("[tools][adapter] call success session_id=%s tool=%s", sessionID, name)
	return result, nil
}

// decodeArgs maps loosely typed tool arguments onto a request DTO. Values are
// matched by json tag and converted weakly: "2" fills an int, 500 fills a
// string and a lone object fills a one-element slice.
func decodeArgs(args map[string]any, dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           dst,
	})
	if err != nil {
		return usecase.NewValidationError("arguments", err.Error())
	}
	if err := dec.Decode(args); err != nil {
		return usecase.NewValidationError("arguments", "malformed arguments: "+err.Error())
	}
	return nil
}
