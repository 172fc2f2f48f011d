// Package tools exposes catalog operations as named tools with JSON schemas,
// so every surface (HTTP API, Lambda) shares one input contract.
package tools

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
)

var (
	ErrToolNotFound = errors.New("tool not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrNoCatalog    = errors.New("recipes are not loaded")
)

type Tool interface {
	Name() string
	Title() string
	Description() string
	InputSchema() *jsonschema.Schema
	OutputSchema() *jsonschema.Schema
	Run(ctx context.Context, input map[string]any) (output map[string]any, err error)
}

type Call struct {
	Name  string         `json:"tool"`
	Input map[string]any `json:"input"`
}

func stringArg(input map[string]any, key string) string {
	s, _ := input[key].(string)
	return strings.TrimSpace(s)
}

func boolArg(input map[string]any, key string) bool {
	switch v := input[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	default:
		return false
	}
}

// intArg reads an integer that may arrive as a JSON number or a string.
func intArg(input map[string]any, key string) (int, error) {
	switch v := input[key].(type) {
	case int:
		return v, nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidInput, key)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidInput, key)
		}
		return n, nil
	case nil:
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidInput, key)
	default:
		return 0, fmt.Errorf("%w: %s has unexpected type %T", ErrInvalidInput, key, v)
	}
}
