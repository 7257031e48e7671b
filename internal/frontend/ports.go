package frontend

import (
	"context"

	"calculator-frontend/internal/types"
)

// API is the network side of the front-end.
type API interface {
	Submit(ctx context.Context, expression string) (string, error)
	FetchList(ctx context.Context) ([]types.Expression, error)
	FetchOne(ctx context.Context, id string) (types.Expression, error)
}

// Renderer replaces whatever list is currently displayed with lines.
type Renderer interface {
	Render(lines []string)
}

// Notifier shows a message the user has to acknowledge.
type Notifier interface {
	Alert(message string)
}

// Input is the expression field.
type Input interface {
	Value() string
	Clear()
}
