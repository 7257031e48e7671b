package frontend

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"calculator-frontend/internal/types"
)

const (
	msgEmptyExpression = "Получено пустое выражение"
	msgAccepted        = "Выражение принято. ID: "
	msgErrorPrefix     = "Ошибка: "
)

// Frontend glues the expression field, the calculator API and the rendered
// list together. Submit and Refresh may be called from different goroutines;
// the Renderer must tolerate that.
type Frontend struct {
	api      API
	renderer Renderer
	notifier Notifier
	input    Input
	logger   *log.Logger
}

type Option func(*Frontend)

// WithLogger sets where refresh failures are reported. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(f *Frontend) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		f.logger = l
	}
}

func New(api API, renderer Renderer, notifier Notifier, input Input, opts ...Option) *Frontend {
	f := &Frontend{
		api:      api,
		renderer: renderer,
		notifier: notifier,
		input:    input,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Submit sends the current field value to the calculator. On success the
// field is cleared and the list refreshed; any failure is shown to the user
// and returned.
func (f *Frontend) Submit(ctx context.Context) (string, error) {
	expr := strings.TrimSpace(f.input.Value())
	if expr == "" {
		f.notifier.Alert(msgEmptyExpression)
		return "", ErrEmptyExpression
	}

	id, err := f.api.Submit(ctx, expr)
	if err != nil {
		f.notifier.Alert(msgErrorPrefix + err.Error())
		return "", err
	}

	f.notifier.Alert(msgAccepted + id)
	f.input.Clear()
	f.Refresh(ctx)
	return id, nil
}

// Refresh re-renders the expression list. A failed fetch is only logged and
// leaves the current list on screen.
func (f *Frontend) Refresh(ctx context.Context) error {
	exprs, err := f.api.FetchList(ctx)
	if err != nil {
		f.logger.Printf("Error loading expressions: %v", err)
		return err
	}

	lines := make([]string, 0, len(exprs))
	for _, e := range exprs {
		lines = append(lines, FormatLine(e))
	}
	f.renderer.Render(lines)
	return nil
}

// Show looks up a single expression and presents it to the user.
func (f *Frontend) Show(ctx context.Context, id string) (types.Expression, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		f.notifier.Alert(msgErrorPrefix + "не указан ID")
		return types.Expression{}, fmt.Errorf("show: missing id")
	}

	expr, err := f.api.FetchOne(ctx, id)
	if err != nil {
		f.notifier.Alert(msgErrorPrefix + err.Error())
		return types.Expression{}, err
	}

	f.notifier.Alert(FormatLine(expr))
	return expr, nil
}

// FormatLine renders one list entry.
func FormatLine(e types.Expression) string {
	return fmt.Sprintf("ID: %s, Статус: %s, Результат: %s", e.ID, e.Status, e.Result)
}
