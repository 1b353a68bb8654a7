// Package validation checks the path, query and body of incoming requests
// against per-operation schemas and hands the coerced values to handlers.
package validation

import (
	"context"
	"net/http"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// Validator checks one part of a request and records coerced values in out.
type Validator interface {
	Validate(r *http.Request, out *Values) []domain.FieldError
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(r *http.Request, out *Values) []domain.FieldError

func (f ValidatorFunc) Validate(r *http.Request, out *Values) []domain.FieldError {
	return f(r, out)
}

// Schema is the ordered list of validators for one operation.
type Schema []Validator

// Check runs every validator and reports all violations at once. On success
// the coerced values are attached to the returned request's context.
func (s Schema) Check(r *http.Request) (*http.Request, error) {
	var (
		vals Values
		errs []domain.FieldError
	)
	for _, v := range s {
		errs = append(errs, v.Validate(r, &vals)...)
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return r.WithContext(WithValues(r.Context(), vals)), nil
}

// Values are the validated, typed request inputs.
type Values struct {
	ID    string
	Query ListQuery
	Body  TodoBody
}

// ListQuery is a validated list request.
type ListQuery struct {
	Filter  domain.TodoFilter
	Options domain.QueryOptions
}

// TodoBody is a validated create or update payload.
type TodoBody struct {
	Title       string
	Description string
}

type ctxKey struct{}

// WithValues stores validated values in the context.
func WithValues(ctx context.Context, v Values) context.Context {
	return context.WithValue(ctx, ctxKey{}, v)
}

// FromContext returns the values stored by a successful Schema.Check.
func FromContext(ctx context.Context) (Values, bool) {
	v, ok := ctx.Value(ctxKey{}).(Values)
	return v, ok
}
