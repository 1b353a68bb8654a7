package todo

import (
	"github.com/heartmarshall/todo-backend/internal/domain"
)

// CreateInput holds the parameters for creating a todo.
type CreateInput struct {
	Title       string
	Description string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if msg := domain.TitleProblem(i.Title); msg != "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: msg})
	}
	if msg := domain.DescriptionProblem(i.Description); msg != "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: msg})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateUpdate(p domain.TodoUpdateParams) error {
	var errs []domain.FieldError
	if p.Title != nil {
		if msg := domain.TitleProblem(*p.Title); msg != "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: msg})
		}
	}
	if p.Description != nil {
		if msg := domain.DescriptionProblem(*p.Description); msg != "" {
			errs = append(errs, domain.FieldError{Field: "description", Message: msg})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateQuery(opts domain.QueryOptions) error {
	var errs []domain.FieldError
	if opts.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be greater than or equal to 0"})
	}
	if opts.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be greater than or equal to 0"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
