package validation

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"slices"
	"sort"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// IDParam is the path variable naming a todo.
const IDParam = "todoId"

const maxBodyBytes = 1 << 20

// Schemas groups the schema of every todo operation.
type Schemas struct {
	Create Schema
	List   Schema
	ByID   Schema
	Update Schema
}

// NewSchemas builds the todo schemas. validID decides whether a path id
// has the storage backend's identifier format.
func NewSchemas(validID func(string) bool) Schemas {
	params := PathID(validID)
	body := TodoPayload()
	return Schemas{
		Create: Schema{body},
		List:   Schema{ListParams()},
		ByID:   Schema{params},
		Update: Schema{params, body},
	}
}

// PathID validates the todoId path variable.
func PathID(validID func(string) bool) Validator {
	return ValidatorFunc(func(r *http.Request, out *Values) []domain.FieldError {
		id := mux.Vars(r)[IDParam]
		if id == "" || !validID(id) {
			return []domain.FieldError{{Field: IDParam, Message: "must be a valid id"}}
		}
		out.ID = id
		return nil
	})
}

var listKeys = []string{"title", "sortBy", "limit", "page"}

// ListParams validates the query string of a list request.
func ListParams() Validator {
	return ValidatorFunc(func(r *http.Request, out *Values) []domain.FieldError {
		q := r.URL.Query()
		var errs []domain.FieldError

		if vals, ok := q["title"]; ok {
			switch {
			case len(vals) != 1:
				errs = append(errs, domain.FieldError{Field: "title", Message: "must be a string"})
			case vals[0] == "":
				errs = append(errs, domain.FieldError{Field: "title", Message: "is not allowed to be empty"})
			default:
				title := vals[0]
				out.Query.Filter.Title = &title
			}
		}

		if raw := q.Get("sortBy"); q.Has("sortBy") {
			sortBy, err := domain.ParseSortBy(raw)
			if err != nil || len(sortBy) == 0 {
				errs = append(errs, domain.FieldError{Field: "sortBy", Message: "must be of the form field:asc|desc"})
			} else {
				out.Query.Options.SortBy = sortBy
			}
		}

		for _, key := range []string{"limit", "page"} {
			if !q.Has(key) {
				continue
			}
			n, fe := nonNegativeInt(key, q.Get(key))
			if fe != nil {
				errs = append(errs, *fe)
				continue
			}
			if key == "limit" {
				out.Query.Options.Limit = n
			} else {
				out.Query.Options.Page = n
			}
		}

		unknown := make([]string, 0)
		for key := range q {
			if !slices.Contains(listKeys, key) {
				unknown = append(unknown, key)
			}
		}
		sort.Strings(unknown)
		for _, key := range unknown {
			errs = append(errs, domain.FieldError{Field: key, Message: "is not allowed"})
		}

		return errs
	})
}

func nonNegativeInt(field, raw string) (int, *domain.FieldError) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &domain.FieldError{Field: field, Message: "must be a number"}
	}
	if n < 0 {
		return 0, &domain.FieldError{Field: field, Message: "must be greater than or equal to 0"}
	}
	return n, nil
}

// TodoPayload validates a create or update body: a JSON object with a
// required title and description and no other keys.
func TodoPayload() Validator {
	return ValidatorFunc(func(r *http.Request, out *Values) []domain.FieldError {
		fields, fe := readObject(r)
		if fe != nil {
			return []domain.FieldError{*fe}
		}

		var errs []domain.FieldError

		title, fe := requiredString(fields, "title", domain.TitleProblem)
		if fe != nil {
			errs = append(errs, *fe)
		}
		description, fe := requiredString(fields, "description", domain.DescriptionProblem)
		if fe != nil {
			errs = append(errs, *fe)
		}

		unknown := make([]string, 0)
		for key := range fields {
			if key != "title" && key != "description" {
				unknown = append(unknown, key)
			}
		}
		sort.Strings(unknown)
		for _, key := range unknown {
			errs = append(errs, domain.FieldError{Field: key, Message: "is not allowed"})
		}

		if len(errs) == 0 {
			out.Body = TodoBody{Title: title, Description: description}
		}
		return errs
	})
}

// readObject decodes the body as a JSON object. An empty body is an empty
// object so that missing fields are reported individually. The body is
// restored so later validators can read it again.
func readObject(r *http.Request) (map[string]json.RawMessage, *domain.FieldError) {
	if r.Body == nil {
		return map[string]json.RawMessage{}, nil
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil || len(data) > maxBodyBytes {
		return nil, &domain.FieldError{Field: "body", Message: "could not be read"}
	}
	r.Body = io.NopCloser(bytes.NewReader(data))

	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]json.RawMessage{}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, &domain.FieldError{Field: "body", Message: "must be of type object"}
	}
	return fields, nil
}

func requiredString(fields map[string]json.RawMessage, key string, problem func(string) string) (string, *domain.FieldError) {
	raw, ok := fields[key]
	if !ok {
		return "", &domain.FieldError{Field: key, Message: "is required"}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", &domain.FieldError{Field: key, Message: "must be a string"}
	}
	if msg := problem(s); msg != "" {
		return "", &domain.FieldError{Field: key, Message: msg}
	}
	return s, nil
}
