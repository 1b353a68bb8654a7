package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// TitleMaxLen is the maximum title length in characters.
const TitleMaxLen = 100

// Todo is a single task item owned by the caller that created it.
type Todo struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const nulCharProblem = "must not contain null characters"

// TitleProblem returns the reason title is unacceptable, or "" if it is fine.
func TitleProblem(title string) string {
	switch n := utf8.RuneCountInString(title); {
	case n == 0:
		return "is not allowed to be empty"
	case n > TitleMaxLen:
		return fmt.Sprintf("length must be less than or equal to %d characters long", TitleMaxLen)
	case strings.ContainsRune(title, 0):
		return nulCharProblem
	}
	return ""
}

// DescriptionProblem returns the reason description is unacceptable, or "".
// NUL is rejected because no text column of the storage backends accepts it.
func DescriptionProblem(description string) string {
	switch {
	case description == "":
		return "is not allowed to be empty"
	case strings.ContainsRune(description, 0):
		return nulCharProblem
	}
	return ""
}

// TodoUpdateParams holds a partial update. Nil fields are left untouched.
type TodoUpdateParams struct {
	Title       *string
	Description *string
}

// TodoFilter narrows a todo query. Title is an exact match.
type TodoFilter struct {
	Title *string
}

// TodoPage is one page of a todo query plus pagination metadata.
type TodoPage struct {
	Results      []*Todo
	Page         int
	Limit        int
	TotalPages   int
	TotalResults int
}

// SortField is a todo attribute a query can be ordered by.
type SortField string

const (
	SortByTitle       SortField = "title"
	SortByDescription SortField = "description"
	SortByCompleted   SortField = "completed"
	SortByCreatedAt   SortField = "createdAt"
	SortByUpdatedAt   SortField = "updatedAt"
)

// IsValid reports whether f names a sortable attribute.
func (f SortField) IsValid() bool {
	switch f {
	case SortByTitle, SortByDescription, SortByCompleted, SortByCreatedAt, SortByUpdatedAt:
		return true
	}
	return false
}

// SortCriterion is one ordering key of a query.
type SortCriterion struct {
	Field SortField
	Desc  bool
}

// DefaultSort orders by creation time, oldest first.
var DefaultSort = []SortCriterion{{Field: SortByCreatedAt}}

// ParseSortBy parses "field:direction[,field:direction...]".
// Direction is asc or desc and defaults to asc when omitted.
func ParseSortBy(raw string) ([]SortCriterion, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	criteria := make([]SortCriterion, 0, len(parts))

	for _, p := range parts {
		field, dir, _ := strings.Cut(strings.TrimSpace(p), ":")
		sf := SortField(field)
		if !sf.IsValid() {
			return nil, fmt.Errorf("unknown sort field %q", field)
		}

		var desc bool
		switch strings.ToLower(dir) {
		case "", "asc":
		case "desc":
			desc = true
		default:
			return nil, fmt.Errorf("unknown sort direction %q", dir)
		}

		criteria = append(criteria, SortCriterion{Field: sf, Desc: desc})
	}

	return criteria, nil
}

// QueryOptions controls ordering and pagination of a todo query.
// Page is 1-indexed.
type QueryOptions struct {
	SortBy []SortCriterion
	Limit  int
	Page   int
}
