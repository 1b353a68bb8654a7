// Package todo implements the todo repository using PostgreSQL.
// Queries are built with squirrel and scanned with pgxscan.
package todo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/todo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

const table = "todos"

var columns = []string{"id", "title", "description", "completed", "owner_id", "created_at", "updated_at"}

const returning = "RETURNING id, title, description, completed, owner_id, created_at, updated_at"

// sortColumns maps API sort fields to table columns.
var sortColumns = map[domain.SortField]string{
	domain.SortByTitle:       "title",
	domain.SortByDescription: "description",
	domain.SortByCompleted:   "completed",
	domain.SortByCreatedAt:   "created_at",
	domain.SortByUpdatedAt:   "updated_at",
}

type todoRow struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Completed   bool      `db:"completed"`
	OwnerID     string    `db:"owner_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r todoRow) toDomain() *domain.Todo {
	return &domain.Todo{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		OwnerID:     r.OwnerID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Repo provides todo persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new todo repository over a pool or any compatible querier.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ValidID reports whether id is a canonical UUID string.
func (r *Repo) ValidID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a todo by primary key.
// Returns domain.ErrTodoNotFound if no such todo exists.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Todo, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("todo %s: %w", id, domain.ErrTodoNotFound)
	}

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": uid})

	return r.getOne(ctx, id, query)
}

// List returns one page of todos matching filter plus the total match count.
func (r *Repo) List(ctx context.Context, filter domain.TodoFilter, sort []domain.SortCriterion, limit, offset int) ([]*domain.Todo, int, error) {
	countQuery := applyFilter(postgres.Builder().Select("count(*)").From(table), filter)

	sqlStr, args, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count todos: %w", err)
	}

	var total int64
	if err := r.q.QueryRow(ctx, sqlStr, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count todos: %w", err)
	}
	if total == 0 || int64(offset) >= total {
		return []*domain.Todo{}, int(total), nil
	}

	pageQuery := applyFilter(postgres.Builder().Select(columns...).From(table), filter).
		OrderBy(orderBy(sort)...).
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sqlStr, args, err = pageQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list todos: %w", err)
	}

	var rows []todoRow
	if err := pgxscan.Select(ctx, r.q, &rows, sqlStr, args...); err != nil {
		return nil, 0, fmt.Errorf("list todos: %w", err)
	}

	items := make([]*domain.Todo, len(rows))
	for i, row := range rows {
		items[i] = row.toDomain()
	}

	return items, int(total), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a todo and returns it with the generated id.
func (r *Repo) Create(ctx context.Context, t *domain.Todo) (*domain.Todo, error) {
	query := postgres.Builder().
		Insert(table).
		Columns("title", "description", "completed", "owner_id", "created_at", "updated_at").
		Values(t.Title, t.Description, t.Completed, t.OwnerID, t.CreatedAt, t.UpdatedAt).
		Suffix(returning)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert todo: %w", err)
	}

	var row todoRow
	if err := pgxscan.Get(ctx, r.q, &row, sqlStr, args...); err != nil {
		return nil, postgres.MapError(err, domain.ErrTodoNotFound, "new todo")
	}

	return row.toDomain(), nil
}

// Update overwrites the supplied fields and refreshes updated_at in a
// single statement. Returns domain.ErrTodoNotFound if no row matched.
func (r *Repo) Update(ctx context.Context, id string, params domain.TodoUpdateParams, now time.Time) (*domain.Todo, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("todo %s: %w", id, domain.ErrTodoNotFound)
	}

	query := postgres.Builder().Update(table)
	if params.Title != nil {
		query = query.Set("title", *params.Title)
	}
	if params.Description != nil {
		query = query.Set("description", *params.Description)
	}
	query = query.
		Set("updated_at", now).
		Where(sq.Eq{"id": uid}).
		Suffix(returning)

	return r.getOne(ctx, id, query)
}

// ToggleCompleted flips the completed flag atomically.
func (r *Repo) ToggleCompleted(ctx context.Context, id string, now time.Time) (*domain.Todo, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("todo %s: %w", id, domain.ErrTodoNotFound)
	}

	query := postgres.Builder().
		Update(table).
		Set("completed", sq.Expr("NOT completed")).
		Set("updated_at", now).
		Where(sq.Eq{"id": uid}).
		Suffix(returning)

	return r.getOne(ctx, id, query)
}

// Delete removes a todo and returns it as it was before removal.
func (r *Repo) Delete(ctx context.Context, id string) (*domain.Todo, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("todo %s: %w", id, domain.ErrTodoNotFound)
	}

	query := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": uid}).
		Suffix(returning)

	return r.getOne(ctx, id, query)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, id string, query sq.Sqlizer) (*domain.Todo, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build todo query: %w", err)
	}

	var row todoRow
	if err := pgxscan.Get(ctx, r.q, &row, sqlStr, args...); err != nil {
		return nil, postgres.MapError(err, domain.ErrTodoNotFound, "todo "+id)
	}

	return row.toDomain(), nil
}

func applyFilter(b sq.SelectBuilder, f domain.TodoFilter) sq.SelectBuilder {
	if f.Title != nil {
		b = b.Where(sq.Eq{"title": *f.Title})
	}
	return b
}

// orderBy renders sort criteria and appends id as a stable tiebreaker.
func orderBy(sort []domain.SortCriterion) []string {
	if len(sort) == 0 {
		sort = domain.DefaultSort
	}

	out := make([]string, 0, len(sort)+1)
	for _, c := range sort {
		col, ok := sortColumns[c.Field]
		if !ok {
			continue
		}
		dir := "ASC"
		if c.Desc {
			dir = "DESC"
		}
		out = append(out, col+" "+dir)
	}
	return append(out, "id ASC")
}
