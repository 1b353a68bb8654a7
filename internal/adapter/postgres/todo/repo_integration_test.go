//go:build integration

package todo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/todo-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/todo-backend/internal/adapter/postgres/todo"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

func seed(t *testing.T, repo *todo.Repo, title string, at time.Time) *domain.Todo {
	t.Helper()

	created, err := repo.Create(context.Background(), &domain.Todo{
		Title:       title,
		Description: "desc " + title,
		OwnerID:     "owner-1",
		CreatedAt:   at,
		UpdatedAt:   at,
	})
	require.NoError(t, err)
	return created
}

func TestRepo_Integration_Lifecycle(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	testhelper.Truncate(t, pool)
	repo := todo.New(pool)
	ctx := context.Background()

	created := seed(t, repo, "Buy milk", time.Now().UTC().Truncate(time.Microsecond))
	require.True(t, repo.ValidID(created.ID))
	assert.False(t, created.Completed)
	assert.Equal(t, "owner-1", created.OwnerID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)

	later := created.UpdatedAt.Add(time.Second)
	newDesc := "3 liters"
	updated, err := repo.Update(ctx, created.ID, domain.TodoUpdateParams{Description: &newDesc}, later)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", updated.Title)
	assert.Equal(t, newDesc, updated.Description)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	toggled, err := repo.ToggleCompleted(ctx, created.ID, later)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = repo.ToggleCompleted(ctx, created.ID, later)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = repo.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrTodoNotFound)

	_, err = repo.Delete(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrTodoNotFound)
}

func TestRepo_Integration_ListPagination(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	testhelper.Truncate(t, pool)
	repo := todo.New(pool)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Microsecond)
	for i := range 15 {
		seed(t, repo, "task", base.Add(time.Duration(i)*time.Second))
	}
	seed(t, repo, "other", base)

	title := "task"
	filter := domain.TodoFilter{Title: &title}

	page1, total, err := repo.List(ctx, filter, nil, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 15, total)
	assert.Len(t, page1, 10)

	page2, total, err := repo.List(ctx, filter, nil, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, 15, total)
	assert.Len(t, page2, 5)

	assert.True(t, page1[0].CreatedAt.Before(page2[0].CreatedAt))

	desc, _, err := repo.List(ctx, filter, []domain.SortCriterion{{Field: domain.SortByCreatedAt, Desc: true}}, 1, 0)
	require.NoError(t, err)
	require.Len(t, desc, 1)
	assert.Equal(t, page2[len(page2)-1].ID, desc[0].ID)
}

func TestRepo_Integration_ConcurrentToggles(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	testhelper.Truncate(t, pool)
	repo := todo.New(pool)
	ctx := context.Background()

	created := seed(t, repo, "flip", time.Now().UTC())

	const n = 20
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.ToggleCompleted(ctx, created.ID, time.Now().UTC())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed, "an even number of atomic flips must restore the original value")
}
