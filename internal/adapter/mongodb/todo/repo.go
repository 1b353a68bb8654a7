// Package todo implements the todo repository on a MongoDB collection.
package todo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heartmarshall/todo-backend/internal/adapter/mongodb"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

// Collection is the collection todos are stored in.
const Collection = "todos"

var sortKeys = map[domain.SortField]string{
	domain.SortByTitle:       "title",
	domain.SortByDescription: "description",
	domain.SortByCompleted:   "completed",
	domain.SortByCreatedAt:   "createdAt",
	domain.SortByUpdatedAt:   "updatedAt",
}

type todoDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Completed   bool               `bson:"completed"`
	OwnerID     string             `bson:"user"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d todoDoc) toDomain() *domain.Todo {
	return &domain.Todo{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Completed:   d.Completed,
		OwnerID:     d.OwnerID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// Repo provides todo persistence backed by MongoDB.
type Repo struct {
	coll *mongo.Collection
}

// New creates a repository over the todos collection of db.
func New(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection(Collection)}
}

// EnsureIndexes creates the indexes used by list queries. Idempotent.
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}}},
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create todo indexes: %w", err)
	}
	return nil
}

// ValidID reports whether id is a 24-character hex ObjectID.
func (r *Repo) ValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}

// GetByID returns a todo or domain.ErrTodoNotFound.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("todo %s: %w", id, domain.ErrTodoNotFound)
	}

	var doc todoDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, domain.ErrTodoNotFound, "todo "+id)
	}
	return doc.toDomain(), nil
}

// List returns one page of todos matching filter plus the total match count.
func (r *Repo) List(ctx context.Context, filter domain.TodoFilter, sort []domain.SortCriterion, limit, offset int) ([]*domain.Todo, int, error) {
	query := bson.M{}
	if filter.Title != nil {
		query["title"] = *filter.Title
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count todos: %w", err)
	}
	if total == 0 || int64(offset) >= total {
		return []*domain.Todo{}, int(total), nil
	}

	opts := options.Find().
		SetSort(sortDoc(sort)).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find todos: %w", err)
	}

	var docs []todoDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode todos: %w", err)
	}

	items := make([]*domain.Todo, len(docs))
	for i, d := range docs {
		items[i] = d.toDomain()
	}
	return items, int(total), nil
}

// Create inserts a todo under a freshly generated ObjectID. Timestamps are
// truncated to the millisecond precision BSON dates store.
func (r *Repo) Create(ctx context.Context, t *domain.Todo) (*domain.Todo, error) {
	doc := todoDoc{
		ID:          primitive.NewObjectID(),
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		OwnerID:     t.OwnerID,
		CreatedAt:   t.CreatedAt.Truncate(time.Millisecond),
		UpdatedAt:   t.UpdatedAt.Truncate(time.Millisecond),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, mongodb.MapError(err, domain.ErrTodoNotFound, "new todo")
	}
	return doc.toDomain(), nil
}

// Update sets the supplied fields and updatedAt and returns the new document.
func (r *Repo) Update(ctx context.Context, id string, params domain.TodoUpdateParams, now time.Time) (*domain.Todo, error) {
	set := bson.D{}
	if params.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *params.Title})
	}
	if params.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *params.Description})
	}
	set = append(set, bson.E{Key: "updatedAt", Value: now})

	return r.findOneAndUpdate(ctx, id, bson.D{{Key: "$set", Value: set}})
}

// ToggleCompleted flips completed server-side with an update pipeline.
func (r *Repo) ToggleCompleted(ctx context.Context, id string, now time.Time) (*domain.Todo, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "completed", Value: bson.D{{Key: "$not", Value: bson.A{"$completed"}}}},
			{Key: "updatedAt", Value: now},
		}}},
	}
	return r.findOneAndUpdate(ctx, id, pipeline)
}

// Delete removes a todo and returns it as it was.
func (r *Repo) Delete(ctx context.Context, id string) (*domain.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("todo %s: %w", id, domain.ErrTodoNotFound)
	}

	var doc todoDoc
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, domain.ErrTodoNotFound, "todo "+id)
	}
	return doc.toDomain(), nil
}

func (r *Repo) findOneAndUpdate(ctx context.Context, id string, update any) (*domain.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("todo %s: %w", id, domain.ErrTodoNotFound)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc todoDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, domain.ErrTodoNotFound, "todo "+id)
	}
	return doc.toDomain(), nil
}

// sortDoc renders sort criteria and appends _id as a stable tiebreaker.
func sortDoc(sort []domain.SortCriterion) bson.D {
	if len(sort) == 0 {
		sort = domain.DefaultSort
	}

	out := make(bson.D, 0, len(sort)+1)
	for _, c := range sort {
		key, ok := sortKeys[c.Field]
		if !ok {
			continue
		}
		dir := 1
		if c.Desc {
			dir = -1
		}
		out = append(out, bson.E{Key: key, Value: dir})
	}
	return append(out, bson.E{Key: "_id", Value: 1})
}
