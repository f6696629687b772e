package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/todo-service/internal/core/domain"
)

const todosCollection = "todos"

type TodoRepository struct {
	col *mongo.Collection
}

func NewTodoRepository(db *mongo.Database) *TodoRepository {
	return &TodoRepository{col: db.Collection(todosCollection)}
}

type mongoTodo struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Task        string             `bson:"task"`
	Description string             `bson:"description"`
	Completed   bool               `bson:"completed"`
	Username    string             `bson:"username"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (mt *mongoTodo) toDomain() *domain.Todo {
	return &domain.Todo{
		ID:          mt.ID.Hex(),
		Task:        mt.Task,
		Description: mt.Description,
		Completed:   mt.Completed,
		Username:    mt.Username,
		CreatedAt:   mt.CreatedAt.UTC(),
	}
}

// Create inserts a new todo document.
func (r *TodoRepository) Create(ctx context.Context, t *domain.Todo) (*domain.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	createdAt := t.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	doc := mongoTodo{
		ID:          primitive.NewObjectID(),
		Task:        t.Task,
		Description: t.Description,
		Completed:   t.Completed,
		Username:    t.Username,
		CreatedAt:   createdAt,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	return doc.toDomain(), nil
}

// FindByIDs returns the todos in the order of ids. Missing or malformed ids
// are skipped.
func (r *TodoRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Todo, error) {
	oids := parseIDs(ids)
	if len(oids) == 0 {
		return []*domain.Todo{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find todos: %w", err)
	}

	var docs []mongoTodo
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode todos: %w", err)
	}

	byID := make(map[primitive.ObjectID]*domain.Todo, len(docs))
	for i := range docs {
		byID[docs[i].ID] = docs[i].toDomain()
	}

	out := make([]*domain.Todo, 0, len(docs))
	for _, oid := range oids {
		if t, ok := byID[oid]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *TodoRepository) List(ctx context.Context) ([]*domain.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	var docs []mongoTodo
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode todos: %w", err)
	}

	todos := make([]*domain.Todo, len(docs))
	for i := range docs {
		todos[i] = docs[i].toDomain()
	}
	return todos, nil
}

func (r *TodoRepository) SetCompleted(ctx context.Context, id, owner string, completed bool) error {
	filter, err := todoFilter(id, owner)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"completed": completed}})
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, id, owner string) error {
	filter, err := todoFilter(id, owner)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

// todoFilter matches by id and, when owner is non-empty, by owning username.
func todoFilter(id, owner string) (bson.M, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	filter := bson.M{"_id": oid}
	if owner != "" {
		filter["username"] = owner
	}
	return filter, nil
}

// EnsureIndexes creates necessary indexes on the todos collection.
func (r *TodoRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
