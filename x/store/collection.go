// Package store is the document collection layer and its optimistic concurrency protocol
package store

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"gorm.io/gorm"

	"github.com/totegamma/rolegate/core"
)

var tracer = otel.Tracer("store")

// Filter is a set of column equality conditions. A slice value means IN.
type Filter map[string]any

// Alive restricts the filter to entities that are not soft-deleted
func (f Filter) Alive() Filter {
	out := make(Filter, len(f)+1)
	for k, v := range f {
		out[k] = v
	}
	out["deleted_at"] = 0
	return out
}

type findOptions struct {
	sort   string
	skip   int64
	limit  int64
	wheres []where
}

type where struct {
	query string
	args  []any
}

type FindOption func(*findOptions)

// Sort orders the result, e.g. Sort("created_at desc")
func Sort(order string) FindOption {
	return func(o *findOptions) { o.sort = order }
}

func Skip(n int64) FindOption {
	return func(o *findOptions) { o.skip = n }
}

func Limit(n int64) FindOption {
	return func(o *findOptions) { o.limit = n }
}

// Where adds a raw condition next to the filter
func Where(query string, args ...any) FindOption {
	return func(o *findOptions) { o.wheres = append(o.wheres, where{query, args}) }
}

// Collection is a set of documents of one entity type
type Collection[T any] interface {
	Name() string
	FindOne(ctx context.Context, filter Filter) (T, error)
	Find(ctx context.Context, filter Filter, opts ...FindOption) (Cursor[T], error)
	InsertOne(ctx context.Context, doc *T) error
	// UpdateOne replaces the fields of the single document matching filter with patch
	// and reports how many documents were modified.
	UpdateOne(ctx context.Context, filter Filter, patch *T) (int64, error)
	CountDocuments(ctx context.Context, filter Filter, opts ...FindOption) (int64, error)
	WithSession(tx *gorm.DB) Collection[T]
}

type collection[T any] struct {
	db   *gorm.DB
	name string
}

// NewCollection returns a collection backed by the table name
func NewCollection[T any](db *gorm.DB, name string) Collection[T] {
	return &collection[T]{db: db, name: name}
}

func (c *collection[T]) Name() string {
	return c.name
}

func (c *collection[T]) WithSession(tx *gorm.DB) Collection[T] {
	return &collection[T]{db: tx, name: c.name}
}

func (c *collection[T]) query(ctx context.Context, filter Filter, opts ...FindOption) *gorm.DB {
	q := c.db.WithContext(ctx).Table(c.name)
	if len(filter) > 0 {
		q = q.Where(map[string]any(filter))
	}

	options := findOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	for _, w := range options.wheres {
		q = q.Where(w.query, w.args...)
	}
	if options.sort != "" {
		q = q.Order(options.sort)
	}
	if options.skip > 0 {
		q = q.Offset(int(options.skip))
	}
	if options.limit > 0 {
		q = q.Limit(int(options.limit))
	}
	return q
}

func (c *collection[T]) FindOne(ctx context.Context, filter Filter) (T, error) {
	ctx, span := tracer.Start(ctx, "Store.Collection.FindOne")
	defer span.End()

	var doc T
	err := c.query(ctx, filter).Take(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return doc, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return doc, core.NewErrorStore(fmt.Sprintf("%s.findOne", c.name), err)
	}

	return doc, nil
}

func (c *collection[T]) Find(ctx context.Context, filter Filter, opts ...FindOption) (Cursor[T], error) {
	ctx, span := tracer.Start(ctx, "Store.Collection.Find")
	defer span.End()

	q := c.query(ctx, filter, opts...)
	rows, err := q.Rows()
	if err != nil {
		span.RecordError(err)
		return nil, core.NewErrorStore(fmt.Sprintf("%s.find", c.name), err)
	}

	return &rowsCursor[T]{db: q, rows: rows}, nil
}

func (c *collection[T]) InsertOne(ctx context.Context, doc *T) error {
	ctx, span := tracer.Start(ctx, "Store.Collection.InsertOne")
	defer span.End()

	err := c.db.WithContext(ctx).Table(c.name).Create(doc).Error
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.NewErrorAlreadyExists()
		}
		return core.NewErrorStore(fmt.Sprintf("%s.insertOne", c.name), err)
	}

	return nil
}

func (c *collection[T]) UpdateOne(ctx context.Context, filter Filter, patch *T) (int64, error) {
	ctx, span := tracer.Start(ctx, "Store.Collection.UpdateOne")
	defer span.End()

	result := c.db.WithContext(ctx).
		Table(c.name).
		Where(map[string]any(filter)).
		Select("*").
		Omit("id", "created_at").
		Updates(patch)
	if result.Error != nil {
		span.RecordError(result.Error)
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return 0, core.NewErrorAlreadyExists()
		}
		return 0, core.NewErrorStore(fmt.Sprintf("%s.updateOne", c.name), result.Error)
	}

	return result.RowsAffected, nil
}

func (c *collection[T]) CountDocuments(ctx context.Context, filter Filter, opts ...FindOption) (int64, error) {
	ctx, span := tracer.Start(ctx, "Store.Collection.CountDocuments")
	defer span.End()

	var count int64
	err := c.query(ctx, filter, opts...).Count(&count).Error
	if err != nil {
		span.RecordError(err)
		return 0, core.NewErrorStore(fmt.Sprintf("%s.countDocuments", c.name), err)
	}

	return count, nil
}
