package store

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Cursor iterates over the result of a Find
type Cursor[T any] interface {
	Next(ctx context.Context) bool
	Decode() (T, error)
	Err() error
	Close() error
}

type rowsCursor[T any] struct {
	db   *gorm.DB
	rows *sql.Rows
}

func (c *rowsCursor[T]) Next(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	return c.rows.Next()
}

func (c *rowsCursor[T]) Decode() (T, error) {
	var doc T
	err := c.db.ScanRows(c.rows, &doc)
	return doc, err
}

func (c *rowsCursor[T]) Err() error {
	return c.rows.Err()
}

func (c *rowsCursor[T]) Close() error {
	return c.rows.Close()
}

type sliceCursor[T any] struct {
	items []T
	pos   int
}

// NewSliceCursor returns a cursor over items already in memory
func NewSliceCursor[T any](items []T) Cursor[T] {
	return &sliceCursor[T]{items: items, pos: -1}
}

func (c *sliceCursor[T]) Next(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	c.pos++
	return c.pos < len(c.items)
}

func (c *sliceCursor[T]) Decode() (T, error) {
	return c.items[c.pos], nil
}

func (c *sliceCursor[T]) Err() error {
	return nil
}

func (c *sliceCursor[T]) Close() error {
	return nil
}

// All drains the cursor into a slice and closes it
func All[T any](ctx context.Context, cursor Cursor[T]) ([]T, error) {
	defer cursor.Close()

	items := []T{}
	for cursor.Next(ctx) {
		item, err := cursor.Decode()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
