package store

import (
	"context"

	"github.com/totegamma/rolegate/core"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

type Paginator interface {
	Skip() int64
	Limit() int64
}

// Page is a 1-based page request
type Page struct {
	Number int64
	Size   int64
}

func NewPage(number, size int64) Page {
	if number < 1 {
		number = defaultPage
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return Page{Number: number, Size: size}
}

func (p Page) Skip() int64 {
	return (p.Number - 1) * p.Size
}

func (p Page) Limit() int64 {
	return p.Size
}

// Search returns one page of the live documents matching filter, newest first
func Search[T any](ctx context.Context, coll Collection[T], filter Filter, paginator Paginator) (core.Collection[T], error) {
	ctx, span := tracer.Start(ctx, "Store.Search")
	defer span.End()

	filter = filter.Alive()

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		span.RecordError(err)
		return core.Collection[T]{}, err
	}

	cursor, err := coll.Find(
		ctx,
		filter,
		Sort("created_at desc"),
		Skip(paginator.Skip()),
		Limit(paginator.Limit()),
	)
	if err != nil {
		span.RecordError(err)
		return core.Collection[T]{}, err
	}

	items, err := All(ctx, cursor)
	if err != nil {
		span.RecordError(err)
		return core.Collection[T]{}, err
	}

	return core.Collection[T]{Items: items, Total: total}, nil
}
