package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/totegamma/rolegate/core"
)

// Versioned is a pointer to an entity carrying a BaseModel
type Versioned[T any] interface {
	*T
	Base() *core.BaseModel
}

// Update writes entity only if the stored version still equals entity's version.
// On success entity's version is advanced by one; on failure it is left untouched
// and ErrorOptimisticLocking is returned when the precondition did not match.
func Update[T any, P Versioned[T]](ctx context.Context, coll Collection[T], entity P) error {
	ctx, span := tracer.Start(ctx, "Store.Update")
	defer span.End()

	base := entity.Base()
	current := base.Version
	base.Version = current + 1

	modified, err := coll.UpdateOne(ctx, Filter{"id": base.ID, "version": current}, (*T)(entity))
	if err != nil {
		base.Version = current
		span.RecordError(err)
		return err
	}

	if modified == 0 {
		base.Version = current
		err := core.NewErrorOptimisticLocking(base.ID, current)
		span.RecordError(err)
		return err
	}

	return nil
}

// UpdateWithSession is Update inside the transaction tx.
// The version of entity is advanced as soon as the statement succeeds; if tx is
// rolled back afterwards, entity is ahead of the store and has to be re-read.
func UpdateWithSession[T any, P Versioned[T]](ctx context.Context, tx *gorm.DB, coll Collection[T], entity P) error {
	return Update[T, P](ctx, coll.WithSession(tx), entity)
}

// Transaction runs fn in a database transaction, committing when fn returns nil
func Transaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	ctx, span := tracer.Start(ctx, "Store.Transaction")
	defer span.End()

	err := db.WithContext(ctx).Transaction(fn)
	if err != nil {
		span.RecordError(err)
	}
	return err
}
