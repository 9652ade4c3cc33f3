// Package querystats counts the SQL statements gorm executes per request
// context. It makes the N+1 pattern of per-row loading observable.
package querystats

import (
	"context"
	"sync/atomic"

	"gorm.io/gorm"
)

type ctxKey struct{}

type Counter struct {
	n atomic.Int64
}

func (c *Counter) Count() int64 {
	if c == nil {
		return 0
	}
	return c.n.Load()
}

func (c *Counter) Reset() {
	c.n.Store(0)
}

func WithCounter(ctx context.Context) (context.Context, *Counter) {
	c := &Counter{}
	return context.WithValue(ctx, ctxKey{}, c), c
}

func FromContext(ctx context.Context) *Counter {
	if ctx == nil {
		return nil
	}
	c, _ := ctx.Value(ctxKey{}).(*Counter)
	return c
}

// Plugin registers an after-callback on every statement kind.
type Plugin struct{}

func (Plugin) Name() string { return "querystats" }

func (Plugin) Initialize(db *gorm.DB) error {
	count := func(tx *gorm.DB) {
		if c := FromContext(tx.Statement.Context); c != nil {
			c.n.Add(1)
		}
	}

	cb := db.Callback()
	if err := cb.Query().After("gorm:query").Register("querystats:query", count); err != nil {
		return err
	}
	if err := cb.Row().After("gorm:row").Register("querystats:row", count); err != nil {
		return err
	}
	if err := cb.Raw().After("gorm:raw").Register("querystats:raw", count); err != nil {
		return err
	}
	if err := cb.Create().After("gorm:create").Register("querystats:create", count); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("querystats:update", count); err != nil {
		return err
	}
	return cb.Delete().After("gorm:delete").Register("querystats:delete", count)
}
