package dbctx

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Context bundles a request context with an optional GORM transaction.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}

// DB returns the transaction when set, otherwise fallback, bound to Ctx.
func (c Context) DB(fallback *gorm.DB) *gorm.DB {
	transaction := c.Tx
	if transaction == nil {
		transaction = fallback
	}
	ctx := c.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return transaction.WithContext(ctx)
}

// Manager opens the transaction boundary of a single use case. Reads run in a
// read-only transaction, mutations in a read-write one; fn's error rolls back.
type Manager struct {
	db *gorm.DB
}

func NewManager(db *gorm.DB) *Manager {
	return &Manager{db: db}
}

func (m *Manager) DB() *gorm.DB { return m.db }

func (m *Manager) ReadOnly(ctx context.Context, fn func(dbc Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *Manager) ReadWrite(ctx context.Context, fn func(dbc Context) error) error {
	return m.run(ctx, nil, fn)
}

func (m *Manager) run(ctx context.Context, opts *sql.TxOptions, fn func(dbc Context) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts == nil {
		return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(Context{Ctx: ctx, Tx: tx})
		})
	}
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(Context{Ctx: ctx, Tx: tx})
	}, opts)
}
