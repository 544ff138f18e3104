package mocks

import (
	"context"

	"github.com/petlink/petlink-api/internal/store"
)

// MockTxRunner implements store.TxRunner for testing. The default
// implementation runs the function with a nil transaction, which works with
// the mock stores since their WithTx ignores the handle.
type MockTxRunner struct {
	RunFn func(ctx context.Context, fn store.TxFn) error
	Err   error
}

var _ store.TxRunner = (*MockTxRunner)(nil)

// RunInTransaction implements the TxRunner interface.
func (m *MockTxRunner) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	if m.RunFn != nil {
		return m.RunFn(ctx, fn)
	}
	if m.Err != nil {
		return m.Err
	}
	return fn(ctx, nil)
}
