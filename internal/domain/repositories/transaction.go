package repositories

import "context"

// TxFn is a function that runs within a transaction
type TxFn func(ctx context.Context) error

// TransactionManager handles the adapter's atomic units of work. Every
// mutating operation runs inside ExecTx; any error rolls the unit back in
// full before it is surfaced.
type TransactionManager interface {
	// ExecTx executes a function within a transaction
	ExecTx(ctx context.Context, fn TxFn) error
}
