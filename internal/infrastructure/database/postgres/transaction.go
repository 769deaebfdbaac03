package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Transaction encapsule une transaction pgx avec suivi d'état de fermeture
type Transaction struct {
	tx     pgx.Tx
	closed bool
}

// TransactionManager exécute des fonctions dans une transaction avec
// rollback automatique en cas d'erreur. Utilisé pour les créations
// multi-lignes (compte + patient + dossier notamment).
type TransactionManager struct {
	client *Client
}

type TxFunc func(tx *Transaction) error

func NewTransactionManager(client *Client) *TransactionManager {
	return &TransactionManager{client: client}
}

func (tm *TransactionManager) WithTransaction(ctx context.Context, fn TxFunc) error {
	return tm.WithTransactionIsolation(ctx, pgx.TxIsoLevel(""), fn)
}

func (tm *TransactionManager) WithTransactionIsolation(ctx context.Context, isoLevel pgx.TxIsoLevel, fn TxFunc) error {
	if tm.client.pool == nil {
		return fmt.Errorf("database pool is nil")
	}

	conn, err := tm.client.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection for transaction: %w", err)
	}
	defer conn.Release()

	txOptions := pgx.TxOptions{}
	if isoLevel != "" {
		txOptions.IsoLevel = isoLevel
	}

	pgxTx, err := conn.BeginTx(ctx, txOptions)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	tx := &Transaction{tx: pgxTx}

	// Rollback automatique si la fonction échoue ou panique
	defer func() {
		if !tx.closed {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				fmt.Printf("Warning: failed to rollback transaction: %v\n", rollbackErr)
			}
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (t *Transaction) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	if t.closed {
		return nil, fmt.Errorf("transaction is closed")
	}
	return t.tx.Query(ctx, sql, args...)
}

func (t *Transaction) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	if t.closed {
		// L'erreur sera visible au Scan
		return &closedTxRow{err: fmt.Errorf("transaction is closed")}
	}
	return t.tx.QueryRow(ctx, sql, args...)
}

func (t *Transaction) Exec(ctx context.Context, sql string, args ...interface{}) error {
	if t.closed {
		return fmt.Errorf("transaction is closed")
	}
	_, err := t.tx.Exec(ctx, sql, args...)
	return err
}

func (t *Transaction) Commit(ctx context.Context) error {
	if t.closed {
		return fmt.Errorf("transaction is already closed")
	}

	err := t.tx.Commit(ctx)
	t.closed = true
	return err
}

func (t *Transaction) Rollback(ctx context.Context) error {
	if t.closed {
		return nil
	}

	err := t.tx.Rollback(ctx)
	t.closed = true
	return err
}

type closedTxRow struct {
	err error
}

func (r *closedTxRow) Scan(dest ...interface{}) error {
	return r.err
}
