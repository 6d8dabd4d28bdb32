package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BANCESQWQ/bobisfinal/internal/domain/repository"
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// La creación de pedidos es la única operación multi-sentencia del sistema:
// cabecera + N líneas + N cambios de estado deben confirmarse o revertirse
// como una unidad.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunPedido inicia una transacción, ejecuta fn con los repos de pedido y
// registro atados a la tx y hace Commit; cualquier error revierte todo.
func (r *TxRunner) RunPedido(ctx context.Context, fn func(
	pedidos repository.PedidoRepository,
	registros repository.RegistroRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPedidoRepository(tx), NewRegistroRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
