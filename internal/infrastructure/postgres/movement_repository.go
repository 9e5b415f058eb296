package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL (usable con pool o tx).
// El kardex es append-only: este adaptador no expone update ni delete.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador del kardex. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento. Quantity debe ser > 0 (la dirección la da Type).
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.Quantity <= 0 || !entity.ValidMovementType(movement.Type) {
		return domain.ErrInvalidInput
	}
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, product_id, operation_type, quantity, note, created_at)
		VALUES ($1, $2, $3, $4, $5, now())`
	productID := (*string)(nil)
	if movement.ProductID != "" {
		productID = &movement.ProductID
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, productID, movement.Type, movement.Quantity, movement.Note,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

const movementSelect = `
	SELECT m.id, COALESCE(m.product_id::text, ''), m.operation_type, m.quantity, m.note, m.created_at,
	       COALESCE(p.name, 'producto eliminado')
	FROM movements m
	LEFT JOIN products p ON p.id = m.product_id`

// ListWithProduct devuelve el historial completo, más reciente primero.
// Movimientos de productos eliminados rinden placeholder (LEFT JOIN).
func (r *MovementRepo) ListWithProduct(limit, offset int) ([]*entity.MovementWithProduct, error) {
	query := movementSelect + `
	ORDER BY m.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListByProduct devuelve el historial de un producto, más reciente primero.
func (r *MovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.MovementWithProduct, error) {
	query := movementSelect + `
	WHERE m.product_id = $1
	ORDER BY m.created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

func scanMovements(rows pgx.Rows) ([]*entity.MovementWithProduct, error) {
	var list []*entity.MovementWithProduct
	for rows.Next() {
		var m entity.MovementWithProduct
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Note,
			&m.CreatedAt, &m.ProductName); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
