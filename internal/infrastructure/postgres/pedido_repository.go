package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/BANCESQWQ/bobisfinal/internal/domain"
	"github.com/BANCESQWQ/bobisfinal/internal/domain/entity"
	"github.com/BANCESQWQ/bobisfinal/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación del puerto PedidoRepository sobre PostgreSQL.
type PedidoRepo struct {
	db Querier
}

// NewPedidoRepository construye el adaptador; acepta el pool o una tx.
func NewPedidoRepository(db Querier) *PedidoRepo {
	return &PedidoRepo{db: db}
}

// CreateCab inserta la cabecera del pedido y devuelve el id generado.
func (r *PedidoRepo) CreateCab(ctx context.Context, usuarioID int, fecha time.Time, estadoPedidoID int, observaciones *string) (int, error) {
	const query = `
		INSERT INTO "PEDIDO_CAB" ("FECHA_PEDIDO", "USUARIO_SOLICITA_ID", "ESTADO_PEDIDO_ID", "OBSERVACIONES")
		VALUES ($1, $2, $3, $4)
		RETURNING "ID_PEDIDO"`

	var id int
	if err := r.db.QueryRow(ctx, query, fecha, usuarioID, estadoPedidoID, observaciones).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("usuario %d: %w", usuarioID, domain.ErrNotFound)
		}
		return 0, fmt.Errorf("insert pedido_cab: %w", err)
	}
	return id, nil
}

// CreateDet inserta una línea de pedido. La bandera de despacho nace en true:
// incluir la bobina en el pedido es el acto de despacharla.
func (r *PedidoRepo) CreateDet(ctx context.Context, pedidoID, registroID int, observaciones *string) error {
	const query = `
		INSERT INTO "PEDIDO_DET" ("PEDIDO_CAB_ID_PEDIDO", "REGISTROS_ID_REGISTRO", "ESTADO_DESPACHO", "PED_OBSERVACIONES")
		VALUES ($1, $2, true, $3)`

	if _, err := r.db.Exec(ctx, query, pedidoID, registroID, observaciones); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("registro %d: %w", registroID, domain.ErrNotFound)
		}
		return fmt.Errorf("insert pedido_det: %w", err)
	}
	return nil
}

const pedidoCabSelect = `
	SELECT c."ID_PEDIDO", c."FECHA_PEDIDO", c."USUARIO_SOLICITA_ID",
	       c."ESTADO_PEDIDO_ID", c."OBSERVACIONES",
	       TRIM(u."NOMBRE_USUARIO" || ' ' || u."APELLIDO_USUARIO"),
	       ep."DESC_ESTADO_PEDIDO",
	       (SELECT COUNT(*) FROM "PEDIDO_DET" d WHERE d."PEDIDO_CAB_ID_PEDIDO" = c."ID_PEDIDO")
	FROM "PEDIDO_CAB" c
	LEFT JOIN "USUARIOS"      u  ON u."ID_USUARIO"        = c."USUARIO_SOLICITA_ID"
	LEFT JOIN "ESTADO_PEDIDO" ep ON ep."ID_ESTADO_PEDIDO" = c."ESTADO_PEDIDO_ID"`

func scanPedidoCab(row pgx.Row) (*entity.PedidoCab, error) {
	var p entity.PedidoCab
	err := row.Scan(
		&p.IDPedido, &p.FechaPedido, &p.UsuarioSolicitaID,
		&p.EstadoPedidoID, &p.Observaciones,
		&p.Solicitante, &p.EstadoPedido, &p.CantBobinas,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetCab devuelve nil, nil si el pedido no existe.
func (r *PedidoRepo) GetCab(ctx context.Context, id int) (*entity.PedidoCab, error) {
	p, err := scanPedidoCab(r.db.QueryRow(ctx, pedidoCabSelect+` WHERE c."ID_PEDIDO" = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido %d: %w", id, err)
	}
	return p, nil
}

// ListEnCurso devuelve los pedidos en estado Borrador o Enviado, más reciente primero.
func (r *PedidoRepo) ListEnCurso(ctx context.Context) ([]*entity.PedidoCab, error) {
	query := pedidoCabSelect + `
	WHERE c."ESTADO_PEDIDO_ID" IN ($1, $2)
	ORDER BY c."FECHA_PEDIDO" DESC, c."ID_PEDIDO" DESC`

	rows, err := r.db.Query(ctx, query, entity.EstadoPedidoBorrador, entity.EstadoPedidoEnviado)
	if err != nil {
		return nil, fmt.Errorf("list pedidos en curso: %w", err)
	}
	defer rows.Close()

	var list []*entity.PedidoCab
	for rows.Next() {
		p, err := scanPedidoCab(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListHistorial pagina todos los pedidos, opcionalmente filtrados por estado.
func (r *PedidoRepo) ListHistorial(ctx context.Context, page, perPage int, estadoPedidoID *int) ([]*entity.PedidoCab, int, error) {
	where := ""
	var args []any
	if estadoPedidoID != nil {
		where = ` WHERE c."ESTADO_PEDIDO_ID" = $1`
		args = append(args, *estadoPedidoID)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM "PEDIDO_CAB" c` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count pedidos: %w", err)
	}

	query := pedidoCabSelect + where +
		fmt.Sprintf(` ORDER BY c."FECHA_PEDIDO" DESC, c."ID_PEDIDO" DESC OFFSET $%d LIMIT $%d`, len(args)+1, len(args)+2)
	args = append(args, (page-1)*perPage, perPage)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list historial pedidos: %w", err)
	}
	defer rows.Close()

	var list []*entity.PedidoCab
	for rows.Next() {
		p, err := scanPedidoCab(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// GetDetalle devuelve las líneas expandidas de un pedido para el checklist
// de despacho.
func (r *PedidoRepo) GetDetalle(ctx context.Context, pedidoID int) ([]*entity.PedidoDetalle, error) {
	const query = `
	SELECT d."ID_PEDIDO_DET", d."REGISTROS_ID_REGISTRO", b."DESC_BOBI",
	       r."PEDIDO_COMPRA", r."COLADA", r."PESO"::float8, u."DESC_UBI",
	       d."ESTADO_DESPACHO"
	FROM "PEDIDO_DET" d
	JOIN "REGISTROS" r       ON r."ID_REGISTRO" = d."REGISTROS_ID_REGISTRO"
	LEFT JOIN "BOBINA" b     ON b."ID_BOBI"     = r."BOBINA_ID_BOBI"
	LEFT JOIN "UBICACION" u  ON u."ID_UBI"      = r."UBICACION_ID_UBI"
	WHERE d."PEDIDO_CAB_ID_PEDIDO" = $1
	ORDER BY d."ID_PEDIDO_DET"`

	rows, err := r.db.Query(ctx, query, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("detalle pedido %d: %w", pedidoID, err)
	}
	defer rows.Close()

	var list []*entity.PedidoDetalle
	for rows.Next() {
		var d entity.PedidoDetalle
		if err := rows.Scan(&d.IDPedidoDet, &d.RegistroID, &d.BobinaDesc,
			&d.PedidoCompra, &d.Colada, &d.Peso, &d.Ubicacion, &d.Despachada); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ListDespachos pagina el historial de líneas despachadas, más reciente primero.
func (r *PedidoRepo) ListDespachos(ctx context.Context, page, perPage int) ([]repository.DespachoHistorial, int, error) {
	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM "PEDIDO_DET" WHERE "ESTADO_DESPACHO" = true`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count despachos: %w", err)
	}

	const query = `
	SELECT c."ID_PEDIDO", c."FECHA_PEDIDO",
	       TRIM(u."NOMBRE_USUARIO" || ' ' || u."APELLIDO_USUARIO"),
	       d."REGISTROS_ID_REGISTRO", b."DESC_BOBI", r."PEDIDO_COMPRA",
	       r."COLADA", r."PESO"::float8
	FROM "PEDIDO_DET" d
	JOIN "PEDIDO_CAB" c     ON c."ID_PEDIDO"   = d."PEDIDO_CAB_ID_PEDIDO"
	JOIN "REGISTROS" r      ON r."ID_REGISTRO" = d."REGISTROS_ID_REGISTRO"
	LEFT JOIN "USUARIOS" u  ON u."ID_USUARIO"  = c."USUARIO_SOLICITA_ID"
	LEFT JOIN "BOBINA" b    ON b."ID_BOBI"     = r."BOBINA_ID_BOBI"
	WHERE d."ESTADO_DESPACHO" = true
	ORDER BY c."FECHA_PEDIDO" DESC, d."ID_PEDIDO_DET" DESC
	OFFSET $1 LIMIT $2`

	rows, err := r.db.Query(ctx, query, (page-1)*perPage, perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("list despachos: %w", err)
	}
	defer rows.Close()

	var list []repository.DespachoHistorial
	for rows.Next() {
		var h repository.DespachoHistorial
		if err := rows.Scan(&h.IDPedido, &h.FechaPedido, &h.Solicitante,
			&h.IDRegistro, &h.BobinaDesc, &h.PedidoCompra, &h.Colada, &h.Peso); err != nil {
			return nil, 0, fmt.Errorf("scan despacho: %w", err)
		}
		list = append(list, h)
	}
	return list, total, rows.Err()
}
