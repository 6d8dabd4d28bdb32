package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/BANCESQWQ/bobisfinal/internal/domain"
	"github.com/BANCESQWQ/bobisfinal/internal/domain/entity"
	"github.com/BANCESQWQ/bobisfinal/internal/domain/repository"
)

var _ repository.RegistroRepository = (*RegistroRepo)(nil)

// RegistroRepo implementación del puerto RegistroRepository sobre PostgreSQL.
type RegistroRepo struct {
	db Querier
}

// NewRegistroRepository construye el adaptador; acepta el pool o una tx.
func NewRegistroRepository(db Querier) *RegistroRepo {
	return &RegistroRepo{db: db}
}

// registroSelect columnas del listado con sus seis LEFT JOIN. Las FKs del
// registro son anulables, por eso nunca INNER JOIN.
const registroSelect = `
	SELECT r."ID_REGISTRO", r."FECHA_LLEGADA", r."PEDIDO_COMPRA", r."COLADA",
	       r."PESO", r."CANTIDAD", r."LOTE", r."FECHA_INVENTARIO",
	       r."OBSERVACIONES", r."TCN_PEDIDO_COMPRA", r."FECHA_INGRESO_PLANTA",
	       r."N_BOBI_PROVEEDOR", r."BOBI_CORRELATIVO", r."COD_BOBIN2",
	       r."BOBINA_ID_BOBI", r."PROVEEDOR_ID_PROV", r."BARCO_ID_BARCO",
	       r."UBICACION_ID_UBI", r."ESTADO_ID_ESTADO", r."MOLINO_ID_MOLINO",
	       b."DESC_BOBI", pr."NOMBRE_PROV", ba."NOMBRE_BARCO",
	       u."DESC_UBI", e."DESC_ESTADO", m."NOMBRE_MOLINO"
	FROM "REGISTROS" r
	LEFT JOIN "BOBINA"      b  ON b."ID_BOBI"     = r."BOBINA_ID_BOBI"
	LEFT JOIN "PROVEEDOR"   pr ON pr."ID_PROV"    = r."PROVEEDOR_ID_PROV"
	LEFT JOIN "BARCO"       ba ON ba."ID_BARCO"   = r."BARCO_ID_BARCO"
	LEFT JOIN "UBICACION"   u  ON u."ID_UBI"      = r."UBICACION_ID_UBI"
	LEFT JOIN "ESTADO"      e  ON e."ID_ESTADO"   = r."ESTADO_ID_ESTADO"
	LEFT JOIN "MOLINO"      m  ON m."ID_MOLINO"   = r."MOLINO_ID_MOLINO"`

const registroCountSelect = `
	SELECT COUNT(*)
	FROM "REGISTROS" r
	LEFT JOIN "BOBINA"    b  ON b."ID_BOBI"  = r."BOBINA_ID_BOBI"
	LEFT JOIN "PROVEEDOR" pr ON pr."ID_PROV" = r."PROVEEDOR_ID_PROV"`

// registroFilterWhere construye la cláusula WHERE compartida por el listado y
// el COUNT. La búsqueda es una disyunción ILIKE sobre pedido de compra,
// colada, observaciones, proveedor y descripción/código de bobina.
func registroFilterWhere(f repository.RegistroFilter) (string, []any) {
	var conds []string
	var args []any

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(`(r."PEDIDO_COMPRA" ILIKE $%d OR r."COLADA" ILIKE $%d OR r."OBSERVACIONES" ILIKE $%d OR pr."NOMBRE_PROV" ILIKE $%d OR b."DESC_BOBI" ILIKE $%d OR b."COD_BOBI" ILIKE $%d)`, n, n, n, n, n, n))
	}
	if f.Estado != nil {
		args = append(args, *f.Estado)
		conds = append(conds, fmt.Sprintf(`r."ESTADO_ID_ESTADO" = $%d`, len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List devuelve la página de registros y el total que cumple el filtro.
// Orden canónico: fecha de llegada ascendente, id como desempate.
func (r *RegistroRepo) List(ctx context.Context, f repository.RegistroFilter) ([]*entity.Registro, int, error) {
	where, args := registroFilterWhere(f)

	var total int
	if err := r.db.QueryRow(ctx, registroCountSelect+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count registros: %w", err)
	}

	query := registroSelect + where +
		fmt.Sprintf(` ORDER BY r."FECHA_LLEGADA" ASC, r."ID_REGISTRO" ASC OFFSET $%d LIMIT $%d`, len(args)+1, len(args)+2)
	args = append(args, f.Offset(), f.PerPage)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list registros: %w", err)
	}
	defer rows.Close()

	var list []*entity.Registro
	for rows.Next() {
		reg, err := scanRegistro(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan registro: %w", err)
		}
		list = append(list, reg)
	}
	return list, total, rows.Err()
}

// GetByID devuelve nil, nil si el registro no existe.
func (r *RegistroRepo) GetByID(ctx context.Context, id int) (*entity.Registro, error) {
	row := r.db.QueryRow(ctx, registroSelect+` WHERE r."ID_REGISTRO" = $1`, id)
	reg, err := scanRegistro(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get registro %d: %w", id, err)
	}
	return reg, nil
}

func scanRegistro(row pgx.Row) (*entity.Registro, error) {
	var reg entity.Registro
	err := row.Scan(
		&reg.IDRegistro, &reg.FechaLlegada, &reg.PedidoCompra, &reg.Colada,
		&reg.Peso, &reg.Cantidad, &reg.Lote, &reg.FechaInventario,
		&reg.Observaciones, &reg.TcnPedidoCompra, &reg.FechaIngresoPlanta,
		&reg.NBobiProveedor, &reg.BobiCorrelativo, &reg.CodBobin2,
		&reg.BobinaID, &reg.ProveedorID, &reg.BarcoID,
		&reg.UbicacionID, &reg.EstadoID, &reg.MolinoID,
		&reg.BobinaNombre, &reg.ProveedorNombre, &reg.BarcoNombre,
		&reg.UbicacionNombre, &reg.EstadoNombre, &reg.MolinoNombre,
	)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// Create inserta un registro y devuelve el id generado.
func (r *RegistroRepo) Create(ctx context.Context, reg *entity.Registro) (int, error) {
	const query = `
		INSERT INTO "REGISTROS" (
			"FECHA_LLEGADA", "PEDIDO_COMPRA", "COLADA", "PESO", "CANTIDAD",
			"LOTE", "FECHA_INVENTARIO", "OBSERVACIONES", "TCN_PEDIDO_COMPRA",
			"FECHA_INGRESO_PLANTA", "N_BOBI_PROVEEDOR", "BOBI_CORRELATIVO",
			"COD_BOBIN2", "BOBINA_ID_BOBI", "PROVEEDOR_ID_PROV",
			"BARCO_ID_BARCO", "UBICACION_ID_UBI", "ESTADO_ID_ESTADO",
			"MOLINO_ID_MOLINO"
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING "ID_REGISTRO"`

	var id int
	err := r.db.QueryRow(ctx, query,
		reg.FechaLlegada, reg.PedidoCompra, reg.Colada, reg.Peso, reg.Cantidad,
		reg.Lote, reg.FechaInventario, reg.Observaciones, reg.TcnPedidoCompra,
		reg.FechaIngresoPlanta, reg.NBobiProveedor, reg.BobiCorrelativo,
		reg.CodBobin2, reg.BobinaID, reg.ProveedorID,
		reg.BarcoID, reg.UbicacionID, reg.EstadoID,
		reg.MolinoID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert registro: %w", err)
	}
	return id, nil
}

// updatableField campo admitido en la actualización parcial.
type updatableField struct {
	key    string // clave JSON
	column string // columna del esquema
	kind   string // date, text, numeric, int
}

// registroUpdatables allow-list de campos actualizables. Claves fuera de esta
// lista se ignoran en silencio; el orden fijo hace determinista el SQL.
var registroUpdatables = []updatableField{
	{"fecha_llegada", "FECHA_LLEGADA", "date"},
	{"pedido_compra", "PEDIDO_COMPRA", "text"},
	{"colada", "COLADA", "text"},
	{"peso", "PESO", "numeric"},
	{"cantidad", "CANTIDAD", "int"},
	{"lote", "LOTE", "int"},
	{"fecha_inventario", "FECHA_INVENTARIO", "date"},
	{"observaciones", "OBSERVACIONES", "text"},
	{"tcn_pedido_compra", "TCN_PEDIDO_COMPRA", "numeric"},
	{"fecha_ingreso_planta", "FECHA_INGRESO_PLANTA", "date"},
	{"n_bobi_proveedor", "N_BOBI_PROVEEDOR", "text"},
	{"bobi_correlativo", "BOBI_CORRELATIVO", "text"},
	{"cod_bobin2", "COD_BOBIN2", "text"},
	{"bobina_id_bobi", "BOBINA_ID_BOBI", "int"},
	{"proveedor_id_prov", "PROVEEDOR_ID_PROV", "int"},
	{"barco_id_barco", "BARCO_ID_BARCO", "int"},
	{"ubicacion_id_ubi", "UBICACION_ID_UBI", "int"},
	{"estado_id_estado", "ESTADO_ID_ESTADO", "int"},
	{"molino_id_molino", "MOLINO_ID_MOLINO", "int"},
}

// buildRegistroUpdate arma la sentencia UPDATE con solo los campos presentes
// en fields. Devuelve domain.ErrNoFields si ningún campo es reconocido.
func buildRegistroUpdate(id int, fields map[string]any) (string, []any, error) {
	var sets []string
	var args []any

	for _, f := range registroUpdatables {
		raw, ok := fields[f.key]
		if !ok {
			continue
		}
		val, err := convertUpdateValue(f, raw)
		if err != nil {
			return "", nil, err
		}
		args = append(args, val)
		sets = append(sets, fmt.Sprintf(`"%s" = $%d`, f.column, len(args)))
	}
	if len(sets) == 0 {
		return "", nil, domain.ErrNoFields
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE "REGISTROS" SET %s WHERE "ID_REGISTRO" = $%d`,
		strings.Join(sets, ", "), len(args))
	return query, args, nil
}

// convertUpdateValue normaliza el valor JSON al tipo de la columna.
// nil y string vacío limpian el campo (NULL), igual que el backend original.
func convertUpdateValue(f updatableField, raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	switch f.kind {
	case "date":
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s debe ser una fecha YYYY-MM-DD", domain.ErrInvalidInput, f.key)
		}
		if s == "" {
			return nil, nil
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: fecha inválida", domain.ErrInvalidInput, f.key)
		}
		return t, nil
	case "numeric":
		switch v := raw.(type) {
		case float64:
			return v, nil
		case string:
			if v == "" {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: %s debe ser numérico", domain.ErrInvalidInput, f.key)
		default:
			return nil, fmt.Errorf("%w: %s debe ser numérico", domain.ErrInvalidInput, f.key)
		}
	case "int":
		switch v := raw.(type) {
		case float64:
			if v != math.Trunc(v) {
				return nil, fmt.Errorf("%w: %s debe ser entero", domain.ErrInvalidInput, f.key)
			}
			return int(v), nil
		case string:
			if v == "" {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: %s debe ser entero", domain.ErrInvalidInput, f.key)
		default:
			return nil, fmt.Errorf("%w: %s debe ser entero", domain.ErrInvalidInput, f.key)
		}
	default: // text
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s debe ser texto", domain.ErrInvalidInput, f.key)
		}
		return s, nil
	}
}

// UpdatePartial aplica un parche parcial: solo los campos presentes cambian.
// Una sola sentencia UPDATE, así que el parche es atómico.
func (r *RegistroRepo) UpdatePartial(ctx context.Context, id int, fields map[string]any) error {
	query, args, err := buildRegistroUpdate(id, fields)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: referencia inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("update registro %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateEstado cambia el estado de todos los ids en una sola sentencia.
func (r *RegistroRepo) UpdateEstado(ctx context.Context, ids []int, estadoID int) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE "REGISTROS" SET "ESTADO_ID_ESTADO" = $1 WHERE "ID_REGISTRO" = ANY($2)`,
		estadoID, ids)
	if err != nil {
		return 0, fmt.Errorf("update estado registros: %w", err)
	}
	return tag.RowsAffected(), nil
}

// MarcarDespachada pasa el registro a estado Despachada. Se invoca dentro de
// la transacción de creación de pedido; si el id no existe la transacción
// completa se revierte.
func (r *RegistroRepo) MarcarDespachada(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE "REGISTROS" SET "ESTADO_ID_ESTADO" = $1 WHERE "ID_REGISTRO" = $2`,
		entity.EstadoDespachada, id)
	if err != nil {
		return fmt.Errorf("marcar despachada %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("registro %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
