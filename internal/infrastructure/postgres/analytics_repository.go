package postgres

import (
	"context"
	"fmt"

	"github.com/BANCESQWQ/bobisfinal/internal/domain/entity"
	"github.com/BANCESQWQ/bobisfinal/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	db Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(db Querier) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// GetEstadisticas devuelve los contadores globales del inventario y los
// pedidos del mes en curso. COALESCE protege el caso de inventario vacío.
func (r *AnalyticsRepo) GetEstadisticas(ctx context.Context) (*repository.EstadisticasResult, error) {
	const query = `
	SELECT COUNT(*),
	       COUNT(*) FILTER (WHERE "ESTADO_ID_ESTADO" = $1),
	       COUNT(*) FILTER (WHERE "ESTADO_ID_ESTADO" = $2),
	       COALESCE(SUM("PESO"), 0),
	       (SELECT COUNT(*) FROM "PEDIDO_CAB"
	        WHERE date_trunc('month', "FECHA_PEDIDO") = date_trunc('month', CURRENT_DATE))
	FROM "REGISTROS"`

	var res repository.EstadisticasResult
	err := r.db.QueryRow(ctx, query, entity.EstadoDisponible, entity.EstadoDespachada).Scan(
		&res.TotalBobinas, &res.BobinasDisponibles, &res.BobinasDespachadas,
		&res.PesoTotal, &res.PedidosMes,
	)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetEstadisticas: %w", err)
	}
	return &res, nil
}

// GetBobinasPopulares agrupa las líneas de pedido por tipo de bobina y
// devuelve los `limit` tipos más pedidos con su peso promedio.
func (r *AnalyticsRepo) GetBobinasPopulares(ctx context.Context, limit int) ([]repository.BobinaPopularResult, error) {
	const query = `
	SELECT COALESCE(b."DESC_BOBI", 'Sin clasificar'),
	       COUNT(*),
	       COALESCE(AVG(r."PESO"), 0)
	FROM "PEDIDO_DET" d
	JOIN "REGISTROS" r   ON r."ID_REGISTRO" = d."REGISTROS_ID_REGISTRO"
	LEFT JOIN "BOBINA" b ON b."ID_BOBI"     = r."BOBINA_ID_BOBI"
	GROUP BY b."DESC_BOBI"
	ORDER BY COUNT(*) DESC
	LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetBobinasPopulares: %w", err)
	}
	defer rows.Close()

	var results []repository.BobinaPopularResult
	for rows.Next() {
		var row repository.BobinaPopularResult
		if err := rows.Scan(&row.Bobina, &row.TotalPedidos, &row.PesoPromedio); err != nil {
			return nil, fmt.Errorf("analytics.GetBobinasPopulares scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetEstadoBobinas cuenta las bobinas por estado.
func (r *AnalyticsRepo) GetEstadoBobinas(ctx context.Context) ([]repository.EstadoBobinaResult, error) {
	const query = `
	SELECT COALESCE(e."DESC_ESTADO", 'Sin estado'), COUNT(*)
	FROM "REGISTROS" r
	LEFT JOIN "ESTADO" e ON e."ID_ESTADO" = r."ESTADO_ID_ESTADO"
	GROUP BY e."DESC_ESTADO"
	ORDER BY COUNT(*) DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetEstadoBobinas: %w", err)
	}
	defer rows.Close()

	var results []repository.EstadoBobinaResult
	for rows.Next() {
		var row repository.EstadoBobinaResult
		if err := rows.Scan(&row.Estado, &row.Cantidad); err != nil {
			return nil, fmt.Errorf("analytics.GetEstadoBobinas scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetBobinasAntiguas devuelve las bobinas disponibles con más días en
// inventario, contados desde la fecha de ingreso a planta.
func (r *AnalyticsRepo) GetBobinasAntiguas(ctx context.Context, limit int) ([]repository.BobinaAntiguaResult, error) {
	const query = `
	SELECT r."ID_REGISTRO", b."DESC_BOBI", r."FECHA_INGRESO_PLANTA", r."PESO",
	       e."DESC_ESTADO",
	       COALESCE(CURRENT_DATE - r."FECHA_INGRESO_PLANTA", 0)
	FROM "REGISTROS" r
	LEFT JOIN "BOBINA" b ON b."ID_BOBI"   = r."BOBINA_ID_BOBI"
	LEFT JOIN "ESTADO" e ON e."ID_ESTADO" = r."ESTADO_ID_ESTADO"
	WHERE r."ESTADO_ID_ESTADO" = $1
	ORDER BY r."FECHA_INGRESO_PLANTA" ASC NULLS LAST
	LIMIT $2`

	rows, err := r.db.Query(ctx, query, entity.EstadoDisponible, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetBobinasAntiguas: %w", err)
	}
	defer rows.Close()

	var results []repository.BobinaAntiguaResult
	for rows.Next() {
		var row repository.BobinaAntiguaResult
		if err := rows.Scan(&row.IDRegistro, &row.Bobina, &row.FechaIngreso,
			&row.Peso, &row.Estado, &row.DiasInventario); err != nil {
			return nil, fmt.Errorf("analytics.GetBobinasAntiguas scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetTendenciaMensual devuelve totales de pedidos y peso por mes para los
// últimos `months` meses, en orden cronológico ascendente. Esta serie
// alimenta el estimador de demanda.
func (r *AnalyticsRepo) GetTendenciaMensual(ctx context.Context, months int) ([]repository.TendenciaMensualResult, error) {
	const query = `
	SELECT to_char(c."FECHA_PEDIDO", 'YYYY-MM') AS mes,
	       COUNT(DISTINCT c."ID_PEDIDO"),
	       COALESCE(SUM(r."PESO"), 0)
	FROM "PEDIDO_CAB" c
	LEFT JOIN "PEDIDO_DET" d ON d."PEDIDO_CAB_ID_PEDIDO" = c."ID_PEDIDO"
	LEFT JOIN "REGISTROS" r  ON r."ID_REGISTRO"          = d."REGISTROS_ID_REGISTRO"
	WHERE c."FECHA_PEDIDO" >= date_trunc('month', CURRENT_DATE) - make_interval(months => $1)
	GROUP BY mes
	ORDER BY mes ASC`

	rows, err := r.db.Query(ctx, query, months)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTendenciaMensual: %w", err)
	}
	defer rows.Close()

	var results []repository.TendenciaMensualResult
	for rows.Next() {
		var row repository.TendenciaMensualResult
		if err := rows.Scan(&row.Mes, &row.TotalPedidos, &row.PesoTotal); err != nil {
			return nil, fmt.Errorf("analytics.GetTendenciaMensual scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
