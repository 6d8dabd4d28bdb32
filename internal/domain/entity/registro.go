package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de bobina (tabla ESTADO).
const (
	EstadoDisponible = 1
	EstadoDespachada = 2
)

// Registro es el registro de llegada/inventario de una bobina, la entidad
// central del sistema. Todas las FKs son anulables: los datos de referencia
// pueden estar incompletos al momento del ingreso.
type Registro struct {
	IDRegistro         int
	FechaLlegada       *time.Time
	PedidoCompra       *string
	Colada             *string
	Peso               *decimal.Decimal
	Cantidad           *int
	Lote               *int
	FechaInventario    *time.Time
	Observaciones      *string
	TcnPedidoCompra    *decimal.Decimal
	FechaIngresoPlanta *time.Time
	NBobiProveedor     *string
	BobiCorrelativo    *string
	CodBobin2          *string
	BobinaID           *int
	ProveedorID        *int
	BarcoID            *int
	UbicacionID        *int
	EstadoID           *int
	MolinoID           *int

	// Nombres de las relaciones (LEFT JOIN en el listado; nil si la FK es nula)
	BobinaNombre    *string
	ProveedorNombre *string
	BarcoNombre     *string
	UbicacionNombre *string
	EstadoNombre    *string
	MolinoNombre    *string
}
