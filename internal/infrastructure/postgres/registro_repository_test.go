package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BANCESQWQ/bobisfinal/internal/domain"
	"github.com/BANCESQWQ/bobisfinal/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// registroFilterWhere
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistroFilterWhere_SinFiltros(t *testing.T) {
	where, args := registroFilterWhere(repository.RegistroFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestRegistroFilterWhere_Busqueda(t *testing.T) {
	where, args := registroFilterWhere(repository.RegistroFilter{Search: "acero"})

	require.Len(t, args, 1)
	assert.Equal(t, "%acero%", args[0])
	assert.Contains(t, where, "ILIKE")
	assert.Contains(t, where, `"PEDIDO_COMPRA"`)
	assert.Contains(t, where, `"NOMBRE_PROV"`)
	assert.Contains(t, where, `"COD_BOBI"`)
}

func TestRegistroFilterWhere_BusquedaYEstado(t *testing.T) {
	estado := 1
	where, args := registroFilterWhere(repository.RegistroFilter{Search: "c-99", Estado: &estado})

	require.Len(t, args, 2)
	assert.Equal(t, "%c-99%", args[0])
	assert.Equal(t, 1, args[1])
	assert.Contains(t, where, " AND ")
	assert.Contains(t, where, `"ESTADO_ID_ESTADO" = $2`)
}

// ──────────────────────────────────────────────────────────────────────────────
// buildRegistroUpdate
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildRegistroUpdate_SoloCamposPresentes(t *testing.T) {
	query, args, err := buildRegistroUpdate(7, map[string]any{
		"colada": "C-1001",
		"peso":   float64(12500.5),
	})
	require.NoError(t, err)

	// El orden sigue el allow-list: colada antes que peso, id al final.
	assert.Equal(t, `UPDATE "REGISTROS" SET "COLADA" = $1, "PESO" = $2 WHERE "ID_REGISTRO" = $3`, query)
	assert.Equal(t, []any{"C-1001", float64(12500.5), 7}, args)
}

func TestBuildRegistroUpdate_ClavesDesconocidasSeIgnoran(t *testing.T) {
	query, args, err := buildRegistroUpdate(7, map[string]any{
		"colada":      "C-1001",
		"id_registro": 99, // la clave primaria no es actualizable
		"invento":     "x",
	})
	require.NoError(t, err)
	assert.Equal(t, `UPDATE "REGISTROS" SET "COLADA" = $1 WHERE "ID_REGISTRO" = $2`, query)
	assert.Len(t, args, 2) // colada + id del WHERE
}

func TestBuildRegistroUpdate_SinCamposReconocidos(t *testing.T) {
	_, _, err := buildRegistroUpdate(7, map[string]any{"invento": "x"})
	assert.ErrorIs(t, err, domain.ErrNoFields)
}

func TestBuildRegistroUpdate_CuerpoVacio(t *testing.T) {
	_, _, err := buildRegistroUpdate(7, map[string]any{})
	assert.ErrorIs(t, err, domain.ErrNoFields)
}

// ──────────────────────────────────────────────────────────────────────────────
// convertUpdateValue
// ──────────────────────────────────────────────────────────────────────────────

func TestConvertUpdateValue_Fechas(t *testing.T) {
	f := updatableField{key: "fecha_llegada", column: "FECHA_LLEGADA", kind: "date"}

	val, err := convertUpdateValue(f, "2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), val)

	// String vacío y nil limpian el campo
	val, err = convertUpdateValue(f, "")
	require.NoError(t, err)
	assert.Nil(t, val)

	val, err = convertUpdateValue(f, nil)
	require.NoError(t, err)
	assert.Nil(t, val)

	_, err = convertUpdateValue(f, "01/03/2026")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConvertUpdateValue_Enteros(t *testing.T) {
	f := updatableField{key: "cantidad", column: "CANTIDAD", kind: "int"}

	// JSON decodifica números como float64
	val, err := convertUpdateValue(f, float64(3))
	require.NoError(t, err)
	assert.Equal(t, 3, val)

	_, err = convertUpdateValue(f, float64(3.5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = convertUpdateValue(f, "tres")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConvertUpdateValue_Numericos(t *testing.T) {
	f := updatableField{key: "peso", column: "PESO", kind: "numeric"}

	val, err := convertUpdateValue(f, float64(12500.75))
	require.NoError(t, err)
	assert.Equal(t, float64(12500.75), val)

	_, err = convertUpdateValue(f, true)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Allow-list de tablas de gestión
// ──────────────────────────────────────────────────────────────────────────────

func TestLookupTabla_AceptaMinusculas(t *testing.T) {
	nombre, info, err := lookupTabla("barco")
	require.NoError(t, err)
	assert.Equal(t, "BARCO", nombre)
	assert.Equal(t, "ID_BARCO", info.idCol)
}

func TestLookupTabla_RechazaTablaFueraDelAllowList(t *testing.T) {
	for _, tabla := range []string{"REGISTROS", "USUARIOS", "PEDIDO_CAB", "usuarios; DROP TABLE x"} {
		_, _, err := lookupTabla(tabla)
		assert.ErrorIs(t, err, domain.ErrInvalidTable, "tabla %q no debe ser administrable", tabla)
	}
}
