package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/BANCESQWQ/bobisfinal/internal/domain"
	"github.com/BANCESQWQ/bobisfinal/internal/domain/entity"
	"github.com/BANCESQWQ/bobisfinal/internal/domain/repository"
)

var _ repository.GestionRepository = (*GestionRepo)(nil)

// tablaGestion describe una tabla de referencia administrable: su columna id
// y las columnas que acepta el INSERT. El registro reemplaza el despacho
// dinámico por nombre de tabla del backend original.
type tablaGestion struct {
	idCol   string
	columns []string
}

// tablasGestion allow-list de tablas administrables. Cualquier otra tabla
// (incluida BOBINA, que se administra por otro canal) falla con ErrInvalidTable.
var tablasGestion = map[string]tablaGestion{
	"UBICACION":   {idCol: "ID_UBI", columns: []string{"DESC_UBI"}},
	"BARCO":       {idCol: "ID_BARCO", columns: []string{"NOMBRE_BARCO"}},
	"MOLINO":      {idCol: "ID_MOLINO", columns: []string{"NOMBRE_MOLINO", "PROCEDENCIA_ID_PROCED"}},
	"PROVEEDOR":   {idCol: "ID_PROV", columns: []string{"NOMBRE_PROV"}},
	"ESTADO":      {idCol: "ID_ESTADO", columns: []string{"DESC_ESTADO"}},
	"PROCEDENCIA": {idCol: "ID_PROCED", columns: []string{"DESC_PROCED"}},
}

// GestionRepo CRUD genérico sobre las tablas de referencia del allow-list.
type GestionRepo struct {
	db Querier
}

// NewGestionRepository construye el adaptador; acepta el pool o una tx.
func NewGestionRepository(db Querier) *GestionRepo {
	return &GestionRepo{db: db}
}

func lookupTabla(tabla string) (string, tablaGestion, error) {
	nombre := strings.ToUpper(tabla)
	info, ok := tablasGestion[nombre]
	if !ok {
		return "", tablaGestion{}, fmt.Errorf("%q: %w", tabla, domain.ErrInvalidTable)
	}
	return nombre, info, nil
}

func quoteCols(cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = `"` + c + `"`
	}
	return strings.Join(quoted, ", ")
}

// List devuelve todas las filas de la tabla con las claves de columna en
// mayúsculas tal cual el esquema; los valores temporales van como ISO-8601.
func (r *GestionRepo) List(ctx context.Context, tabla string) ([]map[string]any, error) {
	nombre, info, err := lookupTabla(tabla)
	if err != nil {
		return nil, err
	}

	cols := append([]string{info.idCol}, info.columns...)
	query := fmt.Sprintf(`SELECT %s FROM "%s" ORDER BY "%s"`, quoteCols(cols), nombre, info.idCol)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", nombre, err)
	}
	defer rows.Close()

	// Lista vacía, nunca nil: una tabla sin filas debe serializar como [].
	out := []map[string]any{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", nombre, err)
		}
		fila := make(map[string]any, len(cols))
		for i, col := range cols {
			fila[col] = isoValue(values[i])
		}
		out = append(out, fila)
	}
	return out, rows.Err()
}

// Insert crea una fila con los campos reconocidos por la tabla y devuelve la
// fila creada. Claves desconocidas se ignoran.
func (r *GestionRepo) Insert(ctx context.Context, tabla string, fields map[string]any) (map[string]any, error) {
	nombre, info, err := lookupTabla(tabla)
	if err != nil {
		return nil, err
	}

	var cols []string
	var args []any
	for _, col := range info.columns {
		val, ok := fields[col]
		if !ok {
			// tolerar clave en minúsculas
			val, ok = fields[strings.ToLower(col)]
		}
		if !ok {
			continue
		}
		cols = append(cols, col)
		args = append(args, val)
	}
	if len(cols) == 0 {
		return nil, domain.ErrNoFields
	}

	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	returning := append([]string{info.idCol}, info.columns...)
	query := fmt.Sprintf(`INSERT INTO "%s" (%s) VALUES (%s) RETURNING %s`,
		nombre, quoteCols(cols), strings.Join(placeholders, ", "), quoteCols(returning))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", nombre, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("insert %s: %w", nombre, err)
		}
		return nil, fmt.Errorf("insert %s: sin fila de retorno", nombre)
	}
	values, err := rows.Values()
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", nombre, err)
	}
	fila := make(map[string]any, len(returning))
	for i, col := range returning {
		fila[col] = isoValue(values[i])
	}
	return fila, nil
}

// Delete elimina por id.
func (r *GestionRepo) Delete(ctx context.Context, tabla string, id int) error {
	nombre, info, err := lookupTabla(tabla)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx,
		fmt.Sprintf(`DELETE FROM "%s" WHERE "%s" = $1`, nombre, info.idCol), id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", nombre, id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Opciones carga los pares id/nombre de los seis combos del formulario de
// ingreso de bobinas.
func (r *GestionRepo) Opciones(ctx context.Context) (*entity.OpcionesCombos, error) {
	out := &entity.OpcionesCombos{}
	combos := []struct {
		query string
		dest  *[]entity.Opcion
	}{
		{`SELECT "ID_BOBI", COALESCE("DESC_BOBI", '') FROM "BOBINA" ORDER BY "DESC_BOBI"`, &out.Bobinas},
		{`SELECT "ID_PROV", COALESCE("NOMBRE_PROV", '') FROM "PROVEEDOR" ORDER BY "NOMBRE_PROV"`, &out.Proveedores},
		{`SELECT "ID_BARCO", COALESCE("NOMBRE_BARCO", '') FROM "BARCO" ORDER BY "NOMBRE_BARCO"`, &out.Barcos},
		{`SELECT "ID_UBI", COALESCE("DESC_UBI", '') FROM "UBICACION" ORDER BY "DESC_UBI"`, &out.Ubicaciones},
		{`SELECT "ID_ESTADO", COALESCE("DESC_ESTADO", '') FROM "ESTADO" ORDER BY "ID_ESTADO"`, &out.Estados},
		{`SELECT "ID_MOLINO", COALESCE("NOMBRE_MOLINO", '') FROM "MOLINO" ORDER BY "NOMBRE_MOLINO"`, &out.Molinos},
	}

	for _, c := range combos {
		opciones, err := r.queryOpciones(ctx, c.query)
		if err != nil {
			return nil, err
		}
		*c.dest = opciones
	}
	return out, nil
}

func (r *GestionRepo) queryOpciones(ctx context.Context, query string) ([]entity.Opcion, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("opciones: %w", err)
	}
	defer rows.Close()

	opciones := []entity.Opcion{}
	for rows.Next() {
		var o entity.Opcion
		if err := rows.Scan(&o.ID, &o.Nombre); err != nil {
			return nil, fmt.Errorf("opciones scan: %w", err)
		}
		opciones = append(opciones, o)
	}
	return opciones, rows.Err()
}
