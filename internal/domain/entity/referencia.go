package entity

// Opcion es un par id/nombre de una tabla de referencia, usado por los
// combos del frontend (bobinas, proveedores, barcos, ubicaciones, estados,
// molinos).
type Opcion struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// OpcionesCombos agrupa las opciones de los seis combos del formulario de
// ingreso de bobinas.
type OpcionesCombos struct {
	Bobinas     []Opcion `json:"bobinas"`
	Proveedores []Opcion `json:"proveedores"`
	Barcos      []Opcion `json:"barcos"`
	Ubicaciones []Opcion `json:"ubicaciones"`
	Estados     []Opcion `json:"estados"`
	Molinos     []Opcion `json:"molinos"`
}
