// Package directory construye la consulta del directorio de trabajadores.
// La versión original armaba fragmentos SQL y parámetros en listas paralelas;
// aquí cada cláusula viaja junto a su valor en un Predicate tipado, y el
// adaptador de persistencia los traduce a SQL sin riesgo de desfase posicional.
package directory

import "github.com/Diego-69/taller-aplicaciones/internal/domain/authz"

// Field campo sobre el que aplica un predicado.
type Field string

const (
	FieldEstado        Field = "estado"
	FieldSexo          Field = "sexo"
	FieldCargo         Field = "cargo"
	FieldArea          Field = "area_id"
	FieldDepartamento  Field = "departamento_id"
)

// Op operador del predicado.
type Op string

const (
	// OpEquals igualdad exacta.
	OpEquals Op = "="
	// OpContains substring case-insensitive (ILIKE %valor%).
	OpContains Op = "contains"
)

// Predicate una cláusula AND con su valor ligado.
type Predicate struct {
	Field Field
	Op    Op
	Value any
}

// Filter selección de filtros enviada por la capa de presentación.
// El valor cero de cada campo significa "sin restricción", no "igual a vacío".
type Filter struct {
	Sexo           string
	Cargo          string
	AreaID         int
	DepartamentoID int
}

// Query descripción ejecutable: predicados en orden, conjuntados con AND.
// El builder no hace I/O; ejecutar la consulta es trabajo del record store.
type Query struct {
	predicates []Predicate
}

// Predicates devuelve los predicados en el orden en que se acumularon.
// El primero es siempre el predicado base estado = activo.
func (q Query) Predicates() []Predicate {
	return q.predicates
}

// Build compone la consulta del directorio: parte del predicado base
// "trabajadores con contrato activo" y agrega cada filtro solicitado SOLO si
// la capacidad correspondiente está otorgada. Un filtro sin permiso se
// descarta en silencio, igual que la UI original simplemente no ofrecía el
// control al rol sin privilegio.
//
// Nota: no se valida que DepartamentoID pertenezca a AreaID; mantener ambos
// consistentes es responsabilidad del caller.
func Build(f Filter, caps authz.CapabilitySet) Query {
	q := Query{predicates: []Predicate{
		{Field: FieldEstado, Op: OpEquals, Value: "activo"},
	}}

	if f.Sexo != "" && caps.Has(authz.CapFilterSexo) {
		q.predicates = append(q.predicates, Predicate{Field: FieldSexo, Op: OpEquals, Value: f.Sexo})
	}
	if f.Cargo != "" && caps.Has(authz.CapFilterCargo) {
		q.predicates = append(q.predicates, Predicate{Field: FieldCargo, Op: OpContains, Value: f.Cargo})
	}
	if f.AreaID != 0 && caps.Has(authz.CapFilterArea) {
		q.predicates = append(q.predicates, Predicate{Field: FieldArea, Op: OpEquals, Value: f.AreaID})
	}
	if f.DepartamentoID != 0 && caps.Has(authz.CapFilterDepartamento) {
		q.predicates = append(q.predicates, Predicate{Field: FieldDepartamento, Op: OpEquals, Value: f.DepartamentoID})
	}
	return q
}
