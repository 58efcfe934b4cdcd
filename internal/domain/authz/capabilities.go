// Package authz concentra la política rol → capacidades en una sola tabla.
// La UI original decidía esto comparando strings de rol en cada acción; aquí
// se consulta una vez por sesión y el resto del sistema solo pregunta Has().
package authz

import "github.com/Diego-69/taller-aplicaciones/internal/domain/entity"

// Capability es un permiso con nombre otorgado por rol.
type Capability string

const (
	// CapDirectorySearch habilita el listado de trabajadores activos.
	CapDirectorySearch Capability = "directory_search"
	// CapSelfView habilita ver la ficha propia (scoped al rut asociado).
	CapSelfView Capability = "self_view"

	// Filtros del directorio, uno por campo.
	CapFilterSexo         Capability = "filter_sexo"
	CapFilterCargo        Capability = "filter_cargo"
	CapFilterArea         Capability = "filter_area"
	CapFilterDepartamento Capability = "filter_departamento"
)

// CapabilitySet conjunto de capacidades otorgadas a una sesión.
type CapabilitySet map[Capability]struct{}

// Has informa si la capacidad está otorgada.
func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// roleCapabilities es la política del sistema. Se preserva la asimetría de la
// aplicación original: admin y rrhh ven el listado completo pero NO pueden
// acotarlo; solo jefe_rrhh recibe los filtros.
var roleCapabilities = map[string][]Capability{
	entity.RoleAdmin: {CapDirectorySearch},
	entity.RoleJefeRRHH: {
		CapDirectorySearch,
		CapFilterSexo, CapFilterCargo, CapFilterArea, CapFilterDepartamento,
	},
	entity.RoleRRHH:       {CapDirectorySearch},
	entity.RoleTrabajador: {CapSelfView},
}

// CapabilitiesFor devuelve el conjunto de capacidades del rol. Función pura:
// mismo rol, mismo resultado. Un rol desconocido recibe el conjunto vacío
// (cerrado por defecto).
func CapabilitiesFor(role string) CapabilitySet {
	caps, ok := roleCapabilities[role]
	if !ok {
		return CapabilitySet{}
	}
	set := make(CapabilitySet, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}
