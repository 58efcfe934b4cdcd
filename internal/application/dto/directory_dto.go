package dto

import "time"

// DirectoryFilter filtros opcionales del directorio. Cada campo ausente
// (valor cero) significa "sin restricción".
type DirectoryFilter struct {
	Sexo           string `query:"sexo"`
	Cargo          string `query:"cargo"`
	AreaID         int    `query:"area_id"`
	DepartamentoID int    `query:"departamento_id"`
}

// WorkerSummaryResponse fila del directorio de trabajadores activos.
type WorkerSummaryResponse struct {
	RUT    string `json:"rut"`
	Nombre string `json:"nombre"`
	Sexo   string `json:"sexo"`
	Cargo  string `json:"cargo"`
}

// WorkerDetailResponse ficha completa de un trabajador.
type WorkerDetailResponse struct {
	Personal   WorkerPersonalResponse     `json:"personal"`
	Laboral    WorkerLaboralResponse      `json:"laboral"`
	Emergencia []EmergencyContactResponse `json:"contactos_emergencia"`
	Cargas     []FamilyDependentResponse  `json:"cargas_familiares"`
}

// WorkerPersonalResponse datos personales de la ficha.
type WorkerPersonalResponse struct {
	RUT             string    `json:"rut"`
	Nombre          string    `json:"nombre"`
	Sexo            string    `json:"sexo"`
	Direccion       string    `json:"direccion"`
	Telefono        string    `json:"telefono"`
	FechaNacimiento time.Time `json:"fecha_nacimiento"`
	Email           string    `json:"email"`
}

// WorkerLaboralResponse datos laborales de la ficha. SueldoBase se serializa
// como string para no perder precisión decimal en JSON.
type WorkerLaboralResponse struct {
	Cargo          string    `json:"cargo"`
	FechaIngreso   time.Time `json:"fecha_de_ingreso"`
	AreaID         int       `json:"area_id"`
	DepartamentoID int       `json:"departamento_id"`
	SueldoBase     string    `json:"sueldo_base"`
}

// EmergencyContactResponse contacto de emergencia en la ficha.
type EmergencyContactResponse struct {
	Nombre   string `json:"nombre"`
	Relacion string `json:"relacion"`
	Telefono string `json:"telefono"`
}

// FamilyDependentResponse carga familiar en la ficha.
type FamilyDependentResponse struct {
	Nombre     string `json:"nombre"`
	Parentesco string `json:"parentesco"`
	Sexo       string `json:"sexo"`
	RUT        string `json:"rut"`
}

// AreaResponse área organizacional para poblar el control de filtro.
type AreaResponse struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// DepartamentoResponse departamento, siempre perteneciente a un área.
type DepartamentoResponse struct {
	ID     int    `json:"id"`
	AreaID int    `json:"area_id"`
	Nombre string `json:"nombre"`
}
