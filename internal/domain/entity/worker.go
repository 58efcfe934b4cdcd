package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkerSummary es la fila del directorio de trabajadores activos
// (trabajador JOIN datos_laborales). Solo lectura.
type WorkerSummary struct {
	RUT    string
	Nombre string
	Sexo   string // Masculino | Femenino
	Cargo  string
}

// WorkerDetail es la ficha completa de un trabajador: datos personales,
// laborales, contactos de emergencia y cargas familiares.
type WorkerDetail struct {
	Personal   WorkerPersonal
	Laboral    WorkerLaboral
	Emergencia []EmergencyContact
	Cargas     []FamilyDependent
}

// WorkerPersonal datos personales del trabajador.
type WorkerPersonal struct {
	RUT             string
	Nombre          string
	Sexo            string
	Direccion       string
	Telefono        string
	FechaNacimiento time.Time
	Email           string
}

// WorkerLaboral datos del contrato vigente.
type WorkerLaboral struct {
	Cargo          string
	FechaIngreso   time.Time
	AreaID         int
	DepartamentoID int
	SueldoBase     decimal.Decimal // NUMERIC en DB, via codec pgx-shopspring-decimal
	Estado         string          // activo | baja
}

// EmergencyContact contacto de emergencia declarado por el trabajador.
type EmergencyContact struct {
	Nombre   string
	Relacion string
	Telefono string
}

// FamilyDependent carga familiar del trabajador.
type FamilyDependent struct {
	Nombre     string
	Parentesco string
	Sexo       string
	RUT        string
}

// Area unidad organizacional mayor.
type Area struct {
	ID     int
	Nombre string
}

// Departamento pertenece a exactamente un área.
type Departamento struct {
	ID     int
	AreaID int
	Nombre string
}
