package repository

import (
	"context"

	"github.com/Diego-69/taller-aplicaciones/internal/domain/directory"
	"github.com/Diego-69/taller-aplicaciones/internal/domain/entity"
)

// WorkerRepository puerto de solo lectura sobre las fichas de trabajadores.
type WorkerRepository interface {
	// ListSummaries ejecuta la consulta del directorio y devuelve las filas
	// resumen en el orden del store.
	ListSummaries(ctx context.Context, q directory.Query) ([]entity.WorkerSummary, error)

	// GetDetail devuelve la ficha completa de un trabajador.
	// Devuelve (nil, nil) si el rut no existe.
	GetDetail(ctx context.Context, rut string) (*entity.WorkerDetail, error)

	// ListAreas devuelve todas las áreas ordenadas por nombre.
	ListAreas(ctx context.Context) ([]entity.Area, error)

	// ListDepartamentos devuelve los departamentos del área indicada,
	// o todos si areaID es cero. Ordenados por nombre.
	ListDepartamentos(ctx context.Context, areaID int) ([]entity.Departamento, error)
}
