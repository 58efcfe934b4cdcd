package directory

import (
	"context"

	"github.com/Diego-69/taller-aplicaciones/internal/domain/entity"
)

// FichaPDFGenerator puerto de generación de la ficha del trabajador en PDF.
// Los mapas id → nombre de áreas y departamentos permiten imprimir nombres
// legibles sin que el generador toque la base de datos.
type FichaPDFGenerator interface {
	GenerateFichaPDF(ctx context.Context, detail *entity.WorkerDetail, areas, departamentos map[int]string) ([]byte, error)
}
