package directory

import (
	"context"
	"fmt"

	"github.com/Diego-69/taller-aplicaciones/internal/application/dto"
	"github.com/Diego-69/taller-aplicaciones/internal/domain"
	"github.com/Diego-69/taller-aplicaciones/internal/domain/authz"
	dirquery "github.com/Diego-69/taller-aplicaciones/internal/domain/directory"
	"github.com/Diego-69/taller-aplicaciones/internal/domain/entity"
	"github.com/Diego-69/taller-aplicaciones/internal/domain/repository"
)

// DirectoryUseCase operaciones de consulta sobre fichas de trabajadores:
// directorio de activos (roles de gestión) y ficha propia (trabajador).
type DirectoryUseCase struct {
	workerRepo repository.WorkerRepository
	fichaPDF   FichaPDFGenerator
}

// NewDirectoryUseCase construye el caso de uso del directorio.
func NewDirectoryUseCase(workerRepo repository.WorkerRepository, fichaPDF FichaPDFGenerator) *DirectoryUseCase {
	return &DirectoryUseCase{workerRepo: workerRepo, fichaPDF: fichaPDF}
}

// ListDirectory devuelve el directorio de trabajadores activos aplicando los
// filtros que el rol de la sesión tiene permitidos. Un filtro solicitado sin
// capacidad no es error: se ignora (ver directory.Build). Sin la capacidad de
// búsqueda la operación completa se rechaza con ErrUnauthorized.
func (uc *DirectoryUseCase) ListDirectory(ctx context.Context, session entity.Session, f dto.DirectoryFilter) ([]dto.WorkerSummaryResponse, error) {
	caps := authz.CapabilitiesFor(session.Role)
	if !caps.Has(authz.CapDirectorySearch) {
		return nil, domain.ErrUnauthorized
	}

	q := dirquery.Build(dirquery.Filter{
		Sexo:           f.Sexo,
		Cargo:          f.Cargo,
		AreaID:         f.AreaID,
		DepartamentoID: f.DepartamentoID,
	}, caps)

	rows, err := uc.workerRepo.ListSummaries(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: listado de trabajadores: %v", domain.ErrStoreUnavailable, err)
	}

	out := make([]dto.WorkerSummaryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.WorkerSummaryResponse{
			RUT:    r.RUT,
			Nombre: r.Nombre,
			Sexo:   r.Sexo,
			Cargo:  r.Cargo,
		})
	}
	return out, nil
}

// GetOwnRecord devuelve la ficha del trabajador asociado a la sesión.
// Requiere la capacidad de vista propia; una sesión sin rut asociado se
// rechaza con ErrNoLinkedRecord.
func (uc *DirectoryUseCase) GetOwnRecord(ctx context.Context, session entity.Session) (*dto.WorkerDetailResponse, error) {
	detail, err := uc.ownDetail(ctx, session)
	if err != nil {
		return nil, err
	}
	return toDetailResponse(detail), nil
}

// OwnFichaPDF genera la ficha propia como PDF descargable.
func (uc *DirectoryUseCase) OwnFichaPDF(ctx context.Context, session entity.Session) ([]byte, error) {
	detail, err := uc.ownDetail(ctx, session)
	if err != nil {
		return nil, err
	}

	areas, err := uc.workerRepo.ListAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listado de áreas: %v", domain.ErrStoreUnavailable, err)
	}
	deptos, err := uc.workerRepo.ListDepartamentos(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: listado de departamentos: %v", domain.ErrStoreUnavailable, err)
	}

	areaNames := make(map[int]string, len(areas))
	for _, a := range areas {
		areaNames[a.ID] = a.Nombre
	}
	deptoNames := make(map[int]string, len(deptos))
	for _, d := range deptos {
		deptoNames[d.ID] = d.Nombre
	}

	pdf, err := uc.fichaPDF.GenerateFichaPDF(ctx, detail, areaNames, deptoNames)
	if err != nil {
		return nil, fmt.Errorf("generar ficha PDF: %w", err)
	}
	return pdf, nil
}

// ListAreas devuelve las áreas para poblar los controles de filtro.
func (uc *DirectoryUseCase) ListAreas(ctx context.Context) ([]dto.AreaResponse, error) {
	areas, err := uc.workerRepo.ListAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listado de áreas: %v", domain.ErrStoreUnavailable, err)
	}
	out := make([]dto.AreaResponse, 0, len(areas))
	for _, a := range areas {
		out = append(out, dto.AreaResponse{ID: a.ID, Nombre: a.Nombre})
	}
	return out, nil
}

// ListDepartamentos devuelve los departamentos, opcionalmente acotados a un
// área (areaID cero = todos).
func (uc *DirectoryUseCase) ListDepartamentos(ctx context.Context, areaID int) ([]dto.DepartamentoResponse, error) {
	deptos, err := uc.workerRepo.ListDepartamentos(ctx, areaID)
	if err != nil {
		return nil, fmt.Errorf("%w: listado de departamentos: %v", domain.ErrStoreUnavailable, err)
	}
	out := make([]dto.DepartamentoResponse, 0, len(deptos))
	for _, d := range deptos {
		out = append(out, dto.DepartamentoResponse{ID: d.ID, AreaID: d.AreaID, Nombre: d.Nombre})
	}
	return out, nil
}

func (uc *DirectoryUseCase) ownDetail(ctx context.Context, session entity.Session) (*entity.WorkerDetail, error) {
	caps := authz.CapabilitiesFor(session.Role)
	if !caps.Has(authz.CapSelfView) {
		return nil, domain.ErrUnauthorized
	}
	if session.WorkerRUT == "" {
		return nil, domain.ErrNoLinkedRecord
	}

	detail, err := uc.workerRepo.GetDetail(ctx, session.WorkerRUT)
	if err != nil {
		return nil, fmt.Errorf("%w: ficha de trabajador: %v", domain.ErrStoreUnavailable, err)
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return detail, nil
}

func toDetailResponse(d *entity.WorkerDetail) *dto.WorkerDetailResponse {
	out := &dto.WorkerDetailResponse{
		Personal: dto.WorkerPersonalResponse{
			RUT:             d.Personal.RUT,
			Nombre:          d.Personal.Nombre,
			Sexo:            d.Personal.Sexo,
			Direccion:       d.Personal.Direccion,
			Telefono:        d.Personal.Telefono,
			FechaNacimiento: d.Personal.FechaNacimiento,
			Email:           d.Personal.Email,
		},
		Laboral: dto.WorkerLaboralResponse{
			Cargo:          d.Laboral.Cargo,
			FechaIngreso:   d.Laboral.FechaIngreso,
			AreaID:         d.Laboral.AreaID,
			DepartamentoID: d.Laboral.DepartamentoID,
			SueldoBase:     d.Laboral.SueldoBase.String(),
		},
		Emergencia: make([]dto.EmergencyContactResponse, 0, len(d.Emergencia)),
		Cargas:     make([]dto.FamilyDependentResponse, 0, len(d.Cargas)),
	}
	for _, c := range d.Emergencia {
		out.Emergencia = append(out.Emergencia, dto.EmergencyContactResponse{
			Nombre: c.Nombre, Relacion: c.Relacion, Telefono: c.Telefono,
		})
	}
	for _, c := range d.Cargas {
		out.Cargas = append(out.Cargas, dto.FamilyDependentResponse{
			Nombre: c.Nombre, Parentesco: c.Parentesco, Sexo: c.Sexo, RUT: c.RUT,
		})
	}
	return out
}
