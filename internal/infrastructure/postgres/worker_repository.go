package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Diego-69/taller-aplicaciones/internal/domain/directory"
	"github.com/Diego-69/taller-aplicaciones/internal/domain/entity"
	"github.com/Diego-69/taller-aplicaciones/internal/domain/repository"
)

var _ repository.WorkerRepository = (*WorkerRepo)(nil)

// WorkerRepo consultas de solo lectura sobre fichas de trabajadores.
type WorkerRepo struct {
	pool *pgxpool.Pool
}

// NewWorkerRepository construye el adaptador de fichas.
func NewWorkerRepository(pool *pgxpool.Pool) *WorkerRepo {
	return &WorkerRepo{pool: pool}
}

// directoryColumns mapea cada campo del dominio a su columna calificada.
var directoryColumns = map[directory.Field]string{
	directory.FieldEstado:       "dl.estado",
	directory.FieldSexo:         "t.sexo",
	directory.FieldCargo:        "dl.cargo",
	directory.FieldArea:         "dl.area_id",
	directory.FieldDepartamento: "dl.departamento_id",
}

// renderDirectoryQuery traduce la Query del dominio a SQL. Cada predicado
// aporta su cláusula y su parámetro en el mismo paso, así el placeholder $n
// nunca puede desalinearse de la lista de argumentos.
func renderDirectoryQuery(q directory.Query) (string, []any, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT t.rut, t.nombre, t.sexo, dl.cargo
		FROM trabajador t
		JOIN datos_laborales dl ON t.rut = dl.rut_trabajador`)

	var params []any
	for i, p := range q.Predicates() {
		col, ok := directoryColumns[p.Field]
		if !ok {
			return "", nil, fmt.Errorf("campo de directorio desconocido: %q", p.Field)
		}
		if i == 0 {
			sb.WriteString("\n\t\tWHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		switch p.Op {
		case directory.OpEquals:
			params = append(params, p.Value)
			fmt.Fprintf(&sb, "%s = $%d", col, len(params))
		case directory.OpContains:
			params = append(params, fmt.Sprintf("%%%v%%", p.Value))
			fmt.Fprintf(&sb, "%s ILIKE $%d", col, len(params))
		default:
			return "", nil, fmt.Errorf("operador de directorio desconocido: %q", p.Op)
		}
	}
	return sb.String(), params, nil
}

// ListSummaries ejecuta la consulta del directorio.
func (r *WorkerRepo) ListSummaries(ctx context.Context, q directory.Query) ([]entity.WorkerSummary, error) {
	query, params, err := renderDirectoryQuery(q)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	defer rows.Close()

	var list []entity.WorkerSummary
	for rows.Next() {
		var w entity.WorkerSummary
		if err := rows.Scan(&w.RUT, &w.Nombre, &w.Sexo, &w.Cargo); err != nil {
			return nil, fmt.Errorf("scan worker: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

// GetDetail arma la ficha completa: datos personales, laborales, contactos de
// emergencia y cargas familiares. Devuelve (nil, nil) si el rut no existe.
func (r *WorkerRepo) GetDetail(ctx context.Context, rut string) (*entity.WorkerDetail, error) {
	var d entity.WorkerDetail

	err := r.pool.QueryRow(ctx, `
		SELECT rut, nombre, sexo, direccion, telefono, fecha_nacimiento, email
		FROM trabajador WHERE rut = $1`, rut).Scan(
		&d.Personal.RUT, &d.Personal.Nombre, &d.Personal.Sexo, &d.Personal.Direccion,
		&d.Personal.Telefono, &d.Personal.FechaNacimiento, &d.Personal.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get worker personal: %w", err)
	}

	err = r.pool.QueryRow(ctx, `
		SELECT cargo, fecha_de_ingreso, area_id, departamento_id, sueldo_base, estado
		FROM datos_laborales WHERE rut_trabajador = $1`, rut).Scan(
		&d.Laboral.Cargo, &d.Laboral.FechaIngreso, &d.Laboral.AreaID,
		&d.Laboral.DepartamentoID, &d.Laboral.SueldoBase, &d.Laboral.Estado,
	)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get worker laboral: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT nombre_contacto, relacion, telefono_contacto
		FROM contactos_emergencia WHERE rut_trabajador = $1`, rut)
	if err != nil {
		return nil, fmt.Errorf("get emergency contacts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c entity.EmergencyContact
		if err := rows.Scan(&c.Nombre, &c.Relacion, &c.Telefono); err != nil {
			return nil, fmt.Errorf("scan emergency contact: %w", err)
		}
		d.Emergencia = append(d.Emergencia, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("emergency contacts rows: %w", err)
	}

	rows, err = r.pool.Query(ctx, `
		SELECT nombre, parentesco, sexo, rut
		FROM cargas_familiares WHERE rut_trabajador = $1`, rut)
	if err != nil {
		return nil, fmt.Errorf("get family dependents: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c entity.FamilyDependent
		if err := rows.Scan(&c.Nombre, &c.Parentesco, &c.Sexo, &c.RUT); err != nil {
			return nil, fmt.Errorf("scan family dependent: %w", err)
		}
		d.Cargas = append(d.Cargas, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("family dependents rows: %w", err)
	}

	return &d, nil
}

// ListAreas devuelve todas las áreas ordenadas por nombre.
func (r *WorkerRepo) ListAreas(ctx context.Context) ([]entity.Area, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, nombre FROM area ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	defer rows.Close()

	var list []entity.Area
	for rows.Next() {
		var a entity.Area
		if err := rows.Scan(&a.ID, &a.Nombre); err != nil {
			return nil, fmt.Errorf("scan area: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// ListDepartamentos devuelve los departamentos del área, o todos si areaID
// es cero. Ordenados por nombre.
func (r *WorkerRepo) ListDepartamentos(ctx context.Context, areaID int) ([]entity.Departamento, error) {
	query := `SELECT id, area_id, nombre FROM departamento ORDER BY nombre`
	var params []any
	if areaID != 0 {
		query = `SELECT id, area_id, nombre FROM departamento WHERE area_id = $1 ORDER BY nombre`
		params = append(params, areaID)
	}

	rows, err := r.pool.Query(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("list departamentos: %w", err)
	}
	defer rows.Close()

	var list []entity.Departamento
	for rows.Next() {
		var d entity.Departamento
		if err := rows.Scan(&d.ID, &d.AreaID, &d.Nombre); err != nil {
			return nil, fmt.Errorf("scan departamento: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
