package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Diego-69/taller-aplicaciones/internal/domain/authz"
	"github.com/Diego-69/taller-aplicaciones/internal/domain/directory"
	"github.com/Diego-69/taller-aplicaciones/internal/domain/entity"
)

// Sin filtros: WHERE con solo el predicado base y un único parámetro.
func TestRenderDirectoryQuery_SoloBase(t *testing.T) {
	q := directory.Build(directory.Filter{}, authz.CapabilitiesFor(entity.RoleRRHH))

	sql, params, err := renderDirectoryQuery(q)
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM trabajador t")
	assert.Contains(t, sql, "JOIN datos_laborales dl")
	assert.Contains(t, sql, "WHERE dl.estado = $1")
	assert.NotContains(t, sql, "$2")
	assert.Equal(t, []any{"activo"}, params)
}

// Con todos los filtros de jefe_rrhh: cada placeholder $n queda alineado con
// su parámetro porque cláusula y valor se acumulan juntos.
func TestRenderDirectoryQuery_TodosLosFiltros(t *testing.T) {
	f := directory.Filter{Sexo: "Femenino", Cargo: "Ingenier", AreaID: 3, DepartamentoID: 7}
	q := directory.Build(f, authz.CapabilitiesFor(entity.RoleJefeRRHH))

	sql, params, err := renderDirectoryQuery(q)
	require.NoError(t, err)

	assert.Contains(t, sql, "WHERE dl.estado = $1")
	assert.Contains(t, sql, "AND t.sexo = $2")
	assert.Contains(t, sql, "AND dl.cargo ILIKE $3")
	assert.Contains(t, sql, "AND dl.area_id = $4")
	assert.Contains(t, sql, "AND dl.departamento_id = $5")
	assert.Equal(t, []any{"activo", "Femenino", "%Ingenier%", 3, 7}, params)
}

// El substring de cargo se envuelve en comodines para el ILIKE.
func TestRenderDirectoryQuery_CargoConComodines(t *testing.T) {
	q := directory.Build(directory.Filter{Cargo: "contador"}, authz.CapabilitiesFor(entity.RoleJefeRRHH))

	sql, params, err := renderDirectoryQuery(q)
	require.NoError(t, err)

	assert.Contains(t, sql, "dl.cargo ILIKE $2")
	assert.Equal(t, []any{"activo", "%contador%"}, params)
}
