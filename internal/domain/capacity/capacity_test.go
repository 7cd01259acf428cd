package capacity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozkanv/teknopark-api/internal/domain/capacity"
	"github.com/ozkanv/teknopark-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func d(v string) decimal.Decimal {
	dec, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return dec
}

func unit(id, floor, area, status string) *entity.Unit {
	return &entity.Unit{
		ID:      id,
		BlockID: "blk-1",
		Floor:   floor,
		AreaSqM: d(area),
		Status:  status,
	}
}

func floor(label, total string) entity.FloorCapacity {
	return entity.FloorCapacity{Floor: label, TotalSqM: d(total)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests FloorUsage
// ──────────────────────────────────────────────────────────────────────────────

// Un piso de 1000 m² con 600 + 400 asignados queda exactamente lleno:
// restante 0, ocupación 100%.
func TestFloorUsage_PisoExactamenteLleno(t *testing.T) {
	units := []*entity.Unit{
		unit("u1", "3", "600", entity.UnitStatusOccupied),
		unit("u2", "3", "400", entity.UnitStatusOccupied),
	}
	usage := capacity.FloorUsage(units, floor("3", "1000"))

	assert.True(t, usage.UsedSqM.Equal(d("1000")), "el uso debe sumar las dos unidades")
	assert.True(t, usage.RemainingSqM.IsZero(), "el restante de un piso lleno debe ser 0")
	assert.True(t, usage.OccupancyPct.Equal(d("100")), "la ocupación debe ser 100%%")
}

// Las unidades RESERVED cuentan contra la capacidad igual que las OCCUPIED.
func TestFloorUsage_ReservadasCuentanComoOcupadas(t *testing.T) {
	units := []*entity.Unit{
		unit("u1", "2", "300", entity.UnitStatusOccupied),
		unit("u2", "2", "200", entity.UnitStatusReserved),
	}
	usage := capacity.FloorUsage(units, floor("2", "1000"))

	assert.True(t, usage.UsedSqM.Equal(d("500")),
		"RESERVED debe sumar al uso igual que OCCUPIED")
	assert.True(t, usage.RemainingSqM.Equal(d("500")))
}

// Unidades de otros pisos no afectan el cálculo del piso consultado.
func TestFloorUsage_IgnoraOtrosPisos(t *testing.T) {
	units := []*entity.Unit{
		unit("u1", "1", "400", entity.UnitStatusOccupied),
		unit("u2", "2", "999", entity.UnitStatusOccupied),
	}
	usage := capacity.FloorUsage(units, floor("1", "500"))

	assert.True(t, usage.UsedSqM.Equal(d("400")))
	assert.True(t, usage.RemainingSqM.Equal(d("100")))
}

// Sobre-asignación (datos legados): el restante se recorta a 0 pero la
// ocupación NO se topa en 100, el exceso debe verse.
func TestFloorUsage_SobreasignacionVisible(t *testing.T) {
	units := []*entity.Unit{
		unit("u1", "5", "1200", entity.UnitStatusOccupied),
	}
	usage := capacity.FloorUsage(units, floor("5", "1000"))

	assert.True(t, usage.RemainingSqM.IsZero(), "el restante nunca es negativo")
	assert.True(t, usage.OccupancyPct.Equal(d("120")),
		"la ocupación debe superar 100 cuando el piso está sobreasignado")
}

// Piso con capacidad declarada 0: ocupación 0, sin división por cero.
func TestFloorUsage_CapacidadCero(t *testing.T) {
	usage := capacity.FloorUsage(nil, floor("B1", "0"))

	assert.True(t, usage.UsedSqM.IsZero())
	assert.True(t, usage.OccupancyPct.IsZero(), "total 0 implica ocupación 0")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests FloorUsageExcluding (resize)
// ──────────────────────────────────────────────────────────────────────────────

// Al redimensionar, el área vieja de la propia unidad no cuenta contra la nueva:
// con 500 usados por terceros en un piso de 1000, la unidad excluida puede
// crecer hasta 500.
func TestFloorUsageExcluding_ResizeLiberaSuPropiaArea(t *testing.T) {
	units := []*entity.Unit{
		unit("u1", "4", "400", entity.UnitStatusOccupied), // la que se redimensiona
		unit("u2", "4", "300", entity.UnitStatusOccupied),
		unit("u3", "4", "200", entity.UnitStatusReserved),
	}
	usage := capacity.FloorUsageExcluding(units, floor("4", "1000"), "u1")

	assert.True(t, usage.UsedSqM.Equal(d("500")),
		"el uso debe excluir la unidad en redimensión")
	assert.True(t, usage.RemainingSqM.Equal(d("500")),
		"la unidad excluida puede crecer hasta 500 m²")
	assert.True(t, d("600").GreaterThan(usage.RemainingSqM),
		"pedir 600 m² debe exceder el restante calculado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de agregados
// ──────────────────────────────────────────────────────────────────────────────

func TestBlockUsage_SumaPisos(t *testing.T) {
	floors := []entity.FloorCapacity{floor("1", "1000"), floor("2", "500")}
	units := []*entity.Unit{
		unit("u1", "1", "600", entity.UnitStatusOccupied),
		unit("u2", "2", "500", entity.UnitStatusOccupied),
	}
	usage := capacity.BlockUsage(units, floors)

	assert.True(t, usage.TotalSqM.Equal(d("1500")))
	assert.True(t, usage.UsedSqM.Equal(d("1100")))
	assert.True(t, usage.RemainingSqM.Equal(d("400")))
}

// La ocupación del campus es áreaUsada/áreaTotal, NO un promedio de
// porcentajes: un bloque chico lleno no puede pesar igual que uno grande vacío.
func TestCampusUsage_NoPromediaPorcentajes(t *testing.T) {
	blocks := []capacity.Usage{
		{TotalSqM: d("100"), UsedSqM: d("100")}, // 100%
		{TotalSqM: d("900"), UsedSqM: d("0")},   // 0%
	}
	usage := capacity.CampusUsage(blocks)

	require.True(t, usage.TotalSqM.Equal(d("1000")))
	assert.True(t, usage.OccupancyPct.Equal(d("10")),
		"100/1000 usados es 10%%, no el promedio 50%%")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests MinRequiredArea (densidad)
// ──────────────────────────────────────────────────────────────────────────────

func TestMinRequiredArea(t *testing.T) {
	assert.True(t, capacity.MinRequiredArea(40, 5).Equal(d("200")),
		"40 empleados * 5 m²/empleado = 200 m²")
	assert.True(t, capacity.MinRequiredArea(0, 5).IsZero(),
		"sin empleados no hay mínimo")
	assert.True(t, capacity.MinRequiredArea(40, 0).IsZero(),
		"densidad no configurada no genera mínimo")
}
