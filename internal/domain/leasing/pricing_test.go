package leasing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ozkanv/teknopark-api/internal/domain/entity"
	"github.com/ozkanv/teknopark-api/internal/domain/leasing"
)

func d(v string) decimal.Decimal {
	dec, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return dec
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UnitPrice — cadena de derivación de la tarifa por m²
// ──────────────────────────────────────────────────────────────────────────────

// Contrato asignado: la tarifa se deriva de la renta actual / área actual,
// aunque exista una tarifa preservada.
func TestUnitPrice_AsignadoDerivaDeRentaYArea(t *testing.T) {
	unitID := "u1"
	lease := &entity.Lease{
		Status:          entity.LeaseStatusAllocated,
		UnitID:          &unitID,
		MonthlyRent:     d("15000"),
		UnitPricePerSqM: d("99"), // no debe usarse
	}
	unit := &entity.Unit{ID: unitID, AreaSqM: d("300")}

	price := leasing.UnitPrice(lease, unit, d("77"))
	assert.True(t, price.Equal(d("50")),
		"15000 / 300 = 50; la tarifa preservada no aplica en contratos asignados")
}

// Contrato DETACHED: manda la tarifa preservada del retiro anterior.
func TestUnitPrice_DetachedUsaTarifaPreservada(t *testing.T) {
	lease := &entity.Lease{
		Status:          entity.LeaseStatusDetached,
		UnitPricePerSqM: d("42.50"),
	}
	price := leasing.UnitPrice(lease, nil, d("77"))
	assert.True(t, price.Equal(d("42.50")),
		"la tarifa preservada debe sobrevivir al retiro de la unidad")
}

// Contrato PENDING sin tarifa preservada: cae a la plantilla de la empresa.
func TestUnitPrice_PendingCaeALaPlantilla(t *testing.T) {
	lease := &entity.Lease{Status: entity.LeaseStatusPending}
	price := leasing.UnitPrice(lease, nil, d("35"))
	assert.True(t, price.Equal(d("35")))
}

// Sin contrato o sin ninguna fuente de precio: 0.
func TestUnitPrice_SinFuentes(t *testing.T) {
	assert.True(t, leasing.UnitPrice(nil, nil, d("35")).IsZero(),
		"sin contrato no hay tarifa")

	lease := &entity.Lease{Status: entity.LeaseStatusPending}
	assert.True(t, leasing.UnitPrice(lease, nil, decimal.Zero).IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RentForArea — renta con tarifa fija de sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestRentForArea_Recalcula(t *testing.T) {
	rent := leasing.RentForArea(d("600"), d("50"))
	assert.True(t, rent.Equal(d("30000")), "600 m² * 50 = 30000")
}

func TestRentForArea_RedondeaADosDecimales(t *testing.T) {
	rent := leasing.RentForArea(d("333"), d("33.333"))
	assert.True(t, rent.Equal(d("11099.89")),
		"la renta se redondea a 2 decimales: 333 * 33.333 = 11099.889 -> 11099.89")
}

func TestRentForArea_EntradasNoPositivas(t *testing.T) {
	assert.True(t, leasing.RentForArea(decimal.Zero, d("50")).IsZero())
	assert.True(t, leasing.RentForArea(d("100"), decimal.Zero).IsZero())
	assert.True(t, leasing.RentForArea(d("-10"), d("50")).IsZero())
}

// La tarifa fija evita la deriva por redondeo: redimensionar dos veces con la
// misma tarifa produce la misma renta que hacerlo una sola vez.
func TestRentForArea_TarifaFijaSinDeriva(t *testing.T) {
	fixed := d("33.33")

	direct := leasing.RentForArea(d("450"), fixed)
	step1 := leasing.RentForArea(d("300"), fixed)
	step2 := leasing.RentForArea(d("450"), fixed)

	assert.True(t, step1.Equal(d("9999")))
	assert.True(t, direct.Equal(step2),
		"con tarifa fija el camino no importa: el área final define la renta")
}
