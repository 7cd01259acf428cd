package leasing

import (
	"github.com/shopspring/decimal"

	"github.com/ozkanv/teknopark-api/internal/domain/entity"
)

// UnitPrice deriva la tarifa por m² de un contrato:
//   - contrato asignado con área > 0: renta mensual / área;
//   - contrato sin unidad (PENDING/DETACHED) con tarifa preservada > 0: esa tarifa;
//   - si no, la tarifa de la plantilla de contrato de la empresa;
//   - en último caso, 0.
func UnitPrice(lease *entity.Lease, unit *entity.Unit, templateRentPerSqM decimal.Decimal) decimal.Decimal {
	if lease == nil {
		return decimal.Zero
	}
	if lease.Allocated() && unit != nil && unit.AreaSqM.IsPositive() {
		return lease.MonthlyRent.Div(unit.AreaSqM)
	}
	if lease.UnitPricePerSqM.IsPositive() {
		return lease.UnitPricePerSqM
	}
	if templateRentPerSqM.IsPositive() {
		return templateRentPerSqM
	}
	return decimal.Zero
}

// RentForArea recalcula la renta mensual tras un cambio de área:
// newRent = area * fixedUnitPrice. La tarifa queda fija durante toda la
// sesión de edición; no se rederiva del área nueva para que el redondeo no
// corra la tarifa pactada entre guardados sucesivos.
func RentForArea(area, fixedUnitPrice decimal.Decimal) decimal.Decimal {
	if !area.IsPositive() || !fixedUnitPrice.IsPositive() {
		return decimal.Zero
	}
	return area.Mul(fixedUnitPrice).Round(2)
}
