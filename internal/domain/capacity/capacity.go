package capacity

import (
	"github.com/shopspring/decimal"

	"github.com/ozkanv/teknopark-api/internal/domain/entity"
)

// Usage uso agregado de un piso, bloque o campus. Siempre se recalcula desde
// cero sobre los registros crudos: no hay agregados cacheados que puedan
// quedar obsoletos tras una mutación.
type Usage struct {
	TotalSqM     decimal.Decimal
	UsedSqM      decimal.Decimal
	RemainingSqM decimal.Decimal
	OccupancyPct decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// FloorUsage calcula el uso de un piso: Used suma el área de las unidades
// OCCUPIED o RESERVED del piso; Remaining = max(0, total - used);
// OccupancyPct = used/total*100 (0 si total es 0, nunca negativo, SIN tope
// en 100: una sobre-asignación debe verse, no esconderse).
func FloorUsage(units []*entity.Unit, floor entity.FloorCapacity) Usage {
	used := decimal.Zero
	for _, u := range units {
		if u.Floor == floor.Floor && u.Active() {
			used = used.Add(u.AreaSqM)
		}
	}
	return usageFrom(floor.TotalSqM, used)
}

// FloorUsageExcluding calcula el uso del piso ignorando una unidad concreta.
// Para un resize la capacidad restante se evalúa excluyendo la propia unidad:
// su área vieja no debe contar contra su área nueva.
func FloorUsageExcluding(units []*entity.Unit, floor entity.FloorCapacity, excludeUnitID string) Usage {
	used := decimal.Zero
	for _, u := range units {
		if u.ID == excludeUnitID {
			continue
		}
		if u.Floor == floor.Floor && u.Active() {
			used = used.Add(u.AreaSqM)
		}
	}
	return usageFrom(floor.TotalSqM, used)
}

// BlockUsage agrega FloorUsage sobre todos los pisos del bloque.
func BlockUsage(units []*entity.Unit, floors []entity.FloorCapacity) Usage {
	total := decimal.Zero
	used := decimal.Zero
	for _, f := range floors {
		fu := FloorUsage(units, f)
		total = total.Add(fu.TotalSqM)
		used = used.Add(fu.UsedSqM)
	}
	return usageFrom(total, used)
}

// CampusUsage agrega usos de bloques. Las áreas se suman; la ocupación es
// áreaUsada/áreaTotal, nunca un promedio de porcentajes.
func CampusUsage(blocks []Usage) Usage {
	total := decimal.Zero
	used := decimal.Zero
	for _, b := range blocks {
		total = total.Add(b.TotalSqM)
		used = used.Add(b.UsedSqM)
	}
	return usageFrom(total, used)
}

// MinRequiredArea área mínima sugerida para una empresa según la densidad del
// bloque. Es una señal de advertencia ("capacity issue"), jamás bloquea una
// asignación.
func MinRequiredArea(employeeCount, sqMPerEmployee int) decimal.Decimal {
	if employeeCount <= 0 || sqMPerEmployee <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(employeeCount)).Mul(decimal.NewFromInt(int64(sqMPerEmployee)))
}

func usageFrom(total, used decimal.Decimal) Usage {
	remaining := total.Sub(used)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	pct := decimal.Zero
	if total.IsPositive() {
		pct = used.Div(total).Mul(hundred)
	}
	if pct.IsNegative() {
		pct = decimal.Zero
	}
	return Usage{
		TotalSqM:     total,
		UsedSqM:      used,
		RemainingSqM: remaining,
		OccupancyPct: pct,
	}
}
