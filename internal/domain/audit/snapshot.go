package audit

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ozkanv/teknopark-api/internal/domain/entity"
)

// UnitDeletionSnapshot datos necesarios para revertir la eliminación de una
// unidad: la unidad tal como existía y el estado de facturación del contrato
// antes del retiro. Se serializa como rollbackData en la entrada DELETE.
type UnitDeletionSnapshot struct {
	Unit            entity.Unit     `json:"unit"`
	LeaseID         string          `json:"lease_id"`
	LeaseStatus     string          `json:"lease_status"`
	MonthlyRent     decimal.Decimal `json:"monthly_rent"`
	OperatingFee    decimal.Decimal `json:"operating_fee"`
	UnitPricePerSqM decimal.Decimal `json:"unit_price_per_sqm"`
}

// MarshalSnapshot serializa el snapshot para guardarlo en la bitácora.
func MarshalSnapshot(s UnitDeletionSnapshot) (json.RawMessage, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("serializar snapshot de rollback: %w", err)
	}
	return b, nil
}

// UnmarshalSnapshot reconstruye el snapshot desde rollbackData.
func UnmarshalSnapshot(raw json.RawMessage) (UnitDeletionSnapshot, error) {
	var s UnitDeletionSnapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return UnitDeletionSnapshot{}, fmt.Errorf("snapshot de rollback ilegible: %w", err)
	}
	return s, nil
}
