package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozkanv/teknopark-api/internal/application/dto"
	"github.com/ozkanv/teknopark-api/internal/application/notify"
	"github.com/ozkanv/teknopark-api/internal/domain"
	"github.com/ozkanv/teknopark-api/internal/domain/entity"
)

func newBlockUC(t *testing.T) (*BlockUseCase, *blockRepoFake, *unitRepoFake) {
	t.Helper()
	blockRepo := newBlockRepoFake()
	campusRepo := newCampusRepoFake()
	unitRepo := newUnitRepoFake()
	require.NoError(t, campusRepo.Create(&entity.Campus{ID: "cam-1", Name: "Campus Norte"}))
	require.NoError(t, blockRepo.Create(&entity.Block{
		ID:             "blk-1",
		CampusID:       "cam-1",
		Name:           "Bloque A",
		SqMPerEmployee: 5,
		Floors: []entity.FloorCapacity{
			{Floor: "Zemin", TotalSqM: d("800")},
			{Floor: "1", TotalSqM: d("1000")},
		},
	}))
	tx := &txRunnerFake{blockRepo: blockRepo, auditRepo: &auditRepoFake{}}
	uc := NewBlockUseCase(blockRepo, campusRepo, unitRepo, tx, notify.Noop{})
	return uc, blockRepo, unitRepo
}

func occupyFloor(t *testing.T, unitRepo *unitRepoFake, id, floor, area string) {
	t.Helper()
	companyID := "c-" + id
	require.NoError(t, unitRepo.Create(&entity.Unit{
		ID:        id,
		BlockID:   "blk-1",
		Floor:     floor,
		AreaSqM:   d(area),
		Status:    entity.UnitStatusOccupied,
		CompanyID: &companyID,
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ReplaceFloors — guard de encogimiento
// ──────────────────────────────────────────────────────────────────────────────

// Encoger un piso por debajo de su área ya usada viola la invariante de
// capacidad: se rechaza con el piso y el área usada en el error.
func TestReplaceFloors_NoPuedeEncogerBajoElUso(t *testing.T) {
	uc, blockRepo, unitRepo := newBlockUC(t)
	occupyFloor(t, unitRepo, "u1", "1", "600")

	_, err := uc.ReplaceFloors(context.Background(), "blk-1", dto.ReplaceFloorsRequest{
		Floors: []dto.FloorCapacityDTO{
			{Floor: "Zemin", TotalSqM: d("800")},
			{Floor: "1", TotalSqM: d("500")}, // 600 ya usados
		},
	}, Actor{User: "operador1"})

	var capErr *domain.CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "1", capErr.Floor)
	assert.True(t, capErr.RequestedSqM.Equal(d("600")), "el error informa el área ya usada")

	stored, repoErr := blockRepo.GetByID("blk-1")
	require.NoError(t, repoErr)
	assert.True(t, stored.Floors[1].TotalSqM.Equal(d("1000")),
		"el rechazo no debe tocar los pisos declarados")
}

// Retirar un piso que aún tiene unidades activas equivale a encogerlo a 0.
func TestReplaceFloors_NoPuedeRetirarPisoEnUso(t *testing.T) {
	uc, _, unitRepo := newBlockUC(t)
	occupyFloor(t, unitRepo, "u1", "Zemin", "100")

	_, err := uc.ReplaceFloors(context.Background(), "blk-1", dto.ReplaceFloorsRequest{
		Floors: []dto.FloorCapacityDTO{
			{Floor: "1", TotalSqM: d("1000")},
		},
	}, Actor{})

	var capErr *domain.CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "Zemin", capErr.Floor)
	assert.True(t, capErr.RemainingSqM.IsZero())
}

// Encoger hasta exactamente el uso actual es válido: la invariante es <=.
func TestReplaceFloors_EncogerHastaElUsoExacto(t *testing.T) {
	uc, blockRepo, unitRepo := newBlockUC(t)
	occupyFloor(t, unitRepo, "u1", "1", "600")

	out, err := uc.ReplaceFloors(context.Background(), "blk-1", dto.ReplaceFloorsRequest{
		Floors: []dto.FloorCapacityDTO{
			{Floor: "Zemin", TotalSqM: d("800")},
			{Floor: "1", TotalSqM: d("600")},
		},
	}, Actor{})
	require.NoError(t, err)
	require.NotNil(t, out)

	stored, repoErr := blockRepo.GetByID("blk-1")
	require.NoError(t, repoErr)
	assert.Len(t, stored.Floors, 2)
}

func TestReplaceFloors_AreaNegativaRechazada(t *testing.T) {
	uc, _, _ := newBlockUC(t)
	_, err := uc.ReplaceFloors(context.Background(), "blk-1", dto.ReplaceFloorsRequest{
		Floors: []dto.FloorCapacityDTO{{Floor: "1", TotalSqM: d("-5")}},
	}, Actor{})
	assert.ErrorIs(t, err, domain.ErrInvalidArea)
}

// El reemplazo de pisos y su entrada de bitácora van en la misma transacción.
func TestReplaceFloors_FalloDeBitacoraNoConfirma(t *testing.T) {
	blockRepo := newBlockRepoFake()
	campusRepo := newCampusRepoFake()
	require.NoError(t, campusRepo.Create(&entity.Campus{ID: "cam-1", Name: "Campus Norte"}))
	require.NoError(t, blockRepo.Create(&entity.Block{
		ID:       "blk-1",
		CampusID: "cam-1",
		Name:     "Bloque A",
		Floors:   []entity.FloorCapacity{{Floor: "1", TotalSqM: d("1000")}},
	}))
	auditRepo := &auditRepoFake{}
	tx := &txRunnerFake{blockRepo: blockRepo, auditRepo: auditRepo, auditFails: true}
	uc := NewBlockUseCase(blockRepo, campusRepo, newUnitRepoFake(), tx, notify.Noop{})

	_, err := uc.ReplaceFloors(context.Background(), "blk-1", dto.ReplaceFloorsRequest{
		Floors: []dto.FloorCapacityDTO{{Floor: "1", TotalSqM: d("2000")}},
	}, Actor{User: "operador1"})
	require.Error(t, err, "sin rastro en la bitácora el reemplazo no puede confirmarse")
	assert.Empty(t, auditRepo.entries)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de presentación — orden de pisos en la respuesta
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_PisosOrdenadosDescendente(t *testing.T) {
	uc, blockRepo, _ := newBlockUC(t)
	stored, err := blockRepo.GetByID("blk-1")
	require.NoError(t, err)
	stored.Floors = []entity.FloorCapacity{
		{Floor: "Zemin", TotalSqM: d("800")},
		{Floor: "B1", TotalSqM: d("300")},
		{Floor: "2", TotalSqM: d("900")},
		{Floor: "Zemin Asma", TotalSqM: d("400")},
	}

	out, err := uc.GetByID("blk-1")
	require.NoError(t, err)
	require.NotNil(t, out)

	got := make([]string, len(out.Floors))
	for i, f := range out.Floors {
		got[i] = f.Floor
	}
	assert.Equal(t, []string{"2", "Zemin Asma", "Zemin", "B1"}, got,
		"la respuesta lista los pisos del más alto al sótano")

	// El orden persistido no se toca: el ordenamiento es de presentación
	assert.Equal(t, "Zemin", stored.Floors[0].Floor)
}
