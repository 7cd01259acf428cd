package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozkanv/teknopark-api/internal/application/dto"
	"github.com/ozkanv/teknopark-api/internal/application/notify"
	"github.com/ozkanv/teknopark-api/internal/domain/entity"
)

func newCampusEnv() (*CampusUseCase, *campusRepoFake, *auditRepoFake, *txRunnerFake) {
	campusRepo := newCampusRepoFake()
	auditRepo := &auditRepoFake{}
	tx := &txRunnerFake{campusRepo: campusRepo, auditRepo: auditRepo}
	uc := NewCampusUseCase(campusRepo, newBlockRepoFake(), newUnitRepoFake(), tx, notify.Noop{})
	return uc, campusRepo, auditRepo, tx
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create — la mutación y su bitácora son atómicas
// ──────────────────────────────────────────────────────────────────────────────

func TestCampusCreate_DejaBitacora(t *testing.T) {
	uc, campusRepo, auditRepo, _ := newCampusEnv()

	out, err := uc.Create(context.Background(), dto.CreateCampusRequest{Name: "Campus Norte"}, Actor{User: "operador1"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Len(t, campusRepo.campuses, 1)
	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, entity.ActionCreate, auditRepo.entries[0].Action)
	assert.Equal(t, entity.EntityTypeCampus, auditRepo.entries[0].EntityType)
}

func TestCampusCreate_FalloDeBitacoraRevierte(t *testing.T) {
	uc, campusRepo, auditRepo, tx := newCampusEnv()
	tx.auditFails = true

	_, err := uc.Create(context.Background(), dto.CreateCampusRequest{Name: "Campus Norte"}, Actor{User: "operador1"})
	require.Error(t, err, "sin rastro en la bitácora el alta no puede confirmarse")
	assert.Empty(t, campusRepo.campuses, "el alta se revierte junto con la bitácora")
	assert.Empty(t, auditRepo.entries)
}
