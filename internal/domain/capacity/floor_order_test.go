package capacity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ozkanv/teknopark-api/internal/domain/capacity"
	"github.com/ozkanv/teknopark-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests FloorSortKey
// ──────────────────────────────────────────────────────────────────────────────

func TestFloorSortKey_Etiquetas(t *testing.T) {
	cases := []struct {
		label string
		key   float64
	}{
		{"3", 3},
		{"10", 10},
		{"3A", 3.5},
		{"3a", 3.5},
		{"Zemin", 0},
		{"zemin", 0},
		{"Zemin Asma", 0.5},
		{"Asma", 0.5},
		{"B1", -1},
		{"B2", -2},
		{"b2", -2},
		{"", -1000},
		{"Depo", -1000},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.key, capacity.FloorSortKey(tc.label),
			"clave incorrecta para la etiqueta %q", tc.label)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SortFloors
// ──────────────────────────────────────────────────────────────────────────────

// El orden es descendente: piso más alto primero, entrepiso entre Zemin y el 1,
// sótanos al final y etiquetas desconocidas debajo de todo.
func TestSortFloors_DescendenteConEntrepisos(t *testing.T) {
	floors := []entity.FloorCapacity{
		{Floor: "Zemin"},
		{Floor: "B2"},
		{Floor: "3"},
		{Floor: "Depo"},
		{Floor: "Zemin Asma"},
		{Floor: "3A"},
		{Floor: "1"},
		{Floor: "B1"},
	}
	capacity.SortFloors(floors)

	got := make([]string, len(floors))
	for i, f := range floors {
		got[i] = f.Floor
	}
	assert.Equal(t,
		[]string{"3A", "3", "1", "Zemin Asma", "Zemin", "B1", "B2", "Depo"},
		got,
		"el orden debe ser descendente con 3A sobre 3 y los sótanos al final")
}

// Etiquetas con la misma clave conservan su orden de llegada (orden estable).
func TestSortFloors_EstableEnEmpates(t *testing.T) {
	floors := []entity.FloorCapacity{
		{Floor: "Bodega"},
		{Floor: "Arşiv"},
	}
	capacity.SortFloors(floors)

	assert.Equal(t, "Bodega", floors[0].Floor, "empates conservan el orden original")
	assert.Equal(t, "Arşiv", floors[1].Floor)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests FindFloor
// ──────────────────────────────────────────────────────────────────────────────

func TestFindFloor(t *testing.T) {
	floors := []entity.FloorCapacity{floor("Zemin", "800"), floor("1", "1000")}

	f, ok := capacity.FindFloor(floors, "Zemin")
	assert.True(t, ok)
	assert.True(t, f.TotalSqM.Equal(d("800")))

	_, ok = capacity.FindFloor(floors, "2")
	assert.False(t, ok, "un piso no declarado no debe encontrarse")
}
