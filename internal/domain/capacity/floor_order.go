package capacity

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ozkanv/teknopark-api/internal/domain/entity"
)

// unknownFloorKey los pisos con etiqueta irreconocible se ordenan debajo de
// cualquier sótano.
const unknownFloorKey = -1000

// FloorSortKey deriva la clave numérica de una etiqueta de piso:
//
//	"3"          -> 3
//	"3A"         -> 3.5  (intermedio sobre el 3)
//	"Zemin"      -> 0    (planta baja)
//	"Zemin Asma" -> 0.5  (entrepiso)
//	"B2"         -> -2   (sótano)
//
// Las etiquetas provienen del operador del parque y se comparan sin
// distinguir mayúsculas.
func FloorSortKey(label string) float64 {
	s := strings.TrimSpace(label)
	if s == "" {
		return unknownFloorKey
	}
	lower := strings.ToLower(s)

	switch lower {
	case "zemin":
		return 0
	case "zemin asma", "asma", "asma kat":
		return 0.5
	}

	// Sótanos: "B1", "B2", ...
	if len(lower) > 1 && lower[0] == 'b' {
		if n, err := strconv.Atoi(lower[1:]); err == nil {
			return -float64(n)
		}
	}

	// Intermedios: "<n>A"
	if len(lower) > 1 && strings.HasSuffix(lower, "a") {
		if n, err := strconv.Atoi(lower[:len(lower)-1]); err == nil {
			return float64(n) + 0.5
		}
	}

	if n, err := strconv.Atoi(lower); err == nil {
		return float64(n)
	}
	return unknownFloorKey
}

// SortFloors ordena los pisos de un bloque de forma descendente por su clave
// derivada (el piso más alto primero). Orden estable para etiquetas empatadas.
func SortFloors(floors []entity.FloorCapacity) {
	sort.SliceStable(floors, func(i, j int) bool {
		return FloorSortKey(floors[i].Floor) > FloorSortKey(floors[j].Floor)
	})
}

// FindFloor busca la capacidad declarada de un piso por etiqueta exacta.
// Devuelve false si el bloque no declara ese piso.
func FindFloor(floors []entity.FloorCapacity, label string) (entity.FloorCapacity, bool) {
	for _, f := range floors {
		if f.Floor == label {
			return f, true
		}
	}
	return entity.FloorCapacity{}, false
}
