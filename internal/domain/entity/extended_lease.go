package entity

// ExtendedLease modelo de lectura que une empresa, campus, bloque, unidad y
// contrato para los listados. Derivado por consulta, nunca autoritativo.
type ExtendedLease struct {
	Company Company
	Lease   Lease
	Unit    *Unit   // nil para contratos PENDING/DETACHED
	Block   *Block  // nil si no hay unidad
	Campus  *Campus // nil si no hay unidad
}
