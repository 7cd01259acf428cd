package dto

// OccupancyReportRow fila del reporte de ocupación: un piso de un bloque.
type OccupancyReportRow struct {
	CampusName  string        `json:"campus_name"`
	BlockName   string        `json:"block_name"`
	Floor       string        `json:"floor"`
	Usage       UsageResponse `json:"usage"`
	CompanyName string        `json:"company_name,omitempty"`
	UnitAreaSqM string        `json:"unit_area_sqm,omitempty"`
	UnitStatus  string        `json:"unit_status,omitempty"`
}

// OccupancyReport reporte de ocupación del parque completo.
type OccupancyReport struct {
	GeneratedAt string               `json:"generated_at"`
	ParkTotal   UsageResponse        `json:"park_total"`
	Rows        []OccupancyReportRow `json:"rows"`
}
