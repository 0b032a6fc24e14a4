package dto

// CountersResponse estado de los contadores de IDs.
type CountersResponse struct {
	NextProductID  int64 `json:"next_product_id"`
	NextSaleID     int64 `json:"next_sale_id"`
	NextMovementID int64 `json:"next_movement_id"`
}

// ExportResponse respaldo completo de datos en JSON. ExportDate va en ISO-8601
// y Source identifica al sistema que generó el respaldo.
type ExportResponse struct {
	ExportDate string                  `json:"export_date"`
	Source     string                  `json:"source"`
	Products   []ProductResponse       `json:"products"`
	Sales      []SaleResponse          `json:"sales"`
	Movements  []StockMovementResponse `json:"movements"`
	Clients    []ClientResponse        `json:"clients"`
	Routes     []RouteResponse         `json:"routes"`
	Expenses   []ExpenseResponse       `json:"expenses"`
	Settings   SettingsResponse        `json:"settings"`
	Counters   CountersResponse        `json:"counters"`
}
