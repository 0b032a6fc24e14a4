package entity

// Counter es el documento único de contadores: provee el siguiente ID entero
// para cada entidad numerada. Se lee con bloqueo y se incrementa dentro de la
// misma transacción que la entidad a la que numera.
type Counter struct {
	NextProductID  int64
	NextSaleID     int64
	NextMovementID int64
}
