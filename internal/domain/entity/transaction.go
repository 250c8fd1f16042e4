package entity

import "time"

// Tipos de transacción de stock. Se serializan tal cual al archivo, por
// lo que cambiarlos rompe la compatibilidad del formato persistido.
const (
	TransactionAddition = "Addition" // entrada de stock
	TransactionRemoval  = "Removal"  // salida de stock
)

// Transaction representa un movimiento de stock (entrada o salida).
// Inmutable una vez creada: solo se agrega al ledger o se elimina en
// bloque al borrar el producto, nunca se edita.
type Transaction struct {
	ID         string    `json:"id"`
	ProductSKU string    `json:"product_sku"` // clave de búsqueda, no puntero de pertenencia
	Kind       string    `json:"kind"`
	Quantity   int       `json:"quantity"`
	Timestamp  time.Time `json:"timestamp"` // instante UTC, RFC 3339
	Notes      *string   `json:"notes"`
}
