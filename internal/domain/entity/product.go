package entity

// Product representa un producto del inventario identificado por su SKU.
// Quantity se modifica únicamente a través de transacciones de stock,
// nunca de forma directa. Los tags JSON definen el formato persistido.
type Product struct {
	ID           string `json:"id"`
	SKU          string `json:"sku"` // código único, clave primaria de búsqueda
	Name         string `json:"name"`
	Description  string `json:"description"`
	Quantity     int    `json:"quantity"`
	ReorderPoint int    `json:"reorder_point"`
}

// IsLowStock indica si el producto está en o por debajo de su punto de
// reorden. Es un predicado derivado, nunca se persiste.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.ReorderPoint
}
