package cli

import "time"

// Command es el resultado del parseo de argumentos. Cada variante
// corresponde a una operación del servicio de inventario; la capa CLI
// no contiene reglas de negocio.
type Command interface {
	commandName() string
}

// AddProductCmd crea un producto nuevo.
type AddProductCmd struct {
	SKU          string
	Name         string
	Description  string
	Quantity     int
	ReorderPoint int
}

// UpdateProductCmd modifica los campos provistos de un producto; un
// puntero nil significa "no tocar".
type UpdateProductCmd struct {
	SKU          string
	Name         *string
	Description  *string
	ReorderPoint *int
}

// AddStockCmd registra una entrada de stock.
type AddStockCmd struct {
	SKU      string
	Quantity int
	Notes    *string
}

// RemoveStockCmd registra una salida de stock.
type RemoveStockCmd struct {
	SKU      string
	Quantity int
	Notes    *string
}

// ViewProductCmd muestra un producto por SKU.
type ViewProductCmd struct {
	SKU string
}

// ListProductsCmd lista todos los productos.
type ListProductsCmd struct{}

// LowStockCmd lista los productos en o bajo su punto de reorden.
type LowStockCmd struct{}

// HistoryCmd muestra el historial de transacciones de un producto,
// opcionalmente acotado a un rango de fechas (ambos extremos juntos).
type HistoryCmd struct {
	SKU   string
	Start *time.Time
	End   *time.Time
}

// DeleteProductCmd elimina un producto y sus transacciones.
type DeleteProductCmd struct {
	SKU string
}

// HelpCmd muestra la ayuda.
type HelpCmd struct{}

func (AddProductCmd) commandName() string    { return "add-product" }
func (UpdateProductCmd) commandName() string { return "update-product" }
func (AddStockCmd) commandName() string      { return "add-stock" }
func (RemoveStockCmd) commandName() string   { return "remove-stock" }
func (ViewProductCmd) commandName() string   { return "view-product" }
func (ListProductsCmd) commandName() string  { return "list-products" }
func (LowStockCmd) commandName() string      { return "low-stock" }
func (HistoryCmd) commandName() string       { return "history" }
func (DeleteProductCmd) commandName() string { return "delete-product" }
func (HelpCmd) commandName() string          { return "help" }
