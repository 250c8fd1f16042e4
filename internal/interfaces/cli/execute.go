package cli

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/jhoicas/stock-control/internal/application/inventory"
	"github.com/jhoicas/stock-control/internal/domain/entity"
)

// Execute ejecuta un comando contra el servicio y devuelve el texto a
// mostrar en stdout. Los errores del servicio se propagan sin
// reintentos; el llamador los presenta con FormatError.
func Execute(cmd Command, svc *inventory.Service) (string, error) {
	switch c := cmd.(type) {
	case AddProductCmd:
		product, err := svc.CreateProduct(c.SKU, c.Name, c.Description, c.Quantity, c.ReorderPoint)
		if err != nil {
			return "", err
		}
		return "Producto creado:\n" + renderProduct(product), nil

	case UpdateProductCmd:
		product, err := svc.UpdateProduct(c.SKU, c.Name, c.Description, c.ReorderPoint)
		if err != nil {
			return "", err
		}
		return "Producto actualizado:\n" + renderProduct(product), nil

	case AddStockCmd:
		if err := svc.AddStock(c.SKU, c.Quantity, c.Notes); err != nil {
			return "", err
		}
		product, err := svc.GetProduct(c.SKU)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Stock agregado a '%s': +%d (nuevo total: %d)", c.SKU, c.Quantity, product.Quantity), nil

	case RemoveStockCmd:
		if err := svc.RemoveStock(c.SKU, c.Quantity, c.Notes); err != nil {
			return "", err
		}
		product, err := svc.GetProduct(c.SKU)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Stock retirado de '%s': -%d (nuevo total: %d)", c.SKU, c.Quantity, product.Quantity), nil

	case ViewProductCmd:
		product, err := svc.GetProduct(c.SKU)
		if err != nil {
			return "", err
		}
		return "Detalle del producto:\n" + renderProduct(product), nil

	case ListProductsCmd:
		return renderProductTable("Productos", svc.ListProducts(), "No hay productos en el inventario."), nil

	case LowStockCmd:
		return renderProductTable("Productos con stock bajo", svc.ListLowStock(), "No hay productos con stock bajo."), nil

	case HistoryCmd:
		// Se verifica primero que el producto exista: un SKU desconocido
		// es un error para el usuario, no un historial vacío.
		if _, err := svc.GetProduct(c.SKU); err != nil {
			return "", err
		}
		var transactions []entity.Transaction
		if c.Start != nil && c.End != nil {
			transactions = svc.GetTransactionsInRange(c.SKU, *c.Start, *c.End)
		} else {
			transactions = svc.GetTransactions(c.SKU)
		}
		return renderHistory(c.SKU, transactions), nil

	case DeleteProductCmd:
		if err := svc.DeleteProduct(c.SKU); err != nil {
			return "", err
		}
		return fmt.Sprintf("Producto '%s' eliminado junto con sus transacciones.", c.SKU), nil

	case HelpCmd:
		return HelpText(), nil
	}
	return "", fmt.Errorf("comando no soportado: %s", cmd.commandName())
}

// FormatError convierte un error del servicio o del parseo en una línea
// presentable al usuario.
func FormatError(err error) string {
	return "Error: " + err.Error()
}

func renderProduct(p *entity.Product) string {
	lowStock := ""
	if p.IsLowStock() {
		lowStock = " [STOCK BAJO]"
	}
	return fmt.Sprintf(
		"  ID: %s\n  SKU: %s\n  Nombre: %s\n  Descripción: %s\n  Cantidad: %d%s\n  Punto de reorden: %d",
		p.ID, p.SKU, p.Name, p.Description, p.Quantity, lowStock, p.ReorderPoint,
	)
}

// renderProductTable dibuja una tabla alineada; el orden por SKU es un
// detalle de presentación, el servicio no garantiza orden alguno.
func renderProductTable(title string, products []*entity.Product, emptyMsg string) string {
	if len(products) == 0 {
		return emptyMsg
	}
	sort.Slice(products, func(i, j int) bool { return products[i].SKU < products[j].SKU })

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%d):\n", title, len(products))
	tw := tabwriter.NewWriter(&sb, 2, 0, 3, ' ', 0)
	fmt.Fprint(tw, "  SKU\tNOMBRE\tCANTIDAD\tREORDEN\t\n")
	for _, p := range products {
		marker := ""
		if p.IsLowStock() {
			marker = " [BAJO]"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%d%s\t%d\t\n", p.SKU, p.Name, p.Quantity, marker, p.ReorderPoint)
	}
	tw.Flush()
	return strings.TrimRight(sb.String(), "\n")
}

func renderHistory(sku string, transactions []entity.Transaction) string {
	if len(transactions) == 0 {
		return fmt.Sprintf("No hay transacciones para el producto '%s'.", sku)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Historial de '%s' (%d transacciones):\n", sku, len(transactions))
	for _, t := range transactions {
		sign := "+"
		if t.Kind == entity.TransactionRemoval {
			sign = "-"
		}
		notes := ""
		if t.Notes != nil {
			notes = " - " + *t.Notes
		}
		fmt.Fprintf(&sb, "  %s %s%d %s%s\n",
			t.Timestamp.Format("2006-01-02 15:04:05"), sign, t.Quantity, t.Kind, notes)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// HelpText devuelve la ayuda de la CLI.
func HelpText() string {
	return `stockctl - control de inventario de un solo usuario

USO:
    stockctl <COMANDO> [OPCIONES]

COMANDOS:
    add-product <sku> <nombre> <descripción> <cantidad> <punto-reorden>
        Crea un producto nuevo.
        Ejemplo: add-product SKU001 "Tornillo" "Caja x100" 100 20

    update-product <sku> [--name N] [--description D] [--reorder-point R]
        Modifica los campos indicados de un producto existente.
        Ejemplo: update-product SKU001 --name "Tornillo 5mm" --reorder-point 30

    add-stock <sku> <cantidad> [--notes N]
        Registra una entrada de stock.
        Ejemplo: add-stock SKU001 50 --notes "Llegó el pedido"

    remove-stock <sku> <cantidad> [--notes N]
        Registra una salida de stock.
        Ejemplo: remove-stock SKU001 10 --notes "Venta mostrador"

    view-product <sku>
        Muestra el detalle de un producto.

    list-products
        Lista todos los productos.

    low-stock
        Lista los productos en o bajo su punto de reorden.

    history <sku> [--start F --end F]
        Muestra el historial de transacciones, opcionalmente acotado.
        Formato de fecha: YYYY-MM-DDTHH:MM:SS (UTC), ambos extremos juntos.
        Ejemplo: history SKU001 --start 2026-01-01T00:00:00 --end 2026-12-31T23:59:59

    delete-product <sku>
        Elimina un producto y todas sus transacciones.

    help
        Muestra esta ayuda.

CONFIGURACIÓN (variables de entorno):
    STOCK_DATA_DIR   directorio de datos (por defecto ./data)
    APP_ENV          development | production
    LOG_LEVEL        trace | debug | info | warn | error`
}
