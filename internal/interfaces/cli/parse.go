package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

// ParseArgs convierte los argumentos del programa (incluido el nombre
// del binario) en un Command. Los errores devueltos son texto listo
// para mostrar al usuario.
func ParseArgs(args []string) (Command, error) {
	if len(args) < 2 {
		return HelpCmd{}, nil
	}

	command := args[1]
	rest := args[2:]

	switch command {
	case "add-product":
		return parseAddProduct(rest)
	case "update-product":
		return parseUpdateProduct(rest)
	case "add-stock":
		return parseAddStock(rest)
	case "remove-stock":
		return parseRemoveStock(rest)
	case "view-product":
		return parseSingleSKU(rest, "view-product", func(sku string) Command { return ViewProductCmd{SKU: sku} })
	case "list-products":
		return ListProductsCmd{}, nil
	case "low-stock":
		return LowStockCmd{}, nil
	case "history":
		return parseHistory(rest)
	case "delete-product":
		return parseSingleSKU(rest, "delete-product", func(sku string) Command { return DeleteProductCmd{SKU: sku} })
	case "help", "--help", "-h":
		return HelpCmd{}, nil
	default:
		return nil, fmt.Errorf("comando desconocido: '%s'; use 'help' para ver los comandos disponibles", command)
	}
}

func parseAddProduct(args []string) (Command, error) {
	if len(args) < 5 {
		return nil, fmt.Errorf("uso: add-product <sku> <nombre> <descripción> <cantidad> <punto-reorden>")
	}
	quantity, err := parseInt(args[3], "cantidad")
	if err != nil {
		return nil, err
	}
	reorderPoint, err := parseInt(args[4], "punto de reorden")
	if err != nil {
		return nil, err
	}
	return AddProductCmd{
		SKU:          args[0],
		Name:         args[1],
		Description:  args[2],
		Quantity:     quantity,
		ReorderPoint: reorderPoint,
	}, nil
}

func parseUpdateProduct(args []string) (Command, error) {
	fs := newFlagSet("update-product")
	name := fs.String("name", "", "nuevo nombre del producto")
	description := fs.String("description", "", "nueva descripción")
	reorderPoint := fs.Int("reorder-point", 0, "nuevo punto de reorden")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() < 1 {
		return nil, fmt.Errorf("uso: update-product <sku> [--name N] [--description D] [--reorder-point R]")
	}

	cmd := UpdateProductCmd{SKU: fs.Arg(0)}
	if fs.Changed("name") {
		cmd.Name = name
	}
	if fs.Changed("description") {
		cmd.Description = description
	}
	if fs.Changed("reorder-point") {
		cmd.ReorderPoint = reorderPoint
	}
	return cmd, nil
}

func parseAddStock(args []string) (Command, error) {
	sku, quantity, notes, err := parseStockArgs("add-stock", args)
	if err != nil {
		return nil, err
	}
	return AddStockCmd{SKU: sku, Quantity: quantity, Notes: notes}, nil
}

func parseRemoveStock(args []string) (Command, error) {
	sku, quantity, notes, err := parseStockArgs("remove-stock", args)
	if err != nil {
		return nil, err
	}
	return RemoveStockCmd{SKU: sku, Quantity: quantity, Notes: notes}, nil
}

// parseStockArgs parsea la forma común <sku> <cantidad> [--notes N] de
// add-stock y remove-stock.
func parseStockArgs(name string, args []string) (string, int, *string, error) {
	fs := newFlagSet(name)
	notes := fs.String("notes", "", "nota libre sobre el movimiento")

	if err := fs.Parse(args); err != nil {
		return "", 0, nil, err
	}
	if fs.NArg() < 2 {
		return "", 0, nil, fmt.Errorf("uso: %s <sku> <cantidad> [--notes N]", name)
	}
	quantity, err := parseInt(fs.Arg(1), "cantidad")
	if err != nil {
		return "", 0, nil, err
	}

	var notesPtr *string
	if fs.Changed("notes") {
		notesPtr = notes
	}
	return fs.Arg(0), quantity, notesPtr, nil
}

func parseHistory(args []string) (Command, error) {
	fs := newFlagSet("history")
	start := fs.String("start", "", "inicio del rango (YYYY-MM-DDTHH:MM:SS, UTC)")
	end := fs.String("end", "", "fin del rango (YYYY-MM-DDTHH:MM:SS, UTC)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() < 1 {
		return nil, fmt.Errorf("uso: history <sku> [--start F --end F]")
	}
	if fs.Changed("start") != fs.Changed("end") {
		return nil, fmt.Errorf("--start y --end deben indicarse juntos")
	}

	cmd := HistoryCmd{SKU: fs.Arg(0)}
	if fs.Changed("start") {
		startTime, err := parseDatetime(*start)
		if err != nil {
			return nil, err
		}
		endTime, err := parseDatetime(*end)
		if err != nil {
			return nil, err
		}
		cmd.Start = &startTime
		cmd.End = &endTime
	}
	return cmd, nil
}

func parseSingleSKU(args []string, name string, build func(string) Command) (Command, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("uso: %s <sku>", name)
	}
	return build(args[0]), nil
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseInt(s, field string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("valor inválido para %s: '%s' no es un número entero", field, s)
	}
	return n, nil
}

// parseDatetime interpreta una fecha-hora local del formato fijo de la
// CLI como instante UTC.
func parseDatetime(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida: '%s'; formato esperado YYYY-MM-DDTHH:MM:SS", s)
	}
	return t, nil
}
