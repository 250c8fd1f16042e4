package cli_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-control/internal/interfaces/cli"
)

func args(s string) []string {
	return strings.Fields(s)
}

func TestParse_SinArgumentos_EsAyuda(t *testing.T) {
	cmd, err := cli.ParseArgs([]string{"stockctl"})
	require.NoError(t, err)
	assert.IsType(t, cli.HelpCmd{}, cmd)

	for _, alias := range []string{"help", "--help", "-h"} {
		cmd, err := cli.ParseArgs([]string{"stockctl", alias})
		require.NoError(t, err)
		assert.IsType(t, cli.HelpCmd{}, cmd)
	}
}

func TestParse_AddProduct(t *testing.T) {
	cmd, err := cli.ParseArgs(args("stockctl add-product SKU001 Tornillo Caja 100 20"))
	require.NoError(t, err)
	assert.Equal(t, cli.AddProductCmd{
		SKU:          "SKU001",
		Name:         "Tornillo",
		Description:  "Caja",
		Quantity:     100,
		ReorderPoint: 20,
	}, cmd)
}

func TestParse_AddProduct_ArgumentosInsuficientes(t *testing.T) {
	_, err := cli.ParseArgs(args("stockctl add-product SKU001 Tornillo"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uso: add-product")
}

func TestParse_AddProduct_CantidadNoNumerica(t *testing.T) {
	_, err := cli.ParseArgs(args("stockctl add-product SKU001 Tornillo Caja abc 20"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no es un número entero")
}

func TestParse_UpdateProduct_SoloFlagsProvistos(t *testing.T) {
	cmd, err := cli.ParseArgs(args("stockctl update-product SKU001 --name Nuevo --reorder-point 30"))
	require.NoError(t, err)

	update, ok := cmd.(cli.UpdateProductCmd)
	require.True(t, ok)
	assert.Equal(t, "SKU001", update.SKU)
	require.NotNil(t, update.Name)
	assert.Equal(t, "Nuevo", *update.Name)
	assert.Nil(t, update.Description, "flag no provisto debe quedar nil")
	require.NotNil(t, update.ReorderPoint)
	assert.Equal(t, 30, *update.ReorderPoint)
}

func TestParse_UpdateProduct_SinSKU(t *testing.T) {
	_, err := cli.ParseArgs(args("stockctl update-product --name Nuevo"))
	require.Error(t, err)
}

func TestParse_AddStock(t *testing.T) {
	cmd, err := cli.ParseArgs(args("stockctl add-stock SKU001 50"))
	require.NoError(t, err)

	add, ok := cmd.(cli.AddStockCmd)
	require.True(t, ok)
	assert.Equal(t, "SKU001", add.SKU)
	assert.Equal(t, 50, add.Quantity)
	assert.Nil(t, add.Notes)
}

func TestParse_AddStock_ConNotas(t *testing.T) {
	cmd, err := cli.ParseArgs(args("stockctl add-stock SKU001 50 --notes Pedido"))
	require.NoError(t, err)

	add := cmd.(cli.AddStockCmd)
	require.NotNil(t, add.Notes)
	assert.Equal(t, "Pedido", *add.Notes)
}

func TestParse_RemoveStock(t *testing.T) {
	cmd, err := cli.ParseArgs(args("stockctl remove-stock SKU001 10 --notes Venta"))
	require.NoError(t, err)

	remove, ok := cmd.(cli.RemoveStockCmd)
	require.True(t, ok)
	assert.Equal(t, 10, remove.Quantity)
	require.NotNil(t, remove.Notes)
	assert.Equal(t, "Venta", *remove.Notes)
}

func TestParse_ComandosDeUnSKU(t *testing.T) {
	cmd, err := cli.ParseArgs(args("stockctl view-product SKU001"))
	require.NoError(t, err)
	assert.Equal(t, cli.ViewProductCmd{SKU: "SKU001"}, cmd)

	cmd, err = cli.ParseArgs(args("stockctl delete-product SKU001"))
	require.NoError(t, err)
	assert.Equal(t, cli.DeleteProductCmd{SKU: "SKU001"}, cmd)

	_, err = cli.ParseArgs(args("stockctl view-product"))
	assert.Error(t, err, "el SKU es obligatorio")
}

func TestParse_ComandosSinArgumentos(t *testing.T) {
	cmd, err := cli.ParseArgs(args("stockctl list-products"))
	require.NoError(t, err)
	assert.IsType(t, cli.ListProductsCmd{}, cmd)

	cmd, err = cli.ParseArgs(args("stockctl low-stock"))
	require.NoError(t, err)
	assert.IsType(t, cli.LowStockCmd{}, cmd)
}

func TestParse_History_SinRango(t *testing.T) {
	cmd, err := cli.ParseArgs(args("stockctl history SKU001"))
	require.NoError(t, err)

	history, ok := cmd.(cli.HistoryCmd)
	require.True(t, ok)
	assert.Equal(t, "SKU001", history.SKU)
	assert.Nil(t, history.Start)
	assert.Nil(t, history.End)
}

func TestParse_History_ConRango(t *testing.T) {
	cmd, err := cli.ParseArgs(args("stockctl history SKU001 --start 2026-01-01T00:00:00 --end 2026-12-31T23:59:59"))
	require.NoError(t, err)

	history := cmd.(cli.HistoryCmd)
	require.NotNil(t, history.Start)
	require.NotNil(t, history.End)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *history.Start)
	assert.Equal(t, time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC), *history.End)
}

func TestParse_History_RangoIncompleto(t *testing.T) {
	_, err := cli.ParseArgs(args("stockctl history SKU001 --start 2026-01-01T00:00:00"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deben indicarse juntos")
}

func TestParse_History_FechaInvalida(t *testing.T) {
	_, err := cli.ParseArgs(args("stockctl history SKU001 --start ayer --end 2026-12-31T23:59:59"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fecha inválida")
}

func TestParse_ComandoDesconocido(t *testing.T) {
	_, err := cli.ParseArgs(args("stockctl inventar-stock"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "comando desconocido")
}
