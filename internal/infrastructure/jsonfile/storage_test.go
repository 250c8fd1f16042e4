package jsonfile_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-control/internal/domain"
	"github.com/jhoicas/stock-control/internal/domain/entity"
	"github.com/jhoicas/stock-control/internal/infrastructure/jsonfile"
)

func sampleProduct() *entity.Product {
	return &entity.Product{
		ID:           "id-123",
		SKU:          "SKU001",
		Name:         "Tornillo",
		Description:  "Caja x100",
		Quantity:     100,
		ReorderPoint: 20,
	}
}

func sampleTransaction(notes *string) entity.Transaction {
	return entity.Transaction{
		ID:         "txn-123",
		ProductSKU: "SKU001",
		Kind:       entity.TransactionAddition,
		Quantity:   50,
		Timestamp:  time.Now().UTC(),
		Notes:      notes,
	}
}

func TestRoundTrip_Productos(t *testing.T) {
	store := jsonfile.New(t.TempDir())

	original := sampleProduct()
	require.NoError(t, store.SaveProducts([]*entity.Product{original}))

	loaded, err := store.LoadProducts()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, original, loaded[0], "todos los campos deben sobrevivir el round-trip")
}

func TestRoundTrip_Transacciones(t *testing.T) {
	store := jsonfile.New(t.TempDir())

	notes := "llegó el pedido"
	withNotes := sampleTransaction(&notes)
	withoutNotes := sampleTransaction(nil)
	withoutNotes.ID = "txn-456"
	withoutNotes.Kind = entity.TransactionRemoval

	require.NoError(t, store.SaveTransactions([]entity.Transaction{withNotes, withoutNotes}))

	loaded, err := store.LoadTransactions()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	require.NotNil(t, loaded[0].Notes)
	assert.Equal(t, "llegó el pedido", *loaded[0].Notes)
	assert.Nil(t, loaded[1].Notes, "notes ausente debe recargarse como nil")
	assert.Equal(t, entity.TransactionAddition, loaded[0].Kind)
	assert.Equal(t, entity.TransactionRemoval, loaded[1].Kind)
	assert.True(t, loaded[0].Timestamp.Equal(withNotes.Timestamp),
		"el timestamp debe conservar el instante exacto")
}

func TestRoundTrip_EstadoVacio(t *testing.T) {
	store := jsonfile.New(t.TempDir())

	require.NoError(t, store.SaveProducts([]*entity.Product{}))
	require.NoError(t, store.SaveTransactions([]entity.Transaction{}))

	products, err := store.LoadProducts()
	require.NoError(t, err)
	assert.Empty(t, products)

	transactions, err := store.LoadTransactions()
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestLoad_ArchivosInexistentes_DevuelveVacio(t *testing.T) {
	store := jsonfile.New(t.TempDir())

	products, err := store.LoadProducts()
	require.NoError(t, err, "sin datos previos no es un error")
	assert.Empty(t, products)

	transactions, err := store.LoadTransactions()
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestLoad_ArchivoVacio_DevuelveVacio(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte("  \n"), 0o644))

	store := jsonfile.New(dir)
	products, err := store.LoadProducts()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestLoad_JSONCorrupto_ReportaErrStorage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte("esto no es json {{{"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transactions.json"), []byte("[{\"id\": 42}]x"), 0o644))

	store := jsonfile.New(dir)

	_, err := store.LoadProducts()
	assert.ErrorIs(t, err, domain.ErrStorage, "datos corruptos nunca producen pánico ni resultado parcial")

	_, err = store.LoadTransactions()
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestSave_CreaElDirectorioDeDatos(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anidado", "datos")
	store := jsonfile.New(dir)

	require.NoError(t, store.SaveProducts([]*entity.Product{sampleProduct()}))

	_, err := os.Stat(filepath.Join(dir, "products.json"))
	assert.NoError(t, err, "el directorio debe crearse en el primer guardado")
}

func TestSave_SobrescrituraCompleta(t *testing.T) {
	store := jsonfile.New(t.TempDir())

	first := sampleProduct()
	second := sampleProduct()
	second.ID = "id-456"
	second.SKU = "SKU002"

	require.NoError(t, store.SaveProducts([]*entity.Product{first, second}))
	require.NoError(t, store.SaveProducts([]*entity.Product{second}))

	loaded, err := store.LoadProducts()
	require.NoError(t, err)
	require.Len(t, loaded, 1, "cada guardado sobrescribe la colección completa")
	assert.Equal(t, "SKU002", loaded[0].SKU)
}

func TestNewWithPaths_RutasExplicitas(t *testing.T) {
	dir := t.TempDir()
	store := jsonfile.NewWithPaths(
		filepath.Join(dir, "p.json"),
		filepath.Join(dir, "t.json"),
	)

	require.NoError(t, store.SaveProducts([]*entity.Product{sampleProduct()}))
	require.NoError(t, store.SaveTransactions([]entity.Transaction{sampleTransaction(nil)}))

	_, err := os.Stat(filepath.Join(dir, "p.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "t.json"))
	assert.NoError(t, err)
}
