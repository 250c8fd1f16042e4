package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/stock-control/internal/domain"
	"github.com/jhoicas/stock-control/internal/domain/entity"
	"github.com/jhoicas/stock-control/internal/domain/repository"
)

var _ repository.Storage = (*Storage)(nil)

// Storage implementación del puerto repository.Storage sobre dos
// archivos JSON independientes. Cada guardado sobrescribe el archivo
// completo; no hay escritura incremental.
type Storage struct {
	productsPath     string
	transactionsPath string
}

// New construye el adaptador sobre un directorio: los productos van a
// {dir}/products.json y las transacciones a {dir}/transactions.json.
func New(dir string) *Storage {
	return &Storage{
		productsPath:     filepath.Join(dir, "products.json"),
		transactionsPath: filepath.Join(dir, "transactions.json"),
	}
}

// NewWithPaths construye el adaptador con rutas explícitas por archivo.
func NewWithPaths(productsPath, transactionsPath string) *Storage {
	return &Storage{
		productsPath:     productsPath,
		transactionsPath: transactionsPath,
	}
}

// LoadProducts carga la colección de productos; un archivo inexistente
// o vacío equivale a una colección vacía.
func (s *Storage) LoadProducts() ([]*entity.Product, error) {
	return readJSONFile[*entity.Product](s.productsPath)
}

// SaveProducts sobrescribe el archivo de productos con la colección
// completa.
func (s *Storage) SaveProducts(products []*entity.Product) error {
	return writeJSONFile(s.productsPath, products)
}

// LoadTransactions carga el ledger de transacciones; mismo contrato que
// LoadProducts.
func (s *Storage) LoadTransactions() ([]entity.Transaction, error) {
	return readJSONFile[entity.Transaction](s.transactionsPath)
}

// SaveTransactions sobrescribe el archivo de transacciones con el
// ledger completo.
func (s *Storage) SaveTransactions(transactions []entity.Transaction) error {
	return writeJSONFile(s.transactionsPath, transactions)
}

// readJSONFile lee y decodifica una colección. Datos corruptos producen
// un error envuelto en domain.ErrStorage, nunca un resultado parcial.
func readJSONFile[T any](path string) ([]T, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("%w: leer %s: %v", domain.ErrStorage, path, err)
	}
	if strings.TrimSpace(string(contents)) == "" {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(contents, &records); err != nil {
		return nil, fmt.Errorf("%w: interpretar %s: %v", domain.ErrStorage, path, err)
	}
	return records, nil
}

// writeJSONFile serializa la colección y sobrescribe el archivo,
// creando el directorio padre si hace falta.
func writeJSONFile[T any](path string, records []T) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: crear directorio %s: %v", domain.ErrStorage, dir, err)
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: serializar %s: %v", domain.ErrStorage, path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: escribir %s: %v", domain.ErrStorage, path, err)
	}
	return nil
}
