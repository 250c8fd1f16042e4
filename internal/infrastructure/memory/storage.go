package memory

import (
	"github.com/jhoicas/stock-control/internal/domain/entity"
	"github.com/jhoicas/stock-control/internal/domain/repository"
)

var _ repository.Storage = (*Storage)(nil)

// Storage implementación en memoria del puerto repository.Storage.
// Guarda copias de los registros, por lo que sirve como doble de test y
// como backend efímero: mutar lo devuelto por Load no afecta lo
// guardado.
type Storage struct {
	products     []entity.Product
	transactions []entity.Transaction
}

// New construye un almacenamiento en memoria vacío.
func New() *Storage {
	return &Storage{}
}

// LoadProducts devuelve copias de los productos guardados.
func (s *Storage) LoadProducts() ([]*entity.Product, error) {
	products := make([]*entity.Product, len(s.products))
	for i := range s.products {
		p := s.products[i]
		products[i] = &p
	}
	return products, nil
}

// SaveProducts reemplaza la colección completa de productos.
func (s *Storage) SaveProducts(products []*entity.Product) error {
	s.products = make([]entity.Product, len(products))
	for i, p := range products {
		s.products[i] = *p
	}
	return nil
}

// LoadTransactions devuelve una copia del ledger guardado.
func (s *Storage) LoadTransactions() ([]entity.Transaction, error) {
	transactions := make([]entity.Transaction, len(s.transactions))
	copy(transactions, s.transactions)
	return transactions, nil
}

// SaveTransactions reemplaza el ledger completo.
func (s *Storage) SaveTransactions(transactions []entity.Transaction) error {
	s.transactions = make([]entity.Transaction, len(transactions))
	copy(s.transactions, transactions)
	return nil
}
