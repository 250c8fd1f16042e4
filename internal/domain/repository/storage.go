package repository

import "github.com/jhoicas/stock-control/internal/domain/entity"

// Storage define el puerto de persistencia para las dos colecciones del
// inventario (DIP). Las operaciones Save sobrescriben la colección
// completa; no hay escritura incremental. Load devuelve una colección
// vacía cuando no existen datos previos y un error envuelto en
// domain.ErrStorage ante datos ilegibles o corruptos.
type Storage interface {
	LoadProducts() ([]*entity.Product, error)
	SaveProducts(products []*entity.Product) error
	LoadTransactions() ([]entity.Transaction, error)
	SaveTransactions(transactions []entity.Transaction) error
}
