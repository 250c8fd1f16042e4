package inventory

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-control/internal/domain"
	"github.com/jhoicas/stock-control/internal/domain/entity"
	"github.com/jhoicas/stock-control/internal/domain/repository"
	"github.com/jhoicas/stock-control/pkg/logger"
)

// Service es el dueño único del estado del inventario: productos
// indexados por SKU para búsqueda rápida y el ledger de transacciones en
// orden de inserción. Toda lectura o mutación pasa por aquí; cada
// mutación persiste ambas colecciones antes de devolver el control.
//
// Diseñado para un solo dueño por proceso: sin acceso concurrente.
type Service struct {
	products     map[string]*entity.Product
	transactions []entity.Transaction
	storage      repository.Storage
	log          *logger.Logger
}

// New construye el servicio cargando el estado previo desde storage.
// Un storage vacío (primera ejecución) produce un inventario vacío;
// datos corruptos producen un error envuelto en domain.ErrStorage.
func New(storage repository.Storage, log *logger.Logger) (*Service, error) {
	loaded, err := storage.LoadProducts()
	if err != nil {
		return nil, err
	}
	products := make(map[string]*entity.Product, len(loaded))
	for _, p := range loaded {
		products[p.SKU] = p
	}

	transactions, err := storage.LoadTransactions()
	if err != nil {
		return nil, err
	}

	return &Service{
		products:     products,
		transactions: transactions,
		storage:      storage,
		log:          log,
	}, nil
}

// CreateProduct crea un producto nuevo con un ID fresco y lo persiste.
// Falla con ErrInvalidInput si sku o name están vacíos o las cantidades
// son negativas, y con ErrDuplicateSKU si el SKU ya está en uso.
func (s *Service) CreateProduct(sku, name, description string, initialQuantity, reorderPoint int) (*entity.Product, error) {
	if strings.TrimSpace(sku) == "" {
		return nil, fmt.Errorf("%w: el SKU no puede estar vacío", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: el nombre no puede estar vacío", domain.ErrInvalidInput)
	}
	if initialQuantity < 0 {
		return nil, fmt.Errorf("%w: la cantidad inicial no puede ser negativa", domain.ErrInvalidInput)
	}
	if reorderPoint < 0 {
		return nil, fmt.Errorf("%w: el punto de reorden no puede ser negativo", domain.ErrInvalidInput)
	}
	if _, exists := s.products[sku]; exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateSKU, sku)
	}

	product := &entity.Product{
		ID:           uuid.New().String(),
		SKU:          sku,
		Name:         name,
		Description:  description,
		Quantity:     initialQuantity,
		ReorderPoint: reorderPoint,
	}
	s.products[sku] = product

	if err := s.persistProducts(); err != nil {
		return nil, err
	}
	s.log.Debug().Str("sku", sku).Int("quantity", initialQuantity).Msg("producto creado")
	return product, nil
}

// UpdateProduct modifica los campos provistos (no nil) de un producto
// existente; los omitidos conservan su valor. ID, SKU y Quantity no se
// tocan, y el ledger no se inspecciona ni se altera.
func (s *Service) UpdateProduct(sku string, name, description *string, reorderPoint *int) (*entity.Product, error) {
	product, exists := s.products[sku]
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, sku)
	}
	if name != nil && strings.TrimSpace(*name) == "" {
		return nil, fmt.Errorf("%w: el nombre no puede estar vacío", domain.ErrInvalidInput)
	}
	if reorderPoint != nil && *reorderPoint < 0 {
		return nil, fmt.Errorf("%w: el punto de reorden no puede ser negativo", domain.ErrInvalidInput)
	}

	if name != nil {
		product.Name = *name
	}
	if description != nil {
		product.Description = *description
	}
	if reorderPoint != nil {
		product.ReorderPoint = *reorderPoint
	}

	if err := s.persistProducts(); err != nil {
		return nil, err
	}
	s.log.Debug().Str("sku", sku).Msg("producto actualizado")
	return product, nil
}

// AddStock incrementa el stock del producto y registra una transacción
// Addition en el ledger. Falla con ErrInvalidInput si quantity <= 0 y
// con ErrProductNotFound si el SKU no existe; en ambos casos no se crea
// transacción alguna.
func (s *Service) AddStock(sku string, quantity int, notes *string) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
	}
	product, exists := s.products[sku]
	if !exists {
		return fmt.Errorf("%w: %s", domain.ErrProductNotFound, sku)
	}

	product.Quantity += quantity
	s.appendTransaction(sku, entity.TransactionAddition, quantity, notes)

	if err := s.persistAll(); err != nil {
		return err
	}
	s.log.Debug().Str("sku", sku).Int("added", quantity).Int("quantity", product.Quantity).Msg("stock agregado")
	return nil
}

// RemoveStock descuenta stock del producto y registra una transacción
// Removal. Falla con ErrInsufficientStock si se solicita más de lo
// disponible; el stock queda intacto. Tras el descuento el producto
// puede volverse visible en ListLowStock (predicado derivado, no se
// crea registro de alerta).
func (s *Service) RemoveStock(sku string, quantity int, notes *string) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
	}
	product, exists := s.products[sku]
	if !exists {
		return fmt.Errorf("%w: %s", domain.ErrProductNotFound, sku)
	}
	if quantity > product.Quantity {
		return fmt.Errorf("%w: solicitado %d, disponible %d", domain.ErrInsufficientStock, quantity, product.Quantity)
	}

	product.Quantity -= quantity
	s.appendTransaction(sku, entity.TransactionRemoval, quantity, notes)

	if err := s.persistAll(); err != nil {
		return err
	}
	s.log.Debug().Str("sku", sku).Int("removed", quantity).Int("quantity", product.Quantity).Msg("stock retirado")
	return nil
}

// GetProduct devuelve el registro completo del producto con ese SKU.
func (s *Service) GetProduct(sku string) (*entity.Product, error) {
	product, exists := s.products[sku]
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, sku)
	}
	return product, nil
}

// ListProducts devuelve todos los productos vivos; el orden no está
// especificado.
func (s *Service) ListProducts() []*entity.Product {
	products := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	return products
}

// ListLowStock devuelve exactamente los productos con
// Quantity <= ReorderPoint; vacío cuando ninguno califica.
func (s *Service) ListLowStock() []*entity.Product {
	low := make([]*entity.Product, 0)
	for _, p := range s.products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	return low
}

// DeleteProduct elimina el producto y todas sus transacciones, sin
// importar el stock actual, y persiste ambas colecciones.
func (s *Service) DeleteProduct(sku string) error {
	if _, exists := s.products[sku]; !exists {
		return fmt.Errorf("%w: %s", domain.ErrProductNotFound, sku)
	}
	delete(s.products, sku)

	kept := s.transactions[:0]
	for _, t := range s.transactions {
		if t.ProductSKU != sku {
			kept = append(kept, t)
		}
	}
	s.transactions = kept

	if err := s.persistAll(); err != nil {
		return err
	}
	s.log.Debug().Str("sku", sku).Msg("producto eliminado")
	return nil
}

// GetTransactions devuelve todas las transacciones del SKU en orden
// ascendente por timestamp. Un SKU sin transacciones o inexistente
// devuelve una lista vacía, no un error.
func (s *Service) GetTransactions(sku string) []entity.Transaction {
	return s.filterTransactions(func(t *entity.Transaction) bool {
		return t.ProductSKU == sku
	})
}

// GetTransactionsInRange devuelve las transacciones del SKU con
// start <= timestamp <= end (ambos extremos inclusive), en orden
// ascendente por timestamp.
func (s *Service) GetTransactionsInRange(sku string, start, end time.Time) []entity.Transaction {
	return s.filterTransactions(func(t *entity.Transaction) bool {
		return t.ProductSKU == sku && !t.Timestamp.Before(start) && !t.Timestamp.After(end)
	})
}

func (s *Service) filterTransactions(match func(*entity.Transaction) bool) []entity.Transaction {
	result := make([]entity.Transaction, 0)
	for i := range s.transactions {
		if match(&s.transactions[i]) {
			result = append(result, s.transactions[i])
		}
	}
	// Orden de inserción estable entre timestamps iguales.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.Before(result[j].Timestamp)
	})
	return result
}

func (s *Service) appendTransaction(sku, kind string, quantity int, notes *string) {
	s.transactions = append(s.transactions, entity.Transaction{
		ID:         uuid.New().String(),
		ProductSKU: sku,
		Kind:       kind,
		Quantity:   quantity,
		Timestamp:  time.Now().UTC(),
		Notes:      notes,
	})
}

// persistProducts reescribe la colección completa de productos.
func (s *Service) persistProducts() error {
	products := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	if err := s.storage.SaveProducts(products); err != nil {
		// La mutación en memoria no se revierte: el estado puede quedar
		// por delante del almacenamiento (limitación conocida).
		s.log.Error().Err(err).Msg("persistir productos")
		return err
	}
	return nil
}

// persistAll reescribe ambas colecciones; se usa tras mutaciones que
// tocan producto y ledger a la vez.
func (s *Service) persistAll() error {
	if err := s.persistProducts(); err != nil {
		return err
	}
	if err := s.storage.SaveTransactions(s.transactions); err != nil {
		s.log.Error().Err(err).Msg("persistir transacciones")
		return err
	}
	return nil
}
