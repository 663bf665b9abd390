package repository

import "github.com/jdvergara/cartera-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
// Get* devuelven (nil, nil) cuando no hay fila; Update y Delete devuelven
// domain.ErrNotFound cuando el id no existe.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	// GetByNumber busca por número de cliente sin distinguir mayúsculas.
	GetByNumber(number string) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id int64) error
}
