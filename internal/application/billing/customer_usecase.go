package billing

import (
	"strings"
	"time"

	"github.com/jdvergara/cartera-api/internal/application/dto"
	"github.com/jdvergara/cartera-api/internal/domain"
	"github.com/jdvergara/cartera-api/internal/domain/entity"
	"github.com/jdvergara/cartera-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD de clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente. Name y Number son obligatorios.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*entity.Customer, error) {
	name := strings.TrimSpace(in.Name)
	number := strings.TrimSpace(in.Number)
	if name == "" || number == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		Name:      name,
		Number:    number,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Get obtiene un cliente por id. ErrNotFound si no existe.
func (uc *CustomerUseCase) Get(id int64) (*entity.Customer, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

// List lista todos los clientes.
func (uc *CustomerUseCase) List() ([]*entity.Customer, error) {
	return uc.repo.List()
}

// Update actualiza un cliente existente. El id de la ruta debe coincidir con el del cuerpo.
func (uc *CustomerUseCase) Update(id int64, in dto.EditCustomerRequest) error {
	if id != in.ID {
		return domain.ErrInvalidInput
	}
	name := strings.TrimSpace(in.Name)
	number := strings.TrimSpace(in.Number)
	if name == "" || number == "" {
		return domain.ErrInvalidInput
	}
	customer := &entity.Customer{
		ID:        id,
		Name:      name,
		Number:    number,
		UpdatedAt: time.Now(),
	}
	return uc.repo.Update(customer)
}

// Delete elimina un cliente. ErrNotFound si no existe; ErrWriteFailed si tiene facturas.
func (uc *CustomerUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}
