package dto

// CreateCustomerRequest cuerpo de POST /api/customer.
type CreateCustomerRequest struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// EditCustomerRequest cuerpo de PUT /api/customer/:id.
// El Id del cuerpo debe coincidir con el de la ruta.
type EditCustomerRequest struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
}
