package entity

import "time"

// Customer representa un cliente deudor de la cartera.
// Number es la llave de negocio externa usada para conciliar importaciones
// (comparación sin distinción de mayúsculas). No lleva constraint UNIQUE:
// el dato llega de sistemas externos y puede traer duplicados históricos.
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Number    string    `json:"number"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
