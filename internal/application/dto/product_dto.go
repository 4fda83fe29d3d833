package dto

import (
	"time"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
)

// ConstituentRequest constituyente de un bundle en la petición.
type ConstituentRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateProductRequest cuerpo para registrar un producto.
// Kind acepta SIMPLE (por defecto) o BUNDLE; un bundle exige constituyentes.
type CreateProductRequest struct {
	Name         string               `json:"name"`
	Code         string               `json:"code,omitempty"`
	Kind         string               `json:"kind,omitempty"`
	Constituents []ConstituentRequest `json:"constituents,omitempty"`
}

// ConstituentResponse constituyente de un bundle en la respuesta.
type ConstituentResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// ProductResponse producto del catálogo.
type ProductResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Code         string                `json:"code,omitempty"`
	Kind         string                `json:"kind"`
	Constituents []ConstituentResponse `json:"constituents,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// ToProductResponse convierte la entidad de dominio al DTO de salida.
func ToProductResponse(p *entity.Product) ProductResponse {
	resp := ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Code:      p.Code,
		Kind:      string(p.Kind),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	for _, c := range p.Constituents {
		resp.Constituents = append(resp.Constituents, ConstituentResponse{
			ProductID: c.ProductID,
			Quantity:  c.Quantity,
		})
	}
	return resp
}
