package dto

type CreateSellerRequestDTO struct {
	Name   string `json:"name" validate:"required"`
	INN    string `json:"inn" validate:"required"`
	TGLink string `json:"tgLink"`
	Type   string `json:"type" example:"white"`
}

type UpdateSellerRequestDTO struct {
	Name   *string `json:"name,omitempty"`
	INN    *string `json:"inn,omitempty"`
	TGLink *string `json:"tgLink,omitempty"`
	Type   *string `json:"type,omitempty"`
}

type SellerResponseDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	INN    string `json:"inn"`
	TGLink string `json:"tgLink"`
	Type   string `json:"type"`
}
