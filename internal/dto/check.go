package dto

type CreateCheckRequestDTO struct {
	ApplicationID int64   `json:"applicationId" validate:"required"`
	Date          string  `json:"date" example:"09/12/2024"`
	Product       string  `json:"product" validate:"required"`
	Quantity      float64 `json:"quantity"`
	PricePerUnit  float64 `json:"pricePerUnit"`
	Unit          string  `json:"unit"`
}

type UpdateCheckRequestDTO struct {
	Date         *string  `json:"date,omitempty"`
	Product      *string  `json:"product,omitempty"`
	Quantity     *float64 `json:"quantity,omitempty"`
	PricePerUnit *float64 `json:"pricePerUnit,omitempty"`
	Unit         *string  `json:"unit,omitempty"`
}

// CheckFilterDTO filters the cross-application check listing.
type CheckFilterDTO struct {
	Search     string
	CompanyIDs []int64
	SellerIDs  []int64
	DateFrom   string
	DateTo     string
	SumFrom    *float64
	SumTo      *float64
	Page       int
	Limit      int
}

type CheckListItemDTO struct {
	ID            int64           `json:"id"`
	CheckNumber   int64           `json:"checkNumber"`
	ApplicationID int64           `json:"applicationId"`
	Date          string          `json:"date" example:"09/12/2024"`
	Product       string          `json:"product"`
	Quantity      float64         `json:"quantity"`
	PricePerUnit  float64         `json:"pricePerUnit"`
	Unit          string          `json:"unit"`
	LineTotal     string          `json:"lineTotal" example:"6486.00"`
	Company       CompanyShortDTO `json:"company"`
	Seller        SellerShortDTO  `json:"seller"`
}

type CheckListResponseDTO struct {
	Checks []CheckListItemDTO `json:"checks"`
	Total  int64              `json:"total"`
	Page   int                `json:"page"`
	Pages  int                `json:"pages"`
}
