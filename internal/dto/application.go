package dto

// CheckInputDTO is a check as submitted on application create or edit.
// Date is accepted as DD/MM/YYYY or DD/MM/YY.
type CheckInputDTO struct {
	Date         string  `json:"date" example:"09/12/2024"`
	Product      string  `json:"product" example:"Cement M500"`
	Quantity     float64 `json:"quantity" example:"12"`
	PricePerUnit float64 `json:"pricePerUnit" example:"540.5"`
	Unit         string  `json:"unit" example:"bag"`
}

type CreateApplicationRequestDTO struct {
	CompanyName string          `json:"companyName" validate:"required"`
	CompanyINN  string          `json:"companyInn" validate:"required"`
	SellerID    int64           `json:"sellerId" validate:"required"`
	SaveCompany bool            `json:"saveCompany"`
	Checks      []CheckInputDTO `json:"checks"`
}

type UpdateApplicationRequestDTO struct {
	CompanyName    *string         `json:"companyName,omitempty"`
	CompanyINN     *string         `json:"companyInn,omitempty"`
	SellerID       *int64          `json:"sellerId,omitempty"`
	Commission     *float64        `json:"commission,omitempty"`
	RemoveCheckIDs []int64         `json:"removeCheckIds,omitempty"`
	NewChecks      []CheckInputDTO `json:"newChecks,omitempty"`
}

type UpdateApplicationInfoRequestDTO struct {
	CompanyName *string  `json:"companyName,omitempty"`
	CompanyINN  *string  `json:"companyInn,omitempty"`
	SellerID    *int64   `json:"sellerId,omitempty"`
	Commission  *float64 `json:"commission,omitempty"`
}

type SetStatusRequestDTO struct {
	Status []string `json:"status" example:"created,issued"`
}

// ApplicationFilterDTO carries listing filters decoded from query params.
// Dates use the ISO form YYYY-MM-DD.
type ApplicationFilterDTO struct {
	Search     string
	CompanyIDs []int64
	SellerIDs  []int64
	UserIDs    []int64
	Statuses   []string
	ActiveOnly bool
	DateFrom   string
	DateTo     string
	SumFrom    *float64
	SumTo      *float64
	Page       int
	Limit      int
}

type CompanyShortDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	INN  string `json:"inn"`
}

type SellerShortDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	INN    string `json:"inn"`
	TGLink string `json:"tgLink"`
	Type   string `json:"type"`
}

type UserShortDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ApplicationListItemDTO struct {
	ID                int64           `json:"id"`
	ApplicationNumber int64           `json:"applicationNumber"`
	Status            []string        `json:"status"`
	TotalAmount       string          `json:"totalAmount" example:"6486.00"`
	ChecksCount       int             `json:"checksCount"`
	CheckDateFrom     string          `json:"checkDateFrom,omitempty" example:"01/12/2024"`
	CheckDateTo       string          `json:"checkDateTo,omitempty" example:"09/12/2024"`
	CreatedDate       string          `json:"createdDate" example:"09/12/2024"`
	Company           CompanyShortDTO `json:"company"`
	Seller            SellerShortDTO  `json:"seller"`
	User              UserShortDTO    `json:"user"`
}

type ApplicationListResponseDTO struct {
	Applications []ApplicationListItemDTO `json:"applications"`
	Total        int                      `json:"total"`
	Page         int                      `json:"page"`
	Pages        int                      `json:"pages"`
}

type CheckResponseDTO struct {
	ID           int64   `json:"id"`
	CheckNumber  int64   `json:"checkNumber"`
	Date         string  `json:"date" example:"09/12/2024"`
	Product      string  `json:"product"`
	Quantity     float64 `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
	Unit         string  `json:"unit"`
	LineTotal    string  `json:"lineTotal" example:"6486.00"`
}

type CommissionDTO struct {
	Percentage string `json:"percentage" example:"10"`
	Amount     string `json:"amount" example:"648.60"`
}

type HistoryEntryDTO struct {
	ID        int64  `json:"id"`
	Kind      string `json:"kind" example:"status"`
	Message   string `json:"message" example:"Status added"`
	Status    string `json:"status,omitempty" example:"issued"`
	Action    string `json:"action,omitempty" example:"add"`
	AdminName string `json:"adminName"`
	CreatedAt string `json:"createdAt" example:"2024-12-09T16:09:57+03:00"`
}

type ApplicationDetailsResponseDTO struct {
	ID                int64              `json:"id"`
	ApplicationNumber int64              `json:"applicationNumber"`
	Status            []string           `json:"status"`
	TotalAmount       string             `json:"totalAmount" example:"6486.00"`
	VAT               string             `json:"vat" example:"1297.20"`
	Commission        CommissionDTO      `json:"commission"`
	ChecksCount       int                `json:"checksCount"`
	Checks            []CheckResponseDTO `json:"checks"`
	CheckDateFrom     string             `json:"checkDateFrom,omitempty"`
	CheckDateTo       string             `json:"checkDateTo,omitempty"`
	CreatedDate       string             `json:"createdDate" example:"09/12/2024"`
	Company           CompanyShortDTO    `json:"company"`
	Seller            SellerShortDTO     `json:"seller"`
	User              UserShortDTO       `json:"user"`
	History           []HistoryEntryDTO  `json:"history"`
}

type ApplicationExportRowDTO struct {
	ApplicationNumber int64  `json:"applicationNumber"`
	CreatedDate       string `json:"createdDate" example:"09/12/2024"`
	CompanyName       string `json:"companyName"`
	CompanyINN        string `json:"companyInn"`
	SellerName        string `json:"sellerName"`
	UserName          string `json:"userName"`
	Status            string `json:"status" example:"Created, In progress"`
	TotalAmount       string `json:"totalAmount" example:"6486.00"`
	ChecksCount       int    `json:"checksCount"`
}

type ActiveCountResponseDTO struct {
	Count int64 `json:"count"`
}

type SelectorDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	INN  string `json:"inn,omitempty"`
}

type SelectorsResponseDTO struct {
	Companies []SelectorDTO `json:"companies"`
	Sellers   []SelectorDTO `json:"sellers"`
	Users     []SelectorDTO `json:"users"`
}
