package dto

type UpdateCompanyRequestDTO struct {
	Name *string `json:"name,omitempty"`
	INN  *string `json:"inn,omitempty"`
}

type CompanyListItemDTO struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	INN                string `json:"inn"`
	TotalApplications  int    `json:"totalApplications"`
	ActiveApplications int    `json:"activeApplications"`
}

type CompanyListResponseDTO struct {
	Companies []CompanyListItemDTO `json:"companies"`
	Total     int64                `json:"total"`
	Page      int                  `json:"page"`
	Pages     int                  `json:"pages"`
}

type CompanyStatisticsDTO struct {
	TotalApplications  int    `json:"totalApplications"`
	ActiveApplications int    `json:"activeApplications"`
	TotalAmount        string `json:"totalAmount" example:"125300.00"`
	ActiveAmount       string `json:"activeAmount" example:"6486.00"`
}

type CompanyDetailsResponseDTO struct {
	ID         int64                `json:"id"`
	Name       string               `json:"name"`
	INN        string               `json:"inn"`
	Statistics CompanyStatisticsDTO `json:"statistics"`
}
