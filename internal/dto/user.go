package dto

type RegisterUserRequestDTO struct {
	Name    string `json:"name" validate:"required"`
	CanSave bool   `json:"canSave"`
}

type UpdateUserRequestDTO struct {
	Name      *string `json:"name,omitempty"`
	CanSave   *bool   `json:"canSave,omitempty"`
	IsBlocked *bool   `json:"isBlocked,omitempty"`
}

type UserResponseDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Key       string `json:"key,omitempty"`
	CanSave   bool   `json:"canSave"`
	IsBlocked bool   `json:"isBlocked"`
}

type UserListItemDTO struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Key                string `json:"key"`
	CanSave            bool   `json:"canSave"`
	IsBlocked          bool   `json:"isBlocked"`
	TotalApplications  int    `json:"totalApplications"`
	ActiveApplications int    `json:"activeApplications"`
}

type SaveCompanyRequestDTO struct {
	CompanyID int64 `json:"companyId" validate:"required"`
}

type UserInfoResponseDTO struct {
	User               UserResponseDTO `json:"user"`
	TotalApplications  int             `json:"totalApplications"`
	ActiveApplications int             `json:"activeApplications"`
}
