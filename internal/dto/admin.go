package dto

type UpdateAdminRequestDTO struct {
	Login        *string `json:"login,omitempty"`
	Password     *string `json:"password,omitempty"`
	Name         *string `json:"name,omitempty"`
	IsSuperAdmin *bool   `json:"isSuperAdmin,omitempty"`
}

type AdminResponseDTO struct {
	ID           int64  `json:"id"`
	Login        string `json:"login"`
	Name         string `json:"name"`
	IsSuperAdmin bool   `json:"isSuperAdmin"`
}
