package users

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	"github.com/checkplatform/checkdesk/pkg/auth"
	"github.com/checkplatform/checkdesk/pkg/utils"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=users

type Service interface {
	Register(ctx context.Context, in dto.RegisterUserRequestDTO) (*domain.User, error)
	List(ctx context.Context) ([]dto.UserListItemDTO, error)
	Update(ctx context.Context, id int64, in dto.UpdateUserRequestDTO) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	GetInfo(ctx context.Context, id int64) (*dto.UserInfoResponseDTO, error)
	SavedCompanies(ctx context.Context, userID int64) ([]dto.CompanyShortDTO, error)
	SaveCompany(ctx context.Context, userID, companyID int64) error
	RemoveSavedCompany(ctx context.Context, userID, companyID int64) error
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func toUserDTO(u *domain.User) dto.UserResponseDTO {
	return dto.UserResponseDTO{
		ID:        u.ID,
		Name:      u.Name,
		Key:       u.Key,
		CanSave:   u.CanSave,
		IsBlocked: u.IsBlocked,
	}
}

// Register godoc
//
//	@Summary		Register a client
//	@Description	Create a client account; the generated access key is returned once here
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.RegisterUserRequestDTO	true	"Client data"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.UserResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		409	{object}	utils.Response	"Name already taken"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	user, err := h.userService.Register(r.Context(), req)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toUserDTO(user))
}

// List godoc
//
//	@Summary		List clients
//	@Description	All clients with their application counters
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.UserListItemDTO
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, users)
}

// Update godoc
//
//	@Summary		Edit a client
//	@Description	Change client name, saving permission or blocked flag
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"User id"
//	@Param			request	body	dto.UpdateUserRequestDTO	true	"Changes"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.UserResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		409	{object}	utils.Response	"Name already taken"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id} [put]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.UpdateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.Update(r.Context(), id, req)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUserDTO(user))
}

// Delete godoc
//
//	@Summary		Delete a client
//	@Tags			Users
//	@Produce		json
//	@Param			id	path	int	true	"User id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"User deleted"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "User deleted"})
}

// Me godoc
//
//	@Summary		Current client profile
//	@Description	Profile of the authenticated client with application counters
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.UserInfoResponseDTO
//	@Failure		401	{object}	utils.Response	"Client not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Client not authorized")
		return
	}

	info, err := h.userService.GetInfo(r.Context(), userID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, info)
}

// SavedCompanies godoc
//
//	@Summary		Saved companies
//	@Description	Companies the authenticated client pinned for quick application creation
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.CompanyShortDTO
//	@Failure		401	{object}	utils.Response	"Client not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/me/companies [get]
func (h *UserHandler) SavedCompanies(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Client not authorized")
		return
	}

	companies, err := h.userService.SavedCompanies(r.Context(), userID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, companies)
}

// SaveCompany godoc
//
//	@Summary		Pin a company
//	@Description	Add a company to the client's saved set; requires the canSave permission
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.SaveCompanyRequestDTO	true	"Company to pin"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Company saved"
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Client not authorized"
//	@Failure		403	{object}	utils.Response	"Saving not allowed"
//	@Failure		404	{object}	utils.Response	"Company not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/me/companies [post]
func (h *UserHandler) SaveCompany(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Client not authorized")
		return
	}

	var req dto.SaveCompanyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CompanyID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Company id is required")
		return
	}

	if err := h.userService.SaveCompany(r.Context(), userID, req.CompanyID); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Company saved"})
}

// RemoveSavedCompany godoc
//
//	@Summary		Unpin a company
//	@Tags			Users
//	@Produce		json
//	@Param			id	path	int	true	"Company id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Company removed"
//	@Failure		401	{object}	utils.Response	"Client not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/me/companies/{id} [delete]
func (h *UserHandler) RemoveSavedCompany(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Client not authorized")
		return
	}

	companyID, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid company id")
		return
	}

	if err := h.userService.RemoveSavedCompany(r.Context(), userID, companyID); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Company removed"})
}
