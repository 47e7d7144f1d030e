package admins

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	"github.com/checkplatform/checkdesk/internal/service/adminservice"
	"github.com/checkplatform/checkdesk/pkg/auth"
	"github.com/checkplatform/checkdesk/pkg/utils"
)

//go:generate mockgen -source=admins.go -destination=admins_mock.go -package=admins

type Service interface {
	GetByID(ctx context.Context, id int64) (*domain.Admin, error)
	List(ctx context.Context, actorID int64) ([]dto.AdminResponseDTO, error)
	Update(ctx context.Context, actorID, id int64, in dto.UpdateAdminRequestDTO) (*domain.Admin, error)
	Delete(ctx context.Context, actorID, id int64) error
}

type AdminHandler struct {
	adminService Service
}

func New(adminService Service) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// Me godoc
//
//	@Summary		Current admin profile
//	@Tags			Admins
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AdminResponseDTO
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admins/me [get]
func (h *AdminHandler) Me(w http.ResponseWriter, r *http.Request) {
	adminID, ok := r.Context().Value(auth.AdminIDKey).(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Admin not authorized")
		return
	}

	admin, err := h.adminService.GetByID(r.Context(), adminID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, adminservice.ToAdminDTO(admin))
}

// List godoc
//
//	@Summary		List admins
//	@Description	Super admin only
//	@Tags			Admins
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.AdminResponseDTO
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		403	{object}	utils.Response	"Super admin required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admins [get]
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	actorID, ok := r.Context().Value(auth.AdminIDKey).(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Admin not authorized")
		return
	}

	admins, err := h.adminService.List(r.Context(), actorID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, admins)
}

// Update godoc
//
//	@Summary		Edit an admin
//	@Description	Admins edit their own account; editing others or granting the super flag needs super admin rights
//	@Tags			Admins
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Admin id"
//	@Param			request	body	dto.UpdateAdminRequestDTO	true	"Changes"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AdminResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		403	{object}	utils.Response	"Super admin required"
//	@Failure		404	{object}	utils.Response	"Admin not found"
//	@Failure		409	{object}	utils.Response	"Login already taken"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admins/{id} [put]
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID, ok := r.Context().Value(auth.AdminIDKey).(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Admin not authorized")
		return
	}

	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid admin id")
		return
	}

	var req dto.UpdateAdminRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	admin, err := h.adminService.Update(r.Context(), actorID, id, req)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, adminservice.ToAdminDTO(admin))
}

// Delete godoc
//
//	@Summary		Delete an admin
//	@Description	Super admin only; self-deletion and deleting the last remaining admin are refused
//	@Tags			Admins
//	@Produce		json
//	@Param			id	path	int	true	"Admin id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Admin deleted"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		403	{object}	utils.Response	"Super admin required"
//	@Failure		404	{object}	utils.Response	"Admin not found"
//	@Failure		409	{object}	utils.Response	"Last admin"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admins/{id} [delete]
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := r.Context().Value(auth.AdminIDKey).(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Admin not authorized")
		return
	}

	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid admin id")
		return
	}

	if err := h.adminService.Delete(r.Context(), actorID, id); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Admin deleted"})
}
