package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	pkgauth "github.com/checkplatform/checkdesk/pkg/auth"
	"github.com/checkplatform/checkdesk/pkg/utils"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=auth

type Service interface {
	LoginUser(ctx context.Context, key string) (string, *domain.User, error)
	LoginAdmin(ctx context.Context, login, password string) (string, *domain.Admin, error)
	RegisterAdmin(ctx context.Context, actorID int64, in dto.AdminRegisterRequestDTO) (*domain.Admin, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// UserLogin godoc
//
//	@Summary		Authenticate user by access key
//	@Description	Exchange a personal access key for a client JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UserLoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.UserLoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid access key"
//	@Failure		403		{object}	utils.Response	"User is blocked"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) UserLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.UserLoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Key == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Access key is required")
		return
	}

	token, user, err := h.authService.LoginUser(r.Context(), req.Key)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserLoginResponseDTO{
		Token: token,
		User: dto.UserResponseDTO{
			ID:        user.ID,
			Name:      user.Name,
			CanSave:   user.CanSave,
			IsBlocked: user.IsBlocked,
		},
	})
}

// AdminLogin godoc
//
//	@Summary		Authenticate admin
//	@Description	Log in with an admin account and get an admin JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdminLoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.AdminLoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/admin/login [post]
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminLoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Login == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Login and password are required")
		return
	}

	token, admin, err := h.authService.LoginAdmin(r.Context(), req.Login, req.Password)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminLoginResponseDTO{
		Token: token,
		Admin: dto.AdminResponseDTO{
			ID:           admin.ID,
			Login:        admin.Login,
			Name:         admin.Name,
			IsSuperAdmin: admin.IsSuperAdmin,
		},
	})
}

// AdminRegister godoc
//
//	@Summary		Register a new admin
//	@Description	Create an admin account with a unique login. Requires a super admin token, except for the very first account which is created openly and becomes the super admin.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdminRegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.AdminResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Super admin rights required"
//	@Failure		409		{object}	utils.Response	"Login already taken"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/admin/register [post]
func (h *AuthHandler) AdminRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminRegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Login == "" || req.Password == "" || req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Login, password and name are required")
		return
	}

	// Zero actor means the open bootstrap path; the service only allows it
	// while no admins exist.
	actorID, _ := r.Context().Value(pkgauth.AdminIDKey).(int64)

	admin, err := h.authService.RegisterAdmin(r.Context(), actorID, req)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminResponseDTO{
		ID:           admin.ID,
		Login:        admin.Login,
		Name:         admin.Name,
		IsSuperAdmin: admin.IsSuperAdmin,
	})
}
