package applications

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	"github.com/checkplatform/checkdesk/pkg/auth"
	"github.com/checkplatform/checkdesk/pkg/utils"
)

//go:generate mockgen -source=applications.go -destination=applications_mock.go -package=applications

type Service interface {
	Create(ctx context.Context, userID int64, in dto.CreateApplicationRequestDTO) (*domain.Application, error)
	List(ctx context.Context, f dto.ApplicationFilterDTO) (*dto.ApplicationListResponseDTO, error)
	ListForUser(ctx context.Context, userID int64, f dto.ApplicationFilterDTO) (*dto.ApplicationListResponseDTO, error)
	Export(ctx context.Context, f dto.ApplicationFilterDTO) ([]dto.ApplicationExportRowDTO, error)
	GetDetails(ctx context.Context, id int64) (*dto.ApplicationDetailsResponseDTO, error)
	SetStatus(ctx context.Context, id, adminID int64, target []string) error
	Update(ctx context.Context, id, adminID int64, in dto.UpdateApplicationRequestDTO) error
	UpdateInfo(ctx context.Context, id, adminID int64, in dto.UpdateApplicationInfoRequestDTO) error
	GetHistory(ctx context.Context, id int64) ([]dto.HistoryEntryDTO, error)
	CountActive(ctx context.Context) (int64, error)
	Selectors(ctx context.Context) (*dto.SelectorsResponseDTO, error)
}

type ApplicationHandler struct {
	applicationService Service
}

func New(applicationService Service) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

func parseFilter(r *http.Request) dto.ApplicationFilterDTO {
	return dto.ApplicationFilterDTO{
		Search:     r.URL.Query().Get("search"),
		CompanyIDs: utils.QueryInt64s(r, "companyIds"),
		SellerIDs:  utils.QueryInt64s(r, "sellerIds"),
		UserIDs:    utils.QueryInt64s(r, "userIds"),
		Statuses:   utils.QueryStrings(r, "statuses"),
		ActiveOnly: utils.QueryBool(r, "activeOnly"),
		DateFrom:   r.URL.Query().Get("dateFrom"),
		DateTo:     r.URL.Query().Get("dateTo"),
		SumFrom:    utils.QueryFloatPtr(r, "sumFrom"),
		SumTo:      utils.QueryFloatPtr(r, "sumTo"),
		Page:       utils.QueryInt(r, "page"),
		Limit:      utils.QueryInt(r, "limit"),
	}
}

// Create godoc
//
//	@Summary		Submit a new application
//	@Description	Create an application with its checks for the authenticated user
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateApplicationRequestDTO	true	"Application body"
//	@Security		BearerAuth
//	@Success		201	{object}	utils.Response	"Application created"
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Saving companies is not allowed"
//	@Failure		409	{object}	utils.Response	"Company name does not match the registered INN"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications [post]
func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.CreateApplicationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CompanyName == "" || req.CompanyINN == "" || req.SellerID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Company name, INN and seller are required")
		return
	}

	app, err := h.applicationService.Create(r.Context(), userID, req)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, map[string]int64{
		"id":                app.ID,
		"applicationNumber": app.ApplicationNumber,
	})
}

// ListMy godoc
//
//	@Summary		List own applications
//	@Description	Paginated applications of the authenticated user
//	@Tags			Applications
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ApplicationListResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications/my [get]
func (h *ApplicationHandler) ListMy(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	resp, err := h.applicationService.ListForUser(r.Context(), userID, parseFilter(r))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// List godoc
//
//	@Summary		List applications
//	@Description	Paginated applications with filtering by search, company, seller, user, status, dates and sum range
//	@Tags			Applications
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ApplicationListResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid filter"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications [get]
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.applicationService.List(r.Context(), parseFilter(r))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Export godoc
//
//	@Summary		Export applications
//	@Description	Unpaginated filtered export rows
//	@Tags			Applications
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ApplicationExportRowDTO
//	@Failure		400	{object}	utils.Response	"Invalid filter"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications/export [get]
func (h *ApplicationHandler) Export(w http.ResponseWriter, r *http.Request) {
	rows, err := h.applicationService.Export(r.Context(), parseFilter(r))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, rows)
}

// GetByID godoc
//
//	@Summary		Application details
//	@Description	Full application card with checks, totals, commission and history
//	@Tags			Applications
//	@Produce		json
//	@Param			id	path	int	true	"Application id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ApplicationDetailsResponseDTO
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications/{id} [get]
func (h *ApplicationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	resp, err := h.applicationService.GetDetails(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// SetStatus godoc
//
//	@Summary		Replace application status set
//	@Description	Set the status tags of an application, recording history per added and removed tag
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"Application id"
//	@Param			request	body	dto.SetStatusRequestDTO	true	"Target status set"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Status updated"
//	@Failure		400	{object}	utils.Response	"Unknown or empty status set"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications/{id}/status [post]
func (h *ApplicationHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.AdminIDKey).(int64)
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	var req dto.SetStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.applicationService.SetStatus(r.Context(), id, adminID, req.Status); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Status updated"})
}

// Update godoc
//
//	@Summary		Edit an application
//	@Description	Change company, seller or commission, remove and add checks in one transaction
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int								true	"Application id"
//	@Param			request	body	dto.UpdateApplicationRequestDTO	true	"Changes"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Application updated"
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications/{id} [put]
func (h *ApplicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.AdminIDKey).(int64)
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	var req dto.UpdateApplicationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.applicationService.Update(r.Context(), id, adminID, req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Application updated"})
}

// UpdateInfo godoc
//
//	@Summary		Edit application info
//	@Description	Change company, seller or commission without touching checks
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int									true	"Application id"
//	@Param			request	body	dto.UpdateApplicationInfoRequestDTO	true	"Changes"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Application updated"
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications/{id}/info [patch]
func (h *ApplicationHandler) UpdateInfo(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.AdminIDKey).(int64)
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	var req dto.UpdateApplicationInfoRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.applicationService.UpdateInfo(r.Context(), id, adminID, req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Application updated"})
}

// History godoc
//
//	@Summary		Application history
//	@Description	Append-only change ledger of an application, oldest first
//	@Tags			Applications
//	@Produce		json
//	@Param			id	path	int	true	"Application id"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.HistoryEntryDTO
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications/{id}/history [get]
func (h *ApplicationHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	entries, err := h.applicationService.GetHistory(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, entries)
}

// ActiveCount godoc
//
//	@Summary		Count active applications
//	@Description	Number of applications that are not fully paid yet
//	@Tags			Applications
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ActiveCountResponseDTO
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications/active-count [get]
func (h *ApplicationHandler) ActiveCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.applicationService.CountActive(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ActiveCountResponseDTO{Count: count})
}

// Selectors godoc
//
//	@Summary		Filter selectors
//	@Description	Companies, sellers and users available for listing filters
//	@Tags			Applications
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SelectorsResponseDTO
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications/selectors [get]
func (h *ApplicationHandler) Selectors(w http.ResponseWriter, r *http.Request) {
	resp, err := h.applicationService.Selectors(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
