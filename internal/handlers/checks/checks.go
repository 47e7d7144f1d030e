package checks

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	"github.com/checkplatform/checkdesk/pkg/utils"
)

//go:generate mockgen -source=checks.go -destination=checks_mock.go -package=checks

type Service interface {
	Create(ctx context.Context, in dto.CreateCheckRequestDTO) (*domain.Check, error)
	Update(ctx context.Context, id int64, in dto.UpdateCheckRequestDTO) (*domain.Check, error)
	Delete(ctx context.Context, id int64) error
	ListForApplication(ctx context.Context, applicationID int64) ([]dto.CheckResponseDTO, error)
	List(ctx context.Context, f dto.CheckFilterDTO) (*dto.CheckListResponseDTO, error)
	Export(ctx context.Context, f dto.CheckFilterDTO) ([]dto.CheckListItemDTO, error)
}

type CheckHandler struct {
	checkService Service
}

func New(checkService Service) *CheckHandler {
	return &CheckHandler{
		checkService: checkService,
	}
}

func parseFilter(r *http.Request) dto.CheckFilterDTO {
	return dto.CheckFilterDTO{
		Search:     r.URL.Query().Get("search"),
		CompanyIDs: utils.QueryInt64s(r, "companyIds"),
		SellerIDs:  utils.QueryInt64s(r, "sellerIds"),
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
//	@Summary		Add a check to an application
//	@Description	Create a check and recompute the application totals
//	@Tags			Checks
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateCheckRequestDTO	true	"Check body"
//	@Security		BearerAuth
//	@Success		201	{object}	utils.Response	"Check created"
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/checks [post]
func (h *CheckHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCheckRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ApplicationID == 0 || req.Product == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Application id and product are required")
		return
	}

	check, err := h.checkService.Create(r.Context(), req)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, map[string]int64{
		"id":          check.ID,
		"checkNumber": check.CheckNumber,
	})
}

// Update godoc
//
//	@Summary		Edit a check
//	@Description	Change check fields and recompute the application totals
//	@Tags			Checks
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Check id"
//	@Param			request	body	dto.UpdateCheckRequestDTO	true	"Changes"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Check updated"
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		404	{object}	utils.Response	"Check not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/checks/{id} [put]
func (h *CheckHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid check id")
		return
	}

	var req dto.UpdateCheckRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.checkService.Update(r.Context(), id, req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Check updated"})
}

// Delete godoc
//
//	@Summary		Delete a check
//	@Description	Remove a check and recompute the application totals
//	@Tags			Checks
//	@Produce		json
//	@Param			id	path	int	true	"Check id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Check deleted"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		404	{object}	utils.Response	"Check not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/checks/{id} [delete]
func (h *CheckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid check id")
		return
	}

	if err := h.checkService.Delete(r.Context(), id); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Check deleted"})
}

// ListForApplication godoc
//
//	@Summary		Checks of an application
//	@Description	All checks of one application, newest first
//	@Tags			Checks
//	@Produce		json
//	@Param			id	path	int	true	"Application id"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.CheckResponseDTO
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications/{id}/checks [get]
func (h *CheckHandler) ListForApplication(w http.ResponseWriter, r *http.Request) {
	applicationID, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	checks, err := h.checkService.ListForApplication(r.Context(), applicationID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, checks)
}

// List godoc
//
//	@Summary		List checks across applications
//	@Description	Paginated checks with filtering by search, company, seller, date and line total range
//	@Tags			Checks
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CheckListResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid filter"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/checks [get]
func (h *CheckHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.checkService.List(r.Context(), parseFilter(r))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Export godoc
//
//	@Summary		Export checks
//	@Description	Unpaginated filtered check rows
//	@Tags			Checks
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.CheckListItemDTO
//	@Failure		400	{object}	utils.Response	"Invalid filter"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/checks/export [get]
func (h *CheckHandler) Export(w http.ResponseWriter, r *http.Request) {
	rows, err := h.checkService.Export(r.Context(), parseFilter(r))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, rows)
}
