package companies

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	"github.com/checkplatform/checkdesk/pkg/utils"
)

//go:generate mockgen -source=companies.go -destination=companies_mock.go -package=companies

type Service interface {
	List(ctx context.Context, search string, page, limit int) (*dto.CompanyListResponseDTO, error)
	GetDetails(ctx context.Context, id int64) (*dto.CompanyDetailsResponseDTO, error)
	Update(ctx context.Context, id int64, in dto.UpdateCompanyRequestDTO) (*domain.Company, error)
}

// ApplicationService serves the per-company application listing.
type ApplicationService interface {
	ListForCompany(ctx context.Context, companyID int64, f dto.ApplicationFilterDTO) (*dto.ApplicationListResponseDTO, error)
}

type CompanyHandler struct {
	companyService     Service
	applicationService ApplicationService
}

func New(companyService Service, applicationService ApplicationService) *CompanyHandler {
	return &CompanyHandler{
		companyService:     companyService,
		applicationService: applicationService,
	}
}

// List godoc
//
//	@Summary		List companies
//	@Description	Paginated companies with application statistics, filtered by name or INN search
//	@Tags			Companies
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CompanyListResponseDTO
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/companies [get]
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.companyService.List(r.Context(),
		r.URL.Query().Get("search"),
		utils.QueryInt(r, "page"),
		utils.QueryInt(r, "limit"),
	)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetByID godoc
//
//	@Summary		Company details
//	@Description	Company card with aggregated application statistics
//	@Tags			Companies
//	@Produce		json
//	@Param			id	path	int	true	"Company id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CompanyDetailsResponseDTO
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		404	{object}	utils.Response	"Company not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/companies/{id} [get]
func (h *CompanyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid company id")
		return
	}

	resp, err := h.companyService.GetDetails(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Update godoc
//
//	@Summary		Edit a company
//	@Description	Change company name or INN; the INN must stay unique
//	@Tags			Companies
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Company id"
//	@Param			request	body	dto.UpdateCompanyRequestDTO	true	"Changes"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Company updated"
//	@Failure		400	{object}	utils.Response	"Malformed INN"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		404	{object}	utils.Response	"Company not found"
//	@Failure		409	{object}	utils.Response	"INN already taken"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/companies/{id} [put]
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid company id")
		return
	}

	var req dto.UpdateCompanyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.companyService.Update(r.Context(), id, req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Company updated"})
}

// Applications godoc
//
//	@Summary		Applications of a company
//	@Description	Paginated applications bound to one company, with in-memory status, seller, user and date filtering
//	@Tags			Companies
//	@Produce		json
//	@Param			id	path	int	true	"Company id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ApplicationListResponseDTO
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/companies/{id}/applications [get]
func (h *CompanyHandler) Applications(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid company id")
		return
	}

	f := dto.ApplicationFilterDTO{
		SellerIDs:  utils.QueryInt64s(r, "sellerIds"),
		UserIDs:    utils.QueryInt64s(r, "userIds"),
		Statuses:   utils.QueryStrings(r, "statuses"),
		ActiveOnly: utils.QueryBool(r, "activeOnly"),
		DateFrom:   r.URL.Query().Get("dateFrom"),
		DateTo:     r.URL.Query().Get("dateTo"),
		Page:       utils.QueryInt(r, "page"),
		Limit:      utils.QueryInt(r, "limit"),
	}

	resp, err := h.applicationService.ListForCompany(r.Context(), id, f)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
