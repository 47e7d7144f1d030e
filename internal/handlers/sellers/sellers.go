package sellers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	"github.com/checkplatform/checkdesk/pkg/utils"
)

//go:generate mockgen -source=sellers.go -destination=sellers_mock.go -package=sellers

type Service interface {
	Create(ctx context.Context, in dto.CreateSellerRequestDTO) (*domain.Seller, error)
	GetByID(ctx context.Context, id int64) (*domain.Seller, error)
	List(ctx context.Context, types []string, search string) ([]domain.Seller, error)
	Update(ctx context.Context, id int64, in dto.UpdateSellerRequestDTO) (*domain.Seller, error)
	Delete(ctx context.Context, id int64) error
}

type SellerHandler struct {
	sellerService Service
}

func New(sellerService Service) *SellerHandler {
	return &SellerHandler{
		sellerService: sellerService,
	}
}

func toSellerDTO(s *domain.Seller) dto.SellerResponseDTO {
	return dto.SellerResponseDTO{
		ID:     s.ID,
		Name:   s.Name,
		INN:    s.INN,
		TGLink: s.TGLink,
		Type:   s.Type,
	}
}

// Create godoc
//
//	@Summary		Register a seller
//	@Description	Create a seller with a unique INN; type defaults to white
//	@Tags			Sellers
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateSellerRequestDTO	true	"Seller body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.SellerResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed INN or type"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		409	{object}	utils.Response	"INN already taken"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/sellers [post]
func (h *SellerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSellerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.INN == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and INN are required")
		return
	}

	seller, err := h.sellerService.Create(r.Context(), req)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toSellerDTO(seller))
}

// List godoc
//
//	@Summary		List sellers
//	@Description	Sellers filtered by type and name or INN search
//	@Tags			Sellers
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.SellerResponseDTO
//	@Failure		400	{object}	utils.Response	"Unknown seller type"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/sellers [get]
func (h *SellerHandler) List(w http.ResponseWriter, r *http.Request) {
	sellers, err := h.sellerService.List(r.Context(),
		utils.QueryStrings(r, "types"),
		r.URL.Query().Get("search"),
	)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	resp := make([]dto.SellerResponseDTO, 0, len(sellers))
	for i := range sellers {
		resp = append(resp, toSellerDTO(&sellers[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetByID godoc
//
//	@Summary		Seller details
//	@Tags			Sellers
//	@Produce		json
//	@Param			id	path	int	true	"Seller id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SellerResponseDTO
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		404	{object}	utils.Response	"Seller not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/sellers/{id} [get]
func (h *SellerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid seller id")
		return
	}

	seller, err := h.sellerService.GetByID(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSellerDTO(seller))
}

// Update godoc
//
//	@Summary		Edit a seller
//	@Tags			Sellers
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Seller id"
//	@Param			request	body	dto.UpdateSellerRequestDTO	true	"Changes"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SellerResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed INN or type"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		404	{object}	utils.Response	"Seller not found"
//	@Failure		409	{object}	utils.Response	"INN already taken"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/sellers/{id} [put]
func (h *SellerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid seller id")
		return
	}

	var req dto.UpdateSellerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	seller, err := h.sellerService.Update(r.Context(), id, req)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSellerDTO(seller))
}

// Delete godoc
//
//	@Summary		Delete a seller
//	@Tags			Sellers
//	@Produce		json
//	@Param			id	path	int	true	"Seller id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Seller deleted"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		404	{object}	utils.Response	"Seller not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/sellers/{id} [delete]
func (h *SellerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid seller id")
		return
	}

	if err := h.sellerService.Delete(r.Context(), id); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Seller deleted"})
}
