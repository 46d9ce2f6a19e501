package catalog_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/service/account"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP replaces the authenticated manufacturer's whole catalog with
// the submitted product list.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var updateDTO dto.CatalogUpdate
	err := json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	products, err := h.service.ReplaceCatalog(r.Context(), actor.ID, dto.ProductsToEntities(updateDTO.Products))
	if err != nil {
		switch {
		case errors.Is(err, account.ErrEmptyProductName),
			errors.Is(err, account.ErrInvalidPrice),
			errors.Is(err, account.ErrDuplicateProductName):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, account.ErrManufacturerNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CatalogResponse{
		Products: dto.ProductsFromEntities(products),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
