package manufacturer_register_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/dto"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var registerDTO dto.ManufacturerRegister
	err := json.NewDecoder(r.Body).Decode(&registerDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	registration := entities.ManufacturerRegistration{
		CompanyName: &registerDTO.CompanyName,
		OwnerName:   &registerDTO.OwnerName,
		Username:    &registerDTO.Username,
		Email:       &registerDTO.Email,
		Phone:       &registerDTO.Phone,
		City:        &registerDTO.City,
		State:       &registerDTO.State,
		Password:    &registerDTO.Password,
	}

	id, err := h.service.RegisterManufacturer(r.Context(), registration)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrMissingRequiredFields),
			errors.Is(err, account.ErrInvalidName),
			errors.Is(err, account.ErrInvalidUsername),
			errors.Is(err, account.ErrInvalidEmail),
			errors.Is(err, account.ErrInvalidPhone),
			errors.Is(err, account.ErrInvalidPassword):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, account.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.RegisterResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
