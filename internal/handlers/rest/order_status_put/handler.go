package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/service/order"
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
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var updateDTO dto.OrderStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.service.ChangeStatus(r.Context(), actor, id, entities.OrderStatusType(updateDTO.Status))
	if err != nil {
		var transitionErr *order.InvalidTransitionError

		switch {
		case errors.Is(err, order.ErrUndefinedStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrActorNotAllowed),
			errors.Is(err, order.ErrNotOrderOwner):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.As(err, &transitionErr):
			h.writeInvalidTransition(w, transitionErr)
		case errors.Is(err, order.ErrInvalidTransition):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, order.ErrStatusConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrderFromEntity(updated)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// writeInvalidTransition answers a rejected transition with the set of
// statuses the order currently accepts.
func (h *Handler) writeInvalidTransition(w http.ResponseWriter, transitionErr *order.InvalidTransitionError) {
	allowed := make([]string, 0, len(transitionErr.Allowed))
	for _, status := range transitionErr.Allowed {
		allowed = append(allowed, status.String())
	}

	response := dto.InvalidTransitionResponse{
		Error:   transitionErr.Error(),
		Allowed: allowed,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
