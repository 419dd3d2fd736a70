/**
 * @description
 * HTTP handlers for sender and beneficiary management plus account
 * registration. Senders and beneficiaries exist independently of orders and
 * are linked by reference when an order is created or updated.
 */

package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/eduremit/remittance-service/internal/domain"
)

// RegisterHandler creates an organisation together with its first user. The
// welcome email is best-effort and never fails the registration.
func (h *OrderHandlers) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.RegisterAccount(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, "register", err)
		return
	}

	log.Printf("level=info component=api endpoint=register outcome=created user_id=%s organisation_id=%s", user.ID, user.OrganisationID)
	h.writeJSON(w, http.StatusCreated, user)
}

// CreateSenderHandler creates a standalone sender record.
func (h *OrderHandlers) CreateSenderHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromContext(w, r)
	if !ok {
		return
	}

	var req domain.CreateSenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sender, err := h.service.CreateSender(r.Context(), actor, req)
	if err != nil {
		h.writeServiceError(w, "create_sender", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, sender)
}

// GetSenderHandler fetches a single sender by id.
func (h *OrderHandlers) GetSenderHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromContext(w, r)
	if !ok {
		return
	}
	senderID, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	sender, err := h.service.GetSender(r.Context(), actor, senderID)
	if err != nil {
		h.writeServiceError(w, "get_sender", err)
		return
	}
	h.writeJSON(w, http.StatusOK, sender)
}

// ListSendersHandler lists senders visible to the caller.
func (h *OrderHandlers) ListSendersHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromContext(w, r)
	if !ok {
		return
	}

	senders, err := h.service.ListSenders(r.Context(), actor)
	if err != nil {
		h.writeServiceError(w, "list_senders", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"senders": senders, "count": len(senders)})
}

// UpdateSenderHandler applies a partial update to a sender.
func (h *OrderHandlers) UpdateSenderHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromContext(w, r)
	if !ok {
		return
	}
	senderID, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateSenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sender, err := h.service.UpdateSender(r.Context(), actor, senderID, req)
	if err != nil {
		h.writeServiceError(w, "update_sender", err)
		return
	}
	h.writeJSON(w, http.StatusOK, sender)
}

// CreateBeneficiaryHandler creates a standalone beneficiary record.
func (h *OrderHandlers) CreateBeneficiaryHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromContext(w, r)
	if !ok {
		return
	}

	var req domain.CreateBeneficiaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	beneficiary, err := h.service.CreateBeneficiary(r.Context(), actor, req)
	if err != nil {
		h.writeServiceError(w, "create_beneficiary", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, beneficiary)
}

// GetBeneficiaryHandler fetches a single beneficiary by id.
func (h *OrderHandlers) GetBeneficiaryHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromContext(w, r)
	if !ok {
		return
	}
	beneficiaryID, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	beneficiary, err := h.service.GetBeneficiary(r.Context(), actor, beneficiaryID)
	if err != nil {
		h.writeServiceError(w, "get_beneficiary", err)
		return
	}
	h.writeJSON(w, http.StatusOK, beneficiary)
}

// UpdateBeneficiaryHandler applies a partial update to a beneficiary.
func (h *OrderHandlers) UpdateBeneficiaryHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromContext(w, r)
	if !ok {
		return
	}
	beneficiaryID, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateBeneficiaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	beneficiary, err := h.service.UpdateBeneficiary(r.Context(), actor, beneficiaryID, req)
	if err != nil {
		h.writeServiceError(w, "update_beneficiary", err)
		return
	}
	h.writeJSON(w, http.StatusOK, beneficiary)
}

// ListBeneficiariesHandler lists beneficiaries visible to the caller.
func (h *OrderHandlers) ListBeneficiariesHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromContext(w, r)
	if !ok {
		return
	}

	beneficiaries, err := h.service.ListBeneficiaries(r.Context(), actor)
	if err != nil {
		h.writeServiceError(w, "list_beneficiaries", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"beneficiaries": beneficiaries, "count": len(beneficiaries)})
}
