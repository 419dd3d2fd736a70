/**
 * @description
 * This file contains the HTTP handlers for the remittance-service's order
 * endpoints. Handlers parse incoming requests, call the application service,
 * and translate the service's sentinel errors into HTTP status codes. They are
 * the bridge between the web layer and the business logic layer.
 *
 * @dependencies
 * - encoding/json, log, net/http: Standard Go libraries.
 * - github.com/go-chi/chi/v5: URL parameter extraction.
 * - internal/app, internal/domain, internal/store: Service logic, models, errors.
 * - pkg/rateclient, pkg/pdfclient: External collaborator sentinel errors.
 */

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/eduremit/remittance-service/internal/app"
	"github.com/eduremit/remittance-service/internal/domain"
	"github.com/eduremit/remittance-service/internal/quote"
	"github.com/eduremit/remittance-service/internal/store"
	"github.com/eduremit/remittance-service/pkg/pdfclient"
	"github.com/eduremit/remittance-service/pkg/rateclient"
)

// OrderHandlers holds the application service that handlers will use.
type OrderHandlers struct {
	service *app.Service
}

// NewOrderHandlers creates a new instance of OrderHandlers.
func NewOrderHandlers(service *app.Service) *OrderHandlers {
	return &OrderHandlers{service: service}
}

func (h *OrderHandlers) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("level=error component=api msg=\"failed to encode response\" err=%v", err)
	}
}

func (h *OrderHandlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

// writeReason writes an error with a machine-readable reason code, used for
// state-machine rejections so clients can distinguish them from plain
// validation failures.
func (h *OrderHandlers) writeReason(w http.ResponseWriter, status int, reason, message string) {
	h.writeJSON(w, status, map[string]string{"error": message, "reason": reason})
}

// writeServiceError maps the service's sentinel errors onto HTTP statuses.
// State-machine violations are 400 with a reason code; external-dependency
// failures surface as 503, never as validation errors.
func (h *OrderHandlers) writeServiceError(w http.ResponseWriter, endpoint string, err error) {
	switch {
	case errors.Is(err, app.ErrValidation), errors.Is(err, app.ErrInvalidAmount),
		errors.Is(err, quote.ErrNonPositiveAmount):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidStatus):
		h.writeReason(w, http.StatusBadRequest, "invalid_status", "Status is not in the allowed set")
	case errors.Is(err, domain.ErrTerminalState):
		h.writeReason(w, http.StatusBadRequest, "terminal_state", "Order is in a terminal state and can no longer be modified")
	case errors.Is(err, domain.ErrRateExpired):
		h.writeReason(w, http.StatusBadRequest, "rate_expired", "The quoted rate has expired; re-quote before locking")
	case errors.Is(err, quote.ErrQuoteInconsistency):
		h.writeReason(w, http.StatusBadRequest, "quote_inconsistency", "Stored quote breakdown no longer reconciles")
	case errors.Is(err, domain.ErrForbidden):
		h.writeError(w, http.StatusForbidden, "You do not have permission to perform this action")
	case errors.Is(err, app.ErrRateLimited):
		h.writeError(w, http.StatusTooManyRequests, "Too many requests; slow down")
	case errors.Is(err, store.ErrOrderNotFound), errors.Is(err, store.ErrSenderNotFound),
		errors.Is(err, store.ErrBeneficiaryNotFound), errors.Is(err, store.ErrDocumentNotFound),
		errors.Is(err, store.ErrUserNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrDuplicateEmail):
		h.writeError(w, http.StatusConflict, "An account with this email already exists")
	case errors.Is(err, rateclient.ErrRateUnavailable):
		h.writeError(w, http.StatusServiceUnavailable, "Live exchange rate is currently unavailable")
	case errors.Is(err, pdfclient.ErrRenderFailed):
		h.writeError(w, http.StatusServiceUnavailable, "Document rendering is currently unavailable")
	default:
		log.Printf("level=error component=api endpoint=%s msg=\"unhandled service error\" err=%v", endpoint, err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// actorFromContext pulls the authenticated actor or writes a 401.
func (h *OrderHandlers) actorFromContext(w http.ResponseWriter, r *http.Request) (domain.Actor, bool) {
	actor, ok := GetActor(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "Could not get user from context")
		return domain.Actor{}, false
	}
	return actor, true
}

func (h *OrderHandlers) parseIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

// CreateOrderHandler handles requests for creating a new remittance order.
func (h *OrderHandlers) CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromContext(w, r)
	if !ok {
		return
	}

	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("level=warn component=api endpoint=create_order outcome=reject reason=invalid_json err=%v", err)
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.service.CreateOrder(r.Context(), actor, req)
	if err != nil {
		h.writeServiceError(w, "create_order", err)
		return
	}

	log.Printf("level=info component=api endpoint=create_order outcome=created order_number=%s actor_id=%s", order.OrderNumber, actor.ID)
	h.writeJSON(w, http.StatusCreated, order)
}

// ListOrdersHandler lists orders visible to the caller, with optional status,
// date-range and pagination filters.
func (h *OrderHandlers) ListOrdersHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromContext(w, r)
	if !ok {
		return
	}

	filter := domain.OrderListFilter{}
	q := r.URL.Query()
	if raw := q.Get("creator"); raw != "" {
		creator, err := uuid.Parse(raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "Invalid creator id")
			return
		}
		// The service pins agents to their own orders regardless.
		filter.CreatedBy = &creator
	}
	if raw := q.Get("status"); raw != "" {
		status, err := domain.ParseStatus(raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "Unknown status filter")
			return
		}
		filter.Status = &status
	}
	if raw := q.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "Invalid from timestamp; expected RFC3339")
			return
		}
		filter.From = &from
	}
	if raw := q.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "Invalid to timestamp; expected RFC3339")
			return
		}
		filter.To = &to
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			h.writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		filter.Limit = limit
	}
	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			h.writeError(w, http.StatusBadRequest, "Invalid offset")
			return
		}
		filter.Offset = offset
	}

	orders, err := h.service.ListOrders(r.Context(), actor, filter)
	if err != nil {
		h.writeServiceError(w, "list_orders", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"orders": orders, "count": len(orders)})
}

// GetOrderHandler fetches a single order by id.
func (h *OrderHandlers) GetOrderHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromContext(w, r)
	if !ok {
		return
	}
	orderID, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	order, err := h.service.GetOrder(r.Context(), actor, orderID)
	if err != nil {
		h.writeServiceError(w, "get_order", err)
		return
	}
	h.writeJSON(w, http.StatusOK, order)
}

// QuotePDFHandler streams the filled quote confirmation document. The first
// download of a pending order advances it to QuoteDownloaded.
func (h *OrderHandlers) QuotePDFHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromContext(w, r)
	if !ok {
		return
	}
	orderID, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	doc, order, err := h.service.RenderQuotePDF(r.Context(), actor, orderID)
	if err != nil {
		h.writeServiceError(w, "quote_pdf", err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "quote-"+order.OrderNumber+".pdf"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		log.Printf("level=error component=api op=quote_pdf msg=\"writing document\" err=%v", err)
	}
}

// UpdateOrderHandler applies a partial update to an order, including status
// transitions.
func (h *OrderHandlers) UpdateOrderHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromContext(w, r)
	if !ok {
		return
	}
	orderID, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("level=warn component=api endpoint=update_order outcome=reject reason=invalid_json err=%v", err)
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.service.UpdateOrder(r.Context(), actor, orderID, req)
	if err != nil {
		h.writeServiceError(w, "update_order", err)
		return
	}

	log.Printf("level=info component=api endpoint=update_order outcome=updated order_number=%s status=%s actor_id=%s", order.OrderNumber, order.Status, actor.ID)
	h.writeJSON(w, http.StatusOK, order)
}

// DeleteOrderHandler hard-deletes an order. Admin only.
func (h *OrderHandlers) DeleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromContext(w, r)
	if !ok {
		return
	}
	orderID, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteOrder(r.Context(), actor, orderID); err != nil {
		h.writeServiceError(w, "delete_order", err)
		return
	}

	log.Printf("level=info component=api endpoint=delete_order outcome=deleted order_id=%s actor_id=%s", orderID, actor.ID)
	w.WriteHeader(http.StatusNoContent)
}

// QuoteHandler prices a prospective order without persisting it.
func (h *OrderHandlers) QuoteHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromContext(w, r)
	if !ok {
		return
	}

	var req domain.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	quoteSnap, calcSnap, err := h.service.PrepareQuote(r.Context(), actor.ID, req)
	if err != nil {
		h.writeServiceError(w, "quote", err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"quote":       quoteSnap,
		"calculation": calcSnap,
	})
}

// documentUploadRequest asks for a presigned upload slot for one file.
type documentUploadRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}

// RequestDocumentUploadHandler presigns an upload and records the document
// against the order.
func (h *OrderHandlers) RequestDocumentUploadHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromContext(w, r)
	if !ok {
		return
	}
	orderID, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req documentUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	upload, err := h.service.RequestDocumentUpload(r.Context(), actor, orderID, req.FileName, req.ContentType)
	if err != nil {
		h.writeServiceError(w, "request_document_upload", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, upload)
}

// ListDocumentsHandler lists documents recorded against an order.
func (h *OrderHandlers) ListDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromContext(w, r)
	if !ok {
		return
	}
	orderID, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	docs, err := h.service.ListDocuments(r.Context(), actor, orderID)
	if err != nil {
		h.writeServiceError(w, "list_documents", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"documents": docs, "count": len(docs)})
}

// DeleteDocumentHandler removes one document and its stored object.
func (h *OrderHandlers) DeleteDocumentHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromContext(w, r)
	if !ok {
		return
	}
	orderID, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}
	docID, ok := h.parseIDParam(w, r, "docID")
	if !ok {
		return
	}

	if err := h.service.DeleteDocument(r.Context(), actor, orderID, docID); err != nil {
		h.writeServiceError(w, "delete_document", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
