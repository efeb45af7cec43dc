package transfer

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stocktrail-app/stocktrail/internal/http/httpx"
	"github.com/stocktrail-app/stocktrail/internal/inventory"
	"github.com/stocktrail-app/stocktrail/internal/party"
	"github.com/stocktrail-app/stocktrail/internal/transfer"
)

type Handler struct {
	svc *transfer.Service
}

func NewHandler(svc *transfer.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/accept", h.accept)
	r.Post("/{id}/reject", h.reject)
}

type partyDTO struct {
	Kind party.Kind `json:"kind"`
	ID   uuid.UUID  `json:"id"`
}

func (p partyDTO) toParty() party.Party {
	return party.Party{Kind: p.Kind, ID: p.ID}
}

type createItemRequest struct {
	ItemTypeID uuid.UUID `json:"item_type_id"`
	Quantity   int64     `json:"quantity"`
}

type createTransferRequest struct {
	BatchNumber  int64               `json:"batch_number"`
	Sender       partyDTO            `json:"sender"`
	Receiver     partyDTO            `json:"receiver"`
	InitiatorID  uuid.UUID           `json:"initiator_id"`
	Purpose      transfer.Purpose    `json:"purpose"`
	TransferDate time.Time           `json:"transfer_date"`
	Items        []createItemRequest `json:"items"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := transfer.CreateParams{
		Sender:       req.Sender.toParty(),
		Receiver:     req.Receiver.toParty(),
		InitiatorID:  req.InitiatorID,
		BatchNumber:  req.BatchNumber,
		Purpose:      req.Purpose,
		TransferDate: req.TransferDate,
		ActingUser:   httpx.Username(r.Context()),
	}

	if params.Purpose == "" {
		params.Purpose = transfer.PurposeGeneral
	}

	if params.TransferDate.IsZero() {
		params.TransferDate = time.Now().UTC()
	}

	for _, it := range req.Items {
		params.Items = append(params.Items, transfer.CreateItem{
			ItemTypeID: it.ItemTypeID,
			Quantity:   it.Quantity,
		})
	}

	t, err := h.svc.Create(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, transfer.ErrDuplicateBatch):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, transfer.ErrUnknownParty),
			errors.Is(err, inventory.ErrInsufficientStock):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := transfer.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(transfer.Status(s))
	}

	if kind, id := r.URL.Query().Get("party_kind"), r.URL.Query().Get("party_id"); kind != "" && id != "" {
		partyID, err := uuid.Parse(id)
		if err != nil {
			http.Error(w, "invalid party_id", http.StatusBadRequest)
			return
		}

		filter.Party = new(party.Party{Kind: party.Kind(kind), ID: partyID})
	}

	transfers, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(transfers)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, transfer.ErrNotFound) {
			http.Error(w, "transfer not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type acceptItemRequest struct {
	ID          uuid.UUID `json:"id"`
	Quantity    int64     `json:"quantity"`
	NotReceived bool      `json:"not_received"`
}

type acceptRequest struct {
	Items   []acceptItemRequest `json:"items"`
	Comment string              `json:"comment"`
}

func (h *Handler) accept(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req acceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := transfer.AcceptParams{
		Quantities:  make(map[uuid.UUID]int64),
		NotReceived: make(map[uuid.UUID]bool),
		ActingUser:  httpx.Username(r.Context()),
		Comment:     req.Comment,
	}

	for _, it := range req.Items {
		if it.NotReceived {
			params.NotReceived[it.ID] = true
			continue
		}

		params.Quantities[it.ID] = it.Quantity
	}

	t, err := h.svc.Accept(r.Context(), id, params)
	if err != nil {
		switch {
		case errors.Is(err, transfer.ErrNotFound):
			http.Error(w, "transfer not found", http.StatusNotFound)
		case errors.Is(err, transfer.ErrInvalidState):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, transfer.ErrMissingReport):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, inventory.ErrInsufficientStock):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Reject(r.Context(), id, req.Reason, httpx.Username(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, transfer.ErrNotFound):
			http.Error(w, "transfer not found", http.StatusNotFound)
		case errors.Is(err, transfer.ErrInvalidState):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
