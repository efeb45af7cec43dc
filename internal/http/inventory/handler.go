package inventory

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
)

type Handler struct {
	svc *inventory.Service
}

func NewHandler(svc *inventory.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/records", h.listRecords)
	r.Post("/records/{id}/resolve", h.resolve)
	r.Get("/ledger", h.listLedger)
	r.Get("/stock", h.stock)
	r.Get("/validate", h.validate)
	r.Post("/consume", h.consume)
}

// queryParty reads the location_kind/location_id query pair. Both or
// neither must be present.
func queryParty(r *http.Request) (*party.Party, error) {
	kind := r.URL.Query().Get("location_kind")
	id := r.URL.Query().Get("location_id")

	if kind == "" && id == "" {
		return nil, nil
	}

	if kind == "" || id == "" {
		return nil, errors.New("location_kind and location_id must be given together")
	}

	locID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("invalid location_id")
	}

	p := party.Party{Kind: party.Kind(kind), ID: locID}
	if !p.Valid() {
		return nil, errors.New("invalid location_kind")
	}

	return &p, nil
}

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	filter := inventory.RecordFilter{}

	loc, err := queryParty(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	filter.Location = loc

	if s := r.URL.Query().Get("item_type_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid item_type_id", http.StatusBadRequest)
			return
		}

		filter.ItemTypeID = new(id)
	}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(inventory.RecordStatus(s))
	}

	filter.Unresolved = r.URL.Query().Get("unresolved") == "true"

	records, err := h.svc.Records(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toRecordResponseList(records)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type resolveRequest struct {
	Notes string `json:"notes"`
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.svc.ResolveDiscrepancy(r.Context(), id, httpx.Username(r.Context()), req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrRecordNotFound):
			http.Error(w, "record not found", http.StatusNotFound)
		case errors.Is(err, inventory.ErrAlreadyResolved),
			errors.Is(err, inventory.ErrNotDiscrepancy):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toRecordResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listLedger(w http.ResponseWriter, r *http.Request) {
	filter, err := ledgerFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := h.svc.Ledger(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toEntryResponseList(entries)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func ledgerFilter(r *http.Request) (inventory.EntryFilter, error) {
	filter := inventory.EntryFilter{}

	loc, err := queryParty(r)
	if err != nil {
		return filter, err
	}

	filter.Location = loc

	if s := r.URL.Query().Get("item_type_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return filter, errors.New("invalid item_type_id")
		}

		filter.ItemTypeID = new(id)
	}

	if s := r.URL.Query().Get("transfer_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return filter, errors.New("invalid transfer_id")
		}

		filter.TransferID = new(id)
	}

	if s := r.URL.Query().Get("from"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.From = new(t)
		}
	}

	if s := r.URL.Query().Get("to"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.To = new(t)
		}
	}

	return filter, nil
}

// stockQuery reads the mandatory (location, item type) pair shared by
// the stock and validate endpoints.
func stockQuery(r *http.Request) (party.Party, uuid.UUID, error) {
	loc, err := queryParty(r)
	if err != nil {
		return party.Party{}, uuid.Nil, err
	}

	if loc == nil {
		return party.Party{}, uuid.Nil, errors.New("location_kind and location_id are required")
	}

	itemTypeID, err := uuid.Parse(r.URL.Query().Get("item_type_id"))
	if err != nil {
		return party.Party{}, uuid.Nil, errors.New("invalid item_type_id")
	}

	return *loc, itemTypeID, nil
}

type stockResponse struct {
	Quantity int64 `json:"quantity"`
}

func (h *Handler) stock(w http.ResponseWriter, r *http.Request) {
	loc, itemTypeID, err := stockQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	qty, err := h.svc.CurrentStock(r.Context(), loc, itemTypeID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(stockResponse{Quantity: qty}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	loc, itemTypeID, err := stockQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.svc.ValidateHistory(r.Context(), loc, itemTypeID)
	if err != nil && !errors.Is(err, inventory.ErrHistoryMismatch) {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	// A mismatch is a finding, not a request failure; the report says so.
	if !report.Consistent {
		w.WriteHeader(http.StatusConflict)
	}

	if err := json.NewEncoder(w).Encode(toReportResponse(report)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type consumeRequest struct {
	LocationKind party.Kind `json:"location_kind"`
	LocationID   uuid.UUID  `json:"location_id"`
	ItemTypeID   uuid.UUID  `json:"item_type_id"`
	Quantity     int64      `json:"quantity"`
	Notes        string     `json:"notes"`
}

func (h *Handler) consume(w http.ResponseWriter, r *http.Request) {
	var req consumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.svc.Consume(r.Context(), inventory.ConsumeParams{
		Location:   party.Party{Kind: req.LocationKind, ID: req.LocationID},
		ItemTypeID: req.ItemTypeID,
		Quantity:   req.Quantity,
		ActingUser: httpx.Username(r.Context()),
		Notes:      req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrInsufficientStock):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
