package export

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stocktrail-app/stocktrail/internal/export"
	"github.com/stocktrail-app/stocktrail/internal/inventory"
	"github.com/stocktrail-app/stocktrail/internal/party"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/ledger.csv", h.ledgerCSV)
}

func (h *Handler) ledgerCSV(w http.ResponseWriter, r *http.Request) {
	filter, err := entryFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Buffer the whole file so a late failure still yields a clean 500
	// instead of a truncated download.
	var buf bytes.Buffer

	if _, err := h.svc.WriteLedgerCSV(r.Context(), filter, &buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("ledger_%s.csv", time.Now().UTC().Format("20060102"))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write csv response", "error", err)
	}
}

func entryFilter(r *http.Request) (inventory.EntryFilter, error) {
	filter := inventory.EntryFilter{}

	kind := r.URL.Query().Get("location_kind")
	id := r.URL.Query().Get("location_id")

	if kind != "" || id != "" {
		if kind == "" || id == "" {
			return filter, errors.New("location_kind and location_id must be given together")
		}

		locID, err := uuid.Parse(id)
		if err != nil {
			return filter, errors.New("invalid location_id")
		}

		filter.Location = new(party.Party{Kind: party.Kind(kind), ID: locID})
	}

	if s := r.URL.Query().Get("item_type_id"); s != "" {
		itemTypeID, err := uuid.Parse(s)
		if err != nil {
			return filter, errors.New("invalid item_type_id")
		}

		filter.ItemTypeID = new(itemTypeID)
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
