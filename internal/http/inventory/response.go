package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/stocktrail-app/stocktrail/internal/inventory"
	"github.com/stocktrail-app/stocktrail/internal/party"
)

type partyResponse struct {
	Kind party.Kind `json:"kind"`
	ID   uuid.UUID  `json:"id"`
}

type recordResponse struct {
	ID           uuid.UUID              `json:"id"`
	Location     partyResponse          `json:"location"`
	LocationName string                 `json:"location_name,omitempty"`
	ItemTypeID   uuid.UUID              `json:"item_type_id"`
	ItemTypeName string                 `json:"item_type_name,omitempty"`
	Quantity     int64                  `json:"quantity"`
	Status       inventory.RecordStatus `json:"status"`
	Resolved     bool                   `json:"resolved"`
	SourceItemID *uuid.UUID             `json:"source_item_id,omitempty"`
	Notes        string                 `json:"notes,omitempty"`
	ResolvedBy   *string                `json:"resolved_by,omitempty"`
	ResolvedAt   *time.Time             `json:"resolved_at,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

func toRecordResponse(rec *inventory.Record) recordResponse {
	return recordResponse{
		ID:           rec.ID,
		Location:     partyResponse{Kind: rec.Location.Kind, ID: rec.Location.ID},
		LocationName: rec.LocationName,
		ItemTypeID:   rec.ItemTypeID,
		ItemTypeName: rec.ItemTypeName,
		Quantity:     rec.Quantity,
		Status:       rec.Status,
		Resolved:     rec.Resolved,
		SourceItemID: rec.SourceItemID,
		Notes:        rec.Notes,
		ResolvedBy:   rec.ResolvedBy,
		ResolvedAt:   rec.ResolvedAt,
		CreatedAt:    rec.CreatedAt,
	}
}

func toRecordResponseList(records []*inventory.Record) []recordResponse {
	resp := make([]recordResponse, len(records))
	for i, rec := range records {
		resp[i] = toRecordResponse(rec)
	}

	return resp
}

type entryResponse struct {
	ID          uuid.UUID              `json:"id"`
	TransferID  *uuid.UUID             `json:"transfer_id,omitempty"`
	ItemID      *uuid.UUID             `json:"item_id,omitempty"`
	ItemTypeID  uuid.UUID              `json:"item_type_id"`
	Quantity    int64                  `json:"quantity"`
	Source      *partyResponse         `json:"source,omitempty"`
	Destination *partyResponse         `json:"destination,omitempty"`
	Kind        inventory.MovementKind `json:"kind"`
	Status      inventory.EntryStatus  `json:"status"`
	MovedAt     time.Time              `json:"moved_at"`
	RecordedBy  string                 `json:"recorded_by"`
	ResolvedBy  *string                `json:"resolved_by,omitempty"`
	ResolvedAt  *time.Time             `json:"resolved_at,omitempty"`
}

func toEntryResponse(e *inventory.LedgerEntry) entryResponse {
	resp := entryResponse{
		ID:         e.ID,
		TransferID: e.TransferID,
		ItemID:     e.ItemID,
		ItemTypeID: e.ItemTypeID,
		Quantity:   e.Quantity,
		Kind:       e.Kind,
		Status:     e.Status,
		MovedAt:    e.MovedAt,
		RecordedBy: e.RecordedBy,
		ResolvedBy: e.ResolvedBy,
		ResolvedAt: e.ResolvedAt,
	}

	if e.Source != nil {
		resp.Source = &partyResponse{Kind: e.Source.Kind, ID: e.Source.ID}
	}

	if e.Destination != nil {
		resp.Destination = &partyResponse{Kind: e.Destination.Kind, ID: e.Destination.ID}
	}

	return resp
}

func toEntryResponseList(entries []*inventory.LedgerEntry) []entryResponse {
	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toEntryResponse(e)
	}

	return resp
}

type reportResponse struct {
	Location               partyResponse `json:"location"`
	ItemTypeID             uuid.UUID     `json:"item_type_id"`
	LedgerQuantity         int64         `json:"ledger_quantity"`
	RecordedQuantity       int64         `json:"recorded_quantity"`
	UnresolvedMissing      int64         `json:"unresolved_missing"`
	UnresolvedOverReceived int64         `json:"unresolved_over_received"`
	Consistent             bool          `json:"consistent"`
}

func toReportResponse(report *inventory.HistoryReport) reportResponse {
	return reportResponse{
		Location:               partyResponse{Kind: report.Location.Kind, ID: report.Location.ID},
		ItemTypeID:             report.ItemTypeID,
		LedgerQuantity:         report.LedgerQuantity,
		RecordedQuantity:       report.RecordedQuantity,
		UnresolvedMissing:      report.UnresolvedMissing,
		UnresolvedOverReceived: report.UnresolvedOverReceived,
		Consistent:             report.Consistent,
	}
}
