package transfer

import (
	"time"

	"github.com/google/uuid"

	"github.com/stocktrail-app/stocktrail/internal/party"
	"github.com/stocktrail-app/stocktrail/internal/transfer"
)

type transferResponse struct {
	ID              uuid.UUID        `json:"id"`
	BatchNumber     int64            `json:"batch_number"`
	Sender          partyResponse    `json:"sender"`
	Receiver        partyResponse    `json:"receiver"`
	InitiatorID     uuid.UUID        `json:"initiator_id"`
	Purpose         transfer.Purpose `json:"purpose"`
	Status          transfer.Status  `json:"status"`
	Items           []itemResponse   `json:"items"`
	TransferDate    time.Time        `json:"transfer_date"`
	RejectionReason string           `json:"rejection_reason,omitempty"`
	AcceptanceNote  string           `json:"acceptance_note,omitempty"`
	AddedBy         string           `json:"added_by"`
	ApprovedBy      *string          `json:"approved_by,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
}

type partyResponse struct {
	Kind party.Kind `json:"kind"`
	ID   uuid.UUID  `json:"id"`
}

type itemResponse struct {
	ID               uuid.UUID       `json:"id"`
	ItemTypeID       uuid.UUID       `json:"item_type_id"`
	ItemTypeName     string          `json:"item_type_name,omitempty"`
	Quantity         int64           `json:"quantity"`
	ReceivedQuantity *int64          `json:"received_quantity,omitempty"`
	Status           transfer.Status `json:"status"`
	RejectionReason  string          `json:"rejection_reason,omitempty"`
}

func toResponse(t *transfer.Transfer) transferResponse {
	resp := transferResponse{
		ID:              t.ID,
		BatchNumber:     t.BatchNumber,
		Sender:          partyResponse{Kind: t.Sender.Kind, ID: t.Sender.ID},
		Receiver:        partyResponse{Kind: t.Receiver.Kind, ID: t.Receiver.ID},
		InitiatorID:     t.InitiatorID,
		Purpose:         t.Purpose,
		Status:          t.Status,
		TransferDate:    t.TransferDate,
		RejectionReason: t.RejectionReason,
		AcceptanceNote:  t.AcceptanceNote,
		AddedBy:         t.AddedBy,
		ApprovedBy:      t.ApprovedBy,
		CreatedAt:       t.CreatedAt,
		CompletedAt:     t.CompletedAt,
	}

	resp.Items = make([]itemResponse, len(t.Items))
	for i, it := range t.Items {
		resp.Items[i] = itemResponse{
			ID:               it.ID,
			ItemTypeID:       it.ItemTypeID,
			ItemTypeName:     it.ItemTypeName,
			Quantity:         it.Quantity,
			ReceivedQuantity: it.ReceivedQuantity,
			Status:           it.Status,
			RejectionReason:  it.RejectionReason,
		}
	}

	return resp
}

func toResponseList(transfers []*transfer.Transfer) []transferResponse {
	resp := make([]transferResponse, len(transfers))
	for i, t := range transfers {
		resp[i] = toResponse(t)
	}

	return resp
}
