package transfer

import (
	"github.com/stocktrail-app/stocktrail/internal/inventory"
	"github.com/stocktrail-app/stocktrail/internal/party"
)

// Claims is the pair of per-party quantities for one item after
// orientation: what the sender says left, and what the receiver says
// arrived (or, for the requesting side, what it asked for).
type Claims struct {
	Sender   int64
	Receiver int64
}

// Discrepancy describes the shortage or surplus an item produced.
type Discrepancy struct {
	Status   inventory.RecordStatus // StatusMissing or StatusOverReceived
	Location party.Party
	Quantity int64
}

// Outcome is the full reconciliation result for one item.
type Outcome struct {
	Claims      Claims
	Matched     bool
	Discrepancy *Discrepancy
}

// ReconcileClaims orients the two reported quantities. The quantity set
// at creation time is always the initiator's claim; the quantity
// reported at acceptance time is always the counterparty's. A true
// notReceived flag zeroes the counterparty's report. Orientation comes
// from the transfer's initiator field, never from argument order.
func ReconcileClaims(t *Transfer, it Item, reported int64, notReceived bool) Claims {
	if notReceived {
		reported = 0
	}

	if t.SenderInitiated() {
		return Claims{Sender: it.Quantity, Receiver: reported}
	}

	return Claims{Sender: reported, Receiver: it.Quantity}
}

// Reconcile compares the two claims for one item and decides what the
// inventory must say afterwards: the sender is debited its own claim,
// the receiver is credited its own claim, and any difference between
// the counterparty's report and the original quantity becomes a
// discrepancy record.
//
// When the counterparty reports less than the initiator claimed, the
// difference is MISSING at the sender: that quantity left the books and
// nobody acknowledged it. When the counterparty reports more, the
// difference is OVER_RECEIVED at the receiver: more arrived on the
// books than the original claim covers. In the common sender-initiated
// orientation this is exactly a senderClaim/receiverClaim comparison.
func Reconcile(t *Transfer, it Item, reported int64, notReceived bool) Outcome {
	if notReceived {
		reported = 0
	}

	claims := ReconcileClaims(t, it, reported, notReceived)

	diff := reported - it.Quantity
	if diff == 0 {
		return Outcome{Claims: claims, Matched: true}
	}

	d := &Discrepancy{}

	if diff < 0 {
		d.Status = inventory.StatusMissing
		d.Location = t.Sender
		d.Quantity = -diff
	} else {
		d.Status = inventory.StatusOverReceived
		d.Location = t.Receiver
		d.Quantity = diff
	}

	return Outcome{Claims: claims, Matched: false, Discrepancy: d}
}
