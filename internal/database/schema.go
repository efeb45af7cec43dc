package database

// schema is the full DDL, ordered so foreign-key targets come first.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS warehouses (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS equipment (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS item_types (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		unit TEXT NOT NULL DEFAULT 'pcs',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS transfers (
		id UUID PRIMARY KEY,
		batch_number BIGINT NOT NULL,
		sender_kind TEXT NOT NULL,
		sender_id UUID NOT NULL,
		receiver_kind TEXT NOT NULL,
		receiver_id UUID NOT NULL,
		initiator_id UUID NOT NULL,
		purpose TEXT NOT NULL DEFAULT 'general',
		status TEXT NOT NULL DEFAULT 'pending',
		transfer_date TIMESTAMPTZ NOT NULL,
		rejection_reason TEXT,
		acceptance_comment TEXT,
		added_by TEXT NOT NULL,
		approved_by TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		completed_at TIMESTAMPTZ
	)`,

	// Batch numbers are reusable once the transfer that held them was
	// rejected, so uniqueness only binds active rows.
	`CREATE UNIQUE INDEX IF NOT EXISTS transfers_batch_number_active
		ON transfers (batch_number) WHERE status <> 'rejected'`,

	`CREATE TABLE IF NOT EXISTS transfer_items (
		id UUID PRIMARY KEY,
		transfer_id UUID NOT NULL REFERENCES transfers (id) ON DELETE CASCADE,
		item_type_id UUID NOT NULL REFERENCES item_types (id),
		quantity BIGINT NOT NULL,
		received_quantity BIGINT,
		status TEXT NOT NULL DEFAULT 'pending',
		rejection_reason TEXT,
		position INT NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS transfer_items_transfer
		ON transfer_items (transfer_id)`,

	`CREATE TABLE IF NOT EXISTS inventory_records (
		id UUID PRIMARY KEY,
		location_kind TEXT NOT NULL,
		location_id UUID NOT NULL,
		item_type_id UUID NOT NULL REFERENCES item_types (id),
		quantity BIGINT NOT NULL,
		status TEXT NOT NULL DEFAULT 'normal',
		resolved BOOLEAN NOT NULL DEFAULT FALSE,
		source_item_id UUID,
		notes TEXT NOT NULL DEFAULT '',
		resolved_by TEXT,
		resolved_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX IF NOT EXISTS inventory_records_location_item
		ON inventory_records (location_kind, location_id, item_type_id)`,

	`CREATE INDEX IF NOT EXISTS inventory_records_unresolved
		ON inventory_records (status) WHERE NOT resolved`,

	`CREATE TABLE IF NOT EXISTS movement_ledger (
		id UUID PRIMARY KEY,
		transfer_id UUID,
		item_id UUID,
		item_type_id UUID NOT NULL REFERENCES item_types (id),
		quantity BIGINT NOT NULL,
		source_kind TEXT,
		source_id UUID,
		destination_kind TEXT,
		destination_id UUID,
		kind TEXT NOT NULL,
		status TEXT NOT NULL,
		moved_at TIMESTAMPTZ NOT NULL,
		recorded_by TEXT NOT NULL,
		resolved_by TEXT,
		resolved_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX IF NOT EXISTS movement_ledger_source
		ON movement_ledger (source_kind, source_id, item_type_id)`,

	`CREATE INDEX IF NOT EXISTS movement_ledger_destination
		ON movement_ledger (destination_kind, destination_id, item_type_id)`,

	`CREATE INDEX IF NOT EXISTS movement_ledger_transfer
		ON movement_ledger (transfer_id)`,
}
