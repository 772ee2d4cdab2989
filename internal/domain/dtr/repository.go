package dtr

import "context"

// SavedRepository stores computed ledgers so they can be read back without recomputing.
type SavedRepository interface {
	// Replace drops any snapshot for (userID, cutoffID) and stores entries under snapshotID
	Replace(ctx context.Context, snapshotID, userID, cutoffID string, entries []DayLedgerEntry) error

	// List returns the stored rows of the latest snapshot for (userID, cutoffID)
	List(ctx context.Context, userID, cutoffID string) ([]SavedEntry, error)
}
