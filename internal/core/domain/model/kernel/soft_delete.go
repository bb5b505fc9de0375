package kernel

// SoftDelete is the shared logical-deletion state composed into every
// persisted aggregate. A soft-deleted aggregate is excluded from all active
// read paths but its row remains addressable for referential purposes.
//
// The zero value is an active (not deleted) state, which matches the store
// default for new rows.
type SoftDelete struct {
	deleted bool
}

// RestoreSoftDelete reconstitutes the deletion state from persistence.
func RestoreSoftDelete(deleted bool) SoftDelete {
	return SoftDelete{deleted: deleted}
}

// IsDeleted reports whether the aggregate has been logically deleted.
func (s SoftDelete) IsDeleted() bool {
	return s.deleted
}

// MarkDeleted flags the aggregate as logically deleted.
// The flag is never cleared: rows are retired, not resurrected.
func (s *SoftDelete) MarkDeleted() {
	s.deleted = true
}
