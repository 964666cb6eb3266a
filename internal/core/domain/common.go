package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// NewAuditFields returns audit fields stamped with the given actor and time,
// for freshly created entities where created and updated coincide.
func NewAuditFields(actorUserID string, now time.Time) AuditFields {
	return AuditFields{
		CreatedAt:     now,
		CreatedBy:     actorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: actorUserID,
	}
}

// Touch updates the last-updated audit pair in place.
func (a *AuditFields) Touch(actorUserID string, now time.Time) {
	a.LastUpdatedAt = now
	a.LastUpdatedBy = actorUserID
}
