// Package types defines the entity records managed by opsdeck and the
// small structural contract the generic store and query engine are
// written against.
package types

import "time"

// Record is the minimal capability a stored entity must provide: a unique
// identifier within its collection. Everything else (timestamps, status,
// denormalized references) is plain struct data inspected by field path.
type Record interface {
	RecordID() string
}

// PrimaryDateFields lists the field paths, in priority order, that the
// query engine probes when resolving a record's semantic date for range
// filtering. The first non-zero field wins.
var PrimaryDateFields = []string{
	"createdAt",
	"updatedAt",
	"date",
	"startDate",
	"dueDate",
	"onboardingDate",
}

// Timestamps carries the bookkeeping dates shared by every entity kind.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}
