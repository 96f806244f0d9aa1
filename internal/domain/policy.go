package domain

// ConflictPolicy defines how an existing appointment blocks a slot
type ConflictPolicy string

const (
	// PolicyOverlap blocks every slot whose interval intersects an appointment's interval
	PolicyOverlap ConflictPolicy = "overlap"
	// PolicyExact blocks only the slot starting exactly at an appointment's start time
	PolicyExact ConflictPolicy = "exact"
)

// IsValid returns true for a known policy
func (p ConflictPolicy) IsValid() bool {
	return p == PolicyOverlap || p == PolicyExact
}
