package domain

// CalendarScope decides visibility: household calendars are shared by all
// non-guest members, personal calendars belong to a single user.
type CalendarScope string

const (
	ScopeHousehold CalendarScope = "household"
	ScopePersonal  CalendarScope = "personal"
)

// Calendar is a container for events.
type Calendar struct {
	CalendarID  string        `json:"calendarID"`
	Name        string        `json:"name"`
	Scope       CalendarScope `json:"scope"`
	OwnerUserID string        `json:"ownerUserID,omitempty"` // required iff personal
	IsDefault   bool          `json:"isDefault"`
	Color       string        `json:"color,omitempty"`
	AuditFields
}

// ReadableBy reports whether the actor may see this calendar and its events.
func (c Calendar) ReadableBy(actor Actor) bool {
	if c.Scope == ScopeHousehold {
		return true
	}
	return c.OwnerUserID == actor.UserID
}

// WritableBy reports whether the actor may create or modify events on this
// calendar. Guests can never write.
func (c Calendar) WritableBy(actor Actor) bool {
	if !actor.CanMutate() {
		return false
	}
	if c.Scope == ScopeHousehold {
		return true
	}
	return c.OwnerUserID == actor.UserID
}
