package models

// StatusActive is the only conversation status the reducers distinguish.
// The API also reports "pending", "closed", and "spam"; those all fall into
// the "not active" bucket.
const StatusActive = "active"

// Conversation is one support thread as returned by the Help Scout
// conversations listing.
//
// Only the fields the reducers consume are decoded. Timestamps use the
// tolerant models.Time type, so a conversation that has never been closed
// simply carries a zero ClosedAt.
//
// Example JSON:
//
//	{
//	  "id": 2297932,
//	  "status": "active",
//	  "createdAt": "2012-07-23T12:34:12Z",
//	  "userModifiedAt": "2012-07-24T20:18:33Z",
//	  "closedAt": null,
//	  "owner": {
//	    "firstName": "Jack",
//	    "lastName": "Sprout"
//	  }
//	}
type Conversation struct {
	ID             int64  `json:"id"`
	Status         string `json:"status"`
	CreatedAt      Time   `json:"createdAt"`
	UserModifiedAt Time   `json:"userModifiedAt"`
	ClosedAt       Time   `json:"closedAt"`
	Owner          *Owner `json:"owner"`
}

// IsActive reports whether the conversation is an open, active ticket.
func (c *Conversation) IsActive() bool {
	return c.Status == StatusActive
}

// Owner is the user a conversation is assigned to. A nil Owner on a
// Conversation means the ticket is unassigned.
type Owner struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// DisplayName is the name used as a breakdown key. First name only; the
// support team is small enough that first names are unambiguous.
func (o *Owner) DisplayName() string {
	return o.FirstName
}

// ConversationPage is one page of a paginated conversations listing.
// Page numbers are 1-based; Pages is the total page count for the mailbox.
type ConversationPage struct {
	Page  int            `json:"page"`
	Pages int            `json:"pages"`
	Count int            `json:"count"`
	Items []Conversation `json:"items"`
}
