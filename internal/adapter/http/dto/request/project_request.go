package request

// PromoteProjectRequest turns an existing quote into an ACTIVE project.
// NameOverride is optional; the quote's project name is used when empty.

type PromoteProjectRequest struct {
	QuoteID      string `json:"quote_id" binding:"required"`
	NameOverride string `json:"name_override,omitempty"`
}
