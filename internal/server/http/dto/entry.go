package dto

// EntryForm describes the journal submission form fields.
type EntryForm struct {
	Category    string `form:"category"`
	Description string `form:"description"`
}
