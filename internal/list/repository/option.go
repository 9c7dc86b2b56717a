package repository

// GetOneListOptions holds filter parameters for fetching a single List.
// All non-empty fields are applied as AND conditions.
type GetOneListOptions struct {
	ID   string
	Name string // compared against the normalized name
}
