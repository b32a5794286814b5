package apps

// AppEntry is one portal tile. The rank gate that decided its visibility
// never leaves the server; the response carries only display fields.
type AppEntry struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Href        string `json:"href"`
	SortOrder   int    `json:"sort_order"`
}

type AppsResponse struct {
	Apps []AppEntry `json:"apps"`
}
