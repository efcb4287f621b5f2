package models

// OnlineUser is the public projection of a user in the online listing.
type OnlineUser struct {
	ID          string `json:"userId"`
	DisplayName string `json:"displayName"`
}

// Stats holds the aggregate user counts for the stats endpoint.
type Stats struct {
	Total  int `json:"total"`
	Online int `json:"online"`
}
