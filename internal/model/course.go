package model

// Course represents one purchased course from the catalog. Immutable once
// fetched; the catalog is only ever replaced wholesale by a fresh fetch.
type Course struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
