package model

// List is a user-defined task bucket. Color is display data only.
type List struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
