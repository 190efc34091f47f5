package model

// ProductModel is the JSON document stored at products/product-<id>.json.
// Sales aggregates are never written; stale copies in older files are ignored.
type ProductModel struct {
	ID            string     `json:"id"`
	ProductNumber string     `json:"productNumber"`
	Name          string     `json:"name"`
	Owner         string     `json:"owner"`
	Price         FlexNumber `json:"price"`
	Category      string     `json:"category"`
	Description   string     `json:"description"`
	ImageURL      string     `json:"imageUrl"`
	Tags          []string   `json:"tags,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     string     `json:"createdAt"`
}
