package model

// Price is the upstream commerce API's money shape: an integer amount in
// currency subunits plus an ISO currency code.
type Price struct {
	AmountSubunits int64  `json:"amountSubunits"`
	CurrencyCode   string `json:"currencyCode"`
}

type ProductImage struct {
	URL        string `json:"url"`
	IsFeatured bool   `json:"isFeatured"`
}

// Product is a structured product record returned by the lookup relay.
type Product struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       Price          `json:"price"`
	Images      []ProductImage `json:"images"`
}

// FeaturedImage returns the featured image URL, falling back to the first
// image, or "" when the product has none.
func (p *Product) FeaturedImage() string {
	for _, img := range p.Images {
		if img.IsFeatured {
			return img.URL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	return ""
}
