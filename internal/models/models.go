package models

// Review is a customer review attached to a product. Read-only.
type Review struct {
	ReviewerName string  `json:"reviewerName,omitempty"`
	Rating       float64 `json:"rating,omitempty"`
	Comment      string  `json:"comment,omitempty"`
	Date         string  `json:"date,omitempty"`
}

// Product is the local projection of a remote catalog record.
// Decoding into this struct drops any extra fields the remote may send.
type Product struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Category           string   `json:"category,omitempty"`
	Brand              string   `json:"brand,omitempty"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage,omitempty"`
	Description        string   `json:"description,omitempty"`
	Thumbnail          string   `json:"thumbnail,omitempty"`
	Images             []string `json:"images,omitempty"`
	Reviews            []Review `json:"reviews,omitempty"`
}

// NewProduct carries the fields a caller supplies when creating a product.
type NewProduct struct {
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// ProductPatch is the partial update payload for an existing product.
type ProductPatch struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

// CartLine is one entry in the cart. Title, Price and Thumbnail are a
// snapshot of the product at add time, so the cart stays renderable and
// priceable even if the catalog record later changes or disappears.
type CartLine struct {
	ProductID int     `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Thumbnail string  `json:"thumbnail,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Subtotal returns price times quantity for this line.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Credentials are the login inputs. Remember selects durable token storage.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Remember bool   `json:"-"`
}

// Session is the authenticated-session record returned by the auth API.
// The token is opaque to this application; it is stored, never inspected.
type Session struct {
	ID        int    `json:"id,omitempty"`
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	Token     string `json:"accessToken"`
	Refresh   string `json:"refreshToken,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}
