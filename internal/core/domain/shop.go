package domain

// Product is a catalog item.
type Product struct {
	ID                 int64             `json:"id"`
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	ShortDescription   string            `json:"short_description"`
	Category           string            `json:"category"`
	Subcategory        string            `json:"subcategory,omitempty"`
	Brand              string            `json:"brand"`
	SKU                string            `json:"sku"`
	Price              float64           `json:"price"`
	SalePrice          float64           `json:"sale_price,omitempty"`
	Currency           string            `json:"currency"`
	DiscountPercentage float64           `json:"discount_percentage,omitempty"`
	Images             []string          `json:"images"`
	Thumbnail          string            `json:"thumbnail"`
	Rating             float64           `json:"rating"`
	ReviewCount        int               `json:"review_count"`
	InStock            bool              `json:"in_stock"`
	StockQuantity      int               `json:"stock_quantity"`
	Weight             float64           `json:"weight,omitempty"`
	Specifications     map[string]string `json:"specifications"`
	Tags               []string          `json:"tags"`
	IsFeatured         bool              `json:"is_featured"`
	IsNew              bool              `json:"is_new"`
	IsBestseller       bool              `json:"is_bestseller"`
	RelatedProducts    []int64           `json:"related_products"`
	CreatedAt          string            `json:"created_at"`
	UpdatedAt          string            `json:"updated_at"`
}

// ProductFilter narrows /shop/products.
type ProductFilter struct {
	Category   string
	Brand      string
	PriceMin   float64
	PriceMax   float64
	RatingMin  float64
	InStock    *bool
	Featured   *bool
	New        *bool
	Bestseller *bool
	Sort       string
	Limit      int
	Offset     int
}

// CartItem is one line of the cart.
type CartItem struct {
	ID             int64             `json:"id"`
	ProductID      int64             `json:"product_id"`
	Product        Product           `json:"product"`
	Quantity       int               `json:"quantity"`
	Size           string            `json:"size,omitempty"`
	Color          string            `json:"color,omitempty"`
	Customizations map[string]string `json:"customizations,omitempty"`
	UnitPrice      float64           `json:"unit_price"`
	TotalPrice     float64           `json:"total_price"`
	AddedAt        string            `json:"added_at"`
}

// CartItemOptions are the optional attributes of a cart line.
type CartItemOptions struct {
	Size           string            `json:"size,omitempty"`
	Color          string            `json:"color,omitempty"`
	Customizations map[string]string `json:"customizations,omitempty"`
}

// Cart is the current user's cart.
type Cart struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Items     []CartItem `json:"items"`
	Subtotal  float64    `json:"subtotal"`
	Tax       float64    `json:"tax"`
	Shipping  float64    `json:"shipping"`
	Discount  float64    `json:"discount"`
	Total     float64    `json:"total"`
	Currency  string     `json:"currency"`
	UpdatedAt string     `json:"updated_at"`
}

// Address is a shipping or billing address.
type Address struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
	Phone   string `json:"phone,omitempty"`
}

// OrderItem is one line of a placed order.
type OrderItem struct {
	ProductID    int64   `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	TotalPrice   float64 `json:"total_price"`
	Size         string  `json:"size,omitempty"`
	Color        string  `json:"color,omitempty"`
}

// Order is a placed order.
type Order struct {
	ID                int64       `json:"id"`
	UserID            int64       `json:"user_id"`
	OrderNumber       string      `json:"order_number"`
	Status            string      `json:"status"`
	PaymentStatus     string      `json:"payment_status"`
	Items             []OrderItem `json:"items"`
	Subtotal          float64     `json:"subtotal"`
	Tax               float64     `json:"tax"`
	Shipping          float64     `json:"shipping"`
	Discount          float64     `json:"discount"`
	Total             float64     `json:"total"`
	Currency          string      `json:"currency"`
	ShippingAddress   Address     `json:"shipping_address"`
	BillingAddress    Address     `json:"billing_address"`
	TrackingNumber    string      `json:"tracking_number,omitempty"`
	EstimatedDelivery string      `json:"estimated_delivery,omitempty"`
	Notes             string      `json:"notes,omitempty"`
	CreatedAt         string      `json:"created_at"`
	UpdatedAt         string      `json:"updated_at"`
}

// NewOrder is the body of POST /shop/orders.
type NewOrder struct {
	ShippingAddress Address `json:"shipping_address"`
	BillingAddress  Address `json:"billing_address"`
	PaymentMethod   string  `json:"payment_method"`
	Notes           string  `json:"notes,omitempty"`
}

// Review is a product review.
type Review struct {
	ID               int64    `json:"id"`
	ProductID        int64    `json:"product_id"`
	UserID           int64    `json:"user_id"`
	UserName         string   `json:"user_name"`
	UserAvatar       string   `json:"user_avatar,omitempty"`
	Rating           int      `json:"rating"`
	Title            string   `json:"title"`
	Comment          string   `json:"comment"`
	Images           []string `json:"images,omitempty"`
	VerifiedPurchase bool     `json:"verified_purchase"`
	HelpfulCount     int      `json:"helpful_count"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

// WishlistItem is a product saved to a wishlist.
type WishlistItem struct {
	ProductID int64   `json:"product_id"`
	Product   Product `json:"product"`
	AddedAt   string  `json:"added_at"`
	Notes     string  `json:"notes,omitempty"`
}

// Wishlist is a named list of saved products.
type Wishlist struct {
	ID          int64          `json:"id"`
	UserID      int64          `json:"user_id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	IsPublic    bool           `json:"is_public"`
	Items       []WishlistItem `json:"items"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
}

// NewWishlist is the body of POST /shop/wishlists.
type NewWishlist struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsPublic    bool   `json:"is_public"`
}
