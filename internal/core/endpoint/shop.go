package endpoint

import (
	"context"
	"fmt"
	"strconv"

	"github.com/duynhne/shakplay/internal/core/domain"
	"github.com/duynhne/shakplay/internal/core/gateway"
)

// NewReview is a product review with optional images.
type NewReview struct {
	Rating  int
	Title   string
	Comment string
	Images  []Upload
}

// Shop covers products, cart, orders, reviews and wishlists.
type Shop struct{ c gateway.Caller }

func productQuery(q query, f domain.ProductFilter) query {
	q = q.str("category", f.Category).
		str("brand", f.Brand).
		float("price_min", f.PriceMin).
		float("price_max", f.PriceMax).
		float("rating_min", f.RatingMin).
		flag("in_stock", f.InStock).
		flag("featured", f.Featured).
		flag("new", f.New).
		flag("bestseller", f.Bestseller).
		str("sort", f.Sort)
	if f.Limit > 0 {
		q = q.num("limit", f.Limit)
	}
	if f.Offset > 0 {
		q = q.num("offset", f.Offset)
	}
	return q
}

func (s *Shop) Products(ctx context.Context, f domain.ProductFilter) gateway.Result[[]domain.Product] {
	return gateway.Do[[]domain.Product](ctx, s.c, get("/shop/products", productQuery(newQuery(), f).values()))
}

func (s *Shop) Product(ctx context.Context, productID int64) gateway.Result[domain.Product] {
	return gateway.Do[domain.Product](ctx, s.c, get(fmt.Sprintf("/shop/products/%d", productID), nil))
}

func (s *Shop) SearchProducts(ctx context.Context, text string, f domain.ProductFilter) gateway.Result[[]domain.Product] {
	q := productQuery(newQuery().set("query", text), f)
	return gateway.Do[[]domain.Product](ctx, s.c, get("/shop/products/search", q.values()))
}

func (s *Shop) Cart(ctx context.Context) gateway.Result[domain.Cart] {
	return gateway.Do[domain.Cart](ctx, s.c, get("/shop/cart", nil))
}

// AddToCart adds quantity units; a non-positive quantity means 1.
func (s *Shop) AddToCart(ctx context.Context, productID int64, quantity int, opts domain.CartItemOptions) gateway.Result[domain.CartItem] {
	if quantity <= 0 {
		quantity = 1
	}
	body := struct {
		ProductID int64 `json:"product_id"`
		Quantity  int   `json:"quantity"`
		domain.CartItemOptions
	}{productID, quantity, opts}
	return gateway.Do[domain.CartItem](ctx, s.c, post("/shop/cart/items", body))
}

func (s *Shop) UpdateCartItem(ctx context.Context, itemID int64, quantity int) gateway.Result[domain.CartItem] {
	body := map[string]int{"quantity": quantity}
	return gateway.Do[domain.CartItem](ctx, s.c, put(fmt.Sprintf("/shop/cart/items/%d", itemID), body))
}

func (s *Shop) RemoveFromCart(ctx context.Context, itemID int64) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, s.c, del(fmt.Sprintf("/shop/cart/items/%d", itemID)))
}

func (s *Shop) ClearCart(ctx context.Context) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, s.c, del("/shop/cart"))
}

func (s *Shop) ApplyCoupon(ctx context.Context, code string) gateway.Result[Raw] {
	body := map[string]string{"code": code}
	return gateway.Do[Raw](ctx, s.c, post("/shop/cart/coupon", body))
}

func (s *Shop) CreateOrder(ctx context.Context, order domain.NewOrder) gateway.Result[domain.Order] {
	return gateway.Do[domain.Order](ctx, s.c, post("/shop/orders", order))
}

func (s *Shop) Orders(ctx context.Context, status string, limit, offset int) gateway.Result[[]domain.Order] {
	if limit <= 0 {
		limit = 20
	}
	q := newQuery().str("status", status).num("limit", limit).num("offset", offset)
	return gateway.Do[[]domain.Order](ctx, s.c, get("/shop/orders", q.values()))
}

func (s *Shop) Order(ctx context.Context, orderID int64) gateway.Result[domain.Order] {
	return gateway.Do[domain.Order](ctx, s.c, get(fmt.Sprintf("/shop/orders/%d", orderID), nil))
}

func (s *Shop) CancelOrder(ctx context.Context, orderID int64, reason string) gateway.Result[Raw] {
	body := struct {
		Reason string `json:"reason,omitempty"`
	}{reason}
	return gateway.Do[Raw](ctx, s.c, post(fmt.Sprintf("/shop/orders/%d/cancel", orderID), body))
}

func (s *Shop) ProductReviews(ctx context.Context, productID int64, limit, offset int) gateway.Result[[]domain.Review] {
	if limit <= 0 {
		limit = 20
	}
	path := fmt.Sprintf("/shop/products/%d/reviews", productID)
	return gateway.Do[[]domain.Review](ctx, s.c, get(path, window(limit, offset)))
}

// AddProductReview posts a multipart review. Images are sent as image_0,
// image_1 and so on.
func (s *Shop) AddProductReview(ctx context.Context, productID int64, review NewReview) gateway.Result[domain.Review] {
	form := gateway.NewForm().
		Set("rating", strconv.Itoa(review.Rating)).
		Set("title", review.Title).
		Set("comment", review.Comment)
	for i, img := range review.Images {
		form.AddFile(fmt.Sprintf("image_%d", i), img.Filename, img.Content)
	}
	path := fmt.Sprintf("/shop/products/%d/reviews", productID)
	return gateway.Do[domain.Review](ctx, s.c, post(path, form))
}

func (s *Shop) Wishlists(ctx context.Context) gateway.Result[[]domain.Wishlist] {
	return gateway.Do[[]domain.Wishlist](ctx, s.c, get("/shop/wishlists", nil))
}

func (s *Shop) CreateWishlist(ctx context.Context, w domain.NewWishlist) gateway.Result[domain.Wishlist] {
	return gateway.Do[domain.Wishlist](ctx, s.c, post("/shop/wishlists", w))
}

func (s *Shop) AddToWishlist(ctx context.Context, wishlistID, productID int64, notes string) gateway.Result[Raw] {
	body := struct {
		ProductID int64  `json:"product_id"`
		Notes     string `json:"notes,omitempty"`
	}{productID, notes}
	return gateway.Do[Raw](ctx, s.c, post(fmt.Sprintf("/shop/wishlists/%d/items", wishlistID), body))
}

func (s *Shop) RemoveFromWishlist(ctx context.Context, wishlistID, productID int64) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, s.c, del(fmt.Sprintf("/shop/wishlists/%d/items/%d", wishlistID, productID)))
}
