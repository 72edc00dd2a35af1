package httphandler

import (
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/storefront"
	"github.com/shopspring/decimal"
)

type (
	Product struct {
		ProductID string           `json:"product_id"`
		Name      string           `json:"name"`
		Price     decimal.Decimal  `json:"price"`
		SalePrice *decimal.Decimal `json:"sale_price,omitempty"`
		Currency  string           `json:"currency"`
		Image     string           `json:"image"`
		Colors    []string         `json:"colors"`
		Rating    float64          `json:"rating"`
		Reviews   int              `json:"reviews"`
		IsNew     bool             `json:"is_new"`
		Category  string           `json:"category"`
	}

	Category struct {
		CategoryID string `json:"category_id"`
		Name       string `json:"name"`
		Image      string `json:"image"`
	}

	Home struct {
		NewArrivals []Product  `json:"new_arrivals"`
		Bestsellers []Product  `json:"bestsellers"`
		Categories  []Category `json:"categories"`
	}

	CartItem struct {
		Key       string          `json:"key"`
		Size      string          `json:"size"`
		Quantity  int             `json:"quantity"`
		LineTotal decimal.Decimal `json:"line_total"`
		Product   Product         `json:"product"`
	}

	Cart struct {
		Open     bool            `json:"open"`
		Items    []CartItem      `json:"items"`
		Count    int             `json:"count"`
		Subtotal decimal.Decimal `json:"subtotal"`
		Checkout Checkout        `json:"checkout"`
	}

	Checkout struct {
		Step       string `json:"step"`
		Processing bool   `json:"processing"`
		Message    string `json:"message,omitempty"`
		LastOrder  *Order `json:"last_order,omitempty"`
	}

	Order struct {
		OrderID string          `json:"order_id"`
		Date    string          `json:"date"`
		Total   decimal.Decimal `json:"total"`
		Status  string          `json:"status"`
		Items   []CartItem      `json:"items"`
	}

	User struct {
		UserID string `json:"user_id"`
		Name   string `json:"name"`
		Email  string `json:"email"`
	}

	Session struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}

	Account struct {
		Open    bool    `json:"open"`
		View    string  `json:"view"`
		Busy    bool    `json:"busy"`
		Message string  `json:"message,omitempty"`
		User    *User   `json:"user,omitempty"`
		Orders  []Order `json:"orders,omitempty"`
	}

	Review struct {
		ReviewID  string `json:"review_id"`
		ProductID string `json:"product_id"`
		UserName  string `json:"user_name"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
		Date      string `json:"date"`
		Demo      bool   `json:"demo,omitempty"`
	}

	Reviews struct {
		ProductID string   `json:"product_id"`
		Reviews   []Review `json:"reviews"`
		Rating    int      `json:"rating"`
		Busy      bool     `json:"busy"`
		Message   string   `json:"message,omitempty"`
		CanSubmit bool     `json:"can_submit"`
	}

	ProductPage struct {
		Product Product  `json:"product"`
		Sizes   []string `json:"sizes"`
		Reviews Reviews  `json:"reviews"`
	}

	Info struct {
		Key        string   `json:"key"`
		Title      string   `json:"title"`
		Kind       string   `json:"kind"`
		Paragraphs []string `json:"paragraphs"`
		Bullets    []string `json:"bullets,omitempty"`
	}

	Plan struct {
		PlanID string          `json:"plan_id"`
		Name   string          `json:"name"`
		Price  decimal.Decimal `json:"price"`
		Trees  int             `json:"trees"`
	}

	Subscription struct {
		Open       bool   `json:"open"`
		Step       string `json:"step"`
		Plan       Plan   `json:"plan"`
		Processing bool   `json:"processing"`
	}

	State struct {
		View         string   `json:"view"`
		Category     string   `json:"category,omitempty"`
		Product      *Product `json:"product,omitempty"`
		Info         string   `json:"info,omitempty"`
		CartOpen     bool     `json:"cart_open"`
		CartCount    int      `json:"cart_count"`
		AccountOpen  bool     `json:"account_open"`
		Subscription bool     `json:"subscription_open"`
		User         *User    `json:"user,omitempty"`
	}
)

// Requests.
type (
	AddToCartRequest struct {
		Size string `json:"size"`
	}

	QuantityRequest struct {
		Delta int `json:"delta"`
	}

	PaymentRequest struct {
		CardName   string `json:"card_name"`
		CardNumber string `json:"card_number"`
		Expiry     string `json:"expiry"`
		CVV        string `json:"cvv"`
	}

	OpenAccountRequest struct {
		View string `json:"view"`
	}

	RegisterRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	RatingRequest struct {
		Rating *int `json:"rating"`
		Delta  int  `json:"delta"`
	}

	ReviewRequest struct {
		Rating  *int   `json:"rating"`
		Comment string `json:"comment"`
	}

	SelectPlanRequest struct {
		PlanID string `json:"plan_id"`
	}

	ErrorResponse struct {
		Error    string `json:"error"`
		Redirect string `json:"redirect,omitempty"`
	}
)

func productFromDomain(p domain.Product) Product {
	return Product{
		ProductID: p.ProductID,
		Name:      p.Name,
		Price:     p.Price,
		SalePrice: p.SalePrice,
		Currency:  p.Currency,
		Image:     p.Image,
		Colors:    p.Colors,
		Rating:    p.Rating,
		Reviews:   p.Reviews,
		IsNew:     p.IsNew,
		Category:  p.Category,
	}
}

func productsFromDomain(ps []domain.Product) []Product {
	out := make([]Product, len(ps))
	for i, p := range ps {
		out[i] = productFromDomain(p)
	}
	return out
}

func categoriesFromDomain(cs []domain.Category) []Category {
	out := make([]Category, len(cs))
	for i, c := range cs {
		out[i] = Category{CategoryID: c.CategoryID, Name: c.Name, Image: c.Image}
	}
	return out
}

func cartItemsFromDomain(items []domain.CartItem) []CartItem {
	out := make([]CartItem, len(items))
	for i, it := range items {
		out[i] = CartItem{
			Key:       it.Key,
			Size:      it.Size,
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal(),
			Product:   productFromDomain(it.Product),
		}
	}
	return out
}

func orderFromDomain(o domain.Order) Order {
	return Order{
		OrderID: o.OrderID,
		Date:    o.Date,
		Total:   o.Total,
		Status:  string(o.Status),
		Items:   cartItemsFromDomain(o.Items),
	}
}

func ordersFromDomain(os []domain.Order) []Order {
	if os == nil {
		return nil
	}
	out := make([]Order, len(os))
	for i, o := range os {
		out[i] = orderFromDomain(o)
	}
	return out
}

func userFromDomain(u *domain.User) *User {
	if u == nil {
		return nil
	}
	return &User{UserID: u.UserID, Name: u.Name, Email: u.Email}
}

func reviewsFromState(st storefront.ReviewsState) Reviews {
	out := Reviews{
		ProductID: st.ProductID,
		Reviews:   make([]Review, len(st.Reviews)),
		Rating:    st.Rating,
		Busy:      st.Busy,
		Message:   st.Message,
		CanSubmit: st.CanSubmit,
	}
	for i, r := range st.Reviews {
		out.Reviews[i] = reviewFromDomain(r)
	}
	return out
}

func reviewFromDomain(r domain.Review) Review {
	return Review{
		ReviewID:  r.ReviewID,
		ProductID: r.ProductID,
		UserName:  r.UserName,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Date:      r.Date,
		Demo:      r.Demo,
	}
}

func accountFromState(st storefront.AccountState) Account {
	return Account{
		Open:    st.Open,
		View:    string(st.View),
		Busy:    st.Busy,
		Message: st.Message,
		User:    userFromDomain(st.User),
		Orders:  ordersFromDomain(st.Orders),
	}
}

func checkoutFromState(st storefront.CheckoutState) Checkout {
	out := Checkout{
		Step:       string(st.Step),
		Processing: st.Processing,
		Message:    st.Message,
	}
	if st.LastOrder != nil {
		o := orderFromDomain(*st.LastOrder)
		out.LastOrder = &o
	}
	return out
}

func planFromDomain(p storefront.Plan) Plan {
	return Plan{PlanID: string(p.ID), Name: p.Name, Price: p.Price, Trees: p.Trees}
}

func subscriptionFromState(st storefront.SubscriptionState) Subscription {
	return Subscription{
		Open:       st.Open,
		Step:       string(st.Step),
		Plan:       planFromDomain(st.Plan),
		Processing: st.Processing,
	}
}

func infoFromDomain(i storefront.Info) Info {
	return Info{
		Key:        i.Key,
		Title:      i.Title,
		Kind:       string(i.Kind),
		Paragraphs: i.Paragraphs,
		Bullets:    i.Bullets,
	}
}

func stateFromDomain(st storefront.State) State {
	out := State{
		View:         string(st.View),
		Category:     st.Category,
		Info:         st.Info,
		CartOpen:     st.CartOpen,
		CartCount:    st.CartCount,
		AccountOpen:  st.AccountOpen,
		Subscription: st.Subscription,
		User:         userFromDomain(st.User),
	}
	if st.Product != nil {
		p := productFromDomain(*st.Product)
		out.Product = &p
	}
	return out
}

func (r PaymentRequest) toDomain() storefront.PaymentForm {
	return storefront.PaymentForm{
		CardName:   r.CardName,
		CardNumber: r.CardNumber,
		Expiry:     r.Expiry,
		CVV:        r.CVV,
	}
}
