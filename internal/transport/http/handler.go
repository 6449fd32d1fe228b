package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
	"github.com/light-bringer/shopfront-service/internal/app/shop/queries/get_cart"
	"github.com/light-bringer/shopfront-service/internal/app/shop/queries/get_product"
	"github.com/light-bringer/shopfront-service/internal/app/shop/queries/get_session"
	"github.com/light-bringer/shopfront-service/internal/app/shop/queries/list_categories"
	"github.com/light-bringer/shopfront-service/internal/app/shop/queries/list_products"
	"github.com/light-bringer/shopfront-service/internal/app/shop/usecases/add_to_cart"
	"github.com/light-bringer/shopfront-service/internal/app/shop/usecases/clear_cart"
	"github.com/light-bringer/shopfront-service/internal/app/shop/usecases/close_session"
	"github.com/light-bringer/shopfront-service/internal/app/shop/usecases/delete_product"
	"github.com/light-bringer/shopfront-service/internal/app/shop/usecases/login_session"
	"github.com/light-bringer/shopfront-service/internal/app/shop/usecases/logout_session"
	"github.com/light-bringer/shopfront-service/internal/app/shop/usecases/open_session"
	"github.com/light-bringer/shopfront-service/internal/app/shop/usecases/remove_from_cart"
	"github.com/light-bringer/shopfront-service/internal/app/shop/usecases/update_cart_item"
	"github.com/light-bringer/shopfront-service/internal/app/shop/usecases/upsert_product"
)

// Handler serves the storefront REST API.
type Handler struct {
	listProducts   *list_products.Query
	getProduct     *get_product.Query
	listCategories *list_categories.Query
	getSession     *get_session.Query
	getCart        *get_cart.Query

	openSession    *open_session.Interactor
	loginSession   *login_session.Interactor
	logoutSession  *logout_session.Interactor
	closeSession   *close_session.Interactor
	addToCart      *add_to_cart.Interactor
	updateCartItem *update_cart_item.Interactor
	removeFromCart *remove_from_cart.Interactor
	clearCart      *clear_cart.Interactor
	upsertProduct  *upsert_product.Interactor
	deleteProduct  *delete_product.Interactor

	defaultPriceMax *domain.Money
	logger          *zap.Logger
}

// Dependencies groups the use cases the handler serves.
type Dependencies struct {
	ListProducts   *list_products.Query
	GetProduct     *get_product.Query
	ListCategories *list_categories.Query
	GetSession     *get_session.Query
	GetCart        *get_cart.Query

	OpenSession    *open_session.Interactor
	LoginSession   *login_session.Interactor
	LogoutSession  *logout_session.Interactor
	CloseSession   *close_session.Interactor
	AddToCart      *add_to_cart.Interactor
	UpdateCartItem *update_cart_item.Interactor
	RemoveFromCart *remove_from_cart.Interactor
	ClearCart      *clear_cart.Interactor
	UpsertProduct  *upsert_product.Interactor
	DeleteProduct  *delete_product.Interactor

	// DefaultPriceMax caps listings that give no max; nil leaves them open
	DefaultPriceMax *domain.Money
}

// NewHandler creates a new HTTP handler.
func NewHandler(deps Dependencies, logger *zap.Logger) *Handler {
	return &Handler{
		listProducts:    deps.ListProducts,
		getProduct:      deps.GetProduct,
		listCategories:  deps.ListCategories,
		getSession:      deps.GetSession,
		getCart:         deps.GetCart,
		openSession:     deps.OpenSession,
		loginSession:    deps.LoginSession,
		logoutSession:   deps.LogoutSession,
		closeSession:    deps.CloseSession,
		addToCart:       deps.AddToCart,
		updateCartItem:  deps.UpdateCartItem,
		removeFromCart:  deps.RemoveFromCart,
		clearCart:       deps.ClearCart,
		upsertProduct:   deps.UpsertProduct,
		deleteProduct:   deps.DeleteProduct,
		defaultPriceMax: deps.DefaultPriceMax,
		logger:          logger,
	}
}

// ListProducts handles GET /products and GET /products/category/:category.
func (h *Handler) ListProducts(c *gin.Context) {
	req, ok := h.parseListRequest(c)
	if !ok {
		return
	}

	resp, err := h.listProducts.Execute(c.Request.Context(), req)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductListView(resp.Products))
}

// AdminListProducts handles GET /admin/products: the whole catalog,
// unfiltered and in catalog order.
func (h *Handler) AdminListProducts(c *gin.Context) {
	resp, err := h.listProducts.Execute(c.Request.Context(), &list_products.Request{})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductListView(resp.Products))
}

type productBody struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       json.Number `json:"price" binding:"required"`
	ImageURL    string      `json:"image_url"`
	Category    string      `json:"category"`
	Stock       *int        `json:"stock" binding:"required"`
}

func (b *productBody) request(create bool, id int64, actor string) *upsert_product.Request {
	return &upsert_product.Request{
		Create:      create,
		ProductID:   id,
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price.String(),
		ImageURL:    b.ImageURL,
		Category:    b.Category,
		Stock:       *b.Stock,
		Actor:       actor,
	}
}

// CreateProduct handles POST /admin/products. An absent id takes the next
// free one.
func (h *Handler) CreateProduct(c *gin.Context) {
	var body productBody
	if err := c.ShouldBindJSON(&body); err != nil || body.ID < 0 {
		badRequest(c, "invalid payload")
		return
	}

	product, err := h.upsertProduct.Execute(c.Request.Context(), body.request(true, body.ID, adminSubject(c)))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductView(product))
}

// UpdateProduct handles PUT /admin/products/:id. The path id wins over any
// id in the body.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	var body productBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid payload")
		return
	}

	product, err := h.upsertProduct.Execute(c.Request.Context(), body.request(false, id, adminSubject(c)))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductView(product))
}

// DeleteProduct handles DELETE /admin/products/:id.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	err := h.deleteProduct.Execute(c.Request.Context(), &delete_product.Request{
		ProductID: id,
		Actor:     adminSubject(c),
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) parseListRequest(c *gin.Context) (*list_products.Request, bool) {
	req := &list_products.Request{
		Category: c.Query("category"),
		Search:   c.Query("q"),
		PriceMax: h.defaultPriceMax,
	}

	if segment := c.Param("category"); segment != "" {
		req.Category = domain.NormalizeCategory(segment)
	}

	sort, err := domain.ParseSortKey(c.Query("sort"))
	if err != nil {
		badRequest(c, err.Error())
		return nil, false
	}
	req.Sort = sort

	if raw, ok := c.GetQuery("min"); ok && raw != "" {
		m, err := domain.ParseMoney(raw)
		if err != nil {
			badRequest(c, "invalid min price")
			return nil, false
		}
		req.PriceMin = m
	}

	if raw, ok := c.GetQuery("max"); ok && raw != "" {
		m, err := domain.ParseMoney(raw)
		if err != nil {
			badRequest(c, "invalid max price")
			return nil, false
		}
		req.PriceMax = m
	}

	if raw, ok := c.GetQuery("in_stock"); ok && raw != "" {
		inStock, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(c, "invalid in_stock flag")
			return nil, false
		}
		req.InStockOnly = inStock
	}

	return req, true
}

// GetProduct handles GET /products/:id.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	p, err := h.getProduct.Execute(c.Request.Context(), &get_product.Request{ProductID: id})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductView(p))
}

// ListCategories handles GET /categories.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.listCategories.Execute(c.Request.Context())
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

type openSessionBody struct {
	ResumeID string `json:"resume_id"`
}

// OpenSession handles POST /sessions. The stored token, if any, comes in
// the Authorization header.
func (h *Handler) OpenSession(c *gin.Context) {
	var body openSessionBody
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			badRequest(c, "invalid payload")
			return
		}
	}

	resp, err := h.openSession.Execute(c.Request.Context(), &open_session.Request{
		ResumeID: body.ResumeID,
		Token:    bearerToken(c),
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	view := toSessionView(resp.Session)
	view.TokenDiscarded = resp.TokenDiscarded
	c.JSON(http.StatusCreated, view)
}

// GetSession handles GET /sessions/:id.
func (h *Handler) GetSession(c *gin.Context) {
	view, err := h.getSession.Execute(c.Request.Context(), &get_session.Request{SessionID: c.Param("id")})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionView(view))
}

type loginBody struct {
	Token string `json:"token"`
}

// Login handles POST /sessions/:id/login with a bearer token in the
// Authorization header or a {"token": ...} body.
func (h *Handler) Login(c *gin.Context) {
	token := bearerToken(c)
	if token == "" && c.Request.ContentLength > 0 {
		var body loginBody
		if err := c.ShouldBindJSON(&body); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		token = body.Token
	}
	if token == "" {
		badRequest(c, "token is required")
		return
	}

	auth, err := h.loginSession.Execute(c.Request.Context(), &login_session.Request{
		SessionID: c.Param("id"),
		Token:     token,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAuthView(auth))
}

// Logout handles POST /sessions/:id/logout.
func (h *Handler) Logout(c *gin.Context) {
	auth, err := h.logoutSession.Execute(c.Request.Context(), &logout_session.Request{SessionID: c.Param("id")})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAuthView(auth))
}

// CloseSession handles DELETE /sessions/:id.
func (h *Handler) CloseSession(c *gin.Context) {
	if err := h.closeSession.Execute(c.Request.Context(), &close_session.Request{SessionID: c.Param("id")}); err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetCart handles GET /sessions/:id/cart.
func (h *Handler) GetCart(c *gin.Context) {
	cart, err := h.getCart.Execute(c.Request.Context(), &get_cart.Request{SessionID: c.Param("id")})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(cart))
}

type addItemBody struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  *int  `json:"quantity"`
}

// AddItem handles POST /sessions/:id/cart/items. Quantity defaults to 1.
func (h *Handler) AddItem(c *gin.Context) {
	var body addItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid payload")
		return
	}

	qty := 1
	if body.Quantity != nil {
		qty = *body.Quantity
	}

	cart, err := h.addToCart.Execute(c.Request.Context(), &add_to_cart.Request{
		SessionID: c.Param("id"),
		ProductID: body.ProductID,
		Quantity:  qty,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(cart))
}

type updateItemBody struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdateItem handles PUT /sessions/:id/cart/items/:productId.
func (h *Handler) UpdateItem(c *gin.Context) {
	productID, ok := int64Param(c, "productId")
	if !ok {
		return
	}

	var body updateItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid payload")
		return
	}

	cart, err := h.updateCartItem.Execute(c.Request.Context(), &update_cart_item.Request{
		SessionID: c.Param("id"),
		ProductID: productID,
		Quantity:  *body.Quantity,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(cart))
}

// RemoveItem handles DELETE /sessions/:id/cart/items/:productId.
func (h *Handler) RemoveItem(c *gin.Context) {
	productID, ok := int64Param(c, "productId")
	if !ok {
		return
	}

	cart, err := h.removeFromCart.Execute(c.Request.Context(), &remove_from_cart.Request{
		SessionID: c.Param("id"),
		ProductID: productID,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(cart))
}

// ClearCart handles DELETE /sessions/:id/cart.
func (h *Handler) ClearCart(c *gin.Context) {
	cart, err := h.clearCart.Execute(c.Request.Context(), &clear_cart.Request{SessionID: c.Param("id")})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(cart))
}

func int64Param(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}
