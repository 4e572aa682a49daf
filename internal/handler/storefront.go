package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yettapastries/storefront/internal/storefront"
	"github.com/yettapastries/storefront/pkg/jwt"
	"github.com/yettapastries/storefront/pkg/logger"
)

// StorefrontHandler serves the cart, orders and favorites routes. All of them
// sit behind the session middleware; the customer is identified by the token
// subject.
type StorefrontHandler struct {
	orders    *storefront.OrderService
	favorites *storefront.FavoriteService
	logger    *slog.Logger
}

// NewStorefrontHandler creates the handler.
func NewStorefrontHandler(orders *storefront.OrderService, favorites *storefront.FavoriteService, log *slog.Logger) *StorefrontHandler {
	if log == nil {
		log = logger.Discard()
	}
	return &StorefrontHandler{orders: orders, favorites: favorites, logger: log}
}

// CartRoutes registers the /api/cart endpoints.
func (h *StorefrontHandler) CartRoutes(r chi.Router) {
	r.Post("/add", h.addToCart)
	r.Post("/checkout", h.checkout)
}

// OrderRoutes registers the /api/orders endpoints.
func (h *StorefrontHandler) OrderRoutes(r chi.Router) {
	r.Get("/", h.listOrders)
}

// FavoriteRoutes registers the /api/favorites endpoints.
func (h *StorefrontHandler) FavoriteRoutes(r chi.Router) {
	r.Get("/", h.listFavorites)
	r.Post("/add", h.addFavorite)
	r.Delete("/{item_id}", h.removeFavorite)
}

// sessionEmail returns the authenticated customer's email. The middleware
// guarantees claims are present; the fallback 401 covers miswired routes.
func sessionEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := jwt.GetClaims(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "No authorization header")
		return "", false
	}
	return claims.Subject, true
}

type cartItemRequest struct {
	ItemID string `json:"item_id"`
}

// addToCart acknowledges the item; the cart itself lives client-side.
func (h *StorefrontHandler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.logger.InfoContext(r.Context(), "item added to cart", slog.String("item_id", req.ItemID))
	respondMessage(w, http.StatusOK, "Item added to cart")
}

type checkoutRequest struct {
	PaymentMethod string                 `json:"payment_method"`
	PhoneNumber   string                 `json:"phone_number"`
	BankAccount   string                 `json:"bank_account"`
	Items         []storefront.OrderItem `json:"items"`
	Total         float64                `json:"total"`
}

type checkoutResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (h *StorefrontHandler) checkout(w http.ResponseWriter, r *http.Request) {
	userEmail, ok := sessionEmail(w, r)
	if !ok {
		return
	}

	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orders.Checkout(r.Context(), userEmail, storefront.CheckoutInput{
		PaymentMethod: req.PaymentMethod,
		PhoneNumber:   req.PhoneNumber,
		BankAccount:   req.BankAccount,
		Items:         req.Items,
		Total:         req.Total,
	})
	if err != nil {
		switch {
		case errors.Is(err, storefront.ErrPaymentMethodInvalid):
			respondMessage(w, http.StatusBadRequest, "Invalid payment method specified")
		case errors.Is(err, storefront.ErrPhoneNumberRequired):
			respondMessage(w, http.StatusBadRequest, "Mpesa Express phone number required")
		case errors.Is(err, storefront.ErrPhoneNumberInvalid):
			respondMessage(w, http.StatusBadRequest, "Invalid Mpesa Express phone number format")
		case errors.Is(err, storefront.ErrBankAccountRequired):
			respondMessage(w, http.StatusBadRequest, "Bank account required")
		case errors.Is(err, storefront.ErrPaymentFailed):
			respondMessage(w, http.StatusBadRequest, "Payment failed")
		default:
			h.logger.ErrorContext(r.Context(), "checkout failed", slog.Any("error", err))
			respondMessage(w, http.StatusInternalServerError, "Failed to save order")
		}
		return
	}

	respondJSON(w, http.StatusOK, checkoutResponse{Message: "Checkout successful!", Status: order.Status})
}

func (h *StorefrontHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	userEmail, ok := sessionEmail(w, r)
	if !ok {
		return
	}

	orders, err := h.orders.ListOrders(r.Context(), userEmail)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list orders", slog.Any("error", err))
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}
	if orders == nil {
		orders = []storefront.Order{}
	}

	respondJSON(w, http.StatusOK, orders)
}

type addFavoriteRequest struct {
	ItemID    string  `json:"item_id"`
	ItemTitle string  `json:"item_title"`
	ItemImage string  `json:"item_image"`
	ItemPrice float64 `json:"item_price"`
}

func (h *StorefrontHandler) addFavorite(w http.ResponseWriter, r *http.Request) {
	userEmail, ok := sessionEmail(w, r)
	if !ok {
		return
	}

	var req addFavoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.favorites.Add(r.Context(), userEmail, storefront.FavoriteInput{
		ItemID:    req.ItemID,
		ItemTitle: req.ItemTitle,
		ItemImage: req.ItemImage,
		ItemPrice: req.ItemPrice,
	})
	if err != nil {
		if errors.Is(err, storefront.ErrFavoriteExists) {
			respondMessage(w, http.StatusConflict, "Item already in favorites")
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to add favorite", slog.Any("error", err))
		respondMessage(w, http.StatusInternalServerError, "Failed to add favorite")
		return
	}

	respondMessage(w, http.StatusOK, "Added to favorites")
}

func (h *StorefrontHandler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	userEmail, ok := sessionEmail(w, r)
	if !ok {
		return
	}

	itemID := chi.URLParam(r, "item_id")
	if err := h.favorites.Remove(r.Context(), userEmail, itemID); err != nil {
		if errors.Is(err, storefront.ErrFavoriteNotFound) {
			respondMessage(w, http.StatusNotFound, "Favorite not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to remove favorite", slog.Any("error", err))
		respondMessage(w, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}

	respondMessage(w, http.StatusOK, "Removed from favorites")
}

func (h *StorefrontHandler) listFavorites(w http.ResponseWriter, r *http.Request) {
	userEmail, ok := sessionEmail(w, r)
	if !ok {
		return
	}

	favorites, err := h.favorites.List(r.Context(), userEmail)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list favorites", slog.Any("error", err))
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}
	if favorites == nil {
		favorites = []storefront.Favorite{}
	}

	respondJSON(w, http.StatusOK, favorites)
}
