package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yettapastries/storefront/internal/storefront"
	"github.com/yettapastries/storefront/pkg/logger"
)

// PaymentHandler serves the direct payment endpoints.
type PaymentHandler struct {
	gateway storefront.PaymentGateway
	logger  *slog.Logger
}

// NewPaymentHandler creates the handler.
func NewPaymentHandler(gateway storefront.PaymentGateway, log *slog.Logger) *PaymentHandler {
	if log == nil {
		log = logger.Discard()
	}
	return &PaymentHandler{gateway: gateway, logger: log}
}

// Routes registers the /api/payment endpoints.
func (h *PaymentHandler) Routes(r chi.Router) {
	r.Post("/mpesa/stkpush", h.stkPush)
}

type stkPushRequest struct {
	PhoneNumber string `json:"phone_number"`
	Amount      uint   `json:"amount"`
}

type stkPushResponse struct {
	Message             string `json:"message"`
	MerchantRequestID   string `json:"merchant_request_id,omitempty"`
	CheckoutRequestID   string `json:"checkout_request_id,omitempty"`
	ResponseCode        string `json:"response_code,omitempty"`
	ResponseDescription string `json:"response_description,omitempty"`
	CustomerMessage     string `json:"customer_message,omitempty"`
}

func (h *PaymentHandler) stkPush(w http.ResponseWriter, r *http.Request) {
	var req stkPushRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.gateway.SendSTKPush(r.Context(), req.PhoneNumber, req.Amount)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "stk push failed", slog.Any("error", err))
		respondJSON(w, http.StatusBadRequest, stkPushResponse{Message: "STK Push failed"})
		return
	}

	respondJSON(w, http.StatusOK, stkPushResponse{
		Message:             "STK Push initiated successfully",
		MerchantRequestID:   res.MerchantRequestID,
		CheckoutRequestID:   res.CheckoutRequestID,
		ResponseCode:        res.ResponseCode,
		ResponseDescription: res.ResponseDescription,
		CustomerMessage:     res.CustomerMessage,
	})
}
