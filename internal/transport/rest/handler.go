package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rajneesh-anand/geenia-api/internal/catalog"
	"github.com/rajneesh-anand/geenia-api/internal/logger"
	"github.com/rajneesh-anand/geenia-api/internal/metrics"
	"github.com/rajneesh-anand/geenia-api/internal/order"
	"github.com/rajneesh-anand/geenia-api/internal/payment"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	orderSvc order.Service
	stats    *metrics.Checkout
}

func NewHandler(orderSvc order.Service, stats *metrics.Checkout) *Handler {
	return &Handler{orderSvc: orderSvc, stats: stats}
}

// CreateOrder prices the requested items server-side, persists a
// pending order and opens a gateway intent for the exact amount.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if len(req.Items) == 0 {
		writeMessage(w, http.StatusBadRequest, "no line items supplied")
		return
	}

	items := make([]catalog.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Slug == "" || it.Quantity <= 0 {
			writeMessage(w, http.StatusBadRequest, "each item needs a slug and a positive quantity")
			return
		}
		items = append(items, catalog.LineItem{
			Slug:     it.Slug,
			Category: it.Category,
			Quantity: it.Quantity,
		})
	}

	res, err := h.orderSvc.Checkout(r.Context(), order.CheckoutInput{
		Customer: order.Customer{
			Name:    req.Name,
			Email:   req.Email,
			Mobile:  req.Mobile,
			Address: req.Address,
			Pincode: req.Pincode,
		},
		Items: items,
	})
	if err != nil {
		writeDomainError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, CreateOrderResponse{
		GatewayIntentID:  res.IntentID,
		Currency:         res.Currency,
		AmountMinorUnits: res.AmountMinor,
		OrderNumber:      res.OrderNumber,
	})
}

// ConfirmOrder verifies the confirmation claim and transitions the
// order. Repeat deliveries of an applied confirmation return success.
func (h *Handler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	var req ConfirmOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.OrderNumber == "" || req.Signature == "" {
		writeMessage(w, http.StatusBadRequest, "orderNumber and signature are required")
		return
	}

	err := h.orderSvc.Confirm(r.Context(), payment.ConfirmationClaim{
		IntentID:    req.IntentID,
		PaymentID:   req.PaymentID,
		Signature:   req.Signature,
		OrderNumber: req.OrderNumber,
	})
	if err != nil {
		writeDomainError(w, r, err, req.OrderNumber)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "success"})
}

// GetOrder returns the persisted order projection for polling and
// receipt display.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")
	if orderNumber == "" {
		writeMessage(w, http.StatusBadRequest, "orderNumber is required")
		return
	}

	o, err := h.orderSvc.GetByNumber(r.Context(), orderNumber)
	if err != nil {
		writeDomainError(w, r, err, orderNumber)
		return
	}

	writeJSON(w, http.StatusOK, OrderResponse{
		OrderNumber: o.OrderNumber,
		Status:      string(o.Status),
		Amount:      o.Amount.StringFixed(2),
		ShippingFee: o.ShippingFee.StringFixed(2),
		TotalAmount: o.TotalAmount.StringFixed(2),
		Currency:    o.Currency,
		PaymentRef:  o.PaymentRef,
		CreatedAt:   o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   o.UpdatedAt.Format(time.RFC3339),
	})
}

// Healthz reports liveness plus checkout outcome counters.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"checkout": h.stats.Snapshot(),
	})
}

// writeDomainError maps service errors onto stable client messages.
// Internal detail stays in the logs, keyed by order number.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error, orderNumber string) {
	log := logger.FromCtx(r.Context()).With(
		zap.String("order_number", orderNumber),
		zap.Error(err),
	)

	switch {
	case errors.Is(err, catalog.ErrEmptyItems), errors.Is(err, catalog.ErrInvalidQuantity):
		log.Warn("checkout rejected")
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrProductNotFound):
		log.Warn("unknown product in checkout")
		writeMessage(w, http.StatusNotFound, "one or more products could not be found")
	case errors.Is(err, order.ErrOrderNotFound):
		log.Warn("order not found")
		writeMessage(w, http.StatusNotFound, "order not found")
	case errors.Is(err, order.ErrSignatureMismatch):
		log.Warn("signature verification failed")
		writeMessage(w, http.StatusBadRequest, "payment verification failed")
	case errors.Is(err, order.ErrStatusConflict):
		log.Warn("conflicting confirmation")
		writeMessage(w, http.StatusConflict, "order is not awaiting this confirmation")
	case errors.Is(err, order.ErrPersistence):
		log.Error("persistence failure")
		writeMessage(w, http.StatusInternalServerError, "could not save the order, please retry")
	case errors.Is(err, payment.ErrGateway):
		log.Error("gateway failure")
		writeMessage(w, http.StatusBadGateway, "payment gateway unavailable, please retry")
	default:
		log.Error("unhandled error")
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageResponse{Message: msg})
}
