package rest

type CreateOrderRequest struct {
	Name    string               `json:"name"`
	Email   string               `json:"email"`
	Mobile  string               `json:"mobile"`
	Address string               `json:"address"`
	Pincode string               `json:"pincode"`
	Items   []CreateOrderItemDTO `json:"items"`
}

type CreateOrderItemDTO struct {
	Slug     string `json:"slug"`
	Category string `json:"category,omitempty"`
	Quantity int    `json:"quantity"`
}

type CreateOrderResponse struct {
	GatewayIntentID  string `json:"gatewayIntentId"`
	Currency         string `json:"currency"`
	AmountMinorUnits int64  `json:"amountMinorUnits"`
	OrderNumber      string `json:"orderNumber"`
}

type ConfirmOrderRequest struct {
	IntentID    string `json:"intentId"`
	PaymentID   string `json:"paymentId"`
	Signature   string `json:"signature"`
	OrderNumber string `json:"orderNumber"`
}

type OrderResponse struct {
	OrderNumber string  `json:"orderNumber"`
	Status      string  `json:"status"`
	Amount      string  `json:"amount"`
	ShippingFee string  `json:"shippingFee"`
	TotalAmount string  `json:"totalAmount"`
	Currency    string  `json:"currency"`
	PaymentRef  *string `json:"paymentRef,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
