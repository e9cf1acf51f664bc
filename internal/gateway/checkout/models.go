package checkout

// sessionResponse - подмножество объекта checkout session провайдера.
type sessionResponse struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	ExpiresAt     int64  `json:"expires_at"`
	PaymentStatus string `json:"payment_status"`
	PaymentIntent string `json:"payment_intent"`
	AmountTotal   int64  `json:"amount_total"`
	Currency      string `json:"currency"`
}

const paymentStatusPaid = "paid"
