package checkout

import (
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"garmentflow/internal/entities"
)

// суммы у провайдера в минимальных единицах валюты
const minorUnitsExp = 2

func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(minorUnitsExp).Round(0).IntPart()
}

func fromMinorUnits(amount int64) decimal.Decimal {
	return decimal.New(amount, -minorUnitsExp)
}

func toSessionForm(request entities.CheckoutRequest, successURL, cancelURL string) url.Values {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", successURL)
	form.Set("cancel_url", cancelURL)
	form.Set("client_reference_id", request.OrderID)
	form.Set("metadata[order_id]", request.OrderID)
	if request.CustomerEmail != "" {
		form.Set("customer_email", request.CustomerEmail)
	}
	form.Set("line_items[0][quantity]", strconv.FormatInt(request.Quantity, 10))
	form.Set("line_items[0][price_data][currency]", request.Currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(toMinorUnits(request.UnitAmount), 10))
	form.Set("line_items[0][price_data][product_data][name]", request.ProductTitle)
	return form
}

func toProviderCheckout(resp *sessionResponse) *entities.ProviderCheckout {
	checkout := &entities.ProviderCheckout{
		SessionID: resp.ID,
		URL:       resp.URL,
	}
	if resp.ExpiresAt > 0 {
		checkout.ExpiresAt = time.Unix(resp.ExpiresAt, 0).UTC()
	}
	return checkout
}

func toSessionStatus(resp *sessionResponse) *entities.ProviderSessionStatus {
	return &entities.ProviderSessionStatus{
		SessionID:     resp.ID,
		Paid:          resp.PaymentStatus == paymentStatusPaid,
		TransactionID: resp.PaymentIntent,
		AmountTotal:   fromMinorUnits(resp.AmountTotal),
		Currency:      resp.Currency,
	}
}
