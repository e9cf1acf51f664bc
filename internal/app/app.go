package app

import (
	"garmentflow/internal/gateway/orderevents"
	"garmentflow/internal/handlers/kafka-consumer/order_events"
	"garmentflow/internal/handlers/rest/checkout_session_post"
	"garmentflow/internal/handlers/rest/image_post"
	"garmentflow/internal/handlers/rest/order_delete"
	"garmentflow/internal/handlers/rest/order_events_get"
	"garmentflow/internal/handlers/rest/order_get"
	"garmentflow/internal/handlers/rest/order_status_patch"
	"garmentflow/internal/handlers/rest/order_tracking_get"
	"garmentflow/internal/handlers/rest/order_tracking_patch"
	"garmentflow/internal/handlers/rest/orders_get"
	"garmentflow/internal/handlers/rest/orders_post"
	"garmentflow/internal/handlers/rest/payment_success_patch"
	"garmentflow/internal/handlers/rest/product_get"
	"garmentflow/internal/handlers/rest/product_patch"
	"garmentflow/internal/handlers/rest/product_post"
	"garmentflow/internal/handlers/rest/products_get"
	"garmentflow/internal/pkg/auth"
	"garmentflow/pkg/background"
	"garmentflow/pkg/token_bucket"
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceProduct    ServiceProduct
	ServicePayment    ServicePayment
	Verifier          *auth.Verifier
	OrderEvents       *orderevents.Bus
	RateLimiter       *token_bucket.Keyed
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	orders_post.Service
	orders_get.Service
	order_get.Service
	order_status_patch.Service
	order_tracking_patch.Service
	order_tracking_get.Service
	order_delete.Service
	order_events_get.Service
}

type ServiceProduct interface {
	product_post.Service
	product_patch.Service
	product_get.Service
	products_get.Service
	image_post.Service
}

type ServicePayment interface {
	checkout_session_post.Service
	payment_success_patch.Service
}

type OrderEventsWorkerApp struct {
	Handler     *order_events.Handler
	OrderEvents *orderevents.Bus
}
