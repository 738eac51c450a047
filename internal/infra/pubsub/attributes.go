package pubsub

import (
	"strconv"

	"qkart/internal/domain/service"
)

const eventTypeCheckoutCompleted = "checkout.completed"

// checkoutAttributes are the message attributes shared by every provider.
func checkoutAttributes(event *service.CheckoutEvent) map[string]string {
	attributes := map[string]string{
		"event_type": eventTypeCheckoutCompleted,
		"email":      event.Email,
		"item_count": strconv.Itoa(event.ItemCount),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
