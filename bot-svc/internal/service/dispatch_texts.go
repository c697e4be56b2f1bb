package service

import (
	"fmt"
	"strings"

	"overcooked-bot/bot-svc/internal/domain"
)

const (
	ackOrderNotFound    = "Order not found."
	ackAlreadyProcessed = "This order has already been processed."
	ackNotAllowed       = "You are not allowed to do this."
	ackNotCourier       = "You are not registered as a courier."
	ackAlreadyTaken     = "Another courier has already taken this order."
	ackNotCancellable   = "This order can no longer be cancelled."
	ackNoAdmin          = "No administrator is configured for this restaurant."
	ackAdminBusy        = "The administrator is already cancelling another order."
	ackAdminUnreachable = "Could not reach the administrator. Ask them to start the bot first."
	ackNoCancellation   = "No cancellation is in progress for this order."
	ackPartialNotify    = "⚠️ Saved, but some participants could not be notified."

	ackAccepted          = "✅ Order accepted"
	ackDeliveryTaken     = "🚴 The order is yours"
	ackArrived           = "📍 Customer notified"
	ackReceived          = "✅ Thank you!"
	ackReasonRequested   = "The administrator was asked for a reason"
	ackCancellationUndo  = "Cancellation aborted"
	msgReasonEmpty       = "Please write the cancellation reason as text."
	msgReasonNotAllowed  = "You are not allowed to cancel this order."
	msgReasonNotFound    = "The order being cancelled no longer exists."
	msgCancelledAdminOK  = "✅ Order #%d cancelled. The customer has been notified."
	msgCancelledAdminBad = "✅ Order #%d cancelled, but the customer could not be notified."
)

func itemLines(b *strings.Builder, items []domain.OrderItem) {
	for _, item := range items {
		fmt.Fprintf(b, "• %s × %d = %s\n", item.FoodName, item.Quantity,
			domain.FormatMoney(item.Price.Mul(decimalInt(item.Quantity))))
	}
}

func restaurantOrderText(p domain.PlacedOrder) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🆕 New order #%d\n\n", p.Order.ID)
	itemLines(&b, p.Items)
	fmt.Fprintf(&b, "\n🚚 Delivery: %s\n", domain.FormatMoney(p.DeliveryCost))
	fmt.Fprintf(&b, "💰 Total: %s\n", domain.FormatMoney(p.Order.Total))
	fmt.Fprintf(&b, "📞 Phone: %s\n", p.Order.PhoneNumber)
	fmt.Fprintf(&b, "📍 Location: %s\n", domain.MapLink(p.Order.Latitude, p.Order.Longitude))
	if p.Order.RestaurantMessage != "" {
		fmt.Fprintf(&b, "💬 Message: %s\n", p.Order.RestaurantMessage)
	}
	return b.String()
}

// restaurantDetailsText rebuilds the restaurant message of a stored order.
func restaurantDetailsText(d *domain.OrderDetails) string {
	delivery := d.Total
	for _, it := range d.Items {
		delivery = delivery.Sub(it.Price.Mul(decimalInt(it.Quantity)))
	}
	return restaurantOrderText(domain.PlacedOrder{
		Order:            d.Order,
		RestaurantName:   d.RestaurantName,
		RestaurantChatID: d.RestaurantChatID,
		DeliveryCost:     delivery,
		Items:            d.Items,
	})
}

func restaurantControls(orderID int, status domain.OrderStatus) *domain.Controls {
	var row []domain.Button
	if status == domain.StatusPending {
		row = append(row, domain.Button{Label: "✅ Accept", Data: domain.OrderControl(domain.TagAcceptOrder, orderID)})
	}
	if status.Cancellable() {
		row = append(row, domain.Button{Label: "❌ Cancel", Data: domain.OrderControl(domain.TagCancelOrder, orderID)})
	}
	if len(row) == 0 {
		return domain.NoControls()
	}
	return &domain.Controls{Inline: [][]domain.Button{row}}
}

func deliveryOrderText(d *domain.OrderDetails) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📦 Order #%d is ready for delivery\n\n", d.ID)
	fmt.Fprintf(&b, "🏪 Restaurant: %s\n", d.RestaurantName)
	fmt.Fprintf(&b, "📞 Phone: %s\n", d.PhoneNumber)
	fmt.Fprintf(&b, "💰 Total: %s\n", domain.FormatMoney(d.Total))
	fmt.Fprintf(&b, "📍 Location: %s\n", domain.MapLink(d.Latitude, d.Longitude))
	if d.DeliveryMessage != "" {
		fmt.Fprintf(&b, "💬 Message: %s\n", d.DeliveryMessage)
	}
	return b.String()
}

func courierOrderText(d *domain.OrderDetails) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🚴 You are delivering order #%d\n\n", d.ID)
	fmt.Fprintf(&b, "🏪 Restaurant: %s\n", d.RestaurantName)
	if d.RestaurantLat != 0 || d.RestaurantLon != 0 {
		fmt.Fprintf(&b, "🏪 Pick up at: %s\n", domain.MapLink(d.RestaurantLat, d.RestaurantLon))
	}
	fmt.Fprintf(&b, "📍 Deliver to: %s\n", domain.MapLink(d.Latitude, d.Longitude))
	fmt.Fprintf(&b, "📞 Customer: %s\n\n", d.PhoneNumber)
	itemLines(&b, d.Items)
	fmt.Fprintf(&b, "\n💰 Total to collect: %s\n", domain.FormatMoney(d.Total))
	if d.RestaurantMessage != "" {
		fmt.Fprintf(&b, "💬 For the restaurant: %s\n", d.RestaurantMessage)
	}
	if d.DeliveryMessage != "" {
		fmt.Fprintf(&b, "💬 For you: %s\n", d.DeliveryMessage)
	}
	return b.String()
}

func singleControl(label, data string) *domain.Controls {
	return &domain.Controls{Inline: [][]domain.Button{{{Label: label, Data: data}}}}
}

func appendLine(original, line string) string {
	if original == "" {
		return line
	}
	return original + "\n\n" + line
}
