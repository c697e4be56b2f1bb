package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Control tags exchanged with chat clients. The wire format is shared with
// other UIs and must not change.
const (
	TagCompleteOrder      = "complete_order"
	TagConfirmOrder       = "confirm_order"
	TagCancelCheckout     = "cancel_order"
	TagAcceptOrder        = "accept_order"
	TagCancelOrder        = "cancel_order"
	TagAcceptDelivery     = "accept_delivery"
	TagArrived            = "arrived"
	TagOrderReceived      = "order_received"
	TagCancelCancellation = "cancel_cancellation"
	TagAddToCart          = "add_to_cart"
	TagIncrease           = "increase"
	TagDecrease           = "decrease"
	TagRemove             = "remove"
	TagNoop               = "noop"
	TagOrdersPage         = "orders_page"

	TagAddressLocation = "edit_address_location"
	TagAddressName     = "edit_address_name"
	TagAddressDelete   = "delete_address"
)

// Control is a parsed control payload.
type Control struct {
	Tag      string
	OrderID  int
	FoodID   int
	Quantity int
	ItemID   int
	Page     int
}

// prefixes are ordered so that longer tags sharing a prefix are tried first.
var orderPrefixes = []string{
	TagCancelCancellation,
	TagAcceptDelivery,
	TagAcceptOrder,
	TagCancelOrder,
	TagOrderReceived,
	TagArrived,
}

var foodPrefixes = []string{TagAddToCart, TagIncrease, TagDecrease}

var addressPrefixes = []string{TagAddressLocation, TagAddressName, TagAddressDelete}

// ParseControl decodes a control payload such as "accept_order_15" or "add_to_cart_3_2".
func ParseControl(data string) (Control, error) {
	switch data {
	case TagCompleteOrder, TagConfirmOrder, TagCancelCheckout, TagNoop:
		return Control{Tag: data}, nil
	}

	for _, tag := range orderPrefixes {
		if rest, ok := strings.CutPrefix(data, tag+"_"); ok {
			id, err := positiveInt(rest)
			if err != nil {
				return Control{}, fmt.Errorf("%w: control %q: %v", ErrValidation, data, err)
			}
			return Control{Tag: tag, OrderID: id}, nil
		}
	}

	for _, tag := range foodPrefixes {
		if rest, ok := strings.CutPrefix(data, tag+"_"); ok {
			foodPart, qtyPart, found := strings.Cut(rest, "_")
			if !found {
				return Control{}, fmt.Errorf("%w: control %q: quantity missing", ErrValidation, data)
			}
			foodID, err := positiveInt(foodPart)
			if err != nil {
				return Control{}, fmt.Errorf("%w: control %q: %v", ErrValidation, data, err)
			}
			qty, err := strconv.Atoi(qtyPart)
			if err != nil {
				return Control{}, fmt.Errorf("%w: control %q: %v", ErrValidation, data, err)
			}
			return Control{Tag: tag, FoodID: foodID, Quantity: qty}, nil
		}
	}

	if rest, ok := strings.CutPrefix(data, TagOrdersPage+"_"); ok {
		page, err := positiveInt(rest)
		if err != nil {
			return Control{}, fmt.Errorf("%w: control %q: %v", ErrValidation, data, err)
		}
		return Control{Tag: TagOrdersPage, Page: page}, nil
	}

	for _, tag := range append([]string{TagRemove}, addressPrefixes...) {
		if rest, ok := strings.CutPrefix(data, tag+"_"); ok {
			id, err := positiveInt(rest)
			if err != nil {
				return Control{}, fmt.Errorf("%w: control %q: %v", ErrValidation, data, err)
			}
			return Control{Tag: tag, ItemID: id}, nil
		}
	}

	return Control{}, fmt.Errorf("%w: unknown control %q", ErrValidation, data)
}

func OrderControl(tag string, orderID int) string {
	return tag + "_" + strconv.Itoa(orderID)
}

func PageControl(page int) string {
	return TagOrdersPage + "_" + strconv.Itoa(page)
}

func FoodControl(tag string, foodID, quantity int) string {
	return tag + "_" + strconv.Itoa(foodID) + "_" + strconv.Itoa(quantity)
}

func ItemControl(tag string, id int) string {
	return tag + "_" + strconv.Itoa(id)
}

// FoodLabel is the button label used to pick a food from a list.
func FoodLabel(name string, id int) string {
	return name + " | " + strconv.Itoa(id)
}

// ParseFoodLabel extracts the food id from a "<name> | <id>" label.
func ParseFoodLabel(label string) (int, error) {
	idx := strings.LastIndex(label, "|")
	if idx < 0 {
		return 0, fmt.Errorf("%w: food selector %q", ErrValidation, label)
	}
	id, err := positiveInt(strings.TrimSpace(label[idx+1:]))
	if err != nil {
		return 0, fmt.Errorf("%w: food selector %q", ErrValidation, label)
	}
	return id, nil
}

func positiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("id must be positive, got %d", n)
	}
	return n, nil
}
