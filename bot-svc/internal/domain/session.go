package domain

import (
	"fmt"
	"strconv"
)

type State string

const (
	StateMainMenu                 State = ""
	StateSelectingRestaurant      State = "selecting_restaurant"
	StateSelectingCategory        State = "selecting_category"
	StateSelectingFood            State = "selecting_food"
	StateViewingCart              State = "viewing_cart"
	StateWaitingForPhone          State = "waiting_for_phone"
	StateWaitingForAddress        State = "waiting_for_address"
	StateAddingNewAddressLocation State = "adding_new_address_location"
	StateAddingNewAddressName     State = "adding_new_address_name"
	StateWaitingRestaurantMessage State = "waiting_restaurant_message"
	StateWaitingDeliveryMessage   State = "waiting_delivery_message"
	StateConfirmingOrder          State = "confirming_order"
	StateViewingOrders            State = "viewing_orders"
	StateViewingSettings          State = "viewing_settings"
	StateEditingAddressLocation   State = "editing_address_location"
	StateEditingAddressName       State = "editing_address_name"
	StateWaitingCancelReason      State = "waiting_cancel_reason"
)

type Purpose string

const (
	PurposeChat         Purpose = "chat"
	PurposeCancelReason Purpose = "cancel_reason"
)

// SessionKey addresses a conversation by the identity it belongs to and what it is for.
type SessionKey struct {
	Identity int64
	Purpose  Purpose
}

func ChatSession(identity int64) SessionKey {
	return SessionKey{Identity: identity, Purpose: PurposeChat}
}

func CancelReasonSession(identity int64) SessionKey {
	return SessionKey{Identity: identity, Purpose: PurposeCancelReason}
}

func (k SessionKey) String() string {
	return "session:" + string(k.Purpose) + ":" + strconv.FormatInt(k.Identity, 10)
}

// Session is the state tag of a conversation plus the context it carries.
type Session struct {
	State State `json:"state"`

	RestaurantID   int    `json:"restaurant_id,omitempty"`
	RestaurantName string `json:"restaurant_name,omitempty"`
	Category       string `json:"category,omitempty"`

	Phone             string `json:"phone,omitempty"`
	AddressID         int    `json:"address_id,omitempty"`
	RestaurantMessage string `json:"restaurant_message,omitempty"`
	DeliveryMessage   string `json:"delivery_message,omitempty"`
	ConfirmMessageID  int    `json:"confirm_message_id,omitempty"`

	// address dialogues
	FromSettings     bool    `json:"from_settings,omitempty"`
	HasNewLocation   bool    `json:"has_new_location,omitempty"`
	NewLatitude      float64 `json:"new_latitude,omitempty"`
	NewLongitude     float64 `json:"new_longitude,omitempty"`
	EditingAddressID int     `json:"editing_address_id,omitempty"`

	// cancellation sub-dialogue
	CancelOrderID   int    `json:"cancel_order_id,omitempty"`
	CustomerChatID  int64  `json:"customer_chat_id,omitempty"`
	GroupChatID     int64  `json:"group_chat_id,omitempty"`
	GroupMessageID  int    `json:"group_message_id,omitempty"`
	GroupText       string `json:"group_text,omitempty"`
	PromptMessageID int    `json:"prompt_message_id,omitempty"`
}

// Checkout returns the checkout data collected so far.
func (s Session) Checkout() Checkout {
	return Checkout{
		Phone:             s.Phone,
		AddressID:         s.AddressID,
		RestaurantMessage: s.RestaurantMessage,
		DeliveryMessage:   s.DeliveryMessage,
	}
}

// Validate checks that the context the state depends on is present.
func (s Session) Validate() error {
	var missing string
	switch s.State {
	case StateSelectingCategory:
		if s.RestaurantID == 0 {
			missing = "restaurant"
		}
	case StateSelectingFood:
		if s.RestaurantID == 0 {
			missing = "restaurant"
		} else if s.Category == "" {
			missing = "category"
		}
	case StateWaitingForAddress:
		if s.Phone == "" {
			missing = "phone"
		}
	case StateAddingNewAddressLocation:
		if s.Phone == "" && !s.FromSettings {
			missing = "phone"
		}
	case StateAddingNewAddressName:
		if !s.HasNewLocation {
			missing = "location"
		} else if s.Phone == "" && !s.FromSettings {
			missing = "phone"
		}
	case StateWaitingRestaurantMessage, StateWaitingDeliveryMessage, StateConfirmingOrder:
		if s.Phone == "" {
			missing = "phone"
		} else if s.AddressID == 0 {
			missing = "address"
		}
	case StateEditingAddressLocation, StateEditingAddressName:
		if s.EditingAddressID == 0 {
			missing = "address"
		}
	case StateWaitingCancelReason:
		if s.CancelOrderID == 0 {
			missing = "order"
		} else if s.GroupChatID == 0 {
			missing = "group chat"
		}
	case StateMainMenu, StateSelectingRestaurant, StateViewingCart, StateWaitingForPhone,
		StateViewingOrders, StateViewingSettings:
	default:
		return fmt.Errorf("%w: unknown state %q", ErrValidation, s.State)
	}
	if missing != "" {
		return fmt.Errorf("%w: state %s requires %s", ErrValidation, s.State, missing)
	}
	return nil
}
