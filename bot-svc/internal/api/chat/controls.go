package chat

import (
	"context"
	"log"

	"overcooked-bot/bot-svc/internal/domain"
)

func (c *Conversation) handleControl(ctx context.Context, ev domain.Event) error {
	ctl, err := domain.ParseControl(ev.Data)
	if err != nil {
		log.Printf("[bot-svc] chat %d: %v", ev.ChatID, err)
		c.ack(ctx, ev, ackUnknownInput, false)
		return nil
	}

	switch ctl.Tag {
	case domain.TagNoop:
		c.ack(ctx, ev, "", false)
		return nil
	case domain.TagAcceptOrder:
		return c.dispatch(ctx, ev, c.svc.Dispatch.AcceptOrder(ctx, ev, ctl.OrderID))
	case domain.TagCancelOrder:
		if ctl.OrderID == 0 {
			return c.customer(ctx, ev, c.cancelCheckout)
		}
		return c.dispatch(ctx, ev, c.svc.Dispatch.RequestCancellation(ctx, ev, ctl.OrderID))
	case domain.TagAcceptDelivery:
		return c.dispatch(ctx, ev, c.svc.Dispatch.AcceptDelivery(ctx, ev, ctl.OrderID))
	case domain.TagArrived:
		return c.dispatch(ctx, ev, c.svc.Dispatch.MarkArrived(ctx, ev, ctl.OrderID))
	case domain.TagOrderReceived:
		return c.dispatch(ctx, ev, c.svc.Dispatch.ConfirmReceived(ctx, ev, ctl.OrderID))
	case domain.TagCancelCancellation:
		return c.dispatch(ctx, ev, c.svc.Dispatch.CancelCancellation(ctx, ev, ctl.OrderID))
	}

	// the rest belong to the customer dialogue
	switch ctl.Tag {
	case domain.TagCompleteOrder:
		return c.customer(ctx, ev, c.beginCheckout)
	case domain.TagConfirmOrder:
		return c.customer(ctx, ev, c.confirmOrder)
	case domain.TagIncrease, domain.TagDecrease:
		return c.customer(ctx, ev, func(ctx context.Context, ev domain.Event) error {
			return c.changeQuantity(ctx, ev, ctl)
		})
	case domain.TagAddToCart:
		return c.customer(ctx, ev, func(ctx context.Context, ev domain.Event) error {
			return c.addToCart(ctx, ev, ctl)
		})
	case domain.TagRemove:
		return c.customer(ctx, ev, func(ctx context.Context, ev domain.Event) error {
			return c.removeFromCart(ctx, ev, ctl)
		})
	case domain.TagAddressLocation, domain.TagAddressName:
		return c.customer(ctx, ev, func(ctx context.Context, ev domain.Event) error {
			return c.editAddress(ctx, ev, ctl)
		})
	case domain.TagAddressDelete:
		return c.customer(ctx, ev, func(ctx context.Context, ev domain.Event) error {
			return c.deleteAddress(ctx, ev, ctl)
		})
	case domain.TagOrdersPage:
		return c.customer(ctx, ev, func(ctx context.Context, ev domain.Event) error {
			return c.turnOrdersPage(ctx, ev, ctl.Page)
		})
	}

	c.ack(ctx, ev, ackUnknownInput, false)
	return nil
}

// customer runs a control that only makes sense in a private chat.
func (c *Conversation) customer(ctx context.Context, ev domain.Event, fn func(context.Context, domain.Event) error) error {
	if !ev.Private {
		c.ack(ctx, ev, ackUnknownInput, false)
		return nil
	}
	if err := fn(ctx, ev); err != nil {
		c.fail(ctx, ev, err)
		return err
	}
	return nil
}

// dispatch reports a dispatch failure the service has not answered itself.
func (c *Conversation) dispatch(ctx context.Context, ev domain.Event, err error) error {
	if err == nil {
		return nil
	}
	return c.failUnlessNotify(ctx, ev, err)
}
