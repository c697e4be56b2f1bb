package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"overcooked-bot/bot-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// DispatchService drives an order from the restaurant to the courier and back
// to the customer. Each transition commits its status change before any
// message is sent, and a status that no longer matches is acknowledged
// without side effects.
type DispatchService struct {
	orders    OrderRepository
	sessions  SessionStore
	messenger Messenger
	publisher EventPublisher
	qr        QRGenerator
}

func NewDispatchService(orders OrderRepository, sessions SessionStore, messenger Messenger, publisher EventPublisher, qr QRGenerator) *DispatchService {
	return &DispatchService{
		orders:    orders,
		sessions:  sessions,
		messenger: messenger,
		publisher: publisher,
		qr:        qr,
	}
}

// AnnounceOrders posts every new order to its restaurant chat.
func (s *DispatchService) AnnounceOrders(ctx context.Context, placed []domain.PlacedOrder) error {
	var failed notifyErrors
	for _, p := range placed {
		msgID, err := s.messenger.SendMessage(ctx, p.RestaurantChatID, restaurantOrderText(p),
			restaurantControls(p.Order.ID, domain.StatusPending))
		if err != nil {
			failed.add("notify restaurant", p.Order.ID, err)
			continue
		}
		s.record(ctx, p.Order.ID, p.RestaurantChatID, msgID, domain.MessageRestaurant)
	}
	return failed.err()
}

func (s *DispatchService) AcceptOrder(ctx context.Context, ev domain.Event, orderID int) error {
	d, ok, err := s.load(ctx, ev, orderID)
	if !ok {
		return err
	}
	if ev.ChatID != d.RestaurantChatID {
		s.ack(ctx, ev, ackNotAllowed, true)
		return nil
	}
	if !s.advance(ctx, ev, d, domain.StatusAccepted, domain.ActorRestaurant, &err) {
		return err
	}

	var failed notifyErrors
	_, err = s.messenger.SendMessage(ctx, d.CustomerChatID,
		fmt.Sprintf("✅ Your order #%d has been accepted by %s.\nWaiting for a courier.", d.ID, d.RestaurantName), nil)
	failed.add("notify customer", d.ID, err)

	if d.DeliveryChatID != 0 {
		msgID, err := s.messenger.SendMessage(ctx, d.DeliveryChatID, deliveryOrderText(d),
			singleControl("🚴 Take order", domain.OrderControl(domain.TagAcceptDelivery, d.ID)))
		if failed.add("notify delivery chat", d.ID, err) {
			s.record(ctx, d.ID, d.DeliveryChatID, msgID, domain.MessageDelivery)
		}
	} else {
		log.Printf("[bot-svc] restaurant %d has no delivery chat, order %d not pushed", d.RestaurantID, d.ID)
	}

	err = s.messenger.EditMessage(ctx, ev.ChatID, ev.MessageID, appendLine(ev.MessageText, "✅ Accepted"),
		restaurantControls(d.ID, domain.StatusAccepted))
	failed.add("edit restaurant message", d.ID, err)

	s.finish(ctx, ev, ackAccepted, failed)
	s.publish(ctx, d, domain.StatusAccepted)
	return failed.err()
}

func (s *DispatchService) AcceptDelivery(ctx context.Context, ev domain.Event, orderID int) error {
	d, ok, err := s.load(ctx, ev, orderID)
	if !ok {
		return err
	}
	if ev.ChatID != d.DeliveryChatID {
		s.ack(ctx, ev, ackNotAllowed, true)
		return nil
	}
	if err := domain.CanTransition(d.Status, domain.StatusDelivering, domain.ActorCourier); err != nil {
		s.ack(ctx, ev, ackAlreadyTaken, false)
		return nil
	}

	courier, err := s.orders.AssignCourier(ctx, d.ID, ev.SenderID)
	switch {
	case errors.Is(err, domain.ErrPermissionDenied):
		s.ack(ctx, ev, ackNotCourier, true)
		return nil
	case errors.Is(err, domain.ErrConflictOrStale):
		s.ack(ctx, ev, ackAlreadyTaken, false)
		return nil
	case err != nil:
		return fmt.Errorf("assign courier to order %d: %w", d.ID, err)
	}
	d.Status = domain.StatusDelivering
	d.CourierChatID, d.CourierName, d.CourierPhone = courier.ChatID, courier.Name, courier.PhoneNumber

	var failed notifyErrors
	msgID, err := s.messenger.SendMessage(ctx, courier.ChatID, courierOrderText(d),
		singleControl("📍 I have arrived", domain.OrderControl(domain.TagArrived, d.ID)))
	if failed.add("notify courier", d.ID, err) {
		s.record(ctx, d.ID, courier.ChatID, msgID, domain.MessageCourier)
		failed.add("send location to courier", d.ID,
			s.messenger.SendLocation(ctx, courier.ChatID, d.Latitude, d.Longitude))
	}

	_, err = s.messenger.SendMessage(ctx, d.CustomerChatID,
		fmt.Sprintf("🚴 Your order #%d is on the way.\nCourier: %s\nPhone: %s", d.ID, courier.Name, courier.PhoneNumber), nil)
	failed.add("notify customer", d.ID, err)

	err = s.messenger.EditMessage(ctx, ev.ChatID, ev.MessageID,
		appendLine(ev.MessageText, "🚴 Taken by "+courier.Name), domain.NoControls())
	failed.add("edit delivery message", d.ID, err)

	s.finish(ctx, ev, ackDeliveryTaken, failed)
	s.publish(ctx, d, domain.StatusDelivering)
	return failed.err()
}

func (s *DispatchService) MarkArrived(ctx context.Context, ev domain.Event, orderID int) error {
	d, ok, err := s.load(ctx, ev, orderID)
	if !ok {
		return err
	}
	if d.CourierChatID == 0 || ev.SenderID != d.CourierChatID {
		s.ack(ctx, ev, ackNotAllowed, true)
		return nil
	}
	if !s.advance(ctx, ev, d, domain.StatusArrived, domain.ActorCourier, &err) {
		return err
	}

	var failed notifyErrors
	msgID, err := s.messenger.SendMessage(ctx, d.CustomerChatID,
		fmt.Sprintf("📍 The courier has arrived with your order #%d.\nPlease confirm once you have received it.", d.ID),
		singleControl("✅ I received my order", domain.OrderControl(domain.TagOrderReceived, d.ID)))
	if failed.add("notify customer", d.ID, err) {
		s.record(ctx, d.ID, d.CustomerChatID, msgID, domain.MessageCustomer)
	}

	err = s.messenger.EditMessage(ctx, ev.ChatID, ev.MessageID, appendLine(ev.MessageText, "📍 Arrived"), domain.NoControls())
	failed.add("edit courier message", d.ID, err)

	s.finish(ctx, ev, ackArrived, failed)
	s.publish(ctx, d, domain.StatusArrived)
	return failed.err()
}

func (s *DispatchService) ConfirmReceived(ctx context.Context, ev domain.Event, orderID int) error {
	d, ok, err := s.load(ctx, ev, orderID)
	if !ok {
		return err
	}
	if ev.SenderID != d.CustomerChatID {
		s.ack(ctx, ev, ackNotAllowed, true)
		return nil
	}
	if !s.advance(ctx, ev, d, domain.StatusCompleted, domain.ActorCustomer, &err) {
		return err
	}

	var failed notifyErrors
	err = s.messenger.EditMessage(ctx, ev.ChatID, ev.MessageID,
		fmt.Sprintf("✅ Order #%d delivered. Thank you for your order!", d.ID), domain.NoControls())
	failed.add("edit customer message", d.ID, err)

	if d.CourierChatID != 0 {
		_, err = s.messenger.SendMessage(ctx, d.CourierChatID,
			fmt.Sprintf("✅ The customer confirmed receipt of order #%d.", d.ID), nil)
		failed.add("notify courier", d.ID, err)
	}

	if s.qr != nil {
		png, err := s.qr.Generate(d.ID)
		if err != nil {
			log.Printf("[bot-svc] feedback QR for order %d: %v", d.ID, err)
		} else {
			failed.add("send feedback QR", d.ID,
				s.messenger.SendPhoto(ctx, d.CustomerChatID, png, fmt.Sprintf("⭐ Rate order #%d from %s", d.ID, d.RestaurantName)))
		}
	}

	s.finish(ctx, ev, ackReceived, failed)
	s.publish(ctx, d, domain.StatusCompleted)
	return failed.err()
}

// RequestCancellation opens the reason dialogue with the restaurant's
// administrator. The order itself is not touched until a reason arrives.
func (s *DispatchService) RequestCancellation(ctx context.Context, ev domain.Event, orderID int) error {
	d, ok, err := s.load(ctx, ev, orderID)
	if !ok {
		return err
	}
	if ev.ChatID != d.RestaurantChatID {
		s.ack(ctx, ev, ackNotAllowed, true)
		return nil
	}
	if !d.Status.Cancellable() {
		s.ack(ctx, ev, ackNotCancellable, false)
		return nil
	}
	if d.AdminChatID == 0 {
		s.ack(ctx, ev, ackNoAdmin, true)
		return nil
	}

	key := domain.CancelReasonSession(d.AdminChatID)
	current, err := s.sessions.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("load cancellation session of %d: %w", d.AdminChatID, err)
	}
	if current.State == domain.StateWaitingCancelReason && current.CancelOrderID != d.ID {
		s.ack(ctx, ev, ackAdminBusy, true)
		return nil
	}

	promptID, err := s.messenger.SendMessage(ctx, d.AdminChatID,
		fmt.Sprintf("❌ Order #%d from %s is being cancelled.\nPlease write the reason for the customer.", d.ID, d.RestaurantName),
		singleControl("↩️ Do not cancel", domain.OrderControl(domain.TagCancelCancellation, d.ID)))
	if err != nil {
		log.Printf("[bot-svc] cancellation prompt for order %d to admin %d: %v", d.ID, d.AdminChatID, err)
		s.ack(ctx, ev, ackAdminUnreachable, true)
		return fmt.Errorf("%w: prompt admin for order %d: %v", domain.ErrNotifyFailed, d.ID, err)
	}

	sess := domain.Session{
		State:           domain.StateWaitingCancelReason,
		CancelOrderID:   d.ID,
		CustomerChatID:  d.CustomerChatID,
		RestaurantName:  d.RestaurantName,
		GroupChatID:     ev.ChatID,
		GroupMessageID:  ev.MessageID,
		GroupText:       ev.MessageText,
		PromptMessageID: promptID,
	}
	if err := s.sessions.Save(ctx, key, sess); err != nil {
		_ = s.messenger.DeleteMessage(ctx, d.AdminChatID, promptID)
		return fmt.Errorf("save cancellation session of %d: %w", d.AdminChatID, err)
	}

	var failed notifyErrors
	err = s.messenger.EditMessage(ctx, ev.ChatID, ev.MessageID,
		appendLine(ev.MessageText, "⏳ Cancelling, waiting for the administrator's reason..."), domain.NoControls())
	failed.add("edit restaurant message", d.ID, err)

	s.finish(ctx, ev, ackReasonRequested, failed)
	return failed.err()
}

// CancelCancellation aborts the reason dialogue and restores the restaurant
// message. The order status is left as it is.
func (s *DispatchService) CancelCancellation(ctx context.Context, ev domain.Event, orderID int) error {
	key := domain.CancelReasonSession(ev.SenderID)
	sess, err := s.sessions.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("load cancellation session of %d: %w", ev.SenderID, err)
	}
	if sess.State != domain.StateWaitingCancelReason || sess.CancelOrderID != orderID {
		return s.restoreRestaurantMessage(ctx, ev, orderID)
	}

	status := domain.StatusPending
	if d, err := s.orders.OrderDetails(ctx, orderID); err == nil {
		status = d.Status
	} else {
		log.Printf("[bot-svc] reload order %d while aborting cancellation: %v", orderID, err)
	}

	if err := s.sessions.Clear(ctx, key); err != nil {
		return fmt.Errorf("clear cancellation session of %d: %w", ev.SenderID, err)
	}

	var failed notifyErrors
	err = s.messenger.EditMessage(ctx, sess.GroupChatID, sess.GroupMessageID, sess.GroupText,
		restaurantControls(orderID, status))
	failed.add("restore restaurant message", orderID, err)
	failed.add("delete admin prompt", orderID, s.messenger.DeleteMessage(ctx, ev.ChatID, ev.MessageID))

	s.finish(ctx, ev, ackCancellationUndo, failed)
	return failed.err()
}

// restoreRestaurantMessage brings back the restaurant's controls when the
// reason dialogue is already gone. Only the order's administrator may do this.
func (s *DispatchService) restoreRestaurantMessage(ctx context.Context, ev domain.Event, orderID int) error {
	d, ok, err := s.load(ctx, ev, orderID)
	if !ok {
		return err
	}
	if d.AdminChatID != ev.SenderID {
		s.ack(ctx, ev, ackNoCancellation, false)
		return nil
	}

	msgs, err := s.orders.DeliveryMessages(ctx, d.ID, domain.MessageRestaurant)
	if err != nil {
		return fmt.Errorf("restaurant messages of order %d: %w", d.ID, err)
	}
	if len(msgs) == 0 {
		log.Printf("[bot-svc] order %d: no restaurant message recorded to restore", d.ID)
		s.ack(ctx, ev, ackNoCancellation, false)
		return nil
	}

	text := restaurantDetailsText(d)
	if d.Status != domain.StatusPending {
		text = appendLine(text, d.Status.Label())
	}

	var failed notifyErrors
	for _, m := range msgs {
		failed.add("restore restaurant message", d.ID,
			s.messenger.EditMessage(ctx, m.ChatID, m.MessageID, text, restaurantControls(d.ID, d.Status)))
	}
	failed.add("delete admin prompt", d.ID, s.messenger.DeleteMessage(ctx, ev.ChatID, ev.MessageID))

	s.finish(ctx, ev, ackCancellationUndo, failed)
	return failed.err()
}

// ApplyCancelReason takes the administrator's text as the cancellation reason.
func (s *DispatchService) ApplyCancelReason(ctx context.Context, ev domain.Event, sess domain.Session) error {
	key := domain.CancelReasonSession(ev.SenderID)
	reason := strings.TrimSpace(ev.Text)
	if reason == "" {
		_, err := s.messenger.SendMessage(ctx, ev.ChatID, msgReasonEmpty, nil)
		return err
	}

	d, err := s.orders.OrderDetails(ctx, sess.CancelOrderID)
	if errors.Is(err, domain.ErrNotFound) {
		if err := s.sessions.Clear(ctx, key); err != nil {
			return err
		}
		_, err = s.messenger.SendMessage(ctx, ev.ChatID, msgReasonNotFound, nil)
		return err
	}
	if err != nil {
		return fmt.Errorf("load order %d: %w", sess.CancelOrderID, err)
	}

	if d.AdminChatID != ev.SenderID {
		log.Printf("[bot-svc] chat %d tried to cancel order %d owned by admin %d", ev.SenderID, d.ID, d.AdminChatID)
		_, err := s.messenger.SendMessage(ctx, ev.ChatID, msgReasonNotAllowed, nil)
		return err
	}

	err = s.orders.CancelOrder(ctx, d.ID, domain.Predecessors(domain.StatusCancelled, domain.ActorAdmin), reason)
	if errors.Is(err, domain.ErrConflictOrStale) {
		return s.abandonStaleCancellation(ctx, ev, key, sess, d)
	}
	if err != nil {
		return fmt.Errorf("cancel order %d: %w", d.ID, err)
	}

	if err := s.sessions.Clear(ctx, key); err != nil {
		log.Printf("[bot-svc] clear cancellation session of %d: %v", ev.SenderID, err)
	}

	var failed notifyErrors
	_, err = s.messenger.SendMessage(ctx, d.CustomerChatID,
		fmt.Sprintf("❌ Your order #%d from %s was cancelled.\nReason: %s", d.ID, d.RestaurantName, reason), nil)
	customerOK := failed.add("notify customer", d.ID, err)

	err = s.messenger.EditMessage(ctx, sess.GroupChatID, sess.GroupMessageID,
		fmt.Sprintf("❌ Order #%d cancelled.\nReason: %s", d.ID, reason), domain.NoControls())
	failed.add("edit restaurant message", d.ID, err)

	s.closeDeliveryMessages(ctx, d.ID, &failed)

	if sess.PromptMessageID != 0 {
		failed.add("close admin prompt", d.ID,
			s.messenger.EditMessage(ctx, ev.ChatID, sess.PromptMessageID,
				fmt.Sprintf("Order #%d: reason received.", d.ID), domain.NoControls()))
	}

	confirm := fmt.Sprintf(msgCancelledAdminOK, d.ID)
	if !customerOK {
		confirm = fmt.Sprintf(msgCancelledAdminBad, d.ID)
	}
	_, err = s.messenger.SendMessage(ctx, ev.ChatID, confirm, nil)
	failed.add("confirm to admin", d.ID, err)

	s.publish(ctx, d, domain.StatusCancelled)
	return failed.err()
}

func (s *DispatchService) abandonStaleCancellation(ctx context.Context, ev domain.Event, key domain.SessionKey, sess domain.Session, d *domain.OrderDetails) error {
	if err := s.sessions.Clear(ctx, key); err != nil {
		log.Printf("[bot-svc] clear cancellation session of %d: %v", ev.SenderID, err)
	}
	// re-read so the message shows the status that won the race
	if fresh, err := s.orders.OrderDetails(ctx, d.ID); err == nil {
		d = fresh
	}

	var failed notifyErrors
	err := s.messenger.EditMessage(ctx, sess.GroupChatID, sess.GroupMessageID,
		appendLine(sess.GroupText, "Cancellation not applied: order is "+string(d.Status)), restaurantControls(d.ID, d.Status))
	failed.add("restore restaurant message", d.ID, err)

	_, err = s.messenger.SendMessage(ctx, ev.ChatID,
		fmt.Sprintf("Order #%d can no longer be cancelled, its status is %s.", d.ID, d.Status), nil)
	failed.add("inform admin", d.ID, err)
	return failed.err()
}

func (s *DispatchService) closeDeliveryMessages(ctx context.Context, orderID int, failed *notifyErrors) {
	msgs, err := s.orders.DeliveryMessages(ctx, orderID, domain.MessageDelivery)
	if err != nil {
		log.Printf("[bot-svc] delivery messages of order %d: %v", orderID, err)
		return
	}
	for _, m := range msgs {
		failed.add("close delivery message", orderID,
			s.messenger.EditMessage(ctx, m.ChatID, m.MessageID, fmt.Sprintf("❌ Order #%d was cancelled.", orderID), domain.NoControls()))
	}
}

// load reads the order behind a control. ok is false when the caller must stop;
// err is then either nil (already answered) or the failure to report.
func (s *DispatchService) load(ctx context.Context, ev domain.Event, orderID int) (*domain.OrderDetails, bool, error) {
	d, err := s.orders.OrderDetails(ctx, orderID)
	if errors.Is(err, domain.ErrNotFound) {
		s.ack(ctx, ev, ackOrderNotFound, true)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load order %d: %w", orderID, err)
	}
	return d, true, nil
}

// advance applies a compare-and-set transition. It reports false when the
// caller must stop, with *errp set only for real failures.
func (s *DispatchService) advance(ctx context.Context, ev domain.Event, d *domain.OrderDetails, next domain.OrderStatus, actor domain.Actor, errp *error) bool {
	*errp = nil
	if err := domain.CanTransition(d.Status, next, actor); err != nil {
		s.ack(ctx, ev, ackAlreadyProcessed, false)
		return false
	}
	err := s.orders.UpdateStatus(ctx, d.ID, domain.Predecessors(next, actor), next)
	if errors.Is(err, domain.ErrConflictOrStale) {
		s.ack(ctx, ev, ackAlreadyProcessed, false)
		return false
	}
	if err != nil {
		*errp = fmt.Errorf("move order %d to %s: %w", d.ID, next, err)
		return false
	}
	d.Status = next
	return true
}

func (s *DispatchService) record(ctx context.Context, orderID int, chatID int64, messageID int, kind domain.MessageKind) {
	msg := &domain.DeliveryMessage{OrderID: orderID, ChatID: chatID, MessageID: messageID, Kind: kind}
	if err := s.orders.SaveDeliveryMessage(ctx, msg); err != nil {
		log.Printf("[bot-svc] record %s message of order %d: %v", kind, orderID, err)
	}
}

func (s *DispatchService) ack(ctx context.Context, ev domain.Event, text string, alert bool) {
	if ev.CallbackID == "" {
		return
	}
	if err := s.messenger.AnswerControl(ctx, ev.CallbackID, text, alert); err != nil {
		log.Printf("[bot-svc] answer control %q in chat %d: %v", ev.Data, ev.ChatID, err)
	}
}

func (s *DispatchService) finish(ctx context.Context, ev domain.Event, text string, failed notifyErrors) {
	if len(failed) > 0 {
		s.ack(ctx, ev, ackPartialNotify, true)
		return
	}
	s.ack(ctx, ev, text, false)
}

func (s *DispatchService) publish(ctx context.Context, d *domain.OrderDetails, status domain.OrderStatus) {
	publishEvent(ctx, s.publisher, domain.EventOrderStatusChanged, d.ID, d.RestaurantID, status, d.Total)
}

type notifyErrors []error

// add records err when it is non-nil and reports whether the call succeeded.
func (n *notifyErrors) add(what string, orderID int, err error) bool {
	if err == nil {
		return true
	}
	log.Printf("[bot-svc] %s for order %d: %v", what, orderID, err)
	*n = append(*n, fmt.Errorf("%w: %s for order %d: %v", domain.ErrNotifyFailed, what, orderID, err))
	return false
}

func (n notifyErrors) err() error {
	return errors.Join(n...)
}

func decimalInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
