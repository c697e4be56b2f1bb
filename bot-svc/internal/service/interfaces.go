package service

import (
	"context"

	"overcooked-bot/bot-svc/internal/domain"
	"overcooked-bot/bot-svc/internal/storage"
)

type UserRepository interface {
	UpsertUser(ctx context.Context, chatID int64, fullName string) (int, error)
	UserID(ctx context.Context, chatID int64) (int, error)
	GetUser(ctx context.Context, chatID int64) (*domain.User, error)
	UpdatePhone(ctx context.Context, chatID int64, phone string) error
}

type CatalogRepository interface {
	ActiveRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	ActiveCategories(ctx context.Context, restaurantID int) ([]string, error)
	ActiveFoods(ctx context.Context, restaurantID int, category string) ([]domain.FoodSummary, error)
	FoodDetail(ctx context.Context, foodID int) (*domain.FoodDetail, error)
	RestaurantHours(ctx context.Context, restaurantID int) (*domain.RestaurantHours, error)
}

type CartRepository interface {
	AddCartItem(ctx context.Context, chatID int64, foodID, qty int) error
	RemoveCartItem(ctx context.Context, chatID int64, cartItemID int) error
	ListCartItems(ctx context.Context, chatID int64) ([]domain.CartLine, error)
	ClearCart(ctx context.Context, chatID int64) error
}

type AddressRepository interface {
	ListAddresses(ctx context.Context, chatID int64) ([]domain.Address, error)
	GetAddress(ctx context.Context, chatID int64, addressID int) (*domain.Address, error)
	AddressByName(ctx context.Context, chatID int64, name string) (*domain.Address, error)
	CreateAddress(ctx context.Context, chatID int64, addr *domain.Address) error
	UpdateAddressLocation(ctx context.Context, chatID int64, addressID int, lat, lon float64) error
	UpdateAddressName(ctx context.Context, chatID int64, addressID int, name string) error
	DeleteAddress(ctx context.Context, chatID int64, addressID int) error
}

type OrderRepository interface {
	CreateOrders(ctx context.Context, userID int, build storage.CheckoutBuilder) ([]domain.Order, error)
	OrderDetails(ctx context.Context, orderID int) (*domain.OrderDetails, error)
	UpdateStatus(ctx context.Context, orderID int, expected []domain.OrderStatus, next domain.OrderStatus) error
	CancelOrder(ctx context.Context, orderID int, expected []domain.OrderStatus, reason string) error
	AssignCourier(ctx context.Context, orderID int, courierChatID int64) (*domain.DeliveryPerson, error)
	SaveDeliveryMessage(ctx context.Context, msg *domain.DeliveryMessage) error
	DeliveryMessages(ctx context.Context, orderID int, kind domain.MessageKind) ([]domain.DeliveryMessage, error)
	CustomerOrders(ctx context.Context, chatID int64, limit int) ([]domain.OrderSummary, error)
}

type SessionStore interface {
	Load(ctx context.Context, key domain.SessionKey) (domain.Session, error)
	Save(ctx context.Context, key domain.SessionKey, sess domain.Session) error
	Clear(ctx context.Context, key domain.SessionKey) error
}

// Messenger is the outbound side of the chat transport.
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string, controls *domain.Controls) (int, error)
	EditMessage(ctx context.Context, chatID int64, messageID int, text string, controls *domain.Controls) error
	SendLocation(ctx context.Context, chatID int64, lat, lon float64) error
	SendPhoto(ctx context.Context, chatID int64, photo []byte, caption string) error
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
	AnswerControl(ctx context.Context, callbackID, text string, alert bool) error
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

type CatalogServiceInterface interface {
	Restaurants(ctx context.Context) ([]domain.Restaurant, error)
	Categories(ctx context.Context, restaurantID int) ([]string, error)
	Foods(ctx context.Context, restaurantID int, category string) ([]domain.FoodSummary, error)
	Food(ctx context.Context, foodID int) (*domain.FoodDetail, error)
	Hours(ctx context.Context, restaurantID int) (*domain.RestaurantHours, error)
}

type CartServiceInterface interface {
	Add(ctx context.Context, chatID int64, foodID, qty int) error
	Remove(ctx context.Context, chatID int64, cartItemID int) error
	List(ctx context.Context, chatID int64) ([]domain.CartLine, error)
	Group(ctx context.Context, chatID int64) ([]domain.CartGroup, error)
	Clear(ctx context.Context, chatID int64) error
}

type AddressServiceInterface interface {
	List(ctx context.Context, chatID int64) ([]domain.Address, error)
	Get(ctx context.Context, chatID int64, addressID int) (*domain.Address, error)
	ByName(ctx context.Context, chatID int64, name string) (*domain.Address, error)
	Create(ctx context.Context, chatID int64, name string, lat, lon float64) (*domain.Address, error)
	CheckLocation(lat, lon float64) error
	Relocate(ctx context.Context, chatID int64, addressID int, lat, lon float64) error
	Rename(ctx context.Context, chatID int64, addressID int, name string) error
	Delete(ctx context.Context, chatID int64, addressID int) error
}

type OrderServiceInterface interface {
	CreateOrders(ctx context.Context, chatID int64, checkout domain.Checkout) ([]domain.PlacedOrder, error)
	Details(ctx context.Context, orderID int) (*domain.OrderDetails, error)
	History(ctx context.Context, chatID int64) ([]domain.OrderSummary, error)
}

type DispatchServiceInterface interface {
	AnnounceOrders(ctx context.Context, placed []domain.PlacedOrder) error
	AcceptOrder(ctx context.Context, ev domain.Event, orderID int) error
	AcceptDelivery(ctx context.Context, ev domain.Event, orderID int) error
	MarkArrived(ctx context.Context, ev domain.Event, orderID int) error
	ConfirmReceived(ctx context.Context, ev domain.Event, orderID int) error
	RequestCancellation(ctx context.Context, ev domain.Event, orderID int) error
	CancelCancellation(ctx context.Context, ev domain.Event, orderID int) error
	ApplyCancelReason(ctx context.Context, ev domain.Event, sess domain.Session) error
}

type UserServiceInterface interface {
	Register(ctx context.Context, chatID int64, fullName string) error
	Profile(ctx context.Context, chatID int64) (*domain.User, error)
	SetPhone(ctx context.Context, chatID int64, phone string) error
}

var (
	_ UserRepository    = (*storage.PostgresRepository)(nil)
	_ CatalogRepository = (*storage.PostgresRepository)(nil)
	_ CartRepository    = (*storage.PostgresRepository)(nil)
	_ AddressRepository = (*storage.PostgresRepository)(nil)
	_ OrderRepository   = (*storage.PostgresRepository)(nil)
	_ SessionStore      = (*storage.RedisSessionStore)(nil)
	_ EventPublisher    = (*storage.KafkaPublisher)(nil)

	_ CatalogServiceInterface  = (*CatalogService)(nil)
	_ CartServiceInterface     = (*CartService)(nil)
	_ AddressServiceInterface  = (*AddressService)(nil)
	_ OrderServiceInterface    = (*OrderService)(nil)
	_ DispatchServiceInterface = (*DispatchService)(nil)
	_ UserServiceInterface     = (*UserService)(nil)
	_ Messenger                = (*RetryingMessenger)(nil)
)
