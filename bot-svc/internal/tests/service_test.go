package tests

import (
	"context"
	"errors"
	"testing"

	"overcooked-bot/bot-svc/internal/domain"
	"overcooked-bot/bot-svc/internal/mocks"
	"overcooked-bot/bot-svc/internal/service"
	"overcooked-bot/bot-svc/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func money(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func sampleCart() []domain.CartLine {
	return []domain.CartLine{
		{ID: 1, FoodID: 10, FoodName: "Burger", Quantity: 2, Price: money(20000),
			RestaurantID: 1, RestaurantName: "RestaurantX", RestaurantChatID: -100, DeliveryCost: money(5000)},
		{ID: 2, FoodID: 11, FoodName: "Fries", Quantity: 1, Price: money(15000),
			RestaurantID: 1, RestaurantName: "RestaurantX", RestaurantChatID: -100, DeliveryCost: money(5000)},
	}
}

func TestCartService_Add(t *testing.T) {
	repository := mocks.NewCartRepository(t)
	svc := service.NewCartService(repository)
	ctx := context.Background()

	tests := []struct {
		name          string
		qty           int
		prepareMocks  func()
		expectedError error
	}{
		{
			name: "success",
			qty:  2,
			prepareMocks: func() {
				repository.On("AddCartItem", ctx, int64(42), 10, 2).Return(nil).Once()
			},
		},
		{
			name:          "zero_quantity",
			qty:           0,
			prepareMocks:  func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name: "inactive_food",
			qty:  1,
			prepareMocks: func() {
				repository.On("AddCartItem", ctx, int64(42), 10, 1).Return(domain.ErrItemUnavailable).Once()
			},
			expectedError: domain.ErrItemUnavailable,
		},
		{
			name: "unknown_user",
			qty:  3,
			prepareMocks: func() {
				repository.On("AddCartItem", ctx, int64(42), 10, 3).Return(domain.ErrUserUnknown).Once()
			},
			expectedError: domain.ErrUserUnknown,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			err := svc.Add(ctx, 42, 10, testCase.qty)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestGroupByRestaurant(t *testing.T) {
	lines := append(sampleCart(), domain.CartLine{
		ID: 3, FoodID: 20, FoodName: "Soup", Quantity: 3, Price: money(12000),
		RestaurantID: 2, RestaurantName: "RestaurantY", RestaurantChatID: -200,
	})

	groups := service.GroupByRestaurant(lines)

	require.Len(t, groups, 2)
	assert.Equal(t, "RestaurantX", groups[0].RestaurantName)
	assert.Equal(t, int64(-100), groups[0].RestaurantChatID)
	assert.Len(t, groups[0].Items, 2)
	assert.True(t, groups[0].Subtotal.Equal(money(55000)))
	assert.True(t, groups[0].Total().Equal(money(60000)))
	assert.True(t, groups[1].Subtotal.Equal(money(36000)))
	assert.True(t, groups[1].Total().Equal(money(36000)))
	assert.True(t, service.GrandTotal(groups).Equal(money(96000)))

	assert.Empty(t, service.GroupByRestaurant(nil))
}

func TestOrderTotal_IsExact(t *testing.T) {
	lines := make([]domain.CartLine, 10)
	for i := range lines {
		lines[i] = domain.CartLine{Quantity: 1, Price: decimal.RequireFromString("0.1")}
	}
	total := service.OrderTotal(lines, decimal.RequireFromString("0.2"))
	assert.Equal(t, "1.2", total.String())
}

func TestOrderService_CreateOrders(t *testing.T) {
	ctx := context.Background()
	checkout := domain.Checkout{Phone: "+998901234567", AddressID: 3, RestaurantMessage: "no onions", DeliveryMessage: "3rd floor"}
	addr := &domain.Address{ID: 3, Name: "Home", Latitude: 38.28, Longitude: 67.9}

	t.Run("one_order_per_restaurant", func(t *testing.T) {
		users := mocks.NewUserRepository(t)
		carts := mocks.NewCartRepository(t)
		addresses := mocks.NewAddressRepository(t)
		orders := mocks.NewOrderRepository(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewOrderService(users, carts, addresses, orders, publisher)

		users.On("UserID", ctx, int64(42)).Return(7, nil).Once()
		carts.On("ListCartItems", ctx, int64(42)).Return(sampleCart(), nil).Once()
		addresses.On("GetAddress", ctx, int64(42), 3).Return(addr, nil).Once()

		var drafts []domain.OrderDraft
		orders.On("CreateOrders", ctx, 7, mock.AnythingOfType("storage.CheckoutBuilder")).
			Run(func(args mock.Arguments) {
				build := args.Get(2).(storage.CheckoutBuilder)
				var err error
				drafts, err = build(sampleCart())
				require.NoError(t, err)
			}).
			Return([]domain.Order{{ID: 100, RestaurantID: 1, Status: domain.StatusPending, Total: money(60000)}}, nil).Once()
		publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(ev domain.OrderEvent) bool {
			return ev.Type == domain.EventOrderCreated && ev.OrderID == 100 && ev.Total == "60000" && ev.ID != ""
		})).Return(nil).Once()

		placed, err := svc.CreateOrders(ctx, 42, checkout)

		require.NoError(t, err)
		require.Len(t, drafts, 1)
		assert.True(t, drafts[0].Total.Equal(money(60000)))
		assert.Equal(t, "+998901234567", drafts[0].Phone)
		assert.Equal(t, 38.28, drafts[0].Latitude)
		assert.Equal(t, "no onions", drafts[0].RestaurantMessage)
		require.Len(t, drafts[0].Items, 2)
		assert.True(t, drafts[0].Items[0].Price.Equal(money(20000)))

		require.Len(t, placed, 1)
		assert.Equal(t, 100, placed[0].Order.ID)
		assert.Equal(t, "RestaurantX", placed[0].RestaurantName)
		assert.Equal(t, int64(-100), placed[0].RestaurantChatID)
		assert.Len(t, placed[0].Items, 2)
	})

	t.Run("empty_cart", func(t *testing.T) {
		users := mocks.NewUserRepository(t)
		carts := mocks.NewCartRepository(t)
		svc := service.NewOrderService(users, carts, mocks.NewAddressRepository(t), mocks.NewOrderRepository(t), nil)

		users.On("UserID", ctx, int64(42)).Return(7, nil).Once()
		carts.On("ListCartItems", ctx, int64(42)).Return([]domain.CartLine{}, nil).Once()

		_, err := svc.CreateOrders(ctx, 42, checkout)
		assert.ErrorIs(t, err, domain.ErrEmptyCart)
	})

	t.Run("unknown_user", func(t *testing.T) {
		users := mocks.NewUserRepository(t)
		svc := service.NewOrderService(users, mocks.NewCartRepository(t), mocks.NewAddressRepository(t), mocks.NewOrderRepository(t), nil)

		users.On("UserID", ctx, int64(42)).Return(0, domain.ErrUserUnknown).Once()

		_, err := svc.CreateOrders(ctx, 42, checkout)
		assert.ErrorIs(t, err, domain.ErrUserUnknown)
	})

	t.Run("address_missing", func(t *testing.T) {
		users := mocks.NewUserRepository(t)
		carts := mocks.NewCartRepository(t)
		addresses := mocks.NewAddressRepository(t)
		svc := service.NewOrderService(users, carts, addresses, mocks.NewOrderRepository(t), nil)

		users.On("UserID", ctx, int64(42)).Return(7, nil).Once()
		carts.On("ListCartItems", ctx, int64(42)).Return(sampleCart(), nil).Once()
		addresses.On("GetAddress", ctx, int64(42), 3).Return(nil, domain.ErrNotFound).Once()

		_, err := svc.CreateOrders(ctx, 42, checkout)
		assert.ErrorIs(t, err, domain.ErrAddressMissing)
	})

	t.Run("rollback_is_transient", func(t *testing.T) {
		users := mocks.NewUserRepository(t)
		carts := mocks.NewCartRepository(t)
		addresses := mocks.NewAddressRepository(t)
		orders := mocks.NewOrderRepository(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewOrderService(users, carts, addresses, orders, publisher)

		users.On("UserID", ctx, int64(42)).Return(7, nil).Once()
		carts.On("ListCartItems", ctx, int64(42)).Return(sampleCart(), nil).Once()
		addresses.On("GetAddress", ctx, int64(42), 3).Return(addr, nil).Once()
		orders.On("CreateOrders", ctx, 7, mock.Anything).Return(nil, errors.New("insert order_items: connection reset")).Once()

		placed, err := svc.CreateOrders(ctx, 42, checkout)
		assert.ErrorIs(t, err, domain.ErrTransientIO)
		assert.Nil(t, placed)
		publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
	})

	t.Run("cart_emptied_concurrently", func(t *testing.T) {
		users := mocks.NewUserRepository(t)
		carts := mocks.NewCartRepository(t)
		addresses := mocks.NewAddressRepository(t)
		orders := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(users, carts, addresses, orders, nil)

		users.On("UserID", ctx, int64(42)).Return(7, nil).Once()
		carts.On("ListCartItems", ctx, int64(42)).Return(sampleCart(), nil).Once()
		addresses.On("GetAddress", ctx, int64(42), 3).Return(addr, nil).Once()
		orders.On("CreateOrders", ctx, 7, mock.Anything).
			Return(func(_ context.Context, _ int, build storage.CheckoutBuilder) ([]domain.Order, error) {
				_, err := build(nil)
				return nil, err
			}).Once()

		_, err := svc.CreateOrders(ctx, 42, checkout)
		assert.ErrorIs(t, err, domain.ErrEmptyCart)
	})
}

func TestOrderService_History(t *testing.T) {
	ctx := context.Background()
	orders := mocks.NewOrderRepository(t)
	svc := service.NewOrderService(mocks.NewUserRepository(t), mocks.NewCartRepository(t), mocks.NewAddressRepository(t), orders, nil)

	orders.On("CustomerOrders", ctx, int64(42), 6).Return([]domain.OrderSummary{}, nil).Once()
	_, err := svc.History(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	orders.On("CustomerOrders", ctx, int64(43), 6).Return([]domain.OrderSummary{{ID: 1}}, nil).Once()
	got, err := svc.History(ctx, 43)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCatalogService_EmptyIsNotFound(t *testing.T) {
	ctx := context.Background()
	repository := mocks.NewCatalogRepository(t)
	svc := service.NewCatalogService(repository)

	tests := []struct {
		name          string
		prepareMocks  func()
		call          func() error
		expectedError error
	}{
		{
			name: "no_restaurants",
			prepareMocks: func() {
				repository.On("ActiveRestaurants", ctx).Return([]domain.Restaurant{}, nil).Once()
			},
			call: func() error {
				_, err := svc.Restaurants(ctx)
				return err
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name: "no_categories",
			prepareMocks: func() {
				repository.On("ActiveCategories", ctx, 1).Return(nil, nil).Once()
			},
			call: func() error {
				_, err := svc.Categories(ctx, 1)
				return err
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name: "foods_found",
			prepareMocks: func() {
				repository.On("ActiveFoods", ctx, 1, "Burgers").
					Return([]domain.FoodSummary{{ID: 10, Name: "Burger", Price: money(20000)}}, nil).Once()
			},
			call: func() error {
				_, err := svc.Foods(ctx, 1, "Burgers")
				return err
			},
		},
		{
			name: "storage_failure",
			prepareMocks: func() {
				repository.On("ActiveRestaurants", ctx).Return(nil, errors.New("db down")).Once()
			},
			call: func() error {
				_, err := svc.Restaurants(ctx)
				return err
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			err := testCase.call()
			if testCase.name == "storage_failure" {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, domain.ErrNotFound)
				return
			}
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestAddressService(t *testing.T) {
	ctx := context.Background()
	zone := domain.DeliveryZone{CenterLat: 38.2758164, CenterLon: 67.894829, MaxKm: 6}

	t.Run("create_inside_zone", func(t *testing.T) {
		repository := mocks.NewAddressRepository(t)
		svc := service.NewAddressService(repository, zone)
		repository.On("CreateAddress", ctx, int64(42), mock.MatchedBy(func(a *domain.Address) bool {
			return a.Name == "Home" && a.Latitude == 38.28
		})).Run(func(args mock.Arguments) {
			args.Get(2).(*domain.Address).ID = 9
		}).Return(nil).Once()

		addr, err := svc.Create(ctx, 42, "  Home ", 38.28, 67.9)
		require.NoError(t, err)
		assert.Equal(t, 9, addr.ID)
	})

	t.Run("create_outside_zone", func(t *testing.T) {
		svc := service.NewAddressService(mocks.NewAddressRepository(t), zone)
		_, err := svc.Create(ctx, 42, "Dacha", 39.0, 67.9)
		var zoneErr *domain.OutOfZoneError
		assert.ErrorAs(t, err, &zoneErr)
	})

	t.Run("blank_name", func(t *testing.T) {
		svc := service.NewAddressService(mocks.NewAddressRepository(t), zone)
		_, err := svc.Create(ctx, 42, "   ", 38.28, 67.9)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("relocate_checks_zone_first", func(t *testing.T) {
		svc := service.NewAddressService(mocks.NewAddressRepository(t), zone)
		err := svc.Relocate(ctx, 42, 3, 0, 0)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rename_missing", func(t *testing.T) {
		repository := mocks.NewAddressRepository(t)
		svc := service.NewAddressService(repository, zone)
		repository.On("UpdateAddressName", ctx, int64(42), 3, "Office").Return(domain.ErrNotFound).Once()
		assert.ErrorIs(t, svc.Rename(ctx, 42, 3, "Office"), domain.ErrNotFound)
	})
}

func TestUserService_SetPhone(t *testing.T) {
	ctx := context.Background()
	repository := mocks.NewUserRepository(t)
	svc := service.NewUserService(repository)

	repository.On("UpdatePhone", ctx, int64(42), "+998901234567").Return(nil).Once()
	assert.NoError(t, svc.SetPhone(ctx, 42, "+998901234567"))

	assert.ErrorIs(t, svc.SetPhone(ctx, 42, "call me"), domain.ErrValidation)
}
