package chat

import (
	"fmt"
	"strings"

	"overcooked-bot/bot-svc/internal/domain"
	"overcooked-bot/bot-svc/internal/service"

	"github.com/shopspring/decimal"
)

const (
	cmdStart = "/start"

	btnOrder      = "🍴 Order food"
	btnCart       = "🛒 Cart"
	btnOrders     = "📦 My orders"
	btnSettings   = "⚙️ Settings"
	btnBack       = "⬅️ Back"
	btnSkip       = "⏭ Skip"
	btnSharePhone = "📞 Share phone number"
	btnSendPlace  = "📍 Send location"
	btnNewAddress = "➕ New address"
	addressPrefix = "📍 "
)

const (
	msgWelcome          = "👋 Welcome! Choose what you would like to do."
	msgMainMenu         = "🏠 Main menu"
	msgUseMenu          = "Please use the menu buttons."
	msgFailure          = "⚠️ Something went wrong. Please try again."
	msgNoRestaurants    = "😔 No restaurants are available right now."
	msgChooseRestaurant = "🏪 Choose a restaurant:"
	msgPickRestaurant   = "Please choose a restaurant from the list."
	msgClosed           = "🔒 %s is closed now. It opens at %s."
	msgNoCategories     = "😔 %s has nothing on the menu right now."
	msgChooseCategory   = "📂 Choose a category:"
	msgPickCategory     = "Please choose a category from the list."
	msgNoFoods          = "😔 Nothing is available in this category."
	msgChooseFood       = "🍽 Choose a dish:"
	msgPickFood         = "Please choose a dish from the list."
	msgFoodGone         = "😔 This dish is no longer available."
	msgCartEmpty        = "🛒 Your cart is empty."
	msgCartHeader       = "🛒 Your cart"
	msgUseCartButtons   = "Use the buttons under the cart to remove items or check out."
	msgAskPhone         = "📞 Share your phone number with the button below or type it (e.g. +998901234567)."
	msgBadPhone         = "This does not look like a phone number. Try again or use the button."
	msgChooseAddress    = "📍 Choose a delivery address or add a new one:"
	msgUnknownAddress   = "Address not found. Please choose one from the list."
	msgAskLocation      = "📍 Send the delivery location with the button below."
	msgOutOfZone        = "😔 We only deliver within %.0f km of the city centre. This point is %.1f km away."
	msgBadLocation      = "This location is not valid. Please send another one."
	msgAskAddressName   = "✏️ How should we name this address? (e.g. Home, Office)"
	msgBadAddressName   = "The name must be between 1 and 64 characters."
	msgAskRestaurantMsg = "💬 Any message for the restaurant? (e.g. no onions)"
	msgAskDeliveryMsg   = "🚴 Any message for the courier? (e.g. entrance, floor)"
	msgCheckOrder       = "🧾 Please check your order:"
	msgConfirmWithBtn   = "Please confirm or cancel the order with the buttons above."
	msgCheckoutExpired  = "This confirmation has expired."
	msgOrderCancelled   = "❌ Order cancelled."
	msgAddressMissing   = "The delivery address no longer exists. Please choose another one."
	msgOrderFailed      = "⚠️ We could not place your order. Your cart is untouched, please try again."
	msgNotifyLater      = "⚠️ Some restaurants could not be notified yet. We will keep trying, you can also contact support."
	msgNoOrders         = "📦 You have no orders yet."
	msgAddressSaved     = "✅ Address saved."
	msgLocationUpdated  = "✅ Location updated."
	msgNameUpdated      = "✅ Address renamed."
	msgAddressGone      = "This address no longer exists."
	msgAddressDeleted   = "🗑 Address deleted."
	msgAskNewName       = "✏️ Send the new name for this address."
	msgRegisterFirst    = "Please press /start first."

	ackAdded        = "✅ Added to cart"
	ackMinQuantity  = "The minimum quantity is 1"
	ackRemoved      = "Removed"
	ackUnavailable  = "This dish is no longer available"
	ackCartEmpty    = "Your cart is empty"
	ackAddressGone  = "This address no longer exists"
	ackUnknownInput = "This button is no longer valid"
)

func mainMenuKeyboard() *domain.Controls {
	return &domain.Controls{Keyboard: [][]domain.KeyButton{
		domain.KeyRow(btnOrder),
		domain.KeyRow(btnCart, btnOrders),
		domain.KeyRow(btnSettings),
	}}
}

// listKeyboard lays labels out two per row followed by the extra rows.
func listKeyboard(labels []string, extra ...[]domain.KeyButton) *domain.Controls {
	var rows [][]domain.KeyButton
	for i := 0; i < len(labels); i += 2 {
		end := min(i+2, len(labels))
		rows = append(rows, domain.KeyRow(labels[i:end]...))
	}
	rows = append(rows, extra...)
	return &domain.Controls{Keyboard: rows}
}

func backKeyboard() *domain.Controls {
	return &domain.Controls{Keyboard: [][]domain.KeyButton{domain.KeyRow(btnBack)}}
}

func skipKeyboard() *domain.Controls {
	return &domain.Controls{Keyboard: [][]domain.KeyButton{domain.KeyRow(btnSkip), domain.KeyRow(btnBack)}}
}

func phoneKeyboard() *domain.Controls {
	return &domain.Controls{Keyboard: [][]domain.KeyButton{
		{{Label: btnSharePhone, RequestContact: true}},
		domain.KeyRow(btnBack),
	}}
}

func locationKeyboard() *domain.Controls {
	return &domain.Controls{Keyboard: [][]domain.KeyButton{
		{{Label: btnSendPlace, RequestLocation: true}},
		domain.KeyRow(btnBack),
	}}
}

func foodText(f *domain.FoodDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🍽 %s\n", f.Name)
	if f.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", f.Description)
	}
	fmt.Fprintf(&b, "\n🏪 %s · %s\n💰 %s", f.RestaurantName, f.CategoryName, domain.FormatMoney(f.Price))
	return b.String()
}

func foodControls(foodID, qty int) *domain.Controls {
	return &domain.Controls{Inline: [][]domain.Button{
		{
			{Label: "➖", Data: domain.FoodControl(domain.TagDecrease, foodID, qty)},
			{Label: fmt.Sprint(qty), Data: domain.TagNoop},
			{Label: "➕", Data: domain.FoodControl(domain.TagIncrease, foodID, qty)},
		},
		{{Label: "🛒 Add to cart", Data: domain.FoodControl(domain.TagAddToCart, foodID, qty)}},
	}}
}

func foodListText(foods []domain.FoodSummary) string {
	var b strings.Builder
	b.WriteString(msgChooseFood + "\n\n")
	for _, f := range foods {
		fmt.Fprintf(&b, "• %s — %s\n", f.Name, domain.FormatMoney(f.Price))
	}
	return b.String()
}

func groupLines(b *strings.Builder, g domain.CartGroup) {
	fmt.Fprintf(b, "🏪 %s\n", g.RestaurantName)
	for _, l := range g.Items {
		fmt.Fprintf(b, "• %s × %d = %s\n", l.FoodName, l.Quantity, domain.FormatMoney(l.LineTotal()))
	}
	fmt.Fprintf(b, "🚚 Delivery: %s\n", domain.FormatMoney(g.DeliveryCost))
	fmt.Fprintf(b, "Subtotal: %s\n\n", domain.FormatMoney(g.Total()))
}

func cartText(groups []domain.CartGroup) string {
	var b strings.Builder
	b.WriteString(msgCartHeader + "\n\n")
	for _, g := range groups {
		groupLines(&b, g)
	}
	fmt.Fprintf(&b, "💰 Total: %s", domain.FormatMoney(service.GrandTotal(groups)))
	return b.String()
}

func cartControls(groups []domain.CartGroup) *domain.Controls {
	var rows [][]domain.Button
	for _, g := range groups {
		for _, l := range g.Items {
			rows = append(rows, domain.InlineRow(domain.Button{
				Label: "❌ " + l.FoodName,
				Data:  domain.ItemControl(domain.TagRemove, l.ID),
			}))
		}
	}
	rows = append(rows, domain.InlineRow(domain.Button{Label: "✅ Check out", Data: domain.TagCompleteOrder}))
	return &domain.Controls{Inline: rows}
}

func confirmationText(groups []domain.CartGroup, sess domain.Session, addr *domain.Address) string {
	var b strings.Builder
	for _, g := range groups {
		groupLines(&b, g)
	}
	fmt.Fprintf(&b, "📞 Phone: %s\n", sess.Phone)
	fmt.Fprintf(&b, "📍 Address: %s\n", addr.Name)
	if sess.RestaurantMessage != "" {
		fmt.Fprintf(&b, "💬 For the restaurant: %s\n", sess.RestaurantMessage)
	}
	if sess.DeliveryMessage != "" {
		fmt.Fprintf(&b, "💬 For the courier: %s\n", sess.DeliveryMessage)
	}
	fmt.Fprintf(&b, "\n💰 Total: %s", domain.FormatMoney(service.GrandTotal(groups)))
	return b.String()
}

func confirmationControls() *domain.Controls {
	return &domain.Controls{Inline: [][]domain.Button{{
		{Label: "✅ Confirm", Data: domain.TagConfirmOrder},
		{Label: "❌ Cancel", Data: domain.TagCancelCheckout},
	}}}
}

func placedText(placed []domain.PlacedOrder) string {
	var b strings.Builder
	b.WriteString("✅ Your order has been placed!\n\n")
	total := decimal.Zero
	for _, p := range placed {
		fmt.Fprintf(&b, "#%d · %s · %s\n", p.Order.ID, p.RestaurantName, domain.FormatMoney(p.Order.Total))
		total = total.Add(p.Order.Total)
	}
	fmt.Fprintf(&b, "\n💰 Total: %s\nWe will let you know as soon as the restaurant accepts it.", domain.FormatMoney(total))
	return b.String()
}

func historyText(orders []domain.OrderSummary, page, pages int) string {
	var b strings.Builder
	b.WriteString("📦 Your recent orders\n")
	if pages > 1 {
		fmt.Fprintf(&b, "Page %d of %d\n", page, pages)
	}
	for _, o := range orders {
		fmt.Fprintf(&b, "\n#%d · %s · %s\n", o.ID, o.RestaurantName, o.CreatedAt.Format("02.01.2006 15:04"))
		for _, item := range o.Items {
			fmt.Fprintf(&b, "• %s × %d\n", item.FoodName, item.Quantity)
		}
		fmt.Fprintf(&b, "💰 %s · %s\n", domain.FormatMoney(o.Total), o.Status.Label())
	}
	return b.String()
}

// historyControls drops the buttons of a single page. Otherwise it returns a row with
// the page number between the previous and next buttons.
func historyControls(page, pages int) *domain.Controls {
	if pages <= 1 {
		return domain.NoControls()
	}
	var row []domain.Button
	if page > 1 {
		row = append(row, domain.Button{Label: "⬅️ Previous", Data: domain.PageControl(page - 1)})
	}
	row = append(row, domain.Button{Label: fmt.Sprintf("%d/%d", page, pages), Data: domain.TagNoop})
	if page < pages {
		row = append(row, domain.Button{Label: "Next ➡️", Data: domain.PageControl(page + 1)})
	}
	return &domain.Controls{Inline: [][]domain.Button{row}}
}

func settingsText(user *domain.User, addresses []domain.Address) string {
	phone := user.PhoneNumber
	if phone == "" {
		phone = "not set"
	}
	return fmt.Sprintf("⚙️ Settings\n\n📞 Phone: %s\n📍 Saved addresses: %d\n\nChoose an address to view or edit it.", phone, len(addresses))
}

func addressControls(id int) *domain.Controls {
	return &domain.Controls{Inline: [][]domain.Button{
		{{Label: "📍 Change location", Data: domain.ItemControl(domain.TagAddressLocation, id)}},
		{{Label: "✏️ Rename", Data: domain.ItemControl(domain.TagAddressName, id)}},
		{{Label: "🗑 Delete", Data: domain.ItemControl(domain.TagAddressDelete, id)}},
	}}
}

func addressLabels(addresses []domain.Address) []string {
	labels := make([]string, len(addresses))
	for i, a := range addresses {
		labels[i] = addressPrefix + a.Name
	}
	return labels
}
