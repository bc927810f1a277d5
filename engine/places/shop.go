package places

import (
	"context"
	"fmt"

	"github.com/nathoo/wayfarer/engine/economy"
	"github.com/nathoo/wayfarer/engine/item"
	"github.com/nathoo/wayfarer/engine/prompt"
	"github.com/nathoo/wayfarer/engine/world"
	"github.com/nathoo/wayfarer/types"
)

// Confirm is the exact token that confirms a sale.
const Confirm = "yes"

// Shop sells its stock and buys items from the guest at SellRate.
type Shop struct {
	base
	stock    *item.Container
	sellRate float64
}

// NewShop creates a shop. A non-positive rate falls back to
// economy.DefaultSellRate.
func NewShop(name, description, greeting string, stock *item.Container, sellRate float64) *Shop {
	if stock == nil {
		stock = item.NewContainer()
	}
	if sellRate <= 0 {
		sellRate = economy.DefaultSellRate
	}
	return &Shop{
		base:     base{name: name, description: description, greeting: greeting},
		stock:    stock,
		sellRate: sellRate,
	}
}

func (s *Shop) Kind() string { return KindShop }

// Stock is the shop's inventory.
func (s *Shop) Stock() *item.Container { return s.stock }

// SellRate is the fraction of cost the shop pays for items.
func (s *Shop) SellRate() float64 { return s.sellRate }

var shopMenu = []string{
	"See the wares for sale",
	"See your inventory",
	"Sell an item",
	"Buy an item",
	"Leave the shop",
}

// Enter runs the shop menu until the guest leaves.
func (s *Shop) Enter(ctx context.Context, guest *world.Entity, io prompt.IO) error {
	s.arrive(io, KindShop, guest)

	for {
		choice, err := menu(ctx, io, "What would you like to do?", shopMenu)
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			s.showWares(io)
		case 2:
			s.showInventory(io, guest)
		case 3:
			if err := s.sell(ctx, io, guest); err != nil {
				return err
			}
		case 4:
			if err := s.buy(ctx, io, guest); err != nil {
				return err
			}
		case 5:
			s.leave(io, KindShop)
			return nil
		}
	}
}

func (s *Shop) showWares(io prompt.IO) {
	if s.stock.Count() == 0 {
		io.Say("The shelves are bare.")
		return
	}
	io.Say("For sale:")
	for _, it := range s.stock.Items() {
		io.Sayf("\t%s: %s gold", it.Summary(), it.Cost())
	}
}

func (s *Shop) showInventory(io prompt.IO, guest *world.Entity) {
	io.Sayf("You have %s gold.", guest.Currency())
	if guest.Carried().Count() == 0 {
		io.Say("You have nothing to sell.")
		return
	}
	io.Say("You could sell:")
	for _, it := range guest.Carried().Items() {
		io.Sayf("\t%s: %s gold", it.Summary(), economy.SalePrice(it, s.sellRate))
	}
}

func (s *Shop) sell(ctx context.Context, io prompt.IO, guest *world.Entity) error {
	name, err := io.Ask(ctx, "What would you like to sell?")
	if err != nil {
		return err
	}
	it, ok := guest.Carried().Get(name)
	if !ok {
		io.Fail("You do not have %s.", name)
		return nil
	}
	answer, err := io.Ask(ctx, fmt.Sprintf("I will give you %s gold for %s. Type '%s' to accept.",
		economy.SalePrice(it, s.sellRate), it.Name(), Confirm))
	if err != nil {
		return err
	}
	if answer != Confirm {
		io.Say("Maybe next time.")
		return nil
	}

	sold, price, err := economy.Sell(guest, s.stock, name, s.sellRate)
	if err != nil {
		io.Fail("%v", err)
		return nil
	}
	io.Event(types.EventSold, fmt.Sprintf("You sold %s for %s gold. You now have %s gold.",
		sold.Name(), price, guest.Currency()), map[string]any{
		"item":  sold.Name(),
		"price": price.Float(),
		"shop":  s.name,
	})
	return nil
}

func (s *Shop) buy(ctx context.Context, io prompt.IO, guest *world.Entity) error {
	name, err := io.Ask(ctx, "What would you like to buy?")
	if err != nil {
		return err
	}
	bought, err := economy.Buy(guest, s.stock, name)
	if err != nil {
		io.Fail("%v", err)
		return nil
	}
	io.Event(types.EventPurchased, fmt.Sprintf("You bought %s for %s gold. You now have %s gold.",
		bought.Name(), bought.Cost(), guest.Currency()), map[string]any{
		"item":  bought.Name(),
		"price": bought.Cost().Float(),
		"shop":  s.name,
	})
	return nil
}
