// Package economy implements the currency transactions between the player and
// shops and inns. Every precondition is checked before anything is mutated,
// so a rejected transaction leaves balances and containers untouched.
package economy

import (
	"errors"
	"fmt"

	"github.com/nathoo/wayfarer/engine/coin"
	"github.com/nathoo/wayfarer/engine/item"
	"github.com/nathoo/wayfarer/engine/world"
)

// DefaultSellRate is the fraction of an item's cost paid back when selling.
const DefaultSellRate = 0.5

var (
	ErrInsufficientFunds = world.ErrInsufficientFunds
	ErrNotInStock        = errors.New("that is not for sale here")
	ErrNotCarried        = world.ErrNotCarried
	ErrStockConflict     = errors.New("the shop already stocks an item by that name")
	ErrCarryConflict     = errors.New("you already carry an item by that name")
)

// Buy debits the item's cost from buyer and moves it from stock into the
// buyer's carried inventory.
func Buy(buyer *world.Entity, stock *item.Container, name string) (*item.Item, error) {
	it, ok := stock.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotInStock, name)
	}
	if !buyer.CanAfford(it.Cost()) {
		return nil, fmt.Errorf("%w: %s costs %s, you have %s", ErrInsufficientFunds, name, it.Cost(), buyer.Currency())
	}
	if buyer.Carried().Has(name) {
		return nil, fmt.Errorf("%w: %s", ErrCarryConflict, name)
	}

	if err := item.Transfer(stock, buyer.Carried(), it); err != nil {
		return nil, fmt.Errorf("buy %s: %w", name, err)
	}
	if err := buyer.Debit(it.Cost()); err != nil {
		return nil, fmt.Errorf("buy %s: %w", name, err)
	}
	return it, nil
}

// SalePrice is what a shop pays for it at rate.
func SalePrice(it *item.Item, rate float64) coin.Amount {
	return it.Cost().Scale(rate)
}

// Sell moves the named item from seller's carried inventory into stock and
// credits cost × rate. It returns the sold item and the amount credited.
func Sell(seller *world.Entity, stock *item.Container, name string, rate float64) (*item.Item, coin.Amount, error) {
	it, ok := seller.Carried().Get(name)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", ErrNotCarried, name)
	}
	if stock.Has(name) {
		return nil, 0, fmt.Errorf("%w: %s", ErrStockConflict, name)
	}

	if err := item.Transfer(seller.Carried(), stock, it); err != nil {
		return nil, 0, fmt.Errorf("sell %s: %w", name, err)
	}
	price := SalePrice(it, rate)
	seller.Credit(price)
	return it, price, nil
}

// Lodge charges guest cost and restores their hit points to the maximum.
func Lodge(guest *world.Entity, cost coin.Amount) error {
	if err := guest.Debit(cost); err != nil {
		return fmt.Errorf("lodge: %w", err)
	}
	guest.RestoreFull()
	return nil
}
