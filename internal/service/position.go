package service

import (
	"github.com/avosch/stock-dashboard-backend/internal/model"
)

// CalculatePosition derives a security's holdings from its full ledger in a
// single linear fold: buys add quantity*price to the invested total, sells
// add quantity*price to the proceeds total, annotations are skipped.
//
// The function is pure and deterministic: recomputing over an unchanged
// ledger yields identical output, and because addition commutes the totals
// do not depend on the creation order of same-day events. Positions are
// never persisted; the ledger stays the single source of truth, which makes
// event edits and deletes trivially correct.
//
// Shares may go negative when sells exceed recorded buys. That is a
// deliberate allowance: the ledger records what the user entered, and a
// negative position either models a short or flags a data-entry gap the user
// can see and fix.
func CalculatePosition(events []model.TransactionEvent) model.Position {
	var p model.Position

	for _, ev := range events {
		// Buy/sell events are validated to carry quantity and price before
		// they enter the ledger.
		switch ev.Kind {
		case model.KindBuy:
			if ev.Quantity == nil || ev.Price == nil {
				continue
			}
			p.SharesOwned += *ev.Quantity
			p.TotalInvested += float64(*ev.Quantity) * *ev.Price
		case model.KindSell:
			if ev.Quantity == nil || ev.Price == nil {
				continue
			}
			p.SharesOwned -= *ev.Quantity
			p.TotalProceeds += float64(*ev.Quantity) * *ev.Price
		}
	}

	return p
}

// BuildSnapshot combines a position with the latest quote, if any. Every
// derived field is nil when the quote is nil: a missing price must render as
// "unavailable", never as a zero that looks like flat performance. The
// percentage is additionally nil when totalInvested is zero, so a fully
// gifted or empty position never divides by zero.
func BuildSnapshot(pos model.Position, quote *model.Quote) model.ValuationSnapshot {
	snapshot := model.ValuationSnapshot{Position: pos}

	if quote == nil {
		return snapshot
	}

	currentValue := float64(pos.SharesOwned) * quote.Price
	totalValue := currentValue + pos.TotalProceeds
	changeInValue := totalValue - pos.TotalInvested

	snapshot.LatestPrice = &quote.Price
	asOf := quote.AsOf
	snapshot.QuoteAsOf = &asOf
	snapshot.CurrentValue = &currentValue
	snapshot.TotalValue = &totalValue
	snapshot.ChangeInValue = &changeInValue

	if pos.TotalInvested != 0 {
		pct := changeInValue / pos.TotalInvested * 100
		snapshot.ChangeInValuePercentage = &pct
	}

	return snapshot
}
