package models

// Market labels shared by the value bet detector and the backtest settler
const (
	MarketHomeWin = "Home Win"
	MarketDraw    = "Draw"
	MarketAwayWin = "Away Win"

	MarketOver15  = "Over 1.5"
	MarketUnder15 = "Under 1.5"
	MarketOver25  = "Over 2.5"
	MarketUnder25 = "Under 2.5"
	MarketOver35  = "Over 3.5"
	MarketUnder35 = "Under 3.5"

	MarketBTSYes = "BTS Yes"
	MarketBTSNo  = "BTS No"

	MarketDC1X = "Double Chance 1X"
	MarketDC12 = "Double Chance 12"
	MarketDCX2 = "Double Chance X2"
)
