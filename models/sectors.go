package models

// DefaultIndexTicker is the ETF used as the S&P 500 proxy.
const DefaultIndexTicker = "SPY"

// Sector pairs a SPDR sector ETF ticker with its display name.
type Sector struct {
	Ticker string
	Name   string
}

// SectorETFs returns the eleven S&P sector ETFs in a stable order.
func SectorETFs() []Sector {
	return []Sector{
		{Ticker: "XLK", Name: "Technology"},
		{Ticker: "XLV", Name: "Healthcare"},
		{Ticker: "XLF", Name: "Financials"},
		{Ticker: "XLY", Name: "Consumer Discretionary"},
		{Ticker: "XLC", Name: "Communication Services"},
		{Ticker: "XLI", Name: "Industrials"},
		{Ticker: "XLP", Name: "Consumer Staples"},
		{Ticker: "XLE", Name: "Energy"},
		{Ticker: "XLU", Name: "Utilities"},
		{Ticker: "XLRE", Name: "Real Estate"},
		{Ticker: "XLB", Name: "Materials"},
	}
}
