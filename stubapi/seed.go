package stubapi

import "github.com/adaeze/nairamart/market"

func ptr[T any](v T) *T { return &v }

// seedCoins returns the default catalog: a handful of well-known listings
// with dual USD/NGN quotes, enough to exercise paging and filtering.
func seedCoins() []market.Coin {
	return []market.Coin{
		{
			ID: 1, CMCID: 1, Name: "Bitcoin", Symbol: "BTC", Slug: "bitcoin",
			NumMarketPairs: 11360, DateAdded: "2013-04-28T00:00:00Z",
			Tags:      []string{"mineable", "pow", "store-of-value"},
			MaxSupply: ptr(21000000.0), CirculatingSupply: 19790000, TotalSupply: 19790000,
			CMCRank: 1, LastUpdated: "2025-08-01T00:00:00Z",
			PriceUSD: 64250.12, PriceNGN: 102800192,
		},
		{
			ID: 2, CMCID: 1027, Name: "Ethereum", Symbol: "ETH", Slug: "ethereum",
			NumMarketPairs: 9100, DateAdded: "2015-08-07T00:00:00Z",
			Tags:              []string{"pos", "smart-contracts"},
			CirculatingSupply: 120250000, TotalSupply: 120250000, InfiniteSupply: true,
			CMCRank: 2, LastUpdated: "2025-08-01T00:00:00Z",
			PriceUSD: 3150.44, PriceNGN: 5040704,
		},
		{
			ID: 3, CMCID: 825, Name: "Tether USDt", Symbol: "USDT", Slug: "tether",
			NumMarketPairs: 80500, DateAdded: "2015-02-25T00:00:00Z",
			Tags:              []string{"stablecoin"},
			CirculatingSupply: 112000000000, TotalSupply: 115000000000, InfiniteSupply: true,
			Platform: ptr("Ethereum"),
			CMCRank:  3, LastUpdated: "2025-08-01T00:00:00Z",
			PriceUSD: 1.0, PriceNGN: 1600,
		},
		{
			ID: 4, CMCID: 1839, Name: "BNB", Symbol: "BNB", Slug: "bnb",
			NumMarketPairs: 2200, DateAdded: "2017-07-25T00:00:00Z",
			MaxSupply: ptr(200000000.0), CirculatingSupply: 147580000, TotalSupply: 147580000,
			CMCRank: 4, LastUpdated: "2025-08-01T00:00:00Z",
			PriceUSD: 575.60, PriceNGN: 920960,
		},
		{
			ID: 5, CMCID: 5426, Name: "Solana", Symbol: "SOL", Slug: "solana",
			NumMarketPairs: 720, DateAdded: "2020-04-10T00:00:00Z",
			CirculatingSupply: 463000000, TotalSupply: 580000000, InfiniteSupply: true,
			CMCRank: 5, LastUpdated: "2025-08-01T00:00:00Z",
			PriceUSD: 148.91, PriceNGN: 238256,
		},
		{
			ID: 6, CMCID: 52, Name: "XRP", Symbol: "XRP", Slug: "xrp",
			NumMarketPairs: 1350, DateAdded: "2013-08-04T00:00:00Z",
			MaxSupply: ptr(100000000000.0), CirculatingSupply: 55800000000, TotalSupply: 99987000000,
			CMCRank: 6, LastUpdated: "2025-08-01T00:00:00Z",
			PriceUSD: 0.59, PriceNGN: 944,
		},
		{
			ID: 7, CMCID: 2010, Name: "Cardano", Symbol: "ADA", Slug: "cardano",
			NumMarketPairs: 1150, DateAdded: "2017-10-01T00:00:00Z",
			MaxSupply: ptr(45000000000.0), CirculatingSupply: 35900000000, TotalSupply: 37000000000,
			CMCRank: 9, LastUpdated: "2025-08-01T00:00:00Z",
			PriceUSD: 0.41, PriceNGN: 656,
		},
		{
			ID: 8, CMCID: 74, Name: "Dogecoin", Symbol: "DOGE", Slug: "dogecoin",
			NumMarketPairs: 950, DateAdded: "2013-12-15T00:00:00Z",
			Tags:              []string{"mineable", "memes"},
			CirculatingSupply: 145500000000, TotalSupply: 145500000000, InfiniteSupply: true,
			CMCRank: 8, LastUpdated: "2025-08-01T00:00:00Z",
			PriceUSD: 0.12, PriceNGN: 192,
		},
		{
			ID: 9, CMCID: 1958, Name: "TRON", Symbol: "TRX", Slug: "tron",
			NumMarketPairs: 980, DateAdded: "2017-09-13T00:00:00Z",
			CirculatingSupply: 87300000000, TotalSupply: 87300000000, InfiniteSupply: true,
			CMCRank: 10, LastUpdated: "2025-08-01T00:00:00Z",
			PriceUSD: 0.13, PriceNGN: 208,
		},
		{
			ID: 10, CMCID: 11419, Name: "Toncoin", Symbol: "TON", Slug: "toncoin",
			NumMarketPairs: 420, DateAdded: "2021-08-26T00:00:00Z",
			CirculatingSupply: 2520000000, TotalSupply: 5110000000, InfiniteSupply: true,
			CMCRank: 11, LastUpdated: "2025-08-01T00:00:00Z",
			PriceUSD: 6.55, PriceNGN: 10480,
		},
		{
			ID: 11, CMCID: 5805, Name: "Avalanche", Symbol: "AVAX", Slug: "avalanche",
			NumMarketPairs: 780, DateAdded: "2020-07-13T00:00:00Z",
			MaxSupply: ptr(715748719.0), CirculatingSupply: 394000000, TotalSupply: 445000000,
			CMCRank: 12, LastUpdated: "2025-08-01T00:00:00Z",
			PriceUSD: 26.70, PriceNGN: 42720,
		},
		{
			ID: 12, CMCID: 6636, Name: "Polkadot", Symbol: "DOT", Slug: "polkadot-new",
			NumMarketPairs: 680, DateAdded: "2020-08-19T00:00:00Z",
			CirculatingSupply: 1440000000, TotalSupply: 1520000000, InfiniteSupply: true,
			CMCRank: 14, LastUpdated: "2025-08-01T00:00:00Z",
			PriceUSD: 5.85, PriceNGN: 9360,
		},
	}
}
