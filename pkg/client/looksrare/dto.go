package looksrare

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

type (
	AccountRequest struct {
		Address common.Address `json:"address"`
	}

	Account struct {
		Address       common.Address `json:"address"`
		Name          *string        `json:"name"`
		Biography     *string        `json:"biography"`
		WebsiteLink   *string        `json:"websiteLink"`
		InstagramLink *string        `json:"instagramLink"`
		TwitterLink   *string        `json:"twitterLink"`
		IsVerified    bool           `json:"isVerified"`
	}
)

type (
	NonceRequest struct {
		Address common.Address `json:"address"`
	}
)

type (
	// OrdersRequest filters the orders endpoint. Every field is optional.
	OrdersRequest struct {
		IsOrderAsk *bool           `json:"isOrderAsk,omitempty"`
		Collection *common.Address `json:"collection,omitempty"`
		TokenID    *big.Int        `json:"tokenId,omitempty"`
		Signer     *common.Address `json:"signer,omitempty"`
		Nonce      *big.Int        `json:"nonce,omitempty"`
		Strategy   *common.Address `json:"strategy,omitempty"`
		Currency   *common.Address `json:"currency,omitempty"`
		Price      *Price          `json:"price,omitempty"`
		StartTime  *uint64         `json:"startTime,omitempty"`
		EndTime    *uint64         `json:"endTime,omitempty"`
		Status     []Status        `json:"status,omitempty"`
		Pagination *Pagination     `json:"pagination,omitempty"`
		Sort       *Sort           `json:"sort,omitempty"`
	}

	// Price bounds are in wei of the order currency.
	Price struct {
		Min *big.Int `json:"min,omitempty"`
		Max *big.Int `json:"max,omitempty"`
	}

	Pagination struct {
		First  *uint64 `json:"first,omitempty"`
		Cursor *string `json:"cursor,omitempty"`
	}

	Order struct {
		Hash               string          `json:"hash"`
		CollectionAddress  common.Address  `json:"collectionAddress"`
		TokenID            string          `json:"tokenId"`
		IsOrderAsk         bool            `json:"isOrderAsk"`
		Signer             common.Address  `json:"signer"`
		Strategy           common.Address  `json:"strategy"`
		CurrencyAddress    common.Address  `json:"currencyAddress"`
		Amount             decimal.Decimal `json:"amount"`
		Price              decimal.Decimal `json:"price"`
		Nonce              string          `json:"nonce"`
		StartTime          uint64          `json:"startTime"`
		EndTime            uint64          `json:"endTime"`
		MinPercentageToAsk uint64          `json:"minPercentageToAsk"`
		Params             string          `json:"params"`
		Status             string          `json:"status"`
		Signature          *string         `json:"signature"`
		V                  *uint8          `json:"v"`
		R                  *common.Hash    `json:"r"`
		S                  *common.Hash    `json:"s"`
	}
)

// HasStatus reports whether the order status matches one of statuses.
func (o Order) HasStatus(statuses ...Status) bool {
	for _, s := range statuses {
		if name, ok := statusNames[s]; ok && name == o.Status {
			return true
		}
	}
	return false
}

// PriceWithin reports whether the order price lies inside the non-nil bounds of p.
func (o Order) PriceWithin(p Price) bool {
	if p.Min != nil && o.Price.LessThan(decimal.NewFromBigInt(p.Min, 0)) {
		return false
	}
	if p.Max != nil && o.Price.GreaterThan(decimal.NewFromBigInt(p.Max, 0)) {
		return false
	}
	return true
}

type (
	CollectionRequest struct {
		Address common.Address `json:"address"`
	}

	CollectionInformation struct {
		Address       common.Address  `json:"address"`
		Owner         common.Address  `json:"owner"`
		Setter        *common.Address `json:"setter"`
		Admin         *common.Address `json:"admin"`
		Name          string          `json:"name"`
		Description   *string         `json:"description"`
		Symbol        *string         `json:"symbol"`
		Type          string          `json:"type"`
		WebsiteLink   *string         `json:"websiteLink"`
		FacebookLink  *string         `json:"facebookLink"`
		TwitterLink   *string         `json:"twitterLink"`
		InstagramLink *string         `json:"instagramLink"`
		TelegramLink  *string         `json:"telegramLink"`
		MediumLink    *string         `json:"mediumLink"`
		DiscordLink   *string         `json:"discordLink"`
		IsVerified    bool            `json:"isVerified"`
		IsExplicit    bool            `json:"isExplicit"`
		LogoURI       *string         `json:"logoURI"`
		BannerURI     *string         `json:"bannerURI"`
	}

	CollectionStats struct {
		Address        common.Address      `json:"address"`
		CountOwners    decimal.NullDecimal `json:"countOwners"`
		TotalSupply    decimal.NullDecimal `json:"totalSupply"`
		FloorPrice     decimal.NullDecimal `json:"floorPrice"`
		FloorChange24h decimal.NullDecimal `json:"floorChange24h"`
		FloorChange7d  decimal.NullDecimal `json:"floorChange7d"`
		FloorChange30d decimal.NullDecimal `json:"floorChange30d"`
		MarketCap      decimal.NullDecimal `json:"marketCap"`
		Volume24h      decimal.Decimal     `json:"volume24h"`
		Average24h     decimal.Decimal     `json:"average24h"`
		Count24h       decimal.NullDecimal `json:"count24h"`
		Change24h      decimal.NullDecimal `json:"change24h"`
		Volume7d       decimal.Decimal     `json:"volume7d"`
		Average7d      decimal.Decimal     `json:"average7d"`
		Count7d        decimal.NullDecimal `json:"count7d"`
		Change7d       decimal.NullDecimal `json:"change7d"`
		Volume1m       decimal.Decimal     `json:"volume1m"`
		Average1m      decimal.Decimal     `json:"average1m"`
		Count1m        decimal.NullDecimal `json:"count1m"`
		Change1m       decimal.NullDecimal `json:"change1m"`
		Volume3m       decimal.Decimal     `json:"volume3m"`
		Average3m      decimal.Decimal     `json:"average3m"`
		Count3m        decimal.NullDecimal `json:"count3m"`
		Change3m       decimal.NullDecimal `json:"change3m"`
		Volume6m       decimal.Decimal     `json:"volume6m"`
		Average6m      decimal.Decimal     `json:"average6m"`
		Count6m        decimal.NullDecimal `json:"count6m"`
		Change6m       decimal.NullDecimal `json:"change6m"`
		Volume1y       decimal.Decimal     `json:"volume1y"`
		Average1y      decimal.Decimal     `json:"average1y"`
		Count1y        decimal.NullDecimal `json:"count1y"`
		Change1y       decimal.NullDecimal `json:"change1y"`
		VolumeAll      decimal.Decimal     `json:"volumeAll"`
		AverageAll     decimal.Decimal     `json:"averageAll"`
		CountAll       decimal.NullDecimal `json:"countAll"`
	}

	// WindowStats holds the aggregates of a single stats window.
	WindowStats struct {
		Volume  decimal.Decimal     `json:"volume"`
		Average decimal.Decimal     `json:"average"`
		Count   decimal.NullDecimal `json:"count"`
		Change  decimal.NullDecimal `json:"change"`
	}

	CollectionRewards struct {
		Collection      CollectionInformation `json:"collection"`
		Volume24hGlobal decimal.Decimal       `json:"volume24hGlobal"`
		Points          int64                 `json:"points"`
		FloorGlobal     decimal.Decimal       `json:"floorGlobal"`
	}
)

type StatsWindow int

const (
	Window24h StatsWindow = iota
	Window7d
	Window30d
	Window90d
	Window180d
	Window1y
	WindowAll
)

// Window returns the aggregates of w. The all-time window has no change value.
func (s *CollectionStats) Window(w StatsWindow) WindowStats {
	switch w {
	case Window24h:
		return WindowStats{s.Volume24h, s.Average24h, s.Count24h, s.Change24h}
	case Window7d:
		return WindowStats{s.Volume7d, s.Average7d, s.Count7d, s.Change7d}
	case Window30d:
		return WindowStats{s.Volume1m, s.Average1m, s.Count1m, s.Change1m}
	case Window90d:
		return WindowStats{s.Volume3m, s.Average3m, s.Count3m, s.Change3m}
	case Window180d:
		return WindowStats{s.Volume6m, s.Average6m, s.Count6m, s.Change6m}
	case Window1y:
		return WindowStats{s.Volume1y, s.Average1y, s.Count1y, s.Change1y}
	default:
		return WindowStats{Volume: s.VolumeAll, Average: s.AverageAll, Count: s.CountAll}
	}
}

type (
	HealthRequest struct {
	}

	HealthResponse struct {
		Status int `json:"status"`
	}
)
