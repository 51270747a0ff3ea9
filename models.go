package dexscreener

import (
	"encoding/json"
	"fmt"
)

func errMissingField(record, field string) error {
	return fmt.Errorf("%s: missing required field %q", record, field)
}

// Token identifies one tradeable asset in a pair.
type Token struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

func (t *Token) UnmarshalJSON(data []byte) error {
	var raw struct {
		Address *string `json:"address"`
		Name    *string `json:"name"`
		Symbol  *string `json:"symbol"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.Address == nil:
		return errMissingField("token", "address")
	case raw.Name == nil:
		return errMissingField("token", "name")
	case raw.Symbol == nil:
		return errMissingField("token", "symbol")
	}
	*t = Token{Address: *raw.Address, Name: *raw.Name, Symbol: *raw.Symbol}
	return nil
}

// TransactionCount is the number of buys and sells inside one lookback window.
type TransactionCount struct {
	Buys  int64 `json:"buys"`
	Sells int64 `json:"sells"`
}

func (c *TransactionCount) UnmarshalJSON(data []byte) error {
	var raw struct {
		Buys  *int64 `json:"buys"`
		Sells *int64 `json:"sells"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Buys == nil {
		return errMissingField("txns", "buys")
	}
	if raw.Sells == nil {
		return errMissingField("txns", "sells")
	}
	*c = TransactionCount{Buys: *raw.Buys, Sells: *raw.Sells}
	return nil
}

// TransactionPeriods buckets transaction counts by lookback window. All four
// windows are required on the wire.
type TransactionPeriods struct {
	M5  TransactionCount `json:"m5"`
	H1  TransactionCount `json:"h1"`
	H6  TransactionCount `json:"h6"`
	H24 TransactionCount `json:"h24"`
}

func (p *TransactionPeriods) UnmarshalJSON(data []byte) error {
	var raw struct {
		M5  *TransactionCount `json:"m5"`
		H1  *TransactionCount `json:"h1"`
		H6  *TransactionCount `json:"h6"`
		H24 *TransactionCount `json:"h24"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.M5 == nil:
		return errMissingField("txns", "m5")
	case raw.H1 == nil:
		return errMissingField("txns", "h1")
	case raw.H6 == nil:
		return errMissingField("txns", "h6")
	case raw.H24 == nil:
		return errMissingField("txns", "h24")
	}
	*p = TransactionPeriods{M5: *raw.M5, H1: *raw.H1, H6: *raw.H6, H24: *raw.H24}
	return nil
}

// TimePeriods buckets a numeric metric by lookback window. It is used for
// both USD volume and price-change percentages. Windows the API omits stay
// zero.
type TimePeriods struct {
	M5  Numeric `json:"m5"`
	H1  Numeric `json:"h1"`
	H6  Numeric `json:"h6"`
	H24 Numeric `json:"h24"`
}

// Liquidity is the pooled value backing a pair, in USD and in units of each
// token. Base and quote amounts are required on the wire, the USD value is
// not.
type Liquidity struct {
	USD   NullNumeric `json:"usd"`
	Base  Numeric     `json:"base"`
	Quote Numeric     `json:"quote"`
}

func (l *Liquidity) UnmarshalJSON(data []byte) error {
	var raw struct {
		USD   NullNumeric `json:"usd"`
		Base  *Numeric    `json:"base"`
		Quote *Numeric    `json:"quote"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Base == nil {
		return errMissingField("liquidity", "base")
	}
	if raw.Quote == nil {
		return errMissingField("liquidity", "quote")
	}
	*l = Liquidity{USD: raw.USD, Base: *raw.Base, Quote: *raw.Quote}
	return nil
}

// Website is a project website link attached to a pair.
type Website struct {
	Label string `json:"label,omitempty"`
	URL   string `json:"url"`
}

// Social is a social media link attached to a pair.
type Social struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// PairInfo is the presentation metadata DexScreener attaches to a pair.
type PairInfo struct {
	ImageURL  string    `json:"imageUrl,omitempty"`
	Header    string    `json:"header,omitempty"`
	OpenGraph string    `json:"openGraph,omitempty"`
	Websites  []Website `json:"websites,omitempty"`
	Socials   []Social  `json:"socials,omitempty"`
}

// BoostStats is the number of boosts currently active on a pair.
type BoostStats struct {
	Active int64 `json:"active"`
}

// Pair is a tradeable base/quote token pair tracked on one chain and
// exchange, with its current prices, volumes, transaction counts and
// liquidity.
type Pair struct {
	ChainID       string             `json:"chainId"`
	DexID         string             `json:"dexId"`
	URL           string             `json:"url"`
	PairAddress   string             `json:"pairAddress"`
	Labels        []string           `json:"labels,omitempty"`
	BaseToken     Token              `json:"baseToken"`
	QuoteToken    Token              `json:"quoteToken"`
	PriceNative   Numeric            `json:"priceNative"`
	PriceUSD      NullNumeric        `json:"priceUsd"`
	Txns          TransactionPeriods `json:"txns"`
	Volume        TimePeriods        `json:"volume"`
	PriceChange   TimePeriods        `json:"priceChange"`
	Liquidity     *Liquidity         `json:"liquidity,omitempty"`
	FDV           NullNumeric        `json:"fdv"`
	MarketCap     NullNumeric        `json:"marketCap"`
	PairCreatedAt Timestamp          `json:"pairCreatedAt"`
	Info          *PairInfo          `json:"info,omitempty"`
	Boosts        *BoostStats        `json:"boosts,omitempty"`
}

// UnmarshalJSON rejects pairs missing a required field so a malformed
// response never decodes into partial zero-valued data. Labels, priceUsd,
// liquidity, fdv, marketCap, pairCreatedAt, info and boosts are the only
// optional fields.
func (p *Pair) UnmarshalJSON(data []byte) error {
	var raw struct {
		ChainID       *string             `json:"chainId"`
		DexID         *string             `json:"dexId"`
		URL           *string             `json:"url"`
		PairAddress   *string             `json:"pairAddress"`
		Labels        []string            `json:"labels"`
		BaseToken     *Token              `json:"baseToken"`
		QuoteToken    *Token              `json:"quoteToken"`
		PriceNative   *Numeric            `json:"priceNative"`
		PriceUSD      NullNumeric         `json:"priceUsd"`
		Txns          *TransactionPeriods `json:"txns"`
		Volume        *TimePeriods        `json:"volume"`
		PriceChange   *TimePeriods        `json:"priceChange"`
		Liquidity     *Liquidity          `json:"liquidity"`
		FDV           NullNumeric         `json:"fdv"`
		MarketCap     NullNumeric         `json:"marketCap"`
		PairCreatedAt Timestamp           `json:"pairCreatedAt"`
		Info          *PairInfo           `json:"info"`
		Boosts        *BoostStats         `json:"boosts"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.ChainID == nil:
		return errMissingField("pair", "chainId")
	case raw.DexID == nil:
		return errMissingField("pair", "dexId")
	case raw.URL == nil:
		return errMissingField("pair", "url")
	case raw.PairAddress == nil:
		return errMissingField("pair", "pairAddress")
	case raw.BaseToken == nil:
		return errMissingField("pair", "baseToken")
	case raw.QuoteToken == nil:
		return errMissingField("pair", "quoteToken")
	case raw.PriceNative == nil:
		return errMissingField("pair", "priceNative")
	case raw.Txns == nil:
		return errMissingField("pair", "txns")
	case raw.Volume == nil:
		return errMissingField("pair", "volume")
	case raw.PriceChange == nil:
		return errMissingField("pair", "priceChange")
	}
	*p = Pair{
		ChainID:       *raw.ChainID,
		DexID:         *raw.DexID,
		URL:           *raw.URL,
		PairAddress:   *raw.PairAddress,
		Labels:        raw.Labels,
		BaseToken:     *raw.BaseToken,
		QuoteToken:    *raw.QuoteToken,
		PriceNative:   *raw.PriceNative,
		PriceUSD:      raw.PriceUSD,
		Txns:          *raw.Txns,
		Volume:        *raw.Volume,
		PriceChange:   *raw.PriceChange,
		Liquidity:     raw.Liquidity,
		FDV:           raw.FDV,
		MarketCap:     raw.MarketCap,
		PairCreatedAt: raw.PairCreatedAt,
		Info:          raw.Info,
		Boosts:        raw.Boosts,
	}
	return nil
}

// PairsResponse is the envelope returned by the pairs and search endpoints.
// A nil Pairs slice means the API matched nothing; that is not an error, the
// caller decides what an empty result means.
type PairsResponse struct {
	SchemaVersion string `json:"schemaVersion"`
	Pairs         []Pair `json:"pairs"`
}

// ProfileLink is one outbound link on a token profile.
type ProfileLink struct {
	Type  string `json:"type,omitempty"`
	Label string `json:"label,omitempty"`
	URL   string `json:"url"`
}

// TokenProfile describes a token's DexScreener profile page.
type TokenProfile struct {
	URL          string        `json:"url"`
	ChainID      string        `json:"chainId"`
	TokenAddress string        `json:"tokenAddress"`
	Icon         string        `json:"icon,omitempty"`
	Header       string        `json:"header,omitempty"`
	Description  string        `json:"description,omitempty"`
	Links        []ProfileLink `json:"links,omitempty"`
}

// TokenBoost is a token profile with its boost amounts attached.
type TokenBoost struct {
	TokenProfile
	Amount      Numeric `json:"amount"`
	TotalAmount Numeric `json:"totalAmount"`
}

// Order is a paid order (token profile, community takeover, ad) placed for a
// token.
type Order struct {
	Type             string    `json:"type"`
	Status           string    `json:"status"`
	PaymentTimestamp Timestamp `json:"paymentTimestamp"`
}
