package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	dexscreener "dexscreener-go"
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: dexcli [-timeout d] <command> [args]

commands:
  pair <chain> <pairAddress>     pairs by chain and pair address
  token <chain> <tokenAddress>   pairs that include a token
  tokens <chain> <addr,addr,..>  pairs for up to 30 tokens
  search <query>                 search pairs by name, symbol or address
  profiles                       latest token profiles
  boosts [top]                   latest or top boosted tokens
  orders <chain> <tokenAddress>  paid orders for a token

set DEXSCREENER_BASE_URL (flag or .env) to target another API host
`)
}

func main() {
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	flag.Usage = usage
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("failed to load .env")
	}

	var opts []dexscreener.Option
	if base := os.Getenv("DEXSCREENER_BASE_URL"); base != "" {
		opts = append(opts, dexscreener.WithBaseURL(base))
	}
	client := dexscreener.New(opts...)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	if err := run(ctx, client, args[0], args[1:]); err != nil {
		log.WithError(err).Fatal("request failed")
	}
}

func run(ctx context.Context, client *dexscreener.Client, command string, args []string) error {
	switch command {
	case "pair":
		if len(args) != 2 {
			return fmt.Errorf("pair: want <chain> <pairAddress>")
		}
		res, err := client.GetPairsByChainAndAddress(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		printPairs(res.Pairs)
	case "token":
		if len(args) != 2 {
			return fmt.Errorf("token: want <chain> <tokenAddress>")
		}
		pairs, err := client.GetPairsByTokenAddress(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		printPairs(pairs)
	case "tokens":
		if len(args) != 2 {
			return fmt.Errorf("tokens: want <chain> <addr,addr,..>")
		}
		pairs, err := client.GetPairsByTokenAddresses(ctx, args[0], strings.Split(args[1], ","))
		if err != nil {
			return err
		}
		printPairs(pairs)
	case "search":
		if len(args) != 1 {
			return fmt.Errorf("search: want <query>")
		}
		res, err := client.SearchPairs(ctx, args[0])
		if err != nil {
			return err
		}
		printPairs(res.Pairs)
	case "profiles":
		profiles, err := client.GetLatestTokenProfiles(ctx)
		if err != nil {
			return err
		}
		for _, p := range profiles {
			fmt.Printf("%s %s  %s\n", p.ChainID, p.TokenAddress, p.Description)
		}
	case "boosts":
		var (
			boosts []dexscreener.TokenBoost
			err    error
		)
		if len(args) == 1 && args[0] == "top" {
			boosts, err = client.GetTopTokenBoosts(ctx)
		} else {
			boosts, err = client.GetLatestTokenBoosts(ctx)
		}
		if err != nil {
			return err
		}
		for _, b := range boosts {
			fmt.Printf("%s %s  boost %.0f/%.0f\n",
				b.ChainID, b.TokenAddress, b.Amount.Float64(), b.TotalAmount.Float64())
		}
	case "orders":
		if len(args) != 2 {
			return fmt.Errorf("orders: want <chain> <tokenAddress>")
		}
		orders, err := client.GetTokenOrders(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		for _, o := range orders {
			fmt.Printf("%s %s  paid %s\n", o.Type, o.Status, o.PaymentTimestamp.Format(time.RFC3339))
		}
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}

func printPairs(pairs []dexscreener.Pair) {
	if len(pairs) == 0 {
		fmt.Println("no pairs found")
		return
	}
	for i, p := range pairs {
		fmt.Printf("--- pair %d ---\n", i+1)
		fmt.Printf("%s/%s on %s (%s)\n", p.BaseToken.Symbol, p.QuoteToken.Symbol, p.ChainID, p.DexID)
		fmt.Printf("pair address: %s\n", p.PairAddress)
		if p.PriceUSD.Valid {
			fmt.Printf("price: $%.6f\n", p.PriceUSD.Float64)
		}
		fmt.Printf("24h volume: $%.2f\n", p.Volume.H24.Float64())
		fmt.Printf("24h change: %.2f%%\n", p.PriceChange.H24.Float64())
		if p.Liquidity != nil && p.Liquidity.USD.Valid {
			fmt.Printf("liquidity: $%.2f\n", p.Liquidity.USD.Float64)
		}
		fmt.Printf("url: %s\n", p.URL)
	}
}
