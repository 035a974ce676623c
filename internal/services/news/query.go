package news

import "strings"

// DefaultQuery is the provider search string when the user names no known term.
const DefaultQuery = "cryptocurrency OR bitcoin OR ethereum OR crypto"

var cryptoKeywords = []string{
	"bitcoin", "btc", "ethereum", "eth", "dogecoin", "doge", "cardano", "ada",
	"polkadot", "dot", "chainlink", "link", "litecoin", "ltc", "solana", "sol",
	"polygon", "matic", "avalanche", "avax", "cosmos", "atom", "algorand", "algo",
	"stellar", "xlm", "vechain", "vet", "tron", "trx", "eos", "xrp", "ripple",
	"binance", "bnb", "uniswap", "uni", "pancakeswap", "cake", "sushiswap", "sushi",
	"defi", "nft", "web3", "metaverse", "dao", "yield farming", "staking",
	"regulation", "sec", "etf", "institutional", "adoption", "halving", "mining",
}

// ExtractCryptoTerms returns the vocabulary terms mentioned in query, in vocabulary order.
// Multi-word terms also match with their spaces removed ("yieldfarming").
func ExtractCryptoTerms(query string) []string {
	lower := strings.ToLower(query)
	var out []string
	for _, k := range cryptoKeywords {
		if strings.Contains(lower, k) || strings.Contains(lower, strings.ReplaceAll(k, " ", "")) {
			out = append(out, k)
		}
	}
	return out
}

// BuildSearchQuery narrows DefaultQuery with the terms found in query.
func BuildSearchQuery(query string) string {
	if strings.TrimSpace(query) == "" {
		return DefaultQuery
	}
	terms := ExtractCryptoTerms(query)
	if len(terms) == 0 {
		return DefaultQuery
	}
	return strings.Join(terms, " OR ") + " AND (" + DefaultQuery + ")"
}
