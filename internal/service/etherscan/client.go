package etherscan

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"WhaleEye/internal/domain/models"
	"WhaleEye/pkg/config"
	"WhaleEye/pkg/util"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// gasSampleSize bounds how many transactions feed the gas fee average.
const gasSampleSize = 10

var ErrUnexpectedPayload = errors.New("etherscan: unexpected payload")

// Client fetches wallet transactions from the Etherscan account API.
type Client struct {
	client       *resty.Client
	apiKey       string
	fetchLimit   int
	displayLimit int
}

// New creates an Etherscan client from the whale section of the config.
func New(cfg config.WhaleConfig) *Client {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/"))
	client.SetTimeout(cfg.Timeout)
	client.SetHeader("Accept", "application/json")

	return &Client{
		client:       client,
		apiKey:       cfg.EtherscanAPIKey,
		fetchLimit:   cfg.FetchLimit,
		displayLimit: cfg.DisplayLimit,
	}
}

func (c *Client) Name() string { return "etherscan" }

// Transactions returns the newest transactions of wallet. Any non-success
// status is an error; the caller decides what to substitute.
func (c *Client) Transactions(ctx context.Context, wallet string) (*models.TransactionSet, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("etherscan API key not configured")
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"module":     "account",
			"action":     "txlist",
			"address":    wallet,
			"startblock": "0",
			"endblock":   "99999999",
			"page":       "1",
			"offset":     strconv.Itoa(c.fetchLimit),
			"sort":       "desc",
			"apikey":     c.apiKey,
		}).
		Get("/api")
	if err != nil {
		return nil, fmt.Errorf("fetch transactions for %s: %w", wallet, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("etherscan API error %d: %s", resp.StatusCode(), util.Prefix(resp.String(), 200))
	}

	return parseTxList(resp.Body(), wallet, c.displayLimit)
}

func parseTxList(body []byte, wallet string, displayLimit int) (*models.TransactionSet, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrUnexpectedPayload
	}
	doc := gjson.ParseBytes(body)

	result := doc.Get("result")
	if doc.Get("status").String() != "1" {
		return nil, fmt.Errorf("etherscan status %q: %s %s", doc.Get("status").String(), doc.Get("message").String(), result.String())
	}
	// rate limit and key errors come back as a string result
	if !result.IsArray() {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedPayload, result.String())
	}

	raw := result.Array()
	shown := raw
	if displayLimit > 0 && len(shown) > displayLimit {
		shown = shown[:displayLimit]
	}

	txs := make([]models.Transaction, 0, len(shown))
	for _, r := range shown {
		txs = append(txs, toTransaction(r, wallet))
	}

	return &models.TransactionSet{
		Transactions: txs,
		AvgGasFee:    averageGasFee(raw),
	}, nil
}

func toTransaction(r gjson.Result, wallet string) models.Transaction {
	from := r.Get("from").String()
	to := r.Get("to").String()
	value := r.Get("value").String()

	tx := models.Transaction{
		Hash:     r.Get("hash").String(),
		Amount:   FormatWei(value) + " ETH",
		RawValue: value,
	}
	if strings.EqualFold(to, wallet) {
		tx.Type = "ETH Received"
		tx.Counterparty = from
	} else {
		tx.Type = "ETH Transfer"
		tx.Counterparty = to
	}
	if ts, ok := util.ParseTime(r.Get("timeStamp").String()); ok {
		tx.Timestamp = util.ISOTime(ts)
	}
	return tx
}

// FormatWei renders a wei amount in ETH truncated to 4 decimals.
func FormatWei(wei string) string {
	d, err := decimal.NewFromString(wei)
	if err != nil {
		d = decimal.Zero
	}
	return d.Shift(-18).Truncate(4).StringFixed(4)
}

// averageGasFee is the mean of gasUsed*gasPrice over the newest gasSampleSize
// transactions, in ETH truncated to 6 decimals.
func averageGasFee(raw []gjson.Result) string {
	n := len(raw)
	if n > gasSampleSize {
		n = gasSampleSize
	}
	if n == 0 {
		return decimal.Zero.StringFixed(6) + " ETH"
	}

	sum := decimal.Zero
	for _, r := range raw[:n] {
		used, err1 := decimal.NewFromString(r.Get("gasUsed").String())
		price, err2 := decimal.NewFromString(r.Get("gasPrice").String())
		if err1 != nil || err2 != nil {
			continue
		}
		sum = sum.Add(used.Mul(price))
	}

	avg := sum.Div(decimal.NewFromInt(int64(n)))
	return avg.Shift(-18).Truncate(6).StringFixed(6) + " ETH"
}
