package tools

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"toolbox/internal/domain"
)

var currencyCode = regexp.MustCompile(`^[A-Z]{3}$`)

type ratesResponse struct {
	Result         string             `json:"result"`
	BaseCode       string             `json:"base_code"`
	TimeLastUpdate string             `json:"time_last_update_utc"`
	Rates          map[string]float64 `json:"rates"`
	ErrorType      string             `json:"error-type"`
}

// CurrencyConverter converts an amount using live exchange rates.
//
// Args: amount from to, e.g. "100 USD VND".
type CurrencyConverter struct {
	http     domain.HTTPDoer
	endpoint string
}

func NewCurrencyConverter(deps domain.ToolDeps) domain.Tool {
	deps = deps.WithDefaults()
	return &CurrencyConverter{http: deps.HTTP, endpoint: deps.Endpoints.Currency}
}

func (c *CurrencyConverter) Run(ctx context.Context, req domain.ToolRequest) (domain.ToolResult, error) {
	const op = "tools.currency-converter"
	if len(req.Args) < 3 {
		return domain.ToolResult{}, domain.InvalidInput(op, "usage: <amount> <from> <to>")
	}
	amount, err := parseNumber(op, "amount", req.Args[0])
	if err != nil {
		return domain.ToolResult{}, err
	}
	if amount < 0 {
		return domain.ToolResult{}, domain.InvalidInput(op, "amount must not be negative")
	}
	from := strings.ToUpper(strings.TrimSpace(req.Args[1]))
	to := strings.ToUpper(strings.TrimSpace(req.Args[2]))
	for _, code := range []string{from, to} {
		if !currencyCode.MatchString(code) {
			return domain.ToolResult{}, domain.InvalidInput(op, "currency code %q must be three letters", code)
		}
	}

	var rates ratesResponse
	if err := getJSON(ctx, c.http, op, joinPath(c.endpoint, from), nil, &rates); err != nil {
		return domain.ToolResult{}, err
	}
	if rates.Result != "success" {
		reason := rates.ErrorType
		if reason == "" {
			reason = "unknown error"
		}
		return domain.ToolResult{}, domain.E(domain.CodeUnavailable, op, "rates unavailable: "+reason, domain.ErrUpstreamFailed)
	}
	rate, ok := rates.Rates[to]
	if !ok {
		return domain.ToolResult{}, domain.InvalidInput(op, "no rate from %s to %s", from, to)
	}

	converted := amount * rate
	result := fieldsResult(
		field("Số tiền", fmt.Sprintf("%s %s", formatNumber(amount), from)),
		field("Quy đổi", fmt.Sprintf("%s %s", formatRounded(converted, 2), to)),
		field("Tỉ giá", fmt.Sprintf("1 %s = %s %s", from, formatRounded(rate, 6), to)),
	)
	if rates.TimeLastUpdate != "" {
		result.Fields = append(result.Fields, field("Cập nhật", rates.TimeLastUpdate))
		result.Text = fieldsText(result.Fields)
	}
	result.Meta = map[string]string{"rate": formatNumber(rate), "converted": formatNumber(converted)}
	return result, nil
}
