package money

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// 通貨未指定のときのデフォルト
const DefaultCurrency = "RUB"

// Money は最小通貨単位（コペイカ/セント）で保持する。
// 表示用文字列への変換は境界（JSON化）でのみ行う。
type Money struct {
	Minor    int64
	Currency string
}

func New(minor int64, code string) (Money, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = DefaultCurrency
	}
	if _, err := currency.ParseISO(code); err != nil {
		return Money{}, fmt.Errorf("currency[%s] is not valid: %w", code, err)
	}
	if minor < 0 {
		return Money{}, fmt.Errorf("amount must be >= 0")
	}
	return Money{Minor: minor, Currency: code}, nil
}

var symbols = map[string]string{
	"RUB": "₽",
	"USD": "$",
	"EUR": "€",
}

var locales = map[string]language.Tag{
	"RUB": language.Russian,
	"USD": language.English,
	"EUR": language.German,
}

// Display は桁区切り付きの表示文字列を返す（例: 25 000 ₽）
func (m Money) Display() string {
	tag, ok := locales[m.Currency]
	if !ok {
		tag = language.English
	}
	p := message.NewPrinter(tag)

	var amount string
	if m.Minor%100 == 0 {
		amount = p.Sprintf("%v", number.Decimal(m.Minor/100))
	} else {
		amount = p.Sprintf("%v", number.Decimal(
			float64(m.Minor)/100,
			number.MinFractionDigits(2),
			number.MaxFractionDigits(2),
		))
	}

	if sym, ok := symbols[m.Currency]; ok {
		return amount + " " + sym
	}
	return amount + " " + m.Currency
}
