package parser

import (
	"strings"

	"github.com/shopspring/decimal"
)

// roundTrunc 先加目标精度的半个单位再截断，所有派生值都走这一个取整口径
func roundTrunc(d decimal.Decimal, places int32) decimal.Decimal {
	half := decimal.New(5, -places-1)
	if d.IsNegative() {
		half = half.Neg()
	}
	return d.Add(half).Truncate(places)
}

// ratioStr 计算 num/den*mult 并取整，den为0或缺失时返回false
func ratioStr(num, den, mult decimal.Decimal, places int32) (string, bool) {
	if den.IsZero() {
		return "", false
	}
	q := num.Div(den).Mul(mult)
	return roundTrunc(q, places).StringFixed(places), true
}

// cleanNumber 去掉千分位逗号
func cleanNumber(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", "")
}

// parseDec 解析报告里的数值，支持科学计数法（如1.2E+05）
func parseDec(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(cleanNumber(s))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func strPtr(s string) *string { return &s }
