package quote

import (
	"strings"
	"time"
)

// DefaultPrefix is used for quotes without a partner or for the house partner.
const DefaultPrefix = "AQ"

// Prefix derives the quote number prefix from a partner code.
func Prefix(partnerCode, houseCode string) string {
	if partnerCode == "" || partnerCode == houseCode {
		return DefaultPrefix
	}
	if len(partnerCode) > 2 {
		partnerCode = partnerCode[:2]
	}
	return strings.ToUpper(partnerCode)
}

// NewNumber formats <PREFIX>-<YYYYMMDD>-<suffix>. The date is taken in now's location.
func NewNumber(partnerCode, houseCode string, now time.Time, suffix string) string {
	return Prefix(partnerCode, houseCode) + "-" + now.Format("20060102") + "-" + strings.ToUpper(suffix)
}
