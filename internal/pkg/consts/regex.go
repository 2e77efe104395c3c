package consts

const (
	// AmountRegexStr captures the first run of digits, optionally preceded by
	// a rupee symbol. Thousands separators are stripped before matching.
	AmountRegexStr = `₹?\s*(\d+)`
	// TenureRegexStr captures digits immediately followed by the word "month"
	// in lowercased input ("36 months", "36month").
	TenureRegexStr = `(\d+)\s*month`
	ValidUserId    = `^[a-zA-Z0-9-_]{1,64}$`
	ValidSessionId = `^[a-zA-Z0-9-]{1,64}$`
)
