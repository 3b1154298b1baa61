package domain

import "strings"

// Tone classifies a status for colouring.
type Tone string

const (
	ToneNeutral Tone = ""
	ToneGood    Tone = "good"
	ToneBad     Tone = "bad"
	ToneWarn    Tone = "warn"
	ToneNotice  Tone = "notice"
	ToneInfo    Tone = "info"
)

var statusTones = map[string]Tone{
	"active":       ToneGood,
	"paid":         ToneGood,
	"current":      ToneGood,
	"completed":    ToneGood,
	"defaulted":    ToneBad,
	"overdue":      ToneBad,
	"expired":      ToneBad,
	"pending":      ToneWarn,
	"processing":   ToneWarn,
	"under review": ToneWarn,
	"partial":      ToneNotice,
	"released":     ToneInfo,
}

// StatusTone maps a record status to its tone. Unknown statuses are neutral.
func StatusTone(status string) Tone {
	return statusTones[strings.ToLower(strings.TrimSpace(status))]
}

// CreditTone grades a credit score.
func CreditTone(score int) Tone {
	switch {
	case score >= 700:
		return ToneGood
	case score >= 600:
		return ToneWarn
	default:
		return ToneBad
	}
}

// SignTone colours a signed change such as "+5.2%".
func SignTone(change string) Tone {
	switch {
	case strings.HasPrefix(change, "+"):
		return ToneGood
	case strings.HasPrefix(change, "-"):
		return ToneBad
	}
	return ToneNeutral
}
