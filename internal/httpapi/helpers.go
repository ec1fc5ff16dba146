package httpapi

import (
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"github.com/ajumanholidays/backend/internal/store"
)

// looseEq compares a stored value against a URL parameter the way the
// frontends expect: "42" matches 42 regardless of which side is a string.
func looseEq(v any, param string) bool {
	switch x := v.(type) {
	case string:
		return x == param
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64) == param
	case int64:
		return strconv.FormatInt(x, 10) == param
	case int:
		return strconv.Itoa(x) == param
	case json.Number:
		return x.String() == param
	}
	return false
}

func recordMatches(rec store.Record, key, param string) bool {
	return looseEq(rec[key], param)
}

func isoNow() string    { return time.Now().UTC().Format(time.RFC3339) }
func dateToday() string { return time.Now().UTC().Format("2006-01-02") }
