package finledger

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Intraday quotes from Tradegate. Response shape (abridged):
//
//	{"isin":"US0378331005","bid":227.4,"ask":227.9,"last":"227,55","bidsize":600,...}
//
// "last" is the latest trade and moves slower than the bid, but the bid can
// be empty; and the API sometimes returns numbers as comma-decimal strings.
const tradegateURL = "https://www.tradegate.de/refresh.php?isin="

// LatestQuote fetches the most recent traded price for an instrument by ISIN.
// Responses are served from the daily disk cache when available.
func LatestQuote(isin string) (float64, error) {
	var jobj any
	if err := getJSON(dailyClient(), tradegateURL+isin, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("cannot retrieve quote for %q: %w", isin, err)
	}

	jval, err := quoteField(jobj, "$.last")
	if err != nil || isEmptyQuote(jval) {
		// empty "last" is rendered as "./.", fall back to the bid
		jval, err = quoteField(jobj, "$.bid")
	}
	if err != nil {
		return math.NaN(), fmt.Errorf("cannot parse quote for %q: %w", isin, err)
	}

	val, err := quoteValue(jval)
	if err != nil {
		return math.NaN(), fmt.Errorf("cannot parse quote for %q: %w", isin, err)
	}
	if val == 0 {
		return math.NaN(), fmt.Errorf("empty quote for %q", isin)
	}
	return val, nil
}

func quoteField(jobj any, path string) (any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	// jsonpath sometimes wraps a single answer in a list; unwrap it
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval, nil
}

func isEmptyQuote(jval any) bool {
	s, ok := jval.(string)
	return ok && s == "./."
}

// quoteValue reads a float from a value that may be a float or a
// comma-decimal string.
func quoteValue(jval any) (float64, error) {
	if val, ok := jval.(float64); ok {
		return val, nil
	}
	s, ok := jval.(string)
	if !ok {
		return math.NaN(), fmt.Errorf("quote is neither a float nor a string: %v", jval)
	}
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.ReplaceAll(s, " ", "")
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN(), fmt.Errorf("quote is an invalid string %q: %w", s, err)
	}
	return val, nil
}
