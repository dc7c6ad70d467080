// Package normalize converts raw upstream JSON documents into the
// canonical case record. Every normalizer here is total: any input,
// including an empty document, produces a well-formed CanonicalCase with
// sentinel display values, never an error. Sources disagree on key names,
// so each field is read through an ordered list of alternate keys where
// the first defined, non-empty value wins.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/nandeeshlaxetti-prog/courtdata/pkg/types/court"
)

// Document is a decoded upstream JSON object.
type Document map[string]interface{}

// section returns the first child object found under keys, or an empty
// Document so chained reads stay nil-safe.
func (d Document) section(keys ...string) Document {
	for _, k := range keys {
		if child, ok := d[k].(map[string]interface{}); ok {
			return Document(child)
		}
	}
	return Document{}
}

// str returns the first non-empty string value found under keys, trimmed.
// Numeric values are stringified because some sources emit numbers where
// others emit strings.
func (d Document) str(keys ...string) string {
	for _, k := range keys {
		switch v := d[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// num returns the first numeric value found under keys. String-encoded
// integers are accepted.
func (d Document) num(keys ...string) (int, bool) {
	for _, k := range keys {
		switch v := d[k].(type) {
		case float64:
			return int(v), true
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

// list returns the first array of objects found under keys.
func (d Document) list(keys ...string) []Document {
	for _, k := range keys {
		arr, ok := d[k].([]interface{})
		if !ok {
			continue
		}
		out := make([]Document, 0, len(arr))
		for _, item := range arr {
			if obj, ok := item.(map[string]interface{}); ok {
				out = append(out, Document(obj))
			}
		}
		return out
	}
	return nil
}

// strs returns the first array under keys flattened to its string
// elements.
func (d Document) strs(keys ...string) []string {
	for _, k := range keys {
		arr, ok := d[k].([]interface{})
		if !ok {
			continue
		}
		out := make([]string, 0, len(arr))
		for _, item := range arr {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	}
	return nil
}

// dateLayouts covers the formats observed across government and vendor
// sources, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"02-Jan-2006",
}

// parseDate parses s against the known layouts. The zero value and
// unparseable strings return nil.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// date reads the first parseable date found under keys.
func (d Document) date(keys ...string) *time.Time {
	for _, k := range keys {
		if t := parseDate(d.str(k)); t != nil {
			return t
		}
	}
	return nil
}

var regSeq atomic.Int64

// fallbackPrefix marks case numbers synthesized by fallbackCaseNumber.
const fallbackPrefix = "REG-"

// fallbackCaseNumber synthesizes a unique registration-style identifier
// for records whose source carries no case number at all. The result is
// unique within the process lifetime.
func fallbackCaseNumber() string {
	return fmt.Sprintf("%s%d-%d", fallbackPrefix, time.Now().Unix(), regSeq.Add(1))
}

// Empty reports whether a normalized case consists of nothing but
// synthesized sentinels. Several upstreams answer HTTP 200 with an empty
// or unrecognized body when no record matches; normalizer totality turns
// such a body into a sentinel-only case, which providers must report as
// no data rather than hand to the caller as a resolved record.
func Empty(c *court.CanonicalCase) bool {
	return c.CNR == "" &&
		c.FilingNumber == "" &&
		strings.HasPrefix(c.CaseNumber, fallbackPrefix) &&
		c.Title == court.UnknownTitle &&
		c.Court == court.UnknownCourt &&
		len(c.Parties) == 0 &&
		len(c.HearingHistory) == 0 &&
		len(c.Orders) == 0
}

// orDefault returns s, or def when s is empty.
func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// composeTitle builds "A vs B" from party names when the source omits a
// title, falling back to the unknown-title sentinel.
func composeTitle(petitioner, respondent string) string {
	if petitioner != "" && respondent != "" {
		return petitioner + " vs " + respondent
	}
	if petitioner != "" {
		return petitioner
	}
	return court.UnknownTitle
}

// numberOrders assigns 1-based sequence numbers to any order that arrived
// without one. Existing upstream numbers are preserved.
func numberOrders(orders []court.Order) []court.Order {
	for i := range orders {
		if orders[i].Number == 0 {
			orders[i].Number = i + 1
		}
	}
	return orders
}
