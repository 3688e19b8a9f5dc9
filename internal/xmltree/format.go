package xmltree

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// xmlEscaper applies the five XML entity substitutions in a single pass over
// the input. The ampersand pair is listed first; because the replacer never
// rescans replaced text, entities inserted for "&" are not re-escaped.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeText escapes s for use as an XML attribute value.
// Each of &, <, >, " and ' is substituted exactly once.
func EscapeText(s string) string {
	return xmlEscaper.Replace(s)
}

// FormatByteCount renders n with a "." inserted every three digits from the
// right: 512 -> "512", 1024 -> "1.024", 1234567 -> "1.234.567".
// The separator is fixed, never derived from the runtime locale.
func FormatByteCount(n int64) string {
	if n < 0 {
		return "-" + FormatByteCount(-n)
	}

	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)

	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

// FormatModifiedDate renders t as D/M/YYYY in the local calendar, with day
// and month unpadded. A zero t means the modification time could not be
// read; now supplies the fallback instant at formatting time.
func FormatModifiedDate(t time.Time, now func() time.Time) string {
	if t.IsZero() {
		t = now()
	}
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}
