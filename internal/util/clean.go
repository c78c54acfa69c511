package util

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

const maxBinaryCheckBytes = 512

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// typography folds smart quotes, dashes and similar into plain ASCII so
// keyword matching sees the same text regardless of the editor it came from.
var typography = strings.NewReplacer(
	"\u2018", "'", "\u2019", "'", "\u201C", "\"", "\u201D", "\"",
	"\u2013", "-", "\u2014", "--", "\u2026", "...", "\u00a0", " ",
	"\u0091", "'", "\u0092", "'", "\u0093", "\"", "\u0094", "\"",
	"\u0096", "-", "\u0097", "--",
)

// IsLikelyBinary reports whether the first bytes of data contain a NUL.
func IsLikelyBinary(data []byte) bool {
	if len(data) > maxBinaryCheckBytes {
		data = data[:maxBinaryCheckBytes]
	}
	return bytes.IndexByte(data, 0) >= 0
}

// CleanText strips a UTF-8 BOM, replaces invalid UTF-8 and folds typographic
// punctuation. src only labels log lines.
func CleanText(data []byte, src string) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if !utf8.Valid(data) {
		log.WithField("source", src).Warn("invalid UTF-8, replacing invalid chars")
		data = bytes.ToValidUTF8(data, []byte(string(utf8.RuneError)))
	}

	str := typography.Replace(string(data))
	if !utf8.ValidString(str) {
		return "", fmt.Errorf("invalid UTF-8 after replacements: %s", src)
	}
	return str, nil
}
