package csvsource

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/ucl-stats/internal/domain/player"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts header-led CSV text into players in row order.
// Numeric columns are coerced leniently: separators are stripped and any
// unparsable or non-finite value becomes zero. Structural CSV errors fail
// the whole decode.
func Decode(raw []byte) ([]player.Player, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, utf8BOM)))

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []player.Player{}, nil
	}
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "read csv header"), player.ErrParse)
	}
	columns := mapColumns(header)

	out := make([]player.Player, 0, 256)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, crerr.Mark(crerr.Wrapf(err, "read csv record %d", len(out)+1), player.ErrParse)
		}

		var p player.Player
		for i, value := range row {
			if i >= len(columns) || !columns[i].Valid() {
				continue
			}
			field := columns[i]
			if field.Kind() == player.KindNumber {
				p.SetNumber(field, CoerceNumber(value))
				continue
			}
			p.SetText(field, value)
		}
		out = append(out, p)
	}

	return out, nil
}

// CoerceNumber parses a numeric cell such as "1,222" and falls back to zero.
func CoerceNumber(value string) float64 {
	clean := strings.TrimSpace(strings.ReplaceAll(value, ",", ""))
	if clean == "" {
		return 0
	}
	n, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

func mapColumns(header []string) []player.Field {
	labels := disambiguateHeader(header)
	out := make([]player.Field, len(labels))
	for i, label := range labels {
		if field, ok := player.ParseField(label); ok {
			out[i] = field
		}
	}
	return out
}

// disambiguateHeader suffixes repeated labels the way the stats export does:
// the second "Gls" becomes "Gls.1", the third "Gls.2".
func disambiguateHeader(header []string) []string {
	out := make([]string, len(header))
	taken := make(map[string]struct{}, len(header))
	repeats := make(map[string]int, 8)
	for i, raw := range header {
		name := strings.TrimSpace(raw)
		label := name
		for {
			if _, dup := taken[label]; !dup {
				break
			}
			repeats[name]++
			label = name + "." + strconv.Itoa(repeats[name])
		}
		taken[label] = struct{}{}
		out[i] = label
	}
	return out
}
