package progress

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/progress-api/internal/domain"
)

const (
	MinPercent = 0
	MaxPercent = 100
)

// ValidatePercent rechaza valores fuera de [0, 100]. No recorta.
func ValidatePercent(v int) error {
	if v < MinPercent || v > MaxPercent {
		return domain.ErrProgressOutOfRange
	}
	return nil
}

// ParsePercent interpreta el valor crudo recibido en el body: un número JSON entero
// o un string con un entero ("75"). 50.0 se acepta; 50.5, null, booleanos y vacío se rechazan.
func ParsePercent(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, domain.ErrProgressOutOfRange
	}

	text := string(raw)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, domain.ErrProgressOutOfRange
		}
		text = strings.TrimSpace(s)
	}

	d, err := decimal.NewFromString(text)
	if err != nil || !d.IsInteger() {
		return 0, domain.ErrProgressOutOfRange
	}
	if d.LessThan(decimal.NewFromInt(MinPercent)) || d.GreaterThan(decimal.NewFromInt(MaxPercent)) {
		return 0, domain.ErrProgressOutOfRange
	}
	return int(d.IntPart()), nil
}
