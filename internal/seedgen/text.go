package seedgen

import (
	"regexp"
	"strings"
)

var tfRefPattern = regexp.MustCompile(`\[([A-Za-z]+)\s*-\s*([0-9]+)\]`)

// NormID elimina todos los espacios de un id ("TF - 12" → "TF-12").
func NormID(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, " ", ""))
}

// ExtractTFIDs extrae referencias "[PREFIJO - 123]" del texto, sin duplicados y en orden de aparición.
func ExtractTFIDs(text string) []string {
	if text == "" {
		return nil
	}
	var out []string
	seen := map[string]struct{}{}
	for _, m := range tfRefPattern.FindAllStringSubmatch(text, -1) {
		id := m[1] + "-" + m[2]
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// sqlString literal SQL con comillas simples escapadas.
func sqlString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// sqlNullable NULL para nil.
func sqlNullable(s *string) string {
	if s == nil {
		return "NULL"
	}
	return sqlString(*s)
}

// sqlOptional NULL para vacío (las celdas vacías del CSV).
func sqlOptional(s string) string {
	if s == "" {
		return "NULL"
	}
	return sqlString(s)
}

func sqlTextArray(tags []string) string {
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, sqlString(t))
	}
	return "ARRAY[" + strings.Join(parts, ",") + "]::text[]"
}

func chunk[T any](items []T, size int) [][]T {
	var out [][]T
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[start:end])
	}
	return out
}
