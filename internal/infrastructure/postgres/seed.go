package postgres

import "strings"

// StatementSeparator separa sentencias en los archivos generados por seed_gen.
const StatementSeparator = "-- STATEMENT_END --"

// SplitSeedStatements divide el contenido de un seed en sentencias ejecutables.
// Descarta fragmentos vacíos y fragmentos que empiezan con comentario ("--").
func SplitSeedStatements(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	var out []string
	for _, chunk := range strings.Split(content, StatementSeparator) {
		stmt := strings.TrimSpace(chunk)
		if stmt == "" || strings.HasPrefix(stmt, "--") {
			continue
		}
		out = append(out, stmt)
	}
	return out
}
