// Package query holds helpers shared by the SQL repositories.
package query

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern returns a LIKE pattern matching s anywhere in a column.
// Wildcards typed by the user match literally, relying on MySQL's default
// backslash escape character.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
