package postgres

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// descendantsPattern builds the LIKE operand matching the slash-delimited
// descendants of a category name. Wildcard characters inside the stored name
// are escaped so they match literally.
func descendantsPattern(name string) string {
	return likeEscaper.Replace(name) + "/%"
}
