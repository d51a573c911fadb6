package mat4

import (
	"fmt"
	"strings"
)

func formatRows(name string, rows *[4][4]float32) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString("([")
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", row)
	}
	sb.WriteString("])")
	return sb.String()
}
