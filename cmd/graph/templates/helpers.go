package templates

import (
	"strconv"
	"strings"

	"github.com/delaneyj/water/water"
)

// dotQuote returns s as a double quoted DOT id.
func dotQuote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func listNode(i int) string {
	return "l" + strconv.Itoa(i)
}

func effectNode(id uint64) string {
	return "e" + strconv.FormatUint(id, 10)
}

func entryLabel(entry water.ReactorEntry) string {
	if entry.Keyed {
		return entry.Reactor + "." + entry.Key
	}
	return entry.Reactor
}

func effectStyle(e water.EffectInfo) string {
	if e.Active {
		return "solid"
	}
	return "dashed"
}
