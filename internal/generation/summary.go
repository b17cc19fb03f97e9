package generation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/satwik073/Priscus-server/internal/projects/domain"
)

const noneProvided = "none provided"

// bullets renders items as "- " lines. Plain and structured items render the
// same way, so older analyses produce the same prompt text as newer ones.
func bullets(items []domain.Item) string {
	var b strings.Builder
	for _, it := range items {
		s := strings.TrimSpace(it.String())
		if s == "" {
			continue
		}
		if it.Priority != "" {
			s += " (priority: " + it.Priority + ")"
		}
		b.WriteString("  - ")
		b.WriteString(s)
		b.WriteByte('\n')
	}
	if b.Len() == 0 {
		return "  - " + noneProvided + "\n"
	}
	return b.String()
}

// summarize renders the analysis context embedded in kanban and workflow prompts.
func summarize(a *domain.ProjectAnalysis, withTradeoffs bool) string {
	if a == nil {
		a = &domain.ProjectAnalysis{}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "- Overall Score: %s/100\n", formatScore(a.Score))
	b.WriteString("- Features:\n")
	b.WriteString(bullets(a.Features))
	b.WriteString("- Recommendations:\n")
	b.WriteString(bullets(a.Recommendations))
	if withTradeoffs {
		b.WriteString("- Advantages:\n")
		b.WriteString(bullets(a.Advantages))
		b.WriteString("- Disadvantages:\n")
		b.WriteString(bullets(a.Disadvantages))
	}
	return b.String()
}

func formatScore(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}
