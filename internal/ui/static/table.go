// Package static provides non-interactive terminal output components.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/repolink/internal/forge"
	"github.com/raphi011/repolink/internal/ui/styles"
)

// RemoteHeaders are the columns of RemoteTableRow.
var RemoteHeaders = []string{"REMOTE", "PROVIDER", "OWNER", "PROJECT", "URL"}

// RemoteInfo is one configured remote as shown by "repolink remote".
type RemoteInfo struct {
	Name     string
	URL      string
	Remote   forge.Remote
	Provider forge.Provider
	Parsed   bool // false when URL has no host/owner/project
}

// RemoteTableRow returns the table cells for r.
// Unparseable remotes show "-" in the owner and project columns.
func RemoteTableRow(r RemoteInfo) []string {
	owner, project := "-", "-"
	if r.Parsed {
		owner, project = r.Remote.Owner, r.Remote.Project
	}
	return []string{r.Name, r.Provider.String(), owner, project, r.URL}
}

// RenderTable creates a formatted table with proper column alignment.
// Column widths come from lipgloss/table. No borders are rendered; the
// header row is bold in the primary color.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TitleStyle().PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}
