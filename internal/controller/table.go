package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/scopegate/internal/model"
)

func renderOverrideTable(rows []m.OverrideRow) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Document", "Edit Scope", "Pruned Location", "Read-Only"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
	})

	scopes := make(map[string]struct{})

	for _, row := range rows {
		scopes[string(row.Document)+"\x00"+row.Scope] = struct{}{}

		readOnly := ""
		if row.ReadOnly {
			readOnly = "yes"
		}

		table.Append([]string{string(row.Document), row.Scope, row.Path, readOnly})
	}

	table.SetFooter([]string{
		"",
		fmt.Sprintf("Scopes %d", len(scopes)),
		fmt.Sprintf("Locations %d", len(rows)),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func renderPruneResult(result m.PruneResult) string {
	var b strings.Builder

	switch {
	case !result.Handled:
		fmt.Fprintf(&b, "key %s was not handled by the viewer\n", result.Key)
	case result.Applied:
		fmt.Fprintf(&b, "pruned %d location(s) in %s (viewing %s)\n", len(result.Requested), result.Scope, result.Viewed)
	default:
		fmt.Fprintf(&b, "key %s consumed, nothing pruned\n", result.Key)
	}

	if len(result.Pruned) > 0 {
		var tableBuffer bytes.Buffer

		table := tablewriter.NewWriter(&tableBuffer)
		table.SetHeader([]string{"Edit Scope", "Pruned Location"})
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetAutoWrapText(false)

		for _, location := range result.Pruned {
			table.Append([]string{result.Scope, location})
		}

		table.Render()
		b.WriteString(tableBuffer.String())
	}

	if result.Saved {
		fmt.Fprintf(&b, "saved %s\n", result.Document)
	}

	return b.String()
}
