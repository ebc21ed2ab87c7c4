package tui

import (
	"strings"

	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// renderUnsavedDiff renders a unified diff of the history baseline (last
// loaded or saved text) against the current document, with char-level
// highlights when line counts pair up.
func renderUnsavedDiff(baseline, current string, th Theme) string {
	if baseline == current {
		return "No changes\n"
	}
	bLines := strings.Split(baseline, "\n")
	cLines := strings.Split(current, "\n")
	var sb strings.Builder
	sb.WriteString(th.Title.Render("SAVED vs CURRENT") + "\n")
	if len(bLines) == len(cLines) {
		for i := range bLines {
			bl, cl := bLines[i], cLines[i]
			if bl == cl {
				if strings.TrimSpace(bl) == "" {
					continue
				}
				sb.WriteString("  " + th.Faint.Render(bl) + "\n")
				continue
			}
			d := dmp.New()
			diffs := d.DiffMain(bl, cl, false)
			d.DiffCleanupSemantic(diffs)
			sb.WriteString(th.DiffDelLine.Render("- "))
			for _, df := range diffs {
				switch df.Type {
				case dmp.DiffDelete:
					sb.WriteString(th.DiffDelChar.Render(df.Text))
				case dmp.DiffEqual:
					sb.WriteString(th.DiffDelLine.Render(df.Text))
				}
			}
			sb.WriteString("\n")
			sb.WriteString(th.DiffAddLine.Render("+ "))
			for _, df := range diffs {
				switch df.Type {
				case dmp.DiffInsert:
					sb.WriteString(th.DiffAddChar.Render(df.Text))
				case dmp.DiffEqual:
					sb.WriteString(th.DiffAddLine.Render(df.Text))
				}
			}
			sb.WriteString("\n")
		}
		return sb.String()
	}
	// Line counts differ: show whole blocks.
	for _, l := range bLines {
		sb.WriteString(th.DiffDelLine.Render("- "+l) + "\n")
	}
	for _, l := range cLines {
		sb.WriteString(th.DiffAddLine.Render("+ "+l) + "\n")
	}
	return sb.String()
}
