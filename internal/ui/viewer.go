package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"mdharness/internal/domain"
)

// viewerPayloadLimit caps the payload shown in the details pane; outputs of
// pathological cases run to megabytes.
const viewerPayloadLimit = 64 << 10

// Viewer displays recorded runs
type Viewer interface {
	View(record *domain.RunRecord) error
}

// FailureViewer displays failed and errored cases of a recorded run in an
// interactive TUI
type FailureViewer struct{}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer() *FailureViewer {
	return &FailureViewer{}
}

// View opens the TUI for record and blocks until the user quits
func (fv *FailureViewer) View(record *domain.RunRecord) error {
	if len(record.Details) == 0 {
		color.Green("✓ No failed or errored cases in the last run (%s)", record.Corpus)
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, o := range record.Details {
		list.AddItem(ListItemText(i, o), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsView, 0, 1, false)

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" %s against %s: %d passed, %d failed, %d errored | ↑↓ navigate, → details, ← back, q quit ",
			tview.Escape(record.Corpus), tview.Escape(record.Subject),
			record.Tally.Passed, record.Tally.Failed, record.Tally.Errored))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(record.Details) {
			o := record.Details[index]
			statsView.SetText(FormatOutcomeStats(o))
			detailsView.SetText(FormatOutcomeDetails(o)).ScrollToBeginning()
		}
	}

	list.SetChangedFunc(func(int, string, string, rune) { updateDetails() })
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})
	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	updateDetails()

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(body, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// ListItemText formats the list entry of one outcome with tview color tags
func ListItemText(index int, o domain.Outcome) string {
	return fmt.Sprintf("[yellow]%d.[white] %s [red]%s[white]", index+1, tview.Escape(o.Case), o.Status)
}

// FormatOutcomeStats formats the header line of the details pane
func FormatOutcomeStats(o domain.Outcome) string {
	flags := "none"
	if len(o.Flags) > 0 {
		flags = strings.Join(o.Flags, " ")
	}
	return fmt.Sprintf("[cyan]case:[white] [yellow]%s[white]  [cyan]exit code:[white] %d  [cyan]elapsed:[white] %.3f secs\n[cyan]flags:[white] %s",
		tview.Escape(o.Case), o.ExitCode, o.Elapsed.Seconds(), tview.Escape(flags))
}

// FormatOutcomeDetails formats the pattern and diagnostic payload
func FormatOutcomeDetails(o domain.Outcome) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[yellow]Pattern:[white]\n%s\n\n", tview.Escape(Truncate(o.Pattern, viewerPayloadLimit)))
	switch o.Status {
	case domain.StatusFailed:
		fmt.Fprintf(&b, "[yellow]Output:[white]\n%s\n", tview.Escape(Truncate(o.Output, viewerPayloadLimit)))
	case domain.StatusErrored:
		fmt.Fprintf(&b, "[yellow]Stderr:[white]\n%s\n", tview.Escape(Truncate(o.Stderr, viewerPayloadLimit)))
	}
	return b.String()
}
