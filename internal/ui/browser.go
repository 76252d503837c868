package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"clay/internal/domain"
	"clay/internal/registry"
)

// SuiteBrowser displays the suites of a model in an interactive TUI
type SuiteBrowser struct{}

// NewSuiteBrowser creates a new SuiteBrowser
func NewSuiteBrowser() *SuiteBrowser {
	return &SuiteBrowser{}
}

// View lists the suites on the left and the selected suite's tests and
// hooks on the right
func (sb *SuiteBrowser) View(model *registry.Model) error {
	suites := model.Suites()

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, suite := range suites {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, tview.Escape(suite.CleanName)), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 2, 0, false).
		AddItem(detailsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" %d suites, %d tests in %s | Use ↑↓ to navigate, → to scroll tests, ← to go back, q to exit ",
			len(suites), model.TestCount(), tview.Escape(model.Root())))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(suites) {
			return
		}
		statsView.SetText(formatSuiteStats(suites[index]))
		detailsView.SetText(formatSuiteDetails(suites[index], model.SuiteCallbacks(index)))
		detailsView.ScrollToBeginning()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC, tcell.KeyEsc:
			app.Stop()
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
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatSuiteStats formats the header line of a suite using tview color tags.
// Names are escaped so brackets in paths are not read as tags.
func formatSuiteStats(suite domain.Suite) string {
	return fmt.Sprintf("[cyan]suite:[white] [yellow]%s[white] ([gray]%s[white]) | [cyan]tests:[white] %d | [cyan]offset:[white] %d\n",
		tview.Escape(suite.CleanName), tview.Escape(suite.Name), suite.Count, suite.Offset)
}

// formatSuiteDetails lists the hooks and tests of a suite
func formatSuiteDetails(suite domain.Suite, callbacks []domain.CallbackEntry) string {
	var builder strings.Builder

	hook := func(label string, entry *domain.CallbackEntry) {
		if entry == nil {
			fmt.Fprintf(&builder, "[gray]%s: none[white]\n", label)
			return
		}
		fmt.Fprintf(&builder, "[green]%s:[white] %s\n", label, tview.Escape(entry.Symbol))
	}

	hook("initialize", suite.Initialize)
	hook("cleanup", suite.Cleanup)
	builder.WriteString("\n[yellow]Tests:[white]\n")

	for i, cb := range callbacks {
		fmt.Fprintf(&builder, "  %3d. %s [gray](%s)[white]\n", suite.Offset+i, tview.Escape(cb.ShortName), tview.Escape(cb.Symbol))
	}

	return builder.String()
}
