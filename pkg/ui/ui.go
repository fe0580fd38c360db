package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/ray-d-song/golist/pkg/list"
	"github.com/ray-d-song/golist/pkg/utils"
	"github.com/rivo/tview"
)

// ErrNoTerminal is returned by Run when stdin or stdout is not a terminal
var ErrNoTerminal = errors.New("interactive mode needs a terminal")

// ColorScheme represents a color scheme
type ColorScheme int

const (
	// DefaultColorScheme is the default color scheme
	DefaultColorScheme ColorScheme = iota
	// DarkColorScheme is the dark color scheme
	DarkColorScheme
	// LightColorScheme is the light color scheme
	LightColorScheme
)

// UI represents the user interface
type UI struct {
	App         *tview.Application
	List        *tview.List
	StatusBar   *tview.TextView
	Input       *tview.InputField
	ColorScheme ColorScheme
	Browser     *Browser
	IsPrompting bool // Mark if the input field owns the keyboard
}

// NewUI creates a new UI instance
func NewUI(browser *Browser) *UI {
	app := tview.NewApplication()
	nodeList := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statusBar := tview.NewTextView().
		SetDynamicColors(true)

	input := tview.NewInputField().
		SetFieldWidth(0).
		SetFieldBackgroundColor(tcell.ColorDefault)

	ui := &UI{
		App:         app,
		List:        nodeList,
		StatusBar:   statusBar,
		Input:       input,
		ColorScheme: DefaultColorScheme,
		Browser:     browser,
	}

	ui.App.SetInputCapture(ui.handleKey)
	ui.setLayout(ui.StatusBar)
	ui.Refresh()

	return ui
}

// setLayout puts the list above bottom, which is the status bar or the input field
func (ui *UI) setLayout(bottom tview.Primitive) {
	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(ui.List, 0, 1, bottom == ui.StatusBar).
		AddItem(bottom, 1, 0, bottom != ui.StatusBar)

	ui.App.SetRoot(flex, true)
	if bottom != ui.StatusBar {
		ui.App.SetFocus(bottom)
	}
}

// SetColorScheme sets the color scheme
func (ui *UI) SetColorScheme(scheme ColorScheme) {
	ui.ColorScheme = scheme

	var bg, fg tcell.Color
	switch scheme {
	case DarkColorScheme:
		bg, fg = tcell.ColorDarkSlateGray, tcell.ColorWhite
	case LightColorScheme:
		bg, fg = tcell.ColorWhite, tcell.ColorBlack
	default:
		bg, fg = tcell.ColorDefault, tcell.ColorDefault
	}

	ui.List.SetBackgroundColor(bg)
	ui.List.SetMainTextColor(fg)
	ui.StatusBar.SetBackgroundColor(bg)
	ui.StatusBar.SetTextColor(fg)
	ui.Input.SetBackgroundColor(bg)
	ui.Input.SetFieldBackgroundColor(bg)
	ui.Input.SetLabelColor(fg)
	ui.Input.SetFieldTextColor(fg)
}

// CycleColorScheme cycles through the color schemes
func (ui *UI) CycleColorScheme() {
	ui.SetColorScheme((ui.ColorScheme + 1) % 3)
}

// SetStatus sets the status bar text
func (ui *UI) SetStatus(text string) {
	ui.StatusBar.Clear()
	ui.StatusBar.SetText(text)
}

// SetError shows err in the status bar
func (ui *UI) SetError(err error) {
	utils.DebugLog("ui: %v", err)
	ui.StatusBar.Clear()
	fmt.Fprintf(ui.StatusBar, "[red]%s[-]", tview.Escape(err.Error()))
}

// Refresh redraws the list from the browser
func (ui *UI) Refresh() {
	ui.List.Clear()
	for _, item := range ui.Browser.Items() {
		ui.List.AddItem(tview.Escape(item), "", 0, nil)
	}
	if idx := ui.Browser.Index(); idx >= 0 {
		ui.List.SetCurrentItem(idx)
	}
	ui.SetStatus(tview.Escape(ui.Browser.Status()))
}

// handleKey is the application level key handler
func (ui *UI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if ui.IsPrompting {
		return event
	}

	switch event.Key() {
	case tcell.KeyDown:
		ui.Browser.Next()
	case tcell.KeyUp:
		ui.Browser.Prev()
	case tcell.KeyHome:
		ui.Browser.Home()
	case tcell.KeyEnd:
		ui.Browser.End()
	case tcell.KeyEscape:
		ui.App.Stop()
		return nil
	case tcell.KeyRune:
		return ui.handleRune(event)
	default:
		return nil
	}
	ui.Refresh()
	return nil
}

func (ui *UI) handleRune(event *tcell.EventKey) *tcell.EventKey {
	switch event.Rune() {
	case 'j':
		ui.Browser.Next()
	case 'k':
		ui.Browser.Prev()
	case 'g':
		ui.Browser.Home()
	case 'G':
		ui.Browser.End()
	case 'r':
		ui.Browser.ToggleReverse()
	case 'c':
		ui.CycleColorScheme()
	case 'i':
		ui.Prompt("insert before: ", ui.Browser.InsertBefore)
		return nil
	case 'a':
		ui.Prompt("append: ", ui.Browser.Append)
		return nil
	case '/':
		ui.Prompt("/", ui.Browser.Search)
		return nil
	case 'd':
		text, err := ui.Browser.RemoveCurrent()
		if err != nil {
			ui.SetError(err)
			return nil
		}
		ui.Refresh()
		ui.SetStatus(fmt.Sprintf("removed %s | %s", tview.Escape(text), tview.Escape(ui.Browser.Status())))
		return nil
	case '?':
		ui.ShowHelp()
		return nil
	case 'q':
		ui.App.Stop()
		return nil
	default:
		return nil
	}
	ui.Refresh()
	return nil
}

// Prompt replaces the status bar with an input field and passes the
// entered text to action
func (ui *UI) Prompt(label string, action func(text string) error) {
	ui.IsPrompting = true
	ui.Input.SetLabel(label)
	ui.Input.SetText("")
	ui.Input.SetDoneFunc(func(key tcell.Key) {
		ui.IsPrompting = false
		ui.setLayout(ui.StatusBar)
		if key != tcell.KeyEnter {
			ui.Refresh()
			return
		}
		if err := action(ui.Input.GetText()); err != nil {
			ui.Refresh()
			ui.SetError(err)
			return
		}
		ui.Refresh()
	})
	ui.setLayout(ui.Input)
}

// ShowHelp shows the help screen
func (ui *UI) ShowHelp() {
	helpText := `
golist - linked list browser

Key Bindings:
    Quit             : q         ESC
    Down             : DOWN      j
    Up               : UP        k
    First            : HOME      g
    Last             : END       G
    Insert before    : i
    Append           : a
    Remove           : d
    Search           : /
    Reverse order    : r
    Switch colorsch  : c
`

	textView := tview.NewTextView().
		SetWordWrap(true).
		SetText(helpText)

	frame := tview.NewFrame(textView).
		SetBorders(2, 2, 2, 2, 4, 4).
		AddText("Help", true, tview.AlignCenter, tcell.ColorWhite).
		AddText("Press Esc or Enter to close", false, tview.AlignCenter, tcell.ColorWhite)

	ui.IsPrompting = true
	ui.App.SetRoot(frame, true)
	textView.SetDoneFunc(func(key tcell.Key) {
		ui.IsPrompting = false
		ui.setLayout(ui.StatusBar)
		ui.Refresh()
	})
}

// Run shows the browser until the user quits
func (ui *UI) Run() error {
	return ui.App.Run()
}

// Run browses the list in the terminal and returns its final head
func Run(head *list.Node, mode list.Mode, scheme ColorScheme) (*list.Node, error) {
	if !utils.IsTerminal() {
		return head, ErrNoTerminal
	}
	browser := NewBrowser(head, mode)
	ui := NewUI(browser)
	ui.SetColorScheme(scheme)
	if err := ui.Run(); err != nil {
		return browser.Head, err
	}
	return browser.Head, nil
}
