// Demo: a terminal-multiplexer style layout with a fixed sidebar, two
// stacked editors, a floating palette, and full focus/mouse wiring.
//
// Tab / Shift-Tab cycle focus, Alt+arrows move focus directionally,
// clicking a pane focuses it, Ctrl+Q quits.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mosaic"
)

func main() {
	s := mosaic.NewSession(mosaic.Vertical, 80, 24, mosaic.Config{})
	tree := s.Tree()

	headerStyle := mosaic.Style{FG: mosaic.Black, BG: mosaic.Cyan}
	header := s.Insert(mosaic.NewLabel(" mosaic — Tab cycles, Alt+arrows move, click focuses, Ctrl+Q quits").SetStyle(headerStyle))
	if _, err := tree.AddLeaf(tree.Root(), header, mosaic.Fixed(1)); err != nil {
		fatal(err)
	}

	body, err := tree.AddSplit(tree.Root(), mosaic.Horizontal, mosaic.Fill(1))
	if err != nil {
		fatal(err)
	}

	sidebar := s.Insert(mosaic.NewTextBox().SetText("sidebar\n\nnotes go here"))
	if _, err := tree.AddLeaf(body, sidebar, mosaic.Fixed(24)); err != nil {
		fatal(err)
	}

	editors, err := tree.AddSplit(body, mosaic.Vertical, mosaic.Fill(1))
	if err != nil {
		fatal(err)
	}
	top := s.Insert(mosaic.NewTextBox().SetText("top editor"))
	if _, err := tree.AddLeaf(editors, top, mosaic.Fill(1)); err != nil {
		fatal(err)
	}
	bottom := s.Insert(mosaic.NewTextBox().SetText("bottom editor"))
	if _, err := tree.AddLeaf(editors, bottom, mosaic.Fill(1)); err != nil {
		fatal(err)
	}

	statusStyle := mosaic.Style{FG: mosaic.Black, BG: mosaic.BrightBlack}
	status := s.Insert(mosaic.NewLabel(" ready").SetStyle(statusStyle))
	if _, err := tree.AddLeaf(tree.Root(), status, mosaic.Fixed(1)); err != nil {
		fatal(err)
	}

	// Floating palette over the body, above all anchored panes.
	float, err := tree.AddFloat(body, mosaic.NewRect(30, 3, 34, 8), 1)
	if err != nil {
		fatal(err)
	}
	palette := s.Insert(mosaic.NewTextBox().SetText("palette\n\ntype here"))
	if _, err := tree.AddLeaf(float, palette, mosaic.Fill(1)); err != nil {
		fatal(err)
	}

	s.HandleGlobal(func(e mosaic.Event) bool {
		ke, ok := e.(mosaic.KeyEvent)
		if !ok {
			return false
		}
		switch {
		case ke.Code == mosaic.KeyTab && ke.Mods.Has(mosaic.ModShift):
			s.FocusPrev()
			return true
		case ke.Code == mosaic.KeyTab:
			s.FocusNext()
			return true
		case ke.Mods.Has(mosaic.ModAlt):
			switch ke.Code {
			case mosaic.KeyUp:
				s.FocusDirection(mosaic.Up)
			case mosaic.KeyDown:
				s.FocusDirection(mosaic.Down)
			case mosaic.KeyLeft:
				s.FocusDirection(mosaic.Left)
			case mosaic.KeyRight:
				s.FocusDirection(mosaic.Right)
			default:
				return false
			}
			return true
		}
		return false
	})
	s.FocusNext()

	driver := mosaic.NewDriver(s).QuitOn(func(e mosaic.KeyEvent) bool {
		return e.Code == mosaic.KeyRune && e.Mods.Has(mosaic.ModCtrl) && (e.Rune == 'q' || e.Rune == 'c')
	})

	p := tea.NewProgram(driver, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fatal(err)
	}

	bye := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	fmt.Println(bye.Render("mosaic demo exited"))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "demo:", err)
	os.Exit(1)
}
