// Command filedialog-tcell hosts the file dialog in a plain tcell
// event loop: draw, wait for one key, dispatch it, repeat. ctrl+o
// opens the dialog; q quits while it is closed.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BrandonIrizarry/filedialog"
	"github.com/BrandonIrizarry/filedialog/internal/config"
	"github.com/BrandonIrizarry/filedialog/internal/tcellkey"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

var (
	openDialog = key.NewBinding(key.WithKeys("ctrl+o"))
	quit       = key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"))

	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorSlateBlue)
	cursorStyle = tcell.StyleDefault.Background(tcell.ColorLightGreen).Foreground(tcell.ColorBlack).Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

func main() {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:          "filedialog-tcell",
		Short:        "File dialog demo on a tcell screen",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfgFile)
		},
	}
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/filedialog/config.toml)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type host struct {
	screen   tcell.Screen
	dialog   *filedialog.Dialog
	selected []string
	status   string
}

func run(cfgFile string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	dcfg, err := cfg.Dialog()
	if err != nil {
		return err
	}

	if cfg.LogFile != "" {
		logger, logFile, err := filedialog.NewFileLogger(cfg.LogFile)
		if err != nil {
			return err
		}
		defer logFile.Close()
		dcfg.Logger = logger
	}

	d, err := filedialog.New(dcfg)
	if err != nil {
		return fmt.Errorf("cannot create file dialog: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	h := &host{screen: screen, dialog: d}
	h.loop()

	return nil
}

func (h *host) loop() {
	for {
		h.draw()

		switch ev := h.screen.PollEvent().(type) {
		case *tcell.EventResize:
			h.screen.Sync()

		case *tcell.EventKey:
			msg, ok := tcellkey.Convert(ev)
			if !ok {
				continue
			}

			if done := h.handleKey(msg); done {
				return
			}

		case nil:
			// The screen was finalized.
			return
		}

		if files, ok := h.dialog.SelectedFiles(); ok {
			h.selected = files
		}
	}
}

// handleKey dispatches one key, reporting whether the host should
// exit.
func (h *host) handleKey(msg tea.KeyMsg) bool {
	h.status = ""

	res, err := h.dialog.Dispatch(msg)
	if err != nil {
		h.status = err.Error()
	}

	if res.Kind == filedialog.Consumed {
		return false
	}

	switch {
	case key.Matches(msg, openDialog):
		h.dialog.Open()
	case key.Matches(msg, quit):
		return true
	}

	return false
}

func (h *host) draw() {
	h.screen.Clear()
	w, ht := h.screen.Size()

	drawText(h.screen, 0, 0, w, tcell.StyleDefault, "Selected files: "+strings.Join(h.selected, ", "))
	drawText(h.screen, 0, 1, w, tcell.StyleDefault, "ctrl+o: open file dialog - q: quit")
	drawText(h.screen, 0, ht-1, w, statusStyle, h.status)

	if h.dialog.IsOpen() {
		h.drawDialog(filedialog.CenteredRect(h.dialog.Width(), h.dialog.Height(), filedialog.Rect{Width: w, Height: ht}))
	}

	h.screen.Show()
}

// drawDialog renders the dialog from its public state: a box titled
// with the current directory, and as many rows as fit, scrolled to
// keep the cursor in view.
func (h *host) drawDialog(r filedialog.Rect) {
	if r.Width < 3 || r.Height < 3 {
		return
	}

	drawBox(h.screen, r)
	drawText(h.screen, r.X+1, r.Y, r.Width-2, borderStyle, h.dialog.CurrentDir())

	items := h.dialog.Items()
	cursor, _ := h.dialog.Cursor()
	rows := r.Height - 2
	first := max(0, cursor-rows+1)

	for i := first; i < len(items) && i < first+rows; i++ {
		text := items[i]
		if h.dialog.MultiSelection() {
			if h.dialog.IsSelected(i) {
				text = "☑ " + text
			} else {
				text = "☐ " + text
			}
		}

		style := tcell.StyleDefault
		if i == cursor {
			style = cursorStyle
			text += strings.Repeat(" ", max(0, r.Width-2-len([]rune(text))))
		}

		drawText(h.screen, r.X+1, r.Y+1+i-first, r.Width-2, style, text)
	}
}

func drawBox(s tcell.Screen, r filedialog.Rect) {
	x2, y2 := r.X+r.Width-1, r.Y+r.Height-1

	for x := r.X + 1; x < x2; x++ {
		s.SetContent(x, r.Y, tcell.RuneHLine, nil, borderStyle)
		s.SetContent(x, y2, tcell.RuneHLine, nil, borderStyle)
	}
	for y := r.Y + 1; y < y2; y++ {
		s.SetContent(r.X, y, tcell.RuneVLine, nil, borderStyle)
		s.SetContent(x2, y, tcell.RuneVLine, nil, borderStyle)
		for x := r.X + 1; x < x2; x++ {
			s.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}

	s.SetContent(r.X, r.Y, tcell.RuneULCorner, nil, borderStyle)
	s.SetContent(x2, r.Y, tcell.RuneURCorner, nil, borderStyle)
	s.SetContent(r.X, y2, tcell.RuneLLCorner, nil, borderStyle)
	s.SetContent(x2, y2, tcell.RuneLRCorner, nil, borderStyle)
}

// drawText writes text at (x, y), cut off after width cells.
func drawText(s tcell.Screen, x, y, width int, style tcell.Style, text string) {
	col := 0
	for _, r := range text {
		if col >= width {
			return
		}
		s.SetContent(x+col, y, r, nil, style)
		col++
	}
}
