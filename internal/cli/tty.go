package cli

import (
	"fmt"
	"log/slog"

	"github.com/eiannone/keyboard"
	"github.com/spf13/cobra"

	"hancore/internal/logger"
	"hancore/pkg/ime"
	"hancore/pkg/layout"
)

var ttyCmd = &cobra.Command{
	Use:   "tty",
	Short: "Interactive terminal IME",
	Long: `tty grabs the keyboard and composes Hangul as you type. Esc toggles
between Hangul and Latin passthrough, Enter finishes the line, Ctrl-C
quits.`,
	RunE: runTTY,
}

func init() {
	ttyCmd.Flags().StringVar(&flagLayout, "layout", "dubeolsik", "keyboard layout (dubeolsik, sebeolsik-390)")
	rootCmd.AddCommand(ttyCmd)
}

// lineEditor mirrors the host text-field contract: committed text plus at
// most one composition character that edit actions replace in place.
type lineEditor struct {
	line    []rune
	preedit rune
}

func (ed *lineEditor) apply(action ime.Action, prev, current, literal rune) {
	switch action {
	case ime.ActionReplace:
		ed.preedit = current
	case ime.ActionEmitAndNew:
		if prev != 0 {
			ed.line = append(ed.line, prev)
		}
		ed.preedit = current
	case ime.ActionLiteral:
		if prev != 0 {
			ed.line = append(ed.line, prev)
		}
		ed.preedit = 0
		ed.line = append(ed.line, literal)
	}
}

func (ed *lineEditor) commit(state *ime.State) {
	if cp := state.Commit(); cp != 0 {
		ed.line = append(ed.line, cp)
	}
	ed.preedit = 0
}

func (ed *lineEditor) render() {
	fmt.Printf("\r\033[K%s", string(ed.line))
	if ed.preedit != 0 {
		fmt.Printf("%c", ed.preedit)
	}
}

func runTTY(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	log := logger.Get()

	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	log.Info("tty started", slog.String("layout", cfg.Layout))
	fmt.Println("hancore tty — Esc toggles Hangul, Enter ends the line, Ctrl-C quits")

	state := ime.NewState()
	ed := &lineEditor{}
	hangulMode := true
	sebeolsik := cfg.Layout == "sebeolsik-390"

	for {
		ch, key, err := keyboard.GetKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}

		switch key {
		case keyboard.KeyCtrlC:
			ed.commit(state)
			ed.render()
			fmt.Println()
			return nil
		case keyboard.KeyEsc:
			ed.commit(state)
			hangulMode = !hangulMode
			log.Debug("mode toggled", slog.Bool("hangul", hangulMode))
		case keyboard.KeyEnter:
			ed.commit(state)
			ed.render()
			fmt.Println()
			ed.line = ed.line[:0]
		case keyboard.KeySpace:
			ed.commit(state)
			ed.line = append(ed.line, ' ')
		case keyboard.KeyBackspace, keyboard.KeyBackspace2:
			if cp, live := state.Backspace(); live {
				ed.preedit = cp
			} else if ed.preedit != 0 {
				ed.preedit = 0
			} else if len(ed.line) > 0 {
				ed.line = ed.line[:len(ed.line)-1]
			}
		default:
			if ch == 0 {
				continue
			}
			typeKey(state, ed, ch, hangulMode, sebeolsik)
		}
		ed.render()
	}
}

func typeKey(state *ime.State, ed *lineEditor, ch rune, hangulMode, sebeolsik bool) {
	if !hangulMode || ch > 126 {
		ed.commit(state)
		ed.line = append(ed.line, ch)
		return
	}
	if sebeolsik {
		r := state.ProcessKey3(byte(ch))
		if r.Action == ime.ActionNone {
			ed.commit(state)
			ed.line = append(ed.line, ch)
			return
		}
		ed.apply(r.Action, r.Prev, r.Current, r.Literal)
		return
	}
	idx := layout.Dubeolsik(byte(ch), false)
	if idx == 0 {
		ed.commit(state)
		ed.line = append(ed.line, ch)
		return
	}
	r := state.ProcessKey2(idx)
	ed.apply(r.Action, r.Prev, r.Current, 0)
}
