// Command proofedit is the local single-user terminal client: it runs a
// bubbletea file picker to choose a document, then puts the terminal in
// raw mode (grounded on cmd/debug-tui/main.go's golang.org/x/term usage)
// and drives the shared editor core directly against stdin/stdout until
// the user exits.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/cubic-knight/proofedit/internal/autosave"
	"github.com/cubic-knight/proofedit/internal/config"
	"github.com/cubic-knight/proofedit/internal/editor"
	"github.com/cubic-knight/proofedit/internal/filepicker"
	"github.com/cubic-knight/proofedit/internal/library"
	"github.com/cubic-knight/proofedit/internal/obs"
	"github.com/cubic-knight/proofedit/internal/update"
)

func main() {
	configPath := flag.String("config", "data/proofedit.json", "path to proofedit config JSON")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()
	obs.DebugEnabled = *debug

	cfg, err := config.LoadProofeditConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "proofedit: %v\n", err)
		os.Exit(1)
	}

	cat, err := library.Load(cfg.LibraryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "proofedit: loading library: %v\n", err)
		os.Exit(1)
	}
	lib, refs := &cat.Data, cat.References

	picker, err := filepicker.New(cfg.DocsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "proofedit: %v\n", err)
		os.Exit(1)
	}
	p := tea.NewProgram(picker, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "proofedit: %v\n", err)
		os.Exit(1)
	}
	picked, ok := finalModel.(*filepicker.Model)
	if !ok || picked.Selected == "" {
		return
	}

	data := editor.NewData(lib, refs)
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		cols, rows = cfg.Cols, cfg.Rows
	}
	data.Resize(cols, rows)

	fg, err := editor.Open(picked.Selected, lib, refs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "proofedit: opening %s: %v\n", picked.Selected, err)
		os.Exit(1)
	}
	data.File = fg
	data.State = editor.StateEditingFile

	flusher, err := autosave.New(cfg.AutosaveSchedule, func() (string, bool, []string, bool) {
		return data.Snapshot()
	})
	if err == nil {
		flusher.Start()
		defer flusher.Stop()
	}

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "proofedit: %v\n", err)
		os.Exit(1)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	input := editor.NewInputHandler(os.Stdin)
	runLoop(input, data)
}

func runLoop(input *editor.InputHandler, data *editor.Data) {
	redraw(data)
	for data.State != editor.StateShouldExit {
		key, err := input.ReadKey()
		if err != nil {
			return
		}
		if key == editor.KeyEsc && data.State == editor.StateInMenu {
			return
		}
		data.HandleKey(key)
		redraw(data)
	}
}

func redraw(data *editor.Data) {
	fmt.Print("\033[2J\033[H")
	if data.File == nil {
		return
	}
	for _, line := range update.Render(data.File.Lines) {
		fmt.Printf("%s\r\n", line)
	}
	fmt.Printf("\033[%d;%dH", data.File.Cursor.Row, data.File.Cursor.Col+data.Indent)
}
