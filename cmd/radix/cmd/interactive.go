package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	rxlog "github.com/msto63/radix/core/log"
	"github.com/msto63/radix/internal/tui"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"repl"},
	Short:   "Startet den interaktiven Konverter",
	Long: `Startet den interaktiven Konverter als Terminal-Oberfläche.

Jede eingegebene Zahl wird in das Zielsystem kodiert. Eingaben, die
nur im Zielsystem lesbar sind, werden automatisch dekodiert; mit Tab
lässt sich die Richtung fest umschalten.

Navigation:
  Enter     - Wert konvertieren
  Tab       - Richtung wechseln (kodieren/dekodieren)
  Ctrl+L    - Verlauf leeren
  Ctrl+C    - Beenden`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	r, err := buildRadix()
	if err != nil {
		return err
	}

	audit, closeAudit, err := auditLogger()
	if err != nil {
		return err
	}
	defer closeAudit()

	p := tea.NewProgram(
		tui.NewConverter(r, audit),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		printError("interaktiver Modus", err)
		return err
	}
	return nil
}

// auditLogger returns the logger that records the conversion trail of the
// interactive views. With log.file configured the trail goes to that file,
// otherwise it stays on the stderr logger, which the alternate screen
// hides until the program exits.
func auditLogger() (*rxlog.Logger, func(), error) {
	path := cfgString("log.file")
	if path == "" {
		return logger, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("Log-Datei %s: %w", path, err)
	}

	l := rxlog.New().
		WithOutput(f).
		WithLevel(rxlog.LevelTrace).
		WithFormat(rxlog.FormatLogfmt).
		WithName("radix.tui")
	return l, func() { f.Close() }, nil
}
