package cmd

import (
	"github.com/spf13/cobra"

	rxlog "github.com/msto63/radix/core/log"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [ZAHL...|-]",
	Short: "Kodiert Dezimalzahlen in das Zielsystem",
	Long: `Kodiert eine oder mehrere Dezimalzahlen in das gewählte
Stellenwertsystem.

Mit "-" als einzigem Argument wird zeilenweise von stdin gelesen.
Fehlerhafte Zeilen werden auf stderr gemeldet und übersprungen; der
Exit-Status ist dann 1.

Beispiele:
  radix encode 142456.25 -f ,.4f
  radix encode 255 -b hex
  radix encode -- -144
  seq 1 100 | radix encode -b 12 -`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	r, err := buildRadix()
	if err != nil {
		return err
	}

	logger.Debug("Zielsystem aufgebaut",
		rxlog.Int("basis", r.Base()), rxlog.String("format", resolveFormat()))

	return runPipeline(args, func(input string) (string, error) {
		return r.Encode(input, "")
	})
}
