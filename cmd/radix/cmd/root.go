package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/msto63/radix"
	rxconfig "github.com/msto63/radix/core/config"
	rxerror "github.com/msto63/radix/core/error"
	rxlog "github.com/msto63/radix/core/log"
	rxstringx "github.com/msto63/radix/utils/stringx"
)

const defaultConfigFile = "./configs/config.toml"

var (
	cfgFile    string
	verbose    bool
	logFormat  string
	baseFlag   string
	digitsFlag string
	formatFlag string
	sepFlag    string
	negFlag    string
	posFlag    string
	tsepFlag   string
	expFlag    string

	appConfig *rxconfig.Config
	logger    = rxlog.GetDefault()
)

var rootCmd = &cobra.Command{
	Use:   "radix",
	Short: "Zahlenkonvertierung für beliebige Stellenwertsysteme",
	Long: `radix konvertiert Zahlen zwischen dem Dezimalsystem und beliebigen
Stellenwertsystemen mit 2 bis 62 Ziffern, in beide Richtungen und mit
voller Kontrolle über Formatierung, Gruppierung und Symbole.

Die Umwandlung arbeitet exakt auf rationalen Zahlen: Brüche, die im
Zielsystem abbrechen, erscheinen ohne Rundungsrauschen (ein Drittel
im Dutzendsystem ist genau 0;4).

Beispiele:
  radix encode 142456.25 -f ,.4f       # 6X,534;3000
  radix encode 255 -b hex              # FF
  radix decode "6X,534;3000"           # 142456.25
  seq 1 20 | radix encode -b 12 -      # zeilenweise von stdin
  radix interactive                    # interaktiver Konverter
  radix demo                           # Dutzendsystem-Demo`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config-Datei (default: ./configs/config.toml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	pf.StringVar(&logFormat, "log-format", "", "Log-Format (json, text, console, logfmt)")
	pf.StringVarP(&baseFlag, "base", "b", "", "Zielsystem: Basis 2-62 oder Preset-Name (default: dozenal)")
	pf.StringVarP(&digitsFlag, "digits", "g", "", "Expliziter Ziffernvorrat, gewinnt gegen --base")
	pf.StringVarP(&formatFlag, "format", "f", "", "Format-Spezifikation oder Anzahl Nachkommastellen (z.B. ,.4f oder 4)")
	pf.StringVar(&sepFlag, "sep", "", "Bruchtrennzeichen")
	pf.StringVar(&negFlag, "neg", "", "Negatives Vorzeichen")
	pf.StringVar(&posFlag, "pos", "", "Positives Vorzeichen")
	pf.StringVar(&tsepFlag, "tsep", "", "Gruppierungszeichen")
	pf.StringVar(&expFlag, "exp", "", "Exponentenmarker")
}

func setup(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	return initLogging()
}

// loadConfig reads the config file named by --config, or the default file
// when it exists. A missing default file is not an error.
func loadConfig() error {
	path := cfgFile
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return nil
		}
		path = defaultConfigFile
	}

	cfg, err := rxconfig.Load(path)
	if err != nil {
		return fmt.Errorf("Config-Datei %s: %w", path, err)
	}
	appConfig = cfg
	return nil
}

func initLogging() error {
	level := rxlog.LevelWarn
	if lvl, err := rxlog.ParseLevel(cfgString("log.level")); err == nil {
		level = lvl
	}
	if verbose {
		level = rxlog.LevelDebug
	}

	format := rxlog.FormatConsole
	if name := rxstringx.FirstNonBlank(logFormat, cfgString("log.format")); name != "" {
		f, err := rxlog.ParseFormat(name)
		if err != nil {
			return err
		}
		format = f
	}

	logger = rxlog.New().
		WithOutput(os.Stderr).
		WithLevel(level).
		WithFormat(format).
		WithName("radix")
	rxlog.SetDefault(logger)
	return nil
}

// buildRadix resolves the target numeral system, with flags winning over
// the config file and the config file winning over built-in defaults.
func buildRadix() (*radix.Radix, error) {
	opts := radix.Options{
		Sep:    overrideRune(sepFlag, "radix.symbols.sep"),
		Neg:    overrideRune(negFlag, "radix.symbols.neg"),
		Pos:    overrideRune(posFlag, "radix.symbols.pos"),
		Group:  overrideRune(tsepFlag, "radix.symbols.tsep"),
		Exp:    overrideRune(expFlag, "radix.symbols.exp"),
		Format: resolveFormat(),
	}

	if digits := rxstringx.FirstNonBlank(digitsFlag, cfgString("radix.digits")); digits != "" {
		return radix.NewWithOptions(digits, opts)
	}

	base := rxstringx.FirstNonBlank(baseFlag, cfgString("radix.base"), "dozenal")
	if n, err := strconv.Atoi(base); err == nil {
		byBase, err := radix.ByBase(n)
		if err != nil {
			return nil, err
		}
		return radix.NewWithOptions(byBase.Alphabet().String(), opts)
	}
	return radix.PresetWithOptions(base, opts)
}

// resolveFormat returns the effective format spec. A bare non-negative
// integer N is shorthand for fixed-point with N fraction digits.
func resolveFormat() string {
	f := rxstringx.FirstNonBlank(formatFlag, cfgString("format.default"))
	if f == "" {
		return ""
	}
	if n, err := strconv.Atoi(f); err == nil && n >= 0 {
		return fmt.Sprintf(".%df", n)
	}
	return f
}

func overrideRune(flagValue, cfgKey string) rune {
	if flagValue != "" {
		r, _ := utf8.DecodeRuneInString(flagValue)
		return r
	}
	return cfgRune(cfgKey)
}

func cfgString(key string) string {
	if appConfig == nil {
		return ""
	}
	return appConfig.GetString(key)
}

func cfgRune(key string) rune {
	if appConfig == nil {
		return 0
	}
	return appConfig.GetRune(key)
}

// runPipeline converts arguments one by one, or stdin line by line when
// the sole argument is "-". Failed inputs are reported on stderr and the
// stream continues.
func runPipeline(args []string, convert func(string) (string, error)) error {
	failures := 0

	process := func(input string) {
		out, err := convert(input)
		if err != nil {
			logger.Debug("Konvertierung fehlgeschlagen",
				rxlog.String("eingabe", input), rxlog.Err(err))
			printError(input, err)
			failures++
			return
		}
		fmt.Println(out)
	}

	if len(args) == 1 && args[0] == "-" {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			process(line)
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	} else {
		for _, arg := range args {
			process(arg)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d Eingabe(n) fehlgeschlagen", failures)
	}
	return nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}

// ExitStatus maps the error returned by Execute to a process exit status.
// Structured engine errors follow the sysexits mapping of their code,
// everything else exits 1.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	if code := rxerror.GetCode(err); code != rxerror.CodeUnknown {
		return code.ExitStatus()
	}
	return 1
}
