// Package main provides the multiwallet CLI tool for deriving coin wallets from a seed phrase.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/complex-gh/multiwallet"
	"github.com/complex-gh/multiwallet/internal/log"
	"github.com/kelseyhightower/envconfig"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	maxWidth = 72
)

// envConfig holds the MULTIWALLET_* environment variables. Flags given on
// the command line take precedence.
type envConfig struct {
	Mnemonic   string `envconfig:"MNEMONIC"`
	Passphrase string `envconfig:"PASSPHRASE"`
	Language   string `envconfig:"LANGUAGE" default:"en"`
	Words      int    `envconfig:"WORDS" default:"12"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"warn"`
}

var (
	baseStyle  = lipgloss.NewStyle().Margin(0, 0, 1, 2) //nolint:mnd
	red        = lipgloss.Color(completeColor("#FF4444", "196", "9"))
	errorStyle = baseStyle.
			Foreground(red).
			Background(lipgloss.AdaptiveColor{Light: completeColor("#FFEBEB", "255", "7"), Dark: completeColor("#2B1A1A", "235", "8")}).
			Padding(1, 2) //nolint:mnd

	language   string
	wordCount  int
	passphrase string
	coinsStr   string
	jsonOutput bool
	prompt     bool
	logLevel   string

	envMnemonic string

	rootCmd = &cobra.Command{
		Use:   "multiwallet [mnemonic words...]",
		Short: "Derive BTC, ETH, ATOM, SOL, AVAX, LUNA and NEAR wallets from a seed phrase",
		Long: `Derive addresses and private keys for several blockchains from one BIP39 seed phrase.

The seed phrase is read from the arguments, from stdin, from a hidden prompt
(--prompt) or from MULTIWALLET_MNEMONIC, in that order. Without one, a new
seed phrase is generated and printed along with the wallets.

Supported coins: BTC, ETH, ATOM-Cosmos, SOL, AVAX, LUNA, NEAR.

SECURITY TIP: Prefer --prompt or stdin over passing the seed phrase as
arguments, which end up in your shell history and process list.`,
		Example: `  multiwallet
  multiwallet --prompt
  multiwallet --prompt --coins BTC,ETH
  cat seed.txt | multiwallet --json
  multiwallet --words 24 --language ja
  MULTIWALLET_PASSPHRASE=secret multiwallet --prompt --coins SOL`,
		SilenceUsage:      true,
		PersistentPreRunE: applyEnv,
		RunE: func(cmd *cobra.Command, args []string) error {
			coins, err := parseCoins(coinsStr)
			if err != nil {
				return formatError(err)
			}

			mnemonic, err := readMnemonic(args)
			if err != nil {
				return formatError(err)
			}

			w, err := multiwallet.New(mnemonic,
				multiwallet.WithPassphrase(passphrase),
				multiwallet.WithLanguage(language),
				multiwallet.WithWordCount(wordCount),
				multiwallet.WithLogger(log.Wallet),
			)
			if err != nil {
				return formatError(err)
			}

			records := make([]*multiwallet.Record, 0, len(coins))
			for _, coin := range coins {
				rec, err := w.Derive(coin)
				if err != nil {
					return formatError(err)
				}
				records = append(records, rec)
			}

			if jsonOutput {
				return writeJSON(os.Stdout, records)
			}
			writeRecords(os.Stdout, w.Mnemonic(), mnemonic == "", records)
			return nil
		},
	}

	coinsCmd = &cobra.Command{
		Use:          "coins",
		Short:        "List supported coins and their derivation paths",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			writeCoinTable(os.Stdout)
			return nil
		},
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Print a new random seed phrase",
		Example: `  multiwallet generate
  multiwallet generate --words 24 --language fr`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			mnemonic, err := multiwallet.GenerateMnemonic(wordCount, language)
			if err != nil {
				return formatError(err)
			}
			fmt.Println(mnemonic)
			return nil
		},
	}

	manCmd = &cobra.Command{
		Use:          "man",
		Args:         cobra.NoArgs,
		Short:        "generate man pages",
		Hidden:       true,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			manPage, err := mcobra.NewManPage(1, rootCmd)
			if err != nil {
				//nolint: wrapcheck
				return err
			}
			manPage = manPage.WithSection("Copyright", "(C) 2025-2026 complex.\n"+
				"Released under MIT license.")
			fmt.Println(manPage.Build(roff.NewDocument()))
			return nil
		},
	}

	// completionCmd generates shell completion scripts for bash, zsh, fish, and powershell.
	completionCmd = &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for multiwallet.

To load completions:

Bash:
  $ source <(multiwallet completion bash)

Zsh:
  $ multiwallet completion zsh > "${fpath[1]}/_multiwallet"

Fish:
  $ multiwallet completion fish | source

PowerShell:
  PS> multiwallet completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		SilenceUsage:          true,
		RunE: func(_ *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unknown shell: %s", args[0])
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&language, "language", "l", multiwallet.DefaultLanguage, "Seed phrase language")
	rootCmd.PersistentFlags().IntVarP(&wordCount, "words", "w", multiwallet.DefaultWordCount, "Word count of generated seed phrases (12, 15, 18, 21 or 24)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level written to stderr (debug, info, warn, error, off)")
	rootCmd.Flags().StringVarP(&coinsStr, "coins", "c", "", "Coins to derive (comma-separated: BTC,ETH,ATOM-Cosmos,SOL,AVAX,LUNA,NEAR)")
	rootCmd.Flags().StringVar(&passphrase, "passphrase", "", "BIP39 passphrase")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print wallets as JSON")
	rootCmd.Flags().BoolVar(&prompt, "prompt", false, "Read the seed phrase from a hidden prompt")
	rootCmd.AddCommand(coinsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(manCmd)
	rootCmd.AddCommand(completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// applyEnv fills every flag that was not set on the command line from the
// MULTIWALLET_* environment and initializes logging.
func applyEnv(cmd *cobra.Command, _ []string) error {
	var cfg envConfig
	if err := envconfig.Process("multiwallet", &cfg); err != nil {
		return fmt.Errorf("could not read environment: %w", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("language") {
		language = cfg.Language
	}
	if !flags.Changed("words") {
		wordCount = cfg.Words
	}
	if !flags.Changed("log-level") {
		logLevel = cfg.LogLevel
	}
	if flags.Lookup("passphrase") != nil && !flags.Changed("passphrase") {
		passphrase = cfg.Passphrase
	}
	envMnemonic = cfg.Mnemonic

	log.Init(logLevel, jsonOutput)

	if _, err := multiwallet.Wordlist(language); err != nil {
		return formatError(err)
	}
	return nil
}

// parseCoins parses a comma-separated list of coin identifiers. An empty
// list selects every coin.
func parseCoins(s string) ([]multiwallet.Coin, error) {
	if strings.TrimSpace(s) == "" {
		return multiwallet.Coins(), nil
	}

	seen := map[multiwallet.Coin]bool{}
	var coins []multiwallet.Coin
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		coin, err := multiwallet.ParseCoin(part)
		if err != nil {
			return nil, fmt.Errorf("invalid coin list: %w", err)
		}
		if !seen[coin] {
			seen[coin] = true
			coins = append(coins, coin)
		}
	}

	if len(coins) == 0 {
		return multiwallet.Coins(), nil
	}
	return coins, nil
}

// readMnemonic returns the seed phrase from the arguments, piped stdin, the
// hidden prompt or the environment. An empty result means "generate one".
func readMnemonic(args []string) (string, error) {
	if len(args) > 0 {
		log.CLI.Warn().Msg("seed phrase passed as arguments; it may be saved in your shell history")
		return strings.Join(args, " "), nil
	}

	if fi, err := os.Stdin.Stat(); err == nil && (fi.Mode()&os.ModeNamedPipe) != 0 {
		bts, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("could not read seed phrase from stdin: %w", err)
		}
		return strings.TrimSpace(string(bts)), nil
	}

	if prompt {
		bts, err := readPassword("Enter the seed phrase: ")
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(bts)), nil
	}

	return envMnemonic, nil
}

func readPassword(msg string) ([]byte, error) {
	_, _ = fmt.Fprint(os.Stderr, msg)
	t, err := tty.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open tty: %w", err)
	}
	defer t.Close()                                     //nolint: errcheck
	pass, err := term.ReadPassword(int(t.Input().Fd())) //nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("could not read seed phrase: %w", err)
	}
	return pass, nil
}

// writeRecords prints the seed phrase (only when it was generated here)
// followed by one block per coin.
func writeRecords(w io.Writer, mnemonic string, generated bool, records []*multiwallet.Record) {
	if generated {
		fmt.Fprintf(w, "[%d word seed phrase]\n", len(strings.Fields(mnemonic)))
		fmt.Fprintln(w)
		fmt.Fprintln(w, mnemonic)
		fmt.Fprintln(w)
	}

	for i, rec := range records {
		fmt.Fprintf(w, "[%s wallet]\n", rec.CoinName)
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s (address)\n", rec.Address)
		if rec.Public != "" {
			fmt.Fprintf(w, "%s (public key)\n", rec.Public)
		}
		fmt.Fprintf(w, "%s (private key)\n", rec.Private)
		if i < len(records)-1 {
			fmt.Fprintln(w)
		}
	}
}

func writeJSON(w io.Writer, records []*multiwallet.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("could not encode wallets: %w", err)
	}
	return nil
}

func writeCoinTable(w io.Writer) {
	for _, coin := range multiwallet.Coins() {
		fmt.Fprintf(w, "%-12s %-11s %-18s %s\n", coin.String(), coin.Name(), coin.Path(), coin.Curve())
	}
}

func getWidth(maxw int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint: gosec
	if err != nil || w > maxw {
		return maxWidth
	}
	return w
}

func renderBlock(w io.Writer, s lipgloss.Style, width int, str string) {
	_, _ = io.WriteString(w, s.Width(width).Render(str))
	_, _ = io.WriteString(w, "\n")
}

// formatError renders err in the error style when stdout is a terminal and
// returns an error carrying a short, user-facing message.
func formatError(err error) error {
	msg := userMessage(err)
	if isatty.IsTerminal(os.Stdout.Fd()) {
		b := strings.Builder{}
		b.WriteRune('\n')
		renderBlock(&b, errorStyle, getWidth(maxWidth), msg)
		fmt.Print(b.String())
	}
	log.CLI.Debug().Err(err).Msg("command failed")
	return errors.New(msg)
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, multiwallet.ErrInvalidMnemonic):
		return "the seed phrase is not valid: check the words, their order and the --language flag"
	case errors.Is(err, multiwallet.ErrInvalidWordCount):
		return fmt.Sprintf("cannot generate a %d word seed phrase: use 12, 15, 18, 21 or 24", wordCount)
	case errors.Is(err, multiwallet.ErrUnsupportedLanguage):
		return fmt.Sprintf("language %q has no BIP39 wordlist", language)
	default:
		return err.Error()
	}
}

func completeColor(truecolor, ansi256, ansi string) string {
	//nolint: exhaustive
	switch lipgloss.ColorProfile() {
	case termenv.TrueColor:
		return truecolor
	case termenv.ANSI256:
		return ansi256
	}
	return ansi
}
