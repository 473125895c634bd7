package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/text/transform"

	"hancore/pkg/hangul"
	"hancore/pkg/layout"
)

var decomposeCmd = &cobra.Command{
	Use:   "decompose [text...]",
	Short: "Expand Hangul syllables into compatibility jamo",
	Long: `Decompose rewrites text, replacing every precomposed syllable with
its 초성/중성/종성 compatibility jamo. With no arguments it filters stdin.`,
	RunE: runDecompose,
}

var composeCmd = &cobra.Command{
	Use:   "compose [text...]",
	Short: "Greedily fuse jamo runs back into syllables",
	Long: `Compose scans text left to right and fuses consonant+vowel(+final)
jamo runs into precomposed syllables. The lookahead is a single token, so
the result is not guaranteed to invert decompose for arbitrary input.`,
	RunE: runCompose,
}

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List the built-in keyboard layouts",
	Run: func(cmd *cobra.Command, args []string) {
		lines := lo.Map(layout.Names(), func(name string, _ int) string {
			return "  " + name
		})
		fmt.Println(strings.Join(lines, "\n"))
	},
}

func init() {
	rootCmd.AddCommand(decomposeCmd)
	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(layoutsCmd)
}

func runDecompose(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		out, _, err := transform.String(hangul.NewDecomposer(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}
	reader := transform.NewReader(os.Stdin, hangul.NewDecomposer())
	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()
	if _, err := writer.ReadFrom(reader); err != nil {
		return fmt.Errorf("decompose stdin: %w", err)
	}
	return nil
}

func runCompose(cmd *cobra.Command, args []string) error {
	compose := func(line string) string {
		return string(hangul.ComposeString([]rune(line)))
	}
	if len(args) > 0 {
		fmt.Println(compose(strings.Join(args, " ")))
		return nil
	}
	scanner := bufio.NewScanner(os.Stdin)
	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()
	for scanner.Scan() {
		fmt.Fprintln(writer, compose(scanner.Text()))
	}
	return scanner.Err()
}
