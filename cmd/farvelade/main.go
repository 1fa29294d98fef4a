package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avistisen/farvelade"
	"github.com/avistisen/farvelade/internal/card"
	"github.com/avistisen/farvelade/internal/color"
	"github.com/avistisen/farvelade/internal/format"
	"github.com/avistisen/farvelade/internal/names"
)

var (
	flagCard   string
	flagOut    string
	flagFormat string
	flagCheck  bool
	version    = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:     "farvelade",
	Short:   "Render sample cards and inspect colors from .card files",
	Version: version,
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Rasterize a .card file into an image",
	RunE:  runRender,
}

var convertCmd = &cobra.Command{
	Use:   "convert COLOR...",
	Short: "Print the representations of one or more colors",
	Long:  "Print hex, rgb, HSV, OKLab, XYZ, and luma for each argument. Arguments are hex literals or CSS color names.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConvert,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format .card files",
	Long:  "Format one or more .card files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	renderCmd.Flags().StringVar(&flagCard, "card", "sample.card", "path to card file")
	renderCmd.Flags().StringVar(&flagOut, "out", ".", "output directory")
	renderCmd.Flags().StringVar(&flagFormat, "format", "png", "image format (png or bmp)")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	c, err := farvelade.Load(flagCard)
	if err != nil {
		return err
	}

	name := c.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(flagCard), filepath.Ext(flagCard))
	}

	var encode func(*card.Card, *os.File) error
	switch flagFormat {
	case "png":
		encode = func(c *card.Card, f *os.File) error { return c.EncodePNG(f) }
	case "bmp":
		encode = func(c *card.Card, f *os.File) error { return c.EncodeBMP(f) }
	default:
		return fmt.Errorf("unknown format %q: want png or bmp", flagFormat)
	}

	outPath := filepath.Join(flagOut, name+"."+flagFormat)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	if err := encode(c, f); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %s\n", outPath)
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		c, err := parseColorArg(arg)
		if err != nil {
			return err
		}

		lab := color.NewOKLab(c)
		l, a, b := lab.Lab()
		h, s, v := c.HSV()
		x, y, z := c.XYZ()

		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", arg)
		fmt.Fprintf(cmd.OutOrStdout(), "  hex   %s\n", c.Hex())
		fmt.Fprintf(cmd.OutOrStdout(), "  rgb   %s\n", c.RGB())
		fmt.Fprintf(cmd.OutOrStdout(), "  hsv   %.4f %.4f %.4f\n", h, s, v)
		fmt.Fprintf(cmd.OutOrStdout(), "  oklab %.4f %.4f %.4f\n", l, a, b)
		fmt.Fprintf(cmd.OutOrStdout(), "  xyz   %.4f %.4f %.4f\n", x, y, z)
		fmt.Fprintf(cmd.OutOrStdout(), "  luma  %.4f\n", c.Luma())
	}
	return nil
}

func parseColorArg(arg string) (color.Color, error) {
	if c, err := color.ParseHex(arg); err == nil {
		return c, nil
	}
	c, err := color.FromName(arg, names.Lookup)
	if err != nil {
		return color.Color{}, fmt.Errorf("%q is neither a hex color nor a known color name", arg)
	}
	return c, nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted, err := format.Format(content)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
