package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/docforge/convertd/errors"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a document through the engine",
	Long: `Convert stages the given document, runs it through the conversion engine's
normalized binary representation, and writes the result next to the input
(or into --out).

Without --to, the normalized binary itself is produced. With --to, the
document is converted onward into the target format.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetString("to")
		outDir, _ := cmd.Flags().GetString("out")
		if outDir == "" {
			outDir = filepath.Dir(args[0])
		}
		return runConvert(cmd.Context(), args[0], target, outDir)
	},
}

func init() {
	convertCmd.Flags().String("to", "", "target extension (e.g. pdf, docx); empty keeps the binary form")
	convertCmd.Flags().String("out", "", "output directory (default: the input's directory)")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(ctx context.Context, path, target, outDir string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	s, err := newSession(ctx, outDir)
	if err != nil {
		return err
	}
	defer s.close(ctx)

	name := filepath.Base(path)
	res, err := s.orch.DocumentToBinary(ctx, name, data)
	if err != nil {
		return err
	}

	if target == "" {
		out := filepath.Join(outDir, res.OutputFileName)
		if err := os.WriteFile(out, res.Payload, 0o644); err != nil {
			return err
		}
		fmt.Printf("%s (%s, %d bytes)\n", out, res.Category, len(res.Payload))
		printMedia(res.Media)
		return nil
	}

	final, err := s.orch.BinaryToDocument(ctx, res.Payload, name, target)
	if errors.IsCancelled(err) {
		fmt.Println("save cancelled")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s, %d bytes)\n",
		filepath.Join(outDir, final.OutputFileName), final.Category, len(final.Payload))
	printMedia(res.Media)
	return nil
}

func printMedia(media map[string][]byte) {
	if len(media) == 0 {
		return
	}
	keys := make([]string, 0, len(media))
	for k := range media {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Printf("extracted %d media asset(s):\n", len(keys))
	for _, k := range keys {
		fmt.Printf("  %s (%d bytes)\n", k, len(media[k]))
	}
}
