// Package generate implements the generate subcommand: it turns a deck
// description into presentation markup fragments on disk.
package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"pml/config"
	"pml/deck"
	"pml/oxml"
	"pml/state"
	"pml/utils/debug"
)

// Run builds every fragment of the deck description given on the command
// line and writes them to the output directory.
func Run(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("no deck description specified")
	}
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	src := cmd.Args().Get(0)
	env.Log.Info("Loading deck description", zap.String("file", src))

	d, err := deck.Load(src)
	if err != nil {
		return fmt.Errorf("unable to load deck description: %w", err)
	}
	if data, err := os.ReadFile(src); err == nil {
		env.Rpt.StoreData(filepath.Base(src), data)
	}

	frags, err := deck.Build(d, env.Cfg.Fragments.TableStyleID)
	if err != nil {
		return fmt.Errorf("unable to build fragments: %w", err)
	}

	outDir := cmd.String("output")
	if len(outDir) == 0 {
		outDir = env.Cfg.Fragments.OutputDir
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("unable to create output directory '%s': %w", outDir, err)
	}

	opts := oxml.SerializeOptions{
		Pretty:      env.Cfg.Fragments.Pretty || cmd.Bool("pretty"),
		Declaration: env.Cfg.Fragments.XMLDeclaration,
	}

	for _, f := range frags {
		env.Log.Debug("Fragment tree", zap.String("name", f.Name), zap.String("tree", debug.DumpElement(f.Element)))

		xml, err := oxml.Serialize(f.Element, opts)
		if err != nil {
			return fmt.Errorf("unable to serialize fragment '%s': %w", f.Name, err)
		}

		fname := filepath.Join(outDir, config.CleanFileName(f.Name)+".xml")
		if err := os.WriteFile(fname, []byte(xml), 0644); err != nil {
			return fmt.Errorf("unable to write fragment '%s': %w", f.Name, err)
		}
		env.Rpt.Store(f.Name+".xml", fname)
		env.Log.Info("Fragment written", zap.String("file", fname))
	}

	env.Log.Info("Deck processed", zap.Int("fragments", len(frags)), zap.String("output", outDir))
	return nil
}
