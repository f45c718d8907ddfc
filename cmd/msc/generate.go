package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/viant/setcover/instance"
)

type generateOptions struct {
	padded bool
	dir    string
	seed   uint64
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}
	generateCmd := &cobra.Command{
		Use:   "generate <elements> <sets>",
		Short: "Write a random coverable instance",
		Long: `The msc generate command writes a random instance named
        s-c[-padded]-<elements>-<sets> into --dir. Every set draws up to 10
        random elements; padded instances end with one singleton per element.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateFunc(cmd, args, opts)
		},
	}

	generateCmd.Flags().BoolVar(&opts.padded, "padded", false, "Pad with one singleton set per element")
	generateCmd.Flags().StringVarP(&opts.dir, "dir", "d", filepath.Join("testcases", "custom"), "Output directory")
	generateCmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Random seed (0 picks one from the clock)")
	return generateCmd
}

func generateFunc(cmd *cobra.Command, args []string, opts *generateOptions) error {
	elements, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("elements: %w", err)
	}
	sets, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("sets: %w", err)
	}
	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	inst, err := instance.Generate(rand.New(rand.NewPCG(seed, seed>>1)), elements, sets, opts.padded)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.dir, 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	path := filepath.Join(opts.dir, instance.Name(elements, sets, opts.padded)+".txt")
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create instance file")
	}
	if err := instance.Encode(f, inst); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.WithFields(log.Fields{"seed": seed, "path": path}).Debug("instance generated")
	_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
	return err
}
