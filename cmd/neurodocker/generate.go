package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yarikoptic/neurodocker/internal/pkgmanager"
	"github.com/yarikoptic/neurodocker/internal/specfile"
	"github.com/yarikoptic/neurodocker/internal/spm"
)

type generateOptions struct {
	specPath    string
	output      string
	saveSpec    string
	version     string
	matlab      string
	pkgManager  pkgmanager.Manager
	noCheckURLs bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{pkgManager: pkgmanager.Apt}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the MCR and SPM install instructions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}
	addGenerateFlags(cmd.Flags(), opts)
	return cmd
}

func addGenerateFlags(fs *pflag.FlagSet, opts *generateOptions) {
	fs.StringVarP(&opts.specPath, "file", "f", "",
		"YAML spec file (takes precedence over the flag-based configuration)")
	fs.StringVarP(&opts.output, "output", "o", "",
		"write the instructions to a file instead of stdout")
	fs.StringVar(&opts.saveSpec, "save-spec", "",
		"write the resolved spec as YAML to this path")
	fs.StringVar(&opts.version, "version", "12", "SPM version")
	fs.StringVar(&opts.matlab, "matlab-version", "R2017a",
		"MATLAB release the SPM build targets")
	fs.Var(&opts.pkgManager, "pkg-manager", "Linux package manager (apt or yum)")
	fs.BoolVar(&opts.noCheckURLs, "no-check-urls", false,
		"skip the advisory download URL checks")
}

func resolveSpec(opts *generateOptions) (*specfile.Spec, error) {
	if opts.specPath != "" {
		return specfile.Load(opts.specPath)
	}
	check := !opts.noCheckURLs
	return &specfile.Spec{
		PkgManager: opts.pkgManager.String(),
		CheckURLs:  &check,
		SPM: specfile.SPMSpec{
			Version:       opts.version,
			MatlabVersion: opts.matlab,
		},
	}, nil
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	spec, err := resolveSpec(opts)
	if err != nil {
		return err
	}

	s, err := spm.New(spec.SPM.Version, spec.SPM.MatlabVersion,
		pkgmanager.Manager(spec.PkgManager),
		spm.WithURLCheck(spec.URLCheckEnabled()))
	if err != nil {
		return err
	}

	if opts.saveSpec != "" {
		if err := specfile.Save(spec, opts.saveSpec); err != nil {
			return err
		}
	}

	if opts.output != "" {
		return os.WriteFile(opts.output, []byte(s.Cmd+"\n"), 0644)
	}
	fmt.Fprintln(cmd.OutOrStdout(), s.Cmd)
	return nil
}
