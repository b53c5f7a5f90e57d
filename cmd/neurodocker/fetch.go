package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yarikoptic/neurodocker/internal/fetch"
	"github.com/yarikoptic/neurodocker/internal/matlab"
	"github.com/yarikoptic/neurodocker/internal/spm"
)

func newFetchCmd() *cobra.Command {
	var (
		version string
		mlVer   string
		destDir string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the MCR and SPM installer archives to a local cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(spm.SupportedVersions, version) {
				return fmt.Errorf("%w: %q", spm.ErrUnsupportedVersion, version)
			}
			release, err := matlab.ParseRelease(mlVer)
			if err != nil {
				return err
			}

			urls := []string{
				spm.MCRURL(release),
				spm.SPMURL(version, release),
			}
			return fetch.Fetch(urls, destDir, workers)
		},
	}

	cmd.Flags().StringVar(&version, "version", "12", "SPM version")
	cmd.Flags().StringVar(&mlVer, "matlab-version", "R2017a",
		"MATLAB release the SPM build targets")
	cmd.Flags().StringVarP(&destDir, "dest", "d", "installers",
		"directory to download the archives into")
	cmd.Flags().IntVar(&workers, "workers", 2, "number of concurrent downloads")
	return cmd
}
