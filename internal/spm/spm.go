// Package spm generates the Dockerfile instructions that install standalone
// SPM on top of the MATLAB Compiler Runtime (MCR). The standalone build runs
// without a MATLAB license.
//
// Project website: http://www.fil.ion.ucl.ac.uk/spm/
package spm

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/yarikoptic/neurodocker/internal/dockerfile"
	"github.com/yarikoptic/neurodocker/internal/matlab"
	"github.com/yarikoptic/neurodocker/internal/pkgmanager"
	"github.com/yarikoptic/neurodocker/internal/utils/logger"
	"github.com/yarikoptic/neurodocker/internal/utils/network"
)

// ErrUnsupportedVersion is returned for SPM versions outside SupportedVersions.
var ErrUnsupportedVersion = errors.New("unsupported SPM version")

// SupportedVersions lists the SPM major versions this generator can install.
var SupportedVersions = []string{"12"}

const (
	mcrBaseURL = "https://www.mathworks.com/supportfiles/"

	// MathWorks moved the installers under deployment_files after R2013a;
	// earlier releases stay on the MCR_Runtime layout.
	mcrDeploymentPath = "downloads/%[1]s/deployment_files/%[1]s/installers/glnxa64/MCR_%[1]s_glnxa64_installer.zip"
	mcrRuntimePath    = "MCR_Runtime/%[1]s/MCR_%[1]s_glnxa64_installer.zip"

	spmURLTemplate = "http://www.fil.ion.ucl.ac.uk/spm/download/restricted/utopia/dev/spm%s_latest_Linux_%s.zip"
)

var mcrPathCutover = matlab.Release{Year: 2013, Suffix: 'a'}

// requiredLibraries must be installed before the MCR; without them SPM
// encounters a segmentation fault on startup.
var requiredLibraries = map[pkgmanager.Manager]string{
	pkgmanager.Apt: "libxext6 libxt6",
	pkgmanager.Yum: "libXext.x86_64 libXt.x86_64",
}

// SPM holds one immutable install configuration together with the Dockerfile
// instructions derived from it.
type SPM struct {
	Version       string
	MatlabRelease matlab.Release
	PkgManager    pkgmanager.Manager
	MCRURL        string
	SPMURL        string

	// Instructions are the composed chunks in emission order; Cmd is their
	// newline join, ready to drop into a Dockerfile.
	Instructions []string
	Cmd          string
}

type config struct {
	checkURLs bool
	checker   network.Checker
	log       *zap.SugaredLogger
}

// Option adjusts how New builds the instructions.
type Option func(*config)

// WithURLCheck enables or disables the advisory download-URL probes.
// Probes are on by default.
func WithURLCheck(enabled bool) Option {
	return func(c *config) { c.checkURLs = enabled }
}

// WithChecker substitutes the URL reachability probe. Tests use this to stay
// offline.
func WithChecker(checker network.Checker) Option {
	return func(c *config) { c.checker = checker }
}

// WithLogger routes warnings to l instead of the process-wide logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *config) { c.log = l }
}

// New validates the configuration and composes the full instruction block.
// Unreachable download URLs only log warnings: availability is best verified
// at image-build time, not at generation time.
func New(version, matlabVersion string, mgr pkgmanager.Manager, opts ...Option) (*SPM, error) {
	cfg := config{checkURLs: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = logger.Logger()
	}
	if cfg.checker == nil {
		checker := network.NewHTTPChecker()
		checker.Log = cfg.log
		cfg.checker = checker
	}

	if !slices.Contains(SupportedVersions, version) {
		return nil, fmt.Errorf("%w: %q (supported: %s)",
			ErrUnsupportedVersion, version, strings.Join(SupportedVersions, ", "))
	}
	release, err := matlab.ParseRelease(matlabVersion)
	if err != nil {
		return nil, err
	}
	cmds, err := pkgmanager.ManagerCommands(mgr)
	if err != nil {
		return nil, err
	}

	s := &SPM{
		Version:       version,
		MatlabRelease: release,
		PkgManager:    mgr,
		MCRURL:        MCRURL(release),
		SPMURL:        SPMURL(version, release),
	}

	if cfg.checkURLs {
		for _, url := range []string{s.MCRURL, s.SPMURL} {
			cfg.checker.URLReachable(url)
		}
	}

	s.Instructions = []string{
		s.header(),
		s.installLibraries(cmds),
		"",
		s.installMCR(),
		"",
		s.installSPM(),
	}
	s.Cmd = strings.Join(s.Instructions, "\n")
	return s, nil
}

// MCRURL returns the MCR installer URL for a release.
func MCRURL(r matlab.Release) string {
	path := mcrRuntimePath
	if r.After(mcrPathCutover) {
		path = mcrDeploymentPath
	}
	return mcrBaseURL + fmt.Sprintf(path, r)
}

// SPMURL returns the standalone SPM download URL for a version built against
// a MATLAB release.
func SPMURL(version string, r matlab.Release) string {
	return fmt.Sprintf(spmURLTemplate, version, r)
}

func (s *SPM) header() string {
	return fmt.Sprintf("#----------------------\n# Install MCR and SPM%s\n#----------------------", s.Version)
}

func (s *SPM) installLibraries(cmds pkgmanager.Commands) string {
	comment := "# Install required libraries"
	cmd := pkgmanager.Render(cmds.Install, requiredLibraries[s.PkgManager]) +
		"\n&& " + cmds.Clean
	return comment + "\n" + dockerfile.Indent("RUN", cmd)
}

func (s *SPM) installMCR() string {
	comment := "# Install MATLAB Compiler Runtime"
	cmd := "curl -sSL -o mcr.zip " + s.MCRURL +
		"\n&& unzip -q mcr.zip -d mcrtmp" +
		"\n&& mcrtmp/install -destinationFolder /opt/mcr -mode silent -agreeToLicense yes" +
		"\n&& rm -rf mcrtmp mcr.zip /tmp/*"
	return strings.Join([]string{comment, "WORKDIR /opt", dockerfile.Indent("RUN", cmd)}, "\n")
}

func (s *SPM) installSPM() string {
	comment := "# Install standalone SPM"
	cmd := "curl -sSL -o spm.zip " + s.SPMURL +
		"\n&& unzip -q spm.zip" +
		"\n&& rm -rf spm.zip"

	// Wildcards are expanded by the shell inside the container, not here.
	env := "MATLABCMD=/opt/mcr/v*/toolbox/matlab" +
		"\nSPMMCRCMD=\"/opt/spm*/run_spm*.sh /opt/mcr/v*/ script\"" +
		"\nFORCE_SPMMCR=1" +
		"\nLD_LIBRARY_PATH=/opt/mcr/v*/runtime/glnxa64:/opt/mcr/v*/bin/glnxa64:/opt/mcr/v*/sys/os/glnxa64:$LD_LIBRARY_PATH"

	return strings.Join([]string{
		comment,
		"WORKDIR /opt",
		dockerfile.Indent("RUN", cmd),
		dockerfile.Indent("ENV", env),
	}, "\n")
}
