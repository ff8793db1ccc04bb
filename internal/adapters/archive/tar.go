package archive

import (
	"bufio"
	"context"
	"os"
	"strings"

	"go.trai.ch/carry/internal/core/domain"
	"go.trai.ch/carry/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	tarBinary          = "tar"
	notFoundMarker     = ": Not found in archive"
	stderrMetadataSize = 2000
)

// tarBackend drives a tar child process. Names are stored absolute (-P) so archives
// extract back to the paths they were packed from.
type tarBackend struct {
	runner ports.CommandRunner
}

func (b *tarBackend) name() string {
	return tarBinary
}

func (b *tarBackend) pack(ctx context.Context, target string, paths []string) (*domain.CommandResult, error) {
	c := domain.CompressionFor(target)
	argv := append([]string{tarBinary, "-P", "-c", c.TarFlag(), "-f", target}, paths...)

	res, err := b.runner.Run(ctx, argv)
	if err != nil {
		_ = os.Remove(target)
		return res, zerr.Wrap(err, domain.ErrPackFailed.Error())
	}
	if !res.Success() {
		_ = os.Remove(target)
		return res, commandFailure(domain.ErrPackFailed, res)
	}
	return res, nil
}

func (b *tarBackend) unpack(ctx context.Context, archive string, paths []string) (*domain.ExtractResult, error) {
	c := domain.CompressionFor(archive)
	argv := append([]string{tarBinary, "-P", "-x", c.TarFlag(), "-f", archive}, paths...)

	res, err := b.runner.Run(ctx, argv)
	if err != nil {
		return &domain.ExtractResult{Output: res}, zerr.Wrap(err, domain.ErrExtractFailed.Error())
	}

	result := &domain.ExtractResult{Output: res}
	if res.Success() {
		return result, nil
	}

	missing, unexplained := parseUnpackErrors(res.Stderr)
	result.Missing = missing
	if len(missing) == 0 || len(unexplained) > 0 {
		return result, commandFailure(domain.ErrExtractFailed, res)
	}
	return result, nil
}

// parseUnpackErrors splits tar's stderr into paths reported as absent from the archive
// and lines that indicate some other failure.
func parseUnpackErrors(stderr string) (missing, unexplained []string) {
	scanner := bufio.NewScanner(strings.NewReader(stderr))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if rest, ok := strings.CutSuffix(line, notFoundMarker); ok {
			// "<program>: <path>"
			if _, path, ok := strings.Cut(rest, ": "); ok && path != "" {
				missing = append(missing, path)
				continue
			}
		}

		if strings.Contains(line, "Exiting with failure status due to previous errors") ||
			strings.Contains(line, "Error exit delayed from previous errors") {
			continue
		}

		unexplained = append(unexplained, line)
	}
	return missing, unexplained
}

func commandFailure(sentinel error, res *domain.CommandResult) error {
	err := zerr.Wrap(sentinel, "archiver exited with non-zero status")
	err = zerr.With(err, "command", strings.Join(res.Args, " "))
	err = zerr.With(err, "exit_code", res.ExitCode)
	return zerr.With(err, "stderr", domain.Truncate(strings.TrimSpace(res.Stderr), stderrMetadataSize))
}
