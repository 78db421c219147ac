package splitter

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"datasplit/internal/config"
	"datasplit/internal/dataset"
	"datasplit/internal/fileutil"
	"datasplit/internal/logging"
	"datasplit/internal/partition"
	"datasplit/internal/preflight"
)

// Progress receives one Add(1) per copied file. *progressbar.ProgressBar
// satisfies it.
type Progress interface {
	Add(n int) error
	Finish() error
}

// Options tunes how a Splitter materializes an assignment.
type Options struct {
	// Verify hashes every copy and fails on mismatch.
	Verify bool
	// Force copies into split directories that already hold entries.
	Force bool
	// DryRun stops after computing the assignment.
	DryRun bool
	// SkipSpaceCheck disables the free-space preflight.
	SkipSpaceCheck bool
	// LockDir holds the per-directory lock files; empty means os.TempDir().
	LockDir string
	// NewProgress, when set, is called with the number of planned copies.
	NewProgress func(total int) Progress
}

// OptionsFromConfig maps run settings onto splitter options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Verify:         cfg.Verify,
		Force:          cfg.Force,
		DryRun:         cfg.DryRun,
		SkipSpaceCheck: cfg.SkipSpaceCheck,
	}
}

// Request names the paired directories and the partition parameters.
type Request struct {
	InputDir  string
	TargetDir string
	Ratios    config.Ratios
	Seed      int64
}

// RequestFromConfig extracts the request portion of run settings.
func RequestFromConfig(cfg *config.Config) Request {
	return Request{
		InputDir:  cfg.InputDir,
		TargetDir: cfg.TargetDir,
		Ratios:    cfg.Ratios,
		Seed:      cfg.Seed,
	}
}

// Result describes a completed (or planned, for dry runs) split.
type Result struct {
	Sizes       partition.Sizes
	Assignment  partition.Assignment
	Inputs      dataset.FileSet
	Targets     dataset.FileSet
	BytesCopied int64
	DryRun      bool
}

// Splitter partitions paired datasets into train/val/test subdirectories.
type Splitter struct {
	logger *slog.Logger
	opts   Options
}

// New constructs a Splitter. A nil logger discards output.
func New(logger *slog.Logger, opts Options) *Splitter {
	return &Splitter{
		logger: logging.NewComponentLogger(logger, "splitter"),
		opts:   opts,
	}
}

// Split validates the request, assigns every paired sample to exactly one
// split, and copies both halves of each pair into <dir>/<split>/. Sources are
// never modified. Any error aborts the run; copies made before the failure
// stay on disk.
func (s *Splitter) Split(req Request) (Result, error) {
	start := time.Now()

	if err := validateRequest(req); err != nil {
		return Result{}, err
	}

	if err := preflight.FirstFailure(preflight.RunAll(
		preflight.Target{Name: "Input directory", Dir: req.InputDir, ReadOnly: s.opts.DryRun},
		preflight.Target{Name: "Target directory", Dir: req.TargetDir, ReadOnly: s.opts.DryRun},
	)); err != nil {
		return Result{}, Wrap(ErrFileSystem, "check directories", "", err)
	}

	if !s.opts.DryRun {
		locks, err := acquireDirLocks(s.opts.LockDir, req.InputDir, req.TargetDir)
		if err != nil {
			return Result{}, err
		}
		defer func() {
			if err := locks.release(); err != nil {
				s.logger.Warn("failed to release directory lock", logging.Error(err))
			}
		}()
	}

	inputs, err := dataset.List(req.InputDir)
	if err != nil {
		return Result{}, Wrap(ErrFileSystem, "list input files", "", err)
	}
	targets, err := dataset.List(req.TargetDir)
	if err != nil {
		return Result{}, Wrap(ErrFileSystem, "list target files", "", err)
	}
	if err := dataset.CheckPairing(inputs, targets); err != nil {
		logging.ErrorWithContext(s.logger, "input and target directories do not describe the same samples",
			"pairing_failed", "compare the base filenames of both directories",
			logging.String("input_dir", req.InputDir),
			logging.String("target_dir", req.TargetDir),
			logging.Error(err),
		)
		return Result{}, Wrap(ErrPairing, "pair files", "", err)
	}

	assignment := partition.Assign(inputs.Len(), req.Ratios, partition.NewRand(req.Seed))
	result := Result{
		Sizes:      assignment.Sizes(),
		Assignment: assignment,
		Inputs:     inputs,
		Targets:    targets,
		DryRun:     s.opts.DryRun,
	}
	s.logger.Info("computed split assignment",
		logging.Int("samples", inputs.Len()),
		logging.Int64("seed", req.Seed),
		logging.Int("train", result.Sizes.Train),
		logging.Int("val", result.Sizes.Val),
		logging.Int("test", result.Sizes.Test),
	)
	if s.opts.DryRun {
		return result, nil
	}

	if !s.opts.SkipSpaceCheck {
		if err := preflight.FirstFailure(preflight.RunAll(
			preflight.Target{Name: "Input directory", Dir: req.InputDir, CopyBytes: inputs.TotalBytes(), CheckSpace: true},
			preflight.Target{Name: "Target directory", Dir: req.TargetDir, CopyBytes: targets.TotalBytes(), CheckSpace: true},
		)); err != nil {
			return Result{}, Wrap(ErrFileSystem, "check free space", "", err)
		}
	}

	if err := s.prepareSplitDirs(req.InputDir, req.TargetDir); err != nil {
		return Result{}, err
	}

	copied, err := s.copyAssignment(assignment, inputs, targets)
	result.BytesCopied = copied
	if err != nil {
		return Result{}, err
	}

	s.logger.Info("split complete",
		logging.Int("train", result.Sizes.Train),
		logging.Int("val", result.Sizes.Val),
		logging.Int("test", result.Sizes.Test),
		logging.String("copied", humanize.Bytes(uint64(copied))),
		logging.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}

func validateRequest(req Request) error {
	if strings.TrimSpace(req.InputDir) == "" {
		return Wrap(ErrConfiguration, "validate request", "input directory must be set", nil)
	}
	if strings.TrimSpace(req.TargetDir) == "" {
		return Wrap(ErrConfiguration, "validate request", "target directory must be set", nil)
	}
	if err := req.Ratios.Validate(); err != nil {
		return Wrap(ErrConfiguration, "validate ratios", "", err)
	}
	return nil
}

// prepareSplitDirs refuses to reuse populated split directories unless Force
// is set, then creates any that are missing.
func (s *Splitter) prepareSplitDirs(dirs ...string) error {
	if !s.opts.Force {
		var populated []string
		for _, dir := range dirs {
			for _, split := range partition.Splits {
				path := filepath.Join(dir, string(split))
				entries, err := os.ReadDir(path)
				if err != nil {
					if errors.Is(err, fs.ErrNotExist) {
						continue
					}
					return Wrap(ErrFileSystem, "inspect split directory", path, err)
				}
				if len(entries) > 0 {
					populated = append(populated, path)
				}
			}
		}
		if len(populated) > 0 {
			return Wrap(ErrAlreadySplit, "prepare split directories",
				strings.Join(populated, ", ")+" (rerun with --force to copy anyway)", nil)
		}
	}

	for _, dir := range dirs {
		for _, split := range partition.Splits {
			path := filepath.Join(dir, string(split))
			if err := os.MkdirAll(path, 0o755); err != nil {
				return Wrap(ErrFileSystem, "create split directory", path, err)
			}
		}
	}
	return nil
}

func (s *Splitter) copyAssignment(assignment partition.Assignment, inputs, targets dataset.FileSet) (int64, error) {
	copyFn := fileutil.CopyFile
	if s.opts.Verify {
		copyFn = fileutil.CopyFileVerified
	}

	var progress Progress
	if s.opts.NewProgress != nil {
		progress = s.opts.NewProgress(2 * assignment.Sizes().Total())
	}

	var copied int64
	for _, split := range partition.Splits {
		logger := s.logger.With(logging.String(logging.FieldSplit, string(split)))
		indices := assignment.Indices(split)
		for _, idx := range indices {
			for _, set := range []dataset.FileSet{inputs, targets} {
				src := set.Path(idx)
				dst := filepath.Join(set.Dir, string(split), set.Names[idx])
				n, err := copyFn(src, dst)
				copied += n
				if err != nil {
					logging.ErrorWithContext(logger, "copy failed", "copy_failed",
						"check permissions and free space in the destination",
						logging.String("source", src),
						logging.String("destination", dst),
						logging.Error(err),
					)
					return copied, Wrap(ErrFileSystem, "copy file", src, err)
				}
				logger.Debug("copied file", logging.String("source", src), logging.String("destination", dst), logging.Int64("bytes", n))
				if progress != nil {
					_ = progress.Add(1)
				}
			}
		}
		logger.Info("populated split", logging.Int("pairs", len(indices)))
	}
	if progress != nil {
		_ = progress.Finish()
	}
	return copied, nil
}
