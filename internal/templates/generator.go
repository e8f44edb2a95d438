package templates

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/afero"

	oerrors "github.com/opmodel/modkit/internal/errors"
	"github.com/opmodel/modkit/internal/output"
)

// Generator handles module generation from a template tree.
type Generator struct {
	opts GenerateOptions
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts GenerateOptions) *Generator {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Generator{opts: opts}
}

// fileJob is one template file waiting to be rendered and written.
type fileJob struct {
	src    string
	dst    string
	result *FileResult
}

// Generate walks the template tree and writes the module. It returns only
// after every file job has settled. When some entries fail, the result lists
// them and the returned error wraps oerrors.ErrWrite.
func (g *Generator) Generate(ctx context.Context) (*GenerateResult, error) {
	if g.opts.Names.Lower == "" {
		return nil, oerrors.NewValidationError("module name is required", "name", "")
	}

	if err := g.checkSource(); err != nil {
		return nil, err
	}

	if err := g.checkTargetDir(); err != nil {
		return nil, err
	}

	log := output.ModuleLogger(g.opts.Names.Lower)

	if err := g.opts.Dest.MkdirAll(g.opts.TargetDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w: %w", g.opts.TargetDir, oerrors.ErrWrite, err)
	}

	result := &GenerateResult{TargetDir: g.opts.TargetDir}

	// Collect directory results first, then file jobs. Files keep walk order
	// because each job owns a preallocated slot.
	var walkErrs []error
	var jobs []fileJob
	g.walk(g.opts.SourceRoot, g.opts.TargetDir, result, &jobs, &walkErrs)

	result.Files = make([]FileResult, 0, len(jobs)+len(walkErrs))
	for _, err := range walkErrs {
		var fe *entryError
		if errors.As(err, &fe) {
			result.Files = append(result.Files, fe.result)
		}
	}
	offset := len(result.Files)
	result.Files = result.Files[:offset+len(jobs)]
	for i := range jobs {
		jobs[i].result = &result.Files[offset+i]
	}

	renderer := NewRenderer(Tokens(g.opts.Names, g.opts.DisplayName, g.opts.Description, g.opts.Now()))

	p := pool.New().WithMaxGoroutines(g.opts.Workers).WithContext(ctx)
	for _, job := range jobs {
		p.Go(func(ctx context.Context) error {
			return g.writeFile(ctx, renderer, job)
		})
	}
	jobErr := p.Wait()

	failed := result.Failed()
	for _, f := range failed {
		log.Error("entry failed", "path", f.Path, "error", f.Err)
	}
	log.Debug("generation finished",
		"files", len(jobs),
		"dirs", len(result.Dirs),
		"failed", len(failed))

	if err := errors.Join(append(walkErrs, jobErr)...); err != nil {
		return result, fmt.Errorf("%d of %d entries failed: %w: %w",
			len(failed), len(result.Files), oerrors.ErrWrite, err)
	}
	return result, nil
}

// checkSource validates the template root.
func (g *Generator) checkSource() error {
	info, err := g.opts.Source.Stat(g.opts.SourceRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return oerrors.NewNotFoundError("template root does not exist", g.opts.SourceRoot, "")
		}
		return fmt.Errorf("checking template root: %w", err)
	}
	if !info.IsDir() {
		return oerrors.NewValidationError(fmt.Sprintf("template root %s is not a directory", g.opts.SourceRoot), "", "")
	}
	return nil
}

// checkTargetDir validates the target directory.
func (g *Generator) checkTargetDir() error {
	info, err := g.opts.Dest.Stat(g.opts.TargetDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking target directory: %w", err)
	}

	if !info.IsDir() {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  fmt.Sprintf("%s exists and is not a directory", g.opts.TargetDir),
			Location: g.opts.TargetDir,
			Cause:    oerrors.ErrValidation,
		}
	}

	empty, err := afero.IsEmpty(g.opts.Dest, g.opts.TargetDir)
	if err != nil {
		return fmt.Errorf("reading target directory: %w", err)
	}

	if !empty && !g.opts.Force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  fmt.Sprintf("directory %s is not empty", g.opts.TargetDir),
			Location: g.opts.TargetDir,
			Hint:     "Use --force to overwrite existing files, or choose another --dir.",
			Cause:    oerrors.ErrValidation,
		}
	}
	if !empty {
		output.Warn("writing into non-empty directory", "path", g.opts.TargetDir)
	}

	return nil
}

// entryError records a failed directory entry found during the walk.
type entryError struct {
	result FileResult
}

func (e *entryError) Error() string {
	return fmt.Sprintf("%s: %v", e.result.Path, e.result.Err)
}

func (e *entryError) Unwrap() error {
	return e.result.Err
}

// walk mirrors srcDir into dstDir. Directories are created synchronously and
// a failure does not stop the walk. Files are queued as jobs.
func (g *Generator) walk(srcDir, dstDir string, result *GenerateResult, jobs *[]fileJob, errs *[]error) {
	entries, err := afero.ReadDir(g.opts.Source, srcDir)
	if err != nil {
		*errs = append(*errs, g.entryFailure(srcDir, dstDir, fmt.Errorf("reading template directory: %w", err)))
		return
	}

	for _, entry := range entries {
		src := filepath.Join(srcDir, entry.Name())

		if entry.IsDir() {
			dst := filepath.Join(dstDir, entry.Name())
			if err := g.mkdir(dst); err != nil {
				*errs = append(*errs, g.entryFailure(src, dst, err))
			} else {
				result.Dirs = append(result.Dirs, g.rel(dst))
			}
			g.walk(src, dst, result, jobs, errs)
			continue
		}

		*jobs = append(*jobs, fileJob{
			src: src,
			dst: filepath.Join(dstDir, TargetName(entry.Name(), g.opts.Names.Lower)),
		})
	}
}

// mkdir creates dir unless it already exists.
func (g *Generator) mkdir(dir string) error {
	exists, err := afero.DirExists(g.opts.Dest, dir)
	if err != nil {
		return fmt.Errorf("checking directory: %w", err)
	}
	if exists {
		return nil
	}
	if err := g.opts.Dest.Mkdir(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	return nil
}

func (g *Generator) entryFailure(src, dst string, err error) error {
	return &entryError{result: FileResult{
		Source: g.relSource(src),
		Path:   g.rel(dst),
		Status: StatusFailed,
		Err:    err,
	}}
}

// writeFile renders one template file and writes it in create-or-truncate mode.
func (g *Generator) writeFile(ctx context.Context, renderer *Renderer, job fileJob) error {
	res := job.result
	res.Source = g.relSource(job.src)
	res.Path = g.rel(job.dst)

	fail := func(err error) error {
		res.Status = StatusFailed
		res.Err = err
		return fmt.Errorf("%s: %w", res.Path, err)
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	content, err := afero.ReadFile(g.opts.Source, job.src)
	if err != nil {
		return fail(fmt.Errorf("reading template: %w", err))
	}

	existed, err := afero.Exists(g.opts.Dest, job.dst)
	if err != nil {
		return fail(fmt.Errorf("checking file: %w", err))
	}

	if err := afero.WriteFile(g.opts.Dest, job.dst, renderer.RenderFile(content), 0o644); err != nil {
		return fail(fmt.Errorf("writing file: %w", err))
	}

	res.Status = StatusCreated
	if existed {
		res.Status = StatusOverwritten
	}
	output.Debug("wrote file", "path", res.Path, "status", res.Status)
	return nil
}

// rel returns an output path relative to the target directory, slash separated.
func (g *Generator) rel(p string) string {
	r, err := filepath.Rel(g.opts.TargetDir, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(r)
}

// relSource returns a template path relative to the template root, slash separated.
func (g *Generator) relSource(p string) string {
	r, err := filepath.Rel(g.opts.SourceRoot, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(r)
}
