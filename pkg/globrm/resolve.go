// Package globrm expands glob patterns into concrete file lists and deletes
// the results, reporting per-file outcomes and a final tally. The pipeline
// is strictly sequential: resolve, then delete, then summarize.
package globrm

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Resolver expands pattern arguments into the concrete list of files to
// delete. It only reads the filesystem, it never mutates it.
type Resolver struct {
	// Root is the directory relative patterns (and relative literal paths)
	// are expanded against. Empty means the current working directory.
	Root string

	Logger *zap.Logger
}

func NewResolver(root string, logger *zap.Logger) *Resolver {
	if root == "" {
		root = "."
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{Root: root, Logger: logger}
}

// Resolve expands every pattern, in order, into an ordered list of existing
// regular files. A path matched by more than one pattern appears once, at
// its first occurrence. Arguments that fail to resolve (missing literal
// path, malformed glob) contribute a PatternError instead of aborting the
// run; a pattern that is well-formed but matches nothing contributes
// neither files nor errors.
func (r *Resolver) Resolve(patterns []string) ([]string, []*PatternError) {
	var files []string
	var errs []*PatternError
	seen := map[string]bool{}

	add := func(path string) {
		key := filepath.Clean(path)
		if seen[key] {
			r.Logger.Debug("skipping duplicate match", zap.String("path", key))
			return
		}
		seen[key] = true
		files = append(files, key)
	}

	for _, pattern := range patterns {
		if !isGlob(pattern) {
			if perr := r.resolveLiteral(pattern, add); perr != nil {
				errs = append(errs, perr)
			}
			continue
		}

		segments, rooted, err := compilePattern(pattern)
		if err != nil {
			errs = append(errs, &PatternError{Pattern: pattern, Reason: err.Error()})
			continue
		}

		root := r.Root
		if rooted {
			root = string(filepath.Separator)
		}

		before := len(files)
		r.expand(root, segments, add)
		r.Logger.Debug("expanded pattern",
			zap.String("pattern", pattern),
			zap.Int("matches", len(files)-before))
	}

	return files, errs
}

// resolveLiteral handles an argument with no glob metacharacters. It must
// name an existing regular file; directories are never deletion targets.
func (r *Resolver) resolveLiteral(path string, add func(string)) *PatternError {
	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(r.Root, full)
	}

	info, err := os.Lstat(full)
	if err != nil {
		return &PatternError{Pattern: path, Reason: "no such file"}
	}

	if info.IsDir() {
		return &PatternError{Pattern: path, Reason: "is a directory, not a regular file"}
	}

	add(full)
	return nil
}

// frame is one unit of traversal work: match segments[idx:] against the
// contents of dir.
type frame struct {
	dir string
	idx int
}

// expand walks the tree under root guided by the compiled segments, using an
// explicit work stack. Only regular files are selected; directories are
// descended into but never returned. Children are pushed in reverse so the
// stack pops them in the sorted order os.ReadDir produced, keeping the
// result order deterministic.
func (r *Resolver) expand(root string, segments []segment, add func(string)) {
	stack := []frame{{dir: root, idx: 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		seg := segments[f.idx]
		last := f.idx == len(segments)-1

		if seg.doubleStar && last {
			// A trailing '**' selects every file below this point.
			r.collectAll(f.dir, add)
			continue
		}

		entries, err := os.ReadDir(f.dir)
		if err != nil {
			r.Logger.Debug("cannot read directory", zap.String("dir", f.dir), zap.Error(err))
			continue
		}

		if seg.doubleStar {
			// '**' matches zero directories here, then one more level for
			// every subdirectory. Reversed so the zero-match is popped first.
			for i := len(entries) - 1; i >= 0; i-- {
				if entries[i].IsDir() {
					stack = append(stack, frame{dir: filepath.Join(f.dir, entries[i].Name()), idx: f.idx})
				}
			}
			stack = append(stack, frame{dir: f.dir, idx: f.idx + 1})
			continue
		}

		if last {
			for _, entry := range entries {
				if entry.Type().IsRegular() && seg.re.MatchString(entry.Name()) {
					add(filepath.Join(f.dir, entry.Name()))
				}
			}
			continue
		}

		for i := len(entries) - 1; i >= 0; i-- {
			if entries[i].IsDir() && seg.re.MatchString(entries[i].Name()) {
				stack = append(stack, frame{dir: filepath.Join(f.dir, entries[i].Name()), idx: f.idx + 1})
			}
		}
	}
}

// collectAll adds every regular file below dir, again with an explicit
// stack and in sorted directory order.
func (r *Resolver) collectAll(dir string, add func(string)) {
	stack := []string{dir}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(current)
		if err != nil {
			r.Logger.Debug("cannot read directory", zap.String("dir", current), zap.Error(err))
			continue
		}

		var dirs []string
		for _, entry := range entries {
			path := filepath.Join(current, entry.Name())
			if entry.IsDir() {
				dirs = append(dirs, path)
			} else if entry.Type().IsRegular() {
				add(path)
			}
		}
		for i := len(dirs) - 1; i >= 0; i-- {
			stack = append(stack, dirs[i])
		}
	}
}
