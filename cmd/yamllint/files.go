package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/platinummonkey/yamllint/pkg/linter"
)

// stdinPath names the document read from standard input
const stdinPath = "stdin"

// fileFilter decides which files of a walked directory are linted. Both
// yaml-files and ignore use gitignore pattern syntax.
type fileFilter struct {
	ignore    *gitignore.GitIgnore
	yamlFiles *gitignore.GitIgnore
}

func newFileFilter(config *linter.Config) *fileFilter {
	f := &fileFilter{yamlFiles: gitignore.CompileIgnoreLines(config.YAMLFiles...)}
	if len(config.Ignore) > 0 {
		f.ignore = gitignore.CompileIgnoreLines(config.Ignore...)
	}
	return f
}

func (f *fileFilter) ignored(path string) bool {
	return f.ignore != nil && f.ignore.MatchesPath(filepath.ToSlash(path))
}

func (f *fileFilter) isYAML(path string) bool {
	return f.yamlFiles.MatchesPath(filepath.ToSlash(path))
}

// collectFiles reads every document named by args. Directories are walked
// recursively and filtered by yaml-files; explicitly named files are only
// subject to the ignore patterns.
func collectFiles(ctx context.Context, args []string, config *linter.Config, stdin io.Reader) (map[string][]byte, error) {
	filter := newFileFilter(config)
	files := make(map[string][]byte)

	for _, arg := range args {
		if arg == "-" {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("reading stdin: %w", err)
			}
			files[stdinPath] = data
			continue
		}

		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if filter.ignored(arg) {
				continue
			}
			data, err := os.ReadFile(arg)
			if err != nil {
				return nil, err
			}
			files[arg] = data
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			relPath, err := filepath.Rel(arg, path)
			if err != nil {
				return err
			}

			if d.IsDir() {
				if d.Name() == ".git" || (relPath != "." && filter.ignored(relPath+"/")) {
					return filepath.SkipDir
				}
				return nil
			}

			if filter.ignored(relPath) || !filter.isYAML(relPath) {
				return nil
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			files[path] = data
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}
