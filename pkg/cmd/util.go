package cmd

import (
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlpretty/pkg/config"
	"github.com/pseudomuto/sqlpretty/pkg/consts"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// expandPaths resolves the command line paths into the list of sources to
// format. Directories are walked recursively for files matching the
// configured extensions, in lexical order. The stdin marker is passed
// through unchanged.
func expandPaths(fs afero.Fs, cfg *config.Config, paths []string) ([]string, error) {
	if len(paths) == 0 {
		return []string{consts.StdinPath}, nil
	}

	var sources []string
	for _, path := range paths {
		if path == consts.StdinPath {
			sources = append(sources, path)
			continue
		}

		info, err := fs.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to access path: %s", path)
		}

		if !info.IsDir() {
			sources = append(sources, path)
			continue
		}

		files, err := sqlFiles(fs, cfg, path)
		if err != nil {
			return nil, err
		}

		sources = append(sources, files...)
	}

	return sources, nil
}

func sqlFiles(fs afero.Fs, cfg *config.Config, dir string) ([]string, error) {
	var files []string

	err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && cfg.Matches(path) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(files) == 0 {
		return nil, errors.Errorf("no SQL files found in directory: %s", dir)
	}

	sort.Strings(files)
	return files, nil
}

// readSource reads SQL text from r. A leading byte order mark is dropped and
// UTF-16 input (with a BOM) is converted to UTF-8; anything else is passed
// through byte for byte.
func readSource(r io.Reader) (string, error) {
	data, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// readPath reads the source at path, where the stdin marker reads from the
// command's input.
func readPath(fs afero.Fs, cmd *cli.Command, path string) (string, error) {
	if path == consts.StdinPath {
		src, err := readSource(stdin(cmd))
		return src, errors.Wrap(err, "failed to read stdin")
	}

	f, err := fs.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read file: %s", path)
	}
	defer func() { _ = f.Close() }()

	src, err := readSource(f)
	return src, errors.Wrapf(err, "failed to read file: %s", path)
}

// renderFile turns formatter output into file content.
func renderFile(text string) string {
	if text == "" {
		return ""
	}

	return text + "\n"
}

// stdin and stdout resolve the command's streams, falling back to the root
// command's and then the process's.
func stdin(cmd *cli.Command) io.Reader {
	if cmd.Reader != nil {
		return cmd.Reader
	}

	if root := cmd.Root(); root != nil && root.Reader != nil {
		return root.Reader
	}

	return os.Stdin
}

func stdout(cmd *cli.Command) io.Writer {
	if cmd.Writer != nil {
		return cmd.Writer
	}

	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}

	return os.Stdout
}
