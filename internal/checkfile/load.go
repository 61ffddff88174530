package checkfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/isgo/internal/ctxlog"
	"github.com/specialistvlad/isgo/internal/fsutil"
)

// Extensions are the file extensions picked up when a directory is given.
var Extensions = []string{".hcl", ".yaml", ".yml"}

// Load resolves the given files, directories and glob patterns and returns
// the checks they declare, file by file in declaration order.
func Load(ctx context.Context, patterns ...string) ([]Check, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading check files.", "patterns", patterns)

	files, err := fsutil.Resolve(patterns, Extensions...)
	if err != nil {
		return nil, fmt.Errorf("failed to find check files: %w", err)
	}

	parser := hclparse.NewParser()
	var checks []Check
	for _, file := range files {
		var found []Check
		switch filepath.Ext(file) {
		case ".hcl":
			found, err = parseHCL(file, parser)
		case ".yaml", ".yml":
			var src []byte
			src, err = os.ReadFile(file)
			if err == nil {
				found, err = parseYAML(src, file)
			}
		default:
			err = fmt.Errorf("unsupported check file %s: expected one of %v", file, Extensions)
		}
		if err != nil {
			return nil, err
		}
		logger.Debug("Check file loaded.", "file", file, "checks", len(found))
		checks = append(checks, found...)
	}

	logger.Debug("Check files loaded.", "files", len(files), "checks", len(checks))
	return checks, nil
}
