// Package lang maps file names to supported language variants and provides
// the seed skeletons for newly created files.
package lang

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/ashritanshuman/cpp-forge-ide/internal/model"
)

// ErrUnsupported is returned when a file name does not map to a supported
// C/C++ variant.
var ErrUnsupported = errors.New("unsupported file extension")

// supported maps enry language names to our language variants. The ordering
// of enry's candidates for ambiguous extensions (.h yields C before C++)
// makes detection deterministic.
var supported = map[string]model.Language{
	"C":   model.LangC,
	"C++": model.LangCPP,
}

// Detect derives the language variant from a file name's extension. It is
// called exactly once, at buffer creation; the result is never re-derived.
func Detect(name string) (model.Language, error) {
	name = strings.TrimSpace(name)
	if filepath.Ext(name) == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnsupported, name)
	}
	for _, candidate := range enry.GetLanguagesByExtension(name, nil, nil) {
		if lang, ok := supported[candidate]; ok {
			return lang, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want .c, .h, .cpp, .cc, .cxx or .hpp)", ErrUnsupported, name)
}

// IsHeader reports whether the file name looks like a header file. Headers
// get an include-guard skeleton instead of a main function.
func IsHeader(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".h", ".hpp", ".hh", ".hxx":
		return true
	}
	return false
}

// Skeleton returns the minimal valid program seeded into a new buffer.
func Skeleton(name string, lang model.Language) string {
	if IsHeader(name) {
		return headerSkeleton(name)
	}
	if lang == model.LangC {
		return "#include <stdio.h>\n\nint main(void) {\n    printf(\"Hello from " + name + "\\n\");\n    return 0;\n}\n"
	}
	return "#include <iostream>\n\nint main() {\n    std::cout << \"Hello from " + name + "\" << std::endl;\n    return 0;\n}\n"
}

// headerSkeleton builds an include-guarded empty header.
func headerSkeleton(name string) string {
	guard := strings.ToUpper(name)
	guard = strings.NewReplacer(".", "_", "-", "_", " ", "_").Replace(guard)
	return fmt.Sprintf("#ifndef %s\n#define %s\n\n#endif // %s\n", guard, guard, guard)
}
