package classify

import (
	stderrors "errors"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/ephais/go/errors"
)

// TOML classifies go-toml/v2 decoding failures as CategoryDataFormat.
//
// A *toml.DecodeError records metadata line, column and, when known, the
// dotted key. A *toml.StrictMissingError records the number of unknown keys
// as metadata "missing".
func TOML() Classifier {
	return ClassifierFunc(classifyTOML)
}

func classifyTOML(err error) (errors.Category, map[string]string, bool) {
	var decodeErr *toml.DecodeError
	if stderrors.As(err, &decodeErr) {
		line, column := decodeErr.Position()
		md := map[string]string{
			"line":   strconv.Itoa(line),
			"column": strconv.Itoa(column),
		}
		if key := decodeErr.Key(); len(key) > 0 {
			md["key"] = strings.Join(key, ".")
		}
		return errors.CategoryDataFormat, md, true
	}

	var missingErr *toml.StrictMissingError
	if stderrors.As(err, &missingErr) {
		return errors.CategoryDataFormat, map[string]string{
			"missing": strconv.Itoa(len(missingErr.Errors)),
		}, true
	}

	return errors.CategoryNone, nil, false
}
