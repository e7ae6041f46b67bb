package classify

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ephais/go/errors"
)

// YAML classifies gopkg.in/yaml.v3 decoding failures as CategoryDataFormat.
//
// Type mismatches (*yaml.TypeError) record the number of problems as
// metadata "problems". Syntax errors carry no type, so they are recognized
// by the "yaml: " prefix of any error in the chain; the line number is
// recorded when present.
func YAML() Classifier {
	return ClassifierFunc(classifyYAML)
}

func classifyYAML(err error) (errors.Category, map[string]string, bool) {
	var typeErr *yaml.TypeError
	if stderrors.As(err, &typeErr) {
		return errors.CategoryDataFormat, map[string]string{
			"problems": strconv.Itoa(len(typeErr.Errors)),
		}, true
	}

	for e := range errors.Chain(err) {
		msg := e.Error()
		if !strings.HasPrefix(msg, "yaml: ") {
			continue
		}

		var line int
		if _, scanErr := fmt.Sscanf(msg, "yaml: line %d:", &line); scanErr == nil {
			return errors.CategoryDataFormat, map[string]string{"line": strconv.Itoa(line)}, true
		}
		return errors.CategoryDataFormat, nil, true
	}

	return errors.CategoryNone, nil, false
}
