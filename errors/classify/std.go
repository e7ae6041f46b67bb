package classify

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"strconv"
	"time"

	"github.com/ephais/go/errors"
)

// Std classifies standard library parsing failures as CategoryDataFormat.
//
// Recognized: *json.SyntaxError (metadata offset), *json.UnmarshalTypeError
// (metadata offset, field), *strconv.NumError (metadata func, input),
// *time.ParseError (metadata layout, value) and io.ErrUnexpectedEOF.
func Std() Classifier {
	return ClassifierFunc(classifyStd)
}

func classifyStd(err error) (errors.Category, map[string]string, bool) {
	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return errors.CategoryDataFormat, map[string]string{
			"offset": strconv.FormatInt(syntaxErr.Offset, 10),
		}, true
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		md := map[string]string{"offset": strconv.FormatInt(typeErr.Offset, 10)}
		if typeErr.Field != "" {
			md["field"] = typeErr.Field
		}
		return errors.CategoryDataFormat, md, true
	}

	var numErr *strconv.NumError
	if stderrors.As(err, &numErr) {
		return errors.CategoryDataFormat, map[string]string{
			"func":  numErr.Func,
			"input": numErr.Num,
		}, true
	}

	var timeErr *time.ParseError
	if stderrors.As(err, &timeErr) {
		return errors.CategoryDataFormat, map[string]string{
			"layout": timeErr.Layout,
			"value":  timeErr.Value,
		}, true
	}

	if stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.CategoryDataFormat, nil, true
	}

	return errors.CategoryNone, nil, false
}
