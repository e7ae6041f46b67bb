package errors

import (
	stderrors "errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	r := Of(strconv.Atoi("42"))
	require.True(t, r.IsOk())
	require.Equal(t, 42, r.Value())
	require.NoError(t, r.Err())

	r = Of(strconv.Atoi("forty-two"))
	require.False(t, r.IsOk())
	require.Error(t, r.Err())
}

func TestOkAndFail(t *testing.T) {
	v, err := Ok("value").Get()
	require.Equal(t, "value", v)
	require.NoError(t, err)

	cause := stderrors.New("boom")
	v, err = Fail[string](cause).Get()
	require.Equal(t, "", v)
	require.Equal(t, cause, err)
}

func TestResult_Convert_Success(t *testing.T) {
	r := Ok(7).Convert(SeverityCritical, "REF", "never used")

	require.True(t, r.IsOk())
	require.Equal(t, 7, r.Value())
	require.NoError(t, r.Err())
}

func TestResult_Convert_SuccessDoesNotAllocate(t *testing.T) {
	r := Ok(7)
	var out Result[int]

	allocs := testing.AllocsPerRun(100, func() {
		out = r.Convert(SeverityError, "REF", "desc")
	})

	require.Zero(t, allocs)
	require.Equal(t, 7, out.Value())
}

func TestResult_Convert_Failure(t *testing.T) {
	cause := stderrors.New("File not found")
	r := Fail[[]byte](cause).Convert(SeverityWarning, "CFG-READ", "could not read config")

	require.False(t, r.IsOk())

	var unified Error
	require.True(t, As(r.Err(), &unified))
	require.Equal(t, SeverityWarning, unified.Severity())
	require.Equal(t, "CFG-READ", unified.Reference())
	require.Equal(t, "could not read config", unified.Description())
	require.Equal(t, "File not found", unified.Cause().Error())
	require.True(t, Is(r.Err(), cause))
}

func TestResult_SeverityFlavours(t *testing.T) {
	cause := stderrors.New("cause")

	tests := []struct {
		name string
		fn   func(Result[int]) Result[int]
		want Severity
	}{
		{"info", func(r Result[int]) Result[int] { return r.MapInfo("R", "d") }, SeverityInfo},
		{"warning", func(r Result[int]) Result[int] { return r.MapWarning("R", "d") }, SeverityWarning},
		{"error", func(r Result[int]) Result[int] { return r.MapError("R", "d") }, SeverityError},
		{"critical", func(r Result[int]) Result[int] { return r.MapCritical("R", "d") }, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(Fail[int](cause))
			direct := Fail[int](cause).Convert(tt.want, "R", "d")

			require.Equal(t, tt.want, GetSeverity(got.Err()))
			require.Equal(t, direct.Err().Error(), got.Err().Error())
			require.Equal(t, cause, Cause(got.Err()))

			require.Equal(t, 5, tt.fn(Ok(5)).Value())
		})
	}
}

func TestResult_MapInfo_IsRecoverable(t *testing.T) {
	var r Result[int]
	require.NotPanics(t, func() {
		r = Of(strconv.Atoi("not-a-number")).MapInfo("CFG-RETRIES", "invalid retry count")
	})

	v, err := r.Get()
	require.Equal(t, 0, v)
	require.Equal(t, "[INFO] Ref: CFG-RETRIES | invalid retry count", err.Error())

	// Conversion never terminates, even at the most severe level.
	require.NotPanics(t, func() {
		r = Of(strconv.Atoi("x")).MapCritical("CFG-PORT", "invalid port")
	})
	require.Equal(t, SeverityCritical, GetSeverity(r.Err()))
}

func TestResult_MapWith(t *testing.T) {
	cause := stderrors.New("File not found")
	r := Fail[int](cause).MapWith(func(c error) Error {
		return External("FS-404", "Storage operation failed", c)
	})

	require.Equal(t,
		"[EXTERNAL] ERR | Ref: EXT-FS-404 | Storage operation failed | Source: File not found",
		r.Err().Error())
}

func TestResult_MapWith_Success(t *testing.T) {
	called := false
	r := Ok(1).MapWith(func(c error) Error {
		called = true
		return nil
	})

	require.False(t, called)
	require.Equal(t, 1, r.Value())
}

func TestResult_MapWith_NilConversion(t *testing.T) {
	cause := stderrors.New("cause")
	r := Fail[int](cause).MapWith(func(error) Error { return nil })

	require.Equal(t, cause, r.Err())
}
