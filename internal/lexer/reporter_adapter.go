package lexer

import (
	"github.com/KennethDRoe/slang/internal/diag"
	"github.com/KennethDRoe/slang/internal/source"
)

// DiagAdapter turns a diag.Reporter into a lexer.Reporter, mapping the
// lexer's informal "kind" strings onto stable diag.Code values.
type DiagAdapter struct {
	Reporter diag.Reporter
}

var lexKindCodes = map[string]diag.Code{
	"unknown-char":        diag.LexUnknownChar,
	"unterminated-string": diag.LexUnterminatedString,
	"unterminated-block":  diag.LexUnterminatedBlock,
	"bad-number":          diag.LexBadNumber,
	"token-too-long":      diag.LexTokenTooLong,
}

func (a *DiagAdapter) Report(kind string, span source.Span, msg string) {
	if a == nil || a.Reporter == nil {
		return
	}
	code, ok := lexKindCodes[kind]
	if !ok {
		code = diag.UnknownCode
	}
	a.Reporter.Report(code, diag.Error, span, msg, nil)
}
