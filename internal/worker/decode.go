package worker

import (
	"strings"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/errors"
)

// DecodeFunc returns a ProcessFunc that decodes each line as a FEN string.
func DecodeFunc(strict bool) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Item: item, Index: item.Index}

		var (
			p        *chess.Position
			counters chess.Counters
			err      error
		)
		if strict {
			p, counters, err = chess.NewPositionFromFENStrict(item.Line)
		} else {
			p, counters, err = chess.NewPositionFromFEN(item.Line)
		}
		if err != nil {
			result.Error = errors.Wrapf(err, "%s:%d", item.Source, item.LineNo)
			return result
		}

		result.Position = p
		result.Counters = counters
		return result
	}
}

// Skip reports whether a raw input line carries no FEN: blank lines and
// lines starting with '#'.
func Skip(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" || strings.HasPrefix(line, "#")
}
