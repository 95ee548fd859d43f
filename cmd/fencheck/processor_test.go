package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/config"
	"github.com/lgbarn/fenboard-go/internal/hashing"
	"github.com/lgbarn/fenboard-go/internal/matching"
	"github.com/lgbarn/fenboard-go/internal/testutil"
)

const emptyBoard = "8/8/8/8/8/8/8/8 w - - 0 1"

// newTestContext returns a context writing output and log into buffers.
func newTestContext(cfg *config.Config, detector *hashing.DuplicateDetector) (*ProcessingContext, *bytes.Buffer, *bytes.Buffer) {
	var out, log bytes.Buffer
	cfg.SetOutput(&out)
	cfg.LogFile = &log
	return NewProcessingContext(cfg, detector, nil), &out, &log
}

func textInput(name string, lines ...string) Input {
	return Input{Name: name, Reader: strings.NewReader(strings.Join(lines, "\n") + "\n")}
}

func TestProcessAllInputs_NormalizesInOrder(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Workers = 4
	ctx, out, _ := newTestContext(cfg, nil)

	var lines []string
	var want []string
	for i := 0; i < 50; i++ {
		fen := fmt.Sprintf("8/8/8/8/8/8/8/8 w - - %d %d", i, i+1)
		lines = append(lines, fen)
		want = append(want, fen)
	}

	err := processAllInputs(ctx, []Input{textInput("many", lines...)})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, out.String(), strings.Join(want, "\n")+"\n")
	testutil.AssertEqual(t, ctx.Stats(), Stats{Lines: 50, Valid: 50})
}

func TestProcessAllInputs_SkipsCommentsAndBlankLines(t *testing.T) {
	cfg := config.NewConfig()
	ctx, out, _ := newTestContext(cfg, nil)

	in := textInput("in", "# starting position", "", "   ", chess.InitialFEN)
	testutil.AssertNoError(t, processAllInputs(ctx, []Input{in}))

	testutil.AssertEqual(t, out.String(), chess.InitialFEN+"\n")
	testutil.AssertEqual(t, ctx.Stats().Lines, 1)
}

func TestProcessAllInputs_ReportsInvalidLines(t *testing.T) {
	cfg := config.NewConfig()
	ctx, out, log := newTestContext(cfg, nil)

	in := textInput("bad.fen", chess.InitialFEN, "", "not a fen")
	testutil.AssertNoError(t, processAllInputs(ctx, []Input{in}))

	testutil.AssertEqual(t, out.String(), chess.InitialFEN+"\n")
	testutil.AssertEqual(t, ctx.Stats(), Stats{Lines: 2, Valid: 1, Invalid: 1})
	testutil.AssertContains(t, log.String(), "bad.fen:3: A FEN string must contain exactly 6 space-separated fields.")
}

func TestProcessAllInputs_LocalizedErrorsInOutput(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Decode.Locale = "fr"
	cfg.Output.ReportErrors = true
	ctx, out, _ := newTestContext(cfg, nil)

	in := textInput("x", "8/8/8/8/8/8/8/8 x - - 0 1")
	testutil.AssertNoError(t, processAllInputs(ctx, []Input{in}))

	testutil.AssertEqual(t, out.String(), "# x:1: Le 2e champ d'une chaîne FEN doit valoir `w` ou `b`.\n")
}

func TestProcessAllInputs_StrictMode(t *testing.T) {
	lenientOnly := "8/8/8/8/8/8/8/8 w - - 00 1"

	cfg := config.NewConfig()
	ctx, out, _ := newTestContext(cfg, nil)
	testutil.AssertNoError(t, processAllInputs(ctx, []Input{textInput("in", lenientOnly)}))
	testutil.AssertEqual(t, out.String(), emptyBoard+"\n")

	cfg = config.NewConfig()
	cfg.Decode.Strict = true
	ctx, out, _ = newTestContext(cfg, nil)
	testutil.AssertNoError(t, processAllInputs(ctx, []Input{textInput("in", lenientOnly)}))
	testutil.AssertEqual(t, out.String(), "")
	testutil.AssertEqual(t, ctx.Stats().Invalid, 1)
}

func TestProcessAllInputs_MultipleInputs(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Output.ReportErrors = true
	ctx, out, _ := newTestContext(cfg, nil)

	inputs := []Input{
		textInput("a", chess.InitialFEN),
		textInput("b", "# header", "bogus"),
	}
	testutil.AssertNoError(t, processAllInputs(ctx, inputs))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	testutil.AssertEqual(t, len(lines), 2)
	testutil.AssertEqual(t, lines[0], chess.InitialFEN)
	testutil.AssertTrue(t, strings.HasPrefix(lines[1], "# b:2: "), "got %q", lines[1])
}

func TestProcessAllInputs_Duplicates(t *testing.T) {
	fens := []string{
		chess.InitialFEN,
		emptyBoard,
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 12 40",
		emptyBoard,
	}

	t.Run("suppressed", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Duplicate.Suppress = true
		var dups bytes.Buffer
		cfg.Duplicate.DuplicateFile = &dups
		ctx, out, _ := newTestContext(cfg, hashing.NewDuplicateDetector(true, 0))

		testutil.AssertNoError(t, processAllInputs(ctx, []Input{textInput("in", fens...)}))

		testutil.AssertEqual(t, out.String(), chess.InitialFEN+"\n"+emptyBoard+"\n")
		testutil.AssertEqual(t, dups.String(), fens[2]+"\n"+emptyBoard+"\n")
		testutil.AssertEqual(t, ctx.Stats(), Stats{Lines: 4, Valid: 2, Duplicates: 2})
	})

	t.Run("collected only", func(t *testing.T) {
		cfg := config.NewConfig()
		var dups bytes.Buffer
		cfg.Duplicate.DuplicateFile = &dups
		ctx, out, _ := newTestContext(cfg, hashing.NewDuplicateDetector(true, 0))

		testutil.AssertNoError(t, processAllInputs(ctx, []Input{textInput("in", fens...)}))

		testutil.AssertEqual(t, strings.Count(out.String(), "\n"), 4)
		testutil.AssertEqual(t, strings.Count(dups.String(), "\n"), 2)
		testutil.AssertEqual(t, ctx.Stats(), Stats{Lines: 4, Valid: 4, Duplicates: 2})
	})
}

func TestProcessAllInputs_JSON(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Output.Format = config.JSON
	ctx, out, _ := newTestContext(cfg, nil)

	testutil.AssertNoError(t, processAllInputs(ctx, []Input{textInput("in", chess.InitialFEN)}))
	testutil.AssertContains(t, out.String(), `"fen":"`+chess.InitialFEN+`"`)
}

func TestLoadCheckFile(t *testing.T) {
	detector := hashing.NewDuplicateDetector(true, 0)
	check := strings.NewReader("# seen before\n" + chess.InitialFEN + "\nrubbish\n")

	n, err := loadCheckFile(detector, check, false)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, 1)

	cfg := config.NewConfig()
	cfg.Duplicate.Suppress = true
	ctx, out, _ := newTestContext(cfg, detector)
	testutil.AssertNoError(t, processAllInputs(ctx, []Input{textInput("in", chess.InitialFEN, emptyBoard)}))
	testutil.AssertEqual(t, out.String(), emptyBoard+"\n")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, fmt.Errorf("disk on fire")
}

func TestProcessAllInputs_ReadError(t *testing.T) {
	cfg := config.NewConfig()
	ctx, _, _ := newTestContext(cfg, nil)

	err := processAllInputs(ctx, []Input{{Name: "broken", Reader: failingReader{}}})
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "reading broken")
}

func TestReportStatistics(t *testing.T) {
	var buf bytes.Buffer
	reportStatistics(&buf, false, Stats{Lines: 3, Valid: 2, Invalid: 1})
	testutil.AssertEqual(t, buf.String(), "2 valid, 1 invalid out of 3 line(s).\n")

	buf.Reset()
	reportStatistics(&buf, true, Stats{Lines: 5, Valid: 3, Invalid: 1, Duplicates: 1})
	testutil.AssertEqual(t, buf.String(), "3 valid, 1 invalid, 1 duplicate(s) out of 5 line(s).\n")
}

func TestProcessAllInputs_Filter(t *testing.T) {
	const ending = "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1"

	mm, err := matching.NewMaterialMatcher("KR:kr", true)
	testutil.AssertNoError(t, err)
	filter := matching.NewPositionFilter()
	filter.AddMaterial(mm)

	cfg := config.NewConfig()
	ctx, out, _ := newTestContext(cfg, nil)
	ctx.SetFilter(filter)

	testutil.AssertNoError(t, processAllInputs(ctx, []Input{textInput("in", chess.InitialFEN, ending, emptyBoard)}))
	testutil.AssertEqual(t, out.String(), ending+"\n")
	testutil.AssertEqual(t, ctx.Stats(), Stats{Lines: 3, Valid: 1, Filtered: 2})
}

func TestSetupPositionFilter(t *testing.T) {
	filter, err := setupPositionFilter()
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, filter.HasCriteria())

	defer saveRestoreString(materialMatch, "KQ:kq")()
	filter, err = setupPositionFilter()
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, filter.HasCriteria())

	defer saveRestoreString(materialMatchExact, "KX")()
	_, err = setupPositionFilter()
	testutil.AssertError(t, err)
}
