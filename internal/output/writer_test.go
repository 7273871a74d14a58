package output

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/pgn-planes-go/internal/errors"
	"github.com/lgbarn/pgn-planes-go/internal/pgn"
)

func testRecords(n int) []*pgn.GameRecord {
	recs := make([]*pgn.GameRecord, n)
	for i := range recs {
		recs[i] = pgn.NewRecord(map[string]string{
			"Event":  "Game " + string(rune('A'+i)),
			"White":  "Player, \"One\"",
			"Result": "1-0",
		}, "e4 e5 Nf3")
	}
	return recs
}

func readCSVGzip(t *testing.T, data []byte, comma rune) [][]string {
	t.Helper()
	gz, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer gz.Close()
	r := csv.NewReader(gz)
	if comma != 0 {
		r.Comma = comma
	}
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVGzipWriter(t *testing.T) {
	tests := []struct {
		name  string
		comma rune
	}{
		{"default comma", 0},
		{"semicolon", ';'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewCSVGzipWriter(&buf, tt.comma)
			require.NoError(t, err)
			for _, rec := range testRecords(2) {
				require.NoError(t, w.WriteRecord(rec))
			}
			require.NoError(t, w.Close())

			rows := readCSVGzip(t, buf.Bytes(), tt.comma)
			require.Len(t, rows, 3)
			assert.Equal(t, pgn.Columns(), rows[0])
			assert.Equal(t, "Game A", rows[1][0])
			assert.Equal(t, `Player, "One"`, rows[1][4])
			assert.Equal(t, "?", rows[1][1])
			assert.Equal(t, "e4 e5 Nf3", rows[2][len(rows[2])-1])
		})
	}
}

func TestCSVGzipWriterHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewCSVGzipWriter(&buf, 0)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	rows := readCSVGzip(t, buf.Bytes(), 0)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], 18)
}

func TestJSONLinesWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONLinesWriter(&buf)
	for _, rec := range testRecords(3) {
		require.NoError(t, w.WriteRecord(rec))
	}
	require.NoError(t, w.Close())

	sc := bufio.NewScanner(&buf)
	lines := 0
	for sc.Scan() {
		var obj map[string]string
		require.NoError(t, json.Unmarshal(sc.Bytes(), &obj))
		assert.Len(t, obj, 18)
		assert.Equal(t, `Player, "One"`, obj["White"])
		assert.Equal(t, "e4 e5 Nf3", obj["Moves"])
		lines++
	}
	assert.Equal(t, 3, lines)
}

func TestJSONLinesKeyOrder(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONLinesWriter(&buf)
	require.NoError(t, w.WriteRecord(testRecords(1)[0]))
	require.NoError(t, w.Flush())

	line := buf.String()
	assert.True(t, bytes.HasPrefix([]byte(line), []byte(`{"Event":"Game A","Site":"?"`)), line)
}

func TestSQLiteWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.sqlite")
	w, err := NewSQLiteWriter(path)
	require.NoError(t, err)

	for _, rec := range testRecords(4) {
		require.NoError(t, w.WriteRecord(rec))
	}
	require.NoError(t, w.Flush())

	var n int
	require.NoError(t, w.DB().QueryRow("SELECT COUNT(*) FROM games").Scan(&n))
	assert.Equal(t, 4, n)

	var white, moves string
	require.NoError(t, w.DB().QueryRow(`SELECT "White", "Moves" FROM games WHERE "Event" = 'Game C'`).Scan(&white, &moves))
	assert.Equal(t, `Player, "One"`, white)
	assert.Equal(t, "e4 e5 Nf3", moves)

	require.NoError(t, w.Close())
}

func TestSplitWriterRotates(t *testing.T) {
	tests := []struct {
		name      string
		records   int
		perFile   int
		wantFiles []string
	}{
		{"empty input creates nothing", 0, 2, nil},
		{"exact fit", 4, 2, []string{"0.csv.gz", "1.csv.gz"}},
		{"remainder", 5, 2, []string{"0.csv.gz", "1.csv.gz", "2.csv.gz"}},
		{"one big file", 3, 10, []string{"0.csv.gz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			s, err := NewSplitWriter(dir, CSVGzip, tt.perFile)
			require.NoError(t, err)
			for _, rec := range testRecords(tt.records) {
				require.NoError(t, s.WriteRecord(rec))
			}
			require.NoError(t, s.Close())

			var names []string
			for _, f := range s.Files() {
				names = append(names, filepath.Base(f))
			}
			assert.Equal(t, tt.wantFiles, names)
			assert.Equal(t, tt.records, s.Written())

			total := 0
			for _, f := range s.Files() {
				data, err := os.ReadFile(f)
				require.NoError(t, err)
				rows := readCSVGzip(t, data, 0)
				assert.LessOrEqual(t, len(rows)-1, tt.perFile)
				total += len(rows) - 1
			}
			assert.Equal(t, tt.records, total)
		})
	}
}

func TestSplitWriterJSONLines(t *testing.T) {
	dir := t.TempDir()
	s, err := NewSplitWriter(dir, JSONLines, 2)
	require.NoError(t, err)
	for _, rec := range testRecords(3) {
		require.NoError(t, s.WriteRecord(rec))
	}
	require.NoError(t, s.Close())

	require.Len(t, s.Files(), 2)
	assert.Equal(t, "1.jsonl", filepath.Base(s.Files()[1]))
	data, err := os.ReadFile(s.Files()[1])
	require.NoError(t, err)
	assert.Equal(t, 1, bytes.Count(data, []byte("\n")))
}

func TestNewSplitWriterErrors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := NewSplitWriter(dir, CSVGzip, 0)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidConfig))

	_, err = NewSplitWriter(file, CSVGzip, 1)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidConfig))

	_, err = NewSplitWriter(filepath.Join(dir, "missing"), CSVGzip, 1)
	assert.True(t, stderrors.Is(err, os.ErrNotExist))

	_, err = NewSplitWriter(dir, Format(42), 1)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidConfig))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantExt string
		wantErr bool
	}{
		{"csv", CSVGzip, ".csv.gz", false},
		{"JSONL", JSONLines, ".jsonl", false},
		{"sqlite", SQLite, ".sqlite", false},
		{"parquet", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.True(t, stderrors.Is(err, errors.ErrInvalidConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantExt, got.Extension())
		})
	}
}
