package output

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"

	"github.com/lgbarn/pgn-planes-go/internal/pgn"
)

// JSONLinesWriter writes one JSON object per record, keys in
// pgn.Columns() order.
type JSONLinesWriter struct {
	w    *bufio.Writer
	cols []string
	buf  bytes.Buffer
}

// NewJSONLinesWriter creates a JSON Lines writer.
func NewJSONLinesWriter(w io.Writer) *JSONLinesWriter {
	return &JSONLinesWriter{
		w:    bufio.NewWriter(w),
		cols: pgn.Columns(),
	}
}

// WriteRecord writes a record as a single line.
func (jw *JSONLinesWriter) WriteRecord(rec *pgn.GameRecord) error {
	jw.buf.Reset()
	jw.buf.WriteByte('{')
	for i, value := range rec.Row() {
		if i > 0 {
			jw.buf.WriteByte(',')
		}
		key, _ := json.Marshal(jw.cols[i])
		val, _ := json.Marshal(value)
		jw.buf.Write(key)
		jw.buf.WriteByte(':')
		jw.buf.Write(val)
	}
	jw.buf.WriteString("}\n")
	_, err := jw.w.Write(jw.buf.Bytes())
	return err
}

// Flush flushes buffered lines.
func (jw *JSONLinesWriter) Flush() error {
	return jw.w.Flush()
}

// Close flushes the writer.
func (jw *JSONLinesWriter) Close() error {
	return jw.Flush()
}
