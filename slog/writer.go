package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lexicon"
)

// Ensure LoggingRecordWriter implements lexicon.RecordWriter.
var _ lexicon.RecordWriter = (*LoggingRecordWriter)(nil)

// LoggingRecordWriter wraps a RecordWriter with logging.
type LoggingRecordWriter struct {
	next   lexicon.RecordWriter
	logger *slog.Logger
}

// NewLoggingRecordWriter creates a new LoggingRecordWriter.
func NewLoggingRecordWriter(next lexicon.RecordWriter, logger *slog.Logger) *LoggingRecordWriter {
	return &LoggingRecordWriter{next: next, logger: logger}
}

// WriteRecord delegates to the wrapped writer and logs the outcome.
func (w *LoggingRecordWriter) WriteRecord(ctx context.Context, r *lexicon.SourceRecord) (res *lexicon.WriteResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"source", r.Language,
			"duration", time.Since(begin),
		}
		if res != nil {
			attrs = append(attrs, "path", res.Path, "bytes", res.Bytes, "unchanged", res.Unchanged)
		}
		attrs = append(attrs, "err", err)
		w.logger.Debug("write record", attrs...)
	}(time.Now())
	return w.next.WriteRecord(ctx, r)
}
