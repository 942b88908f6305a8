package mock

import (
	"context"

	"github.com/fwojciec/lexicon"
)

var _ lexicon.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of lexicon.RecordWriter.
type RecordWriter struct {
	WriteRecordFn func(ctx context.Context, r *lexicon.SourceRecord) (*lexicon.WriteResult, error)
}

func (w *RecordWriter) WriteRecord(ctx context.Context, r *lexicon.SourceRecord) (*lexicon.WriteResult, error) {
	return w.WriteRecordFn(ctx, r)
}
