package report

import (
	"context"

	"github.com/nao1215/txreport/internal/model"
)

// Generate fetches every transaction from src once and encodes them with enc.
//
// An empty or nil collection fails with a GenerationError, as does any error
// from src or enc. The records are passed to enc in the order src returned
// them. Generate performs no retries.
func Generate(ctx context.Context, src Source, enc Encoder) (*model.Output, error) {
	records, err := src.FetchAll(ctx)
	if err != nil {
		return nil, newGenerationError(err)
	}
	if len(records) == 0 {
		return nil, errNoTransactions()
	}

	content, err := enc.Encode(records)
	if err != nil {
		return nil, newGenerationError(err)
	}

	return &model.Output{
		Content:     content,
		MediaType:   enc.MediaType(),
		Disposition: enc.Disposition(),
		Extension:   enc.Extension(),
	}, nil
}
