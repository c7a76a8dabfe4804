package report

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"datawash/internal/errors"
	"datawash/internal/frame"
)

// RenderTable renders a table in dataframe layout: dimensions, aligned
// columns, and "NaN" for absent cells. Columns are loaded as strings so
// cells appear exactly as the table renders them.
func RenderTable(t *frame.Table) (string, error) {
	df := dataframe.LoadRecords(
		t.Records(),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return "", errors.NewAppError(errors.ErrTypeValidation, "failed to render table", df.Err)
	}
	return df.String(), nil
}
