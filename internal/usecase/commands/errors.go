package commands

import (
	"log/slog"

	"perks-ledger/internal/pkg/errs"
)

// classify passes business failures through. Anything else is logged with a
// stack excerpt and marked Unexpected so callers never see storage detail.
func classify(logger *slog.Logger, op string, err error) error {
	if err == nil {
		return nil
	}
	if kind := errs.KindOf(err); kind != errs.ErrUnexpected {
		return err
	}
	logger.Error(op+" failed",
		slog.String("error", err.Error()),
		slog.Any("stack", errs.ExtractStackLines(err, 8)))
	return errs.Mark(errs.Wrap(err, op), errs.ErrUnexpected)
}
