package shared

import (
	"perks-ledger/internal/infra"
)

// TranslateNotFound replaces a storage not-found with the caller-facing
// error. Other failures pass through.
func TranslateNotFound(err, replacement error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return replacement
	}
	return err
}
