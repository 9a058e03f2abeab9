package command

import "github.com/hlx-protocol/hlx-go/pkg/model"

// QuoteName wraps a name in ASCII double quotes, truncating it to the
// model's name length first. Validation of the remaining bytes is the
// model's job; the codec only shapes the payload.
func QuoteName(name string) string {
	return `"` + model.TruncateName(name) + `"`
}
