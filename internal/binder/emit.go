package binder

import (
	"fmt"

	"sable/internal/diag"
)

// CheckDefaults runs the post-fold pass over bound symbols: a parameter that
// is both null-checked and defaulted to a constant null would throw on every
// call that omits the argument, so it gets a warning. The warning only fires
// for parameters whose annotation survived binding; a rejected annotation was
// already an error and stays silent here.
func CheckDefaults(result *Result, r diag.Reporter) {
	for _, member := range result.Members {
		for _, param := range member.Params {
			if !param.IsNullChecked || !param.HasDefault {
				continue
			}
			if Fold(param.Default).Kind != ValNull {
				continue
			}
			r.Report(diag.EmitNullCheckedNullDefault, diag.SevWarning, param.NameSpan,
				fmt.Sprintf("parameter of type '%s' is null-checked but its default value is null", param.TypeName),
				nil)
		}
	}
}
