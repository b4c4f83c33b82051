package leave

import "strings"

// DebitMode decides when an approved request consumes its balance.
type DebitMode string

const (
	// DebitOnApprove checks at submission and debits inside the approval
	// transaction. Concurrent pending requests can exceed the balance until
	// one of them is approved; the second approval then fails.
	DebitOnApprove DebitMode = "on_approve"
	// DebitOnSubmit reserves the days at submission and credits them back on rejection.
	DebitOnSubmit DebitMode = "on_submit"
)

func ParseDebitMode(v string) DebitMode {
	switch DebitMode(strings.ToLower(strings.TrimSpace(v))) {
	case DebitOnSubmit:
		return DebitOnSubmit
	default:
		return DebitOnApprove
	}
}
