package domain

import (
	"github.com/bitwhips/washapi/base/ctx"
)

// Notifier is the notification sink. Notify is fire-and-forget: failures are
// logged and swallowed, a wash never blocks or fails on notification.
// NotifyUrgent is the human escalation path for post-payment failures and must
// be attempted even when the wash itself is being failed.
type Notifier interface {
	Notify(c ctx.Ctx, message string)
	NotifyUrgent(c ctx.Ctx, message string)
}
