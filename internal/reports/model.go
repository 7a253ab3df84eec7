package reports

import (
	"time"

	"github.com/uptrace/bun"
)

// ErrorReport mirrors a row of the hosted error_reports table the app writes
// into when something goes wrong on a device.
type ErrorReport struct {
	bun.BaseModel `bun:"table:error_reports,alias:er"`

	ID             string    `bun:"id,pk"`
	Timestamp      time.Time `bun:"timestamp,nullzero"`
	ErrorType      string    `bun:"error_type,nullzero"`
	UserID         string    `bun:"user_id,nullzero"`
	QuestionID     string    `bun:"question_id,nullzero"`
	ErrorMessage   string    `bun:"error_message,nullzero"`
	UserMessage    string    `bun:"user_message,nullzero"`
	ErrorCode      string    `bun:"error_code,nullzero"`
	Context        string    `bun:"context,nullzero"`
	AdditionalInfo string    `bun:"additional_info,nullzero"`
	StackTrace     string    `bun:"stack_trace,nullzero"`
	DeviceInfo     string    `bun:"device_info,nullzero"`
	AppVersion     string    `bun:"app_version,nullzero"`
	BuildNumber    string    `bun:"build_number,nullzero"`
}

// Summary returns the user-facing message when present, the technical one
// otherwise, truncated to max characters for list display.
func (r ErrorReport) Summary(max int) string {
	msg := r.UserMessage
	if msg == "" {
		msg = r.ErrorMessage
	}
	if max > 0 && len(msg) > max {
		return msg[:max] + "..."
	}
	return msg
}

// KnownErrorTypes lists the error_type values the app reports, for flag help.
var KnownErrorTypes = []string{
	"AppErrorType.network",
	"AppErrorType.dataLoading",
	"AppErrorType.authentication",
	"AppErrorType.permission",
	"AppErrorType.validation",
	"AppErrorType.payment",
	"AppErrorType.ai",
	"AppErrorType.api",
	"AppErrorType.storage",
	"AppErrorType.sync",
	"AppErrorType.unknown",
}
