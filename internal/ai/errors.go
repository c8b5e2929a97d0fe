package ai

import "errors"

// Failure categories for the AI boundary. Every provider error wraps
// exactly one of these; raw transport errors never escape the package.
var (
	// ErrRequestFailed covers transport, timeout and unknown failures.
	ErrRequestFailed = errors.New("ai request failed")

	// ErrQuotaExceeded signals a rate or quota limit from the backend.
	ErrQuotaExceeded = errors.New("ai quota exceeded")

	// ErrContentRejected signals a safety or content-policy rejection.
	ErrContentRejected = errors.New("ai content rejected")

	// ErrResponseMalformed signals a missing response or one that does not
	// parse as the declared schema.
	ErrResponseMalformed = errors.New("ai response malformed")
)

// UserMessage maps a boundary failure to the message shown to the user.
// Malformed responses read the same as generic failures on purpose; no
// schema diagnostics are surfaced.
func UserMessage(err error, lang Language) string {
	zh := lang == LanguageChinese
	switch {
	case errors.Is(err, ErrQuotaExceeded):
		if zh {
			return "已达到使用限制，请稍后再试。"
		}
		return "Usage limit reached. Please try again later."
	case errors.Is(err, ErrContentRejected):
		if zh {
			return "由于内容安全政策，无法处理该图片。"
		}
		return "The image could not be processed due to content safety policies."
	default:
		if zh {
			return "分析失败，请重试。"
		}
		return "Analysis failed. Please try again."
	}
}
