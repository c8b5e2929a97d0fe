package ai

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestClassifyGeminiError_Quota(t *testing.T) {
	err := classifyGeminiError(genai.APIError{Code: http.StatusTooManyRequests, Message: "quota exceeded"})

	if !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("expected ErrQuotaExceeded, got %v", err)
	}
}

func TestClassifyGeminiError_ResourceExhaustedStatus(t *testing.T) {
	err := classifyGeminiError(genai.APIError{Code: http.StatusTooManyRequests, Status: "RESOURCE_EXHAUSTED"})

	if !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("expected ErrQuotaExceeded, got %v", err)
	}
}

func TestClassifyGeminiError_Safety(t *testing.T) {
	err := classifyGeminiError(genai.APIError{Code: http.StatusBadRequest, Message: "blocked by SAFETY settings"})

	if !errors.Is(err, ErrContentRejected) {
		t.Errorf("expected ErrContentRejected, got %v", err)
	}
}

func TestClassifyGeminiError_Generic(t *testing.T) {
	err := classifyGeminiError(errors.New("connection refused"))

	if !errors.Is(err, ErrRequestFailed) {
		t.Errorf("expected ErrRequestFailed, got %v", err)
	}
}

func TestClassifyGeminiError_WrappedAPIError(t *testing.T) {
	wrapped := fmt.Errorf("call failed: %w", genai.APIError{Code: http.StatusTooManyRequests})

	if !errors.Is(classifyGeminiError(wrapped), ErrQuotaExceeded) {
		t.Error("expected wrapped API error to classify as quota")
	}
}

func TestUserMessage_DistinctCategories(t *testing.T) {
	quota := UserMessage(fmt.Errorf("x: %w", ErrQuotaExceeded), LanguageEnglish)
	rejected := UserMessage(fmt.Errorf("x: %w", ErrContentRejected), LanguageEnglish)
	generic := UserMessage(fmt.Errorf("x: %w", ErrRequestFailed), LanguageEnglish)

	if quota == generic || rejected == generic || quota == rejected {
		t.Error("expected distinct messages for quota, rejected and generic failures")
	}
}

func TestUserMessage_MalformedReadsAsGeneric(t *testing.T) {
	malformed := UserMessage(fmt.Errorf("x: %w", ErrResponseMalformed), LanguageEnglish)
	generic := UserMessage(fmt.Errorf("x: %w", ErrRequestFailed), LanguageEnglish)

	if malformed != generic {
		t.Errorf("malformed responses must read as generic failures, got %q vs %q", malformed, generic)
	}
}

func TestUserMessage_Chinese(t *testing.T) {
	msg := UserMessage(ErrQuotaExceeded, LanguageChinese)

	if strings.Contains(msg, "Usage limit") {
		t.Errorf("expected Chinese message, got %q", msg)
	}

	if msg == "" {
		t.Error("expected non-empty message")
	}
}
