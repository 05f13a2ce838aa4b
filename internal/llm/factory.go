package llm

import (
	"log"
	"os"
	"time"
)

const (
	// EnvMode is the environment variable name for mode selection.
	EnvMode = "CENSUS_CHAT_MODE"
	// ModeMock indicates the mock generator should be used.
	ModeMock = "MOCK"
)

// NewGenerator creates a generator based on the CENSUS_CHAT_MODE environment
// variable. If CENSUS_CHAT_MODE=MOCK, returns a MockGenerator; otherwise a
// real chat completions client.
func NewGenerator(baseURL, apiKey, model, system string, timeout time.Duration) Generator {
	if os.Getenv(EnvMode) == ModeMock {
		log.Println("CENSUS_CHAT_MODE=MOCK detected, using mock generator")
		return NewMockGenerator()
	}
	return NewClient(baseURL, apiKey, model, system, timeout)
}
