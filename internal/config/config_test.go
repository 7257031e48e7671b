package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("CALCULATOR_API_URL", "")
	t.Setenv("POLL_INTERVAL_MS", "")
	t.Setenv("API_WAIT_TIMEOUT_MS", "")
	t.Setenv("STUB_API_PORT", "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() неожиданная ошибка: %v", err)
	}

	if cfg.APIURL != "http://localhost:8080" {
		t.Errorf("APIURL = %v, ожидается http://localhost:8080", cfg.APIURL)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Errorf("PollInterval = %v, ожидается 5s", cfg.PollInterval)
	}
	if cfg.APIWaitTimeout != 15*time.Second {
		t.Errorf("APIWaitTimeout = %v, ожидается 15s", cfg.APIWaitTimeout)
	}
	if cfg.StubAPIPort != "8080" {
		t.Errorf("StubAPIPort = %v, ожидается 8080", cfg.StubAPIPort)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("CALCULATOR_API_URL", "http://calc:9000")
	t.Setenv("POLL_INTERVAL_MS", "250")
	t.Setenv("API_WAIT_TIMEOUT_MS", "0")
	t.Setenv("STUB_API_PORT", "9000")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() неожиданная ошибка: %v", err)
	}

	if cfg.APIURL != "http://calc:9000" {
		t.Errorf("APIURL = %v", cfg.APIURL)
	}
	if cfg.PollInterval != 250*time.Millisecond {
		t.Errorf("PollInterval = %v, ожидается 250ms", cfg.PollInterval)
	}
	if cfg.APIWaitTimeout != 0 {
		t.Errorf("APIWaitTimeout = %v, ожидается 0", cfg.APIWaitTimeout)
	}
	if cfg.StubAPIPort != "9000" {
		t.Errorf("StubAPIPort = %v", cfg.StubAPIPort)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "нечисловой интервал", key: "POLL_INTERVAL_MS", value: "fast"},
		{name: "нулевой интервал", key: "POLL_INTERVAL_MS", value: "0"},
		{name: "отрицательное ожидание", key: "API_WAIT_TIMEOUT_MS", value: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("POLL_INTERVAL_MS", "")
			t.Setenv("API_WAIT_TIMEOUT_MS", "")
			t.Setenv(tt.key, tt.value)

			if _, err := FromEnv(); err == nil {
				t.Errorf("FromEnv() с %s=%s должен вернуть ошибку", tt.key, tt.value)
			}
		})
	}
}
