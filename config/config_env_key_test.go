package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"kakao": map[string]any{
			"apiKey":          "",
			"requestInterval": "500ms",
		},
		"batch": map[string]any{
			"defaultLimit": 10000,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "KAKAO_APIKEY", want: "kakao.apiKey"},
		{envKey: "KAKAO_REQUESTINTERVAL", want: "kakao.requestInterval"},
		{envKey: "BATCH_DEFAULTLIMIT", want: "batch.defaultLimit"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Kakao.BaseURL != defaultKakaoBaseURL {
		t.Fatalf("Kakao.BaseURL = %q, want %q", cfg.Kakao.BaseURL, defaultKakaoBaseURL)
	}
	if cfg.Kakao.RequestInterval != defaultKakaoRequestInterval {
		t.Fatalf("Kakao.RequestInterval = %v, want %v", cfg.Kakao.RequestInterval, defaultKakaoRequestInterval)
	}
	if cfg.Batch.DefaultLimit != defaultBatchLimit {
		t.Fatalf("Batch.DefaultLimit = %d, want %d", cfg.Batch.DefaultLimit, defaultBatchLimit)
	}
	if cfg.Batch.MaxErrors != defaultBatchMaxErrors {
		t.Fatalf("Batch.MaxErrors = %d, want %d", cfg.Batch.MaxErrors, defaultBatchMaxErrors)
	}
}
