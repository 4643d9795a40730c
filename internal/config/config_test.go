package config

import "testing"

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("TELEGRAM_CHAT_ID", "chat")
	t.Setenv("OPENAI_API_KEY", "key")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PerCompanyCap != 7 {
		t.Errorf("PerCompanyCap = %d", cfg.PerCompanyCap)
	}
	if cfg.MaxArticles != 120 {
		t.Errorf("MaxArticles = %d", cfg.MaxArticles)
	}
	if cfg.MaxBullets != 15 {
		t.Errorf("MaxBullets = %d", cfg.MaxBullets)
	}
	if cfg.MessageCharLimit != 4096 {
		t.Errorf("MessageCharLimit = %d", cfg.MessageCharLimit)
	}
	if cfg.SameDomainThreshold != 0.80 || cfg.CrossDomainThreshold != 0.87 {
		t.Errorf("thresholds = %.2f / %.2f", cfg.SameDomainThreshold, cfg.CrossDomainThreshold)
	}
	if cfg.SummaryProvider != "openai" {
		t.Errorf("SummaryProvider = %s", cfg.SummaryProvider)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PER_COMPANY_CAP", "3")
	t.Setenv("SAME_DOMAIN_THRESHOLD", "0.75")
	t.Setenv("CROSS_DOMAIN_THRESHOLD", "0.9")
	t.Setenv("MESSAGE_CHAR_LIMIT", "2000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PerCompanyCap != 3 {
		t.Errorf("PerCompanyCap = %d", cfg.PerCompanyCap)
	}
	if cfg.SameDomainThreshold != 0.75 || cfg.CrossDomainThreshold != 0.9 {
		t.Errorf("thresholds = %.2f / %.2f", cfg.SameDomainThreshold, cfg.CrossDomainThreshold)
	}
	if cfg.MessageCharLimit != 2000 {
		t.Errorf("MessageCharLimit = %d", cfg.MessageCharLimit)
	}
}

func TestValidateRequiresTelegram(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "chat")
	t.Setenv("OPENAI_API_KEY", "key")
	if _, err := Load(); err == nil {
		t.Error("expected error for missing TELEGRAM_TOKEN")
	}
}

func TestValidateProviderKeys(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("TELEGRAM_CHAT_ID", "chat")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gkey")

	if _, err := Load(); err == nil {
		t.Error("expected error: openai selected without OPENAI_API_KEY")
	}

	t.Setenv("SUMMARY_PROVIDER", "gemini")
	if _, err := Load(); err != nil {
		t.Errorf("gemini provider with key should validate, got %v", err)
	}

	t.Setenv("SUMMARY_PROVIDER", "other")
	if _, err := Load(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestValidateThresholdOrdering(t *testing.T) {
	setRequired(t)
	t.Setenv("SAME_DOMAIN_THRESHOLD", "0.95")
	t.Setenv("CROSS_DOMAIN_THRESHOLD", "0.85")
	if _, err := Load(); err == nil {
		t.Error("expected error when same-domain bar exceeds cross-domain bar")
	}
}
