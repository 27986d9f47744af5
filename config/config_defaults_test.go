package config

import "testing"

func TestApplyDefaults_FillsMissingOnboardingSection(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	if cfg.Onboarding == nil {
		t.Fatal("Onboarding section should be populated when the file omits it")
	}
	if cfg.Onboarding.InviteBaseURL != defaultInviteBaseURL {
		t.Fatalf("InviteBaseURL = %q, want %q", cfg.Onboarding.InviteBaseURL, defaultInviteBaseURL)
	}
	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Onboarding: &OnboardingConfig{InviteBaseURL: "https://portal.example.com"},
	}
	cfg.HTTP.MaxRequestBodySize = "2MB"

	applyDefaults(cfg)

	if cfg.Onboarding.InviteBaseURL != "https://portal.example.com" {
		t.Fatalf("InviteBaseURL overwritten: %q", cfg.Onboarding.InviteBaseURL)
	}
	if cfg.HTTP.MaxRequestBodySize != "2MB" {
		t.Fatalf("MaxRequestBodySize overwritten: %q", cfg.HTTP.MaxRequestBodySize)
	}
}
