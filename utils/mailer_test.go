package utils_test

import (
	"testing"

	"contactportal/utils"
)

func TestBuildResetURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		token   string
		want    string
	}{
		{
			name:    "Default base when APP_BASE_URL unset",
			baseURL: "",
			token:   "tok123",
			want:    "http://localhost:8080/reset-password/tok123",
		},
		{
			name:    "Configured base",
			baseURL: "https://portal.example.com",
			token:   "tok123",
			want:    "https://portal.example.com/reset-password/tok123",
		},
		{
			name:    "Trailing slash on base is not doubled",
			baseURL: "https://portal.example.com/",
			token:   "tok123",
			want:    "https://portal.example.com/reset-password/tok123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_BASE_URL", tt.baseURL)
			if got := utils.BuildResetURL(tt.token); got != tt.want {
				t.Errorf("BuildResetURL() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMailConfigured(t *testing.T) {
	t.Setenv("SENDGRID_API_KEY", "")
	if utils.MailConfigured() {
		t.Error("MailConfigured() = true without an API key")
	}

	t.Setenv("SENDGRID_API_KEY", "SG.test")
	if !utils.MailConfigured() {
		t.Error("MailConfigured() = false with an API key set")
	}
}
