package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"payment": map[string]any{
			"pinHash": "",
			"latency": "2s",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"ledger": map[string]any{
			"dataDir": "data",
		},
		"session": map[string]any{
			"secret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "PAYMENT_PINHASH", want: "payment.pinHash"},
		{envKey: "PAYMENT_LATENCY", want: "payment.latency"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "LEDGER_DATADIR", want: "ledger.dataDir"},
		{envKey: "SESSION_SECRET", want: "session.secret"},
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
