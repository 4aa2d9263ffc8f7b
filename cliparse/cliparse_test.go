// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default database type sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.VotePolicy != PolicyOnePerVoter {
		t.Errorf("expected default vote policy %q, got %q", PolicyOnePerVoter, cfg.VotePolicy)
	}
	if cfg.MaxOptions != 0 {
		t.Errorf("expected unlimited options by default, got %d", cfg.MaxOptions)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_TYPE", "postgres")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("VOTE_POLICY", "unrestricted")
	os.Setenv("MAX_POLL_OPTIONS", "5")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.VotePolicy != PolicyUnrestricted {
		t.Errorf("expected unrestricted policy, got %q", cfg.VotePolicy)
	}
	if cfg.MaxOptions != 5 {
		t.Errorf("expected max options 5, got %d", cfg.MaxOptions)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("VOTE_POLICY", "unrestricted")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8081", "-d", "file:test.db", "-vote-policy", "one-per-voter"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8081 {
		t.Errorf("CLI should override env: expected 8081, got %d", cfg.Port)
	}
	if cfg.VotePolicy != PolicyOnePerVoter {
		t.Errorf("CLI should override env: expected one-per-voter, got %q", cfg.VotePolicy)
	}
}

func TestParseFlags_PostgresRequiresURL(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-t", "postgres"}); err == nil {
		t.Error("expected error when postgres selected without a database URL")
	}
}

func TestParseFlags_InvalidPolicy(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-vote-policy", "sometimes"}); err == nil {
		t.Error("expected error for unknown vote policy")
	}
}
