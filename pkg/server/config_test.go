// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestParseConfig(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		cfg := parseConfig()

		if cfg.Address != "" {
			t.Errorf("expected empty address, got %s", cfg.Address)
		}
		if cfg.Port != 8080 {
			t.Errorf("expected port 8080, got %d", cfg.Port)
		}
		if cfg.RateLimit != 100 {
			t.Errorf("expected rate limit 100, got %v", cfg.RateLimit)
		}
		if cfg.RateLimitBurst != 200 {
			t.Errorf("expected rate limit burst 200, got %d", cfg.RateLimitBurst)
		}
		if cfg.ReadTimeout != 10*time.Second {
			t.Errorf("expected read timeout 10s, got %v", cfg.ReadTimeout)
		}
		if cfg.WriteTimeout != 30*time.Second {
			t.Errorf("expected write timeout 30s, got %v", cfg.WriteTimeout)
		}
		if cfg.IdleTimeout != 120*time.Second {
			t.Errorf("expected idle timeout 120s, got %v", cfg.IdleTimeout)
		}
		if cfg.ShutdownTimeout != 30*time.Second {
			t.Errorf("expected shutdown timeout 30s, got %v", cfg.ShutdownTimeout)
		}
		if got := cfg.Addr(); got != ":8080" {
			t.Errorf("expected addr :8080, got %s", got)
		}
	})

	t.Run("overrides from environment", func(t *testing.T) {
		t.Setenv(EnvPort, "9090")
		t.Setenv(EnvAddress, "127.0.0.1")
		t.Setenv(EnvShutdownTimeoutSeconds, "5")
		t.Setenv(EnvRateLimit, "10")
		t.Setenv(EnvRateLimitBurst, "20")

		cfg := parseConfig()

		if cfg.Port != 9090 {
			t.Errorf("expected port 9090 from env, got %d", cfg.Port)
		}
		if cfg.Address != "127.0.0.1" {
			t.Errorf("expected address 127.0.0.1 from env, got %s", cfg.Address)
		}
		if cfg.ShutdownTimeout != 5*time.Second {
			t.Errorf("expected shutdown timeout 5s from env, got %v", cfg.ShutdownTimeout)
		}
		if cfg.RateLimit != rate.Limit(10) {
			t.Errorf("expected rate limit 10 from env, got %v", cfg.RateLimit)
		}
		if cfg.RateLimitBurst != 20 {
			t.Errorf("expected burst 20 from env, got %d", cfg.RateLimitBurst)
		}
		if got := cfg.Addr(); got != "127.0.0.1:9090" {
			t.Errorf("expected addr 127.0.0.1:9090, got %s", got)
		}
	})

	t.Run("invalid values from environment use defaults", func(t *testing.T) {
		t.Setenv(EnvPort, "invalid")
		t.Setenv(EnvShutdownTimeoutSeconds, "-3")
		t.Setenv(EnvRateLimit, "0")
		t.Setenv(EnvRateLimitBurst, "lots")

		cfg := parseConfig()

		if cfg.Port != 8080 {
			t.Errorf("expected default port 8080 for invalid env, got %d", cfg.Port)
		}
		if cfg.ShutdownTimeout != 30*time.Second {
			t.Errorf("expected default shutdown timeout, got %v", cfg.ShutdownTimeout)
		}
		if cfg.RateLimit != 100 {
			t.Errorf("expected default rate limit, got %v", cfg.RateLimit)
		}
		if cfg.RateLimitBurst != 200 {
			t.Errorf("expected default burst, got %d", cfg.RateLimitBurst)
		}
	})

	t.Run("out of range port uses default", func(t *testing.T) {
		t.Setenv(EnvPort, "70000")

		if cfg := parseConfig(); cfg.Port != 8080 {
			t.Errorf("expected default port 8080, got %d", cfg.Port)
		}
	})
}
