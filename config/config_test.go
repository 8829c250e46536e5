/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config_test

import (
	"testing"

	"dirpx.dev/kdx/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want %d", got.MaxUnwrap, config.DefaultMaxUnwrap)
	}
	if got.AutoFreeze != config.DefaultAutoFreeze {
		t.Fatalf("AutoFreeze = %v, want %v", got.AutoFreeze, config.DefaultAutoFreeze)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithMaxUnwrap(t *testing.T) {
	c := config.NewConfig(config.WithMaxUnwrap(3))
	if c.MaxUnwrap != 3 {
		t.Fatalf("MaxUnwrap = %d, want 3", c.MaxUnwrap)
	}

	// Negative resets to the default.
	c2 := config.NewConfig(config.WithMaxUnwrap(-1))
	if c2.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want default %d", c2.MaxUnwrap, config.DefaultMaxUnwrap)
	}
}

func TestWithAutoFreeze(t *testing.T) {
	c := config.NewConfig(config.WithAutoFreeze(true))
	if !c.AutoFreeze {
		t.Fatalf("AutoFreeze = %v, want true", c.AutoFreeze)
	}

	c2 := config.NewConfig(config.WithAutoFreeze(false))
	if c2.AutoFreeze {
		t.Fatalf("AutoFreeze = %v, want false", c2.AutoFreeze)
	}
}
