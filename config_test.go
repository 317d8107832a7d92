// Copyright (c) 2025 rrtplan authors
// SPDX-License-Identifier: MIT

package covertree

import "testing"

func TestConfig_SetDefaults(t *testing.T) {
	t.Parallel()

	cfg := Config{DOF: 2, StepLength: 0.5, MaxDistance: 16}
	cfg.setDefaults()

	if cfg.Base != 2.0 {
		t.Errorf("Base = %v, want 2.0", cfg.Base)
	}
	if cfg.BaseChildMult != 2.0 {
		t.Errorf("BaseChildMult = %v, want 2.0", cfg.BaseChildMult)
	}
	if cfg.ExtendIterationCap != 100 {
		t.Errorf("ExtendIterationCap = %v, want 100", cfg.ExtendIterationCap)
	}
}

func TestConfig_SetDefaultsRespectsOverrides(t *testing.T) {
	t.Parallel()

	cfg := Config{DOF: 2, StepLength: 0.5, MaxDistance: 16, Base: 3.0, BaseChildMult: 4.0, ExtendIterationCap: 10}
	cfg.setDefaults()

	if cfg.Base != 3.0 || cfg.BaseChildMult != 4.0 || cfg.ExtendIterationCap != 10 {
		t.Errorf("setDefaults overrode explicit values: %+v", cfg)
	}
}

func TestConfig_BaseChildMultClampedToBase(t *testing.T) {
	t.Parallel()

	cfg := Config{DOF: 2, StepLength: 0.5, MaxDistance: 16, Base: 3.0, BaseChildMult: 1.0}
	cfg.setDefaults()

	if cfg.BaseChildMult != 3.0 {
		t.Errorf("BaseChildMult = %v, want clamped to Base=3.0", cfg.BaseChildMult)
	}
}
