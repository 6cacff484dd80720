// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package ftoa

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	for _, x := range [...]struct {
		f    float32
		want string
	}{
		{0, "0.0"},
		{float32(math.Copysign(0, -1)), "-0.0"},
		{1, "1.0"},
		{-2, "-2.0"},
		{0.5, "0.5"},
		{0.1, "0.1"},
		{-3.25, "-3.25"},
		{1e-7, "0.0000001"},
		{1e10, "10000000000.0"},
		{123456.78, "123456.78"},
		{math.MaxFloat32, "340282350000000000000000000000000000000.0"},
		{float32(math.Inf(1)), "inf"},
		{float32(math.Inf(-1)), "-inf"},
		{float32(math.NaN()), "NaN"},
	} {
		if s := Format(x.f); s != x.want {
			t.Fatalf("Format(%v):\nhave %s\nwant %s", x.f, s, x.want)
		}
	}
}
