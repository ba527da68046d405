// Copyright 2025 go-simd-conform Authors
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

//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		nativeWidth = 0
		nativeName = "scalar"
		return
	}

	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512VL && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512DQ:
		nativeWidth = 64
		nativeName = "avx512"
	case cpu.X86.HasAVX2:
		nativeWidth = 32
		nativeName = "avx2"
	default:
		// SSE2 is part of the x86-64 baseline.
		nativeWidth = 16
		nativeName = "sse2"
	}
}
