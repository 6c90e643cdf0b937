/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package pow

import (
	"math/big"
	"testing"
)

func TestCompactToBig(t *testing.T) {
	tests := []struct {
		name    string
		compact uint32
		want    *big.Int
	}{
		{
			name:    "zero",
			compact: 0,
			want:    big.NewInt(0),
		},
		{
			name:    "genesis difficulty",
			compact: 0x1d00ffff,
			want: new(big.Int).Lsh(
				big.NewInt(0xffff), 8*(0x1d-3)),
		},
		{
			name:    "small exponent",
			compact: 0x01123456,
			want:    big.NewInt(0x12),
		},
		{
			name:    "sign bit set",
			compact: 0x04923456,
			want:    big.NewInt(-0x12345600),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompactToBig(tt.compact)
			if got.Cmp(tt.want) != 0 {
				t.Errorf("CompactToBig(%08x) = %x, want %x",
					tt.compact, got, tt.want)
			}
		})
	}
}

func TestBigToCompactRoundTrip(t *testing.T) {
	for _, compact := range []uint32{0x1d00ffff, 0x1b0404cb, 0x207fffff, 0x1f01fff0} {
		if got := BigToCompact(CompactToBig(compact)); got != compact {
			t.Errorf("BigToCompact(CompactToBig(%08x)) = %08x", compact, got)
		}
	}
}

func TestCalcWork(t *testing.T) {
	tests := []struct {
		name string
		bits uint32
		want string // big-endian hex
	}{
		{
			name: "genesis bits",
			bits: 0x1d00ffff,
			want: "100010001",
		},
		{
			name: "zero target",
			bits: 0,
			want: "0",
		},
		{
			name: "negative target",
			bits: 0x04923456,
			want: "0",
		},
		{
			name: "regtest bits",
			bits: 0x207fffff,
			want: "2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, ok := new(big.Int).SetString(tt.want, 16)
			if !ok {
				t.Fatalf("bad test vector %q", tt.want)
			}
			got := CalcWork(tt.bits)
			if got.Cmp(want) != 0 {
				t.Errorf("CalcWork(%08x) = %x, want %x", tt.bits, got, want)
			}
		})
	}
}
