package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectLookupArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"pcs"},
			want: []string{"pcs"},
		},
		{
			name: "direct item id first token",
			in:   []string{"pcs", "item-vth8x2aq"},
			want: []string{"pcs", "items", "find", "item-vth8x2aq"},
		},
		{
			name: "uuid scan code first token",
			in:   []string{"pcs", "0b7e9a1c-4a2f-4d5e-8c3b-1f2a3b4c5d6e"},
			want: []string{"pcs", "items", "find", "0b7e9a1c-4a2f-4d5e-8c3b-1f2a3b4c5d6e"},
		},
		{
			name: "direct item id after value flag",
			in:   []string{"pcs", "--dir", "./tmp-test-ws", "item-vth8x2aq"},
			want: []string{"pcs", "--dir", "./tmp-test-ws", "items", "find", "item-vth8x2aq"},
		},
		{
			name: "direct item id after equals flag",
			in:   []string{"pcs", "--dir=./tmp-test-ws", "item-vth8x2aq"},
			want: []string{"pcs", "--dir=./tmp-test-ws", "items", "find", "item-vth8x2aq"},
		},
		{
			name: "direct item id after bool flag",
			in:   []string{"pcs", "--pretty", "item-vth8x2aq"},
			want: []string{"pcs", "--pretty", "items", "find", "item-vth8x2aq"},
		},
		{
			name: "direct item id after double dash",
			in:   []string{"pcs", "--dir", "./tmp-test-ws", "--", "item-vth8x2aq"},
			want: []string{"pcs", "--dir", "./tmp-test-ws", "--", "items", "find", "item-vth8x2aq"},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"pcs", "items", "find", "item-vth8x2aq"},
			want: []string{"pcs", "items", "find", "item-vth8x2aq"},
		},
		{
			name: "unknown command not rewritten",
			in:   []string{"pcs", "wat"},
			want: []string{"pcs", "wat"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectLookupArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v; want %v", got, tt.want)
			}
		})
	}
}
