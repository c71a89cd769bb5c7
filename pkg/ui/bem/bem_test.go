package bem

import (
	"reflect"
	"testing"
)

func TestBlock(t *testing.T) {
	tests := []struct {
		name string
		mods Modifiers
		want string
	}{
		{"no modifiers", nil, "select"},
		{"bool true", Modifiers{"disabled": true}, "select select_disabled"},
		{"bool false dropped", Modifiers{"disabled": false}, "select"},
		{"string value", Modifiers{"view": "primary"}, "select select_view_primary"},
		{"empty string dropped", Modifiers{"view": ""}, "select"},
		{"number value", Modifiers{"size": 12}, "select select_size_12"},
		{"nil dropped", Modifiers{"size": nil}, "select"},
		{"sorted", Modifiers{"view": "ghost", "disabled": true, "size": "m"}, "select select_disabled select_size_m select_view_ghost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Block("select", tt.mods); got != tt.want {
				t.Errorf("Block() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestElement(t *testing.T) {
	if got := Element("select", "drop-down"); got != "select__drop-down" {
		t.Errorf("Element() = %q", got)
	}
}

func TestSplit(t *testing.T) {
	got := Split(" select  select_disabled ")
	want := []string{"select", "select_disabled"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split() = %v, want %v", got, want)
	}
}
