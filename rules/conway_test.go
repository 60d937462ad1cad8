package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{"dead stays dead with no neighbors", 0, false, false},
		{"dead stays dead with two neighbors", 2, false, false},
		{"dead is born with three neighbors", 3, false, true},
		{"dead stays dead with four neighbors", 4, false, false},
		{"live dies of underpopulation with zero", 0, true, false},
		{"live dies of underpopulation with one", 1, true, false},
		{"live survives with two", 2, true, true},
		{"live survives with three", 3, true, true},
		{"live dies of overpopulation with four", 4, true, false},
		{"live dies of overpopulation with eight", 8, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyConwayRules(tt.neighbors, tt.alive); got != tt.want {
				t.Fatalf("ApplyConwayRules(%d, %v) = %v, want %v", tt.neighbors, tt.alive, got, tt.want)
			}
		})
	}
}

// The merged k==3 condition must match the textbook two-condition rule.
func TestApplyConwayRulesMatchesClassicForm(t *testing.T) {
	classic := func(neighbors int, alive bool) bool {
		if alive {
			return neighbors == 2 || neighbors == 3
		}
		return neighbors == 3
	}
	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{false, true} {
			if got, want := ApplyConwayRules(n, alive), classic(n, alive); got != want {
				t.Fatalf("neighbors=%d alive=%v: got %v, classic rule says %v", n, alive, got, want)
			}
		}
	}
}
