package glob

import "testing"

func TestMatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pattern string
		value   string
		want    bool
	}{
		{"inst-*", "inst-a", true},
		{"inst-*", "inst-zz", true},
		{"inst-*", "other", false},
		{"*", "anything", true},
		{"*", "", true},
		{"?", "a", true},
		{"?", "", false},
		{"?", "ab", false},
		{"orders", "orders", true},
		{"orders", "ORDERS", true},
		{"Inst-?.Orders", "inst-a.orders", true},
		{"inst-a.orders", "inst-a-orders", false}, // dot is literal
		{"a+b", "a+b", true},                      // regexp metachars are literal
		{"a+b", "aab", false},
		{"inst-*", "INST-ZZ", true},
		{"db?", "db12", false},
	}
	for _, tc := range cases {
		if got := Match(tc.pattern, tc.value); got != tc.want {
			t.Fatalf("Match(%q, %q) = %v, want %v", tc.pattern, tc.value, got, tc.want)
		}
	}
}

func TestMatchAnchored(t *testing.T) {
	t.Parallel()

	// No implicit substring match in either direction.
	if Match("orders", "orders_archive") {
		t.Fatalf("pattern matched a longer value")
	}
	if Match("orders", "my_orders") {
		t.Fatalf("pattern matched as a suffix")
	}
}

func TestCompileCaches(t *testing.T) {
	t.Parallel()

	a, err := Compile("inst-*")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	b, err := Compile("inst-*")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if a != b {
		t.Fatalf("expected the cached matcher on the second compile")
	}
}
