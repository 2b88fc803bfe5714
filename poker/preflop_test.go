package poker

import "testing"

func TestPreflopStrength(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"pocket aces", "As", "Ah", 98},
		{"pocket kings", "Ks", "Kh", 96.5},
		{"pocket deuces", "2s", "2h", 80},
		{"ace king suited", "As", "Ks", 95},
		{"ace king offsuit", "As", "Kh", 92},
		{"ace queen suited", "As", "Qs", 88},
		{"ace ten offsuit", "As", "Th", 65},
		{"ace five suited", "As", "5s", 60},
		{"ace five offsuit", "As", "5h", 45},
		{"king queen suited", "Ks", "Qs", 73},
		{"king jack offsuit", "Ks", "Jh", 63},
		{"nine eight suited", "9s", "8s", 62},
		{"seven two offsuit", "7s", "2h", 25},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := PreflopStrength(MustParseCard(tc.a), MustParseCard(tc.b))
			if got != tc.want {
				t.Errorf("PreflopStrength(%s, %s) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestPreflopStrengthIsSymmetric(t *testing.T) {
	t.Parallel()
	a, b := MustParseCard("Ks"), MustParseCard("9s")
	if PreflopStrength(a, b) != PreflopStrength(b, a) {
		t.Error("argument order should not matter")
	}
}

func TestCategorizeHoleCards(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b string
		want HoleCategory
	}{
		{"As", "Ah", CategoryPremium},
		{"As", "Qh", CategoryPremium},
		{"As", "Th", CategoryStrong},
		{"Ks", "Qs", CategoryStrong},
		{"9s", "8s", CategoryPlayable},
		{"Ks", "9h", CategoryWeak},
		{"7s", "2h", CategoryTrash},
	}
	for _, tc := range tests {
		got := CategorizeHoleCards(MustParseCard(tc.a), MustParseCard(tc.b))
		if got != tc.want {
			t.Errorf("CategorizeHoleCards(%s, %s) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestPotOdds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pot, toCall, want int
	}{
		{300, 100, 25},
		{100, 0, 0},
		{100, 100, 50},
		{50, 100, 67},
		{15, 5, 25},
	}
	for _, tc := range tests {
		if got := PotOdds(tc.pot, tc.toCall); got != tc.want {
			t.Errorf("PotOdds(%d, %d) = %d, want %d", tc.pot, tc.toCall, got, tc.want)
		}
	}
}

func TestEstimateEquity(t *testing.T) {
	t.Parallel()
	if got := EstimateEquity(9, 2); got != 36 {
		t.Errorf("flush draw on flop = %d, want 36", got)
	}
	if got := EstimateEquity(9, 1); got != 18 {
		t.Errorf("flush draw on turn = %d, want 18", got)
	}
	if got := EstimateEquity(30, 2); got != 100 {
		t.Errorf("equity should cap at 100, got %d", got)
	}
}
