package poker

import "testing"

func TestCalculateOutsFlushDraw(t *testing.T) {
	t.Parallel()
	info := CalculateOuts(hole("Ah", "Kh"), cards("7h", "2h", "9s"))
	if !info.FlushDraw {
		t.Fatal("expected flush draw")
	}
	if info.Outs != 9 {
		t.Errorf("flush draw outs = %d, want 9", info.Outs)
	}
}

func TestCalculateOutsNoFlushDrawWithoutHoleCard(t *testing.T) {
	t.Parallel()
	// Four hearts on board but none in the hole: not our draw.
	info := CalculateOuts(hole("As", "Kd"), cards("7h", "2h", "9h", "Jh"))
	if info.FlushDraw {
		t.Error("board-only flush draw should not count")
	}
}

func TestCalculateOutsOpenEnded(t *testing.T) {
	t.Parallel()
	// 9-8-7-6 needs a five or a ten.
	info := CalculateOuts(hole("9h", "8d"), cards("7c", "6s", "Kd"))
	if !info.OpenEnded {
		t.Fatal("expected open-ended straight draw")
	}
	if info.Outs != 8 {
		t.Errorf("open-ender outs = %d, want 8", info.Outs)
	}
}

func TestCalculateOutsGutshot(t *testing.T) {
	t.Parallel()
	// 9-8-6-5 needs exactly a seven.
	info := CalculateOuts(hole("9h", "8d"), cards("6c", "5s", "Kd"))
	if !info.Gutshot {
		t.Fatal("expected gutshot")
	}
	if info.Outs != 4 {
		t.Errorf("gutshot outs = %d, want 4", info.Outs)
	}
}

func TestCalculateOutsDoubleGutshot(t *testing.T) {
	t.Parallel()
	// 4-6-7-8-T completes with a five or a nine.
	info := CalculateOuts(hole("4h", "8d"), cards("6c", "7s", "Td"))
	if !info.DoubleGutshot {
		t.Fatal("expected double gutshot")
	}
	if info.Outs != 8 {
		t.Errorf("double gutshot outs = %d, want 8", info.Outs)
	}
}

func TestCalculateOutsOvercards(t *testing.T) {
	t.Parallel()
	info := CalculateOuts(hole("Ah", "Kd"), cards("9c", "5s", "2d"))
	if !info.Overcards {
		t.Fatal("expected overcard outs")
	}
	if info.Outs != 6 {
		t.Errorf("two overcards = %d outs, want 6", info.Outs)
	}
}

func TestCalculateOutsNoOvercardsWithPair(t *testing.T) {
	t.Parallel()
	// Paired hands don't count overcards as outs.
	info := CalculateOuts(hole("Ah", "9d"), cards("9c", "5s", "2d"))
	if info.Overcards {
		t.Error("made pair should suppress overcard outs")
	}
}

func TestCalculateOutsDeduplicatesComboDraws(t *testing.T) {
	t.Parallel()
	// Flush draw plus open-ender sharing two suited straight outs:
	// 9 flush outs + 8 straight outs - 2 overlaps = 15.
	info := CalculateOuts(hole("9h", "8h"), cards("7h", "6h", "Kd"))
	if !info.FlushDraw || !info.OpenEnded {
		t.Fatal("expected combo draw")
	}
	if info.Outs != 15 {
		t.Errorf("combo outs = %d, want 15", info.Outs)
	}
}

func TestCalculateOutsMadeStraightHasNoDraw(t *testing.T) {
	t.Parallel()
	info := CalculateOuts(hole("9h", "8d"), cards("7c", "6s", "5d"))
	if info.OpenEnded || info.Gutshot || info.DoubleGutshot {
		t.Error("completed straight should report no straight draw")
	}
}

func TestAnalyzeTexture(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		board     []Card
		maxSuit   int
		paired    bool
		connected bool
	}{
		{"rainbow dry", cards("Ks", "7h", "2d"), 1, false, false},
		{"three flush", cards("Ks", "7s", "2s"), 3, false, false},
		{"four flush", cards("Ks", "7s", "2s", "9s"), 4, false, false},
		{"paired", cards("Ks", "Kh", "2d"), 1, true, false},
		{"connected", cards("9s", "8h", "6d"), 1, false, true},
		{"wet", cards("9s", "8s", "7s", "7h"), 3, true, true},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tx := AnalyzeTexture(tc.board)
			if tx.MaxSuitCount != tc.maxSuit {
				t.Errorf("MaxSuitCount = %d, want %d", tx.MaxSuitCount, tc.maxSuit)
			}
			if tx.Paired != tc.paired {
				t.Errorf("Paired = %v, want %v", tx.Paired, tc.paired)
			}
			if tx.Connected != tc.connected {
				t.Errorf("Connected = %v, want %v", tx.Connected, tc.connected)
			}
		})
	}
}
