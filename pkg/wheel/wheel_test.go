package wheel

import "testing"

func TestSpanValue(t *testing.T) {
	months := Span{Start: 1, Length: 12}
	tests := []struct {
		row  int
		want int
	}{
		{0, 1},
		{11, 12},
		{12, 1},
		{-1, 12},
		{Center, 1 + Center%12},
	}
	for _, tt := range tests {
		if got := months.Value(tt.row); got != tt.want {
			t.Errorf("Value(%d) = %d, want %d", tt.row, got, tt.want)
		}
	}
}

func TestSpanCenterRowRoundTrip(t *testing.T) {
	spans := []Span{
		{Start: 1, Length: 12},
		{Start: 1, Length: 31},
		{Start: 1, Length: 9999},
		{Start: 0, Length: 24},
		{Start: 0, Length: 60},
	}
	for _, s := range spans {
		for v := s.Start; v < s.Start+s.Length; v++ {
			row := s.CenterRow(v)
			if got := s.Value(row); got != v {
				t.Fatalf("span %+v: Value(CenterRow(%d)) = %d", s, v, got)
			}
			if row < 0 || row >= Rows {
				t.Fatalf("span %+v: CenterRow(%d) = %d outside the wheel", s, v, row)
			}
		}
	}
}

func TestSpanCenterRowIsNearCenter(t *testing.T) {
	hours := Span{Start: 0, Length: 24}
	start := hours.CenterRow(0)
	if start > Center || Center-start >= 24 {
		t.Errorf("CenterRow(0) = %d, want within one cycle below %d", start, Center)
	}
	if start%24 != 0 {
		t.Errorf("CenterRow(0) = %d, want a multiple of 24", start)
	}
}

func TestSpanContains(t *testing.T) {
	days := Span{Start: 1, Length: 31}
	if !days.Contains(1) || !days.Contains(31) {
		t.Error("expected both ends to be contained")
	}
	if days.Contains(0) || days.Contains(32) {
		t.Error("expected values outside the cycle to be rejected")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5); got != 0 {
		t.Errorf("Clamp(-5) = %d, want 0", got)
	}
	if got := Clamp(Rows + 10); got != Rows-1 {
		t.Errorf("Clamp(Rows+10) = %d, want %d", got, Rows-1)
	}
	if got := Clamp(Center); got != Center {
		t.Errorf("Clamp(Center) = %d, want %d", got, Center)
	}
}

func TestSpanRowNear(t *testing.T) {
	days := Span{Start: 1, Length: 31}
	row := days.CenterRow(31) + 31*5
	got := days.RowNear(row, 28)
	if days.Value(got) != 28 {
		t.Fatalf("Value(RowNear) = %d, want 28", days.Value(got))
	}
	if d := row - got; d < 0 || d >= 31 {
		t.Errorf("RowNear(%d, 28) = %d, want a row in the same cycle", row, got)
	}

	last := days.RowNear(Rows-1, 31)
	if last >= Rows || days.Value(last) != 31 {
		t.Errorf("RowNear at the end of the wheel = %d (value %d)", last, days.Value(last))
	}
}
