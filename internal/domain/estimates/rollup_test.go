package estimates

import "testing"

func fptr(v float64) *float64 { return &v }

func TestWorkTotal(t *testing.T) {
	tests := []struct {
		name  string
		price *float64
		qty   float64
		want  *float64
	}{
		{"known price", fptr(500), 3, fptr(1500)},
		{"unknown price", nil, 5, nil},
		{"unknown price zero qty", nil, 0, nil},
		{"known price zero qty", fptr(100), 0, fptr(0)}, // оценено, но не израсходовано
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := workTotal(tc.price, tc.qty)
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			if got != nil && *got != *tc.want {
				t.Fatalf("got %v, want %v", *got, *tc.want)
			}
		})
	}
}

// Правило предпросмотра расходится с правилом сохранённой строки на qty == 0.
func TestLineTotalPreviewRule(t *testing.T) {
	if got := LineTotal(fptr(100), 0); got != nil {
		t.Fatalf("preview qty 0: want nil, got %v", *got)
	}
	if got := LineTotal(nil, 5); got != nil {
		t.Fatalf("preview nil price: want nil, got %v", *got)
	}
	got := LineTotal(fptr(100), 2.5)
	if got == nil || *got != 250 {
		t.Fatalf("preview: got %v", got)
	}

	// обе стороны расхождения одновременно (qty 0, цена известна)
	if rec := workTotal(fptr(100), 0); rec == nil || *rec != 0 {
		t.Fatalf("record rule qty 0: got %v", rec)
	}
}

func TestWorksTotalNullAsZero(t *testing.T) {
	ws := []ItemWork{
		{TotalCost: fptr(1500)},
		{TotalCost: nil}, // цена неизвестна — считаем нулём
		{TotalCost: fptr(200)},
	}
	if got := worksTotal(ws); got != 1700 {
		t.Fatalf("worksTotal: %v", got)
	}
	if got := worksTotal(nil); got != 0 {
		t.Fatalf("empty works: %v", got)
	}
}

func TestItemsTotal(t *testing.T) {
	items := []Item{{TotalCost: 1500}, {TotalCost: 0}}
	if got := itemsTotal(items); got != 1500 {
		t.Fatalf("itemsTotal: %v", got)
	}
	if got := itemsTotal(nil); got != 0 {
		t.Fatalf("empty items: %v", got)
	}
}
