package estimates

// workTotal — правило для сохранённой строки работы: цена неизвестна → nil
// независимо от количества; известна → цена × количество (qty 0 → 0).
func workTotal(price *float64, qty float64) *float64 {
	if price == nil {
		return nil
	}
	t := *price * qty
	return &t
}

// worksTotal суммирует итоги работ, nil считая нулём.
func worksTotal(ws []ItemWork) float64 {
	var sum float64
	for _, w := range ws {
		if w.TotalCost != nil {
			sum += *w.TotalCost
		}
	}
	return sum
}

// itemsTotal — итог сметы по позициям.
func itemsTotal(items []Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.TotalCost
	}
	return sum
}

// LineTotal — правило предпросмотра ещё не сохранённой строки: nil при
// неизвестной цене ИЛИ нулевом количестве ("стоимости пока нет").
// Намеренно расходится с workTotal для qty == 0; не объединять.
func LineTotal(price *float64, qty float64) *float64 {
	if price == nil || qty == 0 {
		return nil
	}
	t := *price * qty
	return &t
}
